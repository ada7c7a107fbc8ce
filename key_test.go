package pane

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestKeyString(t *testing.T) {
	tests := []struct {
		key  Key
		want string
	}{
		{KeySpace, "space"},
		{KeyApostrophe, "apostrophe"},
		{Key0, "0"},
		{KeyA, "a"},
		{KeyZ, "z"},
		{KeyEscape, "escape"},
		{KeyF1, "f1"},
		{KeyF25, "f25"},
		{KeyKP0, "kp 0"},
		{KeyKPEqual, "kp equal"},
		{KeyLeftShift, "left shift"},
		{KeyRightSuper, "right super"},
		{KeyMenu, "menu"},
		{KeyUnknown, "unknown"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, tt.key.String())
	}
}

func TestKeyNamesDistinct(t *testing.T) {
	seen := make(map[string]Key, len(keyNames))
	for key, name := range keyNames {
		prev, ok := seen[name]
		require.Falsef(t, ok, "keys %v and %v share the label %q", int(prev), int(key), name)
		seen[name] = key
	}
}

func TestModifierKeyString(t *testing.T) {
	assert.Equal(t, "none", ModifierKey(0).String())
	assert.Equal(t, "shift", ModShift.String())
	assert.Equal(t, "super", ModSuper.String())
	assert.Equal(t, "shift+control", (ModShift | ModControl).String())
	assert.Equal(t, "alt+caps lock", (ModAlt | ModCapsLock).String())
	assert.Equal(t,
		"shift+control+alt+super+caps lock+num lock",
		(ModShift | ModControl | ModAlt | ModSuper | ModCapsLock | ModNumLock).String(),
	)
}

func TestActionString(t *testing.T) {
	assert.Equal(t, "release", Release.String())
	assert.Equal(t, "press", Press.String())
	assert.Equal(t, "repeat", Repeat.String())
	assert.Equal(t, "unknown", Action(-1).String())
}
