package xcursor

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeTestCursor(t *testing.T, root, theme, name string, sizes ...uint32) {
	t.Helper()

	dir := filepath.Join(root, theme, "cursors")
	require.NoError(t, os.MkdirAll(dir, 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(dir, name), simpleCursorFile(sizes...), 0o644))
}

func TestLoadTheme(t *testing.T) {
	root := t.TempDir()
	t.Setenv("XCURSOR_PATH", root)

	// alpha provides left_ptr and inherits beta, which provides its own
	// left_ptr as well as hand. beta inherits alpha again, forming a
	// cycle, and a theme that does not exist.
	writeTestCursor(t, root, "alpha", "left_ptr", 16)
	writeTestCursor(t, root, "beta", "left_ptr", 48)
	writeTestCursor(t, root, "beta", "hand", 24)
	require.NoError(t, os.WriteFile(
		filepath.Join(root, "alpha", "index.theme"),
		[]byte("[Icon Theme]\nName=Alpha\nInherits=beta\n"),
		0o644,
	))
	require.NoError(t, os.WriteFile(
		filepath.Join(root, "beta", "index.theme"),
		[]byte("[Icon Theme]\nInherits=alpha:missing\n"),
		0o644,
	))

	// Theme directories also contain files that are not cursors.
	require.NoError(t, os.WriteFile(
		filepath.Join(root, "alpha", "cursors", "LICENSE"),
		[]byte("do what you want"),
		0o644,
	))

	theme, err := LoadTheme("alpha")
	require.NoError(t, err)
	assert.Equal(t, "alpha", theme.Name)

	left := theme.Cursors["left_ptr"]
	require.NotNil(t, left)
	assert.Contains(t, left.Images, 16, "alpha's own cursor should shadow beta's")
	assert.NotContains(t, left.Images, 48)

	hand := theme.Cursors["hand"]
	require.NotNil(t, hand, "inherited cursor missing")
	assert.Contains(t, hand.Images, 24)

	assert.NotContains(t, theme.Cursors, "LICENSE")
}

func TestLoadThemeIndexOnly(t *testing.T) {
	root := t.TempDir()
	t.Setenv("XCURSOR_PATH", root)

	// The "default" theme on most systems is a directory holding
	// nothing but an index.theme that names the real theme.
	writeTestCursor(t, root, "real", "left_ptr", 16)
	require.NoError(t, os.MkdirAll(filepath.Join(root, "default"), 0o755))
	require.NoError(t, os.WriteFile(
		filepath.Join(root, "default", "index.theme"),
		[]byte("[Icon Theme]\nInherits=real\n"),
		0o644,
	))

	theme, err := LoadTheme("default")
	require.NoError(t, err)

	left := theme.Cursors["left_ptr"]
	require.NotNil(t, left, "cursor from the inherited theme missing")
	assert.Contains(t, left.Images, 16)
}

func TestLoadThemeSplitPaths(t *testing.T) {
	user := t.TempDir()
	system := t.TempDir()
	t.Setenv("XCURSOR_PATH", user+string(filepath.ListSeparator)+system)

	// The same theme exists in both search paths. Every path
	// contributes its cursors, with earlier paths shadowing later ones
	// for cursors they both provide.
	writeTestCursor(t, user, "split", "left_ptr", 16)
	writeTestCursor(t, system, "split", "left_ptr", 48)
	writeTestCursor(t, system, "split", "hand", 24)
	require.NoError(t, os.WriteFile(
		filepath.Join(system, "split", "index.theme"),
		[]byte("[Icon Theme]\nInherits=extra\n"),
		0o644,
	))
	writeTestCursor(t, system, "extra", "watch", 32)

	theme, err := LoadTheme("split")
	require.NoError(t, err)

	left := theme.Cursors["left_ptr"]
	require.NotNil(t, left)
	assert.Contains(t, left.Images, 16, "the user copy should shadow the system one")
	assert.NotContains(t, left.Images, 48)

	hand := theme.Cursors["hand"]
	require.NotNil(t, hand, "cursor from the second search path missing")
	assert.Contains(t, hand.Images, 24)

	watch := theme.Cursors["watch"]
	require.NotNil(t, watch, "theme inherited via the second search path missing")
	assert.Contains(t, watch.Images, 32)
}

func TestLoadThemeMissing(t *testing.T) {
	t.Setenv("XCURSOR_PATH", t.TempDir())

	theme, err := LoadTheme("")
	require.NoError(t, err)
	assert.Equal(t, "default", theme.Name)
	assert.Empty(t, theme.Cursors)
}

func TestLoadInherits(t *testing.T) {
	path := filepath.Join(t.TempDir(), "index.theme")
	require.NoError(t, os.WriteFile(
		path,
		[]byte("[Icon Theme]\nName=x\nInherits=one, two:three\nInherits=later\n"),
		0o644,
	))

	inherits, err := loadInherits(path)
	require.NoError(t, err)
	assert.Equal(t, []string{"one", "two", "three"}, inherits)
}

func TestLibraryPathsEnv(t *testing.T) {
	t.Setenv("XCURSOR_PATH", "/a/b"+string(filepath.ListSeparator)+"/c")
	assert.Equal(t, []string{"/a/b", "/c"}, libraryPaths())
}
