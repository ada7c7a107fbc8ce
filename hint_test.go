package pane

import (
	"testing"

	"github.com/go-gl/glfw/v3.3/glfw"
	"github.com/stretchr/testify/assert"
)

func TestWindowConfig(t *testing.T) {
	cfg := newWindowConfig([]WindowOption{
		Resizable(false),
		Visible(true),
		Samples(4),
		RedBits(DontCare),
		ClientAPI(OpenGLESAPI),
		OpenGLProfile(CoreProfile),
	})

	want := []hintPair{
		{glfw.Resizable, glfw.False},
		{glfw.Visible, glfw.True},
		{glfw.Samples, 4},
		{glfw.RedBits, glfw.DontCare},
		{glfw.ClientAPI, int(glfw.OpenGLESAPI)},
		{glfw.OpenGLProfile, int(glfw.OpenGLCoreProfile)},
	}
	assert.Equal(t, want, cfg.hints)
	assert.Nil(t, cfg.monitor)
	assert.Nil(t, cfg.share)
}

func TestWindowConfigContextVersion(t *testing.T) {
	cfg := newWindowConfig([]WindowOption{ContextVersion(3, 2)})

	want := []hintPair{
		{glfw.ContextVersionMajor, 3},
		{glfw.ContextVersionMinor, 2},
	}
	assert.Equal(t, want, cfg.hints)
}

func TestWindowConfigNilTargets(t *testing.T) {
	cfg := newWindowConfig([]WindowOption{Fullscreen(nil), SharedWith(nil)})

	assert.Empty(t, cfg.hints)
	assert.Nil(t, cfg.monitor)
	assert.Nil(t, cfg.share)
}

func TestAPIString(t *testing.T) {
	assert.Equal(t, "OpenGL", OpenGLAPI.String())
	assert.Equal(t, "OpenGL ES", OpenGLESAPI.String())
	assert.Equal(t, "none", NoAPI.String())
	assert.Equal(t, "unknown", API(-1).String())
}

func TestProfileString(t *testing.T) {
	assert.Equal(t, "any", AnyProfile.String())
	assert.Equal(t, "core", CoreProfile.String())
	assert.Equal(t, "compatibility", CompatProfile.String())
	assert.Equal(t, "unknown", Profile(-1).String())
}

func TestRobustnessString(t *testing.T) {
	assert.Equal(t, "none", NoRobustness.String())
	assert.Equal(t, "no reset notification", NoResetNotification.String())
	assert.Equal(t, "lose context on reset", LoseContextOnReset.String())
}

func TestReleaseBehaviorString(t *testing.T) {
	assert.Equal(t, "any", AnyReleaseBehavior.String())
	assert.Equal(t, "flush", ReleaseBehaviorFlush.String())
	assert.Equal(t, "none", ReleaseBehaviorNone.String())
}
