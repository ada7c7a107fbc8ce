package pane

import (
	"image"
	"testing"

	"github.com/go-gl/glfw/v3.3/glfw"
	"github.com/stretchr/testify/assert"
)

func TestGammaRampValidate(t *testing.T) {
	var nilRamp *GammaRamp
	assert.ErrorIs(t, nilRamp.validate(), ErrRampSize)
	assert.ErrorIs(t, new(GammaRamp).validate(), ErrRampSize)

	uneven := &GammaRamp{
		Red:   make([]uint16, 256),
		Green: make([]uint16, 256),
		Blue:  make([]uint16, 128),
	}
	assert.ErrorIs(t, uneven.validate(), ErrRampSize)

	assert.NoError(t, NewGammaRamp(256).validate())
}

func TestSetGammaRampInvalid(t *testing.T) {
	m := new(Monitor)
	assert.ErrorIs(t, m.SetGammaRamp(nil), ErrRampSize)
	assert.ErrorIs(t, m.SetGammaRamp(new(GammaRamp)), ErrRampSize)
}

func TestNewGammaRamp(t *testing.T) {
	ramp := NewGammaRamp(256)
	assert.Len(t, ramp.Red, 256)
	assert.Len(t, ramp.Green, 256)
	assert.Len(t, ramp.Blue, 256)
}

func TestWrapNil(t *testing.T) {
	assert.Nil(t, wrapMonitor(nil))
	assert.Nil(t, wrapVideoMode(nil))
}

func TestVideoModeString(t *testing.T) {
	vm := &VideoMode{
		Size:        image.Pt(1920, 1080),
		RedBits:     8,
		GreenBits:   8,
		BlueBits:    8,
		RefreshRate: 60,
	}
	assert.Equal(t, "1920x1080 @ 60 Hz (8/8/8 bits)", vm.String())
}

func TestWrapVideoMode(t *testing.T) {
	vm := wrapVideoMode(&glfw.VidMode{
		Width:       1920,
		Height:      1080,
		RedBits:     8,
		GreenBits:   8,
		BlueBits:    8,
		RefreshRate: 60,
	})

	assert.Equal(t, &VideoMode{
		Size:        image.Pt(1920, 1080),
		RedBits:     8,
		GreenBits:   8,
		BlueBits:    8,
		RefreshRate: 60,
	}, vm)
}

func TestMonitorEqual(t *testing.T) {
	handle := new(glfw.Monitor)
	m1 := wrapMonitor(handle)
	m2 := wrapMonitor(handle)
	m3 := wrapMonitor(new(glfw.Monitor))

	assert.True(t, m1.Equal(m2), "wrappers of the same monitor should be equal")
	assert.False(t, m1.Equal(m3))
	assert.False(t, m1.Equal(nil))

	var nilMonitor *Monitor
	assert.True(t, nilMonitor.Equal(nil))
	assert.False(t, nilMonitor.Equal(m1))
}
