package pane

import (
	"image"
	"testing"

	"github.com/go-gl/glfw/v3.3/glfw"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDispatchKey(t *testing.T) {
	w := new(Window)

	var got KeyEvent
	w.Key = func(ev KeyEvent) { got = ev }
	w.dispatchKey(nil, glfw.KeyA, 38, glfw.Press, glfw.ModShift|glfw.ModControl)

	assert.Equal(t, KeyEvent{
		Window:   w,
		Key:      KeyA,
		Scancode: 38,
		Action:   Press,
		Mods:     ModShift | ModControl,
	}, got)
}

func TestDispatchPayloads(t *testing.T) {
	w := new(Window)

	var moved MoveEvent
	w.Move = func(ev MoveEvent) { moved = ev }
	w.dispatchMove(nil, 12, 34)
	assert.Equal(t, MoveEvent{Window: w, Pos: image.Pt(12, 34)}, moved)

	var resized ResizeEvent
	w.Resize = func(ev ResizeEvent) { resized = ev }
	w.dispatchResize(nil, 640, 480)
	assert.Equal(t, ResizeEvent{Window: w, Size: image.Pt(640, 480)}, resized)

	var char CharEvent
	w.Char = func(ev CharEvent) { char = ev }
	w.dispatchChar(nil, 'ä')
	assert.Equal(t, CharEvent{Window: w, Char: 'ä'}, char)

	var button MouseButtonEvent
	w.MouseButton = func(ev MouseButtonEvent) { button = ev }
	w.dispatchMouseButton(nil, glfw.MouseButtonRight, glfw.Release, glfw.ModAlt)
	assert.Equal(t, MouseButtonEvent{
		Window: w,
		Button: MouseButtonRight,
		Action: Release,
		Mods:   ModAlt,
	}, button)

	var scrolled ScrollEvent
	w.Scroll = func(ev ScrollEvent) { scrolled = ev }
	w.dispatchScroll(nil, 0, -1.5)
	assert.Equal(t, ScrollEvent{Window: w, X: 0, Y: -1.5}, scrolled)

	var entered CursorEnterEvent
	w.CursorEnter = func(ev CursorEnterEvent) { entered = ev }
	w.dispatchCursorEnter(nil, true)
	assert.Equal(t, CursorEnterEvent{Window: w, Entered: true}, entered)

	var focused ToggleFocusEvent
	w.ToggleFocus = func(ev ToggleFocusEvent) { focused = ev }
	w.dispatchToggleFocus(nil, true)
	assert.Equal(t, ToggleFocusEvent{Window: w, Focused: true}, focused)
}

// All dispatches must tolerate having no handler assigned.
func TestDispatchUnset(t *testing.T) {
	w := new(Window)

	w.dispatchMove(nil, 1, 2)
	w.dispatchResize(nil, 3, 4)
	w.dispatchFramebufferResize(nil, 3, 4)
	w.dispatchContentScale(nil, 1, 1)
	w.dispatchClose(nil)
	w.dispatchRefresh(nil)
	w.dispatchToggleFocus(nil, true)
	w.dispatchToggleIconify(nil, true)
	w.dispatchToggleMaximize(nil, true)
	w.dispatchKey(nil, glfw.KeyA, 0, glfw.Press, 0)
	w.dispatchChar(nil, 'a')
	w.dispatchMouseButton(nil, glfw.MouseButtonLeft, glfw.Press, 0)
	w.dispatchCursorMove(nil, 1, 2)
	w.dispatchCursorEnter(nil, true)
	w.dispatchScroll(nil, 0, 1)
	w.dispatchDrop(nil, nil)
}

func TestDispatchReplace(t *testing.T) {
	w := new(Window)

	var first, second int
	w.Close = func(CloseEvent) { first++ }
	w.Close = func(CloseEvent) { second++ }
	w.dispatchClose(nil)

	assert.Zero(t, first, "replaced handler still ran")
	assert.Equal(t, 1, second)

	w.Close = nil
	w.dispatchClose(nil)
	assert.Equal(t, 1, second)
}

func TestDispatchDropCopies(t *testing.T) {
	w := new(Window)

	var got DropEvent
	w.Drop = func(ev DropEvent) { got = ev }

	paths := []string{"/tmp/a.png", "/tmp/b.png"}
	w.dispatchDrop(nil, paths)
	require.Equal(t, paths, got.Paths)

	paths[0] = "clobbered"
	assert.Equal(t, "/tmp/a.png", got.Paths[0])
}

func TestScaleIcon(t *testing.T) {
	img := image.NewNRGBA(image.Rect(0, 0, 64, 64))
	images := scaleIcon(img)
	require.Len(t, images, 4)
	assert.Equal(t, image.Image(img), images[0])
	for i, size := range iconSizes {
		assert.Equal(t, image.Pt(size, size), images[i+1].Bounds().Size())
	}

	// An image already at one of the standard sizes is not scaled to it
	// again.
	images = scaleIcon(image.NewNRGBA(image.Rect(0, 0, 32, 32)))
	require.Len(t, images, 3)
	for _, img := range images[1:] {
		assert.NotEqual(t, image.Pt(32, 32), img.Bounds().Size())
	}
}

// Title and Cursor report cached values without touching the native
// handle.
func TestWindowCaches(t *testing.T) {
	w := &Window{title: "cached"}
	assert.Equal(t, "cached", w.Title())
	assert.Nil(t, w.Cursor())

	c := new(Cursor)
	w.cursor = c
	assert.Same(t, c, w.Cursor())
}

func TestSetIconInvalid(t *testing.T) {
	w := new(Window)

	assert.ErrorIs(t, w.SetIcon(nil), ErrInvalidImage)
	assert.ErrorIs(t, w.SetIcon(image.NewNRGBA(image.Rectangle{})), ErrInvalidImage)

	valid := image.NewNRGBA(image.Rect(0, 0, 16, 16))
	assert.ErrorIs(t, w.SetIcon(valid, nil), ErrInvalidImage)
}
