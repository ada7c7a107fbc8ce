package pane

import (
	"image"

	"github.com/go-gl/glfw/v3.3/glfw"
)

// Cursor represents a cursor image that can be set on a window with
// SetCursor.
type Cursor struct {
	c *glfw.Cursor
}

// CursorShape identifies one of the standard cursor images provided by
// the platform.
type CursorShape int

const (
	ArrowCursor     CursorShape = CursorShape(glfw.ArrowCursor)
	IBeamCursor     CursorShape = CursorShape(glfw.IBeamCursor)
	CrosshairCursor CursorShape = CursorShape(glfw.CrosshairCursor)
	HandCursor      CursorShape = CursorShape(glfw.HandCursor)
	HResizeCursor   CursorShape = CursorShape(glfw.HResizeCursor)
	VResizeCursor   CursorShape = CursorShape(glfw.VResizeCursor)
)

func (s CursorShape) String() string {
	switch s {
	case ArrowCursor:
		return "arrow"
	case IBeamCursor:
		return "i-beam"
	case CrosshairCursor:
		return "crosshair"
	case HandCursor:
		return "hand"
	case HResizeCursor:
		return "horizontal resize"
	case VResizeCursor:
		return "vertical resize"
	}

	return "unknown"
}

// NewStandardCursor creates a cursor with one of the standard platform
// cursor images.
func NewStandardCursor(shape CursorShape) *Cursor {
	return &Cursor{c: glfw.CreateStandardCursor(glfw.StandardCursor(shape))}
}

// NewCursor creates a cursor from img with its hot spot at hot,
// specified relative to the upper-left corner of the image. The image
// data is copied, so img may be modified or discarded after the call
// returns.
func NewCursor(img image.Image, hot image.Point) (*Cursor, error) {
	if img == nil || img.Bounds().Empty() {
		return nil, ErrInvalidImage
	}
	return &Cursor{c: glfw.CreateCursor(img, hot.X, hot.Y)}, nil
}

// Destroy destroys the cursor. Windows that have it set revert to the
// default arrow cursor. Destroying a cursor twice is an error.
func (c *Cursor) Destroy() {
	c.c.Destroy()
	c.c = nil
}
