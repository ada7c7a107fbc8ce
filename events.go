package pane

import "image"

// MoveEvent reports that a window moved. Pos is the new position of the
// upper-left corner of the window's content area in screen coordinates.
type MoveEvent struct {
	Window *Window
	Pos    image.Point
}

// ResizeEvent reports that a window was resized. Size is the new size of
// the content area in screen coordinates.
type ResizeEvent struct {
	Window *Window
	Size   image.Point
}

// FramebufferResizeEvent reports that a window's framebuffer was
// resized. Size is in pixels, which on some platforms differs from the
// content area's size in screen coordinates.
type FramebufferResizeEvent struct {
	Window *Window
	Size   image.Point
}

// ContentScaleEvent reports that the content scale of a window changed,
// usually because it moved to a monitor with a different DPI.
type ContentScaleEvent struct {
	Window *Window
	X, Y   float32
}

// CloseEvent reports that the user attempted to close a window, for
// example by clicking the close widget in its title bar.
type CloseEvent struct {
	Window *Window
}

// RefreshEvent reports that a window's contents were damaged and need to
// be redrawn.
type RefreshEvent struct {
	Window *Window
}

// ToggleFocusEvent reports that a window gained or lost input focus.
type ToggleFocusEvent struct {
	Window  *Window
	Focused bool
}

// ToggleIconifyEvent reports that a window was iconified or restored.
type ToggleIconifyEvent struct {
	Window    *Window
	Iconified bool
}

// ToggleMaximizeEvent reports that a window was maximized or restored.
type ToggleMaximizeEvent struct {
	Window    *Window
	Maximized bool
}

// KeyEvent reports that a key was pressed, released, or held down long
// enough to repeat while the window had input focus.
type KeyEvent struct {
	Window   *Window
	Key      Key
	Scancode int
	Action   Action
	Mods     ModifierKey
}

// CharEvent reports a Unicode character produced by the keyboard,
// layout- and modifier-translated. It is intended for text input rather
// than key tracking.
type CharEvent struct {
	Window *Window
	Char   rune
}

// MouseButtonEvent reports that a mouse button was pressed or released
// over a window.
type MouseButtonEvent struct {
	Window *Window
	Button MouseButton
	Action Action
	Mods   ModifierKey
}

// CursorMoveEvent reports that the cursor moved over a window. X and Y
// are relative to the upper-left corner of the content area and may have
// a fractional part on platforms with subpixel cursor positions.
type CursorMoveEvent struct {
	Window *Window
	X, Y   float64
}

// CursorEnterEvent reports that the cursor crossed the boundary of a
// window's content area.
type CursorEnterEvent struct {
	Window  *Window
	Entered bool
}

// ScrollEvent reports scrolling input, such as a mouse wheel or touchpad
// gesture. X and Y are the scroll offsets along each axis.
type ScrollEvent struct {
	Window *Window
	X, Y   float64
}

// DropEvent reports that files or directories were dragged and dropped
// onto a window. Paths is owned by the receiver and remains valid after
// the callback returns.
type DropEvent struct {
	Window *Window
	Paths  []string
}

// MonitorChangeEvent reports that a monitor was connected to or
// disconnected from the system.
type MonitorChangeEvent struct {
	Monitor   *Monitor
	Connected bool
}

// JoystickChangeEvent reports that a joystick was connected to or
// disconnected from the system.
type JoystickChangeEvent struct {
	Joystick  Joystick
	Connected bool
}
