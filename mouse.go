package pane

import "github.com/go-gl/glfw/v3.3/glfw"

// MouseButton identifies a button on a mouse.
type MouseButton int

const (
	MouseButton1 MouseButton = MouseButton(glfw.MouseButton1)
	MouseButton2 MouseButton = MouseButton(glfw.MouseButton2)
	MouseButton3 MouseButton = MouseButton(glfw.MouseButton3)
	MouseButton4 MouseButton = MouseButton(glfw.MouseButton4)
	MouseButton5 MouseButton = MouseButton(glfw.MouseButton5)
	MouseButton6 MouseButton = MouseButton(glfw.MouseButton6)
	MouseButton7 MouseButton = MouseButton(glfw.MouseButton7)
	MouseButton8 MouseButton = MouseButton(glfw.MouseButton8)

	MouseButtonLeft   MouseButton = MouseButton(glfw.MouseButtonLeft)
	MouseButtonRight  MouseButton = MouseButton(glfw.MouseButtonRight)
	MouseButtonMiddle MouseButton = MouseButton(glfw.MouseButtonMiddle)
	MouseButtonLast   MouseButton = MouseButton(glfw.MouseButtonLast)
)

func (b MouseButton) String() string {
	switch b {
	case MouseButtonLeft:
		return "left"
	case MouseButtonRight:
		return "right"
	case MouseButtonMiddle:
		return "middle"
	case MouseButton4:
		return "button 4"
	case MouseButton5:
		return "button 5"
	case MouseButton6:
		return "button 6"
	case MouseButton7:
		return "button 7"
	case MouseButton8:
		return "button 8"
	}

	return "unknown"
}

// CursorMode controls how a window treats the cursor while it has input
// focus.
type CursorMode int

const (
	// CursorNormal shows the cursor and lets it move freely.
	CursorNormal CursorMode = CursorMode(glfw.CursorNormal)

	// CursorHidden hides the cursor while it is over the window's
	// content area but does not restrict its movement.
	CursorHidden CursorMode = CursorMode(glfw.CursorHidden)

	// CursorDisabled hides the cursor and locks it to the window,
	// providing unbounded virtual cursor motion.
	CursorDisabled CursorMode = CursorMode(glfw.CursorDisabled)
)

func (m CursorMode) String() string {
	switch m {
	case CursorNormal:
		return "normal"
	case CursorHidden:
		return "hidden"
	case CursorDisabled:
		return "disabled"
	}

	return "unknown"
}
