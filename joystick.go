package pane

import (
	"fmt"
	"io"

	"github.com/go-gl/glfw/v3.3/glfw"
)

// Joystick identifies one of the joystick slots provided by the
// underlying library. A slot may or may not have a device connected to
// it; use Present to check.
type Joystick int

const (
	Joystick1  Joystick = Joystick(glfw.Joystick1)
	Joystick2  Joystick = Joystick(glfw.Joystick2)
	Joystick3  Joystick = Joystick(glfw.Joystick3)
	Joystick4  Joystick = Joystick(glfw.Joystick4)
	Joystick5  Joystick = Joystick(glfw.Joystick5)
	Joystick6  Joystick = Joystick(glfw.Joystick6)
	Joystick7  Joystick = Joystick(glfw.Joystick7)
	Joystick8  Joystick = Joystick(glfw.Joystick8)
	Joystick9  Joystick = Joystick(glfw.Joystick9)
	Joystick10 Joystick = Joystick(glfw.Joystick10)
	Joystick11 Joystick = Joystick(glfw.Joystick11)
	Joystick12 Joystick = Joystick(glfw.Joystick12)
	Joystick13 Joystick = Joystick(glfw.Joystick13)
	Joystick14 Joystick = Joystick(glfw.Joystick14)
	Joystick15 Joystick = Joystick(glfw.Joystick15)
	Joystick16 Joystick = Joystick(glfw.Joystick16)

	JoystickLast Joystick = Joystick(glfw.JoystickLast)
)

func (j Joystick) String() string {
	return fmt.Sprintf("joystick %v", int(j)+1)
}

// Joysticks returns the joysticks that currently have a device
// connected.
func Joysticks() []Joystick {
	var joysticks []Joystick
	for j := Joystick1; j <= JoystickLast; j++ {
		if j.Present() {
			joysticks = append(joysticks, j)
		}
	}
	return joysticks
}

// Present reports whether a device is connected to the joystick slot.
func (j Joystick) Present() bool {
	return glfw.Joystick(j).Present()
}

// Name returns a human-readable name of the connected device, or an
// empty string if the slot is empty.
func (j Joystick) Name() string {
	return glfw.Joystick(j).GetName()
}

// GUID returns the SDL-compatible GUID of the connected device, or an
// empty string if the slot is empty. The GUID identifies the device
// model, not the individual unit.
func (j Joystick) GUID() string {
	return glfw.Joystick(j).GetGUID()
}

// Axes returns the current state of every axis of the device, each in
// the range -1 to 1.
func (j Joystick) Axes() []float32 {
	return glfw.Joystick(j).GetAxes()
}

// Buttons returns the current state of every button of the device.
func (j Joystick) Buttons() []Action {
	gb := glfw.Joystick(j).GetButtons()
	buttons := make([]Action, 0, len(gb))
	for _, b := range gb {
		buttons = append(buttons, Action(b))
	}
	return buttons
}

// Hats returns the current state of every hat of the device.
func (j Joystick) Hats() []HatState {
	gh := glfw.Joystick(j).GetHats()
	hats := make([]HatState, 0, len(gh))
	for _, h := range gh {
		hats = append(hats, HatState(h))
	}
	return hats
}

// IsGamepad reports whether the connected device has a gamepad mapping,
// making its state available through GamepadState with standardized
// button and axis names.
func (j Joystick) IsGamepad() bool {
	return glfw.Joystick(j).IsGamepad()
}

// GamepadName returns the name given to the device by its gamepad
// mapping, or an empty string if it has none.
func (j Joystick) GamepadName() string {
	return glfw.Joystick(j).GetGamepadName()
}

// GamepadState returns the state of the device remapped to the layout of
// an Xbox-like gamepad, or nil if the device is not a gamepad.
func (j Joystick) GamepadState() *GamepadState {
	gs := glfw.Joystick(j).GetGamepadState()
	if gs == nil {
		return nil
	}
	var state GamepadState
	for i, b := range gs.Buttons {
		state.Buttons[i] = Action(b)
	}
	state.Axes = gs.Axes
	return &state
}

// GamepadState is the state of a gamepad's buttons and axes, remapped to
// a standard Xbox-like layout.
type GamepadState struct {
	Buttons [15]Action
	Axes    [6]float32
}

// Button returns the state of the given gamepad button.
func (s *GamepadState) Button(button GamepadButton) Action {
	return s.Buttons[button]
}

// Axis returns the value of the given gamepad axis, in the range -1 to
// 1. For the triggers, -1 means fully released.
func (s *GamepadState) Axis(axis GamepadAxis) float32 {
	return s.Axes[axis]
}

// UpdateGamepadMappings adds the SDL-format gamepad mappings read from r
// to the mapping database, replacing existing mappings for any device
// models that both describe. It returns ErrBadMapping if the data is not
// valid mapping data.
func UpdateGamepadMappings(r io.Reader) error {
	b, err := io.ReadAll(r)
	if err != nil {
		return fmt.Errorf("read gamepad mappings: %w", err)
	}
	if !glfw.UpdateGamepadMappings(string(b)) {
		return ErrBadMapping
	}
	return nil
}

// HatState describes the position of a joystick hat as a bitmask of the
// four cardinal directions.
type HatState int

const (
	HatCentered  HatState = HatState(glfw.HatCentered)
	HatUp        HatState = HatState(glfw.HatUp)
	HatRight     HatState = HatState(glfw.HatRight)
	HatDown      HatState = HatState(glfw.HatDown)
	HatLeft      HatState = HatState(glfw.HatLeft)
	HatRightUp   HatState = HatState(glfw.HatRightUp)
	HatRightDown HatState = HatState(glfw.HatRightDown)
	HatLeftUp    HatState = HatState(glfw.HatLeftUp)
	HatLeftDown  HatState = HatState(glfw.HatLeftDown)
)

// Has reports whether the hat is deflected in the given direction,
// including as part of a diagonal.
func (h HatState) Has(dir HatState) bool {
	return h&dir == dir && dir != HatCentered
}

func (h HatState) String() string {
	switch h {
	case HatCentered:
		return "centered"
	case HatUp:
		return "up"
	case HatRight:
		return "right"
	case HatDown:
		return "down"
	case HatLeft:
		return "left"
	case HatRightUp:
		return "right-up"
	case HatRightDown:
		return "right-down"
	case HatLeftUp:
		return "left-up"
	case HatLeftDown:
		return "left-down"
	}

	return "unknown"
}

// GamepadButton identifies a button of the standard gamepad layout.
type GamepadButton int

const (
	ButtonA           GamepadButton = GamepadButton(glfw.ButtonA)
	ButtonB           GamepadButton = GamepadButton(glfw.ButtonB)
	ButtonX           GamepadButton = GamepadButton(glfw.ButtonX)
	ButtonY           GamepadButton = GamepadButton(glfw.ButtonY)
	ButtonLeftBumper  GamepadButton = GamepadButton(glfw.ButtonLeftBumper)
	ButtonRightBumper GamepadButton = GamepadButton(glfw.ButtonRightBumper)
	ButtonBack        GamepadButton = GamepadButton(glfw.ButtonBack)
	ButtonStart       GamepadButton = GamepadButton(glfw.ButtonStart)
	ButtonGuide       GamepadButton = GamepadButton(glfw.ButtonGuide)
	ButtonLeftThumb   GamepadButton = GamepadButton(glfw.ButtonLeftThumb)
	ButtonRightThumb  GamepadButton = GamepadButton(glfw.ButtonRightThumb)
	ButtonDpadUp      GamepadButton = GamepadButton(glfw.ButtonDpadUp)
	ButtonDpadRight   GamepadButton = GamepadButton(glfw.ButtonDpadRight)
	ButtonDpadDown    GamepadButton = GamepadButton(glfw.ButtonDpadDown)
	ButtonDpadLeft    GamepadButton = GamepadButton(glfw.ButtonDpadLeft)
	ButtonLast        GamepadButton = GamepadButton(glfw.ButtonLast)

	ButtonCross    GamepadButton = GamepadButton(glfw.ButtonCross)
	ButtonCircle   GamepadButton = GamepadButton(glfw.ButtonCircle)
	ButtonSquare   GamepadButton = GamepadButton(glfw.ButtonSquare)
	ButtonTriangle GamepadButton = GamepadButton(glfw.ButtonTriangle)
)

func (b GamepadButton) String() string {
	switch b {
	case ButtonA:
		return "a"
	case ButtonB:
		return "b"
	case ButtonX:
		return "x"
	case ButtonY:
		return "y"
	case ButtonLeftBumper:
		return "left bumper"
	case ButtonRightBumper:
		return "right bumper"
	case ButtonBack:
		return "back"
	case ButtonStart:
		return "start"
	case ButtonGuide:
		return "guide"
	case ButtonLeftThumb:
		return "left thumb"
	case ButtonRightThumb:
		return "right thumb"
	case ButtonDpadUp:
		return "dpad up"
	case ButtonDpadRight:
		return "dpad right"
	case ButtonDpadDown:
		return "dpad down"
	case ButtonDpadLeft:
		return "dpad left"
	}

	return "unknown"
}

// GamepadAxis identifies an axis of the standard gamepad layout.
type GamepadAxis int

const (
	AxisLeftX        GamepadAxis = GamepadAxis(glfw.AxisLeftX)
	AxisLeftY        GamepadAxis = GamepadAxis(glfw.AxisLeftY)
	AxisRightX       GamepadAxis = GamepadAxis(glfw.AxisRightX)
	AxisRightY       GamepadAxis = GamepadAxis(glfw.AxisRightY)
	AxisLeftTrigger  GamepadAxis = GamepadAxis(glfw.AxisLeftTrigger)
	AxisRightTrigger GamepadAxis = GamepadAxis(glfw.AxisRightTrigger)
	AxisLast         GamepadAxis = GamepadAxis(glfw.AxisLast)
)

func (a GamepadAxis) String() string {
	switch a {
	case AxisLeftX:
		return "left x"
	case AxisLeftY:
		return "left y"
	case AxisRightX:
		return "right x"
	case AxisRightY:
		return "right y"
	case AxisLeftTrigger:
		return "left trigger"
	case AxisRightTrigger:
		return "right trigger"
	}

	return "unknown"
}
