package pane

import (
	"strings"

	"github.com/go-gl/glfw/v3.3/glfw"
)

// Key identifies a keyboard key by its layout-independent symbol. The
// values are the native key tokens, which correspond to the US keyboard
// layout; use Name to get the layout-dependent printable name of a key.
type Key int

const (
	KeyUnknown Key = Key(glfw.KeyUnknown)

	KeySpace        Key = Key(glfw.KeySpace)
	KeyApostrophe   Key = Key(glfw.KeyApostrophe)
	KeyComma        Key = Key(glfw.KeyComma)
	KeyMinus        Key = Key(glfw.KeyMinus)
	KeyPeriod       Key = Key(glfw.KeyPeriod)
	KeySlash        Key = Key(glfw.KeySlash)
	Key0            Key = Key(glfw.Key0)
	Key1            Key = Key(glfw.Key1)
	Key2            Key = Key(glfw.Key2)
	Key3            Key = Key(glfw.Key3)
	Key4            Key = Key(glfw.Key4)
	Key5            Key = Key(glfw.Key5)
	Key6            Key = Key(glfw.Key6)
	Key7            Key = Key(glfw.Key7)
	Key8            Key = Key(glfw.Key8)
	Key9            Key = Key(glfw.Key9)
	KeySemicolon    Key = Key(glfw.KeySemicolon)
	KeyEqual        Key = Key(glfw.KeyEqual)
	KeyA            Key = Key(glfw.KeyA)
	KeyB            Key = Key(glfw.KeyB)
	KeyC            Key = Key(glfw.KeyC)
	KeyD            Key = Key(glfw.KeyD)
	KeyE            Key = Key(glfw.KeyE)
	KeyF            Key = Key(glfw.KeyF)
	KeyG            Key = Key(glfw.KeyG)
	KeyH            Key = Key(glfw.KeyH)
	KeyI            Key = Key(glfw.KeyI)
	KeyJ            Key = Key(glfw.KeyJ)
	KeyK            Key = Key(glfw.KeyK)
	KeyL            Key = Key(glfw.KeyL)
	KeyM            Key = Key(glfw.KeyM)
	KeyN            Key = Key(glfw.KeyN)
	KeyO            Key = Key(glfw.KeyO)
	KeyP            Key = Key(glfw.KeyP)
	KeyQ            Key = Key(glfw.KeyQ)
	KeyR            Key = Key(glfw.KeyR)
	KeyS            Key = Key(glfw.KeyS)
	KeyT            Key = Key(glfw.KeyT)
	KeyU            Key = Key(glfw.KeyU)
	KeyV            Key = Key(glfw.KeyV)
	KeyW            Key = Key(glfw.KeyW)
	KeyX            Key = Key(glfw.KeyX)
	KeyY            Key = Key(glfw.KeyY)
	KeyZ            Key = Key(glfw.KeyZ)
	KeyLeftBracket  Key = Key(glfw.KeyLeftBracket)
	KeyBackslash    Key = Key(glfw.KeyBackslash)
	KeyRightBracket Key = Key(glfw.KeyRightBracket)
	KeyGraveAccent  Key = Key(glfw.KeyGraveAccent)
	KeyWorld1       Key = Key(glfw.KeyWorld1)
	KeyWorld2       Key = Key(glfw.KeyWorld2)

	KeyEscape       Key = Key(glfw.KeyEscape)
	KeyEnter        Key = Key(glfw.KeyEnter)
	KeyTab          Key = Key(glfw.KeyTab)
	KeyBackspace    Key = Key(glfw.KeyBackspace)
	KeyInsert       Key = Key(glfw.KeyInsert)
	KeyDelete       Key = Key(glfw.KeyDelete)
	KeyRight        Key = Key(glfw.KeyRight)
	KeyLeft         Key = Key(glfw.KeyLeft)
	KeyDown         Key = Key(glfw.KeyDown)
	KeyUp           Key = Key(glfw.KeyUp)
	KeyPageUp       Key = Key(glfw.KeyPageUp)
	KeyPageDown     Key = Key(glfw.KeyPageDown)
	KeyHome         Key = Key(glfw.KeyHome)
	KeyEnd          Key = Key(glfw.KeyEnd)
	KeyCapsLock     Key = Key(glfw.KeyCapsLock)
	KeyScrollLock   Key = Key(glfw.KeyScrollLock)
	KeyNumLock      Key = Key(glfw.KeyNumLock)
	KeyPrintScreen  Key = Key(glfw.KeyPrintScreen)
	KeyPause        Key = Key(glfw.KeyPause)
	KeyF1           Key = Key(glfw.KeyF1)
	KeyF2           Key = Key(glfw.KeyF2)
	KeyF3           Key = Key(glfw.KeyF3)
	KeyF4           Key = Key(glfw.KeyF4)
	KeyF5           Key = Key(glfw.KeyF5)
	KeyF6           Key = Key(glfw.KeyF6)
	KeyF7           Key = Key(glfw.KeyF7)
	KeyF8           Key = Key(glfw.KeyF8)
	KeyF9           Key = Key(glfw.KeyF9)
	KeyF10          Key = Key(glfw.KeyF10)
	KeyF11          Key = Key(glfw.KeyF11)
	KeyF12          Key = Key(glfw.KeyF12)
	KeyF13          Key = Key(glfw.KeyF13)
	KeyF14          Key = Key(glfw.KeyF14)
	KeyF15          Key = Key(glfw.KeyF15)
	KeyF16          Key = Key(glfw.KeyF16)
	KeyF17          Key = Key(glfw.KeyF17)
	KeyF18          Key = Key(glfw.KeyF18)
	KeyF19          Key = Key(glfw.KeyF19)
	KeyF20          Key = Key(glfw.KeyF20)
	KeyF21          Key = Key(glfw.KeyF21)
	KeyF22          Key = Key(glfw.KeyF22)
	KeyF23          Key = Key(glfw.KeyF23)
	KeyF24          Key = Key(glfw.KeyF24)
	KeyF25          Key = Key(glfw.KeyF25)
	KeyKP0          Key = Key(glfw.KeyKP0)
	KeyKP1          Key = Key(glfw.KeyKP1)
	KeyKP2          Key = Key(glfw.KeyKP2)
	KeyKP3          Key = Key(glfw.KeyKP3)
	KeyKP4          Key = Key(glfw.KeyKP4)
	KeyKP5          Key = Key(glfw.KeyKP5)
	KeyKP6          Key = Key(glfw.KeyKP6)
	KeyKP7          Key = Key(glfw.KeyKP7)
	KeyKP8          Key = Key(glfw.KeyKP8)
	KeyKP9          Key = Key(glfw.KeyKP9)
	KeyKPDecimal    Key = Key(glfw.KeyKPDecimal)
	KeyKPDivide     Key = Key(glfw.KeyKPDivide)
	KeyKPMultiply   Key = Key(glfw.KeyKPMultiply)
	KeyKPSubtract   Key = Key(glfw.KeyKPSubtract)
	KeyKPAdd        Key = Key(glfw.KeyKPAdd)
	KeyKPEnter      Key = Key(glfw.KeyKPEnter)
	KeyKPEqual      Key = Key(glfw.KeyKPEqual)
	KeyLeftShift    Key = Key(glfw.KeyLeftShift)
	KeyLeftControl  Key = Key(glfw.KeyLeftControl)
	KeyLeftAlt      Key = Key(glfw.KeyLeftAlt)
	KeyLeftSuper    Key = Key(glfw.KeyLeftSuper)
	KeyRightShift   Key = Key(glfw.KeyRightShift)
	KeyRightControl Key = Key(glfw.KeyRightControl)
	KeyRightAlt     Key = Key(glfw.KeyRightAlt)
	KeyRightSuper   Key = Key(glfw.KeyRightSuper)
	KeyMenu         Key = Key(glfw.KeyMenu)

	KeyLast Key = Key(glfw.KeyLast)
)

var keyNames = map[Key]string{
	KeySpace:        "space",
	KeyApostrophe:   "apostrophe",
	KeyComma:        "comma",
	KeyMinus:        "minus",
	KeyPeriod:       "period",
	KeySlash:        "slash",
	Key0:            "0",
	Key1:            "1",
	Key2:            "2",
	Key3:            "3",
	Key4:            "4",
	Key5:            "5",
	Key6:            "6",
	Key7:            "7",
	Key8:            "8",
	Key9:            "9",
	KeySemicolon:    "semicolon",
	KeyEqual:        "equal",
	KeyA:            "a",
	KeyB:            "b",
	KeyC:            "c",
	KeyD:            "d",
	KeyE:            "e",
	KeyF:            "f",
	KeyG:            "g",
	KeyH:            "h",
	KeyI:            "i",
	KeyJ:            "j",
	KeyK:            "k",
	KeyL:            "l",
	KeyM:            "m",
	KeyN:            "n",
	KeyO:            "o",
	KeyP:            "p",
	KeyQ:            "q",
	KeyR:            "r",
	KeyS:            "s",
	KeyT:            "t",
	KeyU:            "u",
	KeyV:            "v",
	KeyW:            "w",
	KeyX:            "x",
	KeyY:            "y",
	KeyZ:            "z",
	KeyLeftBracket:  "left bracket",
	KeyBackslash:    "backslash",
	KeyRightBracket: "right bracket",
	KeyGraveAccent:  "grave accent",
	KeyWorld1:       "world 1",
	KeyWorld2:       "world 2",
	KeyEscape:       "escape",
	KeyEnter:        "enter",
	KeyTab:          "tab",
	KeyBackspace:    "backspace",
	KeyInsert:       "insert",
	KeyDelete:       "delete",
	KeyRight:        "right",
	KeyLeft:         "left",
	KeyDown:         "down",
	KeyUp:           "up",
	KeyPageUp:       "page up",
	KeyPageDown:     "page down",
	KeyHome:         "home",
	KeyEnd:          "end",
	KeyCapsLock:     "caps lock",
	KeyScrollLock:   "scroll lock",
	KeyNumLock:      "num lock",
	KeyPrintScreen:  "print screen",
	KeyPause:        "pause",
	KeyF1:           "f1",
	KeyF2:           "f2",
	KeyF3:           "f3",
	KeyF4:           "f4",
	KeyF5:           "f5",
	KeyF6:           "f6",
	KeyF7:           "f7",
	KeyF8:           "f8",
	KeyF9:           "f9",
	KeyF10:          "f10",
	KeyF11:          "f11",
	KeyF12:          "f12",
	KeyF13:          "f13",
	KeyF14:          "f14",
	KeyF15:          "f15",
	KeyF16:          "f16",
	KeyF17:          "f17",
	KeyF18:          "f18",
	KeyF19:          "f19",
	KeyF20:          "f20",
	KeyF21:          "f21",
	KeyF22:          "f22",
	KeyF23:          "f23",
	KeyF24:          "f24",
	KeyF25:          "f25",
	KeyKP0:          "kp 0",
	KeyKP1:          "kp 1",
	KeyKP2:          "kp 2",
	KeyKP3:          "kp 3",
	KeyKP4:          "kp 4",
	KeyKP5:          "kp 5",
	KeyKP6:          "kp 6",
	KeyKP7:          "kp 7",
	KeyKP8:          "kp 8",
	KeyKP9:          "kp 9",
	KeyKPDecimal:    "kp decimal",
	KeyKPDivide:     "kp divide",
	KeyKPMultiply:   "kp multiply",
	KeyKPSubtract:   "kp subtract",
	KeyKPAdd:        "kp add",
	KeyKPEnter:      "kp enter",
	KeyKPEqual:      "kp equal",
	KeyLeftShift:    "left shift",
	KeyLeftControl:  "left control",
	KeyLeftAlt:      "left alt",
	KeyLeftSuper:    "left super",
	KeyRightShift:   "right shift",
	KeyRightControl: "right control",
	KeyRightAlt:     "right alt",
	KeyRightSuper:   "right super",
	KeyMenu:         "menu",
}

func (k Key) String() string {
	if s, ok := keyNames[k]; ok {
		return s
	}

	return "unknown"
}

// Name returns the layout-dependent printable name of k, as reported by
// the native library. It returns ErrUnnamedKey for keys that do not
// correspond to a printable character, such as function and modifier
// keys.
func (k Key) Name() (string, error) {
	name := glfw.GetKeyName(glfw.Key(k), 0)
	if name == "" {
		return "", ErrUnnamedKey
	}
	return name, nil
}

// Scancode returns the platform-specific scancode of k, or -1 if the key
// is not present on the current platform.
func (k Key) Scancode() int {
	return glfw.GetKeyScancode(glfw.Key(k))
}

// ModifierKey is a bitmask of the modifier keys held down when an input
// event was generated.
type ModifierKey int

const (
	ModShift    ModifierKey = ModifierKey(glfw.ModShift)
	ModControl  ModifierKey = ModifierKey(glfw.ModControl)
	ModAlt      ModifierKey = ModifierKey(glfw.ModAlt)
	ModSuper    ModifierKey = ModifierKey(glfw.ModSuper)
	ModCapsLock ModifierKey = ModifierKey(glfw.ModCapsLock)
	ModNumLock  ModifierKey = ModifierKey(glfw.ModNumLock)
)

var modNames = [...]struct {
	mod  ModifierKey
	name string
}{
	{ModShift, "shift"},
	{ModControl, "control"},
	{ModAlt, "alt"},
	{ModSuper, "super"},
	{ModCapsLock, "caps lock"},
	{ModNumLock, "num lock"},
}

func (mod ModifierKey) String() string {
	var parts []string
	for _, m := range modNames {
		if mod&m.mod != 0 {
			parts = append(parts, m.name)
		}
	}
	if len(parts) == 0 {
		return "none"
	}

	return strings.Join(parts, "+")
}

// Action describes what happened to a key or button.
type Action int

const (
	Release Action = Action(glfw.Release)
	Press   Action = Action(glfw.Press)
	Repeat  Action = Action(glfw.Repeat)
)

func (a Action) String() string {
	switch a {
	case Release:
		return "release"
	case Press:
		return "press"
	case Repeat:
		return "repeat"
	}

	return "unknown"
}
