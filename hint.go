package pane

import "github.com/go-gl/glfw/v3.3/glfw"

// DontCare may be used for size limits, aspect ratios, and numeric
// window options to indicate that any value is acceptable.
const DontCare = glfw.DontCare

// A WindowOption configures a window at creation time. The zero set of
// options produces a visible, resizable, decorated window with a default
// OpenGL context.
type WindowOption func(cfg *windowConfig)

type hintPair struct {
	hint  glfw.Hint
	value int
}

type windowConfig struct {
	hints   []hintPair
	monitor *glfw.Monitor
	share   *glfw.Window
}

func newWindowConfig(opts []WindowOption) *windowConfig {
	var cfg windowConfig
	for _, opt := range opts {
		opt(&cfg)
	}
	return &cfg
}

// apply resets the underlying library's creation hints to their defaults
// and then applies the configured ones in order.
func (cfg *windowConfig) apply() {
	glfw.DefaultWindowHints()
	for _, h := range cfg.hints {
		glfw.WindowHint(h.hint, h.value)
	}
}

func setHint(hint glfw.Hint, value int) WindowOption {
	return func(cfg *windowConfig) {
		cfg.hints = append(cfg.hints, hintPair{hint: hint, value: value})
	}
}

func setBoolHint(hint glfw.Hint, v bool) WindowOption {
	value := glfw.False
	if v {
		value = glfw.True
	}
	return setHint(hint, value)
}

// Fullscreen makes the window full screen on the given monitor, using
// the given video mode. A nil monitor is ignored, producing a normal
// windowed window.
func Fullscreen(m *Monitor) WindowOption {
	return func(cfg *windowConfig) {
		if m != nil {
			cfg.monitor = m.m
		}
	}
}

// SharedWith makes the new window's context share objects, such as
// textures and buffers, with the context of w.
func SharedWith(w *Window) WindowOption {
	return func(cfg *windowConfig) {
		if w != nil {
			cfg.share = w.w
		}
	}
}

// Resizable sets whether the user can resize the window. Windows are
// resizable by default.
func Resizable(resizable bool) WindowOption {
	return setBoolHint(glfw.Resizable, resizable)
}

// Visible sets whether the window is initially visible. An invisible
// window can be shown later with Show.
func Visible(visible bool) WindowOption {
	return setBoolHint(glfw.Visible, visible)
}

// Decorated sets whether the window has decorations such as a border and
// a close widget.
func Decorated(decorated bool) WindowOption {
	return setBoolHint(glfw.Decorated, decorated)
}

// Focused sets whether the window is given input focus when it is
// created. This is ignored for full screen and initially hidden windows.
func Focused(focused bool) WindowOption {
	return setBoolHint(glfw.Focused, focused)
}

// AutoIconify sets whether a full screen window iconifies automatically
// when it loses input focus, restoring the monitor's previous video
// mode.
func AutoIconify(autoIconify bool) WindowOption {
	return setBoolHint(glfw.AutoIconify, autoIconify)
}

// Floating sets whether the window floats above other regular windows.
func Floating(floating bool) WindowOption {
	return setBoolHint(glfw.Floating, floating)
}

// Maximized sets whether the window is maximized when it is created.
func Maximized(maximized bool) WindowOption {
	return setBoolHint(glfw.Maximized, maximized)
}

// CenterCursor sets whether the cursor is centered over a newly created
// full screen window.
func CenterCursor(center bool) WindowOption {
	return setBoolHint(glfw.CenterCursor, center)
}

// TransparentFramebuffer sets whether the window's framebuffer
// compositing supports per-pixel alpha.
func TransparentFramebuffer(transparent bool) WindowOption {
	return setBoolHint(glfw.TransparentFramebuffer, transparent)
}

// FocusOnShow sets whether the window is given input focus whenever Show
// is called on it.
func FocusOnShow(focus bool) WindowOption {
	return setBoolHint(glfw.FocusOnShow, focus)
}

// ScaleToMonitor sets whether the window's content area is resized in
// proportion to the content scale of the monitor it is placed on.
func ScaleToMonitor(scale bool) WindowOption {
	return setBoolHint(glfw.ScaleToMonitor, scale)
}

// RedBits sets the desired red channel depth of the default framebuffer.
// DontCare is accepted.
func RedBits(bits int) WindowOption {
	return setHint(glfw.RedBits, bits)
}

// GreenBits sets the desired green channel depth of the default
// framebuffer. DontCare is accepted.
func GreenBits(bits int) WindowOption {
	return setHint(glfw.GreenBits, bits)
}

// BlueBits sets the desired blue channel depth of the default
// framebuffer. DontCare is accepted.
func BlueBits(bits int) WindowOption {
	return setHint(glfw.BlueBits, bits)
}

// AlphaBits sets the desired alpha channel depth of the default
// framebuffer. DontCare is accepted.
func AlphaBits(bits int) WindowOption {
	return setHint(glfw.AlphaBits, bits)
}

// DepthBits sets the desired depth buffer precision of the default
// framebuffer. DontCare is accepted.
func DepthBits(bits int) WindowOption {
	return setHint(glfw.DepthBits, bits)
}

// StencilBits sets the desired stencil buffer precision of the default
// framebuffer. DontCare is accepted.
func StencilBits(bits int) WindowOption {
	return setHint(glfw.StencilBits, bits)
}

// Samples sets the number of samples per pixel for multisampling, with 0
// disabling it. DontCare is accepted.
func Samples(samples int) WindowOption {
	return setHint(glfw.Samples, samples)
}

// RefreshRate sets the desired refresh rate for full screen windows.
// Windowed mode ignores it. DontCare, the default, selects the highest
// available rate.
func RefreshRate(rate int) WindowOption {
	return setHint(glfw.RefreshRate, rate)
}

// SRGBCapable sets whether the default framebuffer should be sRGB
// capable.
func SRGBCapable(capable bool) WindowOption {
	return setBoolHint(glfw.SRGBCapable, capable)
}

// DoubleBuffer sets whether the default framebuffer is double buffered.
// It is by default.
func DoubleBuffer(double bool) WindowOption {
	return setBoolHint(glfw.DoubleBuffer, double)
}

// API identifies a client rendering API to create a context for.
type API int

const (
	// OpenGLAPI creates an OpenGL context. This is the default.
	OpenGLAPI API = API(glfw.OpenGLAPI)

	// OpenGLESAPI creates an OpenGL ES context.
	OpenGLESAPI API = API(glfw.OpenGLESAPI)

	// NoAPI creates no context at all, for windows that are drawn to by
	// other means, such as Vulkan.
	NoAPI API = API(glfw.NoAPI)
)

func (api API) String() string {
	switch api {
	case OpenGLAPI:
		return "OpenGL"
	case OpenGLESAPI:
		return "OpenGL ES"
	case NoAPI:
		return "none"
	}

	return "unknown"
}

// ClientAPI sets which client API to create a context for.
func ClientAPI(api API) WindowOption {
	return setHint(glfw.ClientAPI, int(api))
}

// ContextVersion sets the minimum client API version that the created
// context must be compatible with.
func ContextVersion(major, minor int) WindowOption {
	return func(cfg *windowConfig) {
		setHint(glfw.ContextVersionMajor, major)(cfg)
		setHint(glfw.ContextVersionMinor, minor)(cfg)
	}
}

// Profile identifies an OpenGL profile that a context can be created
// for.
type Profile int

const (
	AnyProfile    Profile = Profile(glfw.OpenGLAnyProfile)
	CoreProfile   Profile = Profile(glfw.OpenGLCoreProfile)
	CompatProfile Profile = Profile(glfw.OpenGLCompatProfile)
)

func (p Profile) String() string {
	switch p {
	case AnyProfile:
		return "any"
	case CoreProfile:
		return "core"
	case CompatProfile:
		return "compatibility"
	}

	return "unknown"
}

// OpenGLProfile sets which OpenGL profile to create a context for.
// Requesting a specific profile requires ContextVersion(3, 2) or higher.
func OpenGLProfile(profile Profile) WindowOption {
	return setHint(glfw.OpenGLProfile, int(profile))
}

// ForwardCompatible sets whether the created OpenGL context should be
// forward compatible, with all functionality deprecated in the requested
// version removed.
func ForwardCompatible(compatible bool) WindowOption {
	return setBoolHint(glfw.OpenGLForwardCompatible, compatible)
}

// DebugContext sets whether the created context should be a debug
// context.
func DebugContext(debug bool) WindowOption {
	return setBoolHint(glfw.OpenGLDebugContext, debug)
}

// NoErrorContext sets whether the created context skips error reporting,
// turning situations that would have produced an API error into undefined
// behavior in exchange for a bit of speed.
func NoErrorContext(noError bool) WindowOption {
	return setBoolHint(glfw.ContextNoError, noError)
}

// Robustness identifies a robustness strategy that a context can be
// created with.
type Robustness int

const (
	// NoRobustness creates a context with no robustness strategy. This
	// is the default.
	NoRobustness Robustness = Robustness(glfw.NoRobustness)

	// NoResetNotification creates a context that is never notified of
	// graphics resets.
	NoResetNotification Robustness = Robustness(glfw.NoResetNotification)

	// LoseContextOnReset creates a context that is lost when a graphics
	// reset occurs.
	LoseContextOnReset Robustness = Robustness(glfw.LoseContextOnReset)
)

func (r Robustness) String() string {
	switch r {
	case NoRobustness:
		return "none"
	case NoResetNotification:
		return "no reset notification"
	case LoseContextOnReset:
		return "lose context on reset"
	}

	return "unknown"
}

// ContextRobustness sets the robustness strategy of the created context.
func ContextRobustness(r Robustness) WindowOption {
	return setHint(glfw.ContextRobustness, int(r))
}

// ReleaseBehavior identifies what a context does with its pending
// commands when it is released from being current.
type ReleaseBehavior int

const (
	// AnyReleaseBehavior uses the default behavior of the context's API.
	AnyReleaseBehavior ReleaseBehavior = ReleaseBehavior(glfw.AnyReleaseBehavior)

	// ReleaseBehaviorFlush flushes pending commands on release.
	ReleaseBehaviorFlush ReleaseBehavior = ReleaseBehavior(glfw.ReleaseBehaviorFlush)

	// ReleaseBehaviorNone leaves pending commands queued on release.
	ReleaseBehaviorNone ReleaseBehavior = ReleaseBehavior(glfw.ReleaseBehaviorNone)
)

func (b ReleaseBehavior) String() string {
	switch b {
	case AnyReleaseBehavior:
		return "any"
	case ReleaseBehaviorFlush:
		return "flush"
	case ReleaseBehaviorNone:
		return "none"
	}

	return "unknown"
}

// ContextReleaseBehavior sets what the created context does with pending
// commands when it is released from being current.
func ContextReleaseBehavior(b ReleaseBehavior) WindowOption {
	return setHint(glfw.ContextReleaseBehavior, int(b))
}
