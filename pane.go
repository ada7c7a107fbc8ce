package pane

import (
	"time"

	"deedles.dev/pane/internal/debug"
	"github.com/go-gl/glfw/v3.3/glfw"
	"golang.org/x/exp/maps"
)

var (
	// MonitorChange, if not nil, is called when a monitor is connected
	// to or disconnected from the system. For a disconnection, only
	// Equal and comparison against previously returned monitors are
	// valid on the event's Monitor.
	MonitorChange func(ev MonitorChangeEvent)

	// JoystickChange, if not nil, is called when a joystick is
	// connected to or disconnected from the system.
	JoystickChange func(ev JoystickChangeEvent)
)

// windows maps native handles back to their wrappers so that native
// callbacks can be routed to the right window. It is only touched from
// the main thread, per the threading rules.
var windows = make(map[*glfw.Window]*Window)

// Init initializes the library. Most other functions may not be called
// until it succeeds, and it must be called from the main thread. If
// initialization fails, Init cleans up any partial state before
// returning the error.
func Init() error {
	err := glfw.Init()
	if err != nil {
		return convertError(err)
	}

	glfw.SetMonitorCallback(dispatchMonitorChange)
	glfw.SetJoystickCallback(dispatchJoystickChange)
	debug.Printf("initialized: %v", VersionString())
	return nil
}

// Terminate destroys any remaining windows and cursors and frees all
// resources held by the library. Once it has been called, Init must
// succeed again before most functions may be used.
func Terminate() {
	debug.Printf("terminating")
	clear(windows)
	glfw.Terminate()
}

func dispatchMonitorChange(m *glfw.Monitor, event glfw.PeripheralEvent) {
	if MonitorChange != nil {
		MonitorChange(MonitorChangeEvent{
			Monitor:   wrapMonitor(m),
			Connected: event == glfw.Connected,
		})
	}
}

func dispatchJoystickChange(j glfw.Joystick, event glfw.PeripheralEvent) {
	if JoystickChange != nil {
		JoystickChange(JoystickChangeEvent{
			Joystick:  Joystick(j),
			Connected: event == glfw.Connected,
		})
	}
}

// Windows returns all currently open windows, in no particular order.
func Windows() []*Window {
	return maps.Values(windows)
}

// Version returns the major, minor, and revision numbers of the
// underlying library. It may be called before Init.
func Version() (major, minor, rev int) {
	return glfw.GetVersion()
}

// VersionString returns a human-readable description of the underlying
// library's version and compile-time configuration. For the version
// numbers themselves, use Version instead. It may be called before
// Init.
func VersionString() string {
	return glfw.GetVersionString()
}

// PollEvents processes pending events and returns immediately,
// invoking the callbacks of whatever windows the events belong to. It
// must not be called from within a callback.
func PollEvents() {
	glfw.PollEvents()
}

// WaitEvents blocks until at least one event is available, then
// processes all pending events like PollEvents.
func WaitEvents() {
	glfw.WaitEvents()
}

// WaitEventsTimeout is like WaitEvents, except that it gives up and
// returns once d has elapsed with no events arriving.
func WaitEventsTimeout(d time.Duration) {
	glfw.WaitEventsTimeout(d.Seconds())
}

// PostEmptyEvent posts an empty event, waking up a blocked WaitEvents or
// WaitEventsTimeout call. Unlike most functions, it may be called from
// any thread.
func PostEmptyEvent() {
	glfw.PostEmptyEvent()
}

// Time returns the time elapsed since Init, or since the epoch was last
// moved by SetTime. It is measured with the system's highest-resolution
// monotonic clock.
func Time() time.Duration {
	return time.Duration(glfw.GetTime() * float64(time.Second))
}

// SetTime moves the epoch that Time measures from to d before now.
func SetTime(d time.Duration) {
	glfw.SetTime(d.Seconds())
}

// TimerValue returns the current value of the raw monotonic timer, in
// units of 1/TimerFrequency seconds.
func TimerValue() uint64 {
	return glfw.GetTimerValue()
}

// TimerFrequency returns the frequency of the raw monotonic timer in Hz.
func TimerFrequency() uint64 {
	return glfw.GetTimerFrequency()
}

// CurrentContext returns the window whose context is current on the
// calling thread, or nil if there is none.
func CurrentContext() *Window {
	gw := glfw.GetCurrentContext()
	if gw == nil {
		return nil
	}
	return windows[gw]
}

// DetachCurrentContext makes no context current on the calling thread.
func DetachCurrentContext() {
	glfw.DetachCurrentContext()
}

// SwapInterval sets how many vertical retraces SwapBuffers waits for,
// also known as vsync, for the current context. It must be set per
// context, after making it current.
func SwapInterval(interval int) {
	glfw.SwapInterval(interval)
}

// ExtensionSupported reports whether the named API extension, such as
// "GL_ARB_debug_output", is supported by the current context.
func ExtensionSupported(extension string) bool {
	return glfw.ExtensionSupported(extension)
}

// RawMouseMotionSupported reports whether raw mouse motion is available
// on the system. Window.SetRawMouseMotion does nothing where it is not.
func RawMouseMotionSupported() bool {
	return glfw.RawMouseMotionSupported()
}
