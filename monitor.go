package pane

import (
	"fmt"
	"image"

	"github.com/go-gl/glfw/v3.3/glfw"
)

// Monitor represents a connected display. Monitors are owned by the
// underlying library; they are never created or destroyed by the caller
// and remain valid until a disconnection is reported via MonitorChange.
type Monitor struct {
	m *glfw.Monitor
}

func wrapMonitor(m *glfw.Monitor) *Monitor {
	if m == nil {
		return nil
	}
	return &Monitor{m: m}
}

// PrimaryMonitor returns the primary monitor, or nil if no monitors are
// connected. This is usually the monitor where global UI elements like
// the task bar are located.
func PrimaryMonitor() *Monitor {
	return wrapMonitor(glfw.GetPrimaryMonitor())
}

// Monitors returns all currently connected monitors, with the primary
// monitor first.
func Monitors() []*Monitor {
	gm := glfw.GetMonitors()
	monitors := make([]*Monitor, 0, len(gm))
	for _, m := range gm {
		monitors = append(monitors, wrapMonitor(m))
	}
	return monitors
}

// Equal reports whether two Monitor values refer to the same display.
// Monitor wrappers are created on demand, so pointer comparison of the
// wrappers themselves is not meaningful.
func (m *Monitor) Equal(m2 *Monitor) bool {
	if m == nil || m2 == nil {
		return m == m2
	}
	return m.m == m2.m
}

// Name returns a human-readable name of the monitor. The name is not
// guaranteed to be unique among connected monitors.
func (m *Monitor) Name() string {
	return m.m.GetName()
}

// Pos returns the position of the upper-left corner of the monitor in
// screen coordinates.
func (m *Monitor) Pos() image.Point {
	x, y := m.m.GetPos()
	return image.Pt(x, y)
}

// WorkArea returns the area of the monitor not occupied by global UI
// elements like the task bar, in screen coordinates.
func (m *Monitor) WorkArea() image.Rectangle {
	x, y, w, h := m.m.GetWorkarea()
	return image.Rect(x, y, x+w, y+h)
}

// PhysicalSize returns the size of the monitor's display area in
// millimetres, as reported by the display itself. Some displays report
// inaccurate values.
func (m *Monitor) PhysicalSize() (width, height int) {
	return m.m.GetPhysicalSize()
}

// ContentScale returns the ratio between the monitor's current DPI and
// the platform's default DPI.
func (m *Monitor) ContentScale() (x, y float32) {
	return m.m.GetContentScale()
}

// VideoMode returns the monitor's current video mode. If a full screen
// window is present on the monitor, this is the mode that window has
// set.
func (m *Monitor) VideoMode() *VideoMode {
	return wrapVideoMode(m.m.GetVideoMode())
}

// VideoModes returns all video modes supported by the monitor, sorted
// first by color depth and then by resolution area, both ascending.
func (m *Monitor) VideoModes() []*VideoMode {
	gm := m.m.GetVideoModes()
	modes := make([]*VideoMode, 0, len(gm))
	for _, mode := range gm {
		modes = append(modes, wrapVideoMode(mode))
	}
	return modes
}

// SetGamma generates a gamma ramp from the exponent gamma and sets it
// for the monitor. gamma must be finite and greater than zero.
func (m *Monitor) SetGamma(gamma float32) {
	m.m.SetGamma(gamma)
}

// GammaRamp returns the monitor's current gamma ramp. The returned ramp
// is a copy and may be modified freely.
func (m *Monitor) GammaRamp() *GammaRamp {
	gr := m.m.GetGammaRamp()
	if gr == nil {
		return nil
	}
	return &GammaRamp{Red: gr.Red, Green: gr.Green, Blue: gr.Blue}
}

// SetGammaRamp sets the monitor's gamma ramp. All three channels must be
// non-empty and of equal length; on some platforms the length must also
// be exactly 256.
func (m *Monitor) SetGammaRamp(ramp *GammaRamp) error {
	if err := ramp.validate(); err != nil {
		return err
	}
	m.m.SetGammaRamp(&glfw.GammaRamp{Red: ramp.Red, Green: ramp.Green, Blue: ramp.Blue})
	return nil
}

// VideoMode describes a monitor's resolution, color depth, and refresh
// rate.
type VideoMode struct {
	// Size is the resolution of the video mode in screen coordinates.
	Size image.Point

	// RedBits, GreenBits, and BlueBits are the bit depths of each color
	// channel.
	RedBits   int
	GreenBits int
	BlueBits  int

	// RefreshRate is the vertical refresh rate in Hz.
	RefreshRate int
}

func (vm *VideoMode) String() string {
	return fmt.Sprintf("%vx%v @ %v Hz (%v/%v/%v bits)",
		vm.Size.X, vm.Size.Y, vm.RefreshRate,
		vm.RedBits, vm.GreenBits, vm.BlueBits)
}

func wrapVideoMode(vm *glfw.VidMode) *VideoMode {
	if vm == nil {
		return nil
	}
	return &VideoMode{
		Size:        image.Pt(vm.Width, vm.Height),
		RedBits:     vm.RedBits,
		GreenBits:   vm.GreenBits,
		BlueBits:    vm.BlueBits,
		RefreshRate: vm.RefreshRate,
	}
}

// GammaRamp describes the response curve of each color channel of a
// monitor. Each channel is a lookup table of unsigned 16-bit values.
type GammaRamp struct {
	Red, Green, Blue []uint16
}

// NewGammaRamp returns a GammaRamp with all three channels allocated to
// size entries.
func NewGammaRamp(size int) *GammaRamp {
	return &GammaRamp{
		Red:   make([]uint16, size),
		Green: make([]uint16, size),
		Blue:  make([]uint16, size),
	}
}

func (ramp *GammaRamp) validate() error {
	if ramp == nil || len(ramp.Red) == 0 {
		return ErrRampSize
	}
	if (len(ramp.Red) != len(ramp.Green)) || (len(ramp.Red) != len(ramp.Blue)) {
		return ErrRampSize
	}
	return nil
}
