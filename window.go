package pane

import (
	"image"
	"slices"

	"deedles.dev/pane/internal/debug"
	"github.com/go-gl/glfw/v3.3/glfw"
	"golang.org/x/image/draw"
)

// Window represents a window and its associated context.
//
// The exported function fields are event callbacks. A nil field causes
// the corresponding event to be discarded. The fields are read during
// event processing, so they should only be assigned from the main
// thread, and assigning to one replaces the previously stored callback.
type Window struct {
	// Move is called when the window is moved.
	Move func(ev MoveEvent)

	// Resize is called when the window's content area is resized.
	Resize func(ev ResizeEvent)

	// FramebufferResize is called when the window's framebuffer is
	// resized.
	FramebufferResize func(ev FramebufferResizeEvent)

	// ContentScaleChange is called when the window's content scale
	// changes.
	ContentScaleChange func(ev ContentScaleEvent)

	// Close is called when the user attempts to close the window. The
	// window's close flag is set before the callback runs, so a
	// callback that wants to keep the window open can clear it again
	// with SetShouldClose.
	Close func(ev CloseEvent)

	// Refresh is called when the window's contents need to be redrawn.
	Refresh func(ev RefreshEvent)

	// ToggleFocus is called when the window gains or loses input focus.
	ToggleFocus func(ev ToggleFocusEvent)

	// ToggleIconify is called when the window is iconified or restored.
	ToggleIconify func(ev ToggleIconifyEvent)

	// ToggleMaximize is called when the window is maximized or
	// restored.
	ToggleMaximize func(ev ToggleMaximizeEvent)

	// Key is called when a key is pressed, released, or repeated while
	// the window has input focus.
	Key func(ev KeyEvent)

	// Char is called for each Unicode character produced by keyboard
	// input to the window.
	Char func(ev CharEvent)

	// MouseButton is called when a mouse button is pressed or released
	// over the window.
	MouseButton func(ev MouseButtonEvent)

	// CursorMove is called when the cursor moves over the window.
	CursorMove func(ev CursorMoveEvent)

	// CursorEnter is called when the cursor enters or leaves the
	// window's content area.
	CursorEnter func(ev CursorEnterEvent)

	// Scroll is called when the window receives scrolling input.
	Scroll func(ev ScrollEvent)

	// Drop is called when files or directories are dropped onto the
	// window.
	Drop func(ev DropEvent)

	w *glfw.Window

	// The underlying library has no getters for these, so they are
	// tracked here.
	title  string
	cursor *Cursor
}

// CreateWindow creates a window with the given content area size and
// title, along with a context for it. The options are applied on top of
// the default creation settings, in order.
//
// The returned window's event callbacks are installed immediately, so
// they may fire during the next event poll even if the corresponding
// fields were assigned after creation.
func CreateWindow(width, height int, title string, opts ...WindowOption) (*Window, error) {
	cfg := newWindowConfig(opts)
	cfg.apply()

	gw, err := glfw.CreateWindow(width, height, title, cfg.monitor, cfg.share)
	if err != nil {
		return nil, convertError(err)
	}

	w := &Window{w: gw, title: title}
	windows[gw] = w
	w.installCallbacks()
	debug.Printf("created window %q", title)
	return w, nil
}

// Destroy destroys the window and its context. No other method may be
// called on the window afterwards.
func (w *Window) Destroy() {
	debug.Printf("destroying window %q", w.title)
	delete(windows, w.w)
	w.w.Destroy()
	w.w = nil
}

func (w *Window) installCallbacks() {
	w.w.SetPosCallback(w.dispatchMove)
	w.w.SetSizeCallback(w.dispatchResize)
	w.w.SetFramebufferSizeCallback(w.dispatchFramebufferResize)
	w.w.SetContentScaleCallback(w.dispatchContentScale)
	w.w.SetCloseCallback(w.dispatchClose)
	w.w.SetRefreshCallback(w.dispatchRefresh)
	w.w.SetFocusCallback(w.dispatchToggleFocus)
	w.w.SetIconifyCallback(w.dispatchToggleIconify)
	w.w.SetMaximizeCallback(w.dispatchToggleMaximize)
	w.w.SetKeyCallback(w.dispatchKey)
	w.w.SetCharCallback(w.dispatchChar)
	w.w.SetMouseButtonCallback(w.dispatchMouseButton)
	w.w.SetCursorPosCallback(w.dispatchCursorMove)
	w.w.SetCursorEnterCallback(w.dispatchCursorEnter)
	w.w.SetScrollCallback(w.dispatchScroll)
	w.w.SetDropCallback(w.dispatchDrop)
}

func (w *Window) dispatchMove(_ *glfw.Window, x, y int) {
	if w.Move != nil {
		w.Move(MoveEvent{Window: w, Pos: image.Pt(x, y)})
	}
}

func (w *Window) dispatchResize(_ *glfw.Window, width, height int) {
	if w.Resize != nil {
		w.Resize(ResizeEvent{Window: w, Size: image.Pt(width, height)})
	}
}

func (w *Window) dispatchFramebufferResize(_ *glfw.Window, width, height int) {
	if w.FramebufferResize != nil {
		w.FramebufferResize(FramebufferResizeEvent{Window: w, Size: image.Pt(width, height)})
	}
}

func (w *Window) dispatchContentScale(_ *glfw.Window, x, y float32) {
	if w.ContentScaleChange != nil {
		w.ContentScaleChange(ContentScaleEvent{Window: w, X: x, Y: y})
	}
}

func (w *Window) dispatchClose(_ *glfw.Window) {
	if w.Close != nil {
		w.Close(CloseEvent{Window: w})
	}
}

func (w *Window) dispatchRefresh(_ *glfw.Window) {
	if w.Refresh != nil {
		w.Refresh(RefreshEvent{Window: w})
	}
}

func (w *Window) dispatchToggleFocus(_ *glfw.Window, focused bool) {
	if w.ToggleFocus != nil {
		w.ToggleFocus(ToggleFocusEvent{Window: w, Focused: focused})
	}
}

func (w *Window) dispatchToggleIconify(_ *glfw.Window, iconified bool) {
	if w.ToggleIconify != nil {
		w.ToggleIconify(ToggleIconifyEvent{Window: w, Iconified: iconified})
	}
}

func (w *Window) dispatchToggleMaximize(_ *glfw.Window, maximized bool) {
	if w.ToggleMaximize != nil {
		w.ToggleMaximize(ToggleMaximizeEvent{Window: w, Maximized: maximized})
	}
}

func (w *Window) dispatchKey(_ *glfw.Window, key glfw.Key, scancode int, action glfw.Action, mods glfw.ModifierKey) {
	if w.Key != nil {
		w.Key(KeyEvent{
			Window:   w,
			Key:      Key(key),
			Scancode: scancode,
			Action:   Action(action),
			Mods:     ModifierKey(mods),
		})
	}
}

func (w *Window) dispatchChar(_ *glfw.Window, char rune) {
	if w.Char != nil {
		w.Char(CharEvent{Window: w, Char: char})
	}
}

func (w *Window) dispatchMouseButton(_ *glfw.Window, button glfw.MouseButton, action glfw.Action, mods glfw.ModifierKey) {
	if w.MouseButton != nil {
		w.MouseButton(MouseButtonEvent{
			Window: w,
			Button: MouseButton(button),
			Action: Action(action),
			Mods:   ModifierKey(mods),
		})
	}
}

func (w *Window) dispatchCursorMove(_ *glfw.Window, x, y float64) {
	if w.CursorMove != nil {
		w.CursorMove(CursorMoveEvent{Window: w, X: x, Y: y})
	}
}

func (w *Window) dispatchCursorEnter(_ *glfw.Window, entered bool) {
	if w.CursorEnter != nil {
		w.CursorEnter(CursorEnterEvent{Window: w, Entered: entered})
	}
}

func (w *Window) dispatchScroll(_ *glfw.Window, xoff, yoff float64) {
	if w.Scroll != nil {
		w.Scroll(ScrollEvent{Window: w, X: xoff, Y: yoff})
	}
}

func (w *Window) dispatchDrop(_ *glfw.Window, paths []string) {
	if w.Drop != nil {
		w.Drop(DropEvent{Window: w, Paths: slices.Clone(paths)})
	}
}

// ShouldClose returns the window's close flag. The flag is set when the
// user attempts to close the window and may be set or cleared manually
// with SetShouldClose.
func (w *Window) ShouldClose() bool {
	return w.w.ShouldClose()
}

// SetShouldClose sets the window's close flag.
func (w *Window) SetShouldClose(value bool) {
	w.w.SetShouldClose(value)
}

// Title returns the window's title. The underlying library provides no
// way to query it, so this is the most recent title set at creation or
// via SetTitle.
func (w *Window) Title() string {
	return w.title
}

// SetTitle sets the window's title.
func (w *Window) SetTitle(title string) {
	w.w.SetTitle(title)
	w.title = title
}

// iconSizes are the variants generated for a single-image SetIcon call.
var iconSizes = []int{16, 32, 48}

// SetIcon sets the window's icon. The system picks the image closest to
// the sizes it needs from those given, so passing several sizes of the
// same icon gives the best results. If exactly one image is given,
// scaled variants are generated for the common sizes automatically. With
// no images, the window reverts to its platform default icon.
func (w *Window) SetIcon(images ...image.Image) error {
	for _, img := range images {
		if img == nil || img.Bounds().Empty() {
			return ErrInvalidImage
		}
	}

	if len(images) == 1 {
		images = scaleIcon(images[0])
	}
	w.w.SetIcon(images)
	return nil
}

func scaleIcon(img image.Image) []image.Image {
	images := []image.Image{img}
	for _, size := range iconSizes {
		if img.Bounds().Dx() == size && img.Bounds().Dy() == size {
			continue
		}
		scaled := image.NewNRGBA(image.Rect(0, 0, size, size))
		draw.CatmullRom.Scale(scaled, scaled.Bounds(), img, img.Bounds(), draw.Over, nil)
		images = append(images, scaled)
	}
	return images
}

// Pos returns the position of the upper-left corner of the window's
// content area in screen coordinates.
func (w *Window) Pos() image.Point {
	x, y := w.w.GetPos()
	return image.Pt(x, y)
}

// SetPos moves the upper-left corner of the window's content area to pos
// in screen coordinates.
func (w *Window) SetPos(pos image.Point) {
	w.w.SetPos(pos.X, pos.Y)
}

// Size returns the size of the window's content area in screen
// coordinates.
func (w *Window) Size() image.Point {
	width, height := w.w.GetSize()
	return image.Pt(width, height)
}

// SetSize resizes the window's content area to size in screen
// coordinates. For full screen windows this picks a new resolution
// instead.
func (w *Window) SetSize(size image.Point) {
	w.w.SetSize(size.X, size.Y)
}

// SetSizeLimits constrains the size of the window's content area.
// Individual components may be DontCare to leave that limit unset.
func (w *Window) SetSizeLimits(min, max image.Point) {
	w.w.SetSizeLimits(min.X, min.Y, max.X, max.Y)
}

// SetAspectRatio constrains the aspect ratio of the window's content
// area to numer:denom. Pass DontCare for both to remove the constraint.
func (w *Window) SetAspectRatio(numer, denom int) {
	w.w.SetAspectRatio(numer, denom)
}

// FramebufferSize returns the size of the window's framebuffer in
// pixels.
func (w *Window) FramebufferSize() image.Point {
	width, height := w.w.GetFramebufferSize()
	return image.Pt(width, height)
}

// FrameSize returns the sizes of each edge of the window's frame,
// including decorations. The values are distances from the content area,
// so they are zero or positive.
func (w *Window) FrameSize() (left, top, right, bottom int) {
	return w.w.GetFrameSize()
}

// ContentScale returns the ratio between the window's current DPI and
// the platform's default DPI.
func (w *Window) ContentScale() (x, y float32) {
	return w.w.GetContentScale()
}

// Opacity returns the opacity of the window, including any decorations,
// in the range 0 to 1.
func (w *Window) Opacity() float32 {
	return w.w.GetOpacity()
}

// SetOpacity sets the opacity of the window, including any decorations.
// 1 is fully opaque and 0 is fully transparent.
func (w *Window) SetOpacity(opacity float32) {
	w.w.SetOpacity(opacity)
}

// Iconify minimizes the window. Iconifying a full screen window restores
// the monitor's original video mode until the window is restored.
func (w *Window) Iconify() {
	w.w.Iconify()
}

// Restore restores the window from iconification or maximization.
func (w *Window) Restore() {
	w.w.Restore()
}

// Maximize maximizes the window. This does nothing to full screen
// windows.
func (w *Window) Maximize() {
	w.w.Maximize()
}

// Show makes the window visible if it was hidden.
func (w *Window) Show() {
	w.w.Show()
}

// Hide makes the window invisible if it was shown.
func (w *Window) Hide() {
	w.w.Hide()
}

// Focus gives the window input focus, raising it to the front. To
// request the user's attention without stealing focus, use
// RequestAttention instead.
func (w *Window) Focus() {
	w.w.Focus()
}

// RequestAttention highlights the window in a platform-specific way,
// such as bouncing its icon, without giving it input focus.
func (w *Window) RequestAttention() {
	w.w.RequestAttention()
}

// Monitor returns the monitor the window is full screen on, or nil if it
// is windowed.
func (w *Window) Monitor() *Monitor {
	return wrapMonitor(w.w.GetMonitor())
}

// SetMonitor makes the window full screen on m with the given size and
// refresh rate, or, if m is nil, windowed with the given position and
// size. The refresh rate is ignored in windowed mode and may be DontCare
// otherwise.
func (w *Window) SetMonitor(m *Monitor, pos, size image.Point, refreshRate int) {
	var gm *glfw.Monitor
	if m != nil {
		gm = m.m
	}
	w.w.SetMonitor(gm, pos.X, pos.Y, size.X, size.Y, refreshRate)
}

func (w *Window) attrib(attrib glfw.Hint) bool {
	return w.w.GetAttrib(attrib) == glfw.True
}

func (w *Window) setAttrib(attrib glfw.Hint, v bool) {
	value := glfw.False
	if v {
		value = glfw.True
	}
	w.w.SetAttrib(attrib, value)
}

// Focused reports whether the window has input focus.
func (w *Window) Focused() bool {
	return w.attrib(glfw.Focused)
}

// Iconified reports whether the window is iconified.
func (w *Window) Iconified() bool {
	return w.attrib(glfw.Iconified)
}

// Maximized reports whether the window is maximized.
func (w *Window) Maximized() bool {
	return w.attrib(glfw.Maximized)
}

// Hovered reports whether the cursor is over the window's content area
// with no other window in the way.
func (w *Window) Hovered() bool {
	return w.attrib(glfw.Hovered)
}

// Visible reports whether the window is visible.
func (w *Window) Visible() bool {
	return w.attrib(glfw.Visible)
}

// Resizable reports whether the user can resize the window.
func (w *Window) Resizable() bool {
	return w.attrib(glfw.Resizable)
}

// SetResizable sets whether the user can resize the window.
func (w *Window) SetResizable(resizable bool) {
	w.setAttrib(glfw.Resizable, resizable)
}

// Decorated reports whether the window has decorations.
func (w *Window) Decorated() bool {
	return w.attrib(glfw.Decorated)
}

// SetDecorated sets whether the window has decorations.
func (w *Window) SetDecorated(decorated bool) {
	w.setAttrib(glfw.Decorated, decorated)
}

// Floating reports whether the window floats above other regular
// windows.
func (w *Window) Floating() bool {
	return w.attrib(glfw.Floating)
}

// SetFloating sets whether the window floats above other regular
// windows.
func (w *Window) SetFloating(floating bool) {
	w.setAttrib(glfw.Floating, floating)
}

// AutoIconify reports whether the window iconifies automatically when it
// is full screen and loses focus.
func (w *Window) AutoIconify() bool {
	return w.attrib(glfw.AutoIconify)
}

// SetAutoIconify sets whether the window iconifies automatically when it
// is full screen and loses focus.
func (w *Window) SetAutoIconify(autoIconify bool) {
	w.setAttrib(glfw.AutoIconify, autoIconify)
}

// FocusOnShow reports whether the window takes input focus when Show is
// called on it.
func (w *Window) FocusOnShow() bool {
	return w.attrib(glfw.FocusOnShow)
}

// SetFocusOnShow sets whether the window takes input focus when Show is
// called on it.
func (w *Window) SetFocusOnShow(focus bool) {
	w.setAttrib(glfw.FocusOnShow, focus)
}

// TransparentFramebuffer reports whether the window's framebuffer has
// per-pixel alpha compositing.
func (w *Window) TransparentFramebuffer() bool {
	return w.attrib(glfw.TransparentFramebuffer)
}

// ClientAPI returns the client API the window's context was created for.
func (w *Window) ClientAPI() API {
	return API(w.w.GetAttrib(glfw.ClientAPI))
}

// ContextVersion returns the version of the window's context.
func (w *Window) ContextVersion() (major, minor, rev int) {
	major = w.w.GetAttrib(glfw.ContextVersionMajor)
	minor = w.w.GetAttrib(glfw.ContextVersionMinor)
	rev = w.w.GetAttrib(glfw.ContextRevision)
	return major, minor, rev
}

// KeyAction returns the last reported state of the given key for the
// window: Press or Release. If sticky keys is enabled, a press that has
// come and gone since the last call is still reported as Press once.
func (w *Window) KeyAction(key Key) Action {
	return Action(w.w.GetKey(glfw.Key(key)))
}

// MouseButtonAction returns the last reported state of the given mouse
// button for the window.
func (w *Window) MouseButtonAction(button MouseButton) Action {
	return Action(w.w.GetMouseButton(glfw.MouseButton(button)))
}

// CursorPos returns the position of the cursor relative to the
// upper-left corner of the window's content area.
func (w *Window) CursorPos() (x, y float64) {
	return w.w.GetCursorPos()
}

// SetCursorPos moves the cursor to the given position relative to the
// upper-left corner of the window's content area. The window must have
// input focus.
func (w *Window) SetCursorPos(x, y float64) {
	w.w.SetCursorPos(x, y)
}

// CursorMode returns the window's cursor mode.
func (w *Window) CursorMode() CursorMode {
	return CursorMode(w.w.GetInputMode(glfw.CursorMode))
}

// SetCursorMode sets the window's cursor mode. CursorDisabled is the
// usual choice for mouse-look camera controls, often combined with raw
// mouse motion.
func (w *Window) SetCursorMode(mode CursorMode) {
	w.w.SetInputMode(glfw.CursorMode, int(mode))
}

func (w *Window) inputMode(mode glfw.InputMode) bool {
	return w.w.GetInputMode(mode) == glfw.True
}

func (w *Window) setInputMode(mode glfw.InputMode, v bool) {
	value := glfw.False
	if v {
		value = glfw.True
	}
	w.w.SetInputMode(mode, value)
}

// StickyKeys reports whether sticky keys is enabled for the window.
func (w *Window) StickyKeys() bool {
	return w.inputMode(glfw.StickyKeysMode)
}

// SetStickyKeys sets whether key presses are retained until polled with
// KeyAction, so that short presses between polls are not missed.
func (w *Window) SetStickyKeys(sticky bool) {
	w.setInputMode(glfw.StickyKeysMode, sticky)
}

// StickyMouseButtons reports whether sticky mouse buttons is enabled for
// the window.
func (w *Window) StickyMouseButtons() bool {
	return w.inputMode(glfw.StickyMouseButtonsMode)
}

// SetStickyMouseButtons sets whether button presses are retained until
// polled with MouseButtonAction.
func (w *Window) SetStickyMouseButtons(sticky bool) {
	w.setInputMode(glfw.StickyMouseButtonsMode, sticky)
}

// LockKeyMods reports whether key events include the caps lock and num
// lock state in their modifier bits.
func (w *Window) LockKeyMods() bool {
	return w.inputMode(glfw.LockKeyMods)
}

// SetLockKeyMods sets whether key events include the caps lock and num
// lock state in their modifier bits.
func (w *Window) SetLockKeyMods(lock bool) {
	w.setInputMode(glfw.LockKeyMods, lock)
}

// RawMouseMotion reports whether raw mouse motion is enabled for the
// window.
func (w *Window) RawMouseMotion() bool {
	return w.inputMode(glfw.RawMouseMotion)
}

// SetRawMouseMotion sets whether cursor motion is delivered unscaled and
// unaccelerated. It only takes effect while the cursor mode is
// CursorDisabled, and requires RawMouseMotionSupported.
func (w *Window) SetRawMouseMotion(raw bool) {
	w.setInputMode(glfw.RawMouseMotion, raw)
}

// Cursor returns the cursor set on the window by SetCursor. It returns
// nil if the window is using the default cursor.
func (w *Window) Cursor() *Cursor {
	return w.cursor
}

// SetCursor sets the cursor image shown while the cursor is over the
// window's content area. A nil cursor reverts to the default arrow.
func (w *Window) SetCursor(c *Cursor) {
	if c == nil {
		w.w.SetCursor(nil)
		w.cursor = nil
		return
	}
	w.w.SetCursor(c.c)
	w.cursor = c
}

// Clipboard returns the contents of the system clipboard, if it contains
// or can be converted to a UTF-8 string.
func (w *Window) Clipboard() string {
	return w.w.GetClipboardString()
}

// SetClipboard sets the system clipboard to s.
func (w *Window) SetClipboard(s string) {
	w.w.SetClipboardString(s)
}

// MakeContextCurrent makes the window's context the current one on the
// calling thread. A context may only be current on one thread at a time.
func (w *Window) MakeContextCurrent() {
	w.w.MakeContextCurrent()
}

// SwapBuffers swaps the front and back buffers of the window. If
// SwapInterval is nonzero, this waits on the monitor's vertical retrace
// first.
func (w *Window) SwapBuffers() {
	w.w.SwapBuffers()
}
