// Package pane provides windows, monitors, cursors, and joysticks on
// top of the platform's native windowing facilities, along with typed
// events for the things that happen to them.
//
// The underlying library imposes its threading rules on this package:
// unless documented otherwise, functions must be called from the main
// thread, after Init has succeeded and before Terminate is called. Call
// runtime.LockOSThread from the main goroutine's init function to keep
// it on the main thread. Event callbacks are invoked synchronously
// during PollEvents and the other event processing functions, and event
// processing must not be re-entered from within a callback.
package pane
