package pane

import (
	"errors"
	"fmt"

	"github.com/go-gl/glfw/v3.3/glfw"
)

// ErrorCode identifies a class of error reported by the native library
// through its error callback. The values are the native error codes.
type ErrorCode int

const (
	NotInitialized     ErrorCode = ErrorCode(glfw.NotInitialized)
	NoCurrentContext   ErrorCode = ErrorCode(glfw.NoCurrentContext)
	InvalidEnum        ErrorCode = ErrorCode(glfw.InvalidEnum)
	InvalidValue       ErrorCode = ErrorCode(glfw.InvalidValue)
	OutOfMemory        ErrorCode = ErrorCode(glfw.OutOfMemory)
	APIUnavailable     ErrorCode = ErrorCode(glfw.APIUnavailable)
	VersionUnavailable ErrorCode = ErrorCode(glfw.VersionUnavailable)
	PlatformError      ErrorCode = ErrorCode(glfw.PlatformError)
	FormatUnavailable  ErrorCode = ErrorCode(glfw.FormatUnavailable)
	NoWindowContext    ErrorCode = ErrorCode(glfw.NoWindowContext)
)

func (code ErrorCode) String() string {
	switch code {
	case NotInitialized:
		return "not initialized"
	case NoCurrentContext:
		return "no current context"
	case InvalidEnum:
		return "invalid enum"
	case InvalidValue:
		return "invalid value"
	case OutOfMemory:
		return "out of memory"
	case APIUnavailable:
		return "API unavailable"
	case VersionUnavailable:
		return "version unavailable"
	case PlatformError:
		return "platform error"
	case FormatUnavailable:
		return "format unavailable"
	case NoWindowContext:
		return "no window context"
	}

	return "unknown"
}

// Error is an error reported by the native library. Code is the native
// error code and Desc is the human-readable description delivered
// alongside it.
type Error struct {
	Code ErrorCode
	Desc string
}

func (err *Error) Error() string {
	if err.Desc == "" {
		return err.Code.String()
	}
	return fmt.Sprintf("%v: %v", err.Code, err.Desc)
}

// Is reports whether target matches err. An *Error with an empty Desc
// matches any error of the same code, so
//
//	errors.Is(err, &Error{Code: PlatformError})
//
// checks for a class of error without caring about the description.
func (err *Error) Is(target error) bool {
	terr, ok := target.(*Error)
	return ok && (terr.Code == err.Code) && ((terr.Desc == "") || (terr.Desc == err.Desc))
}

// convertError rewraps an error returned by the underlying binding into
// an *Error. Errors that did not originate from the native error
// callback are returned unchanged.
func convertError(err error) error {
	if err == nil {
		return nil
	}

	var gerr *glfw.Error
	if errors.As(err, &gerr) {
		return &Error{
			Code: ErrorCode(gerr.Code),
			Desc: gerr.Desc,
		}
	}
	return err
}

// Errors returned by local sanity checks. They indicate misuse of the
// calling operation and are never produced by the native library
// itself.
var (
	// ErrUnnamedKey is returned by Key.Name for keys that have no
	// printable name.
	ErrUnnamedKey = errors.New("key has no printable name")

	// ErrRampSize is returned when a gamma ramp's channels are empty or
	// differ in length.
	ErrRampSize = errors.New("gamma ramp channels must be non-empty and equal in length")

	// ErrInvalidImage is returned when an image with an empty bounds is
	// given to a call that uploads pixels to the native library.
	ErrInvalidImage = errors.New("image bounds are empty")

	// ErrBadMapping is returned when the native library rejects a
	// gamepad mapping update.
	ErrBadMapping = errors.New("invalid gamepad mapping")
)
