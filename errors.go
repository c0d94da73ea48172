package topocore

import "fmt"

// Code classifies a failure the way the wire boundary in §6/§7 expects:
// a short, stable identifier a caller can switch on, independent of the
// human-readable message attached to it.
type Code int

const (
	Success Code = iota
	InvalidArgument
	OutOfMemory
	AcceleratorUnavailable
	AcceleratorAllocFailed
	AcceleratorCopyFailed
	AcceleratorKernelFailed
	Internal
	Cancelled
)

// String returns the short human-readable description for a Code, with no
// stack trace and no stage context attached — callers decide how (or
// whether) to log it.
func (c Code) String() string {
	switch c {
	case Success:
		return "success"
	case InvalidArgument:
		return "invalid argument"
	case OutOfMemory:
		return "out of memory"
	case AcceleratorUnavailable:
		return "accelerator unavailable"
	case AcceleratorAllocFailed:
		return "accelerator allocation failed"
	case AcceleratorCopyFailed:
		return "accelerator copy failed"
	case AcceleratorKernelFailed:
		return "accelerator kernel failed"
	case Internal:
		return "internal error"
	case Cancelled:
		return "cancelled"
	default:
		return "unknown error"
	}
}

// Error is the error type returned at every topocore boundary. Code is the
// stable classification; Msg adds context specific to the failing call.
type Error struct {
	Code Code
	Msg  string
}

func (e *Error) Error() string {
	if e.Msg == "" {
		return "topocore: " + e.Code.String()
	}
	return "topocore: " + e.Code.String() + ": " + e.Msg
}

// Is implements errors.Is support keyed on Code alone, so a wrapped *Error
// with call-specific Msg still compares equal to the bare sentinel for its
// class: errors.Is(err, ErrInvalidArgument) holds even though err carries
// "k must be >= 1" and ErrInvalidArgument carries no message at all.
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	if !ok {
		return false
	}
	return e.Code == t.Code
}

func newErr(code Code, msg string) *Error {
	return &Error{Code: code, Msg: msg}
}

func codeErrorf(code Code, format string, args ...any) error {
	return &Error{Code: code, Msg: fmt.Sprintf(format, args...)}
}

// Sentinel errors for the argument-free failure classes, following the
// sentinel convention the corpus uses for typed error taxonomies
// (katalvlaran-lvlath/builder/errors.go): exported package-level values
// callers check with errors.Is rather than string matching.
var (
	ErrInvalidArgument         = newErr(InvalidArgument, "")
	ErrOutOfMemory             = newErr(OutOfMemory, "")
	ErrAcceleratorUnavailable  = newErr(AcceleratorUnavailable, "")
	ErrAcceleratorAllocFailed  = newErr(AcceleratorAllocFailed, "")
	ErrAcceleratorCopyFailed   = newErr(AcceleratorCopyFailed, "")
	ErrAcceleratorKernelFailed = newErr(AcceleratorKernelFailed, "")
	ErrInternal                = newErr(Internal, "")
	ErrCancelled               = newErr(Cancelled, "")
)
