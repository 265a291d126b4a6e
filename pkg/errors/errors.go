// Package errors provides structured error reporting for the velt library.
//
// The steady-state frame protocol has no failure paths: out-of-range values
// are clamped and unresolvable overlay requests are dropped. What remains
// are caller contract violations (duplicate instance ids, state registered
// twice) and dropped requests worth surfacing during development. Those are
// reported through a pluggable handler rather than returned or panicked.
package errors

import (
	"fmt"
	"time"
)

// ErrorKind identifies the category of an error.
type ErrorKind int

const (
	// KindUnknown indicates an error of unknown type.
	KindUnknown ErrorKind = iota
	// KindContract indicates a caller contract violation, such as a
	// duplicate widget instance id.
	KindContract
	// KindOverlay indicates an overlay request that was dropped.
	KindOverlay
	// KindState indicates a malformed component state that was clamped.
	KindState
	// KindConfig indicates a theme or configuration loading failure.
	KindConfig
)

func (k ErrorKind) String() string {
	switch k {
	case KindContract:
		return "contract"
	case KindOverlay:
		return "overlay"
	case KindState:
		return "state"
	case KindConfig:
		return "config"
	default:
		return "unknown"
	}
}

// VeltError represents a structured error in the velt library.
type VeltError struct {
	// Op is the operation that reported the error (e.g., "overlay.Open").
	Op string
	// Kind categorizes the error.
	Kind ErrorKind
	// Err is the underlying error.
	Err error
	// Instance is the widget instance id involved, if applicable.
	Instance string
	// Timestamp is when the error occurred.
	Timestamp time.Time
}

// Error implements the error interface.
func (e *VeltError) Error() string {
	if e.Instance != "" {
		return fmt.Sprintf("%s [%s] instance=%s: %v", e.Op, e.Kind, e.Instance, e.Err)
	}
	return fmt.Sprintf("%s [%s]: %v", e.Op, e.Kind, e.Err)
}

// Unwrap returns the underlying error.
func (e *VeltError) Unwrap() error {
	return e.Err
}

// New constructs a VeltError with the given operation and kind.
func New(op string, kind ErrorKind, err error) *VeltError {
	return &VeltError{Op: op, Kind: kind, Err: err, Timestamp: time.Now()}
}

// Contractf reports a caller contract violation with a formatted message.
func Contractf(op, instance, format string, args ...any) {
	Report(&VeltError{
		Op:       op,
		Kind:     KindContract,
		Err:      fmt.Errorf(format, args...),
		Instance: instance,
	})
}
