package export

import (
	"errors"
	"fmt"
)

// Sentinel errors for export failure conditions. Both are reported to the
// caller and abort the operation; nothing here is fatal to the process.
var (
	// ErrTargetNotFound reports a region handle that does not resolve to a
	// renderable surface.
	ErrTargetNotFound = errors.New("export: target region not found")

	// ErrRasterizationFailed reports a failed capture of a resolved region.
	// The failure is surfaced to the caller, not retried.
	ErrRasterizationFailed = errors.New("export: rasterization failed")
)

// Error records an error that occurred during a specific export step. It
// wraps the underlying error and names the step for context.
type Error struct {
	Op  string // step name, e.g. "Resolve", "Rasterize", "Save"
	Err error  // underlying error
}

func (e *Error) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("export.%s: %v", e.Op, e.Err)
	}
	return fmt.Sprintf("export.%s: unknown error", e.Op)
}

func (e *Error) Unwrap() error {
	return e.Err
}

// newError creates an Error wrapping err with step context.
func newError(op string, err error) *Error {
	return &Error{Op: op, Err: err}
}
