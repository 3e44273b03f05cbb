package tensor

import (
	"errors"
	"fmt"
)

// Error kinds reported by array operations. Use errors.Is to test for them.
var (
	ErrShapeMismatch   = errors.New("shape mismatch")
	ErrIndexOutOfRange = errors.New("index out of range")
	ErrAxisOutOfRange  = errors.New("axis out of range")
	ErrSizeMismatch    = errors.New("size mismatch")
	ErrDTypeMismatch   = errors.New("dtype mismatch")
	ErrSignMismatch    = errors.New("sign mismatch")
	ErrInvalidArgument = errors.New("invalid argument")
)

// Error describes a failed array operation.
type Error struct {
	Op      string // Operation that failed (e.g. "concatenate", "index")
	Err     error  // One of the Err* kinds above
	Details string // Additional details
}

// Error implements the error interface.
func (e *Error) Error() string {
	if e.Details == "" {
		return fmt.Sprintf("%s: %v", e.Op, e.Err)
	}
	return fmt.Sprintf("%s: %v: %s", e.Op, e.Err, e.Details)
}

// Unwrap returns the error kind.
func (e *Error) Unwrap() error {
	return e.Err
}

func newError(op string, kind error, format string, args ...any) error {
	return &Error{Op: op, Err: kind, Details: fmt.Sprintf(format, args...)}
}
