package tendril

import (
	"errors"
	"fmt"
)

// Sentinel error kinds a Tendril operation may signal. Anything else —
// an uninitialized value, cross-thread access, use after Destroy, reuse of
// a value that was handed off by address elsewhere — is undefined
// behavior and not diagnosed here.
var (
	// ErrOutOfBounds is returned by Sub, PopFront, and PopBack when the
	// requested range exceeds the source's length.
	ErrOutOfBounds = errors.New("tendril: out of bounds")

	// ErrOverflow is returned when an operation's resulting length would
	// exceed the 2^32-1 byte ceiling.
	ErrOverflow = errors.New("tendril: length would overflow")

	// ErrOutOfMemory is returned when a capacity computation cannot be
	// satisfied before any allocation is attempted. True allocator
	// exhaustion in Go surfaces as a fatal runtime error, not a
	// recoverable one, and is not represented by this sentinel.
	ErrOutOfMemory = errors.New("tendril: out of memory")
)

// Error wraps a sentinel error kind with the operation that raised it.
type Error struct {
	Op    string
	Cause error
}

// Error implements the error interface.
func (e *Error) Error() string {
	return fmt.Sprintf("%s: %v", e.Op, e.Cause)
}

// Unwrap provides compatibility with errors.Is/errors.As.
func (e *Error) Unwrap() error {
	return e.Cause
}

func wrapf(op string, cause error) error {
	if cause == nil {
		return nil
	}
	return &Error{Op: op, Cause: cause}
}
