// Package numerr defines the error kinds shared by every mega component.
//
// All failures are reported by wrapping one of the sentinels below, so callers
// can test the kind with errors.Is regardless of the message context.
package numerr

import (
	"errors"
	"fmt"
)

// Error kinds.
var (
	// ErrInvalidArgument reports a parameter outside its documented domain.
	ErrInvalidArgument = errors.New("mega: invalid argument")
	// ErrIndexOutOfRange reports a coordinate outside its dimension bound.
	ErrIndexOutOfRange = errors.New("mega: index out of range")
	// ErrDomain reports evaluation at a point where the function is undefined.
	ErrDomain = errors.New("mega: domain error")
	// ErrOverflow reports an exact integer result that does not fit in int64.
	ErrOverflow = errors.New("mega: integer overflow")
)

// Invalid returns an ErrInvalidArgument carrying a formatted context message.
func Invalid(format string, args ...any) error {
	return fmt.Errorf("%s: %w", fmt.Sprintf(format, args...), ErrInvalidArgument)
}

// OutOfRange returns an ErrIndexOutOfRange for index idx in dimension dim of size.
func OutOfRange(idx, dim, size int) error {
	return fmt.Errorf("index %d for dimension %d (size %d): %w", idx, dim, size, ErrIndexOutOfRange)
}

// Domain returns an ErrDomain carrying a formatted context message.
func Domain(format string, args ...any) error {
	return fmt.Errorf("%s: %w", fmt.Sprintf(format, args...), ErrDomain)
}

// Overflow returns an ErrOverflow carrying a formatted context message.
func Overflow(format string, args ...any) error {
	return fmt.Errorf("%s: %w", fmt.Sprintf(format, args...), ErrOverflow)
}
