package service

import (
	"errors"
	"fmt"
)

// ErrNotFound marks a referenced record that does not exist or is not
// owned by the caller. Ownership failures are indistinguishable from
// missing records on purpose.
var ErrNotFound = errors.New("not found")

// ValidationError marks malformed or out-of-range input. It is always
// detected before any write, so it never leaves partial state behind.
type ValidationError struct {
	Message string
}

func (e *ValidationError) Error() string {
	return e.Message
}

func validationErrorf(format string, args ...any) *ValidationError {
	return &ValidationError{Message: fmt.Sprintf(format, args...)}
}

func notFoundErrorf(format string, args ...any) error {
	return fmt.Errorf(format+": %w", append(args, ErrNotFound)...)
}
