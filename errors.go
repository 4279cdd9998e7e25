package chartgeom

import (
	"errors"
	"fmt"
)

// ErrInvalidInput is returned when a caller violates a precondition, as opposed
// to supplying empty or degenerate data, which is handled without an error.
var ErrInvalidInput = errors.New("invalid input")

// InputError describes which input violated a precondition. It wraps
// [ErrInvalidInput].
type InputError struct {
	Field  string
	Reason string
}

func (e *InputError) Error() string {
	return fmt.Sprintf("invalid %s: %s", e.Field, e.Reason)
}

func (e *InputError) Unwrap() error {
	return ErrInvalidInput
}

func invalid(field, format string, args ...any) error {
	return &InputError{
		Field:  field,
		Reason: fmt.Sprintf(format, args...),
	}
}
