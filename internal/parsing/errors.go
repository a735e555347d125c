// Package parsing holds the textual grammars of settings fields.
package parsing

import (
	"errors"
	"fmt"
)

// ErrInvalidValue is wrapped by every FieldError produced in this package.
var ErrInvalidValue = errors.New("invalid value")

// FieldError reports a raw value that does not match its field's grammar.
type FieldError struct {
	Field string
	Value string
	Err   error
}

func (e *FieldError) Error() string {
	return fmt.Sprintf("field %q: cannot parse %q: %v", e.Field, e.Value, e.Err)
}

func (e *FieldError) Unwrap() error {
	return e.Err
}

// fieldErr builds a FieldError wrapping ErrInvalidValue with a reason.
func fieldErr(field, value, reason string) *FieldError {
	return &FieldError{
		Field: field,
		Value: value,
		Err:   fmt.Errorf("%w: %s", ErrInvalidValue, reason),
	}
}
