package invoice

import (
	"errors"
	"fmt"
)

var (
	// ErrUnknownField is returned when an edit names a field the record does not have.
	ErrUnknownField = errors.New("unknown field")

	// ErrInvalidField is returned when a value cannot be stored in the named field.
	ErrInvalidField = errors.New("invalid field value")
)

// FieldError describes a rejected value for a named field.
type FieldError struct {
	Field   string
	Value   string
	Message string
}

// Error implements the error interface.
func (e *FieldError) Error() string {
	return fmt.Sprintf("field '%s': %s (value: %q)", e.Field, e.Message, e.Value)
}

// Unwrap lets errors.Is match ErrInvalidField.
func (e *FieldError) Unwrap() error {
	return ErrInvalidField
}
