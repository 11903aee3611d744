package core

import (
	"errors"
	"fmt"
)

// ErrValidation matches every *ValidationError via errors.Is.
var ErrValidation = errors.New("validation failed")

// Validation failure kinds.
var (
	ErrEmptyValue    = errors.New("must not be empty")
	ErrOutOfRange    = errors.New("out of range")
	ErrInvalidFormat = errors.New("invalid format")
	ErrTooManyItems  = errors.New("too many items")
)

// ValidationError reports a value rejected by one of the constructors in
// this package. Field is the form field name the value is sent as.
type ValidationError struct {
	Field  string
	Input  string
	Reason string
	Err    error
}

// Error implements the error interface.
func (e *ValidationError) Error() string {
	msg := fmt.Sprintf("invalid %s: %v", e.Field, e.Err)
	if e.Reason != "" {
		msg += " (" + e.Reason + ")"
	}
	return msg
}

// Unwrap returns the validation kind.
func (e *ValidationError) Unwrap() error {
	return e.Err
}

// Is reports whether target is ErrValidation.
func (e *ValidationError) Is(target error) bool {
	return target == ErrValidation
}

func emptyError(field string) error {
	return &ValidationError{Field: field, Err: ErrEmptyValue}
}

func tooManyError(field string, max, actual int) error {
	return &ValidationError{
		Field:  field,
		Reason: fmt.Sprintf("%d given, max %d", actual, max),
		Err:    ErrTooManyItems,
	}
}
