package domain

import (
	"errors"
	"fmt"
)

// Common domain errors used across the application.
var (
	// ErrValidation is returned when a domain entity or DTO fails validation.
	// This is often wrapped by a ValidationError carrying the offending field.
	ErrValidation = errors.New("validation failed")

	// ErrInvalidID is returned when an ID is malformed or invalid.
	ErrInvalidID = errors.New("invalid ID")
)

// ValidationError reports exactly one offending field. Validation is
// fail-fast: the first invalid field encountered is reported and no
// further fields are checked.
type ValidationError struct {
	Field   string // JSON name of the offending field (e.g. "price")
	Message string // Human-readable description of the constraint violated
	Err     error  // Sentinel error for errors.Is checks, usually ErrValidation
}

// Error implements the error interface for ValidationError.
func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid %s: %s", e.Field, e.Message)
}

// Unwrap returns the wrapped sentinel error to support errors.Is/errors.As.
func (e *ValidationError) Unwrap() error {
	return e.Err
}

// NewValidationError creates a ValidationError for the given field.
// A nil err defaults to ErrValidation.
func NewValidationError(field, message string, err error) *ValidationError {
	if err == nil {
		err = ErrValidation
	}
	return &ValidationError{
		Field:   field,
		Message: message,
		Err:     err,
	}
}

// IsValidationError checks whether err is a validation failure of any field.
func IsValidationError(err error) bool {
	return errors.Is(err, ErrValidation)
}
