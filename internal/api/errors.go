package api

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/ridelink/provider-api/internal/domain"
	"github.com/ridelink/provider-api/internal/store"
)

// MapErrorToStatusCode maps internal errors to appropriate HTTP status
// codes based on the error type. This prevents leaking internal error
// types or messages to clients.
func MapErrorToStatusCode(err error) int {
	switch {
	// Validation errors: caller-supplied data violates a field constraint
	case domain.IsValidationError(err),
		errors.Is(err, domain.ErrInvalidID),
		errors.Is(err, domain.ErrEmptyBusinessName),
		errors.Is(err, domain.ErrInvalidCategory),
		errors.Is(err, domain.ErrEmptyPhone),
		errors.Is(err, domain.ErrEmptyAddress),
		errors.Is(err, domain.ErrEmptyServiceName),
		errors.Is(err, domain.ErrNegativePrice),
		errors.Is(err, store.ErrInvalidEntity):
		return http.StatusBadRequest

	// Not found errors
	case store.IsNotFoundError(err):
		return http.StatusNotFound

	// Conflict errors
	case store.IsDuplicateError(err):
		return http.StatusConflict

	// Default: opaque infrastructure failure
	default:
		return http.StatusInternalServerError
	}
}

// GetSafeErrorMessage returns a sanitized, user-friendly error message
// based on the error type. Validation errors surface the offending field
// name; infrastructure failures stay generic.
func GetSafeErrorMessage(err error) string {
	if err == nil {
		return "An unexpected error occurred"
	}

	var vErr *domain.ValidationError
	if errors.As(err, &vErr) {
		return fmt.Sprintf("Invalid %s: %s", vErr.Field, vErr.Message)
	}

	switch {
	case errors.Is(err, domain.ErrEmptyBusinessName):
		return "Invalid businessName: cannot be empty"
	case errors.Is(err, domain.ErrInvalidCategory):
		return "Invalid category: is not a valid service category"
	case errors.Is(err, domain.ErrEmptyPhone):
		return "Invalid phone: cannot be empty"
	case errors.Is(err, domain.ErrEmptyAddress):
		return "Invalid address: cannot be empty"
	case errors.Is(err, domain.ErrEmptyServiceName):
		return "Invalid name: cannot be empty"
	case errors.Is(err, domain.ErrNegativePrice):
		return "Invalid price: cannot be negative"

	case errors.Is(err, store.ErrProfileNotFound):
		return "Provider not found"
	case errors.Is(err, store.ErrServiceNotFound):
		return "Service not found"
	case store.IsNotFoundError(err):
		return "Not found"

	case errors.Is(err, store.ErrUserProfileExists):
		return "User already owns a provider profile"
	case store.IsDuplicateError(err):
		return "Already exists"

	case errors.Is(err, store.ErrInvalidEntity):
		return "Invalid entity data"

	default:
		return "An unexpected error occurred"
	}
}

// SanitizeValidationError turns a go-playground/validator error into a
// user-friendly message naming the first offending field. Field names are
// the JSON names registered on the validator instance.
func SanitizeValidationError(err error) string {
	var fieldErrs validator.ValidationErrors
	if errors.As(err, &fieldErrs) && len(fieldErrs) > 0 {
		fe := fieldErrs[0]
		return fmt.Sprintf("Invalid %s: %s", fe.Field(), getValidationTagMessage(fe.Tag()))
	}
	return "Validation error"
}

// getValidationTagMessage maps validation tags to user-friendly error messages.
func getValidationTagMessage(tag string) string {
	switch tag {
	case "required":
		return "required field"
	case "uuid":
		return "must be a valid UUID"
	case "min":
		return "too short"
	case "max":
		return "too long"
	case "gte":
		return "cannot be negative"
	case "oneof":
		return "invalid value"
	default:
		return "validation failed"
	}
}
