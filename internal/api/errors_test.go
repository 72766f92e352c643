package api

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/ridelink/provider-api/internal/domain"
	"github.com/ridelink/provider-api/internal/store"
	"github.com/stretchr/testify/assert"
)

func TestMapErrorToStatusCode(t *testing.T) {
	tests := []struct {
		name           string
		err            error
		expectedStatus int
	}{
		{
			name:           "nil error",
			err:            nil,
			expectedStatus: http.StatusInternalServerError, // Default to 500 for nil error
		},
		{
			name:           "validation error",
			err:            domain.NewValidationError("price", "cannot be negative", domain.ErrValidation),
			expectedStatus: http.StatusBadRequest,
		},
		{
			name:           "wrapped validation error",
			err:            fmt.Errorf("create service: %w", domain.NewValidationError("name", "cannot be empty", domain.ErrValidation)),
			expectedStatus: http.StatusBadRequest,
		},
		{
			name:           "domain sentinel error",
			err:            domain.ErrInvalidCategory,
			expectedStatus: http.StatusBadRequest,
		},
		{
			name:           "profile not found",
			err:            store.ErrProfileNotFound,
			expectedStatus: http.StatusNotFound,
		},
		{
			name:           "service not found",
			err:            store.ErrServiceNotFound,
			expectedStatus: http.StatusNotFound,
		},
		{
			name:           "wrapped not found",
			err:            fmt.Errorf("delete provider: %w", store.ErrProfileNotFound),
			expectedStatus: http.StatusNotFound,
		},
		{
			name:           "duplicate user profile",
			err:            store.ErrUserProfileExists,
			expectedStatus: http.StatusConflict,
		},
		{
			name:           "bad entity error",
			err:            store.ErrInvalidEntity,
			expectedStatus: http.StatusBadRequest,
		},
		{
			name:           "unknown error",
			err:            errors.New("database connection lost"),
			expectedStatus: http.StatusInternalServerError,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expectedStatus, MapErrorToStatusCode(tc.err))
		})
	}
}

func TestGetSafeErrorMessage(t *testing.T) {
	tests := []struct {
		name            string
		err             error
		expectedMessage string
	}{
		{
			name:            "nil error",
			err:             nil,
			expectedMessage: "An unexpected error occurred",
		},
		{
			name:            "validation error names the field",
			err:             domain.NewValidationError("price", "cannot be negative", domain.ErrValidation),
			expectedMessage: "Invalid price: cannot be negative",
		},
		{
			name:            "profile not found",
			err:             store.ErrProfileNotFound,
			expectedMessage: "Provider not found",
		},
		{
			name:            "service not found",
			err:             fmt.Errorf("remove: %w", store.ErrServiceNotFound),
			expectedMessage: "Service not found",
		},
		{
			name:            "duplicate user profile",
			err:             store.ErrUserProfileExists,
			expectedMessage: "User already owns a provider profile",
		},
		{
			name:            "internal detail is not leaked",
			err:             errors.New("pq: connection refused host=db.internal port=5432"),
			expectedMessage: "An unexpected error occurred",
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expectedMessage, GetSafeErrorMessage(tc.err))
		})
	}
}

func TestSanitizeValidationError(t *testing.T) {
	v := newValidator()

	t.Run("reports json field name", func(t *testing.T) {
		err := v.Struct(CreateProviderRequest{
			UserID:       "not-a-uuid",
			BusinessName: "Joe's Garage",
			Category:     "GARAGE",
			Phone:        "555-0100",
			Address:      "1 Main St",
		})
		assert.Error(t, err)
		assert.Equal(t, "Invalid userId: must be a valid UUID", SanitizeValidationError(err))
	})

	t.Run("missing required field", func(t *testing.T) {
		price := int64(100)
		err := v.Struct(CreateServiceRequest{Price: &price})
		assert.Error(t, err)
		assert.Equal(t, "Invalid name: required field", SanitizeValidationError(err))
	})

	t.Run("negative price", func(t *testing.T) {
		price := int64(-1)
		err := v.Struct(CreateServiceRequest{Name: "Oil Change", Price: &price})
		assert.Error(t, err)
		assert.Equal(t, "Invalid price: cannot be negative", SanitizeValidationError(err))
	})

	t.Run("non validator error", func(t *testing.T) {
		assert.Equal(t, "Validation error", SanitizeValidationError(errors.New("boom")))
	})
}
