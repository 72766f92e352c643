package domain

import (
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
)

// Common validation errors for ProviderService
var (
	ErrEmptyServiceID         = errors.New("service ID cannot be empty")
	ErrEmptyServiceProviderID = errors.New("service provider ID cannot be empty")
	ErrEmptyServiceName       = errors.New("service name cannot be empty")
	ErrNegativePrice          = errors.New("service price cannot be negative")
)

// ProviderService represents one catalog line item owned by a provider
// profile. Price is an exact amount in minor currency units; it is stored
// as an integer so that the value a caller submits is the value returned,
// with no floating-point rounding. A service cannot outlive its owning
// profile: deleting the profile cascades to its services.
type ProviderService struct {
	ID          uuid.UUID `json:"id"`
	ProviderID  uuid.UUID `json:"provider_id"`
	Name        string    `json:"name"`
	Price       int64     `json:"price"`
	Description *string   `json:"description,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// NewProviderService creates a new catalog service owned by the given
// provider. It generates a new UUID for the service ID and sets the
// creation/update timestamps. Returns an error if validation fails.
func NewProviderService(
	providerID uuid.UUID,
	name string,
	price int64,
	description *string,
) (*ProviderService, error) {
	now := time.Now().UTC()
	svc := &ProviderService{
		ID:          uuid.New(),
		ProviderID:  providerID,
		Name:        name,
		Price:       price,
		Description: description,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	if err := svc.Validate(); err != nil {
		return nil, err
	}

	return svc, nil
}

// Validate checks if the ProviderService has valid data.
// Returns an error if any field fails validation.
func (s *ProviderService) Validate() error {
	if s.ID == uuid.Nil {
		return ErrEmptyServiceID
	}

	if s.ProviderID == uuid.Nil {
		return ErrEmptyServiceProviderID
	}

	if strings.TrimSpace(s.Name) == "" {
		return ErrEmptyServiceName
	}

	if s.Price < 0 {
		return ErrNegativePrice
	}

	return nil
}
