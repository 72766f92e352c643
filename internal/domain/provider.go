package domain

import (
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
)

// Common validation errors for ProviderProfile
var (
	ErrEmptyProfileID      = errors.New("provider profile ID cannot be empty")
	ErrEmptyProfileUserID  = errors.New("provider profile user ID cannot be empty")
	ErrEmptyBusinessName   = errors.New("business name cannot be empty")
	ErrEmptyPhone          = errors.New("phone cannot be empty")
	ErrEmptyAddress        = errors.New("address cannot be empty")
	ErrInvalidCategory     = errors.New("invalid service category")
)

// ProviderProfile represents one registered business account offering
// vehicle services. A profile exists independently of whether it has any
// catalog services. CreatedAt is set once at creation and never mutated;
// UpdatedAt is refreshed on every successful mutation.
type ProviderProfile struct {
	ID           uuid.UUID       `json:"id"`
	UserID       uuid.UUID       `json:"user_id"`
	BusinessName string          `json:"business_name"`
	Category     ServiceCategory `json:"category"`
	Phone        string          `json:"phone"`
	Address      string          `json:"address"`
	CreatedAt    time.Time       `json:"created_at"`
	UpdatedAt    time.Time       `json:"updated_at"`
}

// NewProviderProfile creates a new ProviderProfile owned by the given user.
// It generates a new UUID for the profile ID and sets the creation/update
// timestamps. Returns an error if validation fails.
func NewProviderProfile(
	userID uuid.UUID,
	businessName string,
	category ServiceCategory,
	phone, address string,
) (*ProviderProfile, error) {
	now := time.Now().UTC()
	profile := &ProviderProfile{
		ID:           uuid.New(),
		UserID:       userID,
		BusinessName: businessName,
		Category:     category,
		Phone:        phone,
		Address:      address,
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	if err := profile.Validate(); err != nil {
		return nil, err
	}

	return profile, nil
}

// Validate checks if the ProviderProfile has valid data.
// Returns an error if any field fails validation.
func (p *ProviderProfile) Validate() error {
	if p.ID == uuid.Nil {
		return ErrEmptyProfileID
	}

	if p.UserID == uuid.Nil {
		return ErrEmptyProfileUserID
	}

	if strings.TrimSpace(p.BusinessName) == "" {
		return ErrEmptyBusinessName
	}

	if !p.Category.IsValid() {
		return ErrInvalidCategory
	}

	if strings.TrimSpace(p.Phone) == "" {
		return ErrEmptyPhone
	}

	if strings.TrimSpace(p.Address) == "" {
		return ErrEmptyAddress
	}

	return nil
}
