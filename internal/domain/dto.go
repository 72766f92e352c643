package domain

import "strings"

// CreateServiceItem is the validated subset of fields accepted from a
// caller when adding a catalog service. It is never persisted as-is: a
// ProviderService is materialized from it only after Validate passes.
type CreateServiceItem struct {
	Name        string
	Price       int64
	Description *string
}

// Validate checks the create payload against field constraints.
// It fails fast, reporting exactly one field per failure.
// Description has no application-level length bound (the storage column
// is unbounded TEXT).
func (d CreateServiceItem) Validate() error {
	if strings.TrimSpace(d.Name) == "" {
		return NewValidationError("name", "cannot be empty", ErrValidation)
	}

	if d.Price < 0 {
		return NewValidationError("price", "cannot be negative", ErrValidation)
	}

	return nil
}

// UpdateProviderProfilePatch is a sparse patch over a provider profile.
// Only present (non-nil) fields are validated and applied; absent fields
// leave the stored value untouched. Identifiers and CreatedAt are never
// part of a patch.
type UpdateProviderProfilePatch struct {
	BusinessName *string
	Category     *ServiceCategory
	Phone        *string
	Address      *string
}

// IsEmpty reports whether the patch carries no fields at all.
func (p UpdateProviderProfilePatch) IsEmpty() bool {
	return p.BusinessName == nil && p.Category == nil && p.Phone == nil && p.Address == nil
}

// Validate applies, for each present field, the same constraints as
// profile creation. It fails fast on the first invalid field.
func (p UpdateProviderProfilePatch) Validate() error {
	if p.BusinessName != nil && strings.TrimSpace(*p.BusinessName) == "" {
		return NewValidationError("businessName", "cannot be empty", ErrValidation)
	}

	if p.Category != nil && !p.Category.IsValid() {
		return NewValidationError("category", "is not a valid service category", ErrValidation)
	}

	if p.Phone != nil && strings.TrimSpace(*p.Phone) == "" {
		return NewValidationError("phone", "cannot be empty", ErrValidation)
	}

	if p.Address != nil && strings.TrimSpace(*p.Address) == "" {
		return NewValidationError("address", "cannot be empty", ErrValidation)
	}

	return nil
}

// Apply copies the present patch fields onto the profile. Timestamps are
// managed by the store layer, not here.
func (p UpdateProviderProfilePatch) Apply(profile *ProviderProfile) {
	if p.BusinessName != nil {
		profile.BusinessName = *p.BusinessName
	}
	if p.Category != nil {
		profile.Category = *p.Category
	}
	if p.Phone != nil {
		profile.Phone = *p.Phone
	}
	if p.Address != nil {
		profile.Address = *p.Address
	}
}

// ProviderDetails is the read-only composition of a profile with its
// catalog services. Services is always non-nil; a provider with no
// services composes an empty slice.
type ProviderDetails struct {
	Profile  *ProviderProfile   `json:"profile"`
	Services []*ProviderService `json:"services"`
}
