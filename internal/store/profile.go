package store

import (
	"context"
	"database/sql"

	"github.com/google/uuid"
	"github.com/ridelink/provider-api/internal/domain"
)

// ProfileStore defines the interface for provider profile persistence.
type ProfileStore interface {
	// Create saves a new provider profile to the store.
	// It handles domain validation internally.
	// Returns ErrUserProfileExists if the owning user already has a profile.
	// Returns validation errors from the domain ProviderProfile if data is invalid.
	Create(ctx context.Context, profile *domain.ProviderProfile) error

	// GetByID retrieves a provider profile by its unique ID.
	// Returns ErrProfileNotFound if the profile does not exist.
	GetByID(ctx context.Context, id uuid.UUID) (*domain.ProviderProfile, error)

	// Update applies a sparse patch to an existing profile. Only present
	// patch fields are written; absent fields keep their stored values.
	// The store refreshes updated_at and leaves id, user_id, and created_at
	// immutable. Returns the updated profile.
	// Returns ErrProfileNotFound if the profile does not exist.
	// Returns validation errors from the patch if data is invalid.
	Update(
		ctx context.Context,
		id uuid.UUID,
		patch domain.UpdateProviderProfilePatch,
	) (*domain.ProviderProfile, error)

	// Delete removes a profile from the store by its ID. Deletion cascades
	// to every catalog service owned by the profile.
	// Returns ErrProfileNotFound if the profile does not exist.
	Delete(ctx context.Context, id uuid.UUID) error

	// WithTx returns a new ProfileStore instance that uses the provided
	// transaction. The transaction is created and managed by the caller.
	WithTx(tx *sql.Tx) ProfileStore
}
