package store

import (
	"context"
	"database/sql"

	"github.com/google/uuid"
	"github.com/ridelink/provider-api/internal/domain"
)

// ServiceStore defines the interface for catalog service persistence.
type ServiceStore interface {
	// Create saves a new catalog service to the store.
	// It handles domain validation internally.
	// Returns ErrProfileNotFound if the owning provider does not exist.
	// Returns validation errors from the domain ProviderService if data is invalid.
	Create(ctx context.Context, svc *domain.ProviderService) error

	// GetByID retrieves a catalog service by its unique ID.
	// Returns ErrServiceNotFound if the service does not exist.
	GetByID(ctx context.Context, id uuid.UUID) (*domain.ProviderService, error)

	// ListByProvider retrieves all catalog services owned by the given
	// provider, in insertion order. Returns an empty slice when the
	// provider has no services. The listing is finite and restartable;
	// it does not verify that the provider itself exists.
	ListByProvider(ctx context.Context, providerID uuid.UUID) ([]*domain.ProviderService, error)

	// Delete removes a catalog service from the store by its ID.
	// Returns ErrServiceNotFound if the service does not exist, so a
	// repeated delete of the same ID reports not-found.
	Delete(ctx context.Context, id uuid.UUID) error

	// WithTx returns a new ServiceStore instance that uses the provided
	// transaction. The transaction is created and managed by the caller.
	WithTx(tx *sql.Tx) ServiceStore
}
