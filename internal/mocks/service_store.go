package mocks

import (
	"context"
	"database/sql"
	"fmt"
	"sync"

	"github.com/google/uuid"
	"github.com/ridelink/provider-api/internal/domain"
	"github.com/ridelink/provider-api/internal/store"
)

// MockServiceStore implements store.ServiceStore for testing. The default
// implementation keeps services in insertion order, mirroring the
// ListByProvider contract.
type MockServiceStore struct {
	// Function fields for customizable behavior
	CreateFn         func(ctx context.Context, svc *domain.ProviderService) error
	GetByIDFn        func(ctx context.Context, id uuid.UUID) (*domain.ProviderService, error)
	ListByProviderFn func(ctx context.Context, providerID uuid.UUID) ([]*domain.ProviderService, error)
	DeleteFn         func(ctx context.Context, id uuid.UUID) error

	// Data for the default in-memory implementation
	mu       sync.Mutex
	Services []*domain.ProviderService

	// KnownProviders, when non-nil, makes Create enforce the foreign key:
	// creating a service for an unknown provider fails with
	// store.ErrProfileNotFound.
	KnownProviders map[uuid.UUID]bool

	// Forced errors for the default implementation
	CreateError error
	ListError   error
	DeleteError error
}

// NewMockServiceStore creates a new mock store with initialized defaults.
func NewMockServiceStore() *MockServiceStore {
	return &MockServiceStore{}
}

// Ensure MockServiceStore implements store.ServiceStore
var _ store.ServiceStore = (*MockServiceStore)(nil)

// Create implements the ServiceStore interface.
func (m *MockServiceStore) Create(ctx context.Context, svc *domain.ProviderService) error {
	if m.CreateFn != nil {
		return m.CreateFn(ctx, svc)
	}

	if m.CreateError != nil {
		return m.CreateError
	}

	if err := svc.Validate(); err != nil {
		return err
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	if m.KnownProviders != nil && !m.KnownProviders[svc.ProviderID] {
		return fmt.Errorf("%w: provider %s", store.ErrProfileNotFound, svc.ProviderID)
	}

	copied := *svc
	m.Services = append(m.Services, &copied)
	return nil
}

// GetByID implements the ServiceStore interface.
func (m *MockServiceStore) GetByID(ctx context.Context, id uuid.UUID) (*domain.ProviderService, error) {
	if m.GetByIDFn != nil {
		return m.GetByIDFn(ctx, id)
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	for _, svc := range m.Services {
		if svc.ID == id {
			copied := *svc
			return &copied, nil
		}
	}
	return nil, store.ErrServiceNotFound
}

// ListByProvider implements the ServiceStore interface.
func (m *MockServiceStore) ListByProvider(
	ctx context.Context,
	providerID uuid.UUID,
) ([]*domain.ProviderService, error) {
	if m.ListByProviderFn != nil {
		return m.ListByProviderFn(ctx, providerID)
	}

	if m.ListError != nil {
		return nil, m.ListError
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	listed := []*domain.ProviderService{}
	for _, svc := range m.Services {
		if svc.ProviderID == providerID {
			copied := *svc
			listed = append(listed, &copied)
		}
	}
	return listed, nil
}

// Delete implements the ServiceStore interface.
func (m *MockServiceStore) Delete(ctx context.Context, id uuid.UUID) error {
	if m.DeleteFn != nil {
		return m.DeleteFn(ctx, id)
	}

	if m.DeleteError != nil {
		return m.DeleteError
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	for i, svc := range m.Services {
		if svc.ID == id {
			m.Services = append(m.Services[:i], m.Services[i+1:]...)
			return nil
		}
	}
	return store.ErrServiceNotFound
}

// DeleteByProvider removes every service owned by the provider. Tests use
// this to mirror the database's cascade when deleting profiles.
func (m *MockServiceStore) DeleteByProvider(providerID uuid.UUID) {
	m.mu.Lock()
	defer m.mu.Unlock()

	kept := m.Services[:0]
	for _, svc := range m.Services {
		if svc.ProviderID != providerID {
			kept = append(kept, svc)
		}
	}
	m.Services = kept
}

// WithTx implements the ServiceStore interface. The mock has no
// transaction semantics; it returns itself.
func (m *MockServiceStore) WithTx(tx *sql.Tx) store.ServiceStore {
	return m
}
