package mocks

import (
	"context"
	"database/sql"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/ridelink/provider-api/internal/domain"
	"github.com/ridelink/provider-api/internal/store"
)

// MockProfileStore implements store.ProfileStore for testing.
type MockProfileStore struct {
	// Function fields for customizable behavior
	CreateFn  func(ctx context.Context, profile *domain.ProviderProfile) error
	GetByIDFn func(ctx context.Context, id uuid.UUID) (*domain.ProviderProfile, error)
	UpdateFn  func(ctx context.Context, id uuid.UUID, patch domain.UpdateProviderProfilePatch) (*domain.ProviderProfile, error)
	DeleteFn  func(ctx context.Context, id uuid.UUID) error

	// Data for the default in-memory implementation
	mu       sync.Mutex
	Profiles map[uuid.UUID]*domain.ProviderProfile

	// Forced errors for the default implementation
	CreateError error
	GetError    error
	UpdateError error
	DeleteError error
}

// NewMockProfileStore creates a new mock store with initialized defaults.
func NewMockProfileStore() *MockProfileStore {
	return &MockProfileStore{
		Profiles: make(map[uuid.UUID]*domain.ProviderProfile),
	}
}

// Ensure MockProfileStore implements store.ProfileStore
var _ store.ProfileStore = (*MockProfileStore)(nil)

// Create implements the ProfileStore interface.
func (m *MockProfileStore) Create(ctx context.Context, profile *domain.ProviderProfile) error {
	if m.CreateFn != nil {
		return m.CreateFn(ctx, profile)
	}

	if m.CreateError != nil {
		return m.CreateError
	}

	if err := profile.Validate(); err != nil {
		return err
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	for _, existing := range m.Profiles {
		if existing.UserID == profile.UserID {
			return store.ErrUserProfileExists
		}
	}

	copied := *profile
	m.Profiles[profile.ID] = &copied
	return nil
}

// GetByID implements the ProfileStore interface.
func (m *MockProfileStore) GetByID(ctx context.Context, id uuid.UUID) (*domain.ProviderProfile, error) {
	if m.GetByIDFn != nil {
		return m.GetByIDFn(ctx, id)
	}

	if m.GetError != nil {
		return nil, m.GetError
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	profile, ok := m.Profiles[id]
	if !ok {
		return nil, store.ErrProfileNotFound
	}

	copied := *profile
	return &copied, nil
}

// Update implements the ProfileStore interface.
func (m *MockProfileStore) Update(
	ctx context.Context,
	id uuid.UUID,
	patch domain.UpdateProviderProfilePatch,
) (*domain.ProviderProfile, error) {
	if m.UpdateFn != nil {
		return m.UpdateFn(ctx, id, patch)
	}

	if m.UpdateError != nil {
		return nil, m.UpdateError
	}

	if err := patch.Validate(); err != nil {
		return nil, err
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	profile, ok := m.Profiles[id]
	if !ok {
		return nil, store.ErrProfileNotFound
	}

	if !patch.IsEmpty() {
		patch.Apply(profile)
		profile.UpdatedAt = time.Now().UTC()
	}

	copied := *profile
	return &copied, nil
}

// Delete implements the ProfileStore interface.
func (m *MockProfileStore) Delete(ctx context.Context, id uuid.UUID) error {
	if m.DeleteFn != nil {
		return m.DeleteFn(ctx, id)
	}

	if m.DeleteError != nil {
		return m.DeleteError
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	if _, ok := m.Profiles[id]; !ok {
		return store.ErrProfileNotFound
	}

	delete(m.Profiles, id)
	return nil
}

// WithTx implements the ProfileStore interface. The mock has no
// transaction semantics; it returns itself.
func (m *MockProfileStore) WithTx(tx *sql.Tx) store.ProfileStore {
	return m
}
