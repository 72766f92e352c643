package mocks

import (
	"context"

	"github.com/google/uuid"
	"github.com/ridelink/provider-api/internal/domain"
	"github.com/ridelink/provider-api/internal/service"
)

// MockProviderService implements service.ProviderService for handler tests.
// Every method delegates to its Fn field; unset methods return zero values.
type MockProviderService struct {
	CreateProfileFn      func(ctx context.Context, userID uuid.UUID, input service.CreateProfileInput) (*domain.ProviderProfile, error)
	GetProviderDetailsFn func(ctx context.Context, providerID uuid.UUID) (*domain.ProviderDetails, error)
	UpdateProfileFn      func(ctx context.Context, providerID uuid.UUID, patch domain.UpdateProviderProfilePatch) (*domain.ProviderProfile, error)
	CreateServiceFn      func(ctx context.Context, providerID uuid.UUID, item domain.CreateServiceItem) (*domain.ProviderService, error)
	ListServicesFn       func(ctx context.Context, providerID uuid.UUID) ([]*domain.ProviderService, error)
	RemoveServiceFn      func(ctx context.Context, serviceID uuid.UUID) error
	RemoveProfileFn      func(ctx context.Context, providerID uuid.UUID) error
}

// Ensure MockProviderService implements service.ProviderService
var _ service.ProviderService = (*MockProviderService)(nil)

func (m *MockProviderService) CreateProfile(
	ctx context.Context,
	userID uuid.UUID,
	input service.CreateProfileInput,
) (*domain.ProviderProfile, error) {
	if m.CreateProfileFn != nil {
		return m.CreateProfileFn(ctx, userID, input)
	}
	return nil, nil
}

func (m *MockProviderService) GetProviderDetails(
	ctx context.Context,
	providerID uuid.UUID,
) (*domain.ProviderDetails, error) {
	if m.GetProviderDetailsFn != nil {
		return m.GetProviderDetailsFn(ctx, providerID)
	}
	return nil, nil
}

func (m *MockProviderService) UpdateProfile(
	ctx context.Context,
	providerID uuid.UUID,
	patch domain.UpdateProviderProfilePatch,
) (*domain.ProviderProfile, error) {
	if m.UpdateProfileFn != nil {
		return m.UpdateProfileFn(ctx, providerID, patch)
	}
	return nil, nil
}

func (m *MockProviderService) CreateService(
	ctx context.Context,
	providerID uuid.UUID,
	item domain.CreateServiceItem,
) (*domain.ProviderService, error) {
	if m.CreateServiceFn != nil {
		return m.CreateServiceFn(ctx, providerID, item)
	}
	return nil, nil
}

func (m *MockProviderService) ListServices(
	ctx context.Context,
	providerID uuid.UUID,
) ([]*domain.ProviderService, error) {
	if m.ListServicesFn != nil {
		return m.ListServicesFn(ctx, providerID)
	}
	return nil, nil
}

func (m *MockProviderService) RemoveService(ctx context.Context, serviceID uuid.UUID) error {
	if m.RemoveServiceFn != nil {
		return m.RemoveServiceFn(ctx, serviceID)
	}
	return nil
}

func (m *MockProviderService) RemoveProfile(ctx context.Context, providerID uuid.UUID) error {
	if m.RemoveProfileFn != nil {
		return m.RemoveProfileFn(ctx, providerID)
	}
	return nil
}
