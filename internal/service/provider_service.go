package service

import (
	"context"
	"log/slog"

	"github.com/google/uuid"
	"github.com/ridelink/provider-api/internal/domain"
	"github.com/ridelink/provider-api/internal/platform/logger"
	"github.com/ridelink/provider-api/internal/store"
)

// CreateProfileInput is the accepted subset of fields for registering a
// new provider profile.
type CreateProfileInput struct {
	BusinessName string
	Category     domain.ServiceCategory
	Phone        string
	Address      string
}

// ProviderService provides provider-profile and catalog operations.
// Every operation is a single request/response transition; there are no
// intermediate pending states and no background processing.
type ProviderService interface {
	// CreateProfile validates the input and registers a new profile owned
	// by the given user. Returns store.ErrUserProfileExists if the user
	// already owns a profile.
	CreateProfile(ctx context.Context, userID uuid.UUID, input CreateProfileInput) (*domain.ProviderProfile, error)

	// GetProviderDetails composes a profile with its catalog services as
	// one read. The two store reads are not executed in a transaction: a
	// service added concurrently may or may not appear in the response.
	// That race is accepted and documented, not a defect.
	// Returns store.ErrProfileNotFound if the provider does not exist.
	GetProviderDetails(ctx context.Context, providerID uuid.UUID) (*domain.ProviderDetails, error)

	// UpdateProfile validates the sparse patch and applies it. A failed
	// validation prevents any store call.
	UpdateProfile(ctx context.Context, providerID uuid.UUID, patch domain.UpdateProviderProfilePatch) (*domain.ProviderProfile, error)

	// CreateService validates the catalog item and adds it to the
	// provider's catalog. A failed validation prevents any store call;
	// a failed store write never mutates the profile.
	CreateService(ctx context.Context, providerID uuid.UUID, item domain.CreateServiceItem) (*domain.ProviderService, error)

	// ListServices returns the provider's catalog in insertion order.
	ListServices(ctx context.Context, providerID uuid.UUID) ([]*domain.ProviderService, error)

	// RemoveService deletes one catalog service.
	// Returns store.ErrServiceNotFound if it does not exist.
	RemoveService(ctx context.Context, serviceID uuid.UUID) error

	// RemoveProfile deletes a profile and, through the store's cascade,
	// every service it owns.
	// Returns store.ErrProfileNotFound if it does not exist.
	RemoveProfile(ctx context.Context, providerID uuid.UUID) error
}

// providerService is the default ProviderService implementation backed by
// the store layer.
type providerService struct {
	profiles store.ProfileStore
	services store.ServiceStore
	logger   *slog.Logger
}

// NewProviderService creates a ProviderService backed by the given stores.
// Returns an error if a required dependency is nil.
func NewProviderService(
	profiles store.ProfileStore,
	services store.ServiceStore,
	log *slog.Logger,
) (ProviderService, error) {
	if profiles == nil {
		return nil, domain.NewValidationError("profileStore", "cannot be nil", domain.ErrValidation)
	}
	if services == nil {
		return nil, domain.NewValidationError("serviceStore", "cannot be nil", domain.ErrValidation)
	}
	if log == nil {
		log = slog.Default()
	}

	return &providerService{
		profiles: profiles,
		services: services,
		logger:   log.With(slog.String("component", "provider_service")),
	}, nil
}

func (s *providerService) CreateProfile(
	ctx context.Context,
	userID uuid.UUID,
	input CreateProfileInput,
) (*domain.ProviderProfile, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	profile, err := domain.NewProviderProfile(
		userID, input.BusinessName, input.Category, input.Phone, input.Address)
	if err != nil {
		log.Debug("profile creation rejected",
			slog.String("user_id", userID.String()),
			slog.String("error", err.Error()))
		return nil, err
	}

	if err := s.profiles.Create(ctx, profile); err != nil {
		return nil, err
	}

	return profile, nil
}

func (s *providerService) GetProviderDetails(
	ctx context.Context,
	providerID uuid.UUID,
) (*domain.ProviderDetails, error) {
	profile, err := s.profiles.GetByID(ctx, providerID)
	if err != nil {
		return nil, err
	}

	services, err := s.services.ListByProvider(ctx, providerID)
	if err != nil {
		return nil, err
	}

	return &domain.ProviderDetails{
		Profile:  profile,
		Services: services,
	}, nil
}

func (s *providerService) UpdateProfile(
	ctx context.Context,
	providerID uuid.UUID,
	patch domain.UpdateProviderProfilePatch,
) (*domain.ProviderProfile, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	// Validation failures must short-circuit before any store call.
	if err := patch.Validate(); err != nil {
		log.Debug("profile patch rejected",
			slog.String("provider_id", providerID.String()),
			slog.String("error", err.Error()))
		return nil, err
	}

	return s.profiles.Update(ctx, providerID, patch)
}

func (s *providerService) CreateService(
	ctx context.Context,
	providerID uuid.UUID,
	item domain.CreateServiceItem,
) (*domain.ProviderService, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	// Validation failures must short-circuit before any store call.
	if err := item.Validate(); err != nil {
		log.Debug("catalog item rejected",
			slog.String("provider_id", providerID.String()),
			slog.String("error", err.Error()))
		return nil, err
	}

	svc, err := domain.NewProviderService(providerID, item.Name, item.Price, item.Description)
	if err != nil {
		return nil, err
	}

	if err := s.services.Create(ctx, svc); err != nil {
		return nil, err
	}

	return svc, nil
}

func (s *providerService) ListServices(
	ctx context.Context,
	providerID uuid.UUID,
) ([]*domain.ProviderService, error) {
	// Resolve the provider first so an unknown ID is a not-found, not an
	// empty catalog.
	if _, err := s.profiles.GetByID(ctx, providerID); err != nil {
		return nil, err
	}

	return s.services.ListByProvider(ctx, providerID)
}

func (s *providerService) RemoveService(ctx context.Context, serviceID uuid.UUID) error {
	return s.services.Delete(ctx, serviceID)
}

func (s *providerService) RemoveProfile(ctx context.Context, providerID uuid.UUID) error {
	return s.profiles.Delete(ctx, providerID)
}
