package api

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/ridelink/provider-api/internal/api/shared"
	"github.com/ridelink/provider-api/internal/domain"
	"github.com/ridelink/provider-api/internal/platform/logger"
	"github.com/ridelink/provider-api/internal/service"
)

// ProviderHandler handles provider-profile and catalog HTTP requests.
type ProviderHandler struct {
	providerService service.ProviderService
	validator       *validator.Validate
	logger          *slog.Logger
}

// NewProviderHandler creates a new ProviderHandler.
func NewProviderHandler(providerService service.ProviderService, log *slog.Logger) *ProviderHandler {
	if log == nil {
		// ALLOW-PANIC: Constructor enforcing required dependency
		panic("logger cannot be nil for ProviderHandler")
	}

	return &ProviderHandler{
		providerService: providerService,
		validator:       newValidator(),
		logger:          log.With(slog.String("component", "provider_handler")),
	}
}

// CreateProvider handles POST /providers requests.
// It registers a new provider profile owned by the given user.
func (h *ProviderHandler) CreateProvider(w http.ResponseWriter, r *http.Request) {
	log := logger.FromContextOrDefault(r.Context(), h.logger)

	var req CreateProviderRequest
	if err := shared.DecodeJSON(r, &req); err != nil {
		log.Debug("malformed create provider body", slog.String("error", err.Error()))
		shared.RespondWithError(w, r, http.StatusBadRequest, "Invalid request format")
		return
	}

	if err := h.validator.Struct(req); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, SanitizeValidationError(err))
		return
	}

	// The oneof tag above already constrains the value; parsing cannot
	// fail here, but the domain parser stays the single source of truth.
	category, err := domain.ParseServiceCategory(req.Category)
	if err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, GetSafeErrorMessage(err))
		return
	}

	userID, err := uuid.Parse(req.UserID)
	if err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, "Invalid userId: must be a valid UUID")
		return
	}

	profile, err := h.providerService.CreateProfile(r.Context(), userID, service.CreateProfileInput{
		BusinessName: req.BusinessName,
		Category:     category,
		Phone:        req.Phone,
		Address:      req.Address,
	})
	if err != nil {
		statusCode := MapErrorToStatusCode(err)
		safeMessage := GetSafeErrorMessage(err)
		if statusCode == http.StatusInternalServerError {
			safeMessage = "Failed to create provider"
		}
		shared.RespondWithErrorAndLog(w, r, statusCode, safeMessage, err)
		return
	}

	log.Debug("provider profile created",
		slog.String("provider_id", profile.ID.String()),
		slog.String("user_id", userID.String()))
	shared.RespondWithJSON(w, r, http.StatusCreated, toProviderResponse(profile))
}

// GetProvider handles GET /providers/{id} requests.
// It returns the profile together with its full service catalog.
func (h *ProviderHandler) GetProvider(w http.ResponseWriter, r *http.Request) {
	providerID, ok := h.parseIDParam(w, r, "id", "Provider")
	if !ok {
		return
	}

	details, err := h.providerService.GetProviderDetails(r.Context(), providerID)
	if err != nil {
		statusCode := MapErrorToStatusCode(err)
		safeMessage := GetSafeErrorMessage(err)
		if statusCode == http.StatusInternalServerError {
			safeMessage = "Failed to get provider"
		}
		shared.RespondWithErrorAndLog(w, r, statusCode, safeMessage, err)
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, ProviderDetailsResponse{
		Provider: toProviderResponse(details.Profile),
		Services: toServiceResponses(details.Services),
	})
}

// UpdateProvider handles PATCH /providers/{id} requests.
// Absent body fields keep their stored values.
func (h *ProviderHandler) UpdateProvider(w http.ResponseWriter, r *http.Request) {
	log := logger.FromContextOrDefault(r.Context(), h.logger)

	providerID, ok := h.parseIDParam(w, r, "id", "Provider")
	if !ok {
		return
	}

	var req UpdateProviderRequest
	if err := shared.DecodeJSON(r, &req); err != nil {
		log.Debug("malformed update provider body", slog.String("error", err.Error()))
		shared.RespondWithError(w, r, http.StatusBadRequest, "Invalid request format")
		return
	}

	if err := h.validator.Struct(req); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, SanitizeValidationError(err))
		return
	}

	patch := domain.UpdateProviderProfilePatch{
		BusinessName: req.BusinessName,
		Phone:        req.Phone,
		Address:      req.Address,
	}
	if req.Category != nil {
		category, err := domain.ParseServiceCategory(*req.Category)
		if err != nil {
			shared.RespondWithError(w, r, http.StatusBadRequest, GetSafeErrorMessage(err))
			return
		}
		patch.Category = &category
	}

	profile, err := h.providerService.UpdateProfile(r.Context(), providerID, patch)
	if err != nil {
		statusCode := MapErrorToStatusCode(err)
		safeMessage := GetSafeErrorMessage(err)
		if statusCode == http.StatusInternalServerError {
			safeMessage = "Failed to update provider"
		}
		shared.RespondWithErrorAndLog(w, r, statusCode, safeMessage, err)
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, toProviderResponse(profile))
}

// DeleteProvider handles DELETE /providers/{id} requests.
// The provider's catalog services are removed with it.
func (h *ProviderHandler) DeleteProvider(w http.ResponseWriter, r *http.Request) {
	log := logger.FromContextOrDefault(r.Context(), h.logger)

	providerID, ok := h.parseIDParam(w, r, "id", "Provider")
	if !ok {
		return
	}

	if err := h.providerService.RemoveProfile(r.Context(), providerID); err != nil {
		statusCode := MapErrorToStatusCode(err)
		safeMessage := GetSafeErrorMessage(err)
		if statusCode == http.StatusInternalServerError {
			safeMessage = "Failed to delete provider"
		}
		shared.RespondWithErrorAndLog(w, r, statusCode, safeMessage, err)
		return
	}

	log.Debug("provider profile deleted", slog.String("provider_id", providerID.String()))
	w.WriteHeader(http.StatusNoContent)
}

// CreateService handles POST /providers/{id}/services requests.
// It adds a service to the provider's catalog.
func (h *ProviderHandler) CreateService(w http.ResponseWriter, r *http.Request) {
	log := logger.FromContextOrDefault(r.Context(), h.logger)

	providerID, ok := h.parseIDParam(w, r, "id", "Provider")
	if !ok {
		return
	}

	var req CreateServiceRequest
	if err := shared.DecodeJSON(r, &req); err != nil {
		log.Debug("malformed create service body", slog.String("error", err.Error()))
		shared.RespondWithError(w, r, http.StatusBadRequest, "Invalid request format")
		return
	}

	if err := h.validator.Struct(req); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, SanitizeValidationError(err))
		return
	}

	svc, err := h.providerService.CreateService(r.Context(), providerID, domain.CreateServiceItem{
		Name:        req.Name,
		Price:       *req.Price,
		Description: req.Description,
	})
	if err != nil {
		statusCode := MapErrorToStatusCode(err)
		safeMessage := GetSafeErrorMessage(err)
		if statusCode == http.StatusInternalServerError {
			safeMessage = "Failed to create service"
		}
		shared.RespondWithErrorAndLog(w, r, statusCode, safeMessage, err)
		return
	}

	log.Debug("catalog service created",
		slog.String("service_id", svc.ID.String()),
		slog.String("provider_id", providerID.String()))
	shared.RespondWithJSON(w, r, http.StatusCreated, toServiceResponse(svc))
}

// ListServices handles GET /providers/{id}/services requests.
// Services are returned in insertion order.
func (h *ProviderHandler) ListServices(w http.ResponseWriter, r *http.Request) {
	providerID, ok := h.parseIDParam(w, r, "id", "Provider")
	if !ok {
		return
	}

	services, err := h.providerService.ListServices(r.Context(), providerID)
	if err != nil {
		statusCode := MapErrorToStatusCode(err)
		safeMessage := GetSafeErrorMessage(err)
		if statusCode == http.StatusInternalServerError {
			safeMessage = "Failed to list services"
		}
		shared.RespondWithErrorAndLog(w, r, statusCode, safeMessage, err)
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, toServiceResponses(services))
}

// DeleteService handles DELETE /services/{id} requests.
func (h *ProviderHandler) DeleteService(w http.ResponseWriter, r *http.Request) {
	log := logger.FromContextOrDefault(r.Context(), h.logger)

	serviceID, ok := h.parseIDParam(w, r, "id", "Service")
	if !ok {
		return
	}

	if err := h.providerService.RemoveService(r.Context(), serviceID); err != nil {
		statusCode := MapErrorToStatusCode(err)
		safeMessage := GetSafeErrorMessage(err)
		if statusCode == http.StatusInternalServerError {
			safeMessage = "Failed to delete service"
		}
		shared.RespondWithErrorAndLog(w, r, statusCode, safeMessage, err)
		return
	}

	log.Debug("catalog service deleted", slog.String("service_id", serviceID.String()))
	w.WriteHeader(http.StatusNoContent)
}

// parseIDParam extracts and parses a UUID path parameter, responding with
// 400 on failure. The entity name is used in the client-facing message.
func (h *ProviderHandler) parseIDParam(
	w http.ResponseWriter,
	r *http.Request,
	param string,
	entity string,
) (uuid.UUID, bool) {
	log := logger.FromContextOrDefault(r.Context(), h.logger)

	raw := chi.URLParam(r, param)
	if raw == "" {
		log.Warn("ID not found in URL path", slog.String("param", param))
		shared.RespondWithError(w, r, http.StatusBadRequest, entity+" ID is required")
		return uuid.Nil, false
	}

	id, err := uuid.Parse(raw)
	if err != nil {
		log.Warn("invalid ID format", slog.String("param", param), slog.String("value", raw))
		shared.RespondWithError(w, r, http.StatusBadRequest, entity+" ID must be a valid UUID")
		return uuid.Nil, false
	}

	return id, true
}
