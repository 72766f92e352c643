package api

import (
	"reflect"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/ridelink/provider-api/internal/domain"
)

// CreateProviderRequest represents the request body for creating a
// provider profile.
type CreateProviderRequest struct {
	UserID       string `json:"userId" validate:"required,uuid"`
	BusinessName string `json:"businessName" validate:"required"`
	Category     string `json:"category" validate:"required,oneof=GARAGE CARRIER DETAILER"`
	Phone        string `json:"phone" validate:"required"`
	Address      string `json:"address" validate:"required"`
}

// UpdateProviderRequest represents the request body for a partial
// profile update. Absent fields keep their stored values.
type UpdateProviderRequest struct {
	BusinessName *string `json:"businessName,omitempty"`
	Category     *string `json:"category,omitempty" validate:"omitempty,oneof=GARAGE CARRIER DETAILER"`
	Phone        *string `json:"phone,omitempty"`
	Address      *string `json:"address,omitempty"`
}

// CreateServiceRequest represents the request body for adding a service
// to a provider's catalog. Price is a pointer so that a missing price is
// rejected by validation rather than defaulting to zero.
type CreateServiceRequest struct {
	Name        string  `json:"name" validate:"required"`
	Price       *int64  `json:"price" validate:"required,gte=0"`
	Description *string `json:"description,omitempty"`
}

// ProviderResponse represents a provider profile in API responses.
type ProviderResponse struct {
	ID           string    `json:"id"`
	UserID       string    `json:"userId"`
	BusinessName string    `json:"businessName"`
	Category     string    `json:"category"`
	Phone        string    `json:"phone"`
	Address      string    `json:"address"`
	CreatedAt    time.Time `json:"createdAt"`
	UpdatedAt    time.Time `json:"updatedAt"`
}

// ServiceResponse represents a catalog service in API responses.
type ServiceResponse struct {
	ID          string    `json:"id"`
	ProviderID  string    `json:"providerId"`
	Name        string    `json:"name"`
	Price       int64     `json:"price"`
	Description *string   `json:"description,omitempty"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

// ProviderDetailsResponse combines a provider profile with its full
// service catalog.
type ProviderDetailsResponse struct {
	Provider ProviderResponse  `json:"provider"`
	Services []ServiceResponse `json:"services"`
}

// HealthResponse is returned by the health endpoint.
type HealthResponse struct {
	Status string `json:"status"`
}

func toProviderResponse(p *domain.ProviderProfile) ProviderResponse {
	return ProviderResponse{
		ID:           p.ID.String(),
		UserID:       p.UserID.String(),
		BusinessName: p.BusinessName,
		Category:     string(p.Category),
		Phone:        p.Phone,
		Address:      p.Address,
		CreatedAt:    p.CreatedAt,
		UpdatedAt:    p.UpdatedAt,
	}
}

func toServiceResponse(s *domain.ProviderService) ServiceResponse {
	return ServiceResponse{
		ID:          s.ID.String(),
		ProviderID:  s.ProviderID.String(),
		Name:        s.Name,
		Price:       s.Price,
		Description: s.Description,
		CreatedAt:   s.CreatedAt,
		UpdatedAt:   s.UpdatedAt,
	}
}

func toServiceResponses(items []*domain.ProviderService) []ServiceResponse {
	out := make([]ServiceResponse, 0, len(items))
	for _, s := range items {
		out = append(out, toServiceResponse(s))
	}
	return out
}

// newValidator builds a validator instance that reports field names from
// json tags, so error messages match the wire format clients sent.
func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" || name == "" {
			return fld.Name
		}
		return name
	})
	return v
}
