package api

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/ridelink/provider-api/internal/domain"
	"github.com/ridelink/provider-api/internal/mocks"
	"github.com/ridelink/provider-api/internal/service"
	"github.com/ridelink/provider-api/internal/store"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func testProfile(id, userID uuid.UUID) *domain.ProviderProfile {
	now := time.Now().UTC()
	return &domain.ProviderProfile{
		ID:           id,
		UserID:       userID,
		BusinessName: "Joe's Garage",
		Category:     domain.CategoryGarage,
		Phone:        "555-0100",
		Address:      "1 Main St",
		CreatedAt:    now,
		UpdatedAt:    now,
	}
}

func testService(id, providerID uuid.UUID) *domain.ProviderService {
	now := time.Now().UTC()
	return &domain.ProviderService{
		ID:         id,
		ProviderID: providerID,
		Name:       "Oil Change",
		Price:      2500,
		CreatedAt:  now,
		UpdatedAt:  now,
	}
}

// withURLParam injects a chi URL parameter into the request context so
// handlers can be exercised without a full router.
func withURLParam(req *http.Request, key, value string) *http.Request {
	rctx := chi.NewRouteContext()
	rctx.URLParams.Add(key, value)
	return req.WithContext(context.WithValue(req.Context(), chi.RouteCtxKey, rctx))
}

func TestCreateProvider(t *testing.T) {
	userID := uuid.New()
	profileID := uuid.New()

	tests := []struct {
		name           string
		body           string
		serviceResult  *domain.ProviderProfile
		serviceError   error
		expectedStatus int
		wantServiceHit bool
	}{
		{
			name: "Success",
			body: `{"userId":"` + userID.String() +
				`","businessName":"Joe's Garage","category":"GARAGE","phone":"555-0100","address":"1 Main St"}`,
			serviceResult:  testProfile(profileID, userID),
			expectedStatus: http.StatusCreated,
			wantServiceHit: true,
		},
		{
			name:           "Malformed JSON",
			body:           `{"userId":`,
			expectedStatus: http.StatusBadRequest,
		},
		{
			name: "Unknown category",
			body: `{"userId":"` + userID.String() +
				`","businessName":"Joe's Garage","category":"PLUMBER","phone":"555-0100","address":"1 Main St"}`,
			expectedStatus: http.StatusBadRequest,
		},
		{
			name: "Missing business name",
			body: `{"userId":"` + userID.String() +
				`","category":"GARAGE","phone":"555-0100","address":"1 Main St"}`,
			expectedStatus: http.StatusBadRequest,
		},
		{
			name: "Invalid user ID",
			body: `{"userId":"nope","businessName":"Joe's Garage","category":"GARAGE",` +
				`"phone":"555-0100","address":"1 Main St"}`,
			expectedStatus: http.StatusBadRequest,
		},
		{
			name: "User already has a profile",
			body: `{"userId":"` + userID.String() +
				`","businessName":"Joe's Garage","category":"GARAGE","phone":"555-0100","address":"1 Main St"}`,
			serviceError:   store.ErrUserProfileExists,
			expectedStatus: http.StatusConflict,
			wantServiceHit: true,
		},
		{
			name: "Store failure",
			body: `{"userId":"` + userID.String() +
				`","businessName":"Joe's Garage","category":"GARAGE","phone":"555-0100","address":"1 Main St"}`,
			serviceError:   errors.New("connection reset"),
			expectedStatus: http.StatusInternalServerError,
			wantServiceHit: true,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			serviceHit := false
			mockService := &mocks.MockProviderService{
				CreateProfileFn: func(ctx context.Context, gotUserID uuid.UUID, input service.CreateProfileInput) (*domain.ProviderProfile, error) {
					serviceHit = true
					assert.Equal(t, userID, gotUserID)
					return tc.serviceResult, tc.serviceError
				},
			}
			handler := NewProviderHandler(mockService, testLogger())

			req := httptest.NewRequest(http.MethodPost, "/providers", bytes.NewBufferString(tc.body))
			req.Header.Set("Content-Type", "application/json")
			rr := httptest.NewRecorder()

			handler.CreateProvider(rr, req)

			assert.Equal(t, tc.expectedStatus, rr.Code)
			assert.Equal(t, tc.wantServiceHit, serviceHit,
				"service call mismatch: invalid requests must not reach the service")

			if tc.expectedStatus == http.StatusCreated {
				var resp ProviderResponse
				require.NoError(t, json.NewDecoder(rr.Body).Decode(&resp))
				assert.Equal(t, profileID.String(), resp.ID)
				assert.Equal(t, userID.String(), resp.UserID)
				assert.Equal(t, "GARAGE", resp.Category)
			}
		})
	}
}

func TestGetProvider(t *testing.T) {
	providerID := uuid.New()
	userID := uuid.New()

	t.Run("returns profile with catalog", func(t *testing.T) {
		svc := testService(uuid.New(), providerID)
		mockService := &mocks.MockProviderService{
			GetProviderDetailsFn: func(ctx context.Context, gotID uuid.UUID) (*domain.ProviderDetails, error) {
				assert.Equal(t, providerID, gotID)
				return &domain.ProviderDetails{
					Profile:  testProfile(providerID, userID),
					Services: []*domain.ProviderService{svc},
				}, nil
			},
		}
		handler := NewProviderHandler(mockService, testLogger())

		req := withURLParam(httptest.NewRequest(http.MethodGet, "/providers/"+providerID.String(), nil),
			"id", providerID.String())
		rr := httptest.NewRecorder()

		handler.GetProvider(rr, req)

		require.Equal(t, http.StatusOK, rr.Code)
		var resp ProviderDetailsResponse
		require.NoError(t, json.NewDecoder(rr.Body).Decode(&resp))
		assert.Equal(t, providerID.String(), resp.Provider.ID)
		require.Len(t, resp.Services, 1)
		assert.Equal(t, "Oil Change", resp.Services[0].Name)
		assert.Equal(t, int64(2500), resp.Services[0].Price)
	})

	t.Run("empty catalog serializes as empty array", func(t *testing.T) {
		mockService := &mocks.MockProviderService{
			GetProviderDetailsFn: func(ctx context.Context, gotID uuid.UUID) (*domain.ProviderDetails, error) {
				return &domain.ProviderDetails{
					Profile:  testProfile(providerID, userID),
					Services: []*domain.ProviderService{},
				}, nil
			},
		}
		handler := NewProviderHandler(mockService, testLogger())

		req := withURLParam(httptest.NewRequest(http.MethodGet, "/providers/"+providerID.String(), nil),
			"id", providerID.String())
		rr := httptest.NewRecorder()

		handler.GetProvider(rr, req)

		require.Equal(t, http.StatusOK, rr.Code)
		assert.Contains(t, rr.Body.String(), `"services":[]`)
	})

	t.Run("unknown provider", func(t *testing.T) {
		mockService := &mocks.MockProviderService{
			GetProviderDetailsFn: func(ctx context.Context, gotID uuid.UUID) (*domain.ProviderDetails, error) {
				return nil, store.ErrProfileNotFound
			},
		}
		handler := NewProviderHandler(mockService, testLogger())

		req := withURLParam(httptest.NewRequest(http.MethodGet, "/providers/"+providerID.String(), nil),
			"id", providerID.String())
		rr := httptest.NewRecorder()

		handler.GetProvider(rr, req)

		assert.Equal(t, http.StatusNotFound, rr.Code)
		assert.Contains(t, rr.Body.String(), "Provider not found")
	})

	t.Run("malformed ID", func(t *testing.T) {
		handler := NewProviderHandler(&mocks.MockProviderService{}, testLogger())

		req := withURLParam(httptest.NewRequest(http.MethodGet, "/providers/abc", nil), "id", "abc")
		rr := httptest.NewRecorder()

		handler.GetProvider(rr, req)

		assert.Equal(t, http.StatusBadRequest, rr.Code)
	})
}

func TestUpdateProvider(t *testing.T) {
	providerID := uuid.New()
	userID := uuid.New()

	t.Run("sparse patch forwards only present fields", func(t *testing.T) {
		mockService := &mocks.MockProviderService{
			UpdateProfileFn: func(ctx context.Context, gotID uuid.UUID, patch domain.UpdateProviderProfilePatch) (*domain.ProviderProfile, error) {
				require.NotNil(t, patch.Phone)
				assert.Equal(t, "555-0199", *patch.Phone)
				assert.Nil(t, patch.BusinessName)
				assert.Nil(t, patch.Category)
				assert.Nil(t, patch.Address)

				updated := testProfile(gotID, userID)
				updated.Phone = *patch.Phone
				return updated, nil
			},
		}
		handler := NewProviderHandler(mockService, testLogger())

		req := withURLParam(httptest.NewRequest(http.MethodPatch, "/providers/"+providerID.String(),
			bytes.NewBufferString(`{"phone":"555-0199"}`)), "id", providerID.String())
		rr := httptest.NewRecorder()

		handler.UpdateProvider(rr, req)

		require.Equal(t, http.StatusOK, rr.Code)
		var resp ProviderResponse
		require.NoError(t, json.NewDecoder(rr.Body).Decode(&resp))
		assert.Equal(t, "555-0199", resp.Phone)
		assert.Equal(t, "Joe's Garage", resp.BusinessName)
	})

	t.Run("category change is parsed into the domain type", func(t *testing.T) {
		mockService := &mocks.MockProviderService{
			UpdateProfileFn: func(ctx context.Context, gotID uuid.UUID, patch domain.UpdateProviderProfilePatch) (*domain.ProviderProfile, error) {
				require.NotNil(t, patch.Category)
				assert.Equal(t, domain.CategoryDetailer, *patch.Category)
				updated := testProfile(gotID, userID)
				updated.Category = *patch.Category
				return updated, nil
			},
		}
		handler := NewProviderHandler(mockService, testLogger())

		req := withURLParam(httptest.NewRequest(http.MethodPatch, "/providers/"+providerID.String(),
			bytes.NewBufferString(`{"category":"DETAILER"}`)), "id", providerID.String())
		rr := httptest.NewRecorder()

		handler.UpdateProvider(rr, req)

		assert.Equal(t, http.StatusOK, rr.Code)
	})

	t.Run("invalid category never reaches the service", func(t *testing.T) {
		mockService := &mocks.MockProviderService{
			UpdateProfileFn: func(ctx context.Context, gotID uuid.UUID, patch domain.UpdateProviderProfilePatch) (*domain.ProviderProfile, error) {
				t.Fatal("service must not be called for an invalid category")
				return nil, nil
			},
		}
		handler := NewProviderHandler(mockService, testLogger())

		req := withURLParam(httptest.NewRequest(http.MethodPatch, "/providers/"+providerID.String(),
			bytes.NewBufferString(`{"category":"PLUMBER"}`)), "id", providerID.String())
		rr := httptest.NewRecorder()

		handler.UpdateProvider(rr, req)

		assert.Equal(t, http.StatusBadRequest, rr.Code)
	})

	t.Run("unknown provider", func(t *testing.T) {
		mockService := &mocks.MockProviderService{
			UpdateProfileFn: func(ctx context.Context, gotID uuid.UUID, patch domain.UpdateProviderProfilePatch) (*domain.ProviderProfile, error) {
				return nil, store.ErrProfileNotFound
			},
		}
		handler := NewProviderHandler(mockService, testLogger())

		req := withURLParam(httptest.NewRequest(http.MethodPatch, "/providers/"+providerID.String(),
			bytes.NewBufferString(`{"phone":"555-0199"}`)), "id", providerID.String())
		rr := httptest.NewRecorder()

		handler.UpdateProvider(rr, req)

		assert.Equal(t, http.StatusNotFound, rr.Code)
	})
}

func TestDeleteProvider(t *testing.T) {
	providerID := uuid.New()

	t.Run("success returns no content", func(t *testing.T) {
		mockService := &mocks.MockProviderService{
			RemoveProfileFn: func(ctx context.Context, gotID uuid.UUID) error {
				assert.Equal(t, providerID, gotID)
				return nil
			},
		}
		handler := NewProviderHandler(mockService, testLogger())

		req := withURLParam(httptest.NewRequest(http.MethodDelete, "/providers/"+providerID.String(), nil),
			"id", providerID.String())
		rr := httptest.NewRecorder()

		handler.DeleteProvider(rr, req)

		assert.Equal(t, http.StatusNoContent, rr.Code)
		assert.Zero(t, rr.Body.Len())
	})

	t.Run("unknown provider", func(t *testing.T) {
		mockService := &mocks.MockProviderService{
			RemoveProfileFn: func(ctx context.Context, gotID uuid.UUID) error {
				return store.ErrProfileNotFound
			},
		}
		handler := NewProviderHandler(mockService, testLogger())

		req := withURLParam(httptest.NewRequest(http.MethodDelete, "/providers/"+providerID.String(), nil),
			"id", providerID.String())
		rr := httptest.NewRecorder()

		handler.DeleteProvider(rr, req)

		assert.Equal(t, http.StatusNotFound, rr.Code)
	})
}

func TestCreateService(t *testing.T) {
	providerID := uuid.New()

	tests := []struct {
		name           string
		body           string
		serviceResult  *domain.ProviderService
		serviceError   error
		expectedStatus int
		wantServiceHit bool
	}{
		{
			name:           "Success",
			body:           `{"name":"Oil Change","price":2500}`,
			serviceResult:  testService(uuid.New(), providerID),
			expectedStatus: http.StatusCreated,
			wantServiceHit: true,
		},
		{
			name:           "Missing price",
			body:           `{"name":"Oil Change"}`,
			expectedStatus: http.StatusBadRequest,
		},
		{
			name:           "Negative price",
			body:           `{"name":"Oil Change","price":-1}`,
			expectedStatus: http.StatusBadRequest,
		},
		{
			name:           "Empty name",
			body:           `{"name":"","price":2500}`,
			expectedStatus: http.StatusBadRequest,
		},
		{
			name:           "Zero price is accepted",
			body:           `{"name":"Free Inspection","price":0}`,
			serviceResult:  testService(uuid.New(), providerID),
			expectedStatus: http.StatusCreated,
			wantServiceHit: true,
		},
		{
			name:           "Unknown provider",
			body:           `{"name":"Oil Change","price":2500}`,
			serviceError:   store.ErrProfileNotFound,
			expectedStatus: http.StatusNotFound,
			wantServiceHit: true,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			serviceHit := false
			mockService := &mocks.MockProviderService{
				CreateServiceFn: func(ctx context.Context, gotID uuid.UUID, item domain.CreateServiceItem) (*domain.ProviderService, error) {
					serviceHit = true
					assert.Equal(t, providerID, gotID)
					return tc.serviceResult, tc.serviceError
				},
			}
			handler := NewProviderHandler(mockService, testLogger())

			req := withURLParam(httptest.NewRequest(http.MethodPost,
				"/providers/"+providerID.String()+"/services", bytes.NewBufferString(tc.body)),
				"id", providerID.String())
			rr := httptest.NewRecorder()

			handler.CreateService(rr, req)

			assert.Equal(t, tc.expectedStatus, rr.Code)
			assert.Equal(t, tc.wantServiceHit, serviceHit,
				"service call mismatch: invalid requests must not reach the service")

			if tc.expectedStatus == http.StatusCreated {
				var resp ServiceResponse
				require.NoError(t, json.NewDecoder(rr.Body).Decode(&resp))
				assert.Equal(t, tc.serviceResult.ID.String(), resp.ID)
				assert.Equal(t, tc.serviceResult.Price, resp.Price)
			}
		})
	}
}

func TestListServices(t *testing.T) {
	providerID := uuid.New()

	t.Run("returns catalog in order", func(t *testing.T) {
		first := testService(uuid.New(), providerID)
		second := testService(uuid.New(), providerID)
		second.Name = "Tire Rotation"
		second.Price = 4000

		mockService := &mocks.MockProviderService{
			ListServicesFn: func(ctx context.Context, gotID uuid.UUID) ([]*domain.ProviderService, error) {
				return []*domain.ProviderService{first, second}, nil
			},
		}
		handler := NewProviderHandler(mockService, testLogger())

		req := withURLParam(httptest.NewRequest(http.MethodGet,
			"/providers/"+providerID.String()+"/services", nil), "id", providerID.String())
		rr := httptest.NewRecorder()

		handler.ListServices(rr, req)

		require.Equal(t, http.StatusOK, rr.Code)
		var resp []ServiceResponse
		require.NoError(t, json.NewDecoder(rr.Body).Decode(&resp))
		require.Len(t, resp, 2)
		assert.Equal(t, "Oil Change", resp[0].Name)
		assert.Equal(t, "Tire Rotation", resp[1].Name)
	})

	t.Run("unknown provider is not found, not an empty list", func(t *testing.T) {
		mockService := &mocks.MockProviderService{
			ListServicesFn: func(ctx context.Context, gotID uuid.UUID) ([]*domain.ProviderService, error) {
				return nil, store.ErrProfileNotFound
			},
		}
		handler := NewProviderHandler(mockService, testLogger())

		req := withURLParam(httptest.NewRequest(http.MethodGet,
			"/providers/"+providerID.String()+"/services", nil), "id", providerID.String())
		rr := httptest.NewRecorder()

		handler.ListServices(rr, req)

		assert.Equal(t, http.StatusNotFound, rr.Code)
	})
}

func TestDeleteService(t *testing.T) {
	serviceID := uuid.New()

	tests := []struct {
		name           string
		serviceError   error
		expectedStatus int
	}{
		{
			name:           "Success",
			expectedStatus: http.StatusNoContent,
		},
		{
			name:           "Unknown service",
			serviceError:   store.ErrServiceNotFound,
			expectedStatus: http.StatusNotFound,
		},
		{
			name:           "Store failure",
			serviceError:   errors.New("connection reset"),
			expectedStatus: http.StatusInternalServerError,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			mockService := &mocks.MockProviderService{
				RemoveServiceFn: func(ctx context.Context, gotID uuid.UUID) error {
					assert.Equal(t, serviceID, gotID)
					return tc.serviceError
				},
			}
			handler := NewProviderHandler(mockService, testLogger())

			req := withURLParam(httptest.NewRequest(http.MethodDelete,
				"/services/"+serviceID.String(), nil), "id", serviceID.String())
			rr := httptest.NewRecorder()

			handler.DeleteService(rr, req)

			assert.Equal(t, tc.expectedStatus, rr.Code)
		})
	}
}
