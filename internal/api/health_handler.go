package api

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/ridelink/provider-api/internal/api/shared"
)

// healthCheckTimeout bounds the database ping so a wedged connection
// pool cannot hang the health endpoint.
const healthCheckTimeout = 2 * time.Second

// Pinger reports whether a backing dependency is reachable.
// *sql.DB satisfies it directly.
type Pinger interface {
	PingContext(ctx context.Context) error
}

// HealthHandler handles GET /health requests.
type HealthHandler struct {
	db     Pinger
	logger *slog.Logger
}

// NewHealthHandler creates a new HealthHandler. A nil db skips the
// database check, which is useful in tests.
func NewHealthHandler(db Pinger, log *slog.Logger) *HealthHandler {
	if log == nil {
		// ALLOW-PANIC: Constructor enforcing required dependency
		panic("logger cannot be nil for HealthHandler")
	}

	return &HealthHandler{
		db:     db,
		logger: log.With(slog.String("component", "health_handler")),
	}
}

// Check responds 200 when the service and its database are reachable,
// 503 otherwise.
func (h *HealthHandler) Check(w http.ResponseWriter, r *http.Request) {
	if h.db != nil {
		ctx, cancel := context.WithTimeout(r.Context(), healthCheckTimeout)
		defer cancel()

		if err := h.db.PingContext(ctx); err != nil {
			h.logger.Error("health check database ping failed", slog.String("error", err.Error()))
			shared.RespondWithJSON(w, r, http.StatusServiceUnavailable, HealthResponse{Status: "unavailable"})
			return
		}
	}

	shared.RespondWithJSON(w, r, http.StatusOK, HealthResponse{Status: "ok"})
}
