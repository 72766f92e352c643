package main

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/ridelink/provider-api/internal/api"
	apiMiddleware "github.com/ridelink/provider-api/internal/api/middleware"
)

// setupRouter creates and configures the application router with all
// routes and middleware. It accepts the application dependencies to
// create handlers and register routes. Returns the configured router.
func (app *application) setupRouter() http.Handler {
	r := chi.NewRouter()

	// Apply standard middleware
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Recoverer)
	r.Use(apiMiddleware.NewTraceMiddleware(app.logger))

	// Create API handlers using the application's services
	providerHandler := api.NewProviderHandler(app.providerService, app.logger)

	// A typed nil *sql.DB must not reach the Pinger interface, or the
	// health handler's nil check would pass and the ping would panic.
	var pinger api.Pinger
	if app.db != nil {
		pinger = app.db
	}
	healthHandler := api.NewHealthHandler(pinger, app.logger)

	// Register routes
	r.Route("/api", func(r chi.Router) {
		r.Post("/providers", providerHandler.CreateProvider)
		r.Get("/providers/{id}", providerHandler.GetProvider)
		r.Patch("/providers/{id}", providerHandler.UpdateProvider)
		r.Delete("/providers/{id}", providerHandler.DeleteProvider)

		r.Post("/providers/{id}/services", providerHandler.CreateService)
		r.Get("/providers/{id}/services", providerHandler.ListServices)
		r.Delete("/services/{id}", providerHandler.DeleteService)
	})

	// Health check endpoint
	r.Get("/health", healthHandler.Check)

	return r
}
