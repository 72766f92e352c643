package main

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"

	"github.com/ridelink/provider-api/internal/config"
	"github.com/ridelink/provider-api/internal/platform/postgres"
	"github.com/ridelink/provider-api/internal/service"
	"github.com/ridelink/provider-api/internal/store"
)

// application holds all the shared application dependencies to simplify
// management and ensure proper cleanup on shutdown.
type application struct {
	config *config.Config
	logger *slog.Logger
	db     *sql.DB

	// Stores (using interfaces for proper abstraction)
	profileStore store.ProfileStore
	serviceStore store.ServiceStore

	// Service interfaces
	providerService service.ProviderService
}

// newApplication creates a new application instance with all dependencies
// initialized. It accepts core dependencies like configuration, logger,
// and database connection that must be established before application
// initialization.
func newApplication(
	ctx context.Context,
	cfg *config.Config,
	logger *slog.Logger,
	db *sql.DB,
) (*application, error) {
	app := &application{
		config: cfg,
		logger: logger,
		db:     db,
	}

	// Initialize stores
	app.profileStore = postgres.NewPostgresProfileStore(db, logger)
	app.serviceStore = postgres.NewPostgresServiceStore(db, logger)

	// Initialize provider service
	var err error
	app.providerService, err = service.NewProviderService(
		app.profileStore,
		app.serviceStore,
		logger,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create provider service: %w", err)
	}

	logger.Info("Application initialized successfully")
	return app, nil
}

// Run starts the application server, handling lifecycle and cleanup.
// It returns an error if the server fails to start or encounters problems.
func (app *application) Run(ctx context.Context) error {
	router := app.setupRouter()

	if err := app.startHTTPServer(ctx, router); err != nil {
		return fmt.Errorf("server error: %w", err)
	}

	return nil
}

// cleanup handles graceful shutdown of application resources.
func (app *application) cleanup() {
	if app.db != nil {
		if err := app.db.Close(); err != nil {
			app.logger.Error("Error closing database connection", "error", err)
		}
	}

	app.logger.Info("Application shutdown completed")
}
