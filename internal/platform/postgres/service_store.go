package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"

	"github.com/google/uuid"
	"github.com/ridelink/provider-api/internal/domain"
	"github.com/ridelink/provider-api/internal/platform/logger"
	"github.com/ridelink/provider-api/internal/store"
)

// PostgresServiceStore implements the store.ServiceStore interface
// using a PostgreSQL database as the storage backend.
type PostgresServiceStore struct {
	db     store.DBTX
	logger *slog.Logger
}

// NewPostgresServiceStore creates a new PostgreSQL implementation of the
// ServiceStore interface. It accepts a database connection or transaction
// that should be initialized and managed by the caller.
// If logger is nil, a default logger will be used.
func NewPostgresServiceStore(db store.DBTX, logger *slog.Logger) *PostgresServiceStore {
	if db == nil {
		panic("db cannot be nil")
	}

	if logger == nil {
		logger = slog.Default()
	}

	return &PostgresServiceStore{
		db:     db,
		logger: logger.With(slog.String("component", "service_store")),
	}
}

// Ensure PostgresServiceStore implements store.ServiceStore interface
var _ store.ServiceStore = (*PostgresServiceStore)(nil)

// WithTx returns a new ServiceStore backed by the given transaction.
func (s *PostgresServiceStore) WithTx(tx *sql.Tx) store.ServiceStore {
	return &PostgresServiceStore{
		db:     tx,
		logger: s.logger,
	}
}

// Create implements store.ServiceStore.Create
// It saves a new catalog service to the database, handling domain validation.
// Returns store.ErrProfileNotFound if the owning provider does not exist
// (foreign key violation).
func (s *PostgresServiceStore) Create(ctx context.Context, svc *domain.ProviderService) error {
	log := logger.FromContextOrDefault(ctx, s.logger)

	if err := svc.Validate(); err != nil {
		log.Warn("service validation failed during create",
			slog.String("error", err.Error()),
			slog.String("service_id", svc.ID.String()))
		return err
	}

	query := `
		INSERT INTO provider_services (id, provider_id, name, price, description, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
	`
	_, err := s.db.ExecContext(
		ctx,
		query,
		svc.ID,
		svc.ProviderID,
		svc.Name,
		svc.Price,
		svc.Description,
		svc.CreatedAt,
		svc.UpdatedAt,
	)

	if err != nil {
		if isForeignKeyViolation(err) {
			log.Warn("owning provider not found during service creation",
				slog.String("service_id", svc.ID.String()),
				slog.String("provider_id", svc.ProviderID.String()))
			return fmt.Errorf("%w: provider %s", store.ErrProfileNotFound, svc.ProviderID)
		}

		log.Error("failed to create service",
			slog.String("error", err.Error()),
			slog.String("service_id", svc.ID.String()),
			slog.String("provider_id", svc.ProviderID.String()))
		return err
	}

	log.Info("service created successfully",
		slog.String("service_id", svc.ID.String()),
		slog.String("provider_id", svc.ProviderID.String()),
		slog.Int64("price", svc.Price))
	return nil
}

// GetByID implements store.ServiceStore.GetByID
// Returns store.ErrServiceNotFound if the service does not exist.
func (s *PostgresServiceStore) GetByID(ctx context.Context, id uuid.UUID) (*domain.ProviderService, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	query := `
		SELECT id, provider_id, name, price, description, created_at, updated_at
		FROM provider_services
		WHERE id = $1
	`

	var svc domain.ProviderService
	err := s.db.QueryRowContext(ctx, query, id).Scan(
		&svc.ID,
		&svc.ProviderID,
		&svc.Name,
		&svc.Price,
		&svc.Description,
		&svc.CreatedAt,
		&svc.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			log.Debug("service not found", slog.String("service_id", id.String()))
			return nil, store.ErrServiceNotFound
		}
		log.Error("failed to get service by ID",
			slog.String("error", err.Error()),
			slog.String("service_id", id.String()))
		return nil, err
	}

	return &svc, nil
}

// ListByProvider implements store.ServiceStore.ListByProvider
// It retrieves the provider's catalog in insertion order.
// Returns an empty slice when the provider has no services.
func (s *PostgresServiceStore) ListByProvider(
	ctx context.Context,
	providerID uuid.UUID,
) ([]*domain.ProviderService, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	query := `
		SELECT id, provider_id, name, price, description, created_at, updated_at
		FROM provider_services
		WHERE provider_id = $1
		ORDER BY created_at, id
	`

	rows, err := s.db.QueryContext(ctx, query, providerID)
	if err != nil {
		log.Error("failed to list services by provider",
			slog.String("error", err.Error()),
			slog.String("provider_id", providerID.String()))
		return nil, err
	}
	defer func() {
		if err := rows.Close(); err != nil {
			log.Error("failed to close rows", slog.String("error", err.Error()))
		}
	}()

	var services []*domain.ProviderService
	for rows.Next() {
		var svc domain.ProviderService
		err := rows.Scan(
			&svc.ID,
			&svc.ProviderID,
			&svc.Name,
			&svc.Price,
			&svc.Description,
			&svc.CreatedAt,
			&svc.UpdatedAt,
		)
		if err != nil {
			log.Error("failed to scan service row",
				slog.String("error", err.Error()))
			return nil, err
		}
		services = append(services, &svc)
	}

	if err := rows.Err(); err != nil {
		log.Error("error after scanning rows",
			slog.String("error", err.Error()))
		return nil, err
	}

	// Return empty slice instead of nil if the catalog is empty
	if services == nil {
		services = []*domain.ProviderService{}
	}

	log.Debug("listed services by provider",
		slog.String("provider_id", providerID.String()),
		slog.Int("count", len(services)))
	return services, nil
}

// Delete implements store.ServiceStore.Delete
// Returns store.ErrServiceNotFound if the service does not exist, so a
// second delete of the same ID reports not-found.
func (s *PostgresServiceStore) Delete(ctx context.Context, id uuid.UUID) error {
	log := logger.FromContextOrDefault(ctx, s.logger)

	query := `DELETE FROM provider_services WHERE id = $1`

	result, err := s.db.ExecContext(ctx, query, id)
	if err != nil {
		log.Error("failed to delete service",
			slog.String("error", err.Error()),
			slog.String("service_id", id.String()))
		return err
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		log.Error("failed to get rows affected",
			slog.String("error", err.Error()),
			slog.String("service_id", id.String()))
		return err
	}

	if rowsAffected == 0 {
		log.Debug("service not found for delete", slog.String("service_id", id.String()))
		return store.ErrServiceNotFound
	}

	log.Info("service deleted successfully",
		slog.String("service_id", id.String()))
	return nil
}
