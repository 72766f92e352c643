package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/ridelink/provider-api/internal/domain"
	"github.com/ridelink/provider-api/internal/platform/logger"
	"github.com/ridelink/provider-api/internal/store"
)

// uniqueUserProfileConstraint is the unique index enforcing the 1:1
// relationship between users and provider profiles.
const uniqueUserProfileConstraint = "providers_user_id_key"

// PostgresProfileStore implements the store.ProfileStore interface
// using a PostgreSQL database as the storage backend.
type PostgresProfileStore struct {
	db     store.DBTX
	logger *slog.Logger
}

// NewPostgresProfileStore creates a new PostgreSQL implementation of the
// ProfileStore interface. It accepts a database connection or transaction
// that should be initialized and managed by the caller.
// If logger is nil, a default logger will be used.
func NewPostgresProfileStore(db store.DBTX, logger *slog.Logger) *PostgresProfileStore {
	if db == nil {
		panic("db cannot be nil")
	}

	if logger == nil {
		logger = slog.Default()
	}

	return &PostgresProfileStore{
		db:     db,
		logger: logger.With(slog.String("component", "profile_store")),
	}
}

// Ensure PostgresProfileStore implements store.ProfileStore interface
var _ store.ProfileStore = (*PostgresProfileStore)(nil)

// WithTx returns a new ProfileStore backed by the given transaction.
func (s *PostgresProfileStore) WithTx(tx *sql.Tx) store.ProfileStore {
	return &PostgresProfileStore{
		db:     tx,
		logger: s.logger,
	}
}

// Create implements store.ProfileStore.Create
// It saves a new provider profile to the database, handling domain validation.
// Returns store.ErrUserProfileExists if the owning user already has a profile.
func (s *PostgresProfileStore) Create(ctx context.Context, profile *domain.ProviderProfile) error {
	log := logger.FromContextOrDefault(ctx, s.logger)

	if err := profile.Validate(); err != nil {
		log.Warn("profile validation failed during create",
			slog.String("error", err.Error()),
			slog.String("profile_id", profile.ID.String()))
		return err
	}

	query := `
		INSERT INTO providers (id, user_id, business_name, category, phone, address, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
	`
	_, err := s.db.ExecContext(
		ctx,
		query,
		profile.ID,
		profile.UserID,
		profile.BusinessName,
		string(profile.Category),
		profile.Phone,
		profile.Address,
		profile.CreatedAt,
		profile.UpdatedAt,
	)

	if err != nil {
		if isUniqueViolation(err, uniqueUserProfileConstraint) {
			log.Warn("user already owns a profile",
				slog.String("user_id", profile.UserID.String()))
			return store.ErrUserProfileExists
		}
		if isUniqueViolation(err, "") {
			log.Warn("unique constraint violation during profile creation",
				slog.String("profile_id", profile.ID.String()))
			return fmt.Errorf("%w: profile %s", store.ErrDuplicate, profile.ID)
		}

		log.Error("failed to create profile",
			slog.String("error", err.Error()),
			slog.String("profile_id", profile.ID.String()),
			slog.String("user_id", profile.UserID.String()))
		return err
	}

	log.Info("profile created successfully",
		slog.String("profile_id", profile.ID.String()),
		slog.String("user_id", profile.UserID.String()),
		slog.String("category", profile.Category.String()))
	return nil
}

// GetByID implements store.ProfileStore.GetByID
// Returns store.ErrProfileNotFound if the profile does not exist.
func (s *PostgresProfileStore) GetByID(ctx context.Context, id uuid.UUID) (*domain.ProviderProfile, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	query := `
		SELECT id, user_id, business_name, category, phone, address, created_at, updated_at
		FROM providers
		WHERE id = $1
	`

	profile, err := scanProfile(s.db.QueryRowContext(ctx, query, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			log.Debug("profile not found", slog.String("profile_id", id.String()))
			return nil, store.ErrProfileNotFound
		}
		log.Error("failed to get profile by ID",
			slog.String("error", err.Error()),
			slog.String("profile_id", id.String()))
		return nil, err
	}

	return profile, nil
}

// Update implements store.ProfileStore.Update
// It applies only the present patch fields, using COALESCE so that absent
// fields keep their stored values, and refreshes updated_at. Identifiers
// and created_at are never written.
// Returns store.ErrProfileNotFound if the profile does not exist.
func (s *PostgresProfileStore) Update(
	ctx context.Context,
	id uuid.UUID,
	patch domain.UpdateProviderProfilePatch,
) (*domain.ProviderProfile, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	if err := patch.Validate(); err != nil {
		log.Warn("patch validation failed during profile update",
			slog.String("error", err.Error()),
			slog.String("profile_id", id.String()))
		return nil, err
	}

	// A patch with no fields mutates nothing; read back the stored row
	// without refreshing updated_at.
	if patch.IsEmpty() {
		return s.GetByID(ctx, id)
	}

	var category *string
	if patch.Category != nil {
		c := string(*patch.Category)
		category = &c
	}

	query := `
		UPDATE providers
		SET business_name = COALESCE($2, business_name),
		    category      = COALESCE($3, category),
		    phone         = COALESCE($4, phone),
		    address       = COALESCE($5, address),
		    updated_at    = $6
		WHERE id = $1
		RETURNING id, user_id, business_name, category, phone, address, created_at, updated_at
	`

	profile, err := scanProfile(s.db.QueryRowContext(
		ctx,
		query,
		id,
		patch.BusinessName,
		category,
		patch.Phone,
		patch.Address,
		time.Now().UTC(),
	))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			log.Debug("profile not found for update", slog.String("profile_id", id.String()))
			return nil, store.ErrProfileNotFound
		}
		log.Error("failed to update profile",
			slog.String("error", err.Error()),
			slog.String("profile_id", id.String()))
		return nil, err
	}

	log.Info("profile updated successfully",
		slog.String("profile_id", id.String()))
	return profile, nil
}

// Delete implements store.ProfileStore.Delete
// Deletion cascades to the profile's catalog services through the
// ON DELETE CASCADE constraint on provider_services.provider_id.
// Returns store.ErrProfileNotFound if the profile does not exist.
func (s *PostgresProfileStore) Delete(ctx context.Context, id uuid.UUID) error {
	log := logger.FromContextOrDefault(ctx, s.logger)

	query := `DELETE FROM providers WHERE id = $1`

	result, err := s.db.ExecContext(ctx, query, id)
	if err != nil {
		log.Error("failed to delete profile",
			slog.String("error", err.Error()),
			slog.String("profile_id", id.String()))
		return err
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		log.Error("failed to get rows affected",
			slog.String("error", err.Error()),
			slog.String("profile_id", id.String()))
		return err
	}

	if rowsAffected == 0 {
		log.Debug("profile not found for delete", slog.String("profile_id", id.String()))
		return store.ErrProfileNotFound
	}

	log.Info("profile deleted successfully",
		slog.String("profile_id", id.String()))
	return nil
}

// rowScanner abstracts *sql.Row for single-row scans.
type rowScanner interface {
	Scan(dest ...any) error
}

// scanProfile scans one providers row into a domain.ProviderProfile.
func scanProfile(row rowScanner) (*domain.ProviderProfile, error) {
	var profile domain.ProviderProfile
	var category string

	err := row.Scan(
		&profile.ID,
		&profile.UserID,
		&profile.BusinessName,
		&category,
		&profile.Phone,
		&profile.Address,
		&profile.CreatedAt,
		&profile.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}

	profile.Category = domain.ServiceCategory(category)
	return &profile, nil
}
