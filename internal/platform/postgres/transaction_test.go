package postgres

import (
	"context"
	"database/sql"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ridelink/provider-api/internal/store"
)

func TestRunInTransactionCommit(t *testing.T) {
	db := testDB(t)
	profiles := NewPostgresProfileStore(db, nil)
	ctx := context.Background()

	profile := newTestProfile(t)

	err := store.RunInTransaction(ctx, db, func(ctx context.Context, tx *sql.Tx) error {
		return profiles.WithTx(tx).Create(ctx, profile)
	})
	require.NoError(t, err)

	got, err := profiles.GetByID(ctx, profile.ID)
	require.NoError(t, err)
	assert.Equal(t, profile.ID, got.ID)
}

func TestRunInTransactionRollback(t *testing.T) {
	db := testDB(t)
	profiles := NewPostgresProfileStore(db, nil)
	ctx := context.Background()

	profile := newTestProfile(t)
	boom := errors.New("boom")

	err := store.RunInTransaction(ctx, db, func(ctx context.Context, tx *sql.Tx) error {
		if err := profiles.WithTx(tx).Create(ctx, profile); err != nil {
			return err
		}
		return boom
	})
	require.ErrorIs(t, err, boom)

	// The write inside the failed transaction must not be visible.
	_, err = profiles.GetByID(ctx, profile.ID)
	assert.ErrorIs(t, err, store.ErrProfileNotFound)
}
