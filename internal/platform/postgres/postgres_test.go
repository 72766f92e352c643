package postgres

import (
	"database/sql"
	"os"
	"sync"
	"testing"

	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/pressly/goose/v3"
	"github.com/stretchr/testify/require"

	"github.com/ridelink/provider-api/migrations"
)

var migrateOnce sync.Once

// testDB opens a connection to the database named by DATABASE_URL and
// ensures migrations are applied. Tests that need a real database call
// this and are skipped when no database is configured.
func testDB(t *testing.T) *sql.DB {
	t.Helper()

	url := os.Getenv("DATABASE_URL")
	if url == "" {
		t.Skip("DATABASE_URL not set; skipping database integration test")
	}

	db, err := sql.Open("pgx", url)
	require.NoError(t, err)
	t.Cleanup(func() {
		require.NoError(t, db.Close())
	})

	migrateOnce.Do(func() {
		goose.SetBaseFS(migrations.FS)
		require.NoError(t, goose.SetDialect("postgres"))
		require.NoError(t, goose.Up(db, "."))
	})

	return db
}
