// Package testutil opens a migrated scratch database for integration tests.
package testutil

import (
	"context"
	"database/sql"
	"os"
	"testing"
	"time"

	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/rs/zerolog"

	"projecttracker/internal/database/migration"
)

// DSNEnv names the variable holding the integration database DSN.
const DSNEnv = "PG_DSN"

// OpenDB connects to PG_DSN, wipes the public schema and migrates it.
// The test is skipped when PG_DSN is unset. The schema is destroyed, so point
// PG_DSN at a throwaway database.
func OpenDB(t *testing.T) *sql.DB {
	t.Helper()

	dsn := os.Getenv(DSNEnv)
	if dsn == "" {
		t.Skipf("%s not set, skipping integration test", DSNEnv)
	}

	db, err := sql.Open("pgx", dsn)
	if err != nil {
		t.Fatalf("open: %v", err)
	}
	t.Cleanup(func() { _ = db.Close() })

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if _, err := db.ExecContext(ctx, `DROP SCHEMA public CASCADE; CREATE SCHEMA public;`); err != nil {
		t.Fatalf("reset schema: %v", err)
	}
	if err := migration.EnsureMigrated(ctx, db, zerolog.New(zerolog.NewTestWriter(t)), "test"); err != nil {
		t.Fatalf("migrate: %v", err)
	}
	return db
}

// Date returns midnight UTC of the given day.
func Date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}
