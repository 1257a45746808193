package testinfra

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"path/filepath"
	"testing"

	"github.com/ferdian3456/postapi/db"
	"github.com/golang-migrate/migrate/v4"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stretchr/testify/require"

	_ "modernc.org/sqlite"
)

// NewPostgresPool starts PostgreSQL, migrates it and returns a pool.
func NewPostgresPool(ctx context.Context, t *testing.T) *pgxpool.Pool {
	pgURL := StartPostgres(ctx, t)

	m, err := db.NewPostgresMigrate(pgURL)
	require.NoError(t, err, "failed to create migrate instance")

	err = m.Up()
	if err != nil && !errors.Is(err, migrate.ErrNoChange) {
		require.NoError(t, err, "failed to run migrations")
	}
	_, _ = m.Close()

	pool, err := pgxpool.New(ctx, pgURL)
	require.NoError(t, err, "failed to connect to test db")

	t.Cleanup(pool.Close)

	return pool
}

// NewSQLite returns a migrated SQLite database living in the test's temp dir.
func NewSQLite(t *testing.T) *sql.DB {
	t.Helper()

	path := filepath.Join(t.TempDir(), "postapi_test.db")
	sqlDB, err := sql.Open("sqlite", path+"?_pragma=foreign_keys(1)&_pragma=busy_timeout(5000)")
	require.NoError(t, err, "failed to open sqlite")
	sqlDB.SetMaxOpenConns(1)

	t.Cleanup(func() {
		_ = sqlDB.Close()
	})

	m, err := db.NewSQLiteMigrate(sqlDB)
	require.NoError(t, err, "failed to create migrate instance")

	err = m.Up()
	if err != nil && !errors.Is(err, migrate.ErrNoChange) {
		require.NoError(t, err, "failed to run migrations")
	}

	return sqlDB
}

// TruncateAllTables empties every table and resets the id sequences.
func TruncateAllTables(ctx context.Context, t *testing.T, pool *pgxpool.Pool) {
	for _, table := range []string{"posts", "users"} {
		_, err := pool.Exec(ctx, fmt.Sprintf("TRUNCATE TABLE %s RESTART IDENTITY CASCADE", table))
		require.NoError(t, err, "failed to truncate table %s", table)
	}
}
