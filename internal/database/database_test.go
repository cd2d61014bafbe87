package database

import (
	"context"
	"database/sql"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/jask/rosterpick/internal/catalog"
)

func openTestDB(t *testing.T) *sql.DB {
	t.Helper()
	db, err := Open(filepath.Join(t.TempDir(), "nested", "catalog.db"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })
	require.NoError(t, RunMigrations(db))
	return db
}

func TestRunMigrationsIsRepeatable(t *testing.T) {
	db := openTestDB(t)
	require.NoError(t, RunMigrations(db), "a second run reports no change")
	require.NoError(t, db.Ping(), "migrations leave the connection open")

	var n int
	require.NoError(t, db.QueryRow(`SELECT COUNT(*) FROM characters`).Scan(&n))
	require.Zero(t, n)
}

func TestSeedCatalogRoundTrip(t *testing.T) {
	ctx := context.Background()
	db := openTestDB(t)

	seeded, err := SeedCatalog(ctx, db, catalog.Defaults())
	require.NoError(t, err)
	require.True(t, seeded)

	seeded, err = SeedCatalog(ctx, db, []catalog.Entity{{ID: "late", Name: "Late"}})
	require.NoError(t, err)
	require.False(t, seeded, "a populated catalog is left alone")

	got, err := LoadCatalog(ctx, db)
	require.NoError(t, err)
	require.Equal(t, catalog.Defaults(), got)
}
