package migrations

import (
	"context"
	"database/sql"
	"testing"
	"testing/fstest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	_ "modernc.org/sqlite"
)

func newTestDB(t *testing.T) *sql.DB {
	t.Helper()
	sqlDB, err := sql.Open("sqlite", ":memory:")
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { _ = sqlDB.Close() })
	return sqlDB
}

func tableExists(t *testing.T, sqlDB *sql.DB, name string) bool {
	t.Helper()
	var found int
	err := sqlDB.QueryRow(
		`SELECT COUNT(*) FROM sqlite_master WHERE type = 'table' AND name = ?`, name).Scan(&found)
	require.NoError(t, err)
	return found > 0
}

func TestMigrateAppliesBundledFiles(t *testing.T) {
	sqlDB := newTestDB(t)
	m := NewMigrator(sqlDB)

	require.NoError(t, m.Migrate(context.Background(), Files()))

	assert.True(t, tableExists(t, sqlDB, "years"))
	assert.True(t, tableExists(t, sqlDB, "profile"))
	assert.True(t, tableExists(t, sqlDB, "schema_migrations"))
}

func TestMigrateIsIdempotent(t *testing.T) {
	sqlDB := newTestDB(t)
	m := NewMigrator(sqlDB)
	ctx := context.Background()

	require.NoError(t, m.Migrate(ctx, Files()))
	require.NoError(t, m.Migrate(ctx, Files()))

	var applied int
	require.NoError(t, sqlDB.QueryRow(`SELECT COUNT(*) FROM schema_migrations`).Scan(&applied))
	assert.Equal(t, 2, applied)
}

func TestUpgradeCreatesMissingCollectionsWithoutTouchingData(t *testing.T) {
	sqlDB := newTestDB(t)
	m := NewMigrator(sqlDB)
	ctx := context.Background()

	// A store previously opened at schema version 1 knows only the years
	// collection.
	v1 := fstest.MapFS{
		"001_years.sql": &fstest.MapFile{Data: []byte(
			`CREATE TABLE IF NOT EXISTS years (id INTEGER PRIMARY KEY, data TEXT NOT NULL);`)},
	}
	require.NoError(t, m.Migrate(ctx, v1))
	assert.False(t, tableExists(t, sqlDB, "profile"))

	_, err := sqlDB.Exec(`INSERT INTO years (id, data) VALUES (1, '{"id":1,"name":"Year 1"}')`)
	require.NoError(t, err)

	// Re-opening at the current version adds the profile collection and
	// leaves the stored year rows alone.
	require.NoError(t, m.Migrate(ctx, Files()))
	assert.True(t, tableExists(t, sqlDB, "profile"))

	var data string
	require.NoError(t, sqlDB.QueryRow(`SELECT data FROM years WHERE id = 1`).Scan(&data))
	assert.Equal(t, `{"id":1,"name":"Year 1"}`, data)
}
