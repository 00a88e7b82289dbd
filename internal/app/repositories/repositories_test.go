package repositories

import (
	"context"
	"database/sql"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	_ "modernc.org/sqlite"

	"github.com/ayeshchamikara/gradepoint/internal/app/migrations"
	"github.com/ayeshchamikara/gradepoint/internal/app/models"
)

func setupTestDB(t *testing.T) *sql.DB {
	t.Helper()

	sqlDB, err := sql.Open("sqlite", ":memory:")
	require.NoError(t, err)
	// A single connection keeps the in-memory database alive for the test.
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { _ = sqlDB.Close() })

	migrator := migrations.NewMigrator(sqlDB)
	require.NoError(t, migrator.Migrate(context.Background(), migrations.Files()))

	return sqlDB
}

func sampleYears() []models.Year {
	return []models.Year{
		{
			ID:   1,
			Name: "Year 1",
			Semesters: []models.Semester{
				{ID: 2, Name: "Semester 1", Courses: []models.Course{
					{ID: 4, Name: "Calculus", Grade: models.GradeA, Credits: 3},
					{ID: 5, Name: "Physics", Grade: models.GradeBPlus, Credits: 4},
				}},
				{ID: 3, Name: "Semester 2", Courses: []models.Course{}},
			},
		},
		{
			ID:        6,
			Name:      "Year 2",
			Semesters: []models.Semester{{ID: 7, Name: "Semester 1", Courses: []models.Course{}}},
		},
	}
}

func TestYearReplaceAllRoundTrip(t *testing.T) {
	sqlDB := setupTestDB(t)
	repo := NewYearRepository(sqlDB)
	ctx := context.Background()

	years := sampleYears()
	require.NoError(t, repo.ReplaceAll(ctx, years))

	loaded, err := repo.GetAll(ctx)
	require.NoError(t, err)
	assert.Equal(t, years, loaded)
}

func TestYearReplaceAllLeavesNoResidue(t *testing.T) {
	sqlDB := setupTestDB(t)
	repo := NewYearRepository(sqlDB)
	ctx := context.Background()

	require.NoError(t, repo.ReplaceAll(ctx, sampleYears()))

	// Save a smaller list; nothing from the prior save may survive.
	smaller := []models.Year{{ID: 9, Name: "Year 1", Semesters: []models.Semester{}}}
	require.NoError(t, repo.ReplaceAll(ctx, smaller))

	loaded, err := repo.GetAll(ctx)
	require.NoError(t, err)
	assert.Equal(t, smaller, loaded)

	require.NoError(t, repo.ReplaceAll(ctx, nil))
	loaded, err = repo.GetAll(ctx)
	require.NoError(t, err)
	assert.Empty(t, loaded)
}

func TestYearGetAllOnEmptyStore(t *testing.T) {
	sqlDB := setupTestDB(t)
	repo := NewYearRepository(sqlDB)

	loaded, err := repo.GetAll(context.Background())
	require.NoError(t, err)
	assert.Empty(t, loaded)
}

func TestProfileRoundTrip(t *testing.T) {
	sqlDB := setupTestDB(t)
	repo := NewProfileRepository(sqlDB)
	ctx := context.Background()

	profile := models.UserProfile{
		Name:        "Ayesh Chamikara",
		IndexNumber: "EN12345",
		University:  "University of Moratuwa",
		Photo:       "data:image/png;base64,iVBORw0KGgo=",
	}
	require.NoError(t, repo.Upsert(ctx, profile))

	loaded, err := repo.Get(ctx)
	require.NoError(t, err)
	assert.Equal(t, profile, loaded)

	// Upsert under the fixed key overwrites, never duplicates.
	profile.University = "University of Peradeniya"
	require.NoError(t, repo.Upsert(ctx, profile))
	loaded, err = repo.Get(ctx)
	require.NoError(t, err)
	assert.Equal(t, profile, loaded)
}

func TestProfileMissingYieldsEmptyDefault(t *testing.T) {
	sqlDB := setupTestDB(t)
	repo := NewProfileRepository(sqlDB)

	loaded, err := repo.Get(context.Background())
	require.NoError(t, err)
	assert.True(t, loaded.IsEmpty())
}

func TestProfileClearThenReload(t *testing.T) {
	sqlDB := setupTestDB(t)
	repo := NewProfileRepository(sqlDB)
	ctx := context.Background()

	require.NoError(t, repo.Upsert(ctx, models.UserProfile{Name: "Someone"}))
	require.NoError(t, repo.Clear(ctx))

	loaded, err := repo.Get(ctx)
	require.NoError(t, err)
	assert.True(t, loaded.IsEmpty())
}
