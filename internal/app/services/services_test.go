package services

import (
	"bytes"
	"context"
	"database/sql"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	_ "modernc.org/sqlite"

	"github.com/ayeshchamikara/gradepoint/internal/app/migrations"
	"github.com/ayeshchamikara/gradepoint/internal/app/models"
	"github.com/ayeshchamikara/gradepoint/internal/app/repositories"
	"github.com/ayeshchamikara/gradepoint/internal/app/state"
	"github.com/ayeshchamikara/gradepoint/internal/seed"
)

func setupRepos(t *testing.T) *repositories.Repositories {
	t.Helper()

	sqlDB, err := sql.Open("sqlite", ":memory:")
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { _ = sqlDB.Close() })

	migrator := migrations.NewMigrator(sqlDB)
	require.NoError(t, migrator.Migrate(context.Background(), migrations.Files()))

	return repositories.NewRepositories(sqlDB)
}

func TestLoadOrCreateDefaultDataSeedsEmptyStore(t *testing.T) {
	repos := setupRepos(t)
	ctx := context.Background()

	years, err := seed.LoadOrCreateDefaultData(ctx, repos.YearRepository, zerolog.Nop())
	require.NoError(t, err)
	require.Len(t, years, 1)
	assert.Equal(t, "Year 1", years[0].Name)
	require.Len(t, years[0].Semesters, 2)
	assert.Equal(t, "Semester 1", years[0].Semesters[0].Name)
	assert.Equal(t, "Semester 2", years[0].Semesters[1].Name)

	// The seed write is durable: a second startup adopts it instead of
	// seeding again.
	stored, err := repos.YearRepository.GetAll(ctx)
	require.NoError(t, err)
	assert.Equal(t, years, stored)

	again, err := seed.LoadOrCreateDefaultData(ctx, repos.YearRepository, zerolog.Nop())
	require.NoError(t, err)
	assert.Equal(t, years, again)
}

func TestTranscriptMutationsPersistInBackground(t *testing.T) {
	repos := setupRepos(t)
	container := state.NewContainer(nil)
	svc := NewTranscriptService(container, repos.YearRepository, zerolog.Nop())
	ctx := context.Background()

	year := svc.AddYear(ctx)

	require.Eventually(t, func() bool {
		stored, err := repos.YearRepository.GetAll(ctx)
		return err == nil && len(stored) == 1
	}, 2*time.Second, 10*time.Millisecond)

	course, err := svc.AddCourse(ctx, year.ID, year.Semesters[0].ID)
	require.NoError(t, err)

	require.Eventually(t, func() bool {
		stored, err := repos.YearRepository.GetAll(ctx)
		return err == nil && len(stored) == 1 && len(stored[0].Semesters[0].Courses) == 1
	}, 2*time.Second, 10*time.Millisecond)

	require.NoError(t, svc.RemoveCourse(ctx, year.ID, year.Semesters[0].ID, course.ID))
	require.NoError(t, svc.DeleteYear(ctx, year.ID))

	require.Eventually(t, func() bool {
		stored, err := repos.YearRepository.GetAll(ctx)
		return err == nil && len(stored) == 0
	}, 2*time.Second, 10*time.Millisecond)
}

func TestProfileServiceRoundTrip(t *testing.T) {
	repos := setupRepos(t)
	svc := NewProfileService(repos.ProfileRepository, 2<<20)
	ctx := context.Background()

	profile := models.UserProfile{Name: "Ayesh", IndexNumber: "EN12345", University: "UoM"}
	require.NoError(t, svc.Save(ctx, profile))

	loaded, err := svc.Get(ctx)
	require.NoError(t, err)
	assert.Equal(t, profile, loaded)

	require.NoError(t, svc.Delete(ctx))
	loaded, err = svc.Get(ctx)
	require.NoError(t, err)
	assert.True(t, loaded.IsEmpty())
}

func photoFileHeader(t *testing.T, payload []byte) *multipart.FileHeader {
	t.Helper()

	var buf bytes.Buffer
	writer := multipart.NewWriter(&buf)
	part, err := writer.CreateFormFile("photo", "photo.png")
	require.NoError(t, err)
	_, err = part.Write(payload)
	require.NoError(t, err)
	require.NoError(t, writer.Close())

	req := httptest.NewRequest(http.MethodPost, "/", &buf)
	req.Header.Set("Content-Type", writer.FormDataContentType())
	_, header, err := req.FormFile("photo")
	require.NoError(t, err)
	return header
}

func TestEncodePhoto(t *testing.T) {
	repos := setupRepos(t)
	svc := NewProfileService(repos.ProfileRepository, 64)

	encoded, err := svc.EncodePhoto(photoFileHeader(t, []byte("tiny image bytes")))
	require.NoError(t, err)
	assert.Contains(t, encoded, ";base64,")
	assert.True(t, len(encoded) > len("data:"))

	_, err = svc.EncodePhoto(photoFileHeader(t, bytes.Repeat([]byte{0x1}, 65)))
	assert.Error(t, err)

	_, err = svc.EncodePhoto(nil)
	assert.Error(t, err)
}
