package seed

import (
	"context"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/ayeshchamikara/gradepoint/internal/app/models"
	"github.com/ayeshchamikara/gradepoint/internal/app/repositories"
	"github.com/ayeshchamikara/gradepoint/internal/app/state"
)

// LoadOrCreateDefaultData returns the stored year list, seeding the store
// with one default year (containing two default semesters) when it is empty.
// The seed write is synchronous so a first launch always finds its data on
// the next one.
func LoadOrCreateDefaultData(ctx context.Context, yearRepo *repositories.YearRepository, lgr zerolog.Logger) ([]models.Year, error) {
	years, err := yearRepo.GetAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load stored years: %w", err)
	}
	if len(years) > 0 {
		lgr.Info().Int("years", len(years)).Msg("Loaded stored transcript")
		return years, nil
	}

	lgr.Info().Msg("Empty store, seeding default year...")

	// Drive the seed through the state container so ids come from the same
	// counter rule as every later mutation.
	container := state.NewContainer(nil)
	_, seeded := container.AddYear()

	if err := yearRepo.ReplaceAll(ctx, seeded); err != nil {
		return nil, fmt.Errorf("failed to persist seeded year: %w", err)
	}
	return seeded, nil
}
