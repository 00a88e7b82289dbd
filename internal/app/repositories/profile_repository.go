package repositories

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/Masterminds/squirrel"

	"github.com/ayeshchamikara/gradepoint/internal/app/models"
	"github.com/ayeshchamikara/gradepoint/internal/pkg/logger"
)

// profileKey is the fixed key of the singleton profile record.
const profileKey = "profile"

// ProfileRepository persists the user profile singleton.
type ProfileRepository struct {
	db *sql.DB
	sb squirrel.StatementBuilderType
}

// NewProfileRepository creates a new ProfileRepository
func NewProfileRepository(sqlDB *sql.DB) *ProfileRepository {
	return &ProfileRepository{
		db: sqlDB,
		sb: squirrel.StatementBuilder.PlaceholderFormat(squirrel.Question),
	}
}

// Get retrieves the stored profile. A missing record is not an error; the
// all-empty default profile is returned instead.
func (r *ProfileRepository) Get(ctx context.Context) (models.UserProfile, error) {
	query, args, err := r.sb.Select("data").
		From("profile").
		Where(squirrel.Eq{"key": profileKey}).
		Limit(1).
		ToSql()
	if err != nil {
		logger.Error().Err(err).Msg("Error building get profile SQL")
		return models.UserProfile{}, fmt.Errorf("failed to build get profile query: %w", err)
	}

	var data string
	err = r.db.QueryRowContext(ctx, query, args...).Scan(&data)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.UserProfile{}, nil
		}
		logger.Error().Err(err).Msg("Error scanning profile row")
		return models.UserProfile{}, fmt.Errorf("error getting profile: %w", err)
	}

	var profile models.UserProfile
	if err := json.Unmarshal([]byte(data), &profile); err != nil {
		logger.Error().Err(err).Msg("Error decoding profile record")
		return models.UserProfile{}, fmt.Errorf("error decoding profile record: %w", err)
	}

	return profile, nil
}

// Upsert stores the profile under the fixed singleton key.
func (r *ProfileRepository) Upsert(ctx context.Context, profile models.UserProfile) error {
	data, err := json.Marshal(profile)
	if err != nil {
		return fmt.Errorf("error encoding profile record: %w", err)
	}

	query, args, err := r.sb.Insert("profile").
		Columns("key", "data").
		Values(profileKey, string(data)).
		Suffix("ON CONFLICT(key) DO UPDATE SET data = excluded.data").
		ToSql()
	if err != nil {
		logger.Error().Err(err).Msg("Error building upsert profile SQL")
		return fmt.Errorf("failed to build upsert profile query: %w", err)
	}

	if _, err := r.db.ExecContext(ctx, query, args...); err != nil {
		logger.Error().Err(err).Msg("Error executing upsert profile query")
		return fmt.Errorf("error upserting profile: %w", err)
	}

	return nil
}

// Clear replaces the stored profile with the all-empty default.
func (r *ProfileRepository) Clear(ctx context.Context) error {
	return r.Upsert(ctx, models.UserProfile{})
}
