package repositories

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"

	"github.com/Masterminds/squirrel"

	"github.com/ayeshchamikara/gradepoint/internal/app/models"
	"github.com/ayeshchamikara/gradepoint/internal/db"
	"github.com/ayeshchamikara/gradepoint/internal/pkg/logger"
)

// YearRepository persists the year collection. Each record holds the full
// nested year document; saving the collection is a whole-collection replace,
// not an incremental update.
type YearRepository struct {
	db *sql.DB
	sb squirrel.StatementBuilderType
}

// NewYearRepository creates a new YearRepository
func NewYearRepository(sqlDB *sql.DB) *YearRepository {
	return &YearRepository{
		db: sqlDB,
		sb: squirrel.StatementBuilder.PlaceholderFormat(squirrel.Question),
	}
}

// GetAll retrieves every year record ordered by id.
func (r *YearRepository) GetAll(ctx context.Context) ([]models.Year, error) {
	query, args, err := r.sb.Select("data").
		From("years").
		OrderBy("id ASC").
		ToSql()
	if err != nil {
		logger.Error().Err(err).Msg("Error building get all years SQL")
		return nil, fmt.Errorf("failed to build get all years query: %w", err)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		logger.Error().Err(err).Msg("Error executing get all years query")
		return nil, fmt.Errorf("error querying years: %w", err)
	}
	defer rows.Close()

	years := []models.Year{}
	for rows.Next() {
		var data string
		if err := rows.Scan(&data); err != nil {
			logger.Error().Err(err).Msg("Error scanning year row")
			return nil, fmt.Errorf("error scanning year row: %w", err)
		}
		var year models.Year
		if err := json.Unmarshal([]byte(data), &year); err != nil {
			logger.Error().Err(err).Msg("Error decoding year record")
			return nil, fmt.Errorf("error decoding year record: %w", err)
		}
		years = append(years, year)
	}

	if err := rows.Err(); err != nil {
		logger.Error().Err(err).Msg("Error iterating year rows")
		return nil, fmt.Errorf("error iterating year rows: %w", err)
	}

	return years, nil
}

// ReplaceAll clears the year collection and re-inserts every record in one
// transaction. After a save the collection contents exactly equal the saved
// list; nothing from a prior save survives.
func (r *YearRepository) ReplaceAll(ctx context.Context, years []models.Year) error {
	return db.WithTransaction(ctx, r.db, func(ctx context.Context, tx *sql.Tx) error {
		deleteSQL, deleteArgs, err := r.sb.Delete("years").ToSql()
		if err != nil {
			return fmt.Errorf("failed to build clear years query: %w", err)
		}
		if _, err := tx.ExecContext(ctx, deleteSQL, deleteArgs...); err != nil {
			return fmt.Errorf("error clearing years: %w", err)
		}

		for _, year := range years {
			data, err := json.Marshal(year)
			if err != nil {
				return fmt.Errorf("error encoding year record %d: %w", year.ID, err)
			}

			insertSQL, insertArgs, err := r.sb.Insert("years").
				Columns("id", "data").
				Values(year.ID, string(data)).
				ToSql()
			if err != nil {
				return fmt.Errorf("failed to build insert year query: %w", err)
			}
			if _, err := tx.ExecContext(ctx, insertSQL, insertArgs...); err != nil {
				return fmt.Errorf("error inserting year record %d: %w", year.ID, err)
			}
		}

		return nil
	})
}
