package repositories

import (
	"database/sql"
)

// Repositories bundles every repository over the shared store handle.
type Repositories struct {
	YearRepository    *YearRepository
	ProfileRepository *ProfileRepository
}

// NewRepositories creates all repositories
func NewRepositories(db *sql.DB) *Repositories {
	return &Repositories{
		YearRepository:    NewYearRepository(db),
		ProfileRepository: NewProfileRepository(db),
	}
}
