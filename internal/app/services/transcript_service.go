package services

import (
	"context"
	"sync"
	"time"

	"github.com/rs/zerolog"

	"github.com/ayeshchamikara/gradepoint/internal/app/models"
	"github.com/ayeshchamikara/gradepoint/internal/app/repositories"
	"github.com/ayeshchamikara/gradepoint/internal/app/state"
)

// persistTimeout bounds a single background save of the year collection.
const persistTimeout = 10 * time.Second

// TranscriptService defines the interface for transcript operations. Every
// mutation transforms the in-memory tree and then persists the resulting
// snapshot asynchronously: saves are best-effort and non-blocking, failures
// are logged and never surfaced to the caller.
type TranscriptService interface {
	Years() []models.Year
	ExpandedYears() map[int64]bool
	AddYear(ctx context.Context) models.Year
	DeleteYear(ctx context.Context, yearID int64) error
	SetYearExpanded(ctx context.Context, yearID int64, expanded bool) error
	AddSemester(ctx context.Context, yearID int64) (models.Semester, error)
	DeleteSemester(ctx context.Context, yearID, semesterID int64) error
	AddCourse(ctx context.Context, yearID, semesterID int64) (models.Course, error)
	UpdateCourse(ctx context.Context, yearID, semesterID, courseID int64, update state.CourseUpdate) (models.Course, error)
	RemoveCourse(ctx context.Context, yearID, semesterID, courseID int64) error
}

// transcriptServiceImpl implements the TranscriptService interface
type transcriptServiceImpl struct {
	container *state.Container
	yearRepo  *repositories.YearRepository
	logger    zerolog.Logger

	// Background saves carry a sequence number so a slow older write can
	// never clobber a newer snapshot.
	saveMu    sync.Mutex
	issued    uint64
	persisted uint64
}

// NewTranscriptService creates a new transcript service over an already
// loaded state container.
func NewTranscriptService(container *state.Container, yearRepo *repositories.YearRepository, lgr zerolog.Logger) TranscriptService {
	return &transcriptServiceImpl{
		container: container,
		yearRepo:  yearRepo,
		logger:    lgr,
	}
}

// persistAsync saves a tree snapshot without blocking the caller. The parent
// request context is deliberately not used: the request finishes before the
// write does. Writes are last-writer-wins in issue order; a snapshot made
// stale by a later mutation is dropped instead of written.
func (s *transcriptServiceImpl) persistAsync(snapshot []models.Year) {
	s.saveMu.Lock()
	s.issued++
	seq := s.issued
	s.saveMu.Unlock()

	go func() {
		s.saveMu.Lock()
		defer s.saveMu.Unlock()
		if seq <= s.persisted {
			return
		}

		ctx, cancel := context.WithTimeout(context.Background(), persistTimeout)
		defer cancel()
		if err := s.yearRepo.ReplaceAll(ctx, snapshot); err != nil {
			s.logger.Error().Err(err).Int("years", len(snapshot)).Msg("Background transcript save failed")
			return
		}
		s.persisted = seq
	}()
}

// Years returns a snapshot of the current year list.
func (s *transcriptServiceImpl) Years() []models.Year {
	return s.container.Years()
}

// ExpandedYears returns the ids of years currently expanded in the UI.
func (s *transcriptServiceImpl) ExpandedYears() map[int64]bool {
	return s.container.ExpandedYears()
}

// AddYear appends a new year with two default semesters.
func (s *transcriptServiceImpl) AddYear(ctx context.Context) models.Year {
	year, snapshot := s.container.AddYear()
	s.persistAsync(snapshot)
	return year
}

// DeleteYear removes a year and all its descendants.
func (s *transcriptServiceImpl) DeleteYear(ctx context.Context, yearID int64) error {
	snapshot, err := s.container.DeleteYear(yearID)
	if err != nil {
		return err
	}
	s.persistAsync(snapshot)
	return nil
}

// SetYearExpanded records a year's expand/collapse state. Display state is
// kept in memory only; there is nothing to persist.
func (s *transcriptServiceImpl) SetYearExpanded(ctx context.Context, yearID int64, expanded bool) error {
	return s.container.SetYearExpanded(yearID, expanded)
}

// AddSemester appends a default-named semester to a year.
func (s *transcriptServiceImpl) AddSemester(ctx context.Context, yearID int64) (models.Semester, error) {
	sem, snapshot, err := s.container.AddSemester(yearID)
	if err != nil {
		return models.Semester{}, err
	}
	s.persistAsync(snapshot)
	return sem, nil
}

// DeleteSemester removes a semester and its courses.
func (s *transcriptServiceImpl) DeleteSemester(ctx context.Context, yearID, semesterID int64) error {
	snapshot, err := s.container.DeleteSemester(yearID, semesterID)
	if err != nil {
		return err
	}
	s.persistAsync(snapshot)
	return nil
}

// AddCourse appends a course with default grade and credits.
func (s *transcriptServiceImpl) AddCourse(ctx context.Context, yearID, semesterID int64) (models.Course, error) {
	course, snapshot, err := s.container.AddCourse(yearID, semesterID)
	if err != nil {
		return models.Course{}, err
	}
	s.persistAsync(snapshot)
	return course, nil
}

// UpdateCourse applies a partial field update to a course.
func (s *transcriptServiceImpl) UpdateCourse(ctx context.Context, yearID, semesterID, courseID int64, update state.CourseUpdate) (models.Course, error) {
	course, snapshot, err := s.container.UpdateCourse(yearID, semesterID, courseID, update)
	if err != nil {
		return models.Course{}, err
	}
	s.persistAsync(snapshot)
	return course, nil
}

// RemoveCourse deletes a course from its semester.
func (s *transcriptServiceImpl) RemoveCourse(ctx context.Context, yearID, semesterID, courseID int64) error {
	snapshot, err := s.container.RemoveCourse(yearID, semesterID, courseID)
	if err != nil {
		return err
	}
	s.persistAsync(snapshot)
	return nil
}
