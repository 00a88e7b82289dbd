// Package state holds the authoritative in-memory transcript tree and the
// monotonic id counter that issues ids across the whole hierarchy. Every
// operation is a structural transform of the year list executed atomically
// under the container lock; callers receive a deep snapshot of the resulting
// tree suitable for handing to the persistence layer.
package state

import (
	"fmt"
	"sync"

	"github.com/ayeshchamikara/gradepoint/internal/app/models"
	"github.com/ayeshchamikara/gradepoint/internal/pkg/apperrors"
)

// CourseUpdate carries a partial, per-field course mutation. Nil fields are
// left untouched. Negative credits are coerced to 0 rather than rejected.
type CourseUpdate struct {
	Name    *string
	Grade   *models.Grade
	Credits *int
}

// Container owns the year list, the id counter, and the expanded-year set.
type Container struct {
	mu       sync.Mutex
	years    []models.Year
	nextID   int64
	expanded map[int64]bool
}

// NewContainer creates a container seeded from an existing year list. The id
// counter starts at max(existing id)+1, or 1 for an empty tree.
func NewContainer(years []models.Year) *Container {
	c := &Container{
		years:    models.CloneYears(years),
		nextID:   1,
		expanded: make(map[int64]bool),
	}
	for _, y := range c.years {
		c.bump(y.ID)
		for _, s := range y.Semesters {
			c.bump(s.ID)
			for _, course := range s.Courses {
				c.bump(course.ID)
			}
		}
	}
	return c
}

func (c *Container) bump(id int64) {
	if id >= c.nextID {
		c.nextID = id + 1
	}
}

func (c *Container) allocID() int64 {
	id := c.nextID
	c.nextID++
	return id
}

// Years returns a deep snapshot of the current tree.
func (c *Container) Years() []models.Year {
	c.mu.Lock()
	defer c.mu.Unlock()
	return models.CloneYears(c.years)
}

// ExpandedYears returns the set of year ids currently expanded in the UI.
func (c *Container) ExpandedYears() map[int64]bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	out := make(map[int64]bool, len(c.expanded))
	for id, v := range c.expanded {
		out[id] = v
	}
	return out
}

// AddYear appends a new year with two default semesters and marks it
// expanded. It returns the created year and a snapshot of the full tree.
func (c *Container) AddYear() (models.Year, []models.Year) {
	c.mu.Lock()
	defer c.mu.Unlock()

	year := models.Year{
		ID:   c.allocID(),
		Name: fmt.Sprintf("Year %d", len(c.years)+1),
		Semesters: []models.Semester{
			{ID: 0, Name: "Semester 1", Courses: []models.Course{}},
			{ID: 0, Name: "Semester 2", Courses: []models.Course{}},
		},
	}
	for i := range year.Semesters {
		year.Semesters[i].ID = c.allocID()
	}
	c.years = append(c.years, year)
	c.expanded[year.ID] = true
	return year.Clone(), models.CloneYears(c.years)
}

// DeleteYear removes a year with all descendant semesters and courses, and
// drops its id from the expanded set.
func (c *Container) DeleteYear(yearID int64) ([]models.Year, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	idx := c.yearIndex(yearID)
	if idx < 0 {
		return nil, apperrors.ErrYearNotFound
	}
	c.years = append(c.years[:idx], c.years[idx+1:]...)
	delete(c.expanded, yearID)
	return models.CloneYears(c.years), nil
}

// SetYearExpanded records whether a year is expanded in the UI.
func (c *Container) SetYearExpanded(yearID int64, expanded bool) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.yearIndex(yearID) < 0 {
		return apperrors.ErrYearNotFound
	}
	if expanded {
		c.expanded[yearID] = true
	} else {
		delete(c.expanded, yearID)
	}
	return nil
}

// AddSemester appends a semester named "Semester N" to the year, where N is
// the prior semester count plus one.
func (c *Container) AddSemester(yearID int64) (models.Semester, []models.Year, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	idx := c.yearIndex(yearID)
	if idx < 0 {
		return models.Semester{}, nil, apperrors.ErrYearNotFound
	}
	sem := models.Semester{
		ID:      c.allocID(),
		Name:    fmt.Sprintf("Semester %d", len(c.years[idx].Semesters)+1),
		Courses: []models.Course{},
	}
	c.years[idx].Semesters = append(c.years[idx].Semesters, sem)
	return sem.Clone(), models.CloneYears(c.years), nil
}

// DeleteSemester removes a semester and its courses from the year.
func (c *Container) DeleteSemester(yearID, semesterID int64) ([]models.Year, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	yi, si := c.semesterIndex(yearID, semesterID)
	if yi < 0 {
		return nil, apperrors.ErrYearNotFound
	}
	if si < 0 {
		return nil, apperrors.ErrSemesterNotFound
	}
	sems := c.years[yi].Semesters
	c.years[yi].Semesters = append(sems[:si], sems[si+1:]...)
	return models.CloneYears(c.years), nil
}

// AddCourse appends a course with the default grade and credits.
func (c *Container) AddCourse(yearID, semesterID int64) (models.Course, []models.Year, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	yi, si := c.semesterIndex(yearID, semesterID)
	if yi < 0 {
		return models.Course{}, nil, apperrors.ErrYearNotFound
	}
	if si < 0 {
		return models.Course{}, nil, apperrors.ErrSemesterNotFound
	}
	course := models.Course{
		ID:      c.allocID(),
		Grade:   models.DefaultGrade,
		Credits: models.DefaultCredits,
	}
	c.years[yi].Semesters[si].Courses = append(c.years[yi].Semesters[si].Courses, course)
	return course, models.CloneYears(c.years), nil
}

// UpdateCourse applies a partial field update to a course in place.
func (c *Container) UpdateCourse(yearID, semesterID, courseID int64, update CourseUpdate) (models.Course, []models.Year, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	yi, si, ci := c.courseIndex(yearID, semesterID, courseID)
	if yi < 0 {
		return models.Course{}, nil, apperrors.ErrYearNotFound
	}
	if si < 0 {
		return models.Course{}, nil, apperrors.ErrSemesterNotFound
	}
	if ci < 0 {
		return models.Course{}, nil, apperrors.ErrCourseNotFound
	}

	course := &c.years[yi].Semesters[si].Courses[ci]
	if update.Name != nil {
		course.Name = *update.Name
	}
	if update.Grade != nil {
		course.Grade = *update.Grade
	}
	if update.Credits != nil {
		credits := *update.Credits
		if credits < 0 {
			credits = 0
		}
		course.Credits = credits
	}
	return *course, models.CloneYears(c.years), nil
}

// RemoveCourse deletes a course from its semester by id.
func (c *Container) RemoveCourse(yearID, semesterID, courseID int64) ([]models.Year, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	yi, si, ci := c.courseIndex(yearID, semesterID, courseID)
	if yi < 0 {
		return nil, apperrors.ErrYearNotFound
	}
	if si < 0 {
		return nil, apperrors.ErrSemesterNotFound
	}
	if ci < 0 {
		return nil, apperrors.ErrCourseNotFound
	}
	courses := c.years[yi].Semesters[si].Courses
	c.years[yi].Semesters[si].Courses = append(courses[:ci], courses[ci+1:]...)
	return models.CloneYears(c.years), nil
}

func (c *Container) yearIndex(yearID int64) int {
	for i, y := range c.years {
		if y.ID == yearID {
			return i
		}
	}
	return -1
}

func (c *Container) semesterIndex(yearID, semesterID int64) (int, int) {
	yi := c.yearIndex(yearID)
	if yi < 0 {
		return -1, -1
	}
	for i, s := range c.years[yi].Semesters {
		if s.ID == semesterID {
			return yi, i
		}
	}
	return yi, -1
}

func (c *Container) courseIndex(yearID, semesterID, courseID int64) (int, int, int) {
	yi, si := c.semesterIndex(yearID, semesterID)
	if yi < 0 || si < 0 {
		return yi, si, -1
	}
	for i, course := range c.years[yi].Semesters[si].Courses {
		if course.ID == courseID {
			return yi, si, i
		}
	}
	return yi, si, -1
}
