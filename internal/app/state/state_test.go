package state

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ayeshchamikara/gradepoint/internal/app/models"
	"github.com/ayeshchamikara/gradepoint/internal/pkg/apperrors"
)

func TestAddYearCreatesTwoDefaultSemesters(t *testing.T) {
	c := NewContainer(nil)

	year, snapshot := c.AddYear()

	assert.Equal(t, "Year 1", year.Name)
	require.Len(t, year.Semesters, 2)
	assert.Equal(t, "Semester 1", year.Semesters[0].Name)
	assert.Equal(t, "Semester 2", year.Semesters[1].Name)
	require.Len(t, snapshot, 1)
	assert.True(t, c.ExpandedYears()[year.ID])
}

func TestCounterSeedsFromMaxExistingID(t *testing.T) {
	existing := []models.Year{{
		ID:   3,
		Name: "Year 1",
		Semesters: []models.Semester{
			{ID: 4, Name: "Semester 1", Courses: []models.Course{
				{ID: 9, Name: "Calculus", Grade: models.GradeA, Credits: 3},
			}},
		},
	}}
	c := NewContainer(existing)

	year, _ := c.AddYear()
	assert.Equal(t, int64(10), year.ID)
}

func TestAddSemesterUsesPriorCountForName(t *testing.T) {
	c := NewContainer(nil)
	year, _ := c.AddYear()

	sem, snapshot, err := c.AddSemester(year.ID)
	require.NoError(t, err)
	assert.Equal(t, "Semester 3", sem.Name)
	assert.Len(t, snapshot[0].Semesters, 3)

	_, _, err = c.AddSemester(99)
	assert.ErrorIs(t, err, apperrors.ErrYearNotFound)
}

func TestDeleteYearCascadesAndClearsExpansion(t *testing.T) {
	c := NewContainer(nil)
	year, _ := c.AddYear()
	_, _, err := c.AddCourse(year.ID, year.Semesters[0].ID)
	require.NoError(t, err)

	snapshot, err := c.DeleteYear(year.ID)
	require.NoError(t, err)
	assert.Empty(t, snapshot)
	assert.NotContains(t, c.ExpandedYears(), year.ID)

	_, err = c.DeleteYear(year.ID)
	assert.ErrorIs(t, err, apperrors.ErrYearNotFound)
}

func TestAddCourseDefaults(t *testing.T) {
	c := NewContainer(nil)
	year, _ := c.AddYear()

	course, snapshot, err := c.AddCourse(year.ID, year.Semesters[0].ID)
	require.NoError(t, err)
	assert.Equal(t, models.GradeA, course.Grade)
	assert.Equal(t, 3, course.Credits)
	assert.Empty(t, course.Name)
	assert.Len(t, snapshot[0].Semesters[0].Courses, 1)

	_, _, err = c.AddCourse(year.ID, 999)
	assert.ErrorIs(t, err, apperrors.ErrSemesterNotFound)
}

func TestUpdateCoursePartialFieldsAndCreditCoercion(t *testing.T) {
	c := NewContainer(nil)
	year, _ := c.AddYear()
	semID := year.Semesters[0].ID
	course, _, err := c.AddCourse(year.ID, semID)
	require.NoError(t, err)

	name := "Data Structures"
	grade := models.GradeBPlus
	updated, _, err := c.UpdateCourse(year.ID, semID, course.ID, CourseUpdate{Name: &name, Grade: &grade})
	require.NoError(t, err)
	assert.Equal(t, "Data Structures", updated.Name)
	assert.Equal(t, models.GradeBPlus, updated.Grade)
	assert.Equal(t, 3, updated.Credits)

	negative := -4
	updated, _, err = c.UpdateCourse(year.ID, semID, course.ID, CourseUpdate{Credits: &negative})
	require.NoError(t, err)
	assert.Equal(t, 0, updated.Credits)

	_, _, err = c.UpdateCourse(year.ID, semID, 12345, CourseUpdate{})
	assert.ErrorIs(t, err, apperrors.ErrCourseNotFound)
}

func TestRemoveCourse(t *testing.T) {
	c := NewContainer(nil)
	year, _ := c.AddYear()
	semID := year.Semesters[0].ID
	first, _, err := c.AddCourse(year.ID, semID)
	require.NoError(t, err)
	second, _, err := c.AddCourse(year.ID, semID)
	require.NoError(t, err)

	snapshot, err := c.RemoveCourse(year.ID, semID, first.ID)
	require.NoError(t, err)
	require.Len(t, snapshot[0].Semesters[0].Courses, 1)
	assert.Equal(t, second.ID, snapshot[0].Semesters[0].Courses[0].ID)
}

func TestIDsStayPairwiseDistinct(t *testing.T) {
	c := NewContainer(nil)
	seen := make(map[int64]bool)

	record := func(id int64) {
		assert.False(t, seen[id], "id %d issued twice", id)
		seen[id] = true
	}

	for i := 0; i < 5; i++ {
		year, _ := c.AddYear()
		record(year.ID)
		for _, s := range year.Semesters {
			record(s.ID)
		}
		sem, _, err := c.AddSemester(year.ID)
		require.NoError(t, err)
		record(sem.ID)
		for j := 0; j < 4; j++ {
			course, _, err := c.AddCourse(year.ID, sem.ID)
			require.NoError(t, err)
			record(course.ID)
		}
	}
}

func TestSnapshotsAreDetachedCopies(t *testing.T) {
	c := NewContainer(nil)
	year, snapshot := c.AddYear()

	snapshot[0].Name = "mutated"
	snapshot[0].Semesters[0].Name = "mutated"

	fresh := c.Years()
	assert.Equal(t, year.Name, fresh[0].Name)
	assert.Equal(t, "Semester 1", fresh[0].Semesters[0].Name)
}
