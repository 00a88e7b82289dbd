package gpa

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/ayeshchamikara/gradepoint/internal/app/models"
)

func TestWeighted(t *testing.T) {
	tests := []struct {
		name    string
		courses []models.Course
		want    float64
	}{
		{
			name:    "empty list",
			courses: nil,
			want:    0,
		},
		{
			name: "zero total credits",
			courses: []models.Course{
				{Grade: models.GradeA, Credits: 0},
				{Grade: models.GradeBPlus, Credits: 0},
			},
			want: 0,
		},
		{
			name: "single course",
			courses: []models.Course{
				{Grade: models.GradeBMinus, Credits: 3},
			},
			want: 2.7,
		},
		{
			// (4.0*3 + 3.3*4) / 7 = 3.6
			name: "weighted mix",
			courses: []models.Course{
				{Grade: models.GradeA, Credits: 3},
				{Grade: models.GradeBPlus, Credits: 4},
			},
			want: 3.6,
		},
		{
			// (3.7*3 + 3.3*4) / 7 = 3.4714... -> 3.47
			name: "rounds to two decimals",
			courses: []models.Course{
				{Grade: models.GradeAMinus, Credits: 3},
				{Grade: models.GradeBPlus, Credits: 4},
			},
			want: 3.47,
		},
		{
			name: "failing grade drags the average",
			courses: []models.Course{
				{Grade: models.GradeA, Credits: 3},
				{Grade: models.GradeE, Credits: 3},
			},
			want: 2,
		},
		{
			name: "zero credit course is ignored by weighting",
			courses: []models.Course{
				{Grade: models.GradeA, Credits: 3},
				{Grade: models.GradeE, Credits: 0},
			},
			want: 4,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.InDelta(t, tt.want, Weighted(tt.courses), 1e-9)
		})
	}
}

func TestAggregationLevels(t *testing.T) {
	sem1 := models.Semester{ID: 2, Name: "Semester 1", Courses: []models.Course{
		{ID: 4, Name: "Calculus", Grade: models.GradeA, Credits: 3},
		{ID: 5, Name: "Physics", Grade: models.GradeBPlus, Credits: 4},
	}}
	sem2 := models.Semester{ID: 3, Name: "Semester 2", Courses: []models.Course{
		{ID: 6, Name: "Statistics", Grade: models.GradeC, Credits: 2},
	}}
	year := models.Year{ID: 1, Name: "Year 1", Semesters: []models.Semester{sem1, sem2}}

	assert.InDelta(t, 3.6, Semester(sem1), 1e-9)
	assert.InDelta(t, 2.0, Semester(sem2), 1e-9)

	// (4.0*3 + 3.3*4 + 2.0*2) / 9 = 3.2444... -> 3.24
	assert.InDelta(t, 3.24, Year(year), 1e-9)

	// A second year with no courses must not change the cumulative value.
	years := []models.Year{year, {ID: 7, Name: "Year 2", Semesters: []models.Semester{
		{ID: 8, Name: "Semester 1"},
	}}}
	assert.InDelta(t, 3.24, Cumulative(years), 1e-9)
}

func TestGradeTable(t *testing.T) {
	grades := models.AllGrades()
	assert.Len(t, grades, 12)
	for _, g := range grades {
		assert.True(t, g.IsValid())
		assert.GreaterOrEqual(t, g.Points(), 0.0)
		assert.LessOrEqual(t, g.Points(), 4.0)
	}
	assert.Equal(t, 4.0, models.GradeAPlus.Points())
	assert.Equal(t, 3.3, models.GradeBPlus.Points())
	assert.Equal(t, 0.0, models.GradeE.Points())
	assert.False(t, models.Grade("F").IsValid())
}
