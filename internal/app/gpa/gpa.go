// Package gpa computes credit-weighted grade point averages. The computation
// is a pure reduction over a course list and composes at any aggregation
// level: a single semester, a whole year, or the full transcript.
package gpa

import (
	"math"

	"github.com/ayeshchamikara/gradepoint/internal/app/models"
)

// Weighted returns the credit-weighted GPA of the given courses, rounded to
// two decimal places. A list with zero total credits (including the empty
// list) yields exactly 0.
func Weighted(courses []models.Course) float64 {
	var points float64
	var credits int
	for _, c := range courses {
		points += c.Grade.Points() * float64(c.Credits)
		credits += c.Credits
	}
	if credits == 0 {
		return 0
	}
	return round2(points / float64(credits))
}

// Semester returns the GPA of a single semester.
func Semester(s models.Semester) float64 {
	return Weighted(s.Courses)
}

// Year returns the GPA over all courses of all semesters in the year.
func Year(y models.Year) float64 {
	var courses []models.Course
	for _, s := range y.Semesters {
		courses = append(courses, s.Courses...)
	}
	return Weighted(courses)
}

// Cumulative returns the GPA over every course in the transcript.
func Cumulative(years []models.Year) float64 {
	var courses []models.Course
	for _, y := range years {
		for _, s := range y.Semesters {
			courses = append(courses, s.Courses...)
		}
	}
	return Weighted(courses)
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
