package dto

import "github.com/ayeshchamikara/gradepoint/internal/app/models"

// CourseView is a course with nothing added; courses carry no derived data.
type CourseView struct {
	ID      int64        `json:"id" example:"4"`
	Name    string       `json:"name" example:"Calculus"`
	Grade   models.Grade `json:"grade" example:"A"`
	Credits int          `json:"credits" example:"3"`
}

// SemesterView is a semester with its computed GPA.
type SemesterView struct {
	ID      int64        `json:"id" example:"2"`
	Name    string       `json:"name" example:"Semester 1"`
	GPA     float64      `json:"gpa" example:"3.6"`
	Courses []CourseView `json:"courses"`
}

// YearView is a year with its computed GPA and UI expansion flag.
type YearView struct {
	ID        int64          `json:"id" example:"1"`
	Name      string         `json:"name" example:"Year 1"`
	Expanded  bool           `json:"expanded" example:"true"`
	GPA       float64        `json:"gpa" example:"3.24"`
	Semesters []SemesterView `json:"semesters"`
}

// TranscriptResponse is the full render model: the hierarchy plus the
// cumulative GPA over every course.
type TranscriptResponse struct {
	Years         []YearView `json:"years"`
	CumulativeGPA float64    `json:"cumulativeGpa" example:"3.24"`
}

// GradeEntry is one row of the fixed grade table.
type GradeEntry struct {
	Grade  models.Grade `json:"grade" example:"B+"`
	Points float64      `json:"points" example:"3.3"`
}

// UpdateCourseRequest carries a partial course edit. Only non-nil fields are
// applied; the grade must belong to the fixed grading scale.
type UpdateCourseRequest struct {
	Name    *string `json:"name"`
	Grade   *string `json:"grade"`
	Credits *int    `json:"credits"`
}

// SetExpandedRequest toggles a year's expanded state in the UI.
type SetExpandedRequest struct {
	Expanded *bool `json:"expanded" binding:"required"`
}
