package models

// Defaults applied when a course is created.
const (
	DefaultGrade   = GradeA
	DefaultCredits = 3
)

// Course represents a single graded course inside a semester.
type Course struct {
	ID      int64  `json:"id"`
	Name    string `json:"name"`
	Grade   Grade  `json:"grade"`
	Credits int    `json:"credits"`
}

// Semester represents one semester of a year, an ordered container of courses.
type Semester struct {
	ID      int64    `json:"id"`
	Name    string   `json:"name"`
	Courses []Course `json:"courses"`
}

// Year is the top-level container of the academic hierarchy.
type Year struct {
	ID        int64      `json:"id"`
	Name      string     `json:"name"`
	Semesters []Semester `json:"semesters"`
}

// Clone returns a deep copy of the year and everything beneath it.
func (y Year) Clone() Year {
	out := Year{ID: y.ID, Name: y.Name}
	if y.Semesters != nil {
		out.Semesters = make([]Semester, len(y.Semesters))
		for i, s := range y.Semesters {
			out.Semesters[i] = s.Clone()
		}
	}
	return out
}

// Clone returns a deep copy of the semester and its courses.
func (s Semester) Clone() Semester {
	out := Semester{ID: s.ID, Name: s.Name}
	if s.Courses != nil {
		out.Courses = make([]Course, len(s.Courses))
		copy(out.Courses, s.Courses)
	}
	return out
}

// CloneYears deep-copies a year list.
func CloneYears(years []Year) []Year {
	if years == nil {
		return nil
	}
	out := make([]Year, len(years))
	for i, y := range years {
		out[i] = y.Clone()
	}
	return out
}
