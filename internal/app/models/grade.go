package models

// Grade is a letter grade from the fixed grading scale.
type Grade string

// The closed set of selectable letter grades.
const (
	GradeAPlus  Grade = "A+"
	GradeA      Grade = "A"
	GradeAMinus Grade = "A-"
	GradeBPlus  Grade = "B+"
	GradeB      Grade = "B"
	GradeBMinus Grade = "B-"
	GradeCPlus  Grade = "C+"
	GradeC      Grade = "C"
	GradeCMinus Grade = "C-"
	GradeDPlus  Grade = "D+"
	GradeD      Grade = "D"
	GradeE      Grade = "E"
)

// gradePoints maps each letter grade to its point value on the 4.0 scale.
// The table is a process-wide constant; lookups on members of the closed
// set never miss.
var gradePoints = map[Grade]float64{
	GradeAPlus:  4.0,
	GradeA:      4.0,
	GradeAMinus: 3.7,
	GradeBPlus:  3.3,
	GradeB:      3.0,
	GradeBMinus: 2.7,
	GradeCPlus:  2.3,
	GradeC:      2.0,
	GradeCMinus: 1.7,
	GradeDPlus:  1.3,
	GradeD:      1.0,
	GradeE:      0.0,
}

// gradeOrder lists grades in display order for the UI select widget.
var gradeOrder = []Grade{
	GradeAPlus, GradeA, GradeAMinus,
	GradeBPlus, GradeB, GradeBMinus,
	GradeCPlus, GradeC, GradeCMinus,
	GradeDPlus, GradeD, GradeE,
}

// Points returns the point value for the grade. Unknown grades score 0.
func (g Grade) Points() float64 {
	return gradePoints[g]
}

// IsValid reports whether the grade belongs to the fixed grading scale.
func (g Grade) IsValid() bool {
	_, ok := gradePoints[g]
	return ok
}

// AllGrades returns the grading scale in display order.
func AllGrades() []Grade {
	grades := make([]Grade, len(gradeOrder))
	copy(grades, gradeOrder)
	return grades
}
