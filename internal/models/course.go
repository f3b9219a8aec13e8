package models

// CourseType enumerates the kinds of course taught.
type CourseType string

// Course types in declaration order. The order breaks ties in popularity reports.
const (
	CourseTypeLecture  CourseType = "Lecture"
	CourseTypeSeminar  CourseType = "Seminar"
	CourseTypeLab      CourseType = "Lab"
	CourseTypePractice CourseType = "Practice"
)

// CourseTypes lists every course type in declaration order.
var CourseTypes = []CourseType{CourseTypeLecture, CourseTypeSeminar, CourseTypeLab, CourseTypePractice}

// Valid reports whether t is a declared course type.
func (t CourseType) Valid() bool {
	for _, known := range CourseTypes {
		if t == known {
			return true
		}
	}
	return false
}

// Course is a unit of teaching that lessons are scheduled for.
type Course struct {
	ID   int        `json:"id" yaml:"id"`
	Name string     `json:"name" yaml:"name"`
	Type CourseType `json:"type" yaml:"type"`
}
