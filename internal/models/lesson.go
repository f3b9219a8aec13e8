package models

// Lesson places a course with a professor in a classroom at a weekly (day, time slot).
// ID is generated when the lesson enters a schedule; position in the schedule is the
// legacy identity and shifts when earlier lessons are cancelled.
type Lesson struct {
	ID              string `json:"id" csv:"id" yaml:"-"`
	CourseID        int    `json:"course_id" csv:"course_id" yaml:"course_id"`
	ProfessorID     int    `json:"professor_id" csv:"professor_id" yaml:"professor_id"`
	ClassroomNumber string `json:"classroom_number" csv:"classroom_number" yaml:"classroom_number"`
	DayOfWeek       string `json:"day_of_week" csv:"day_of_week" yaml:"day_of_week"`
	TimeSlot        string `json:"time_slot" csv:"time_slot" yaml:"time_slot"`
}

// SameSlot reports whether both lessons take place on the same day and time slot.
func (l Lesson) SameSlot(other Lesson) bool {
	return l.DayOfWeek == other.DayOfWeek && l.TimeSlot == other.TimeSlot
}

// PositionedLesson pairs a lesson with its current ordinal position in the schedule.
type PositionedLesson struct {
	Position int `json:"position"`
	Lesson
}

// LessonFilter narrows schedule listings. Zero values match everything.
type LessonFilter struct {
	ProfessorID     int
	CourseID        int
	ClassroomNumber string
	DayOfWeek       string
	TimeSlot        string
}

// Matches reports whether the lesson satisfies every populated filter field.
func (f LessonFilter) Matches(l Lesson) bool {
	if f.ProfessorID != 0 && l.ProfessorID != f.ProfessorID {
		return false
	}
	if f.CourseID != 0 && l.CourseID != f.CourseID {
		return false
	}
	if f.ClassroomNumber != "" && l.ClassroomNumber != f.ClassroomNumber {
		return false
	}
	if f.DayOfWeek != "" && l.DayOfWeek != f.DayOfWeek {
		return false
	}
	if f.TimeSlot != "" && l.TimeSlot != f.TimeSlot {
		return false
	}
	return true
}
