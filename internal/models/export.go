package models

// ExportFormat enumerates supported schedule export formats.
type ExportFormat string

const (
	ExportFormatCSV ExportFormat = "csv"
	ExportFormatPDF ExportFormat = "pdf"
)

// ScheduleRow is one line of the printable weekly schedule.
type ScheduleRow struct {
	Position        int        `json:"position" csv:"position"`
	LessonID        string     `json:"lesson_id" csv:"lesson_id"`
	DayOfWeek       string     `json:"day_of_week" csv:"day_of_week"`
	TimeSlot        string     `json:"time_slot" csv:"time_slot"`
	ClassroomNumber string     `json:"classroom_number" csv:"classroom_number"`
	CourseID        int        `json:"course_id" csv:"course_id"`
	CourseName      string     `json:"course_name" csv:"course_name"`
	CourseType      CourseType `json:"course_type" csv:"course_type"`
	ProfessorID     int        `json:"professor_id" csv:"professor_id"`
	ProfessorName   string     `json:"professor_name" csv:"professor_name"`
}
