package models

// ConflictType discriminates why a lesson cannot be placed.
type ConflictType string

const (
	ConflictProfessor ConflictType = "ProfessorConflict"
	ConflictClassroom ConflictType = "ClassroomConflict"
)

// ScheduleConflict describes the existing lesson a candidate collides with.
type ScheduleConflict struct {
	Type     ConflictType `json:"type"`
	Position int          `json:"position"`
	Lesson   Lesson       `json:"lesson"`
}

// ScheduleConflictError is returned when a lesson collides with an existing one.
type ScheduleConflictError struct {
	Type     string             `json:"type"`
	Message  string             `json:"message"`
	Conflict ScheduleConflict   `json:"conflict"`
	Errors   []ScheduleConflict `json:"errors,omitempty"`
}

// Error implements the error interface for conflict errors.
func (e *ScheduleConflictError) Error() string {
	if e == nil {
		return "<nil>"
	}
	return e.Message
}
