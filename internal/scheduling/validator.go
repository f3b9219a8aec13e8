package scheduling

import "github.com/noah-isme/lesson-scheduler/internal/models"

// Validate reports the first existing lesson the candidate collides with.
// A professor clash wins over a classroom clash; nil means the candidate fits.
func Validate(candidate models.Lesson, lessons []models.Lesson) *models.ScheduleConflict {
	return ValidateExcluding(candidate, lessons, -1)
}

// ValidateExcluding behaves like Validate but ignores the lesson at position skip.
func ValidateExcluding(candidate models.Lesson, lessons []models.Lesson, skip int) *models.ScheduleConflict {
	for i, existing := range lessons {
		if i == skip {
			continue
		}
		if existing.ProfessorID == candidate.ProfessorID && existing.SameSlot(candidate) {
			return &models.ScheduleConflict{Type: models.ConflictProfessor, Position: i, Lesson: existing}
		}
	}
	for i, existing := range lessons {
		if i == skip {
			continue
		}
		if existing.ClassroomNumber == candidate.ClassroomNumber && existing.SameSlot(candidate) {
			return &models.ScheduleConflict{Type: models.ConflictClassroom, Position: i, Lesson: existing}
		}
	}
	return nil
}

// findDuplicate returns the position of a lesson with the same course, professor,
// day and time slot as the candidate. The classroom is not compared.
func findDuplicate(candidate models.Lesson, lessons []models.Lesson) (int, bool) {
	for i, existing := range lessons {
		if existing.CourseID == candidate.CourseID &&
			existing.ProfessorID == candidate.ProfessorID &&
			existing.SameSlot(candidate) {
			return i, true
		}
	}
	return -1, false
}
