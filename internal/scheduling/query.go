package scheduling

import "github.com/noah-isme/lesson-scheduler/internal/models"

// AvailableClassrooms returns, in classroom order, the numbers of classrooms
// with no lesson at the given day and time slot.
func AvailableClassrooms(classrooms []models.Classroom, lessons []models.Lesson, timeSlot, day string) []string {
	occupied := make(map[string]struct{})
	for _, l := range lessons {
		if l.TimeSlot == timeSlot && l.DayOfWeek == day {
			occupied[l.ClassroomNumber] = struct{}{}
		}
	}

	free := make([]string, 0, len(classrooms))
	for _, c := range classrooms {
		if _, busy := occupied[c.Number]; !busy {
			free = append(free, c.Number)
		}
	}
	return free
}

// ProfessorSchedule returns the professor's lessons in schedule order.
func ProfessorSchedule(professorID int, lessons []models.Lesson) []models.Lesson {
	out := make([]models.Lesson, 0)
	for _, l := range lessons {
		if l.ProfessorID == professorID {
			out = append(out, l)
		}
	}
	return out
}

// ClassroomUtilization is the share of DefaultWeeklyCapacity the classroom is booked for, in percent.
func ClassroomUtilization(classroomNumber string, lessons []models.Lesson) float64 {
	return UtilizationWithCapacity(classroomNumber, lessons, DefaultWeeklyCapacity)
}

// UtilizationWithCapacity is ClassroomUtilization against an explicit weekly capacity.
// A non-positive capacity yields zero.
func UtilizationWithCapacity(classroomNumber string, lessons []models.Lesson, capacity int) float64 {
	if capacity <= 0 {
		return 0
	}
	return float64(LessonsInClassroom(classroomNumber, lessons)) / float64(capacity) * 100
}

// LessonsInClassroom counts the lessons booked into classroomNumber.
func LessonsInClassroom(classroomNumber string, lessons []models.Lesson) int {
	used := 0
	for _, l := range lessons {
		if l.ClassroomNumber == classroomNumber {
			used++
		}
	}
	return used
}

// CountCourseTypes tallies courses per type. Every declared type is present in the result.
func CountCourseTypes(courses []models.Course) map[models.CourseType]int {
	counts := make(map[models.CourseType]int, len(models.CourseTypes))
	for _, t := range models.CourseTypes {
		counts[t] = 0
	}
	for _, c := range courses {
		counts[c.Type]++
	}
	return counts
}

// MostPopularCourseType returns the most frequent course type. Ties go to the
// type declared first. The boolean is false when there are no courses.
func MostPopularCourseType(courses []models.Course) (models.CourseType, bool) {
	if len(courses) == 0 {
		return "", false
	}

	counts := CountCourseTypes(courses)
	best := models.CourseTypes[0]
	for _, t := range models.CourseTypes[1:] {
		if counts[t] > counts[best] {
			best = t
		}
	}
	return best, true
}
