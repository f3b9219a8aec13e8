package scheduling

import "github.com/noah-isme/lesson-scheduler/internal/models"

// Outcome is the tagged reason a mutation was applied or rejected.
type Outcome string

const (
	OutcomeOK                Outcome = "ok"
	OutcomeDuplicate         Outcome = "duplicate"
	OutcomeProfessorConflict Outcome = "professor_conflict"
	OutcomeClassroomConflict Outcome = "classroom_conflict"
	OutcomeOutOfRange        Outcome = "out_of_range"
	OutcomeNotFound          Outcome = "not_found"
)

// Result describes what a schedule mutation did.
//
// Lesson is the committed lesson on success and the rejected candidate otherwise.
// Position is where the lesson lives (or would have lived) in the schedule.
type Result struct {
	Outcome   Outcome
	Position  int
	Lesson    models.Lesson
	Conflict  *models.ScheduleConflict
	Duplicate *models.PositionedLesson
}

// OK reports whether the mutation was committed.
func (r Result) OK() bool {
	return r.Outcome == OutcomeOK
}

func conflictResult(candidate models.Lesson, position int, conflict *models.ScheduleConflict) Result {
	outcome := OutcomeClassroomConflict
	if conflict.Type == models.ConflictProfessor {
		outcome = OutcomeProfessorConflict
	}
	return Result{Outcome: outcome, Position: position, Lesson: candidate, Conflict: conflict}
}
