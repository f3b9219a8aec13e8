package scheduling

import (
	"github.com/google/uuid"

	"github.com/noah-isme/lesson-scheduler/internal/models"
)

// Schedule is an ordered collection of lessons kept free of double bookings.
// The zero value is not usable; construct with New.
type Schedule struct {
	lessons []models.Lesson
	index   map[string]int
	newID   func() string
}

// Option customises a Schedule.
type Option func(*Schedule)

// WithIDGenerator replaces the UUID generator used for new lessons.
func WithIDGenerator(fn func() string) Option {
	return func(s *Schedule) {
		if fn != nil {
			s.newID = fn
		}
	}
}

// New returns an empty schedule.
func New(opts ...Option) *Schedule {
	s := &Schedule{
		index: make(map[string]int),
		newID: uuid.NewString,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Len returns the number of scheduled lessons.
func (s *Schedule) Len() int {
	return len(s.lessons)
}

// Lessons returns a copy of the schedule in position order.
func (s *Schedule) Lessons() []models.Lesson {
	out := make([]models.Lesson, len(s.lessons))
	copy(out, s.lessons)
	return out
}

// Positioned returns the schedule with each lesson's current position.
func (s *Schedule) Positioned() []models.PositionedLesson {
	out := make([]models.PositionedLesson, len(s.lessons))
	for i, l := range s.lessons {
		out[i] = models.PositionedLesson{Position: i, Lesson: l}
	}
	return out
}

// At returns the lesson at position.
func (s *Schedule) At(position int) (models.Lesson, bool) {
	if !s.inRange(position) {
		return models.Lesson{}, false
	}
	return s.lessons[position], true
}

// Find returns the lesson with the given id and its current position.
func (s *Schedule) Find(id string) (models.PositionedLesson, bool) {
	pos, ok := s.index[id]
	if !ok {
		return models.PositionedLesson{}, false
	}
	return models.PositionedLesson{Position: pos, Lesson: s.lessons[pos]}, true
}

// Check runs the admission rules of Add without changing the schedule.
func (s *Schedule) Check(lesson models.Lesson) Result {
	if pos, dup := findDuplicate(lesson, s.lessons); dup {
		return Result{
			Outcome:   OutcomeDuplicate,
			Position:  -1,
			Lesson:    lesson,
			Duplicate: &models.PositionedLesson{Position: pos, Lesson: s.lessons[pos]},
		}
	}
	if conflict := Validate(lesson, s.lessons); conflict != nil {
		return conflictResult(lesson, -1, conflict)
	}
	return Result{Outcome: OutcomeOK, Position: len(s.lessons), Lesson: lesson}
}

// Add appends the lesson unless it duplicates or collides with an existing one.
// The stored lesson always receives a freshly generated id.
func (s *Schedule) Add(lesson models.Lesson) Result {
	res := s.Check(lesson)
	if !res.OK() {
		return res
	}
	lesson.ID = s.newID()
	s.lessons = append(s.lessons, lesson)
	s.index[lesson.ID] = res.Position
	res.Lesson = lesson
	return res
}

// Reassign moves the lesson at position into another classroom when that
// classroom is free at the lesson's day and time slot. Position and id are kept.
func (s *Schedule) Reassign(position int, classroom string) Result {
	if !s.inRange(position) {
		return Result{Outcome: OutcomeOutOfRange, Position: position}
	}

	candidate := s.lessons[position]
	candidate.ClassroomNumber = classroom

	if conflict := ValidateExcluding(candidate, s.lessons, position); conflict != nil {
		return conflictResult(candidate, position, conflict)
	}

	s.lessons[position] = candidate
	return Result{Outcome: OutcomeOK, Position: position, Lesson: candidate}
}

// ReassignByID is Reassign addressed by lesson id.
func (s *Schedule) ReassignByID(id, classroom string) Result {
	pos, ok := s.index[id]
	if !ok {
		return Result{Outcome: OutcomeNotFound, Position: -1}
	}
	return s.Reassign(pos, classroom)
}

// Cancel removes the lesson at position and shifts every later lesson down by one.
// An invalid position is ignored.
func (s *Schedule) Cancel(position int) (models.Lesson, bool) {
	if !s.inRange(position) {
		return models.Lesson{}, false
	}

	removed := s.lessons[position]
	s.lessons = append(s.lessons[:position], s.lessons[position+1:]...)
	delete(s.index, removed.ID)
	for i := position; i < len(s.lessons); i++ {
		s.index[s.lessons[i].ID] = i
	}
	return removed, true
}

// CancelByID is Cancel addressed by lesson id.
func (s *Schedule) CancelByID(id string) (models.Lesson, bool) {
	pos, ok := s.index[id]
	if !ok {
		return models.Lesson{}, false
	}
	return s.Cancel(pos)
}

func (s *Schedule) inRange(position int) bool {
	return position >= 0 && position < len(s.lessons)
}
