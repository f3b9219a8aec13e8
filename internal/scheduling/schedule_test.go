package scheduling

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/noah-isme/lesson-scheduler/internal/models"
)

func sequentialIDs() Option {
	n := 0
	return WithIDGenerator(func() string {
		n++
		return fmt.Sprintf("lesson-%d", n)
	})
}

func seeded(t *testing.T, lessons ...models.Lesson) *Schedule {
	t.Helper()
	s := New(sequentialIDs())
	for _, l := range lessons {
		require.True(t, s.Add(l).OK())
	}
	return s
}

func TestScheduleAddAssignsID(t *testing.T) {
	s := New()
	res := s.Add(lesson(10, 1, "101", "Mon", "8:30-10:00"))

	require.True(t, res.OK())
	assert.Equal(t, OutcomeOK, res.Outcome)
	assert.Equal(t, 0, res.Position)
	assert.NotEmpty(t, res.Lesson.ID)
	assert.Equal(t, 1, s.Len())

	found, ok := s.Find(res.Lesson.ID)
	require.True(t, ok)
	assert.Equal(t, 0, found.Position)
}

func TestScheduleAddOverridesCallerID(t *testing.T) {
	s := New(sequentialIDs())
	l := lesson(10, 1, "101", "Mon", "8:30-10:00")
	l.ID = "mine"

	res := s.Add(l)
	require.True(t, res.OK())
	assert.Equal(t, "lesson-1", res.Lesson.ID)
	_, ok := s.Find("mine")
	assert.False(t, ok)
}

func TestScheduleAddTwiceKeepsOneCopy(t *testing.T) {
	s := New()
	l := lesson(10, 1, "101", "Mon", "8:30-10:00")

	require.True(t, s.Add(l).OK())
	res := s.Add(l)

	assert.False(t, res.OK())
	assert.Equal(t, OutcomeDuplicate, res.Outcome)
	require.NotNil(t, res.Duplicate)
	assert.Equal(t, 0, res.Duplicate.Position)
	assert.Equal(t, 1, s.Len())
}

func TestScheduleAddDuplicateIgnoresClassroom(t *testing.T) {
	s := seeded(t, lesson(10, 1, "101", "Mon", "8:30-10:00"))

	res := s.Add(lesson(10, 1, "205", "Mon", "8:30-10:00"))
	assert.Equal(t, OutcomeDuplicate, res.Outcome)
	assert.Equal(t, 1, s.Len())
}

func TestScheduleAddRejectsProfessorConflict(t *testing.T) {
	s := seeded(t, lesson(10, 1, "101", "Mon", "8:30-10:00"))
	before := s.Lessons()

	res := s.Add(lesson(11, 1, "102", "Mon", "8:30-10:00"))
	assert.False(t, res.OK())
	assert.Equal(t, OutcomeProfessorConflict, res.Outcome)
	require.NotNil(t, res.Conflict)
	assert.Equal(t, before[0], res.Conflict.Lesson)
	assert.Equal(t, before, s.Lessons())
}

func TestScheduleAddRejectsClassroomConflict(t *testing.T) {
	s := seeded(t, lesson(10, 1, "101", "Mon", "8:30-10:00"))

	res := s.Add(lesson(11, 2, "101", "Mon", "8:30-10:00"))
	assert.Equal(t, OutcomeClassroomConflict, res.Outcome)
	assert.Equal(t, 1, s.Len())
}

func TestScheduleCheckDoesNotMutate(t *testing.T) {
	s := seeded(t, lesson(10, 1, "101", "Mon", "8:30-10:00"))

	ok := s.Check(lesson(11, 2, "102", "Mon", "8:30-10:00"))
	assert.True(t, ok.OK())
	assert.Equal(t, 1, ok.Position)
	assert.Empty(t, ok.Lesson.ID)
	assert.Equal(t, 1, s.Len())

	bad := s.Check(lesson(11, 1, "102", "Mon", "8:30-10:00"))
	assert.Equal(t, OutcomeProfessorConflict, bad.Outcome)
}

func TestScheduleReassignOutOfRange(t *testing.T) {
	s := seeded(t, lesson(10, 1, "101", "Mon", "8:30-10:00"))
	before := s.Lessons()

	for _, pos := range []int{-1, 1, 42} {
		res := s.Reassign(pos, "102")
		assert.False(t, res.OK())
		assert.Equal(t, OutcomeOutOfRange, res.Outcome)
	}
	assert.Equal(t, before, s.Lessons())
}

func TestScheduleReassignOccupiedClassroom(t *testing.T) {
	s := seeded(t,
		lesson(10, 1, "101", "Mon", "8:30-10:00"),
		lesson(11, 2, "102", "Mon", "8:30-10:00"),
	)
	before := s.Lessons()

	res := s.Reassign(0, "102")
	assert.Equal(t, OutcomeClassroomConflict, res.Outcome)
	require.NotNil(t, res.Conflict)
	assert.Equal(t, 1, res.Conflict.Position)
	assert.Equal(t, before, s.Lessons())
}

func TestScheduleReassignFreeClassroom(t *testing.T) {
	s := seeded(t,
		lesson(10, 1, "101", "Mon", "8:30-10:00"),
		lesson(11, 2, "102", "Mon", "8:30-10:00"),
		lesson(12, 3, "103", "Tue", "8:30-10:00"),
	)
	before, _ := s.At(0)

	res := s.Reassign(0, "103")
	require.True(t, res.OK())

	after, ok := s.At(0)
	require.True(t, ok)
	assert.Equal(t, "103", after.ClassroomNumber)
	assert.Equal(t, before.ID, after.ID)
	assert.Equal(t, before.CourseID, after.CourseID)
	assert.Equal(t, before.ProfessorID, after.ProfessorID)
	assert.Equal(t, before.DayOfWeek, after.DayOfWeek)
	assert.Equal(t, before.TimeSlot, after.TimeSlot)
	assert.Equal(t, 3, s.Len())
}

func TestScheduleReassignSameClassroomIsNoop(t *testing.T) {
	s := seeded(t, lesson(10, 1, "101", "Mon", "8:30-10:00"))

	res := s.Reassign(0, "101")
	assert.True(t, res.OK())
	got, _ := s.At(0)
	assert.Equal(t, "101", got.ClassroomNumber)
}

func TestScheduleReassignByID(t *testing.T) {
	s := seeded(t,
		lesson(10, 1, "101", "Mon", "8:30-10:00"),
		lesson(11, 2, "102", "Mon", "8:30-10:00"),
	)

	res := s.ReassignByID("lesson-2", "104")
	require.True(t, res.OK())
	assert.Equal(t, 1, res.Position)

	missing := s.ReassignByID("nope", "104")
	assert.Equal(t, OutcomeNotFound, missing.Outcome)
}

func TestScheduleCancelShiftsPositions(t *testing.T) {
	s := seeded(t,
		lesson(10, 1, "101", "Mon", "8:30-10:00"),
		lesson(11, 2, "102", "Mon", "8:30-10:00"),
		lesson(12, 3, "103", "Mon", "8:30-10:00"),
	)
	before := s.Lessons()

	removed, ok := s.Cancel(1)
	require.True(t, ok)
	assert.Equal(t, before[1], removed)
	assert.Equal(t, 2, s.Len())
	assert.Equal(t, []models.Lesson{before[0], before[2]}, s.Lessons())

	moved, ok := s.Find(before[2].ID)
	require.True(t, ok)
	assert.Equal(t, 1, moved.Position)
	_, ok = s.Find(before[1].ID)
	assert.False(t, ok)
}

func TestScheduleCancelInvalidPositionIsNoop(t *testing.T) {
	s := seeded(t, lesson(10, 1, "101", "Mon", "8:30-10:00"))
	before := s.Lessons()

	for _, pos := range []int{-1, 1, 100} {
		_, ok := s.Cancel(pos)
		assert.False(t, ok)
	}
	assert.Equal(t, before, s.Lessons())
}

func TestScheduleCancelByID(t *testing.T) {
	s := seeded(t,
		lesson(10, 1, "101", "Mon", "8:30-10:00"),
		lesson(11, 2, "102", "Mon", "8:30-10:00"),
	)

	removed, ok := s.CancelByID("lesson-1")
	require.True(t, ok)
	assert.Equal(t, 10, removed.CourseID)

	_, ok = s.CancelByID("lesson-1")
	assert.False(t, ok)

	remaining, ok := s.Find("lesson-2")
	require.True(t, ok)
	assert.Equal(t, 0, remaining.Position)
}

func TestScheduleCancelledSlotCanBeRebooked(t *testing.T) {
	s := seeded(t, lesson(10, 1, "101", "Mon", "8:30-10:00"))

	_, ok := s.Cancel(0)
	require.True(t, ok)
	assert.True(t, s.Add(lesson(11, 1, "101", "Mon", "8:30-10:00")).OK())
}

func TestScheduleInvariantsHoldAfterMixedMutations(t *testing.T) {
	s := New()
	days := []string{"Mon", "Tue"}
	slots := []string{"A", "B", "C"}
	rooms := []string{"101", "102"}

	for course := 1; course <= 4; course++ {
		for prof := 1; prof <= 3; prof++ {
			for _, d := range days {
				for _, sl := range slots {
					s.Add(lesson(course, prof, rooms[(course+prof)%len(rooms)], d, sl))
				}
			}
		}
	}
	s.Reassign(0, "102")
	s.Cancel(2)
	s.Reassign(1, "101")

	lessons := s.Lessons()
	for i := range lessons {
		for j := i + 1; j < len(lessons); j++ {
			if !lessons[i].SameSlot(lessons[j]) {
				continue
			}
			assert.NotEqual(t, lessons[i].ProfessorID, lessons[j].ProfessorID)
			assert.NotEqual(t, lessons[i].ClassroomNumber, lessons[j].ClassroomNumber)
		}
	}
}

func TestSchedulePositionedAndAt(t *testing.T) {
	s := seeded(t,
		lesson(10, 1, "101", "Mon", "8:30-10:00"),
		lesson(11, 2, "102", "Mon", "8:30-10:00"),
	)

	positioned := s.Positioned()
	require.Len(t, positioned, 2)
	assert.Equal(t, 1, positioned[1].Position)
	assert.Equal(t, "lesson-2", positioned[1].ID)

	_, ok := s.At(2)
	assert.False(t, ok)
}

func TestScheduleLessonsReturnsCopy(t *testing.T) {
	s := seeded(t, lesson(10, 1, "101", "Mon", "8:30-10:00"))

	out := s.Lessons()
	out[0].ClassroomNumber = "999"

	got, _ := s.At(0)
	assert.Equal(t, "101", got.ClassroomNumber)
}
