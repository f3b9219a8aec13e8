package repository

import (
	"context"
	"fmt"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/noah-isme/lesson-scheduler/internal/models"
	"github.com/noah-isme/lesson-scheduler/internal/scheduling"
)

func mondayLesson(course, prof int, room string) models.Lesson {
	return models.Lesson{CourseID: course, ProfessorID: prof, ClassroomNumber: room, DayOfWeek: "Monday", TimeSlot: "8:30-10:00"}
}

func TestScheduleRepositoryAddAndList(t *testing.T) {
	repo := NewScheduleRepository()
	ctx := context.Background()

	res, err := repo.Add(ctx, mondayLesson(10, 1, "101"))
	require.NoError(t, err)
	require.True(t, res.OK())

	res, err = repo.Add(ctx, mondayLesson(11, 1, "102"))
	require.NoError(t, err)
	assert.Equal(t, scheduling.OutcomeProfessorConflict, res.Outcome)

	_, err = repo.Add(ctx, mondayLesson(12, 2, "102"))
	require.NoError(t, err)

	all, err := repo.List(ctx, models.LessonFilter{})
	require.NoError(t, err)
	require.Len(t, all, 2)
	assert.Equal(t, 1, all[1].Position)

	byRoom, err := repo.List(ctx, models.LessonFilter{ClassroomNumber: "102"})
	require.NoError(t, err)
	require.Len(t, byRoom, 1)
	assert.Equal(t, 12, byRoom[0].CourseID)
}

func TestScheduleRepositoryFindAndCancel(t *testing.T) {
	repo := NewScheduleRepository()
	ctx := context.Background()
	first, _ := repo.Add(ctx, mondayLesson(10, 1, "101"))
	second, _ := repo.Add(ctx, mondayLesson(11, 2, "102"))

	found, err := repo.FindByID(ctx, second.Lesson.ID)
	require.NoError(t, err)
	assert.Equal(t, 1, found.Position)

	_, ok, err := repo.CancelAt(ctx, 5)
	require.NoError(t, err)
	assert.False(t, ok)

	removed, ok, err := repo.CancelByID(ctx, first.Lesson.ID)
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, 10, removed.CourseID)

	found, err = repo.FindByID(ctx, second.Lesson.ID)
	require.NoError(t, err)
	assert.Equal(t, 0, found.Position)

	_, err = repo.FindByID(ctx, first.Lesson.ID)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestScheduleRepositoryReassign(t *testing.T) {
	repo := NewScheduleRepository()
	ctx := context.Background()
	first, _ := repo.Add(ctx, mondayLesson(10, 1, "101"))
	_, _ = repo.Add(ctx, mondayLesson(11, 2, "102"))

	res, err := repo.ReassignByID(ctx, first.Lesson.ID, "102")
	require.NoError(t, err)
	assert.Equal(t, scheduling.OutcomeClassroomConflict, res.Outcome)

	res, err = repo.ReassignAt(ctx, 0, "103")
	require.NoError(t, err)
	assert.True(t, res.OK())

	lessons, _ := repo.Lessons(ctx)
	assert.Equal(t, "103", lessons[0].ClassroomNumber)
}

func TestScheduleRepositoryBulkAddAllOrNothing(t *testing.T) {
	repo := NewScheduleRepository()
	ctx := context.Background()
	_, _ = repo.Add(ctx, mondayLesson(10, 1, "101"))

	results, err := repo.BulkAdd(ctx, []models.Lesson{
		mondayLesson(11, 2, "102"),
		mondayLesson(12, 3, "101"),
		mondayLesson(13, 4, "103"),
	}, false)
	require.NoError(t, err)
	require.Len(t, results, 3)
	assert.True(t, results[0].OK())
	assert.Equal(t, scheduling.OutcomeClassroomConflict, results[1].Outcome)

	lessons, _ := repo.Lessons(ctx)
	assert.Len(t, lessons, 1)
}

func TestScheduleRepositoryBulkAddPartial(t *testing.T) {
	repo := NewScheduleRepository()
	ctx := context.Background()
	_, _ = repo.Add(ctx, mondayLesson(10, 1, "101"))

	results, err := repo.BulkAdd(ctx, []models.Lesson{
		mondayLesson(11, 2, "102"),
		mondayLesson(12, 3, "101"),
		mondayLesson(13, 4, "103"),
	}, true)
	require.NoError(t, err)
	assert.False(t, results[1].OK())

	lessons, _ := repo.Lessons(ctx)
	require.Len(t, lessons, 3)
	assert.Equal(t, 13, lessons[2].CourseID)
}

func TestScheduleRepositoryConcurrentAddsNeverDoubleBook(t *testing.T) {
	repo := NewScheduleRepository()
	ctx := context.Background()

	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			_, _ = repo.Add(ctx, mondayLesson(100+i, i%5, fmt.Sprintf("R%d", i%7)))
		}(i)
	}
	wg.Wait()

	lessons, err := repo.Lessons(ctx)
	require.NoError(t, err)
	profs := map[int]bool{}
	rooms := map[string]bool{}
	for _, l := range lessons {
		assert.False(t, profs[l.ProfessorID], "professor %d double booked", l.ProfessorID)
		assert.False(t, rooms[l.ClassroomNumber], "room %s double booked", l.ClassroomNumber)
		profs[l.ProfessorID] = true
		rooms[l.ClassroomNumber] = true
	}
	assert.LessOrEqual(t, len(lessons), 5)
}

func TestScheduleRepositoryCancelledContext(t *testing.T) {
	repo := NewScheduleRepository()
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := repo.Add(ctx, mondayLesson(10, 1, "101"))
	assert.ErrorIs(t, err, context.Canceled)
	_, _, err = repo.CancelAt(ctx, 0)
	assert.ErrorIs(t, err, context.Canceled)
}
