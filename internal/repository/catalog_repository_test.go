package repository

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/noah-isme/lesson-scheduler/internal/models"
)

func TestCatalogRepositoryProfessors(t *testing.T) {
	repo := NewCatalogRepository()
	ctx := context.Background()

	require.NoError(t, repo.CreateProfessor(ctx, models.Professor{ID: 2, Name: "Shevchenko", Department: "Math"}))
	require.NoError(t, repo.CreateProfessor(ctx, models.Professor{ID: 1, Name: "Kovalenko", Department: "Physics"}))

	err := repo.CreateProfessor(ctx, models.Professor{ID: 1, Name: "Other"})
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrAlreadyExists)

	list, err := repo.ListProfessors(ctx)
	require.NoError(t, err)
	require.Len(t, list, 2)
	assert.Equal(t, 2, list[0].ID)
	assert.Equal(t, "Kovalenko", list[1].Name)

	found, err := repo.FindProfessor(ctx, 1)
	require.NoError(t, err)
	assert.Equal(t, "Physics", found.Department)

	_, err = repo.FindProfessor(ctx, 9)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestCatalogRepositoryClassroomsAndCourses(t *testing.T) {
	repo := NewCatalogRepository()
	ctx := context.Background()

	require.NoError(t, repo.CreateClassroom(ctx, models.Classroom{Number: "101", Capacity: 30, HasProjector: true}))
	assert.ErrorIs(t, repo.CreateClassroom(ctx, models.Classroom{Number: "101"}), ErrAlreadyExists)
	require.NoError(t, repo.CreateCourse(ctx, models.Course{ID: 10, Name: "Algorithms", Type: models.CourseTypeLecture}))
	assert.ErrorIs(t, repo.CreateCourse(ctx, models.Course{ID: 10}), ErrAlreadyExists)

	room, err := repo.FindClassroom(ctx, "101")
	require.NoError(t, err)
	assert.True(t, room.HasProjector)

	course, err := repo.FindCourse(ctx, 10)
	require.NoError(t, err)
	assert.Equal(t, models.CourseTypeLecture, course.Type)

	_, err = repo.FindClassroom(ctx, "999")
	assert.ErrorIs(t, err, ErrNotFound)

	classrooms, _ := repo.ListClassrooms(ctx)
	courses, _ := repo.ListCourses(ctx)
	assert.Len(t, classrooms, 1)
	assert.Len(t, courses, 1)
}

func TestCatalogRepositoryLessonRefsExist(t *testing.T) {
	repo := NewCatalogRepository()
	ctx := context.Background()
	require.NoError(t, repo.CreateProfessor(ctx, models.Professor{ID: 1}))
	require.NoError(t, repo.CreateClassroom(ctx, models.Classroom{Number: "101"}))

	prof, course, room, err := repo.LessonRefsExist(ctx, models.Lesson{ProfessorID: 1, CourseID: 10, ClassroomNumber: "101"})
	require.NoError(t, err)
	assert.True(t, prof)
	assert.False(t, course)
	assert.True(t, room)
}

func TestCatalogRepositoryCancelledContext(t *testing.T) {
	repo := NewCatalogRepository()
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	assert.ErrorIs(t, repo.CreateProfessor(ctx, models.Professor{ID: 1}), context.Canceled)
	_, err := repo.ListCourses(ctx)
	assert.ErrorIs(t, err, context.Canceled)
}
