package service

import (
	"context"
	"errors"

	"github.com/noah-isme/lesson-scheduler/internal/models"
	"github.com/noah-isme/lesson-scheduler/internal/repository"
	appErrors "github.com/noah-isme/lesson-scheduler/pkg/errors"
)

type catalogRepository interface {
	CreateProfessor(ctx context.Context, professor models.Professor) error
	FindProfessor(ctx context.Context, id int) (*models.Professor, error)
	ListProfessors(ctx context.Context) ([]models.Professor, error)
	CreateClassroom(ctx context.Context, classroom models.Classroom) error
	FindClassroom(ctx context.Context, number string) (*models.Classroom, error)
	ListClassrooms(ctx context.Context) ([]models.Classroom, error)
	CreateCourse(ctx context.Context, course models.Course) error
	FindCourse(ctx context.Context, id int) (*models.Course, error)
	ListCourses(ctx context.Context) ([]models.Course, error)
	LessonRefsExist(ctx context.Context, lesson models.Lesson) (professor, course, classroom bool, err error)
}

// catalogError maps repository failures onto API errors.
func catalogError(err error, notFound, duplicate, internal string) error {
	switch {
	case errors.Is(err, repository.ErrNotFound):
		return appErrors.Clone(appErrors.ErrNotFound, notFound)
	case errors.Is(err, repository.ErrAlreadyExists):
		return appErrors.Wrap(err, appErrors.ErrDuplicateEntry.Code, appErrors.ErrDuplicateEntry.Status, duplicate)
	default:
		return appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, internal)
	}
}
