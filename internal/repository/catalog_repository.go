package repository

import (
	"context"
	"fmt"
	"sync"

	"github.com/noah-isme/lesson-scheduler/internal/models"
)

// CatalogRepository stores the reference data lessons point at: professors,
// classrooms and courses. Listings come back in registration order.
type CatalogRepository struct {
	mu         sync.RWMutex
	professors *table[int, models.Professor]
	classrooms *table[string, models.Classroom]
	courses    *table[int, models.Course]
}

// NewCatalogRepository creates an empty catalog.
func NewCatalogRepository() *CatalogRepository {
	return &CatalogRepository{
		professors: newTable[int, models.Professor](),
		classrooms: newTable[string, models.Classroom](),
		courses:    newTable[int, models.Course](),
	}
}

// CreateProfessor registers a professor with a unique id.
func (r *CatalogRepository) CreateProfessor(ctx context.Context, professor models.Professor) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	if err := r.professors.insert(professor.ID, professor); err != nil {
		return fmt.Errorf("create professor %d: %w", professor.ID, err)
	}
	return nil
}

// FindProfessor loads a professor by id.
func (r *CatalogRepository) FindProfessor(ctx context.Context, id int) (*models.Professor, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	r.mu.RLock()
	defer r.mu.RUnlock()
	professor, err := r.professors.get(id)
	if err != nil {
		return nil, err
	}
	return &professor, nil
}

// ListProfessors returns every professor.
func (r *CatalogRepository) ListProfessors(ctx context.Context) ([]models.Professor, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.professors.list(), nil
}

// CreateClassroom registers a classroom with a unique number.
func (r *CatalogRepository) CreateClassroom(ctx context.Context, classroom models.Classroom) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	if err := r.classrooms.insert(classroom.Number, classroom); err != nil {
		return fmt.Errorf("create classroom %s: %w", classroom.Number, err)
	}
	return nil
}

// FindClassroom loads a classroom by number.
func (r *CatalogRepository) FindClassroom(ctx context.Context, number string) (*models.Classroom, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	r.mu.RLock()
	defer r.mu.RUnlock()
	classroom, err := r.classrooms.get(number)
	if err != nil {
		return nil, err
	}
	return &classroom, nil
}

// ListClassrooms returns every classroom.
func (r *CatalogRepository) ListClassrooms(ctx context.Context) ([]models.Classroom, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.classrooms.list(), nil
}

// CreateCourse registers a course with a unique id.
func (r *CatalogRepository) CreateCourse(ctx context.Context, course models.Course) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	if err := r.courses.insert(course.ID, course); err != nil {
		return fmt.Errorf("create course %d: %w", course.ID, err)
	}
	return nil
}

// FindCourse loads a course by id.
func (r *CatalogRepository) FindCourse(ctx context.Context, id int) (*models.Course, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	r.mu.RLock()
	defer r.mu.RUnlock()
	course, err := r.courses.get(id)
	if err != nil {
		return nil, err
	}
	return &course, nil
}

// ListCourses returns every course.
func (r *CatalogRepository) ListCourses(ctx context.Context) ([]models.Course, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.courses.list(), nil
}

// LessonRefsExist reports which of a lesson's references are known to the catalog.
func (r *CatalogRepository) LessonRefsExist(ctx context.Context, lesson models.Lesson) (professor, course, classroom bool, err error) {
	if err = ctx.Err(); err != nil {
		return false, false, false, err
	}
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.professors.has(lesson.ProfessorID), r.courses.has(lesson.CourseID), r.classrooms.has(lesson.ClassroomNumber), nil
}
