package service

import (
	"context"
	"fmt"

	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"

	"github.com/noah-isme/lesson-scheduler/internal/models"
	appErrors "github.com/noah-isme/lesson-scheduler/pkg/errors"
)

// CreateCourseRequest registers a course.
type CreateCourseRequest struct {
	ID   int               `json:"id" yaml:"id" validate:"required,min=1"`
	Name string            `json:"name" yaml:"name" validate:"required,max=200"`
	Type models.CourseType `json:"type" yaml:"type" validate:"required,oneof=Lecture Seminar Lab Practice"`
}

// CourseService manages the course catalog.
type CourseService struct {
	repo      catalogRepository
	cache     *CacheService
	validator *validator.Validate
	logger    *zap.Logger
}

// NewCourseService instantiates CourseService.
func NewCourseService(repo catalogRepository, cache *CacheService, validate *validator.Validate, logger *zap.Logger) *CourseService {
	if validate == nil {
		validate = validator.New()
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &CourseService{repo: repo, cache: cache, validator: validate, logger: logger}
}

// Create registers a course with a unique id.
func (s *CourseService) Create(ctx context.Context, req CreateCourseRequest) (*models.Course, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, "invalid course payload")
	}

	course := models.Course{ID: req.ID, Name: req.Name, Type: req.Type}
	if err := s.repo.CreateCourse(ctx, course); err != nil {
		s.logger.Warn("course not registered", zap.Int("course_id", req.ID), zap.Error(err))
		return nil, catalogError(err, "", fmt.Sprintf("course with id %d already exists", req.ID), "failed to create course")
	}
	s.cache.InvalidateAnalytics(ctx)
	return &course, nil
}

// Get loads a course by id.
func (s *CourseService) Get(ctx context.Context, id int) (*models.Course, error) {
	course, err := s.repo.FindCourse(ctx, id)
	if err != nil {
		return nil, catalogError(err, "course not found", "", "failed to load course")
	}
	return course, nil
}

// List returns every course in registration order.
func (s *CourseService) List(ctx context.Context) ([]models.Course, error) {
	courses, err := s.repo.ListCourses(ctx)
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to list courses")
	}
	return courses, nil
}
