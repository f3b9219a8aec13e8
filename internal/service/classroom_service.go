package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"

	"github.com/noah-isme/lesson-scheduler/internal/models"
	appErrors "github.com/noah-isme/lesson-scheduler/pkg/errors"
)

// CreateClassroomRequest registers a classroom.
type CreateClassroomRequest struct {
	Number       string `json:"number" yaml:"number" validate:"required,max=32"`
	Capacity     int    `json:"capacity" yaml:"capacity" validate:"min=0"`
	HasProjector bool   `json:"has_projector" yaml:"has_projector"`
}

// ClassroomService manages classroom reference data.
type ClassroomService struct {
	repo      catalogRepository
	cache     *CacheService
	validator *validator.Validate
	logger    *zap.Logger
}

// NewClassroomService instantiates ClassroomService.
func NewClassroomService(repo catalogRepository, cache *CacheService, validate *validator.Validate, logger *zap.Logger) *ClassroomService {
	if validate == nil {
		validate = validator.New()
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &ClassroomService{repo: repo, cache: cache, validator: validate, logger: logger}
}

// Create registers a classroom under a unique number.
func (s *ClassroomService) Create(ctx context.Context, req CreateClassroomRequest) (*models.Classroom, error) {
	req.Number = strings.TrimSpace(req.Number)
	if err := s.validator.Struct(req); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, "invalid classroom payload")
	}

	classroom := models.Classroom{Number: req.Number, Capacity: req.Capacity, HasProjector: req.HasProjector}
	if err := s.repo.CreateClassroom(ctx, classroom); err != nil {
		s.logger.Warn("classroom not registered", zap.String("classroom", req.Number), zap.Error(err))
		return nil, catalogError(err, "", fmt.Sprintf("classroom %s already exists", req.Number), "failed to create classroom")
	}
	s.cache.InvalidateAnalytics(ctx)
	return &classroom, nil
}

// Get loads a classroom by number.
func (s *ClassroomService) Get(ctx context.Context, number string) (*models.Classroom, error) {
	classroom, err := s.repo.FindClassroom(ctx, strings.TrimSpace(number))
	if err != nil {
		return nil, catalogError(err, "classroom not found", "", "failed to load classroom")
	}
	return classroom, nil
}

// List returns every classroom in registration order.
func (s *ClassroomService) List(ctx context.Context) ([]models.Classroom, error) {
	classrooms, err := s.repo.ListClassrooms(ctx)
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to list classrooms")
	}
	return classrooms, nil
}
