package service

import (
	"context"
	"fmt"

	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"

	"github.com/noah-isme/lesson-scheduler/internal/models"
	appErrors "github.com/noah-isme/lesson-scheduler/pkg/errors"
)

// CreateProfessorRequest registers a professor.
type CreateProfessorRequest struct {
	ID         int    `json:"id" yaml:"id" validate:"required,min=1"`
	Name       string `json:"name" yaml:"name" validate:"required,max=200"`
	Department string `json:"department" yaml:"department" validate:"required,max=200"`
}

// ProfessorService manages the professor roster.
type ProfessorService struct {
	repo      catalogRepository
	cache     *CacheService
	validator *validator.Validate
	logger    *zap.Logger
}

// NewProfessorService instantiates ProfessorService.
func NewProfessorService(repo catalogRepository, cache *CacheService, validate *validator.Validate, logger *zap.Logger) *ProfessorService {
	if validate == nil {
		validate = validator.New()
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &ProfessorService{repo: repo, cache: cache, validator: validate, logger: logger}
}

// Create registers a new professor. Ids are unique; a repeated id is rejected.
func (s *ProfessorService) Create(ctx context.Context, req CreateProfessorRequest) (*models.Professor, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, "invalid professor payload")
	}

	professor := models.Professor{ID: req.ID, Name: req.Name, Department: req.Department}
	if err := s.repo.CreateProfessor(ctx, professor); err != nil {
		s.logger.Warn("professor not registered", zap.Int("professor_id", req.ID), zap.Error(err))
		return nil, catalogError(err, "", fmt.Sprintf("professor with id %d already exists", req.ID), "failed to create professor")
	}
	s.cache.InvalidateAnalytics(ctx)
	return &professor, nil
}

// Get loads a professor by id.
func (s *ProfessorService) Get(ctx context.Context, id int) (*models.Professor, error) {
	professor, err := s.repo.FindProfessor(ctx, id)
	if err != nil {
		return nil, catalogError(err, "professor not found", "", "failed to load professor")
	}
	return professor, nil
}

// List returns every professor in registration order.
func (s *ProfessorService) List(ctx context.Context) ([]models.Professor, error) {
	professors, err := s.repo.ListProfessors(ctx)
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to list professors")
	}
	return professors, nil
}
