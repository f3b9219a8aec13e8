package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"

	"github.com/noah-isme/lesson-scheduler/internal/models"
	"github.com/noah-isme/lesson-scheduler/internal/repository"
	"github.com/noah-isme/lesson-scheduler/internal/scheduling"
	appErrors "github.com/noah-isme/lesson-scheduler/pkg/errors"
)

type scheduleStore interface {
	Add(ctx context.Context, lesson models.Lesson) (scheduling.Result, error)
	Check(ctx context.Context, lesson models.Lesson) (scheduling.Result, error)
	BulkAdd(ctx context.Context, lessons []models.Lesson, partial bool) ([]scheduling.Result, error)
	ReassignAt(ctx context.Context, position int, classroom string) (scheduling.Result, error)
	ReassignByID(ctx context.Context, id, classroom string) (scheduling.Result, error)
	CancelAt(ctx context.Context, position int) (models.Lesson, bool, error)
	CancelByID(ctx context.Context, id string) (models.Lesson, bool, error)
	FindByID(ctx context.Context, id string) (*models.PositionedLesson, error)
	List(ctx context.Context, filter models.LessonFilter) ([]models.PositionedLesson, error)
	Lessons(ctx context.Context) ([]models.Lesson, error)
}

type lessonReferences interface {
	LessonRefsExist(ctx context.Context, lesson models.Lesson) (professor, course, classroom bool, err error)
	FindClassroom(ctx context.Context, number string) (*models.Classroom, error)
}

// CreateLessonRequest describes payload for placing a lesson.
type CreateLessonRequest struct {
	CourseID        int    `json:"course_id" csv:"course_id" yaml:"course_id" validate:"required,min=1"`
	ProfessorID     int    `json:"professor_id" csv:"professor_id" yaml:"professor_id" validate:"required,min=1"`
	ClassroomNumber string `json:"classroom_number" csv:"classroom_number" yaml:"classroom_number" validate:"required,max=32"`
	DayOfWeek       string `json:"day_of_week" csv:"day_of_week" yaml:"day_of_week" validate:"required"`
	TimeSlot        string `json:"time_slot" csv:"time_slot" yaml:"time_slot" validate:"required"`
}

// ReassignClassroomRequest moves a lesson to another classroom.
type ReassignClassroomRequest struct {
	ClassroomNumber string `json:"classroom_number" validate:"required,max=32"`
}

// BulkCreateLessonsRequest holds multiple lessons for placement.
type BulkCreateLessonsRequest struct {
	Items          []CreateLessonRequest `json:"items" validate:"required,min=1,dive"`
	PartialOnError bool                  `json:"partial_on_error"`
}

// LessonRejection explains why one item of a bulk request was not placed.
type LessonRejection struct {
	Index     int                      `json:"index"`
	Outcome   scheduling.Outcome       `json:"outcome"`
	Lesson    models.Lesson            `json:"lesson"`
	Conflict  *models.ScheduleConflict `json:"conflict,omitempty"`
	Duplicate *models.PositionedLesson `json:"duplicate,omitempty"`
}

// BulkCreateLessonsResult summarises bulk placement results.
type BulkCreateLessonsResult struct {
	Created  []models.PositionedLesson `json:"created"`
	Rejected []LessonRejection         `json:"rejected,omitempty"`
}

// LessonCheckResult is the dry-run verdict for a candidate lesson.
type LessonCheckResult struct {
	Admissible bool                     `json:"admissible"`
	Outcome    scheduling.Outcome       `json:"outcome"`
	Lesson     models.Lesson            `json:"lesson"`
	Conflict   *models.ScheduleConflict `json:"conflict,omitempty"`
	Duplicate  *models.PositionedLesson `json:"duplicate,omitempty"`
}

// ScheduleService coordinates lesson placement on the weekly grid.
type ScheduleService struct {
	store     scheduleStore
	catalog   lessonReferences
	grid      scheduling.Grid
	validator *validator.Validate
	cache     *CacheService
	metrics   *MetricsService
	logger    *zap.Logger
}

// NewScheduleService instantiates ScheduleService.
func NewScheduleService(store scheduleStore, catalog lessonReferences, grid scheduling.Grid, validate *validator.Validate, cache *CacheService, metrics *MetricsService, logger *zap.Logger) *ScheduleService {
	if validate == nil {
		validate = validator.New()
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &ScheduleService{
		store:     store,
		catalog:   catalog,
		grid:      grid,
		validator: validate,
		cache:     cache,
		metrics:   metrics,
		logger:    logger,
	}
}

// Grid exposes the weekly grid lessons are placed on.
func (s *ScheduleService) Grid() scheduling.Grid {
	return s.grid
}

// List returns lessons matching filter together with their positions.
func (s *ScheduleService) List(ctx context.Context, filter models.LessonFilter) ([]models.PositionedLesson, error) {
	filter, err := normalizeDayFilter(s.grid, filter)
	if err != nil {
		return nil, err
	}
	lessons, err := s.store.List(ctx, filter)
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to list lessons")
	}
	return lessons, nil
}

// normalizeDayFilter resolves an abbreviated or mis-cased day to its grid name.
func normalizeDayFilter(grid scheduling.Grid, filter models.LessonFilter) (models.LessonFilter, error) {
	if filter.DayOfWeek == "" {
		return filter, nil
	}
	day, ok := grid.NormalizeDay(filter.DayOfWeek)
	if !ok {
		return filter, appErrors.Clone(appErrors.ErrValidation, fmt.Sprintf("unknown day of week %q", filter.DayOfWeek))
	}
	filter.DayOfWeek = day
	return filter, nil
}

// Get loads a lesson by id.
func (s *ScheduleService) Get(ctx context.Context, id string) (*models.PositionedLesson, error) {
	lesson, err := s.store.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, appErrors.Clone(appErrors.ErrNotFound, "lesson not found")
		}
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to load lesson")
	}
	return lesson, nil
}

// Create places a new lesson unless it duplicates or collides with an existing one.
func (s *ScheduleService) Create(ctx context.Context, req CreateLessonRequest) (*models.PositionedLesson, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, "invalid lesson payload")
	}
	lesson, err := s.candidate(ctx, req)
	if err != nil {
		return nil, err
	}

	res, err := s.store.Add(ctx, lesson)
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to add lesson")
	}
	s.record(ctx, "add", res)
	if !res.OK() {
		return nil, s.rejection(res)
	}
	return &models.PositionedLesson{Position: res.Position, Lesson: res.Lesson}, nil
}

// Check reports whether a lesson could be placed without storing it.
func (s *ScheduleService) Check(ctx context.Context, req CreateLessonRequest) (*LessonCheckResult, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, "invalid lesson payload")
	}
	lesson, err := s.candidate(ctx, req)
	if err != nil {
		return nil, err
	}

	res, err := s.store.Check(ctx, lesson)
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to check lesson")
	}
	return &LessonCheckResult{
		Admissible: res.OK(),
		Outcome:    res.Outcome,
		Lesson:     res.Lesson,
		Conflict:   res.Conflict,
		Duplicate:  res.Duplicate,
	}, nil
}

// BulkCreate places multiple lessons in order. Unless PartialOnError is set a
// single rejection discards the whole batch.
func (s *ScheduleService) BulkCreate(ctx context.Context, req BulkCreateLessonsRequest) (*BulkCreateLessonsResult, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, "invalid bulk lesson payload")
	}

	lessons := make([]models.Lesson, 0, len(req.Items))
	for i, item := range req.Items {
		lesson, err := s.candidate(ctx, item)
		if err != nil {
			appErr := appErrors.FromError(err)
			if appErr.Code == appErrors.ErrValidation.Code {
				return nil, appErrors.WithDetails(appErr, appErr.Err, fmt.Sprintf("item %d: %s", i, appErr.Message), appErr.Details)
			}
			return nil, err
		}
		lessons = append(lessons, lesson)
	}

	results, err := s.store.BulkAdd(ctx, lessons, req.PartialOnError)
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to bulk add lessons")
	}

	result := &BulkCreateLessonsResult{Created: []models.PositionedLesson{}}
	for i, res := range results {
		if res.OK() {
			result.Created = append(result.Created, models.PositionedLesson{Position: res.Position, Lesson: res.Lesson})
			continue
		}
		s.metrics.RecordLessonMutation("add", string(res.Outcome))
		s.logRejection("add", res)
		result.Rejected = append(result.Rejected, LessonRejection{
			Index:     i,
			Outcome:   res.Outcome,
			Lesson:    res.Lesson,
			Conflict:  res.Conflict,
			Duplicate: res.Duplicate,
		})
	}

	if len(result.Rejected) > 0 && !req.PartialOnError {
		return nil, appErrors.WithDetails(appErrors.ErrConflict, nil, "schedule conflicts detected", result.Rejected)
	}
	for range result.Created {
		s.metrics.RecordLessonMutation("add", string(scheduling.OutcomeOK))
	}
	if len(result.Created) > 0 {
		s.changed(ctx)
	}
	return result, nil
}

// ReassignByID moves the lesson with id to another classroom.
func (s *ScheduleService) ReassignByID(ctx context.Context, id string, req ReassignClassroomRequest) (*models.PositionedLesson, error) {
	classroom, err := s.reassignTarget(ctx, req)
	if err != nil {
		return nil, err
	}
	res, err := s.store.ReassignByID(ctx, id, classroom)
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to reassign lesson")
	}
	return s.reassigned(ctx, res)
}

// ReassignAt moves the lesson at position to another classroom.
func (s *ScheduleService) ReassignAt(ctx context.Context, position int, req ReassignClassroomRequest) (*models.PositionedLesson, error) {
	classroom, err := s.reassignTarget(ctx, req)
	if err != nil {
		return nil, err
	}
	res, err := s.store.ReassignAt(ctx, position, classroom)
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to reassign lesson")
	}
	return s.reassigned(ctx, res)
}

// CancelByID removes the lesson with id.
func (s *ScheduleService) CancelByID(ctx context.Context, id string) (*models.Lesson, error) {
	removed, ok, err := s.store.CancelByID(ctx, id)
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to cancel lesson")
	}
	if !ok {
		s.metrics.RecordLessonMutation("cancel", string(scheduling.OutcomeNotFound))
		return nil, appErrors.Clone(appErrors.ErrNotFound, "lesson not found")
	}
	s.metrics.RecordLessonMutation("cancel", string(scheduling.OutcomeOK))
	s.changed(ctx)
	return &removed, nil
}

// CancelAt removes the lesson at position. An invalid position is not an error
// and yields a nil lesson.
func (s *ScheduleService) CancelAt(ctx context.Context, position int) (*models.Lesson, error) {
	removed, ok, err := s.store.CancelAt(ctx, position)
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to cancel lesson")
	}
	if !ok {
		s.metrics.RecordLessonMutation("cancel", string(scheduling.OutcomeOutOfRange))
		s.logger.Debug("cancel ignored", zap.Int("position", position))
		return nil, nil
	}
	s.metrics.RecordLessonMutation("cancel", string(scheduling.OutcomeOK))
	s.changed(ctx)
	return &removed, nil
}

func (s *ScheduleService) reassignTarget(ctx context.Context, req ReassignClassroomRequest) (string, error) {
	req.ClassroomNumber = strings.TrimSpace(req.ClassroomNumber)
	if err := s.validator.Struct(req); err != nil {
		return "", appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, "invalid reassignment payload")
	}
	if _, err := s.catalog.FindClassroom(ctx, req.ClassroomNumber); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return "", appErrors.Clone(appErrors.ErrValidation, fmt.Sprintf("classroom %s not found", req.ClassroomNumber))
		}
		return "", appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to load classroom")
	}
	return req.ClassroomNumber, nil
}

func (s *ScheduleService) reassigned(ctx context.Context, res scheduling.Result) (*models.PositionedLesson, error) {
	s.record(ctx, "reassign", res)
	if !res.OK() {
		return nil, s.rejection(res)
	}
	return &models.PositionedLesson{Position: res.Position, Lesson: res.Lesson}, nil
}

// candidate normalises a request onto the grid and checks its references.
func (s *ScheduleService) candidate(ctx context.Context, req CreateLessonRequest) (models.Lesson, error) {
	day, ok := s.grid.NormalizeDay(req.DayOfWeek)
	if !ok {
		return models.Lesson{}, appErrors.Clone(appErrors.ErrValidation, fmt.Sprintf("unknown day of week %q", req.DayOfWeek))
	}
	slot := strings.TrimSpace(req.TimeSlot)
	if !s.grid.HasTimeSlot(slot) {
		return models.Lesson{}, appErrors.Clone(appErrors.ErrValidation, fmt.Sprintf("unknown time slot %q", req.TimeSlot))
	}

	lesson := models.Lesson{
		CourseID:        req.CourseID,
		ProfessorID:     req.ProfessorID,
		ClassroomNumber: strings.TrimSpace(req.ClassroomNumber),
		DayOfWeek:       day,
		TimeSlot:        slot,
	}

	professor, course, classroom, err := s.catalog.LessonRefsExist(ctx, lesson)
	if err != nil {
		return models.Lesson{}, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to check lesson references")
	}
	var missing []string
	if !professor {
		missing = append(missing, fmt.Sprintf("professor %d", lesson.ProfessorID))
	}
	if !course {
		missing = append(missing, fmt.Sprintf("course %d", lesson.CourseID))
	}
	if !classroom {
		missing = append(missing, fmt.Sprintf("classroom %s", lesson.ClassroomNumber))
	}
	if len(missing) > 0 {
		return models.Lesson{}, appErrors.WithDetails(appErrors.ErrValidation, nil, "lesson references unknown entities: "+strings.Join(missing, ", "), missing)
	}
	return lesson, nil
}

func (s *ScheduleService) record(ctx context.Context, operation string, res scheduling.Result) {
	s.metrics.RecordLessonMutation(operation, string(res.Outcome))
	if !res.OK() {
		s.logRejection(operation, res)
		return
	}
	s.changed(ctx)
}

// changed runs after every committed mutation.
func (s *ScheduleService) changed(ctx context.Context) {
	s.cache.InvalidateAnalytics(ctx)
	if lessons, err := s.store.Lessons(ctx); err == nil {
		s.metrics.SetScheduledLessons(len(lessons))
	}
}

func (s *ScheduleService) logRejection(operation string, res scheduling.Result) {
	fields := []zap.Field{
		zap.String("operation", operation),
		zap.String("outcome", string(res.Outcome)),
		zap.Int("course_id", res.Lesson.CourseID),
		zap.Int("professor_id", res.Lesson.ProfessorID),
		zap.String("classroom", res.Lesson.ClassroomNumber),
		zap.String("day_of_week", res.Lesson.DayOfWeek),
		zap.String("time_slot", res.Lesson.TimeSlot),
	}
	if res.Conflict != nil {
		fields = append(fields, zap.Int("conflict_position", res.Conflict.Position))
	}
	s.logger.Warn("lesson rejected", fields...)
}

// rejection maps a failed mutation onto an API error.
func (s *ScheduleService) rejection(res scheduling.Result) error {
	switch res.Outcome {
	case scheduling.OutcomeDuplicate:
		return appErrors.WithDetails(appErrors.ErrDuplicateLesson, nil, "lesson already scheduled", res.Duplicate)
	case scheduling.OutcomeProfessorConflict, scheduling.OutcomeClassroomConflict:
		return s.wrapConflict(res.Conflict)
	case scheduling.OutcomeOutOfRange:
		return appErrors.Clone(appErrors.ErrNotFound, fmt.Sprintf("no lesson at position %d", res.Position))
	case scheduling.OutcomeNotFound:
		return appErrors.Clone(appErrors.ErrNotFound, "lesson not found")
	default:
		return appErrors.Clone(appErrors.ErrInternal, fmt.Sprintf("unexpected schedule outcome %q", res.Outcome))
	}
}

func (s *ScheduleService) wrapConflict(conflict *models.ScheduleConflict) error {
	message := "classroom already booked for this slot"
	if conflict.Type == models.ConflictProfessor {
		message = "professor already teaching in this slot"
	}
	domainErr := &models.ScheduleConflictError{Type: string(conflict.Type), Message: message, Conflict: *conflict}
	return appErrors.WithDetails(appErrors.ErrConflict, domainErr, fmt.Sprintf("schedule conflict: %s", message), domainErr)
}
