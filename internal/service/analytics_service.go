package service

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"go.uber.org/zap"

	"github.com/noah-isme/lesson-scheduler/internal/models"
	"github.com/noah-isme/lesson-scheduler/internal/repository"
	"github.com/noah-isme/lesson-scheduler/internal/scheduling"
	appErrors "github.com/noah-isme/lesson-scheduler/pkg/errors"
)

// LessonSource exposes a snapshot of the committed schedule.
type LessonSource interface {
	Lessons(ctx context.Context) ([]models.Lesson, error)
}

// AnalyticsCatalog is the reference data read by AnalyticsService.
type AnalyticsCatalog interface {
	FindProfessor(ctx context.Context, id int) (*models.Professor, error)
	FindClassroom(ctx context.Context, number string) (*models.Classroom, error)
	ListClassrooms(ctx context.Context) ([]models.Classroom, error)
	ListCourses(ctx context.Context) ([]models.Course, error)
}

// AnalyticsService answers read-only questions about the schedule with cache integration.
// Every method reports whether data originated from cache.
type AnalyticsService struct {
	lessons LessonSource
	catalog AnalyticsCatalog
	grid    scheduling.Grid
	cache   *CacheService
	metrics *MetricsService
	logger  *zap.Logger
}

// NewAnalyticsService constructs an analytics service.
func NewAnalyticsService(lessons LessonSource, catalog AnalyticsCatalog, grid scheduling.Grid, cache *CacheService, metrics *MetricsService, logger *zap.Logger) *AnalyticsService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &AnalyticsService{lessons: lessons, catalog: catalog, grid: grid, cache: cache, metrics: metrics, logger: logger}
}

// AvailableClassrooms lists classrooms free at the given day and time slot.
func (s *AnalyticsService) AvailableClassrooms(ctx context.Context, day, slot string) (*models.AvailableClassrooms, bool, error) {
	normalized, ok := s.grid.NormalizeDay(day)
	if !ok {
		return nil, false, appErrors.Clone(appErrors.ErrValidation, fmt.Sprintf("unknown day of week %q", day))
	}
	slot = strings.TrimSpace(slot)
	if !s.grid.HasTimeSlot(slot) {
		return nil, false, appErrors.Clone(appErrors.ErrValidation, fmt.Sprintf("unknown time slot %q", slot))
	}

	cacheKey := makeAnalyticsCacheKey("available", normalized, slot)
	result, hit, err := cachedLoad(ctx, s.cache, cacheKey, func() (models.AvailableClassrooms, error) {
		classrooms, err := s.catalog.ListClassrooms(ctx)
		if err != nil {
			return models.AvailableClassrooms{}, err
		}
		lessons, err := s.lessons.Lessons(ctx)
		if err != nil {
			return models.AvailableClassrooms{}, err
		}
		return models.AvailableClassrooms{
			DayOfWeek:  normalized,
			TimeSlot:   slot,
			Classrooms: scheduling.AvailableClassrooms(classrooms, lessons, slot, normalized),
		}, nil
	})
	if err != nil {
		return nil, false, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to compute available classrooms")
	}
	return &result, hit, nil
}

// ProfessorSchedule returns every lesson taught by a professor in schedule order.
func (s *AnalyticsService) ProfessorSchedule(ctx context.Context, professorID int) ([]models.Lesson, bool, error) {
	if _, err := s.catalog.FindProfessor(ctx, professorID); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, false, appErrors.Clone(appErrors.ErrNotFound, "professor not found")
		}
		return nil, false, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to load professor")
	}

	cacheKey := makeAnalyticsCacheKey("professor", strconv.Itoa(professorID))
	lessons, hit, err := cachedLoad(ctx, s.cache, cacheKey, func() ([]models.Lesson, error) {
		all, err := s.lessons.Lessons(ctx)
		if err != nil {
			return nil, err
		}
		return scheduling.ProfessorSchedule(professorID, all), nil
	})
	if err != nil {
		return nil, false, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to load professor schedule")
	}
	return lessons, hit, nil
}

// ClassroomUtilization reports how much of the weekly grid one classroom is booked for.
func (s *AnalyticsService) ClassroomUtilization(ctx context.Context, number string) (*models.ClassroomUtilization, bool, error) {
	number = strings.TrimSpace(number)
	if _, err := s.catalog.FindClassroom(ctx, number); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, false, appErrors.Clone(appErrors.ErrNotFound, "classroom not found")
		}
		return nil, false, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to load classroom")
	}

	cacheKey := makeAnalyticsCacheKey("utilization", number)
	result, hit, err := cachedLoad(ctx, s.cache, cacheKey, func() (models.ClassroomUtilization, error) {
		lessons, err := s.lessons.Lessons(ctx)
		if err != nil {
			return models.ClassroomUtilization{}, err
		}
		return s.utilization(number, lessons), nil
	})
	if err != nil {
		return nil, false, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to compute utilization")
	}
	return &result, hit, nil
}

// UtilizationReport computes utilization for every classroom in registration order.
func (s *AnalyticsService) UtilizationReport(ctx context.Context) ([]models.ClassroomUtilization, bool, error) {
	cacheKey := makeAnalyticsCacheKey("utilization-report")
	report, hit, err := cachedLoad(ctx, s.cache, cacheKey, func() ([]models.ClassroomUtilization, error) {
		classrooms, err := s.catalog.ListClassrooms(ctx)
		if err != nil {
			return nil, err
		}
		lessons, err := s.lessons.Lessons(ctx)
		if err != nil {
			return nil, err
		}
		out := make([]models.ClassroomUtilization, 0, len(classrooms))
		for _, c := range classrooms {
			out = append(out, s.utilization(c.Number, lessons))
		}
		return out, nil
	})
	if err != nil {
		return nil, false, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to compute utilization report")
	}
	return report, hit, nil
}

// MostPopularCourseType returns the most common course type. Type is nil for an empty catalog.
func (s *AnalyticsService) MostPopularCourseType(ctx context.Context) (*models.CourseTypePopularity, bool, error) {
	cacheKey := makeAnalyticsCacheKey("course-types")
	result, hit, err := cachedLoad(ctx, s.cache, cacheKey, func() (models.CourseTypePopularity, error) {
		courses, err := s.catalog.ListCourses(ctx)
		if err != nil {
			return models.CourseTypePopularity{}, err
		}
		popularity := models.CourseTypePopularity{Counts: scheduling.CountCourseTypes(courses)}
		if top, ok := scheduling.MostPopularCourseType(courses); ok {
			popularity.Type = &top
		}
		return popularity, nil
	})
	if err != nil {
		return nil, false, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to compute course type popularity")
	}
	return &result, hit, nil
}

// SystemMetrics returns system instrumentation snapshot.
func (s *AnalyticsService) SystemMetrics() models.SystemMetrics {
	return s.metrics.Snapshot()
}

func (s *AnalyticsService) utilization(number string, lessons []models.Lesson) models.ClassroomUtilization {
	capacity := s.grid.Capacity()
	if capacity <= 0 {
		capacity = scheduling.DefaultWeeklyCapacity
	}
	return models.ClassroomUtilization{
		ClassroomNumber: number,
		Lessons:         scheduling.LessonsInClassroom(number, lessons),
		WeeklyCapacity:  capacity,
		Percentage:      scheduling.UtilizationWithCapacity(number, lessons, capacity),
	}
}

func makeAnalyticsCacheKey(parts ...string) string {
	var builder strings.Builder
	builder.Grow(len(parts) * 16)
	builder.WriteString("analytics")
	for _, part := range parts {
		if part == "" {
			continue
		}
		builder.WriteByte(':')
		builder.WriteString(strings.ReplaceAll(part, ":", "|"))
	}
	return builder.String()
}
