package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"testing"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"

	"github.com/noah-isme/lesson-scheduler/internal/models"
	"github.com/noah-isme/lesson-scheduler/internal/repository"
	"github.com/noah-isme/lesson-scheduler/internal/scheduling"
	appErrors "github.com/noah-isme/lesson-scheduler/pkg/errors"
)

var (
	testDays  = []string{"Monday", "Tuesday", "Wednesday", "Thursday", "Friday"}
	testSlots = []string{"8:30-10:00", "10:15-11:45", "12:15-13:45", "14:00-15:30", "15:45-17:15"}
)

type stubCacheRepo struct {
	store         map[string][]byte
	invalidations []string
}

func (s *stubCacheRepo) Get(_ context.Context, key string, dest interface{}) error {
	payload, ok := s.store[key]
	if !ok {
		return appErrors.ErrCacheMiss
	}
	return json.Unmarshal(payload, dest)
}

func (s *stubCacheRepo) Set(_ context.Context, key string, value interface{}, _ time.Duration) error {
	if s.store == nil {
		s.store = make(map[string][]byte)
	}
	payload, err := json.Marshal(value)
	if err != nil {
		return err
	}
	s.store[key] = payload
	return nil
}

func (s *stubCacheRepo) DeleteByPattern(_ context.Context, pattern string) error {
	s.invalidations = append(s.invalidations, pattern)
	prefix := strings.TrimSuffix(pattern, "*")
	for key := range s.store {
		if strings.HasPrefix(key, prefix) {
			delete(s.store, key)
		}
	}
	return nil
}

type scheduleFixture struct {
	catalog   *repository.CatalogRepository
	store     *repository.ScheduleRepository
	cacheRepo *stubCacheRepo
	cache     *CacheService
	metrics   *MetricsService
	schedule  *ScheduleService
	logs      *observer.ObservedLogs
}

func newScheduleFixture(t *testing.T) *scheduleFixture {
	t.Helper()
	ctx := context.Background()

	catalog := repository.NewCatalogRepository()
	for _, p := range []models.Professor{{ID: 1, Name: "Ada Lovelace", Department: "CS"}, {ID: 2, Name: "Alan Turing", Department: "CS"}} {
		require.NoError(t, catalog.CreateProfessor(ctx, p))
	}
	for _, c := range []models.Classroom{{Number: "101", Capacity: 30}, {Number: "102", Capacity: 20, HasProjector: true}, {Number: "201", Capacity: 60}} {
		require.NoError(t, catalog.CreateClassroom(ctx, c))
	}
	for _, c := range []models.Course{{ID: 1, Name: "Algorithms", Type: models.CourseTypeLecture}, {ID: 2, Name: "Databases", Type: models.CourseTypeLab}} {
		require.NoError(t, catalog.CreateCourse(ctx, c))
	}

	core, logs := observer.New(zap.DebugLevel)
	logger := zap.New(core)

	counter := 0
	store := repository.NewScheduleRepository(scheduling.WithIDGenerator(func() string {
		counter++
		return fmt.Sprintf("lesson-%d", counter)
	}))
	metrics := NewMetricsService()
	cacheRepo := &stubCacheRepo{}
	cache := NewCacheService(cacheRepo, metrics, time.Minute, logger, true)
	grid := scheduling.NewGrid(testDays, testSlots)

	return &scheduleFixture{
		catalog:   catalog,
		store:     store,
		cacheRepo: cacheRepo,
		cache:     cache,
		metrics:   metrics,
		schedule:  NewScheduleService(store, catalog, grid, validator.New(), cache, metrics, logger),
		logs:      logs,
	}
}

func lessonRequest(course, professor int, room, day, slot string) CreateLessonRequest {
	return CreateLessonRequest{CourseID: course, ProfessorID: professor, ClassroomNumber: room, DayOfWeek: day, TimeSlot: slot}
}

func appErrorCode(t *testing.T, err error) string {
	t.Helper()
	var appErr *appErrors.Error
	require.True(t, errors.As(err, &appErr), "expected *errors.Error, got %T", err)
	return appErr.Code
}

func TestScheduleServiceCreate(t *testing.T) {
	f := newScheduleFixture(t)
	ctx := context.Background()

	lesson, err := f.schedule.Create(ctx, lessonRequest(1, 1, "101", "mon", "8:30-10:00"))
	require.NoError(t, err)
	assert.Equal(t, 0, lesson.Position)
	assert.Equal(t, "lesson-1", lesson.ID)
	assert.Equal(t, "Monday", lesson.DayOfWeek)
	assert.Equal(t, []string{analyticsCachePattern}, f.cacheRepo.invalidations)
	assert.Equal(t, uint64(1), f.metrics.Snapshot().LessonsAdded)
}

func TestScheduleServiceCreateValidation(t *testing.T) {
	f := newScheduleFixture(t)
	ctx := context.Background()

	cases := map[string]CreateLessonRequest{
		"missing fields":    {},
		"unknown day":       lessonRequest(1, 1, "101", "Sunday", "8:30-10:00"),
		"unknown slot":      lessonRequest(1, 1, "101", "Monday", "7:00-8:00"),
		"unknown professor": lessonRequest(1, 9, "101", "Monday", "8:30-10:00"),
		"unknown course":    lessonRequest(9, 1, "101", "Monday", "8:30-10:00"),
		"unknown classroom": lessonRequest(1, 1, "999", "Monday", "8:30-10:00"),
	}
	for name, req := range cases {
		t.Run(name, func(t *testing.T) {
			_, err := f.schedule.Create(ctx, req)
			require.Error(t, err)
			assert.Equal(t, appErrors.ErrValidation.Code, appErrorCode(t, err))
		})
	}

	lessons, err := f.store.Lessons(ctx)
	require.NoError(t, err)
	assert.Empty(t, lessons)
}

func TestScheduleServiceCreateDuplicate(t *testing.T) {
	f := newScheduleFixture(t)
	ctx := context.Background()

	_, err := f.schedule.Create(ctx, lessonRequest(1, 1, "101", "Monday", "8:30-10:00"))
	require.NoError(t, err)

	_, err = f.schedule.Create(ctx, lessonRequest(1, 1, "102", "Monday", "8:30-10:00"))
	require.Error(t, err)
	assert.Equal(t, appErrors.ErrDuplicateLesson.Code, appErrorCode(t, err))

	appErr := appErrors.FromError(err)
	dup, ok := appErr.Details.(*models.PositionedLesson)
	require.True(t, ok)
	assert.Equal(t, 0, dup.Position)
	assert.Equal(t, uint64(1), f.metrics.Snapshot().LessonsRejected)
	assert.Equal(t, 1, f.logs.FilterMessage("lesson rejected").Len())
}

func TestScheduleServiceCreateConflicts(t *testing.T) {
	f := newScheduleFixture(t)
	ctx := context.Background()

	_, err := f.schedule.Create(ctx, lessonRequest(1, 1, "101", "Monday", "8:30-10:00"))
	require.NoError(t, err)

	_, err = f.schedule.Create(ctx, lessonRequest(2, 1, "102", "Monday", "8:30-10:00"))
	require.Error(t, err)
	assert.Equal(t, appErrors.ErrConflict.Code, appErrorCode(t, err))
	var conflictErr *models.ScheduleConflictError
	require.True(t, errors.As(err, &conflictErr))
	assert.Equal(t, models.ConflictProfessor, conflictErr.Conflict.Type)

	_, err = f.schedule.Create(ctx, lessonRequest(2, 2, "101", "Monday", "8:30-10:00"))
	require.True(t, errors.As(err, &conflictErr))
	assert.Equal(t, models.ConflictClassroom, conflictErr.Conflict.Type)
	assert.Equal(t, "101", conflictErr.Conflict.Lesson.ClassroomNumber)
}

func TestScheduleServiceCheckDoesNotMutate(t *testing.T) {
	f := newScheduleFixture(t)
	ctx := context.Background()

	_, err := f.schedule.Create(ctx, lessonRequest(1, 1, "101", "Monday", "8:30-10:00"))
	require.NoError(t, err)

	verdict, err := f.schedule.Check(ctx, lessonRequest(2, 2, "101", "Monday", "8:30-10:00"))
	require.NoError(t, err)
	assert.False(t, verdict.Admissible)
	assert.Equal(t, scheduling.OutcomeClassroomConflict, verdict.Outcome)
	require.NotNil(t, verdict.Conflict)

	verdict, err = f.schedule.Check(ctx, lessonRequest(2, 2, "102", "Monday", "8:30-10:00"))
	require.NoError(t, err)
	assert.True(t, verdict.Admissible)

	lessons, err := f.store.Lessons(ctx)
	require.NoError(t, err)
	assert.Len(t, lessons, 1)
}

func TestScheduleServiceBulkCreateAllOrNothing(t *testing.T) {
	f := newScheduleFixture(t)
	ctx := context.Background()

	req := BulkCreateLessonsRequest{Items: []CreateLessonRequest{
		lessonRequest(1, 1, "101", "Monday", "8:30-10:00"),
		lessonRequest(2, 2, "101", "Monday", "8:30-10:00"),
	}}
	_, err := f.schedule.BulkCreate(ctx, req)
	require.Error(t, err)
	assert.Equal(t, appErrors.ErrConflict.Code, appErrorCode(t, err))
	rejected, ok := appErrors.FromError(err).Details.([]LessonRejection)
	require.True(t, ok)
	require.Len(t, rejected, 1)
	assert.Equal(t, 1, rejected[0].Index)
	assert.Equal(t, scheduling.OutcomeClassroomConflict, rejected[0].Outcome)

	lessons, err := f.store.Lessons(ctx)
	require.NoError(t, err)
	assert.Empty(t, lessons)
	assert.Empty(t, f.cacheRepo.invalidations)
}

func TestScheduleServiceBulkCreatePartial(t *testing.T) {
	f := newScheduleFixture(t)
	ctx := context.Background()

	req := BulkCreateLessonsRequest{PartialOnError: true, Items: []CreateLessonRequest{
		lessonRequest(1, 1, "101", "Monday", "8:30-10:00"),
		lessonRequest(1, 1, "101", "Monday", "8:30-10:00"),
		lessonRequest(2, 2, "102", "Tuesday", "10:15-11:45"),
	}}
	result, err := f.schedule.BulkCreate(ctx, req)
	require.NoError(t, err)
	require.Len(t, result.Created, 2)
	assert.Equal(t, 1, result.Created[1].Position)
	require.Len(t, result.Rejected, 1)
	assert.Equal(t, scheduling.OutcomeDuplicate, result.Rejected[0].Outcome)
	assert.Equal(t, uint64(2), f.metrics.Snapshot().LessonsAdded)
}

func TestScheduleServiceBulkCreateInvalidItem(t *testing.T) {
	f := newScheduleFixture(t)

	_, err := f.schedule.BulkCreate(context.Background(), BulkCreateLessonsRequest{Items: []CreateLessonRequest{
		lessonRequest(1, 1, "101", "Monday", "8:30-10:00"),
		lessonRequest(1, 1, "101", "Caturday", "8:30-10:00"),
	}})
	require.Error(t, err)
	assert.Equal(t, appErrors.ErrValidation.Code, appErrorCode(t, err))
	assert.Contains(t, err.Error(), "item 1")
}

func TestScheduleServiceReassign(t *testing.T) {
	f := newScheduleFixture(t)
	ctx := context.Background()

	first, err := f.schedule.Create(ctx, lessonRequest(1, 1, "101", "Monday", "8:30-10:00"))
	require.NoError(t, err)
	_, err = f.schedule.Create(ctx, lessonRequest(2, 2, "102", "Monday", "8:30-10:00"))
	require.NoError(t, err)

	_, err = f.schedule.ReassignByID(ctx, first.ID, ReassignClassroomRequest{ClassroomNumber: "102"})
	require.Error(t, err)
	assert.Equal(t, appErrors.ErrConflict.Code, appErrorCode(t, err))

	moved, err := f.schedule.ReassignByID(ctx, first.ID, ReassignClassroomRequest{ClassroomNumber: "201"})
	require.NoError(t, err)
	assert.Equal(t, "201", moved.ClassroomNumber)
	assert.Equal(t, first.ID, moved.ID)
	assert.Equal(t, 0, moved.Position)

	same, err := f.schedule.ReassignAt(ctx, 1, ReassignClassroomRequest{ClassroomNumber: "102"})
	require.NoError(t, err)
	assert.Equal(t, "102", same.ClassroomNumber)
}

func TestScheduleServiceReassignErrors(t *testing.T) {
	f := newScheduleFixture(t)
	ctx := context.Background()

	_, err := f.schedule.ReassignAt(ctx, 3, ReassignClassroomRequest{ClassroomNumber: "101"})
	assert.Equal(t, appErrors.ErrNotFound.Code, appErrorCode(t, err))

	_, err = f.schedule.ReassignByID(ctx, "nope", ReassignClassroomRequest{ClassroomNumber: "101"})
	assert.Equal(t, appErrors.ErrNotFound.Code, appErrorCode(t, err))

	_, err = f.schedule.ReassignAt(ctx, 0, ReassignClassroomRequest{ClassroomNumber: "404"})
	assert.Equal(t, appErrors.ErrValidation.Code, appErrorCode(t, err))
}

func TestScheduleServiceCancel(t *testing.T) {
	f := newScheduleFixture(t)
	ctx := context.Background()

	first, err := f.schedule.Create(ctx, lessonRequest(1, 1, "101", "Monday", "8:30-10:00"))
	require.NoError(t, err)
	second, err := f.schedule.Create(ctx, lessonRequest(2, 2, "102", "Monday", "8:30-10:00"))
	require.NoError(t, err)

	removed, err := f.schedule.CancelAt(ctx, 7)
	require.NoError(t, err)
	assert.Nil(t, removed)

	removed, err = f.schedule.CancelByID(ctx, first.ID)
	require.NoError(t, err)
	assert.Equal(t, first.ID, removed.ID)

	shifted, err := f.schedule.Get(ctx, second.ID)
	require.NoError(t, err)
	assert.Equal(t, 0, shifted.Position)

	_, err = f.schedule.CancelByID(ctx, first.ID)
	assert.Equal(t, appErrors.ErrNotFound.Code, appErrorCode(t, err))

	removed, err = f.schedule.CancelAt(ctx, 0)
	require.NoError(t, err)
	assert.Equal(t, second.ID, removed.ID)
}

func TestScheduleServiceListFilters(t *testing.T) {
	f := newScheduleFixture(t)
	ctx := context.Background()

	_, err := f.schedule.Create(ctx, lessonRequest(1, 1, "101", "Monday", "8:30-10:00"))
	require.NoError(t, err)
	_, err = f.schedule.Create(ctx, lessonRequest(2, 2, "102", "Tuesday", "8:30-10:00"))
	require.NoError(t, err)

	lessons, err := f.schedule.List(ctx, models.LessonFilter{DayOfWeek: "tue"})
	require.NoError(t, err)
	require.Len(t, lessons, 1)
	assert.Equal(t, 2, lessons[0].ProfessorID)
	assert.Equal(t, 1, lessons[0].Position)

	_, err = f.schedule.List(ctx, models.LessonFilter{DayOfWeek: "xx"})
	assert.Equal(t, appErrors.ErrValidation.Code, appErrorCode(t, err))

	_, err = f.schedule.Get(ctx, "missing")
	assert.Equal(t, appErrors.ErrNotFound.Code, appErrorCode(t, err))
}

type failingStore struct {
	scheduleStore
	err error
}

func (f failingStore) Add(context.Context, models.Lesson) (scheduling.Result, error) {
	return scheduling.Result{}, f.err
}

func TestScheduleServiceStoreFailure(t *testing.T) {
	f := newScheduleFixture(t)
	svc := NewScheduleService(failingStore{err: context.Canceled}, f.catalog, scheduling.NewGrid(testDays, testSlots), nil, nil, nil, nil)

	_, err := svc.Create(context.Background(), lessonRequest(1, 1, "101", "Monday", "8:30-10:00"))
	require.Error(t, err)
	assert.Equal(t, appErrors.ErrInternal.Code, appErrorCode(t, err))
	assert.ErrorIs(t, err, context.Canceled)
}
