package repository

import (
	"context"
	"sync"

	"github.com/noah-isme/lesson-scheduler/internal/models"
	"github.com/noah-isme/lesson-scheduler/internal/scheduling"
)

// ScheduleRepository owns the weekly schedule and is its only mutation surface.
// Each mutation runs validation and commit under one write lock so concurrent
// callers cannot interleave between the check and the act.
type ScheduleRepository struct {
	mu       sync.RWMutex
	schedule *scheduling.Schedule
}

// NewScheduleRepository creates an empty schedule store.
func NewScheduleRepository(opts ...scheduling.Option) *ScheduleRepository {
	return &ScheduleRepository{schedule: scheduling.New(opts...)}
}

// Add places a lesson if it is neither a duplicate nor a conflict.
func (r *ScheduleRepository) Add(ctx context.Context, lesson models.Lesson) (scheduling.Result, error) {
	if err := ctx.Err(); err != nil {
		return scheduling.Result{}, err
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.schedule.Add(lesson), nil
}

// Check evaluates a lesson against the current schedule without storing it.
func (r *ScheduleRepository) Check(ctx context.Context, lesson models.Lesson) (scheduling.Result, error) {
	if err := ctx.Err(); err != nil {
		return scheduling.Result{}, err
	}
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.schedule.Check(lesson), nil
}

// BulkAdd places lessons in order. Without partial every lesson must fit or
// none is kept; with partial the admissible lessons stay and the rest are reported.
func (r *ScheduleRepository) BulkAdd(ctx context.Context, lessons []models.Lesson, partial bool) ([]scheduling.Result, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	r.mu.Lock()
	defer r.mu.Unlock()

	results := make([]scheduling.Result, 0, len(lessons))
	added := 0
	failed := false
	for _, l := range lessons {
		res := r.schedule.Add(l)
		results = append(results, res)
		if res.OK() {
			added++
		} else {
			failed = true
		}
	}

	if failed && !partial {
		for i := 0; i < added; i++ {
			r.schedule.Cancel(r.schedule.Len() - 1)
		}
	}
	return results, nil
}

// ReassignAt changes the classroom of the lesson at position.
func (r *ScheduleRepository) ReassignAt(ctx context.Context, position int, classroom string) (scheduling.Result, error) {
	if err := ctx.Err(); err != nil {
		return scheduling.Result{}, err
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.schedule.Reassign(position, classroom), nil
}

// ReassignByID changes the classroom of the lesson with the given id.
func (r *ScheduleRepository) ReassignByID(ctx context.Context, id, classroom string) (scheduling.Result, error) {
	if err := ctx.Err(); err != nil {
		return scheduling.Result{}, err
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.schedule.ReassignByID(id, classroom), nil
}

// CancelAt removes the lesson at position. The boolean is false when the position was invalid.
func (r *ScheduleRepository) CancelAt(ctx context.Context, position int) (models.Lesson, bool, error) {
	if err := ctx.Err(); err != nil {
		return models.Lesson{}, false, err
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	removed, ok := r.schedule.Cancel(position)
	return removed, ok, nil
}

// CancelByID removes the lesson with the given id.
func (r *ScheduleRepository) CancelByID(ctx context.Context, id string) (models.Lesson, bool, error) {
	if err := ctx.Err(); err != nil {
		return models.Lesson{}, false, err
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	removed, ok := r.schedule.CancelByID(id)
	return removed, ok, nil
}

// FindByID loads a lesson together with its current position.
func (r *ScheduleRepository) FindByID(ctx context.Context, id string) (*models.PositionedLesson, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	r.mu.RLock()
	defer r.mu.RUnlock()
	found, ok := r.schedule.Find(id)
	if !ok {
		return nil, ErrNotFound
	}
	return &found, nil
}

// List returns the lessons matching filter in schedule order.
func (r *ScheduleRepository) List(ctx context.Context, filter models.LessonFilter) ([]models.PositionedLesson, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]models.PositionedLesson, 0, r.schedule.Len())
	for _, l := range r.schedule.Positioned() {
		if filter.Matches(l.Lesson) {
			out = append(out, l)
		}
	}
	return out, nil
}

// Lessons returns a snapshot of the whole schedule.
func (r *ScheduleRepository) Lessons(ctx context.Context) ([]models.Lesson, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.schedule.Lessons(), nil
}
