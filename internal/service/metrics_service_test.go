package service

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestMetricsServiceSnapshot(t *testing.T) {
	m := NewMetricsService()

	m.ObserveHTTPRequest(http.MethodGet, "/lessons", http.StatusOK, 20*time.Millisecond)
	m.ObserveHTTPRequest(http.MethodPost, "/lessons", http.StatusConflict, 40*time.Millisecond)
	m.RecordCacheOperation(true, time.Millisecond)
	m.RecordCacheOperation(false, time.Millisecond)
	m.RecordCacheOperation(true, time.Millisecond)
	m.RecordLessonMutation("add", "ok")
	m.RecordLessonMutation("add", "professor_conflict")
	m.RecordLessonMutation("reassign", "classroom_conflict")

	snap := m.Snapshot()
	assert.Equal(t, uint64(2), snap.RequestsTotal)
	assert.InDelta(t, 30.0, snap.AverageRequestDurationMs, 0.001)
	assert.Equal(t, uint64(2), snap.CacheHits)
	assert.Equal(t, uint64(1), snap.CacheMisses)
	assert.InDelta(t, 2.0/3.0, snap.CacheHitRatio, 0.0001)
	assert.Equal(t, uint64(1), snap.LessonsAdded)
	assert.Equal(t, uint64(1), snap.LessonsRejected)
	assert.Positive(t, snap.Goroutines)
}

func TestMetricsServiceHandlerExposesScheduleCollectors(t *testing.T) {
	m := NewMetricsService()
	m.RecordLessonMutation("cancel", "ok")
	m.SetScheduledLessons(3)

	w := httptest.NewRecorder()
	m.Handler().ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/metrics", nil))

	body := w.Body.String()
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, body, `schedule_lesson_mutations_total{operation="cancel",outcome="ok"} 1`)
	assert.Contains(t, body, "schedule_lessons 3")
}

func TestMetricsServiceNilReceiver(t *testing.T) {
	var m *MetricsService

	assert.NotPanics(t, func() {
		m.ObserveHTTPRequest(http.MethodGet, "/", http.StatusOK, time.Millisecond)
		m.RecordCacheOperation(true, time.Millisecond)
		m.ObserveCacheWrite(time.Millisecond)
		m.RecordLessonMutation("add", "ok")
		m.SetScheduledLessons(1)
	})
	assert.Zero(t, m.Snapshot().RequestsTotal)
}
