package models

import "time"

// ClassroomUtilization reports how much of the weekly grid a classroom is booked for.
type ClassroomUtilization struct {
	ClassroomNumber string  `json:"classroom_number" csv:"classroom_number"`
	Lessons         int     `json:"lessons" csv:"lessons"`
	WeeklyCapacity  int     `json:"weekly_capacity" csv:"weekly_capacity"`
	Percentage      float64 `json:"percentage" csv:"percentage"`
}

// AvailableClassrooms lists free rooms for a (day, time slot).
type AvailableClassrooms struct {
	DayOfWeek  string   `json:"day_of_week"`
	TimeSlot   string   `json:"time_slot"`
	Classrooms []string `json:"classrooms"`
}

// CourseTypePopularity is the most common course type across the catalog.
type CourseTypePopularity struct {
	Type   *CourseType        `json:"type"`
	Counts map[CourseType]int `json:"counts"`
}

// SystemMetrics is a lightweight snapshot of service instrumentation.
type SystemMetrics struct {
	CacheHitRatio            float64   `json:"cache_hit_ratio"`
	CacheHits                uint64    `json:"cache_hits"`
	CacheMisses              uint64    `json:"cache_misses"`
	RequestsTotal            uint64    `json:"requests_total"`
	AverageRequestDurationMs float64   `json:"avg_request_duration_ms"`
	LessonsAdded             uint64    `json:"lessons_added"`
	LessonsRejected          uint64    `json:"lessons_rejected"`
	Goroutines               int       `json:"goroutines"`
	GeneratedAt              time.Time `json:"generated_at"`
}
