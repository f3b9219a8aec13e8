package handler

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/noah-isme/lesson-scheduler/internal/middleware"
	"github.com/noah-isme/lesson-scheduler/internal/models"
	appErrors "github.com/noah-isme/lesson-scheduler/pkg/errors"
	"github.com/noah-isme/lesson-scheduler/pkg/response"
)

type analyticsService interface {
	AvailableClassrooms(ctx context.Context, day, slot string) (*models.AvailableClassrooms, bool, error)
	ClassroomUtilization(ctx context.Context, number string) (*models.ClassroomUtilization, bool, error)
	UtilizationReport(ctx context.Context) ([]models.ClassroomUtilization, bool, error)
	MostPopularCourseType(ctx context.Context) (*models.CourseTypePopularity, bool, error)
	SystemMetrics() models.SystemMetrics
}

// AnalyticsHandler exposes read-only schedule analytics.
type AnalyticsHandler struct {
	analytics analyticsService
}

// NewAnalyticsHandler constructs the analytics handler.
func NewAnalyticsHandler(analytics analyticsService) *AnalyticsHandler {
	return &AnalyticsHandler{analytics: analytics}
}

// AvailableClassrooms godoc
// @Summary Free classrooms for a day and time slot
// @Tags Analytics
// @Produce json
// @Param day query string true "Day of week"
// @Param slot query string true "Time slot"
// @Success 200 {object} response.Envelope
// @Failure 400 {object} response.Envelope
// @Router /analytics/available-classrooms [get]
func (h *AnalyticsHandler) AvailableClassrooms(c *gin.Context) {
	day, slot := c.Query("day"), c.Query("slot")
	if day == "" || slot == "" {
		response.Error(c, appErrors.Clone(appErrors.ErrValidation, "day and slot are required"))
		return
	}
	result, cacheHit, err := h.analytics.AvailableClassrooms(c.Request.Context(), day, slot)
	h.respond(c, result, cacheHit, err)
}

// Utilization godoc
// @Summary Utilization of every classroom
// @Tags Analytics
// @Produce json
// @Success 200 {object} response.Envelope
// @Router /analytics/utilization [get]
func (h *AnalyticsHandler) Utilization(c *gin.Context) {
	result, cacheHit, err := h.analytics.UtilizationReport(c.Request.Context())
	h.respond(c, result, cacheHit, err)
}

// ClassroomUtilization godoc
// @Summary Utilization of one classroom
// @Tags Analytics
// @Produce json
// @Param number path string true "Classroom number"
// @Success 200 {object} response.Envelope
// @Failure 404 {object} response.Envelope
// @Router /analytics/utilization/{number} [get]
func (h *AnalyticsHandler) ClassroomUtilization(c *gin.Context) {
	result, cacheHit, err := h.analytics.ClassroomUtilization(c.Request.Context(), c.Param("number"))
	h.respond(c, result, cacheHit, err)
}

// PopularCourseType godoc
// @Summary Most common course type
// @Tags Analytics
// @Produce json
// @Success 200 {object} response.Envelope
// @Router /analytics/popular-course-type [get]
func (h *AnalyticsHandler) PopularCourseType(c *gin.Context) {
	result, cacheHit, err := h.analytics.MostPopularCourseType(c.Request.Context())
	h.respond(c, result, cacheHit, err)
}

// System godoc
// @Summary Service instrumentation snapshot
// @Tags Analytics
// @Produce json
// @Success 200 {object} response.Envelope
// @Router /analytics/system [get]
func (h *AnalyticsHandler) System(c *gin.Context) {
	response.JSON(c, http.StatusOK, h.analytics.SystemMetrics(), nil)
}

func (h *AnalyticsHandler) respond(c *gin.Context, data interface{}, cacheHit bool, err error) {
	if err != nil {
		response.Error(c, err)
		return
	}
	middleware.SetCacheHit(c, cacheHit)
	response.JSON(c, http.StatusOK, data, nil, middleware.ExtractMeta(c))
}
