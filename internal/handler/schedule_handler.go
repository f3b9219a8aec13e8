package handler

import (
	"context"
	"io"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/noah-isme/lesson-scheduler/internal/models"
	"github.com/noah-isme/lesson-scheduler/internal/service"
	"github.com/noah-isme/lesson-scheduler/pkg/response"
)

type scheduleService interface {
	List(ctx context.Context, filter models.LessonFilter) ([]models.PositionedLesson, error)
	Get(ctx context.Context, id string) (*models.PositionedLesson, error)
	Create(ctx context.Context, req service.CreateLessonRequest) (*models.PositionedLesson, error)
	Check(ctx context.Context, req service.CreateLessonRequest) (*service.LessonCheckResult, error)
	BulkCreate(ctx context.Context, req service.BulkCreateLessonsRequest) (*service.BulkCreateLessonsResult, error)
	ReassignByID(ctx context.Context, id string, req service.ReassignClassroomRequest) (*models.PositionedLesson, error)
	ReassignAt(ctx context.Context, position int, req service.ReassignClassroomRequest) (*models.PositionedLesson, error)
	CancelByID(ctx context.Context, id string) (*models.Lesson, error)
	CancelAt(ctx context.Context, position int) (*models.Lesson, error)
}

type lessonImporter interface {
	ImportCSV(ctx context.Context, in io.Reader, partial bool) (*service.BulkCreateLessonsResult, error)
}

// ScheduleHandler manages lesson endpoints.
type ScheduleHandler struct {
	service  scheduleService
	importer lessonImporter
}

// NewScheduleHandler constructs handler.
func NewScheduleHandler(svc scheduleService, importer lessonImporter) *ScheduleHandler {
	return &ScheduleHandler{service: svc, importer: importer}
}

// List godoc
// @Summary List lessons
// @Tags Lessons
// @Produce json
// @Param professor_id query int false "Filter by professor"
// @Param course_id query int false "Filter by course"
// @Param classroom_number query string false "Filter by classroom"
// @Param day_of_week query string false "Filter by day"
// @Param time_slot query string false "Filter by time slot"
// @Param page query int false "Page"
// @Param page_size query int false "Page size"
// @Success 200 {object} response.Envelope
// @Router /lessons [get]
func (h *ScheduleHandler) List(c *gin.Context) {
	filter, err := lessonFilter(c)
	if err != nil {
		response.Error(c, err)
		return
	}
	lessons, err := h.service.List(c.Request.Context(), filter)
	if err != nil {
		response.Error(c, err)
		return
	}
	page, pagination, err := paginate(c, lessons)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, page, pagination)
}

// Get godoc
// @Summary Get lesson
// @Tags Lessons
// @Produce json
// @Param id path string true "Lesson ID"
// @Success 200 {object} response.Envelope
// @Failure 404 {object} response.Envelope
// @Router /lessons/{id} [get]
func (h *ScheduleHandler) Get(c *gin.Context) {
	lesson, err := h.service.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, lesson, nil)
}

// Create godoc
// @Summary Schedule a lesson
// @Description Rejects exact duplicates and professor or classroom double-bookings.
// @Tags Lessons
// @Accept json
// @Produce json
// @Param payload body service.CreateLessonRequest true "Lesson payload"
// @Success 201 {object} response.Envelope
// @Failure 409 {object} response.Envelope
// @Router /lessons [post]
func (h *ScheduleHandler) Create(c *gin.Context) {
	var req service.CreateLessonRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, bindError(err))
		return
	}
	lesson, err := h.service.Create(c.Request.Context(), req)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Created(c, lesson)
}

// Check godoc
// @Summary Dry-run a lesson against the schedule
// @Tags Lessons
// @Accept json
// @Produce json
// @Param payload body service.CreateLessonRequest true "Lesson payload"
// @Success 200 {object} response.Envelope
// @Router /lessons/check [post]
func (h *ScheduleHandler) Check(c *gin.Context) {
	var req service.CreateLessonRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, bindError(err))
		return
	}
	result, err := h.service.Check(c.Request.Context(), req)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, result, nil)
}

// BulkCreate godoc
// @Summary Bulk schedule lessons
// @Tags Lessons
// @Accept json
// @Produce json
// @Param payload body service.BulkCreateLessonsRequest true "Bulk payload"
// @Success 200 {object} response.Envelope
// @Failure 409 {object} response.Envelope
// @Router /lessons/bulk [post]
func (h *ScheduleHandler) BulkCreate(c *gin.Context) {
	var req service.BulkCreateLessonsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, bindError(err))
		return
	}
	result, err := h.service.BulkCreate(c.Request.Context(), req)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, result, nil)
}

// Import godoc
// @Summary Import lessons from CSV
// @Tags Lessons
// @Accept text/csv
// @Produce json
// @Param partial_on_error query bool false "Keep admissible rows when others are rejected"
// @Success 200 {object} response.Envelope
// @Failure 409 {object} response.Envelope
// @Router /lessons/import [post]
func (h *ScheduleHandler) Import(c *gin.Context) {
	partial, _ := strconv.ParseBool(c.DefaultQuery("partial_on_error", "false"))
	result, err := h.importer.ImportCSV(c.Request.Context(), c.Request.Body, partial)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, result, nil)
}

// Reassign godoc
// @Summary Move a lesson to another classroom
// @Tags Lessons
// @Accept json
// @Produce json
// @Param id path string true "Lesson ID"
// @Param payload body service.ReassignClassroomRequest true "Target classroom"
// @Success 200 {object} response.Envelope
// @Failure 409 {object} response.Envelope
// @Router /lessons/{id}/classroom [patch]
func (h *ScheduleHandler) Reassign(c *gin.Context) {
	var req service.ReassignClassroomRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, bindError(err))
		return
	}
	lesson, err := h.service.ReassignByID(c.Request.Context(), c.Param("id"), req)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, lesson, nil)
}

// ReassignAt godoc
// @Summary Move the lesson at a schedule position to another classroom
// @Tags Schedule
// @Accept json
// @Produce json
// @Param position path int true "Schedule position"
// @Param payload body service.ReassignClassroomRequest true "Target classroom"
// @Success 200 {object} response.Envelope
// @Failure 404 {object} response.Envelope
// @Router /schedule/positions/{position}/classroom [patch]
func (h *ScheduleHandler) ReassignAt(c *gin.Context) {
	position, err := intParam(c, "position")
	if err != nil {
		response.Error(c, err)
		return
	}
	var req service.ReassignClassroomRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, bindError(err))
		return
	}
	lesson, err := h.service.ReassignAt(c.Request.Context(), position, req)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, lesson, nil)
}

// Cancel godoc
// @Summary Cancel lesson
// @Tags Lessons
// @Param id path string true "Lesson ID"
// @Success 204
// @Failure 404 {object} response.Envelope
// @Router /lessons/{id} [delete]
func (h *ScheduleHandler) Cancel(c *gin.Context) {
	if _, err := h.service.CancelByID(c.Request.Context(), c.Param("id")); err != nil {
		response.Error(c, err)
		return
	}
	response.NoContent(c)
}

// CancelAt godoc
// @Summary Cancel the lesson at a schedule position
// @Description Later lessons shift down by one. An invalid position is ignored.
// @Tags Schedule
// @Param position path int true "Schedule position"
// @Success 204
// @Router /schedule/positions/{position} [delete]
func (h *ScheduleHandler) CancelAt(c *gin.Context) {
	position, err := intParam(c, "position")
	if err != nil {
		response.Error(c, err)
		return
	}
	if _, err := h.service.CancelAt(c.Request.Context(), position); err != nil {
		response.Error(c, err)
		return
	}
	response.NoContent(c)
}
