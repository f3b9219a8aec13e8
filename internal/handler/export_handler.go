package handler

import (
	"context"

	"github.com/gin-gonic/gin"

	"github.com/noah-isme/lesson-scheduler/internal/models"
	"github.com/noah-isme/lesson-scheduler/internal/service"
	"github.com/noah-isme/lesson-scheduler/pkg/response"
)

type scheduleExporter interface {
	Export(ctx context.Context, format models.ExportFormat, filter models.LessonFilter) (*service.ExportResult, error)
}

// ExportHandler serves downloadable schedule reports.
type ExportHandler struct {
	exporter scheduleExporter
}

// NewExportHandler constructs handler.
func NewExportHandler(exporter scheduleExporter) *ExportHandler {
	return &ExportHandler{exporter: exporter}
}

// Schedule godoc
// @Summary Download the weekly schedule
// @Tags Exports
// @Produce text/csv
// @Produce application/pdf
// @Param format query string false "csv or pdf" default(csv)
// @Param professor_id query int false "Filter by professor"
// @Param classroom_number query string false "Filter by classroom"
// @Param day_of_week query string false "Filter by day"
// @Success 200 {file} file
// @Failure 400 {object} response.Envelope
// @Router /exports/schedule [get]
func (h *ExportHandler) Schedule(c *gin.Context) {
	filter, err := lessonFilter(c)
	if err != nil {
		response.Error(c, err)
		return
	}
	result, err := h.exporter.Export(c.Request.Context(), models.ExportFormat(c.DefaultQuery("format", string(models.ExportFormatCSV))), filter)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Attachment(c, result.Filename, result.ContentType, result.Data)
}
