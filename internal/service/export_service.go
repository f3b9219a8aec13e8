package service

import (
	"context"
	"fmt"
	"io"
	"sort"
	"strconv"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/noah-isme/lesson-scheduler/internal/models"
	"github.com/noah-isme/lesson-scheduler/internal/scheduling"
	appErrors "github.com/noah-isme/lesson-scheduler/pkg/errors"
	"github.com/noah-isme/lesson-scheduler/pkg/export"
)

type positionedLessonLister interface {
	List(ctx context.Context, filter models.LessonFilter) ([]models.PositionedLesson, error)
}

type exportCatalog interface {
	ListProfessors(ctx context.Context) ([]models.Professor, error)
	ListCourses(ctx context.Context) ([]models.Course, error)
}

type lessonImporter interface {
	BulkCreate(ctx context.Context, req BulkCreateLessonsRequest) (*BulkCreateLessonsResult, error)
}

type csvRenderer interface {
	Render(rows interface{}) ([]byte, error)
	Decode(in io.Reader, out interface{}) error
}

type pdfRenderer interface {
	Render(data export.Dataset, title string) ([]byte, error)
}

// ExportResult is a rendered document ready for download.
type ExportResult struct {
	Filename    string
	ContentType string
	Format      models.ExportFormat
	Data        []byte
}

// ExportService renders the weekly schedule and imports lessons from CSV.
type ExportService struct {
	lessons  positionedLessonLister
	catalog  exportCatalog
	importer lessonImporter
	grid     scheduling.Grid
	csv      csvRenderer
	pdf      pdfRenderer
	logger   *zap.Logger
	now      func() time.Time
}

// NewExportService constructs an ExportService.
func NewExportService(lessons positionedLessonLister, catalog exportCatalog, importer lessonImporter, grid scheduling.Grid, logger *zap.Logger, csv csvRenderer, pdf pdfRenderer) *ExportService {
	if logger == nil {
		logger = zap.NewNop()
	}
	if csv == nil {
		csv = export.NewCSVExporter()
	}
	if pdf == nil {
		pdf = export.NewPDFExporter()
	}
	return &ExportService{
		lessons:  lessons,
		catalog:  catalog,
		importer: importer,
		grid:     grid,
		csv:      csv,
		pdf:      pdf,
		logger:   logger,
		now:      time.Now,
	}
}

// Rows builds the schedule report ordered by day, then time slot, then position.
func (s *ExportService) Rows(ctx context.Context, filter models.LessonFilter) ([]models.ScheduleRow, error) {
	filter, err := normalizeDayFilter(s.grid, filter)
	if err != nil {
		return nil, err
	}
	lessons, err := s.lessons.List(ctx, filter)
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to list lessons")
	}
	professors, err := s.catalog.ListProfessors(ctx)
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to list professors")
	}
	courses, err := s.catalog.ListCourses(ctx)
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to list courses")
	}

	professorNames := make(map[int]string, len(professors))
	for _, p := range professors {
		professorNames[p.ID] = p.Name
	}
	courseByID := make(map[int]models.Course, len(courses))
	for _, c := range courses {
		courseByID[c.ID] = c
	}

	rows := make([]models.ScheduleRow, 0, len(lessons))
	for _, l := range lessons {
		course := courseByID[l.CourseID]
		rows = append(rows, models.ScheduleRow{
			Position:        l.Position,
			LessonID:        l.ID,
			DayOfWeek:       l.DayOfWeek,
			TimeSlot:        l.TimeSlot,
			ClassroomNumber: l.ClassroomNumber,
			CourseID:        l.CourseID,
			CourseName:      course.Name,
			CourseType:      course.Type,
			ProfessorID:     l.ProfessorID,
			ProfessorName:   professorNames[l.ProfessorID],
		})
	}

	dayOrder := rank(s.grid.Days())
	slotOrder := rank(s.grid.TimeSlots())
	sort.SliceStable(rows, func(i, j int) bool {
		a, b := rows[i], rows[j]
		if dayOrder[a.DayOfWeek] != dayOrder[b.DayOfWeek] {
			return dayOrder[a.DayOfWeek] < dayOrder[b.DayOfWeek]
		}
		if slotOrder[a.TimeSlot] != slotOrder[b.TimeSlot] {
			return slotOrder[a.TimeSlot] < slotOrder[b.TimeSlot]
		}
		return a.Position < b.Position
	})
	return rows, nil
}

// Export renders the schedule in the requested format.
func (s *ExportService) Export(ctx context.Context, format models.ExportFormat, filter models.LessonFilter) (*ExportResult, error) {
	format = models.ExportFormat(strings.ToLower(strings.TrimSpace(string(format))))
	if format == "" {
		format = models.ExportFormatCSV
	}
	if format != models.ExportFormatCSV && format != models.ExportFormatPDF {
		return nil, appErrors.Clone(appErrors.ErrValidation, fmt.Sprintf("unsupported export format %q", format))
	}

	rows, err := s.Rows(ctx, filter)
	if err != nil {
		return nil, err
	}

	var (
		payload     []byte
		contentType string
	)
	switch format {
	case models.ExportFormatPDF:
		payload, err = s.pdf.Render(scheduleDataset(rows), "Weekly Lesson Schedule")
		contentType = "application/pdf"
	default:
		payload, err = s.csv.Render(&rows)
		contentType = "text/csv"
	}
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to render schedule")
	}

	filename := fmt.Sprintf("schedule_%s.%s", s.now().UTC().Format("20060102_150405"), format)
	s.logger.Info("schedule exported", zap.String("format", string(format)), zap.Int("rows", len(rows)))
	return &ExportResult{Filename: filename, ContentType: contentType, Format: format, Data: payload}, nil
}

// ImportCSV reads lessons from CSV (course_id, professor_id, classroom_number,
// day_of_week, time_slot) and places them through the schedule service.
func (s *ExportService) ImportCSV(ctx context.Context, in io.Reader, partial bool) (*BulkCreateLessonsResult, error) {
	var items []CreateLessonRequest
	if err := s.csv.Decode(in, &items); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, "invalid lesson csv")
	}
	if len(items) == 0 {
		return nil, appErrors.Clone(appErrors.ErrValidation, "lesson csv contains no rows")
	}
	result, err := s.importer.BulkCreate(ctx, BulkCreateLessonsRequest{Items: items, PartialOnError: partial})
	if err != nil {
		return nil, err
	}
	s.logger.Info("lessons imported", zap.Int("created", len(result.Created)), zap.Int("rejected", len(result.Rejected)))
	return result, nil
}

func scheduleDataset(rows []models.ScheduleRow) export.Dataset {
	headers := []string{"#", "Day", "Time", "Room", "Course", "Type", "Professor"}
	table := make([][]string, 0, len(rows))
	for _, r := range rows {
		table = append(table, []string{
			strconv.Itoa(r.Position),
			r.DayOfWeek,
			r.TimeSlot,
			r.ClassroomNumber,
			fallbackLabel(r.CourseName, r.CourseID),
			string(r.CourseType),
			fallbackLabel(r.ProfessorName, r.ProfessorID),
		})
	}
	return export.Table(headers, table)
}

func fallbackLabel(name string, id int) string {
	if name == "" {
		return "#" + strconv.Itoa(id)
	}
	return name
}

func rank(values []string) map[string]int {
	out := make(map[string]int, len(values))
	for i, v := range values {
		out[v] = i
	}
	return out
}
