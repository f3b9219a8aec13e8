package service

import (
	"bytes"
	"context"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/noah-isme/lesson-scheduler/internal/models"
	"github.com/noah-isme/lesson-scheduler/internal/scheduling"
	appErrors "github.com/noah-isme/lesson-scheduler/pkg/errors"
	"github.com/noah-isme/lesson-scheduler/pkg/export"
)

type recordingPDF struct {
	data  export.Dataset
	title string
}

func (r *recordingPDF) Render(data export.Dataset, title string) ([]byte, error) {
	r.data = data
	r.title = title
	return []byte("%PDF-stub"), nil
}

func newExportFixture(t *testing.T) (*scheduleFixture, *ExportService, *recordingPDF) {
	t.Helper()
	f := newScheduleFixture(t)
	pdf := &recordingPDF{}
	svc := NewExportService(f.store, f.catalog, f.schedule, scheduling.NewGrid(testDays, testSlots), zap.NewNop(), nil, pdf)
	svc.now = func() time.Time { return time.Date(2024, 9, 2, 8, 0, 0, 0, time.UTC) }
	return f, svc, pdf
}

func TestExportServiceRowsOrderedByGrid(t *testing.T) {
	f, svc, _ := newExportFixture(t)
	ctx := context.Background()
	for _, req := range []CreateLessonRequest{
		lessonRequest(1, 1, "101", "Wednesday", "8:30-10:00"),
		lessonRequest(2, 2, "102", "Monday", "10:15-11:45"),
		lessonRequest(2, 1, "101", "Monday", "8:30-10:00"),
	} {
		_, err := f.schedule.Create(ctx, req)
		require.NoError(t, err)
	}

	rows, err := svc.Rows(ctx, models.LessonFilter{})
	require.NoError(t, err)
	require.Len(t, rows, 3)
	assert.Equal(t, 2, rows[0].Position)
	assert.Equal(t, 1, rows[1].Position)
	assert.Equal(t, 0, rows[2].Position)
	assert.Equal(t, "Ada Lovelace", rows[0].ProfessorName)
	assert.Equal(t, "Databases", rows[0].CourseName)
	assert.Equal(t, models.CourseTypeLab, rows[0].CourseType)
}

func TestExportServiceRowsNormalizesDay(t *testing.T) {
	f, svc, _ := newExportFixture(t)
	ctx := context.Background()
	for _, req := range []CreateLessonRequest{
		lessonRequest(1, 1, "101", "Monday", "8:30-10:00"),
		lessonRequest(2, 2, "102", "Friday", "10:15-11:45"),
	} {
		_, err := f.schedule.Create(ctx, req)
		require.NoError(t, err)
	}

	for _, day := range []string{"mon", "MONDAY", "Monday"} {
		rows, err := svc.Rows(ctx, models.LessonFilter{DayOfWeek: day})
		require.NoError(t, err, day)
		require.Len(t, rows, 1, day)
		assert.Equal(t, "Monday", rows[0].DayOfWeek, day)
	}

	_, err := svc.Rows(ctx, models.LessonFilter{DayOfWeek: "Funday"})
	require.Error(t, err)
	assert.Equal(t, appErrors.ErrValidation.Code, appErrorCode(t, err))

	_, err = svc.Export(ctx, models.ExportFormatCSV, models.LessonFilter{DayOfWeek: "Funday"})
	assert.Equal(t, appErrors.ErrValidation.Code, appErrorCode(t, err))
}

func TestExportServiceCSV(t *testing.T) {
	f, svc, _ := newExportFixture(t)
	ctx := context.Background()
	_, err := f.schedule.Create(ctx, lessonRequest(1, 1, "101", "Monday", "8:30-10:00"))
	require.NoError(t, err)

	result, err := svc.Export(ctx, "CSV", models.LessonFilter{})
	require.NoError(t, err)
	assert.Equal(t, models.ExportFormatCSV, result.Format)
	assert.Equal(t, "text/csv", result.ContentType)
	assert.Equal(t, "schedule_20240902_080000.csv", result.Filename)

	lines := strings.Split(strings.TrimSpace(string(result.Data)), "\n")
	require.Len(t, lines, 2)
	assert.True(t, strings.HasPrefix(lines[0], "position,lesson_id,day_of_week,time_slot,classroom_number"))
	assert.Contains(t, lines[1], "Algorithms")
}

func TestExportServicePDF(t *testing.T) {
	f, svc, pdf := newExportFixture(t)
	ctx := context.Background()
	_, err := f.schedule.Create(ctx, lessonRequest(1, 1, "101", "Monday", "8:30-10:00"))
	require.NoError(t, err)

	result, err := svc.Export(ctx, models.ExportFormatPDF, models.LessonFilter{})
	require.NoError(t, err)
	assert.Equal(t, "application/pdf", result.ContentType)
	assert.Equal(t, "Weekly Lesson Schedule", pdf.title)
	require.Len(t, pdf.data.Rows, 1)
	assert.Equal(t, "Ada Lovelace", pdf.data.Rows[0]["Professor"])
}

func TestExportServiceUnsupportedFormat(t *testing.T) {
	_, svc, _ := newExportFixture(t)

	_, err := svc.Export(context.Background(), "xlsx", models.LessonFilter{})
	assert.Equal(t, appErrors.ErrValidation.Code, appErrorCode(t, err))
}

func TestExportServiceImportCSV(t *testing.T) {
	f, svc, _ := newExportFixture(t)
	ctx := context.Background()

	in := "course_id,professor_id,classroom_number,day_of_week,time_slot\n" +
		"1,1,101,Monday,8:30-10:00\n" +
		"2,2,101,Monday,8:30-10:00\n" +
		"2,2,102,tue,10:15-11:45\n"

	result, err := svc.ImportCSV(ctx, strings.NewReader(in), true)
	require.NoError(t, err)
	assert.Len(t, result.Created, 2)
	require.Len(t, result.Rejected, 1)
	assert.Equal(t, scheduling.OutcomeClassroomConflict, result.Rejected[0].Outcome)

	lessons, err := f.store.Lessons(ctx)
	require.NoError(t, err)
	assert.Equal(t, "Tuesday", lessons[1].DayOfWeek)
}

func TestExportServiceImportCSVAllOrNothing(t *testing.T) {
	f, svc, _ := newExportFixture(t)
	ctx := context.Background()

	in := "course_id,professor_id,classroom_number,day_of_week,time_slot\n" +
		"1,1,101,Monday,8:30-10:00\n" +
		"1,1,101,Monday,8:30-10:00\n"

	_, err := svc.ImportCSV(ctx, strings.NewReader(in), false)
	assert.Equal(t, appErrors.ErrConflict.Code, appErrorCode(t, err))

	lessons, err := f.store.Lessons(ctx)
	require.NoError(t, err)
	assert.Empty(t, lessons)
}

func TestExportServiceImportCSVRejectsGarbage(t *testing.T) {
	_, svc, _ := newExportFixture(t)

	_, err := svc.ImportCSV(context.Background(), bytes.NewBufferString("course_id,professor_id\nabc,1\n"), true)
	assert.Equal(t, appErrors.ErrValidation.Code, appErrorCode(t, err))

	_, err = svc.ImportCSV(context.Background(), bytes.NewBufferString("course_id,professor_id,classroom_number,day_of_week,time_slot\n"), true)
	assert.Equal(t, appErrors.ErrValidation.Code, appErrorCode(t, err))
}
