// Package seed loads sample scheduling data from YAML and applies it through
// the service layer so every entry passes the same checks as API traffic.
package seed

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	"go.uber.org/zap"
	"gopkg.in/yaml.v3"

	"github.com/noah-isme/lesson-scheduler/internal/models"
	"github.com/noah-isme/lesson-scheduler/internal/service"
	appErrors "github.com/noah-isme/lesson-scheduler/pkg/errors"
)

// Data is the on-disk seed document.
type Data struct {
	Professors []service.CreateProfessorRequest `yaml:"professors"`
	Classrooms []service.CreateClassroomRequest `yaml:"classrooms"`
	Courses    []service.CreateCourseRequest    `yaml:"courses"`
	Lessons    []service.CreateLessonRequest    `yaml:"lessons"`
}

// Summary reports what Apply stored.
type Summary struct {
	Professors int      `json:"professors"`
	Classrooms int      `json:"classrooms"`
	Courses    int      `json:"courses"`
	Lessons    int      `json:"lessons"`
	Skipped    int      `json:"skipped"`
	Rejected   []string `json:"rejected,omitempty"`
}

// Services are the write paths seed data flows through.
type Services struct {
	Professors interface {
		Create(ctx context.Context, req service.CreateProfessorRequest) (*models.Professor, error)
	}
	Classrooms interface {
		Create(ctx context.Context, req service.CreateClassroomRequest) (*models.Classroom, error)
	}
	Courses interface {
		Create(ctx context.Context, req service.CreateCourseRequest) (*models.Course, error)
	}
	Schedule interface {
		Create(ctx context.Context, req service.CreateLessonRequest) (*models.PositionedLesson, error)
	}
}

// LoadFile reads a seed document from path.
func LoadFile(path string) (*Data, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read seed file: %w", err)
	}
	return Decode(bytes.NewReader(raw))
}

// Decode parses a seed document. Unknown keys are rejected.
func Decode(r io.Reader) (*Data, error) {
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)

	var data Data
	if err := dec.Decode(&data); err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("parse seed yaml: %w", err)
	}
	return &data, nil
}

// Apply stores catalog entries first and lessons afterwards. Entries that
// already exist are skipped; lessons the schedule refuses are recorded in
// Summary.Rejected and do not stop the run.
func Apply(ctx context.Context, data *Data, svc Services, logger *zap.Logger) (*Summary, error) {
	if logger == nil {
		logger = zap.NewNop()
	}
	summary := &Summary{}
	if data == nil {
		return summary, nil
	}

	for _, p := range data.Professors {
		if _, err := svc.Professors.Create(ctx, p); err != nil {
			if skip(err) {
				summary.Skipped++
				continue
			}
			return summary, fmt.Errorf("seed professor %d: %w", p.ID, err)
		}
		summary.Professors++
	}
	for _, c := range data.Classrooms {
		if _, err := svc.Classrooms.Create(ctx, c); err != nil {
			if skip(err) {
				summary.Skipped++
				continue
			}
			return summary, fmt.Errorf("seed classroom %s: %w", c.Number, err)
		}
		summary.Classrooms++
	}
	for _, c := range data.Courses {
		if _, err := svc.Courses.Create(ctx, c); err != nil {
			if skip(err) {
				summary.Skipped++
				continue
			}
			return summary, fmt.Errorf("seed course %d: %w", c.ID, err)
		}
		summary.Courses++
	}

	for i, l := range data.Lessons {
		if _, err := svc.Schedule.Create(ctx, l); err != nil {
			appErr := appErrors.FromError(err)
			if appErr.Status >= 500 {
				return summary, fmt.Errorf("seed lesson %d: %w", i, err)
			}
			summary.Rejected = append(summary.Rejected, fmt.Sprintf("lesson %d: %s", i, appErr.Message))
			continue
		}
		summary.Lessons++
	}

	logger.Info("seed data applied",
		zap.Int("professors", summary.Professors),
		zap.Int("classrooms", summary.Classrooms),
		zap.Int("courses", summary.Courses),
		zap.Int("lessons", summary.Lessons),
		zap.Int("skipped", summary.Skipped),
		zap.Int("rejected", len(summary.Rejected)),
	)
	return summary, nil
}

func skip(err error) bool {
	return appErrors.FromError(err).Code == appErrors.ErrDuplicateEntry.Code
}
