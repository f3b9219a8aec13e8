package handler

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/noah-isme/lesson-scheduler/internal/models"
	appErrors "github.com/noah-isme/lesson-scheduler/pkg/errors"
)

const (
	defaultPageSize = 50
	maxPageSize     = 500
)

func intParam(c *gin.Context, name string) (int, error) {
	raw := c.Param(name)
	value, err := strconv.Atoi(raw)
	if err != nil {
		return 0, appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, fmt.Sprintf("%s must be an integer", name))
	}
	return value, nil
}

func optionalIntQuery(c *gin.Context, name string) (int, error) {
	raw := strings.TrimSpace(c.Query(name))
	if raw == "" {
		return 0, nil
	}
	value, err := strconv.Atoi(raw)
	if err != nil {
		return 0, appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, fmt.Sprintf("%s must be an integer", name))
	}
	return value, nil
}

func lessonFilter(c *gin.Context) (models.LessonFilter, error) {
	professorID, err := optionalIntQuery(c, "professor_id")
	if err != nil {
		return models.LessonFilter{}, err
	}
	courseID, err := optionalIntQuery(c, "course_id")
	if err != nil {
		return models.LessonFilter{}, err
	}
	return models.LessonFilter{
		ProfessorID:     professorID,
		CourseID:        courseID,
		ClassroomNumber: strings.TrimSpace(c.Query("classroom_number")),
		DayOfWeek:       strings.TrimSpace(c.Query("day_of_week")),
		TimeSlot:        strings.TrimSpace(c.Query("time_slot")),
	}, nil
}

// paginate slices items for the requested page. Without a page query the full
// listing is returned and pagination is nil.
func paginate[T any](c *gin.Context, items []T) ([]T, *models.Pagination, error) {
	if c.Query("page") == "" && c.Query("page_size") == "" {
		return items, nil, nil
	}
	page, err := strconv.Atoi(c.DefaultQuery("page", "1"))
	if err != nil || page < 1 {
		return nil, nil, appErrors.Clone(appErrors.ErrValidation, "page must be a positive integer")
	}
	size, err := strconv.Atoi(c.DefaultQuery("page_size", strconv.Itoa(defaultPageSize)))
	if err != nil || size < 1 {
		return nil, nil, appErrors.Clone(appErrors.ErrValidation, "page_size must be a positive integer")
	}
	if size > maxPageSize {
		size = maxPageSize
	}

	pagination := &models.Pagination{Page: page, PageSize: size, TotalCount: len(items)}
	pages := (len(items) + size - 1) / size
	if page-1 >= pages {
		return []T{}, pagination, nil
	}
	start := (page - 1) * size
	end := start + size
	if end > len(items) {
		end = len(items)
	}
	return items[start:end], pagination, nil
}

func bindError(err error) error {
	return appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, "invalid payload")
}
