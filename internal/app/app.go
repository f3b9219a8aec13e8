// Package app assembles repositories and services into a runnable scheduler.
package app

import (
	"context"
	"fmt"

	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"

	"github.com/noah-isme/lesson-scheduler/internal/repository"
	"github.com/noah-isme/lesson-scheduler/internal/scheduling"
	"github.com/noah-isme/lesson-scheduler/internal/seed"
	"github.com/noah-isme/lesson-scheduler/internal/service"
	"github.com/noah-isme/lesson-scheduler/pkg/config"
)

// Options configure New. Zero values fall back to defaults.
type Options struct {
	Grid        scheduling.Grid
	Cache       *service.CacheService
	Metrics     *service.MetricsService
	Logger      *zap.Logger
	IDGenerator func() string
}

// App holds the wired service layer.
type App struct {
	Catalog *repository.CatalogRepository
	Store   *repository.ScheduleRepository

	Professors *service.ProfessorService
	Classrooms *service.ClassroomService
	Courses    *service.CourseService
	Schedule   *service.ScheduleService
	Analytics  *service.AnalyticsService
	Exports    *service.ExportService
	Metrics    *service.MetricsService

	logger *zap.Logger
}

// GridFromConfig builds the weekly grid from schedule settings.
func GridFromConfig(cfg config.ScheduleConfig) scheduling.Grid {
	return scheduling.NewGrid(cfg.Days, cfg.TimeSlots)
}

// New wires in-memory repositories to the service layer.
func New(opts Options) *App {
	logger := opts.Logger
	if logger == nil {
		logger = zap.NewNop()
	}
	grid := opts.Grid
	if len(grid.Days()) == 0 {
		grid = GridFromConfig(config.ScheduleConfig{
			Days:      config.SplitList(config.DefaultDays),
			TimeSlots: config.SplitList(config.DefaultTimeSlots),
		})
	}
	metrics := opts.Metrics
	if metrics == nil {
		metrics = service.NewMetricsService()
	}

	var storeOpts []scheduling.Option
	if opts.IDGenerator != nil {
		storeOpts = append(storeOpts, scheduling.WithIDGenerator(opts.IDGenerator))
	}

	validate := validator.New()
	catalog := repository.NewCatalogRepository()
	store := repository.NewScheduleRepository(storeOpts...)

	a := &App{
		Catalog:    catalog,
		Store:      store,
		Professors: service.NewProfessorService(catalog, opts.Cache, validate, logger),
		Classrooms: service.NewClassroomService(catalog, opts.Cache, validate, logger),
		Courses:    service.NewCourseService(catalog, opts.Cache, validate, logger),
		Schedule:   service.NewScheduleService(store, catalog, grid, validate, opts.Cache, metrics, logger),
		Analytics:  service.NewAnalyticsService(store, catalog, grid, opts.Cache, metrics, logger),
		Metrics:    metrics,
		logger:     logger,
	}
	a.Exports = service.NewExportService(store, catalog, a.Schedule, grid, logger, nil, nil)
	return a
}

// Seed loads a YAML seed file and applies it. An empty path is a no-op.
func (a *App) Seed(ctx context.Context, path string) (*seed.Summary, error) {
	if path == "" {
		return &seed.Summary{}, nil
	}
	data, err := seed.LoadFile(path)
	if err != nil {
		return nil, err
	}
	summary, err := seed.Apply(ctx, data, a.SeedServices(), a.logger)
	if err != nil {
		return summary, fmt.Errorf("apply seed %s: %w", path, err)
	}
	return summary, nil
}

// SeedServices exposes the write paths used when seeding.
func (a *App) SeedServices() seed.Services {
	return seed.Services{
		Professors: a.Professors,
		Classrooms: a.Classrooms,
		Courses:    a.Courses,
		Schedule:   a.Schedule,
	}
}
