package main

import (
	"context"
	"fmt"
	"log"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"go.uber.org/zap"

	_ "github.com/noah-isme/lesson-scheduler/api/swagger"
	"github.com/noah-isme/lesson-scheduler/internal/app"
	"github.com/noah-isme/lesson-scheduler/internal/handler"
	"github.com/noah-isme/lesson-scheduler/internal/middleware"
	"github.com/noah-isme/lesson-scheduler/internal/repository"
	"github.com/noah-isme/lesson-scheduler/internal/service"
	"github.com/noah-isme/lesson-scheduler/pkg/cache"
	"github.com/noah-isme/lesson-scheduler/pkg/config"
	"github.com/noah-isme/lesson-scheduler/pkg/logger"
	corsmiddleware "github.com/noah-isme/lesson-scheduler/pkg/middleware/cors"
	reqidmiddleware "github.com/noah-isme/lesson-scheduler/pkg/middleware/requestid"
)

// @title Lesson Scheduler API
// @version 1.0.0
// @description Weekly lesson scheduling with professor and classroom conflict detection.
// @BasePath /api/v1
// @schemes http

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	logr, err := logger.New(cfg)
	if err != nil {
		log.Fatalf("failed to init logger: %v", err)
	}
	defer logr.Sync() //nolint:errcheck

	if cfg.Env == config.EnvProduction {
		gin.SetMode(gin.ReleaseMode)
	}

	ctx := context.Background()
	metrics := service.NewMetricsService()

	var (
		redisClient *redis.Client
		cacheSvc    *service.CacheService
	)
	if cfg.Cache.Enabled {
		redisClient, err = cache.NewRedis(ctx, cfg.Redis)
		if err != nil {
			logr.Warn("analytics cache disabled", zap.Error(err))
		} else {
			defer redisClient.Close() //nolint:errcheck
			cacheRepo := repository.NewCacheRepository(redisClient, "lesson-scheduler", logr)
			cacheSvc = service.NewCacheService(cacheRepo, metrics, cfg.Cache.TTL, logr, true)
		}
	}

	scheduler := app.New(app.Options{
		Grid:    app.GridFromConfig(cfg.Schedule),
		Cache:   cacheSvc,
		Metrics: metrics,
		Logger:  logr,
	})
	if _, err := scheduler.Seed(ctx, cfg.Seed.File); err != nil {
		logr.Fatal("failed to seed schedule", zap.Error(err))
	}

	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(reqidmiddleware.Middleware())
	r.Use(logger.GinMiddleware(logr))
	r.Use(corsmiddleware.New(cfg.CORS.AllowedOrigins))
	r.Use(middleware.WithResponseMeta())
	r.Use(middleware.Metrics(metrics))

	checks := map[string]handler.ReadinessCheck{}
	if redisClient != nil {
		checks["redis"] = func(ctx context.Context) error {
			return redisClient.Ping(ctx).Err()
		}
	}
	observability := handler.NewMetricsHandler(metrics.Handler(), checks)
	r.GET("/health", observability.Health)
	r.GET("/ready", observability.Ready)
	r.GET("/metrics", observability.Prometheus)

	handler.Register(r.Group(cfg.APIPrefix), handler.Handlers{
		Professors: handler.NewProfessorHandler(scheduler.Professors, scheduler.Analytics),
		Classrooms: handler.NewClassroomHandler(scheduler.Classrooms),
		Courses:    handler.NewCourseHandler(scheduler.Courses),
		Schedule:   handler.NewScheduleHandler(scheduler.Schedule, scheduler.Exports),
		Analytics:  handler.NewAnalyticsHandler(scheduler.Analytics),
		Exports:    handler.NewExportHandler(scheduler.Exports),
	})

	if cfg.Env != config.EnvProduction {
		r.GET("/docs/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	addr := fmt.Sprintf(":%d", cfg.Port)
	logr.Sugar().Infow("server starting", "addr", addr, "env", cfg.Env, "cache", cacheSvc.Enabled())
	if err := r.Run(addr); err != nil {
		logr.Sugar().Fatalw("server failed", "error", err)
	}
}
