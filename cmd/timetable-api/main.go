package main

import (
	"fmt"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"go.uber.org/zap"

	_ "github.com/harin-dev/academy-timetable-api/api/swagger"
	"github.com/harin-dev/academy-timetable-api/internal/handler"
	internalmiddleware "github.com/harin-dev/academy-timetable-api/internal/middleware"
	"github.com/harin-dev/academy-timetable-api/internal/repository"
	"github.com/harin-dev/academy-timetable-api/internal/service"
	"github.com/harin-dev/academy-timetable-api/internal/timetable"
	"github.com/harin-dev/academy-timetable-api/pkg/cache"
	"github.com/harin-dev/academy-timetable-api/pkg/config"
	"github.com/harin-dev/academy-timetable-api/pkg/logger"
	corsmiddleware "github.com/harin-dev/academy-timetable-api/pkg/middleware/cors"
	reqidmiddleware "github.com/harin-dev/academy-timetable-api/pkg/middleware/requestid"
)

// @title Academy Timetable API
// @version 1.0.0
// @description Weekly timetable assignment engine for language academy staff
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

	metricsSvc := service.NewMetricsService()

	var cacheRepo *repository.CacheRepository
	if cfg.Timetable.CacheEnabled {
		client, redisErr := cache.NewRedis(cfg.Redis)
		if redisErr != nil {
			logr.Warn("redis unavailable, running without result cache", zap.Error(redisErr))
		} else {
			cacheRepo = repository.NewCacheRepository(client, logr)
		}
	}
	cacheSvc := service.NewCacheService(cacheRepo, metricsSvc, cfg.Timetable.CacheTTL, logr, cacheRepo != nil)

	validate := validator.New()
	engine := timetable.New(timetable.WithLogger(logr))
	timetableSvc := service.NewTimetableService(engine, cacheSvc, metricsSvc, validate, logr, service.TimetableConfig{
		CacheTTL: cfg.Timetable.CacheTTL,
	})
	diffSvc := service.NewDiffService(validate, logr)

	timetableHandler := handler.NewTimetableHandler(timetableSvc, diffSvc)
	metricsHandler := handler.NewMetricsHandler(metricsSvc)

	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(reqidmiddleware.Middleware())
	r.Use(logger.GinMiddleware(logr))
	r.Use(corsmiddleware.New(cfg.CORS.AllowedOrigins))
	r.Use(internalmiddleware.Metrics(metricsSvc))

	r.GET("/health", metricsHandler.Health)
	r.GET("/ready", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ready"})
	})
	r.GET("/metrics", metricsHandler.Prometheus)

	api := r.Group(cfg.APIPrefix)
	api.Use(internalmiddleware.WithResponseMeta())
	api.POST("/timetables/generate", timetableHandler.Generate)
	api.POST("/timetables/diff", timetableHandler.Diff)
	api.GET("/timetables/options", timetableHandler.Options)
	api.GET("/metrics/snapshot", metricsHandler.Snapshot)

	if cfg.Env != config.EnvProduction {
		r.GET("/docs/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	addr := fmt.Sprintf(":%d", cfg.Port)
	logr.Sugar().Infow("server starting", "addr", addr, "env", cfg.Env)
	if err := r.Run(addr); err != nil {
		logr.Sugar().Fatalw("server failed", "error", err)
	}
}
