package server

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"sync"
	"time"

	"inventario/internal/config"
	"inventario/pipeline"
	"inventario/server/handlers"
	"inventario/server/middleware"
	"inventario/server/monitoring"

	"github.com/gin-gonic/gin"
)

// Version версия сервиса для health check
const Version = "1.0.0"

// Server HTTP-обертка над конвейером сверки
type Server struct {
	config *config.Config
	pcfg   pipeline.Config
	logger *slog.Logger

	runs    *handlers.RunHandler
	outputs *handlers.OutputsHandler
	health  *monitoring.HealthChecker

	handlerOnce sync.Once
	httpHandler http.Handler
	httpServer  *http.Server
}

// NewServer создает сервер; каждый POST /api/runs запускает новый конвейер с pcfg
func NewServer(cfg *config.Config, pcfg pipeline.Config, logger *slog.Logger) *Server {
	if logger == nil {
		logger = slog.Default()
	}

	shared := pipeline.NewSlogSink(logger, "component", "pipeline")
	runs := handlers.NewRunHandler(func(sink pipeline.Sink) handlers.Runner {
		return pipeline.New(pcfg, sink)
	}, shared)

	health := monitoring.NewHealthChecker(Version)
	health.RegisterComponent("input_dir", monitoring.InputDirCheck(pcfg.InputDir))
	health.RegisterComponent("output_dir", monitoring.OutputDirCheck(pcfg.OutputDir))

	return &Server{
		config:  cfg,
		pcfg:    pcfg,
		logger:  logger,
		runs:    runs,
		outputs: handlers.NewOutputsHandler(pipeline.New(pcfg, nil).Artifacts(), runs),
		health:  health,
	}
}

// Router возвращает gin-роутер со всеми маршрутами
func (s *Server) Router() http.Handler {
	s.handlerOnce.Do(func() {
		s.httpHandler = s.buildRouter()
	})
	return s.httpHandler
}

func (s *Server) buildRouter() *gin.Engine {
	router := gin.New()
	router.Use(middleware.GinRequestIDMiddleware())
	router.Use(middleware.GinLoggerMiddleware(s.logger))
	router.Use(middleware.GinRecoveryMiddleware())
	router.Use(middleware.GinGzipMiddleware())

	router.GET("/health", s.health.GinHandler())
	registerSwaggerRoutes(router, Version)

	api := router.Group("/api")
	{
		limiter := middleware.PerMinuteLimiter(s.config.RunRateLimitPerMin)
		api.POST("/runs", middleware.GinRateLimitMiddleware(limiter), s.runs.HandleStartRun)
		api.GET("/runs/last", s.runs.HandleLastRun)
		api.GET("/outputs/:artifact", s.outputs.HandleDownload)
	}

	return router
}

// Start запускает HTTP сервер и блокируется до его остановки
func (s *Server) Start() error {
	addr := s.addr()
	// WriteTimeout покрывает синхронный прогон конвейера
	s.httpServer = &http.Server{
		Addr:         addr,
		Handler:      s.Router(),
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 5 * time.Minute,
		IdleTimeout:  120 * time.Second,
	}

	s.health.LogHealthStatus(s.logger)
	s.logger.Info("Starting HTTP server", "addr", addr)

	if err := s.httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return fmt.Errorf("listen %s: %w", addr, err)
	}
	return nil
}

// addr адрес прослушивания на всех интерфейсах
func (s *Server) addr() string {
	return net.JoinHostPort("", s.config.Port)
}

// Shutdown останавливает HTTP сервер gracefully
func (s *Server) Shutdown(ctx context.Context) error {
	if s.httpServer == nil {
		return nil
	}

	s.logger.Info("Initiating graceful shutdown")
	if err := s.httpServer.Shutdown(ctx); err != nil {
		return fmt.Errorf("ошибка остановки сервера: %w", err)
	}
	s.logger.Info("Graceful shutdown completed")
	return nil
}
