// Package server provides HTTP server initialization and lifecycle management.
package server

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os/signal"
	"syscall"

	"github.com/gin-gonic/gin"

	"employeedir/src/app/http/handler"
	"employeedir/src/app/http/response"
	"employeedir/src/app/middleware"
	"employeedir/src/core/ports"
	"employeedir/src/core/usecase"
	"employeedir/src/core/validation"
	"employeedir/src/infra/config"
	"employeedir/src/infra/logger"
)

// Server wraps the HTTP server and its dependencies.
type Server struct {
	cfg    *config.Config
	log    *slog.Logger
	router *gin.Engine
	http   *http.Server

	// Handlers
	healthHandler     *handler.HealthHandler
	departmentHandler *handler.DepartmentHandler
	employeeHandler   *handler.EmployeeHandler
}

// New creates a new Server with all dependencies wired up.
func New(cfg *config.Config, log *slog.Logger, repo ports.DirectoryRepository) *Server {
	// Set Gin mode based on log level
	if cfg.Log.Level == "debug" {
		gin.SetMode(gin.DebugMode)
	} else {
		gin.SetMode(gin.ReleaseMode)
	}

	// Create router without default middleware
	router := gin.New()

	// Create services
	healthService := usecase.NewHealthService(repo, logger.WithComponent(log, "health_service"))
	departmentService := usecase.NewDepartmentService(repo, logger.WithComponent(log, "department_service"))
	employeeService := usecase.NewEmployeeService(
		repo,
		validation.NewEmployeeValidator(),
		logger.WithComponent(log, "employee_service"),
	)

	s := &Server{
		cfg:               cfg,
		log:               log,
		router:            router,
		healthHandler:     handler.NewHealthHandler(healthService),
		departmentHandler: handler.NewDepartmentHandler(departmentService),
		employeeHandler:   handler.NewEmployeeHandler(employeeService),
	}

	s.setupMiddleware()
	s.setupRoutes()
	s.setupHTTPServer()

	return s
}

// setupMiddleware configures global middleware.
func (s *Server) setupMiddleware() {
	// Recovery first to catch all panics; CORS before APIKey so preflights pass.
	s.router.Use(middleware.Recovery(s.log))
	s.router.Use(middleware.RequestID())
	s.router.Use(middleware.CORS(s.cfg.CORS.AllowedOrigin))
	s.router.Use(middleware.Logging(s.log))
	s.router.Use(middleware.APIKey(s.cfg.Auth.APIKey))
}

// setupRoutes configures all HTTP routes.
func (s *Server) setupRoutes() {
	s.router.GET("/health", s.healthHandler.Health)
	s.router.GET("/health/detailed", s.healthHandler.DetailedHealth)

	api := s.router.Group("/api")
	{
		api.GET("/department", s.departmentHandler.List)

		api.GET("/employee", s.employeeHandler.List)
		api.GET("/employee/:id", s.employeeHandler.Get)
		api.POST("/employee", s.employeeHandler.Create)
		api.PUT("/employee/:id", s.employeeHandler.Update)
		api.DELETE("/employee/:id", s.employeeHandler.Delete)
	}

	s.router.NoRoute(func(c *gin.Context) {
		response.NotFound(c, "The requested resource was not found", middleware.GetRequestID(c))
	})
}

// setupHTTPServer configures the underlying HTTP server.
func (s *Server) setupHTTPServer() {
	s.http = &http.Server{
		Addr:         s.cfg.Server.Addr(),
		Handler:      s.router,
		ReadTimeout:  s.cfg.Server.ReadTimeout,
		WriteTimeout: s.cfg.Server.WriteTimeout,
	}
}

// Run starts the HTTP server and blocks until ctx is cancelled, a
// SIGINT/SIGTERM arrives, or the listener fails. Shutdown is graceful.
func (s *Server) Run(ctx context.Context) error {
	ctx, stop := signal.NotifyContext(ctx, syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	errCh := make(chan error, 1)

	go func() {
		s.log.Info("starting HTTP server",
			"addr", s.cfg.Server.Addr(),
		)
		if err := s.http.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- fmt.Errorf("server error: %w", err)
		}
	}()

	select {
	case <-ctx.Done():
		s.log.Info("received shutdown signal", "cause", context.Cause(ctx))
	case err := <-errCh:
		return err
	}

	return s.Shutdown()
}

// Shutdown gracefully stops the server.
func (s *Server) Shutdown() error {
	s.log.Info("shutting down server", "timeout", s.cfg.Server.ShutdownTimeout)

	ctx, cancel := context.WithTimeout(context.Background(), s.cfg.Server.ShutdownTimeout)
	defer cancel()

	if err := s.http.Shutdown(ctx); err != nil {
		return fmt.Errorf("server shutdown error: %w", err)
	}

	s.log.Info("server stopped gracefully")
	return nil
}

// Router returns the Gin router for testing.
func (s *Server) Router() *gin.Engine {
	return s.router
}
