// Package server provides HTTP server initialization and lifecycle management.
package server

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"jokecatalog/src/app/http/handler"
	"jokecatalog/src/app/http/response"
	"jokecatalog/src/app/middleware"
	"jokecatalog/src/core/ports"
	"jokecatalog/src/core/usecase"
	"jokecatalog/src/infra/config"
	"jokecatalog/src/infra/logger"
)

// Dependencies are the adapters the server is wired with.
type Dependencies struct {
	UnitOfWork ports.UnitOfWork
	Stamper    ports.AuditStamper
	IDs        ports.IDGenerator

	// Health lists the components reported by /health/detailed.
	Health map[string]ports.Repository
}

// Server wraps the HTTP server and its dependencies.
type Server struct {
	cfg    *config.Config
	log    *slog.Logger
	router *gin.Engine
	http   *http.Server

	// Handlers
	healthHandler *handler.HealthHandler
	jokeHandler   *handler.JokeHandler
	roleHandler   *handler.RoleHandler
}

// New creates a new Server with all dependencies wired up.
func New(cfg *config.Config, log *slog.Logger, deps Dependencies) *Server {
	// Set Gin mode based on log level
	if cfg.Log.Level == "debug" {
		gin.SetMode(gin.DebugMode)
	} else {
		gin.SetMode(gin.ReleaseMode)
	}

	// Create router without default middleware
	router := gin.New()

	// Create facades
	healthService := usecase.NewHealthService(logger.WithComponent(log, "health"), deps.Health)
	jokeFacade := usecase.NewJokeFacade(deps.UnitOfWork, deps.Stamper, deps.IDs, log)
	roleFacade := usecase.NewRoleFacade(deps.UnitOfWork, log)

	s := &Server{
		cfg:           cfg,
		log:           log,
		router:        router,
		healthHandler: handler.NewHealthHandler(healthService),
		jokeHandler:   handler.NewJokeHandler(jokeFacade, cfg.Paging.DefaultLimit),
		roleHandler:   handler.NewRoleHandler(roleFacade),
	}

	s.setupMiddleware()
	s.setupRoutes()
	s.setupHTTPServer()

	return s
}

// setupMiddleware configures global middleware.
func (s *Server) setupMiddleware() {
	// Logging and Metrics wrap Recovery so a recovered panic is still
	// logged and counted with its 500 status.
	s.router.Use(middleware.RequestID())
	s.router.Use(middleware.Logging(logger.WithComponent(s.log, "http")))
	s.router.Use(middleware.Metrics())
	s.router.Use(middleware.Recovery(s.log))
	s.router.Use(middleware.CORS())
	s.router.Use(middleware.Actor())
}

// setupRoutes configures all HTTP routes.
func (s *Server) setupRoutes() {
	s.router.GET("/health", s.healthHandler.Health)
	s.router.GET("/health/detailed", s.healthHandler.DetailedHealth)
	s.router.GET("/metrics", gin.WrapH(promhttp.Handler()))

	// API v1 routes
	v1 := s.router.Group("/v1")
	{
		// Jokes
		v1.GET("/jokes", s.jokeHandler.Search)
		v1.POST("/jokes", s.jokeHandler.Add)
		v1.GET("/jokes/:uuid", s.jokeHandler.Get)
		v1.PUT("/jokes/:uuid", s.jokeHandler.Update)
		v1.DELETE("/jokes/:uuid", s.jokeHandler.Remove)
		v1.GET("/statistics/jokes", s.jokeHandler.Statistics)

		// Roles
		v1.GET("/roles", s.roleHandler.List)
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

// Run starts the HTTP server and blocks until shutdown.
// It handles graceful shutdown on SIGINT/SIGTERM.
func (s *Server) Run() error {
	// Channel to receive shutdown signals
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	defer signal.Stop(quit)

	// Channel to receive server errors
	errCh := make(chan error, 1)

	go func() {
		s.log.Info("starting HTTP server",
			"addr", s.cfg.Server.Addr(),
		)
		if err := s.http.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- fmt.Errorf("server error: %w", err)
		}
	}()

	// Wait for shutdown signal or error
	select {
	case sig := <-quit:
		s.log.Info("received shutdown signal", "signal", sig.String())
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
