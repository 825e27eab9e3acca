// Package server exposes the journal over HTTP.
package server

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/gupta19esha/HealthScribeGPT/pkg/journal"
	"github.com/gupta19esha/HealthScribeGPT/pkg/logger"
)

const shutdownTimeout = 10 * time.Second

// Config configures the HTTP server.
type Config struct {
	Addr         string
	Debug        bool
	AllowOrigins []string
}

// Server serves the journal API.
type Server struct {
	cfg     Config
	journal *journal.Service
	engine  *gin.Engine
}

// New builds the router for svc.
func New(svc *journal.Service, cfg Config) *Server {
	if cfg.Debug {
		gin.SetMode(gin.DebugMode)
	} else {
		gin.SetMode(gin.ReleaseMode)
	}

	s := &Server{cfg: cfg, journal: svc, engine: gin.New()}
	s.engine.Use(gin.Recovery(), RequestID(), RequestLogger(), CORS(cfg.AllowOrigins))
	s.routes()
	return s
}

func (s *Server) routes() {
	r := s.engine
	r.GET("/healthz", s.healthz)

	api := r.Group("/api")
	{
		api.POST("/analyze", s.analyze)

		api.GET("/entries", s.listEntries)
		api.POST("/entries", s.createEntry)

		api.GET("/goals", s.listGoals)
		api.POST("/goals", s.addGoal)
		api.POST("/goals/:id/toggle", s.toggleGoal)

		api.GET("/habits", s.listHabits)
		api.POST("/habits", s.addHabit)
		api.POST("/habits/:id/check", s.checkHabit)

		api.GET("/meals", s.listMeals)
		api.POST("/meals", s.addMeal)

		api.GET("/water", s.getWater)
		api.POST("/water", s.updateWater)

		api.GET("/report", s.getReport)
		api.POST("/analytics", s.analytics)
	}
}

// Handler returns the HTTP handler.
func (s *Server) Handler() http.Handler {
	return s.engine
}

// Run serves until ctx is done, then shuts down gracefully.
func (s *Server) Run(ctx context.Context) error {
	srv := &http.Server{
		Addr:              s.cfg.Addr,
		Handler:           s.engine,
		ReadHeaderTimeout: 10 * time.Second,
		IdleTimeout:       120 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		logger.Info("HTTP server listening", "addr", s.cfg.Addr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	logger.Info("shutting down HTTP server")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return err
	}
	return <-errCh
}
