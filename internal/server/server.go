// Package server exposes the triage engine as a JSON HTTP API.
package server

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"github.com/arkodeep/healthtriage/internal/config"
	"github.com/arkodeep/healthtriage/internal/engine"
)

// Server wraps the gin router and the HTTP listener lifecycle.
type Server struct {
	engine *engine.Engine
	cfg    config.ServerConfig
	logger *slog.Logger
	router *gin.Engine
}

// New builds the server and its routes.
func New(e *engine.Engine, cfg config.ServerConfig, logger *slog.Logger) *Server {
	if logger == nil {
		logger = slog.Default()
	}
	s := &Server{engine: e, cfg: cfg, logger: logger}
	s.router = s.buildRouter()
	return s
}

// Router exposes the handler for tests.
func (s *Server) Router() http.Handler {
	return s.router
}

func (s *Server) buildRouter() *gin.Engine {
	router := gin.New()

	origins := s.cfg.AllowedOrigins
	if len(origins) == 0 {
		origins = []string{"*"}
	}
	router.Use(
		gin.Recovery(),
		limitBodySize(1<<20), // 1MB max body
		cors.New(cors.Config{
			AllowOrigins: origins,
			AllowMethods: []string{"GET", "POST", "OPTIONS"},
			AllowHeaders: []string{"Origin", "Content-Type"},
			MaxAge:       12 * time.Hour,
		}),
	)

	router.GET("/healthz", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	api := router.Group("/api")
	api.GET("/status", s.handleStatus)
	api.GET("/symptoms", s.handleSymptoms)
	api.POST("/generate-steps", s.handleGenerateSteps)
	api.POST("/analyze", s.handleAnalyze)
	api.GET("/stats", s.handleStats)

	return router
}

func (s *Server) handleStatus(c *gin.Context) {
	c.JSON(http.StatusOK, s.engine.Status())
}

func (s *Server) handleSymptoms(c *gin.Context) {
	symptoms := s.engine.Symptoms()
	if symptoms == nil {
		symptoms = []string{}
	}
	c.JSON(http.StatusOK, gin.H{"symptoms": symptoms})
}

type generateStepsRequest struct {
	Complaint string `json:"complaint"`
}

func (s *Server) handleGenerateSteps(c *gin.Context) {
	var req generateStepsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid payload"})
		return
	}

	ok, msg := s.engine.ValidateComplaint(req.Complaint)
	if !ok {
		c.JSON(http.StatusOK, gin.H{"valid": false, "error": msg, "steps": []any{}})
		return
	}

	c.JSON(http.StatusOK, gin.H{"valid": true, "steps": s.engine.Plan(req.Complaint)})
}

func (s *Server) handleAnalyze(c *gin.Context) {
	var in engine.Intake
	if err := c.ShouldBindJSON(&in); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid payload"})
		return
	}

	c.JSON(http.StatusOK, s.engine.Analyze(c.Request.Context(), in))
}

func (s *Server) handleStats(c *gin.Context) {
	stats, err := s.engine.Stats(c.Request.Context())
	if err != nil {
		s.logger.ErrorContext(c.Request.Context(), "stats query failed", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "analytics unavailable"})
		return
	}
	c.JSON(http.StatusOK, stats)
}

// Run serves until ctx is cancelled or a termination signal arrives, then
// shuts down gracefully within the configured timeout.
func (s *Server) Run(ctx context.Context) error {
	srv := &http.Server{
		Addr:    s.cfg.Addr(),
		Handler: s.router,
	}

	errCh := make(chan error, 1)
	go func() {
		s.logger.Info("listening", slog.String("addr", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err := <-errCh:
		return err
	case <-stop:
	case <-ctx.Done():
	}

	s.logger.Info("shutting down")
	timeout := s.cfg.ShutdownTimeout
	if timeout <= 0 {
		timeout = 10 * time.Second
	}
	shutdownCtx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()
	return srv.Shutdown(shutdownCtx)
}

func limitBodySize(maxBytes int64) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, maxBytes)
		c.Next()
	}
}
