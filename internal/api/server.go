package api

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/reviewpulse/reviewpulse/internal/telemetry"
)

// Default timeout values.
const (
	defaultReadTimeout     = 30 * time.Second
	defaultWriteTimeout    = 60 * time.Second
	defaultIdleTimeout     = 120 * time.Second
	DefaultShutdownTimeout = 30 * time.Second
)

// ServerConfig holds HTTP server configuration.
type ServerConfig struct {
	Port             int
	Debug            bool
	ReadTimeout      time.Duration
	WriteTimeout     time.Duration
	IdleTimeout      time.Duration
	RateLimitEnabled bool
	RateLimitRPS     int
	RateLimitBurst   int
}

// Server is the HTTP server with lifecycle management.
type Server struct {
	router *gin.Engine
	server *http.Server
	logger Logger
}

// NewServer creates the HTTP server with the standard middleware stack and
// all service routes. The telemetry provider may be nil, in which case no
// /metrics endpoint is exposed.
func NewServer(handler *Handler, cfg ServerConfig, tp *telemetry.Provider, log Logger) *Server {
	if cfg.ReadTimeout == 0 {
		cfg.ReadTimeout = defaultReadTimeout
	}
	if cfg.WriteTimeout == 0 {
		cfg.WriteTimeout = defaultWriteTimeout
	}
	if cfg.IdleTimeout == 0 {
		cfg.IdleTimeout = defaultIdleTimeout
	}

	if cfg.Debug {
		gin.SetMode(gin.DebugMode)
	} else {
		gin.SetMode(gin.ReleaseMode)
	}

	router := gin.New()
	router.Use(RecoveryMiddleware(log))
	router.Use(RequestLoggerMiddleware(log))
	router.Use(CORSMiddleware())

	setupRoutes(router, handler, cfg, tp, log)

	httpServer := &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.Port),
		Handler:      router,
		ReadTimeout:  cfg.ReadTimeout,
		WriteTimeout: cfg.WriteTimeout,
		IdleTimeout:  cfg.IdleTimeout,
	}

	return &Server{
		router: router,
		server: httpServer,
		logger: log,
	}
}

func setupRoutes(router *gin.Engine, handler *Handler, cfg ServerConfig, tp *telemetry.Provider, log Logger) {
	router.GET("/health", handler.HealthCheck)
	router.GET("/ready", handler.ReadyCheck)
	if tp != nil {
		router.GET("/metrics", gin.WrapH(tp.Handler()))
	}

	rateLimit := func(c *gin.Context) { c.Next() }
	if cfg.RateLimitEnabled {
		rateLimit = RateLimitMiddleware(cfg.RateLimitRPS, cfg.RateLimitBurst, log)
	}

	// Original flat routes, kept for frontend compatibility.
	router.POST("/predict", rateLimit, handler.Predict)
	router.GET("/history", handler.History)

	v1 := router.Group("/api/v1")
	v1.POST("/predict", rateLimit, handler.Predict)
	v1.GET("/history", handler.History)
	v1.GET("/stats", handler.Stats)
}

// Router returns the underlying Gin engine.
func (s *Server) Router() *gin.Engine {
	return s.router
}

// Start starts the HTTP server and blocks until shutdown or error.
func (s *Server) Start() error {
	s.logger.Info("starting HTTP server", "address", s.server.Addr)

	if err := s.server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return fmt.Errorf("server error: %w", err)
	}
	return nil
}

// Shutdown gracefully shuts down the server.
func (s *Server) Shutdown(ctx context.Context) error {
	s.logger.Info("shutting down HTTP server")
	if err := s.server.Shutdown(ctx); err != nil {
		return fmt.Errorf("server shutdown: %w", err)
	}
	return nil
}
