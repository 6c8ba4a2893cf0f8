package api

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/reviewpulse/reviewpulse/internal/database"
	"github.com/reviewpulse/reviewpulse/internal/domain"
	"github.com/reviewpulse/reviewpulse/internal/sentiment"
)

// Logger defines the logging interface used by the API layer.
type Logger interface {
	Debug(msg string, keysAndValues ...any)
	Info(msg string, keysAndValues ...any)
	Warn(msg string, keysAndValues ...any)
	Error(msg string, keysAndValues ...any)
}

// Handler handles HTTP requests for the review service.
type Handler struct {
	pipeline       *sentiment.Pipeline
	historyRepo    *database.ReviewRepository
	pingDB         func(ctx context.Context) error
	serviceName    string
	serviceVersion string
	logger         Logger
}

// NewHandler creates a new API handler.
func NewHandler(
	pipeline *sentiment.Pipeline,
	historyRepo *database.ReviewRepository,
	pingDB func(ctx context.Context) error,
	serviceName, serviceVersion string,
	logger Logger,
) *Handler {
	return &Handler{
		pipeline:       pipeline,
		historyRepo:    historyRepo,
		pingDB:         pingDB,
		serviceName:    serviceName,
		serviceVersion: serviceVersion,
		logger:         logger,
	}
}

// Predict handles POST /predict and POST /api/v1/predict.
// The response is always a well-formed prediction body with HTTP 200;
// rejections and faults are carried in the sentiment/message fields, the
// way browser frontends for this API expect them. Only a body that is not
// JSON at all yields 400.
func (h *Handler) Predict(c *gin.Context) {
	var req PredictRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warn("invalid prediction request", "error", err)
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	result := h.pipeline.Predict(c.Request.Context(), req.Review)

	switch result.Outcome {
	case domain.OutcomeAccepted:
		h.logger.Debug("review accepted", "sentiment", result.Label)
	case domain.OutcomeRejected:
		h.logger.Debug("review rejected")
	default:
		h.logger.Error("prediction failed", "outcome", result.Outcome.String(), "message", result.Message)
	}

	c.JSON(http.StatusOK, result)
}

// History handles GET /history and GET /api/v1/history. Records come back
// newest first.
func (h *Handler) History(c *gin.Context) {
	records, err := h.historyRepo.List(c.Request.Context())
	if err != nil {
		h.logger.Error("failed to list history", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load history"})
		return
	}

	c.JSON(http.StatusOK, records)
}

// Stats handles GET /api/v1/stats.
func (h *Handler) Stats(c *gin.Context) {
	stats, err := h.historyRepo.Stats(c.Request.Context())
	if err != nil {
		h.logger.Error("failed to aggregate stats", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load stats"})
		return
	}

	c.JSON(http.StatusOK, stats)
}

// HealthCheck handles GET /health.
func (h *Handler) HealthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":  "healthy",
		"service": h.serviceName,
		"version": h.serviceVersion,
	})
}

// ReadyCheck handles GET /ready. Readiness requires the history store to be
// reachable; the model artifacts were already verified at startup.
func (h *Handler) ReadyCheck(c *gin.Context) {
	if err := h.pingDB(c.Request.Context()); err != nil {
		h.logger.Warn("readiness check failed", "error", err)
		c.JSON(http.StatusServiceUnavailable, gin.H{
			"status": "not ready",
			"checks": gin.H{"database": err.Error()},
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status": "ready",
		"checks": gin.H{"database": "ok"},
	})
}
