// Package sentiment implements the review inference pipeline: input
// validation, vectorization, classification, message mapping, and history
// persistence.
package sentiment

import (
	"context"
	"fmt"
	"math"
	"time"

	"go.opentelemetry.io/otel/trace"

	"github.com/reviewpulse/reviewpulse/internal/domain"
	"github.com/reviewpulse/reviewpulse/internal/logger"
	"github.com/reviewpulse/reviewpulse/internal/model"
	"github.com/reviewpulse/reviewpulse/internal/telemetry"
)

const percentScale = 100

// HistoryAppender is the pipeline's view of the history store. The pipeline
// only appends; querying belongs to the API layer.
type HistoryAppender interface {
	Append(ctx context.Context, record *domain.HistoryRecord) (int64, error)
}

// Pipeline orchestrates a single prediction: validator, vectorizer,
// classifier, message mapper, history append. All dependencies are provided
// at construction; the artifacts are read-only after load, so a Pipeline is
// safe for concurrent use.
type Pipeline struct {
	validator *Validator
	bundle    *model.Bundle
	history   HistoryAppender
	telemetry *telemetry.Provider
	logger    logger.Logger
	now       func() time.Time
}

// NewPipeline creates a pipeline over the loaded artifact bundle. The
// telemetry provider may be nil.
func NewPipeline(bundle *model.Bundle, history HistoryAppender, log logger.Logger, tp *telemetry.Provider) *Pipeline {
	return &Pipeline{
		validator: NewValidator(),
		bundle:    bundle,
		history:   history,
		telemetry: tp,
		logger:    log,
		now:       time.Now,
	}
}

// Predict classifies a review text and records the result. It never returns
// an error: validation rejections, internal faults, and persistence
// failures all come back as Error-labeled results with confidence 0, each
// tagged with a distinct Outcome.
func (p *Pipeline) Predict(ctx context.Context, text string) (result domain.PredictionResult) {
	start := time.Now()
	if p.telemetry != nil {
		var span trace.Span
		ctx, span = p.telemetry.Tracer.Start(ctx, "sentiment.predict")
		defer span.End()
		defer func() {
			p.telemetry.Metrics.PredictionDuration.Observe(time.Since(start).Seconds())
		}()
	}

	// One bad request must never crash the service: any panic below
	// becomes an internal-error result.
	defer func() {
		if r := recover(); r != nil {
			p.logger.Error("inference panic recovered", logger.Any("panic", r))
			if p.telemetry != nil {
				p.telemetry.Metrics.InferenceFailures.Inc()
			}
			result = errorResult(fmt.Sprintf("internal error: %v", r), domain.OutcomeInternalError)
		}
	}()

	if rejection := p.validator.Validate(text); rejection != nil {
		p.logger.Debug("review rejected",
			logger.String("stage", rejection.Stage),
		)
		if p.telemetry != nil {
			p.telemetry.Metrics.ReviewsRejected.WithLabelValues(rejection.Stage).Inc()
		}
		return errorResult(rejection.Message, domain.OutcomeRejected)
	}

	vec := p.bundle.Vectorizer.Transform(text)
	predicted, probs := p.bundle.Classifier.Predict(vec)

	label := domain.SentimentLabel(predicted)
	confidence := roundPercent(maxProb(probs))
	message := MessageFor(label)

	record := &domain.HistoryRecord{
		Review:     text,
		Sentiment:  label,
		Confidence: confidence,
		Timestamp:  p.now().Format(domain.TimestampLayout),
	}
	id, err := p.history.Append(ctx, record)
	if err != nil {
		p.logger.Error("failed to append history record", logger.Error(err))
		if p.telemetry != nil {
			p.telemetry.Metrics.HistoryAppendFailures.Inc()
		}
		// The record was not saved; never report it as such.
		return errorResult("classification succeeded but the review could not be saved: "+err.Error(),
			domain.OutcomePersistenceError)
	}

	p.logger.Info("review classified",
		logger.String("sentiment", string(label)),
		logger.Float64("confidence", confidence),
		logger.Int64("history_id", id),
	)
	if p.telemetry != nil {
		p.telemetry.Metrics.ReviewsClassified.WithLabelValues(string(label)).Inc()
	}

	return domain.PredictionResult{
		Label:      label,
		Confidence: confidence,
		Message:    message,
		Outcome:    domain.OutcomeAccepted,
	}
}

func errorResult(message string, outcome domain.Outcome) domain.PredictionResult {
	return domain.PredictionResult{
		Label:      domain.SentimentError,
		Confidence: 0,
		Message:    message,
		Outcome:    outcome,
	}
}

func maxProb(probs []float64) float64 {
	var best float64
	for _, p := range probs {
		if p > best {
			best = p
		}
	}
	return best
}

// roundPercent converts a posterior probability to a percentage rounded to
// two decimals.
func roundPercent(p float64) float64 {
	return math.Round(p*percentScale*100) / 100
}
