// Package telemetry provides Prometheus metrics and OpenTelemetry tracing
// for the review service.
package telemetry

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/trace"
)

const serviceName = "reviewpulse"

// Metrics holds all service Prometheus metrics.
type Metrics struct {
	// ReviewsClassified counts accepted classifications by sentiment label.
	ReviewsClassified *prometheus.CounterVec
	// ReviewsRejected counts validation rejections by validator stage.
	ReviewsRejected *prometheus.CounterVec
	// InferenceFailures counts internal inference faults.
	InferenceFailures prometheus.Counter
	// HistoryAppendFailures counts failed history store appends.
	HistoryAppendFailures prometheus.Counter
	// PredictionDuration observes end-to-end prediction latency.
	PredictionDuration prometheus.Histogram
}

// Provider wraps telemetry providers.
type Provider struct {
	Tracer  trace.Tracer
	Metrics *Metrics
}

// NewProvider initializes telemetry with Prometheus metrics. Call once per
// process; metrics register against the default registry.
func NewProvider() *Provider {
	return &Provider{
		Tracer:  otel.Tracer(serviceName),
		Metrics: initMetrics(),
	}
}

// Handler returns the Prometheus HTTP handler for the /metrics endpoint.
func (p *Provider) Handler() http.Handler {
	return promhttp.Handler()
}

func initMetrics() *Metrics {
	return &Metrics{
		ReviewsClassified: promauto.NewCounterVec(prometheus.CounterOpts{
			Name: "reviewpulse_reviews_classified_total",
			Help: "Total reviews classified, by sentiment label",
		}, []string{"sentiment"}),

		ReviewsRejected: promauto.NewCounterVec(prometheus.CounterOpts{
			Name: "reviewpulse_reviews_rejected_total",
			Help: "Total reviews rejected by input validation, by stage",
		}, []string{"stage"}),

		InferenceFailures: promauto.NewCounter(prometheus.CounterOpts{
			Name: "reviewpulse_inference_failures_total",
			Help: "Total internal inference faults",
		}),

		HistoryAppendFailures: promauto.NewCounter(prometheus.CounterOpts{
			Name: "reviewpulse_history_append_failures_total",
			Help: "Total failed history store appends",
		}),

		PredictionDuration: promauto.NewHistogram(prometheus.HistogramOpts{
			Name:    "reviewpulse_prediction_duration_seconds",
			Help:    "End-to-end prediction latency",
			Buckets: prometheus.DefBuckets,
		}),
	}
}
