// Package domain defines the core types shared across the review service.
package domain

// SentimentLabel is the sentiment class assigned to a review.
type SentimentLabel string

// Sentiment labels. SentimentError is a pipeline-level sentinel used for
// rejected or failed requests; the model itself never emits it.
const (
	SentimentPositive SentimentLabel = "Positive"
	SentimentNegative SentimentLabel = "Negative"
	SentimentNeutral  SentimentLabel = "Neutral"
	SentimentError    SentimentLabel = "Error"
)

// Outcome categorizes how a prediction request was resolved. It lets callers
// distinguish user-correctable rejections from genuine internal faults
// without parsing messages.
type Outcome int

const (
	// OutcomeAccepted means the review was classified and recorded.
	OutcomeAccepted Outcome = iota
	// OutcomeRejected means the review failed input validation.
	OutcomeRejected
	// OutcomeInternalError means inference failed unexpectedly.
	OutcomeInternalError
	// OutcomePersistenceError means classification succeeded but the
	// history record could not be saved.
	OutcomePersistenceError
)

// String returns a short name for the outcome, used in logs and metrics.
func (o Outcome) String() string {
	switch o {
	case OutcomeAccepted:
		return "accepted"
	case OutcomeRejected:
		return "rejected"
	case OutcomeInternalError:
		return "internal_error"
	case OutcomePersistenceError:
		return "persistence_error"
	default:
		return "unknown"
	}
}

// PredictionResult is the user-facing result of a prediction request.
// Confidence is the maximum class posterior as a percentage in [0,100],
// rounded to two decimals; it is fixed at 0 for Error results.
type PredictionResult struct {
	Label      SentimentLabel `json:"sentiment"`
	Confidence float64        `json:"confidence"`
	Message    string         `json:"message"`

	// Outcome is internal routing information, not part of the API body.
	Outcome Outcome `json:"-"`
}

// TimestampLayout is the fixed format for history record timestamps.
const TimestampLayout = "2006-01-02 15:04:05"

// HistoryRecord is one persisted, immutable log entry of an accepted
// classification. The store assigns ID monotonically on append.
type HistoryRecord struct {
	ID         int64          `db:"id"         json:"-"`
	Review     string         `db:"review"     json:"review"`
	Sentiment  SentimentLabel `db:"sentiment"  json:"sentiment"`
	Confidence float64        `db:"confidence" json:"confidence"`
	Timestamp  string         `db:"timestamp"  json:"timestamp"`
}
