package sentiment

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/reviewpulse/reviewpulse/internal/domain"
	"github.com/reviewpulse/reviewpulse/internal/logger"
	"github.com/reviewpulse/reviewpulse/internal/model"
)

type mockAppender struct {
	records []*domain.HistoryRecord
	err     error
}

func (m *mockAppender) Append(_ context.Context, record *domain.HistoryRecord) (int64, error) {
	if m.err != nil {
		return 0, m.err
	}
	m.records = append(m.records, record)
	return int64(len(m.records)), nil
}

// testBundle builds a tiny fitted artifact pair by hand: "delicious" pulls
// positive, "awful" pulls negative.
func testBundle() *model.Bundle {
	return &model.Bundle{
		Vectorizer: &model.Vectorizer{
			Vocabulary: map[string]int{"awful": 0, "delicious": 1},
			IDF:        []float64{1, 1},
			Version:    "test",
		},
		Classifier: &model.Classifier{
			Labels:      []string{"Negative", "Positive"},
			Weights:     [][]float64{{2, -2}, {-2, 2}},
			Bias:        []float64{0, 0},
			NumFeatures: 2,
			Version:     "test",
		},
	}
}

func newTestPipeline(bundle *model.Bundle, appender HistoryAppender) *Pipeline {
	return NewPipeline(bundle, appender, logger.NewNop(), nil)
}

func TestPipeline_Predict_AcceptedPositive(t *testing.T) {
	appender := &mockAppender{}
	p := newTestPipeline(testBundle(), appender)
	p.now = func() time.Time { return time.Date(2025, 3, 14, 15, 9, 26, 0, time.UTC) }

	result := p.Predict(context.Background(), "The food was delicious")

	if result.Outcome != domain.OutcomeAccepted {
		t.Fatalf("expected accepted outcome, got %s", result.Outcome)
	}
	if result.Label != domain.SentimentPositive {
		t.Errorf("expected positive, got %s", result.Label)
	}
	if result.Message != msgPositive {
		t.Errorf("expected %q, got %q", msgPositive, result.Message)
	}
	if result.Confidence <= 50 || result.Confidence > 100 {
		t.Errorf("expected confidence in (50, 100], got %f", result.Confidence)
	}

	if len(appender.records) != 1 {
		t.Fatalf("expected exactly one history record, got %d", len(appender.records))
	}
	record := appender.records[0]
	if record.Review != "The food was delicious" {
		t.Errorf("unexpected record review: %q", record.Review)
	}
	if record.Sentiment != domain.SentimentPositive {
		t.Errorf("unexpected record sentiment: %s", record.Sentiment)
	}
	if record.Confidence != result.Confidence {
		t.Errorf("record confidence %f does not match result %f", record.Confidence, result.Confidence)
	}
	if record.Timestamp != "2025-03-14 15:09:26" {
		t.Errorf("unexpected record timestamp: %q", record.Timestamp)
	}
}

func TestPipeline_Predict_AcceptedNegative(t *testing.T) {
	appender := &mockAppender{}
	p := newTestPipeline(testBundle(), appender)

	result := p.Predict(context.Background(), "The food was awful")

	if result.Label != domain.SentimentNegative {
		t.Errorf("expected negative, got %s", result.Label)
	}
	if result.Message != msgNegative {
		t.Errorf("expected %q, got %q", msgNegative, result.Message)
	}
}

func TestPipeline_Predict_RejectedSkipsModelAndHistory(t *testing.T) {
	appender := &mockAppender{}
	p := newTestPipeline(testBundle(), appender)

	result := p.Predict(context.Background(), "The weather today is sunny and warm")

	if result.Outcome != domain.OutcomeRejected {
		t.Fatalf("expected rejected outcome, got %s", result.Outcome)
	}
	if result.Label != domain.SentimentError {
		t.Errorf("expected error label, got %s", result.Label)
	}
	if result.Confidence != 0 {
		t.Errorf("expected zero confidence, got %f", result.Confidence)
	}
	if result.Message != MsgNotRestaurantish {
		t.Errorf("expected %q, got %q", MsgNotRestaurantish, result.Message)
	}
	if len(appender.records) != 0 {
		t.Errorf("expected no history records for a rejection, got %d", len(appender.records))
	}
}

func TestPipeline_Predict_RejectionIsRepeatable(t *testing.T) {
	appender := &mockAppender{}
	p := newTestPipeline(testBundle(), appender)

	first := p.Predict(context.Background(), "")
	second := p.Predict(context.Background(), "")

	if first != second {
		t.Errorf("expected identical rejection results, got %+v and %+v", first, second)
	}
	if first.Message != MsgEmptyReview {
		t.Errorf("expected %q, got %q", MsgEmptyReview, first.Message)
	}
}

func TestPipeline_Predict_PersistenceFailure(t *testing.T) {
	appender := &mockAppender{err: errors.New("disk full")}
	p := newTestPipeline(testBundle(), appender)

	result := p.Predict(context.Background(), "The food was delicious")

	if result.Outcome != domain.OutcomePersistenceError {
		t.Fatalf("expected persistence error outcome, got %s", result.Outcome)
	}
	if result.Label != domain.SentimentError {
		t.Errorf("expected error label, got %s", result.Label)
	}
	if !strings.Contains(result.Message, "could not be saved") {
		t.Errorf("expected save failure message, got %q", result.Message)
	}
	if !strings.Contains(result.Message, "disk full") {
		t.Errorf("expected underlying error in message, got %q", result.Message)
	}
}

func TestPipeline_Predict_PanicBecomesInternalError(t *testing.T) {
	bundle := testBundle()
	// Truncated weight rows make inference index out of range.
	bundle.Classifier.Weights = [][]float64{{2}, {-2}}
	appender := &mockAppender{}
	p := newTestPipeline(bundle, appender)

	result := p.Predict(context.Background(), "The food was delicious")

	if result.Outcome != domain.OutcomeInternalError {
		t.Fatalf("expected internal error outcome, got %s", result.Outcome)
	}
	if result.Label != domain.SentimentError {
		t.Errorf("expected error label, got %s", result.Label)
	}
	if result.Confidence != 0 {
		t.Errorf("expected zero confidence, got %f", result.Confidence)
	}
	if len(appender.records) != 0 {
		t.Errorf("expected no history records after a panic, got %d", len(appender.records))
	}
}

func TestMessageFor_AllLabels(t *testing.T) {
	cases := []struct {
		label domain.SentimentLabel
		want  string
	}{
		{domain.SentimentPositive, msgPositive},
		{domain.SentimentNegative, msgNegative},
		{domain.SentimentNeutral, msgNeutral},
		{domain.SentimentLabel("something-else"), msgNeutral},
	}

	for _, tc := range cases {
		if got := MessageFor(tc.label); got != tc.want {
			t.Errorf("MessageFor(%s): expected %q, got %q", tc.label, tc.want, got)
		}
	}
}
