package sentiment

import "github.com/reviewpulse/reviewpulse/internal/domain"

// Canned user-facing messages per sentiment.
const (
	msgPositive = "Great! Keep visiting and enjoy more delicious food."
	msgNegative = "Sorry for the bad experience. The restaurant should improve!"
	msgNeutral  = "It seems like you had an average experience."
)

// MessageFor maps a predicted label to its user-facing sentence. Total over
// all labels: anything the model emits that is not Positive or Negative
// falls back to the neutral message.
func MessageFor(label domain.SentimentLabel) string {
	switch label {
	case domain.SentimentPositive:
		return msgPositive
	case domain.SentimentNegative:
		return msgNegative
	default:
		return msgNeutral
	}
}
