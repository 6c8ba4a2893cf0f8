package model

import "math"

// Classifier is a fitted multinomial logistic regression model over the
// vectorizer's output space. Fields are exported for gob serialization; a
// loaded Classifier is immutable and safe for concurrent Predict calls.
type Classifier struct {
	// Labels are the class names in fixed sorted order; Weights and Bias
	// rows align with this order.
	Labels []string
	// Weights holds one weight row per class, each NumFeatures wide.
	Weights [][]float64
	// Bias holds one intercept per class.
	Bias []float64
	// NumFeatures is the expected input dimension.
	NumFeatures int
	// Version ties the classifier to the vectorizer trained alongside it.
	Version string
}

// Predict scores a feature vector and returns the best label along with the
// full class posterior distribution, aligned with Labels. Ties resolve to
// the first label in sorted order, which is deterministic for a given
// artifact and input.
func (c *Classifier) Predict(vec FeatureVector) (string, []float64) {
	scores := make([]float64, len(c.Labels))
	for k := range c.Labels {
		score := c.Bias[k]
		row := c.Weights[k]
		for i, idx := range vec.Indices {
			score += row[idx] * vec.Values[i]
		}
		scores[k] = score
	}

	probs := softmax(scores)

	best := 0
	for k := 1; k < len(probs); k++ {
		if probs[k] > probs[best] {
			best = k
		}
	}

	return c.Labels[best], probs
}

// softmax converts raw scores into a probability distribution. The max
// score is subtracted first for numerical stability.
func softmax(scores []float64) []float64 {
	maxScore := math.Inf(-1)
	for _, s := range scores {
		if s > maxScore {
			maxScore = s
		}
	}

	probs := make([]float64, len(scores))
	var sum float64
	for k, s := range scores {
		probs[k] = math.Exp(s - maxScore)
		sum += probs[k]
	}
	for k := range probs {
		probs[k] /= sum
	}

	return probs
}
