package training

import (
	"math"
	"strings"
	"testing"

	"github.com/reviewpulse/reviewpulse/internal/domain"
	"github.com/reviewpulse/reviewpulse/internal/logger"
	"github.com/reviewpulse/reviewpulse/internal/model"
)

// trainingSet is a tiny separable corpus: positive reviews say delicious,
// negative reviews say awful, neutral reviews say average.
func trainingSet() []Document {
	var docs []Document
	for i := 0; i < 10; i++ {
		docs = append(docs,
			Document{Text: "the food was delicious and wonderful", Label: domain.SentimentPositive},
			Document{Text: "the food was awful and terrible", Label: domain.SentimentNegative},
			Document{Text: "the food was average and ordinary", Label: domain.SentimentNeutral},
		)
	}
	return docs
}

func fitTestBundle(t *testing.T) *model.Bundle {
	t.Helper()

	trainer := NewTrainer(Config{MaxFeatures: 50, Epochs: 50, Seed: 42}, logger.NewNop())
	bundle, err := trainer.Fit(trainingSet())
	if err != nil {
		t.Fatalf("fit: %v", err)
	}
	return bundle
}

func TestTrainer_Fit_LearnsSeparableCorpus(t *testing.T) {
	bundle := fitTestBundle(t)

	cases := []struct {
		text string
		want string
	}{
		{"delicious wonderful food", string(domain.SentimentPositive)},
		{"awful terrible food", string(domain.SentimentNegative)},
		{"average ordinary food", string(domain.SentimentNeutral)},
	}

	for _, tc := range cases {
		vec := bundle.Vectorizer.Transform(tc.text)
		predicted, probs := bundle.Classifier.Predict(vec)
		if predicted != tc.want {
			t.Errorf("%q: expected %s, got %s", tc.text, tc.want, predicted)
		}

		var sum float64
		for _, p := range probs {
			sum += p
		}
		if math.Abs(sum-1) > 1e-9 {
			t.Errorf("%q: posterior sums to %f", tc.text, sum)
		}
	}
}

func TestTrainer_Fit_StampsMatchingVersions(t *testing.T) {
	bundle := fitTestBundle(t)

	if bundle.Vectorizer.Version == "" {
		t.Fatal("expected non-empty artifact version")
	}
	if bundle.Vectorizer.Version != bundle.Classifier.Version {
		t.Errorf("version mismatch: vectorizer %q, classifier %q",
			bundle.Vectorizer.Version, bundle.Classifier.Version)
	}
	if bundle.Classifier.NumFeatures != bundle.Vectorizer.Dim() {
		t.Errorf("dimension mismatch: classifier %d, vectorizer %d",
			bundle.Classifier.NumFeatures, bundle.Vectorizer.Dim())
	}
}

func TestTrainer_Fit_LabelsSorted(t *testing.T) {
	bundle := fitTestBundle(t)

	labels := bundle.Classifier.Labels
	if len(labels) != 3 {
		t.Fatalf("expected 3 labels, got %v", labels)
	}
	for i := 1; i < len(labels); i++ {
		if labels[i] <= labels[i-1] {
			t.Errorf("expected sorted labels, got %v", labels)
		}
	}
}

func TestTrainer_Fit_EmptySetFails(t *testing.T) {
	trainer := NewTrainer(Config{}, logger.NewNop())

	if _, err := trainer.Fit(nil); err == nil {
		t.Fatal("expected error for empty training set")
	}
}

func TestTrainer_Fit_DeterministicForSeed(t *testing.T) {
	cfg := Config{MaxFeatures: 50, Epochs: 20, Seed: 7}

	a, err := NewTrainer(cfg, logger.NewNop()).Fit(trainingSet())
	if err != nil {
		t.Fatalf("fit: %v", err)
	}
	b, err := NewTrainer(cfg, logger.NewNop()).Fit(trainingSet())
	if err != nil {
		t.Fatalf("fit: %v", err)
	}

	for k := range a.Classifier.Weights {
		for j := range a.Classifier.Weights[k] {
			if math.Abs(a.Classifier.Weights[k][j]-b.Classifier.Weights[k][j]) > 1e-12 {
				t.Fatalf("weights differ at [%d][%d]", k, j)
			}
		}
	}
}

func TestBalancedClassWeights(t *testing.T) {
	labels := []string{"a", "a", "a", "b"}
	_, index := uniqueSorted(labels)

	weights := balancedClassWeights(labels, index, 2)

	// weight_c = N / (K * N_c): 4/(2*3) for a, 4/(2*1) for b.
	if math.Abs(weights[index["a"]]-4.0/6) > 1e-9 {
		t.Errorf("expected weight 2/3 for majority class, got %f", weights[index["a"]])
	}
	if math.Abs(weights[index["b"]]-2) > 1e-9 {
		t.Errorf("expected weight 2 for minority class, got %f", weights[index["b"]])
	}
}

func TestEvaluate_PerfectClassifier(t *testing.T) {
	bundle := fitTestBundle(t)
	test := []Document{
		{Text: "delicious wonderful food", Label: domain.SentimentPositive},
		{Text: "awful terrible food", Label: domain.SentimentNegative},
	}

	reports, accuracy := Evaluate(bundle, test)

	if accuracy != 1 {
		t.Errorf("expected accuracy 1, got %f", accuracy)
	}
	for _, r := range reports {
		if r.Precision != 1 || r.Recall != 1 || r.F1 != 1 {
			t.Errorf("expected perfect metrics for %s, got %+v", r.Label, r)
		}
	}
}

func TestFormatReport_ContainsLabelsAndAccuracy(t *testing.T) {
	reports := []ClassReport{
		{Label: "Negative", Precision: 0.9, Recall: 0.8, F1: 0.85, Support: 10},
		{Label: "Positive", Precision: 0.95, Recall: 0.9, F1: 0.92, Support: 12},
	}

	out := FormatReport(reports, 0.875)

	for _, want := range []string{"Negative", "Positive", "precision", "recall", "accuracy: 0.8750"} {
		if !strings.Contains(out, want) {
			t.Errorf("expected report to contain %q:\n%s", want, out)
		}
	}
}
