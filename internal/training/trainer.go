package training

import (
	"fmt"
	"math/rand"
	"sort"
	"time"

	"github.com/reviewpulse/reviewpulse/internal/logger"
	"github.com/reviewpulse/reviewpulse/internal/model"
)

// Default hyperparameters. The model is small enough that plain SGD on
// softmax cross-entropy converges in a few hundred epochs.
const (
	DefaultMaxFeatures  = 2000
	DefaultEpochs       = 300
	DefaultLearningRate = 0.5
	DefaultL2           = 1e-4
)

// Config holds training hyperparameters.
type Config struct {
	MaxFeatures  int
	Epochs       int
	LearningRate float64
	L2           float64
	Seed         int64
}

// SetDefaults applies default hyperparameters where unset.
func (c *Config) SetDefaults() {
	if c.MaxFeatures == 0 {
		c.MaxFeatures = DefaultMaxFeatures
	}
	if c.Epochs == 0 {
		c.Epochs = DefaultEpochs
	}
	if c.LearningRate == 0 {
		c.LearningRate = DefaultLearningRate
	}
	if c.L2 == 0 {
		c.L2 = DefaultL2
	}
}

// Trainer fits the vectorizer and classifier on a labeled dataset.
type Trainer struct {
	config Config
	logger logger.Logger
}

// NewTrainer creates a trainer with the given hyperparameters.
func NewTrainer(cfg Config, log logger.Logger) *Trainer {
	cfg.SetDefaults()
	return &Trainer{config: cfg, logger: log}
}

// Fit fits the vectorizer on the training documents only, then trains a
// class-weight-balanced multinomial logistic regression on the vectorized
// split. Both artifacts are stamped with the same fresh version string.
func (t *Trainer) Fit(train []Document) (*model.Bundle, error) {
	if len(train) == 0 {
		return nil, fmt.Errorf("empty training set")
	}

	version := time.Now().UTC().Format("20060102T150405Z")

	texts := make([]string, len(train))
	labels := make([]string, len(train))
	for i, doc := range train {
		texts[i] = doc.Text
		labels[i] = string(doc.Label)
	}

	vectorizer := model.NewVectorizer()
	vectorizer.Fit(texts, t.config.MaxFeatures)
	vectorizer.Version = version
	t.logger.Info("vectorizer fitted",
		logger.Int("vocabulary_size", vectorizer.Dim()),
		logger.Int("documents", len(texts)),
	)

	vectors := make([]model.FeatureVector, len(texts))
	for i, text := range texts {
		vectors[i] = vectorizer.Transform(text)
	}

	classifier := t.fitClassifier(vectors, labels, vectorizer.Dim())
	classifier.Version = version

	return &model.Bundle{Vectorizer: vectorizer, Classifier: classifier}, nil
}

// fitClassifier runs SGD on softmax cross-entropy. Class weights are
// balanced, weight_c = N / (K * N_c), so the small neutral class is not
// drowned out by the binary bulk of the dataset.
func (t *Trainer) fitClassifier(vectors []model.FeatureVector, labels []string, dim int) *model.Classifier {
	classNames, classIndex := uniqueSorted(labels)
	numClasses := len(classNames)

	classWeights := balancedClassWeights(labels, classIndex, numClasses)

	weights := make([][]float64, numClasses)
	for k := range weights {
		weights[k] = make([]float64, dim)
	}
	bias := make([]float64, numClasses)

	clf := &model.Classifier{
		Labels:      classNames,
		Weights:     weights,
		Bias:        bias,
		NumFeatures: dim,
	}

	order := make([]int, len(vectors))
	for i := range order {
		order[i] = i
	}
	rng := rand.New(rand.NewSource(t.config.Seed))

	for epoch := 0; epoch < t.config.Epochs; epoch++ {
		rng.Shuffle(len(order), func(i, j int) { order[i], order[j] = order[j], order[i] })

		for _, i := range order {
			vec := vectors[i]
			target := classIndex[labels[i]]
			sampleWeight := classWeights[target]

			_, probs := clf.Predict(vec)

			for k := 0; k < numClasses; k++ {
				grad := probs[k]
				if k == target {
					grad -= 1
				}
				grad *= sampleWeight

				step := t.config.LearningRate * grad
				row := weights[k]
				for j, idx := range vec.Indices {
					row[idx] -= step * vec.Values[j]
				}
				bias[k] -= step
			}
		}

		// L2 shrink once per epoch keeps the inner loop cheap on a
		// sparse update.
		if t.config.L2 > 0 {
			shrink := 1 - t.config.LearningRate*t.config.L2
			for k := range weights {
				for j := range weights[k] {
					weights[k][j] *= shrink
				}
			}
		}
	}

	t.logger.Info("classifier trained",
		logger.Strings("classes", classNames),
		logger.Int("epochs", t.config.Epochs),
		logger.Int("features", dim),
	)

	return clf
}

func uniqueSorted(labels []string) ([]string, map[string]int) {
	seen := make(map[string]bool)
	var names []string
	for _, l := range labels {
		if !seen[l] {
			seen[l] = true
			names = append(names, l)
		}
	}
	sort.Strings(names)

	index := make(map[string]int, len(names))
	for i, name := range names {
		index[name] = i
	}
	return names, index
}

func balancedClassWeights(labels []string, classIndex map[string]int, numClasses int) []float64 {
	counts := make([]float64, numClasses)
	for _, l := range labels {
		counts[classIndex[l]]++
	}

	total := float64(len(labels))
	weights := make([]float64, numClasses)
	for k, count := range counts {
		if count > 0 {
			weights[k] = total / (float64(numClasses) * count)
		}
	}
	return weights
}
