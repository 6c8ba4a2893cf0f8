package training

import (
	"math/rand"
	"sort"

	"github.com/reviewpulse/reviewpulse/internal/domain"
)

// StratifiedSplit partitions docs into train and test sets, preserving the
// per-class proportions. testFraction is clamped to (0,1); the RNG seed
// makes the split reproducible.
func StratifiedSplit(docs []Document, testFraction float64, seed int64) (train, test []Document) {
	if testFraction <= 0 {
		testFraction = 0.2
	}
	if testFraction >= 1 {
		testFraction = 0.2
	}

	byLabel := make(map[domain.SentimentLabel][]Document)
	for _, doc := range docs {
		byLabel[doc.Label] = append(byLabel[doc.Label], doc)
	}

	// Iterate labels in sorted order so the split is reproducible for a
	// given seed.
	labels := make([]domain.SentimentLabel, 0, len(byLabel))
	for label := range byLabel {
		labels = append(labels, label)
	}
	sort.Slice(labels, func(i, j int) bool { return labels[i] < labels[j] })

	rng := rand.New(rand.NewSource(seed))
	for _, label := range labels {
		group := byLabel[label]
		rng.Shuffle(len(group), func(i, j int) {
			group[i], group[j] = group[j], group[i]
		})

		nTest := int(float64(len(group)) * testFraction)
		test = append(test, group[:nTest]...)
		train = append(train, group[nTest:]...)
	}

	// Shuffle across classes so training does not see one class at a time.
	rng.Shuffle(len(train), func(i, j int) { train[i], train[j] = train[j], train[i] })
	rng.Shuffle(len(test), func(i, j int) { test[i], test[j] = test[j], test[i] })

	return train, test
}
