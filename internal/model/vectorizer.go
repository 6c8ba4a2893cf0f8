// Package model implements the trained inference artifacts: the TF-IDF
// vectorizer and the softmax classifier, plus their serialization.
package model

import (
	"math"
	"sort"
)

// FeatureVector is a sparse fixed-dimension numeric representation of a
// text. Indices are strictly increasing; Dim is the vocabulary size fixed
// at training time.
type FeatureVector struct {
	Indices []int
	Values  []float64
	Dim     int
}

// Vectorizer is a fitted TF-IDF transform from raw text to a FeatureVector.
// Fields are exported for gob serialization; a loaded Vectorizer is
// immutable and safe for concurrent Transform calls.
type Vectorizer struct {
	// Vocabulary maps a term to its feature index.
	Vocabulary map[string]int
	// IDF holds the inverse document frequency per feature index.
	IDF []float64
	// Version ties the vectorizer to the classifier trained alongside it.
	Version string
}

// NewVectorizer returns an unfitted vectorizer.
func NewVectorizer() *Vectorizer {
	return &Vectorizer{Vocabulary: make(map[string]int)}
}

// Dim returns the fixed output dimension (vocabulary size).
func (v *Vectorizer) Dim() int {
	return len(v.IDF)
}

// Fit learns the vocabulary and IDF statistics from the corpus. The
// vocabulary is capped at maxFeatures terms, keeping the most frequent
// terms across the corpus; ties break alphabetically. Selected terms are
// indexed in alphabetical order so fitting is deterministic.
func (v *Vectorizer) Fit(docs []string, maxFeatures int) {
	termCount := make(map[string]int)
	docFreq := make(map[string]int)

	for _, doc := range docs {
		seen := make(map[string]bool)
		for _, term := range Tokenize(doc) {
			termCount[term]++
			if !seen[term] {
				docFreq[term]++
				seen[term] = true
			}
		}
	}

	terms := make([]string, 0, len(termCount))
	for term := range termCount {
		terms = append(terms, term)
	}
	sort.Slice(terms, func(i, j int) bool {
		if termCount[terms[i]] != termCount[terms[j]] {
			return termCount[terms[i]] > termCount[terms[j]]
		}
		return terms[i] < terms[j]
	})
	if maxFeatures > 0 && len(terms) > maxFeatures {
		terms = terms[:maxFeatures]
	}
	sort.Strings(terms)

	v.Vocabulary = make(map[string]int, len(terms))
	v.IDF = make([]float64, len(terms))
	nDocs := float64(len(docs))
	for i, term := range terms {
		v.Vocabulary[term] = i
		// Smoothed IDF: log((1+n)/(1+df)) + 1.
		v.IDF[i] = math.Log((1+nDocs)/(1+float64(docFreq[term]))) + 1
	}
}

// Transform converts text into an l2-normalized TF-IDF feature vector.
// Terms outside the fitted vocabulary are ignored.
func (v *Vectorizer) Transform(text string) FeatureVector {
	counts := make(map[int]float64)
	for _, term := range Tokenize(text) {
		if idx, ok := v.Vocabulary[term]; ok {
			counts[idx]++
		}
	}

	vec := FeatureVector{
		Indices: make([]int, 0, len(counts)),
		Values:  make([]float64, 0, len(counts)),
		Dim:     v.Dim(),
	}
	for idx := range counts {
		vec.Indices = append(vec.Indices, idx)
	}
	sort.Ints(vec.Indices)

	var sumSquares float64
	for _, idx := range vec.Indices {
		weight := counts[idx] * v.IDF[idx]
		vec.Values = append(vec.Values, weight)
		sumSquares += weight * weight
	}

	if norm := math.Sqrt(sumSquares); norm > 0 {
		for i := range vec.Values {
			vec.Values[i] /= norm
		}
	}

	return vec
}
