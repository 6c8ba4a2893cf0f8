package model

import (
	"math"
	"reflect"
	"sort"
	"testing"
)

const floatTolerance = 1e-9

func TestVectorizer_Fit_AlphabeticalIndexOrder(t *testing.T) {
	v := NewVectorizer()
	v.Fit([]string{"tasty food", "food was cold", "cold service"}, 0)

	terms := make([]string, 0, len(v.Vocabulary))
	for term := range v.Vocabulary {
		terms = append(terms, term)
	}
	sort.Strings(terms)

	for i, term := range terms {
		if v.Vocabulary[term] != i {
			t.Errorf("expected %q at index %d, got %d", term, i, v.Vocabulary[term])
		}
	}
	if v.Dim() != len(terms) {
		t.Errorf("expected dim %d, got %d", len(terms), v.Dim())
	}
}

func TestVectorizer_Fit_CapsVocabularyByFrequency(t *testing.T) {
	docs := []string{
		"food food food",
		"food service",
		"service ambience",
	}

	v := NewVectorizer()
	v.Fit(docs, 2)

	if v.Dim() != 2 {
		t.Fatalf("expected 2 features, got %d", v.Dim())
	}
	if _, ok := v.Vocabulary["food"]; !ok {
		t.Error("expected most frequent term food in vocabulary")
	}
	if _, ok := v.Vocabulary["service"]; !ok {
		t.Error("expected second term service in vocabulary")
	}
	if _, ok := v.Vocabulary["ambience"]; ok {
		t.Error("expected ambience to be cut by the feature cap")
	}
}

func TestVectorizer_Fit_Deterministic(t *testing.T) {
	docs := []string{"great food great service", "bad food", "average ambience here"}

	a := NewVectorizer()
	a.Fit(docs, 3)
	b := NewVectorizer()
	b.Fit(docs, 3)

	if !reflect.DeepEqual(a.Vocabulary, b.Vocabulary) {
		t.Errorf("expected identical vocabularies, got %v and %v", a.Vocabulary, b.Vocabulary)
	}
	if !reflect.DeepEqual(a.IDF, b.IDF) {
		t.Errorf("expected identical IDF vectors, got %v and %v", a.IDF, b.IDF)
	}
}

func TestVectorizer_Transform_L2Normalized(t *testing.T) {
	v := NewVectorizer()
	v.Fit([]string{"good food here", "bad service there", "average food and service"}, 0)

	vec := v.Transform("the food and service were good")

	if len(vec.Indices) == 0 {
		t.Fatal("expected non-empty feature vector")
	}

	var sumSquares float64
	for _, val := range vec.Values {
		sumSquares += val * val
	}
	if math.Abs(sumSquares-1) > floatTolerance {
		t.Errorf("expected unit l2 norm, got %f", math.Sqrt(sumSquares))
	}

	for i := 1; i < len(vec.Indices); i++ {
		if vec.Indices[i] <= vec.Indices[i-1] {
			t.Errorf("expected strictly increasing indices, got %v", vec.Indices)
		}
	}
}

func TestVectorizer_Transform_UnknownTermsIgnored(t *testing.T) {
	v := NewVectorizer()
	v.Fit([]string{"good food", "bad food"}, 0)

	vec := v.Transform("zygomorphic xylophone")

	if len(vec.Indices) != 0 || len(vec.Values) != 0 {
		t.Errorf("expected empty vector for out-of-vocabulary text, got %+v", vec)
	}
	if vec.Dim != v.Dim() {
		t.Errorf("expected dim %d, got %d", v.Dim(), vec.Dim)
	}
}

func TestVectorizer_Transform_SameInputSameOutput(t *testing.T) {
	v := NewVectorizer()
	v.Fit([]string{"nice staff great menu", "terrible menu awful staff"}, 0)

	first := v.Transform("the staff and the menu")
	second := v.Transform("the staff and the menu")

	if !reflect.DeepEqual(first, second) {
		t.Errorf("expected identical transforms, got %+v and %+v", first, second)
	}
}
