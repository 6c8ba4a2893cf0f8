package model

import (
	"errors"
	"path/filepath"
	"reflect"
	"testing"
)

func fittedTestBundle(version string) *Bundle {
	v := NewVectorizer()
	v.Fit([]string{"good food", "bad service", "average meal"}, 0)
	v.Version = version

	dim := v.Dim()
	c := &Classifier{
		Labels:      []string{"negative", "positive"},
		Weights:     [][]float64{make([]float64, dim), make([]float64, dim)},
		Bias:        []float64{0.1, -0.1},
		NumFeatures: dim,
		Version:     version,
	}
	return &Bundle{Vectorizer: v, Classifier: c}
}

func bundlePaths(t *testing.T) (string, string) {
	t.Helper()
	dir := t.TempDir()
	return filepath.Join(dir, "vectorizer.gob"), filepath.Join(dir, "classifier.gob")
}

func TestSaveLoadBundle_RoundTrip(t *testing.T) {
	vecPath, clfPath := bundlePaths(t)
	saved := fittedTestBundle("20250101T000000Z")

	if err := SaveBundle(vecPath, clfPath, saved); err != nil {
		t.Fatalf("save bundle: %v", err)
	}

	loaded, err := LoadBundle(vecPath, clfPath)
	if err != nil {
		t.Fatalf("load bundle: %v", err)
	}

	if !reflect.DeepEqual(loaded.Vectorizer.Vocabulary, saved.Vectorizer.Vocabulary) {
		t.Error("vocabulary changed across save/load")
	}
	if !reflect.DeepEqual(loaded.Classifier.Weights, saved.Classifier.Weights) {
		t.Error("weights changed across save/load")
	}
	if loaded.Classifier.Version != saved.Classifier.Version {
		t.Errorf("expected version %q, got %q", saved.Classifier.Version, loaded.Classifier.Version)
	}
}

func TestLoadBundle_VersionMismatch(t *testing.T) {
	vecPath, clfPath := bundlePaths(t)
	b := fittedTestBundle("v1")
	b.Classifier.Version = "v2"

	if err := SaveBundle(vecPath, clfPath, b); err != nil {
		t.Fatalf("save bundle: %v", err)
	}

	_, err := LoadBundle(vecPath, clfPath)
	if !errors.Is(err, ErrVersionMismatch) {
		t.Errorf("expected ErrVersionMismatch, got %v", err)
	}
}

func TestLoadBundle_EmptyVersionRejected(t *testing.T) {
	vecPath, clfPath := bundlePaths(t)
	b := fittedTestBundle("")

	if err := SaveBundle(vecPath, clfPath, b); err != nil {
		t.Fatalf("save bundle: %v", err)
	}

	_, err := LoadBundle(vecPath, clfPath)
	if !errors.Is(err, ErrVersionMismatch) {
		t.Errorf("expected ErrVersionMismatch for empty versions, got %v", err)
	}
}

func TestLoadBundle_DimensionMismatch(t *testing.T) {
	vecPath, clfPath := bundlePaths(t)
	b := fittedTestBundle("v1")
	b.Classifier.NumFeatures = b.Vectorizer.Dim() + 1

	if err := SaveBundle(vecPath, clfPath, b); err != nil {
		t.Fatalf("save bundle: %v", err)
	}

	_, err := LoadBundle(vecPath, clfPath)
	if !errors.Is(err, ErrDimensionMismatch) {
		t.Errorf("expected ErrDimensionMismatch, got %v", err)
	}
}

func TestLoadBundle_MissingFile(t *testing.T) {
	dir := t.TempDir()

	_, err := LoadBundle(filepath.Join(dir, "missing.gob"), filepath.Join(dir, "also-missing.gob"))
	if err == nil {
		t.Fatal("expected error for missing artifact files")
	}
}
