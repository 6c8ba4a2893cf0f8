package model

import (
	"encoding/gob"
	"errors"
	"fmt"
	"os"
)

// Artifact incompatibility errors. Any of these at startup is a fatal
// configuration problem, not a recoverable runtime condition.
var (
	ErrVersionMismatch   = errors.New("vectorizer and classifier artifact versions do not match")
	ErrDimensionMismatch = errors.New("vectorizer dimension does not match classifier input dimension")
)

// Bundle holds the two co-versioned artifacts the inference pipeline
// depends on. Loaded once at startup and never mutated.
type Bundle struct {
	Vectorizer *Vectorizer
	Classifier *Classifier
}

// SaveBundle writes both artifacts. Caller is responsible for having set
// the same Version on both before saving.
func SaveBundle(vectorizerPath, classifierPath string, b *Bundle) error {
	if err := saveGob(vectorizerPath, b.Vectorizer); err != nil {
		return fmt.Errorf("save vectorizer artifact: %w", err)
	}
	if err := saveGob(classifierPath, b.Classifier); err != nil {
		return fmt.Errorf("save classifier artifact: %w", err)
	}
	return nil
}

// LoadBundle loads and cross-checks the artifact pair. Loading one without
// its matching counterpart fails: versions must be equal and the vectorizer
// output dimension must equal the classifier input dimension.
func LoadBundle(vectorizerPath, classifierPath string) (*Bundle, error) {
	var vectorizer Vectorizer
	if err := loadGob(vectorizerPath, &vectorizer); err != nil {
		return nil, fmt.Errorf("load vectorizer artifact %s: %w", vectorizerPath, err)
	}

	var classifier Classifier
	if err := loadGob(classifierPath, &classifier); err != nil {
		return nil, fmt.Errorf("load classifier artifact %s: %w", classifierPath, err)
	}

	if vectorizer.Version == "" || vectorizer.Version != classifier.Version {
		return nil, fmt.Errorf("%w: vectorizer %q, classifier %q",
			ErrVersionMismatch, vectorizer.Version, classifier.Version)
	}
	if vectorizer.Dim() != classifier.NumFeatures {
		return nil, fmt.Errorf("%w: vectorizer %d, classifier %d",
			ErrDimensionMismatch, vectorizer.Dim(), classifier.NumFeatures)
	}

	return &Bundle{Vectorizer: &vectorizer, Classifier: &classifier}, nil
}

func saveGob(path string, value any) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}

	if err := gob.NewEncoder(f).Encode(value); err != nil {
		_ = f.Close()
		return fmt.Errorf("encode %s: %w", path, err)
	}
	return f.Close()
}

func loadGob(path string, value any) error {
	f, err := os.Open(path)
	if err != nil {
		return err
	}
	defer f.Close()

	if err := gob.NewDecoder(f).Decode(value); err != nil {
		return fmt.Errorf("decode %s: %w", path, err)
	}
	return nil
}
