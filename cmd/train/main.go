// Command train fits the review sentiment model from a labeled TSV dataset
// and writes the vectorizer and classifier artifacts used by the HTTP
// service.
package main

import (
	"flag"
	"fmt"
	"os"
	"path/filepath"

	"github.com/reviewpulse/reviewpulse/internal/logger"
	"github.com/reviewpulse/reviewpulse/internal/model"
	"github.com/reviewpulse/reviewpulse/internal/training"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
}

func run() error {
	var (
		dataPath     = flag.String("data", "data/Restaurant_Reviews.tsv", "path to the labeled reviews TSV")
		outDir       = flag.String("out", "artifacts", "directory to write model artifacts into")
		testFraction = flag.Float64("test-fraction", 0.2, "fraction of data held out for evaluation")
		seed         = flag.Int64("seed", 42, "random seed for the stratified split and training shuffle")
		maxFeatures  = flag.Int("max-features", training.DefaultMaxFeatures, "vocabulary size cap")
		epochs       = flag.Int("epochs", training.DefaultEpochs, "training epochs")
		learningRate = flag.Float64("lr", training.DefaultLearningRate, "learning rate")
	)
	flag.Parse()

	log, err := logger.New(logger.Config{Level: "info", Format: "console"})
	if err != nil {
		return err
	}
	defer func() { _ = log.Sync() }()

	docs, err := training.LoadTSV(*dataPath)
	if err != nil {
		return fmt.Errorf("load dataset: %w", err)
	}
	docs = training.WithNeutralSeed(docs)
	log.Info("dataset loaded",
		logger.String("path", *dataPath),
		logger.Int("documents", len(docs)),
	)

	train, test := training.StratifiedSplit(docs, *testFraction, *seed)
	log.Info("dataset split",
		logger.Int("train", len(train)),
		logger.Int("test", len(test)),
	)

	trainer := training.NewTrainer(training.Config{
		MaxFeatures:  *maxFeatures,
		Epochs:       *epochs,
		LearningRate: *learningRate,
		Seed:         *seed,
	}, log)

	bundle, err := trainer.Fit(train)
	if err != nil {
		return fmt.Errorf("train model: %w", err)
	}

	reports, accuracy := training.Evaluate(bundle, test)
	fmt.Println(training.FormatReport(reports, accuracy))

	if err := os.MkdirAll(*outDir, 0o755); err != nil {
		return fmt.Errorf("create output directory: %w", err)
	}

	vecPath := filepath.Join(*outDir, "vectorizer.gob")
	clfPath := filepath.Join(*outDir, "classifier.gob")
	if err := model.SaveBundle(vecPath, clfPath, bundle); err != nil {
		return fmt.Errorf("save artifacts: %w", err)
	}

	log.Info("artifacts written",
		logger.String("vectorizer", vecPath),
		logger.String("classifier", clfPath),
		logger.String("version", bundle.Classifier.Version),
	)

	return nil
}
