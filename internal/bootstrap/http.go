package bootstrap

import (
	"context"
	"fmt"
	"path/filepath"

	"github.com/jmoiron/sqlx"

	"github.com/reviewpulse/reviewpulse/internal/api"
	"github.com/reviewpulse/reviewpulse/internal/config"
	"github.com/reviewpulse/reviewpulse/internal/database"
	"github.com/reviewpulse/reviewpulse/internal/logger"
	"github.com/reviewpulse/reviewpulse/internal/logging"
	"github.com/reviewpulse/reviewpulse/internal/model"
	"github.com/reviewpulse/reviewpulse/internal/sentiment"
	"github.com/reviewpulse/reviewpulse/internal/telemetry"
)

// HTTPComponents holds everything the HTTP entrypoint needs to run and shut
// down the service.
type HTTPComponents struct {
	Server     *api.Server
	DB         *sqlx.DB
	Repository *database.ReviewRepository
	Telemetry  *telemetry.Provider
}

// LoadArtifacts loads the trained vectorizer and classifier from the
// configured artifact directory. The bundle is validated on load; a version
// or dimension mismatch is a startup failure.
func LoadArtifacts(cfg *config.Config, log logger.Logger) (*model.Bundle, error) {
	vecPath := filepath.Join(cfg.Artifacts.Dir, cfg.Artifacts.VectorizerFile)
	clfPath := filepath.Join(cfg.Artifacts.Dir, cfg.Artifacts.ClassifierFile)

	bundle, err := model.LoadBundle(vecPath, clfPath)
	if err != nil {
		return nil, fmt.Errorf("load model artifacts: %w", err)
	}

	log.Info("model artifacts loaded",
		logger.String("version", bundle.Classifier.Version),
		logger.Int("features", bundle.Classifier.NumFeatures),
		logger.Strings("labels", bundle.Classifier.Labels),
	)

	return bundle, nil
}

// NewHTTPComponents wires the full HTTP service: database, model artifacts,
// prediction pipeline, handlers, and server.
func NewHTTPComponents(ctx context.Context, cfg *config.Config, log logger.Logger) (*HTTPComponents, error) {
	db, repo, err := SetupDatabase(ctx, cfg, log)
	if err != nil {
		return nil, err
	}

	bundle, err := LoadArtifacts(cfg, log)
	if err != nil {
		_ = db.Close()
		return nil, err
	}

	tp := telemetry.NewProvider()
	pipeline := sentiment.NewPipeline(bundle, repo, log, tp)

	apiLog := logging.NewAdapter(log)
	handler := api.NewHandler(
		pipeline,
		repo,
		db.PingContext,
		cfg.Service.Name,
		cfg.Service.Version,
		apiLog,
	)

	server := api.NewServer(handler, api.ServerConfig{
		Port:             cfg.Service.Port,
		Debug:            cfg.Service.Debug,
		RateLimitEnabled: cfg.RateLimit.Enabled,
		RateLimitRPS:     cfg.RateLimit.RPS,
		RateLimitBurst:   cfg.RateLimit.Burst,
	}, tp, apiLog)

	return &HTTPComponents{
		Server:     server,
		DB:         db,
		Repository: repo,
		Telemetry:  tp,
	}, nil
}
