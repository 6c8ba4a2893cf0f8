package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/reviewpulse/reviewpulse/internal/api"
	"github.com/reviewpulse/reviewpulse/internal/bootstrap"
	"github.com/reviewpulse/reviewpulse/internal/logger"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
}

func run() error {
	cfg, err := bootstrap.LoadConfig()
	if err != nil {
		return err
	}

	log, err := bootstrap.CreateLogger(cfg)
	if err != nil {
		return err
	}
	defer func() { _ = log.Sync() }()

	log.Info("starting review sentiment service",
		logger.String("version", cfg.Service.Version),
		logger.Int("port", cfg.Service.Port),
		logger.Bool("debug", cfg.Service.Debug),
	)

	components, err := bootstrap.NewHTTPComponents(context.Background(), cfg, log)
	if err != nil {
		log.Error("startup failed", logger.Error(err))
		return err
	}
	defer func() { _ = components.DB.Close() }()

	serverErrors := make(chan error, 1)
	go func() {
		serverErrors <- components.Server.Start()
	}()

	shutdown := make(chan os.Signal, 1)
	signal.Notify(shutdown, os.Interrupt, syscall.SIGTERM)

	select {
	case err := <-serverErrors:
		log.Error("server error", logger.Error(err))
		return err
	case sig := <-shutdown:
		log.Info("shutdown signal received", logger.String("signal", sig.String()))

		ctx, cancel := context.WithTimeout(context.Background(), api.DefaultShutdownTimeout)
		defer cancel()

		if err := components.Server.Shutdown(ctx); err != nil {
			log.Error("graceful shutdown failed", logger.Error(err))
			return err
		}

		log.Info("server stopped gracefully")
	}

	return nil
}
