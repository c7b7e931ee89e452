// Tunematch - Age-Aware Song Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/tunematch

package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/tomtom215/tunematch/internal/api"
	"github.com/tomtom215/tunematch/internal/catalog"
	"github.com/tomtom215/tunematch/internal/config"
	"github.com/tomtom215/tunematch/internal/logging"
	"github.com/tomtom215/tunematch/internal/metrics"
	"github.com/tomtom215/tunematch/internal/recommend"
	"github.com/tomtom215/tunematch/internal/supervisor"
	"github.com/tomtom215/tunematch/internal/supervisor/services"
)

// version is set at build time with -ldflags "-X main.version=...".
var version = "dev"

func main() {
	// Load configuration first to get logging settings
	cfg, err := config.Load()
	if err != nil {
		logging.Fatal().Err(err).Msg("Failed to load configuration")
	}
	logging.Init(cfg.LoggerConfig())

	logging.Info().
		Str("version", version).
		Str("catalog_path", cfg.Catalog.Path).
		Str("catalog_loader", cfg.Catalog.Loader).
		Str("environment", cfg.Server.Environment).
		Msg("Starting Tunematch")

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// The catalog must be fully loaded before the server accepts requests.
	engine, err := buildEngine(ctx, cfg)
	if err != nil {
		logging.Fatal().Err(err).Msg("Failed to build recommendation engine")
	}
	metrics.SetAppInfo(version)

	handler, err := api.NewHandler(engine, api.HandlerConfig{
		SearchDefaultLimit: cfg.Search.DefaultLimit,
		SearchMaxLimit:     cfg.Search.MaxLimit,
		RequestTimeout:     cfg.Recommend.RequestTimeout,
		Version:            version,
	})
	if err != nil {
		logging.Fatal().Err(err).Msg("Failed to create API handler")
	}
	server := newHTTPServer(cfg, handler)

	tree, err := supervisor.NewSupervisorTree(logging.NewSlogLogger(), supervisor.TreeConfig{
		FailureThreshold: 5,
		FailureBackoff:   15 * time.Second,
		ShutdownTimeout:  cfg.Server.ShutdownTimeout,
	})
	if err != nil {
		logging.Fatal().Err(err).Msg("Failed to create supervisor tree")
	}
	tree.AddAPIService(services.NewHTTPServerService(server, cfg.Server.ShutdownTimeout))
	logging.Info().Str("addr", server.Addr).Msg("HTTP server service added")

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		sig := <-sigCh
		logging.Info().Str("signal", sig.String()).Msg("Received shutdown signal")
		cancel()
	}()

	errCh := tree.ServeBackground(ctx)

	select {
	case <-ctx.Done():
		logging.Info().Msg("Context canceled, waiting for supervisor to finish...")
	case err := <-errCh:
		if err != nil && !errors.Is(err, context.Canceled) {
			logging.Error().Err(err).Msg("Supervisor tree error")
		}
	}

	for err := range errCh {
		if err != nil && !errors.Is(err, context.Canceled) {
			logging.Error().Err(err).Msg("Supervisor shutdown error")
		}
	}

	unstopped, _ := tree.UnstoppedServiceReport()
	for _, svc := range unstopped {
		logging.Warn().Str("service", svc.Name).Msg("Service failed to stop within timeout")
	}

	logging.Info().Msg("Application stopped gracefully")
}

// buildEngine loads the catalog, normalizes it and wraps it in an engine.
// Catalog load metrics are recorded here since the catalog never changes
// afterwards.
func buildEngine(ctx context.Context, cfg *config.Config) (*recommend.Engine, error) {
	start := time.Now()
	logger := logging.Logger()

	cat, err := catalog.Load(ctx, cfg.Catalog.Path, cfg.Catalog.Loader, logger)
	if err != nil {
		return nil, err
	}
	nc := recommend.Normalize(cat, logger)

	metrics.RecordCatalogLoad(
		cat.Len(),
		cat.Malformed()+cat.Duplicates(),
		len(nc.DegenerateFeatures()),
		time.Since(start),
	)

	return recommend.NewEngine(nc, cfg.RecommendEngineConfig(), logger)
}

// newHTTPServer builds the server with the chi router and security
// middleware from cfg.
func newHTTPServer(cfg *config.Config, handler *api.Handler) *http.Server {
	mw := api.NewChiMiddlewareFromSecurity(
		cfg.Security.CORSOrigins,
		cfg.Security.RateLimitReqs,
		cfg.Security.RateLimitWindow,
		cfg.Security.RateLimitDisabled,
	)
	return &http.Server{
		Addr:              cfg.Server.Addr(),
		Handler:           api.NewRouter(handler, mw).SetupChi(),
		ReadTimeout:       cfg.Server.Timeout,
		ReadHeaderTimeout: cfg.Server.Timeout,
		WriteTimeout:      cfg.Server.Timeout,
		IdleTimeout:       60 * time.Second,
	}
}
