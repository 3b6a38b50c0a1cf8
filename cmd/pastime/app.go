// Pastime - Activity Recommendation Engine
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/pastime

package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/rs/zerolog"

	"github.com/tomtom215/pastime/internal/catalog"
	"github.com/tomtom215/pastime/internal/config"
	"github.com/tomtom215/pastime/internal/features"
	"github.com/tomtom215/pastime/internal/logging"
	"github.com/tomtom215/pastime/internal/metrics"
	"github.com/tomtom215/pastime/internal/profile"
	"github.com/tomtom215/pastime/internal/recommend"
	"github.com/tomtom215/pastime/internal/session"
	"github.com/tomtom215/pastime/internal/supervisor"
	"github.com/tomtom215/pastime/internal/supervisor/services"
)

// app holds the wired components for one process.
type app struct {
	cfg     *config.Config
	catalog *catalog.Catalog
	loadErr error
	store   *profile.Store
	engine  *recommend.Engine
	session *session.Session
	logger  zerolog.Logger
}

// bootstrap loads the catalog and wires the engine and session. A dataset
// that cannot be loaded is replaced by the fallback catalog; the cause is
// kept in loadErr and reported through the notifier.
func bootstrap(ctx context.Context, cfg *config.Config, notifier session.Notifier) (*app, error) {
	logger := logging.WithComponent("app")

	source, err := catalog.NewSource(cfg.Catalog.Source, cfg.Catalog.Path)
	if err != nil {
		return nil, err
	}

	cat, loadErr := catalog.NewLoader(source, cfg.Catalog.Path, logger).Load(ctx)
	_, sim := features.Build(cat)

	store := profile.NewStore(cat, logger)
	engine, err := recommend.NewEngine(cfg.Recommend.EngineConfig(), cat, sim, store, logger)
	if err != nil {
		return nil, fmt.Errorf("failed to create recommendation engine: %w", err)
	}

	sess := session.New(cat, store, engine, notifier, logger)
	sess.ReportLoadError(loadErr)

	logger.Info().
		Int("activities", cat.Len()).
		Int("categories", len(cat.Categories())).
		Bool("fallback", cat.IsFallback()).
		Str("session_id", sess.ID()).
		Msg("Session ready")

	return &app{
		cfg:     cfg,
		catalog: cat,
		loadErr: loadErr,
		store:   store,
		engine:  engine,
		session: sess,
		logger:  logger,
	}, nil
}

// startBackground starts the supervisor tree with the cache janitor and,
// when enabled, the metrics server. It returns a stop function that cancels
// the tree and waits for it to finish.
func (a *app) startBackground(ctx context.Context) (stop func()) {
	tree, err := supervisor.NewSupervisorTree(logging.NewSlogLogger(), supervisor.TreeConfig{
		FailureThreshold: a.cfg.Supervisor.FailureThreshold,
		FailureDecay:     a.cfg.Supervisor.FailureDecay,
		FailureBackoff:   a.cfg.Supervisor.FailureBackoff,
		ShutdownTimeout:  a.cfg.Supervisor.ShutdownTimeout,
	})
	if err != nil {
		a.logger.Error().Err(err).Msg("Failed to create supervisor tree")
		return func() {}
	}

	if a.cfg.Recommend.Cache.Enabled {
		tree.AddEngineService(services.NewCacheJanitorService(a.engine, a.cfg.Recommend.Cache.TTL, a.logger))
	}

	if a.cfg.Metrics.Enabled {
		server := &http.Server{
			Addr:              a.cfg.Metrics.Addr,
			Handler:           metrics.NewRouter(),
			ReadHeaderTimeout: 5 * time.Second,
		}
		tree.AddAPIService(services.NewHTTPServerService("metrics-server", server, a.cfg.Metrics.ShutdownTimeout))
		a.logger.Info().Str("addr", server.Addr).Msg("Metrics server service added")
	}

	ctx, cancel := context.WithCancel(ctx)
	errCh := tree.ServeBackground(ctx)

	return func() {
		cancel()
		if err := <-errCh; err != nil && !errors.Is(err, context.Canceled) {
			a.logger.Error().Err(err).Msg("Supervisor shutdown error")
		}
		unstopped, _ := tree.UnstoppedServiceReport()
		for _, svc := range unstopped {
			a.logger.Warn().Str("service", svc.Name).Msg("Service failed to stop")
		}
	}
}
