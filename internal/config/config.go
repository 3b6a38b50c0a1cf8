// Pastime - Activity Recommendation Engine
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/pastime

package config

import (
	"fmt"
	"os"
	"time"

	"github.com/tomtom215/pastime/internal/logging"
	"github.com/tomtom215/pastime/internal/recommend"
	"github.com/tomtom215/pastime/internal/validation"
)

// Config holds all application configuration.
type Config struct {
	Catalog    CatalogConfig    `koanf:"catalog"`
	Recommend  RecommendConfig  `koanf:"recommend"`
	Logging    LoggingConfig    `koanf:"logging"`
	Metrics    MetricsConfig    `koanf:"metrics"`
	Supervisor SupervisorConfig `koanf:"supervisor"`
}

// CatalogConfig selects the activity dataset.
type CatalogConfig struct {
	// Path is the dataset file.
	Path string `koanf:"path" validate:"notblank"`

	// Source is the reader used for Path: "csv" or "duckdb".
	Source string `koanf:"source" validate:"oneof=csv duckdb"`
}

// RecommendConfig controls the recommendation engine.
type RecommendConfig struct {
	DefaultTopN  int           `koanf:"default_top_n" validate:"min=1"`
	MaxTopN      int           `koanf:"max_top_n" validate:"gtefield=DefaultTopN"`
	FillExcluded bool          `koanf:"fill_excluded"`
	Seed         int64         `koanf:"seed"`
	Weights      WeightsConfig `koanf:"weights"`
	Cache        CacheConfig   `koanf:"cache"`
}

// WeightsConfig holds the interaction boosts and the sentinel score.
type WeightsConfig struct {
	LikeBoost      float64 `koanf:"like_boost"`
	PinBoost       float64 `koanf:"pin_boost"`
	DislikePenalty float64 `koanf:"dislike_penalty"`
	Sentinel       float64 `koanf:"sentinel"`
}

// CacheConfig controls the recommendation response cache.
type CacheConfig struct {
	Enabled    bool          `koanf:"enabled"`
	TTL        time.Duration `koanf:"ttl"`
	MaxEntries int           `koanf:"max_entries" validate:"min=1"`
}

// LoggingConfig controls the global logger.
type LoggingConfig struct {
	Level  string `koanf:"level" validate:"oneof=trace debug info warn error"`
	Format string `koanf:"format" validate:"oneof=json console"`
	Caller bool   `koanf:"caller"`
}

// MetricsConfig controls the Prometheus endpoint.
type MetricsConfig struct {
	Enabled         bool          `koanf:"enabled"`
	Addr            string        `koanf:"addr" validate:"notblank"`
	ShutdownTimeout time.Duration `koanf:"shutdown_timeout" validate:"gt=0"`
}

// SupervisorConfig tunes the suture restart policy.
type SupervisorConfig struct {
	FailureThreshold float64       `koanf:"failure_threshold" validate:"gt=0"`
	FailureDecay     float64       `koanf:"failure_decay" validate:"gt=0"`
	FailureBackoff   time.Duration `koanf:"failure_backoff" validate:"gt=0"`
	ShutdownTimeout  time.Duration `koanf:"shutdown_timeout" validate:"gt=0"`
}

// Validate checks struct tags and then the engine configuration.
func (c *Config) Validate() error {
	if err := validation.Validate(c); err != nil {
		return err
	}
	if err := c.Recommend.EngineConfig().Validate(); err != nil {
		return fmt.Errorf("recommend: %w", err)
	}
	return nil
}

// EngineConfig converts the section into the engine's configuration.
func (r RecommendConfig) EngineConfig() *recommend.Config {
	return &recommend.Config{
		Weights: recommend.Weights{
			LikeBoost:      r.Weights.LikeBoost,
			PinBoost:       r.Weights.PinBoost,
			DislikePenalty: r.Weights.DislikePenalty,
			Sentinel:       r.Weights.Sentinel,
		},
		Limits: recommend.LimitsConfig{
			DefaultTopN: r.DefaultTopN,
			MaxTopN:     r.MaxTopN,
		},
		Cache: recommend.CacheConfig{
			Enabled:    r.Cache.Enabled,
			TTL:        r.Cache.TTL,
			MaxEntries: r.Cache.MaxEntries,
		},
		FillExcluded: r.FillExcluded,
		Seed:         r.Seed,
	}
}

// LoggerConfig converts the section into a logging.Config writing to stderr.
func (l LoggingConfig) LoggerConfig() logging.Config {
	cfg := logging.DefaultConfig()
	cfg.Level = l.Level
	cfg.Format = l.Format
	cfg.Caller = l.Caller
	cfg.Output = os.Stderr
	return cfg
}
