// Pastime - Activity Recommendation Engine
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/pastime

package config

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/providers/structs"
	"github.com/knadh/koanf/v2"

	"github.com/tomtom215/pastime/internal/recommend"
)

// DefaultConfigPaths lists the paths where config files are searched in order of priority.
// The first file found will be used.
var DefaultConfigPaths = []string{
	"pastime.yaml",
	"pastime.yml",
	"/etc/pastime/pastime.yaml",
}

// ConfigPathEnvVar is the environment variable that can override the config file path.
const ConfigPathEnvVar = "PASTIME_CONFIG"

// EnvPrefix is the prefix of every configuration environment variable.
const EnvPrefix = "PASTIME_"

// defaultConfig returns a Config struct with all default values.
// These defaults are applied first, then overridden by config file and env vars.
func defaultConfig() *Config {
	engine := recommend.DefaultConfig()

	return &Config{
		Catalog: CatalogConfig{
			Path:   "Activity_DataSet.csv",
			Source: "csv",
		},
		Recommend: RecommendConfig{
			DefaultTopN:  engine.Limits.DefaultTopN,
			MaxTopN:      engine.Limits.MaxTopN,
			FillExcluded: engine.FillExcluded,
			Seed:         0,
			Weights: WeightsConfig{
				LikeBoost:      engine.Weights.LikeBoost,
				PinBoost:       engine.Weights.PinBoost,
				DislikePenalty: engine.Weights.DislikePenalty,
				Sentinel:       engine.Weights.Sentinel,
			},
			Cache: CacheConfig{
				Enabled:    engine.Cache.Enabled,
				TTL:        engine.Cache.TTL,
				MaxEntries: engine.Cache.MaxEntries,
			},
		},
		Logging: LoggingConfig{
			Level:  "info",
			Format: "console",
		},
		Metrics: MetricsConfig{
			Enabled:         false,
			Addr:            "127.0.0.1:9464",
			ShutdownTimeout: 5 * time.Second,
		},
		Supervisor: SupervisorConfig{
			FailureThreshold: 5,
			FailureDecay:     30,
			FailureBackoff:   15 * time.Second,
			ShutdownTimeout:  10 * time.Second,
		},
	}
}

// Load loads configuration using Koanf v2 with layered sources:
//  1. Defaults: Built-in defaults
//  2. Config File: path if given, else PASTIME_CONFIG, else DefaultConfigPaths
//  3. Environment Variables: PASTIME_* overrides
//
// An explicit path that does not exist is an error; a missing default file is not.
func Load(path string) (*Config, error) {
	k := koanf.New(".")

	// Layer 1: Load defaults from struct
	if err := k.Load(structs.Provider(defaultConfig(), "koanf"), nil); err != nil {
		return nil, fmt.Errorf("failed to load defaults: %w", err)
	}

	// Layer 2: Load config file (optional)
	configPath := path
	if configPath == "" {
		configPath = findConfigFile()
	}
	if configPath != "" {
		if err := k.Load(file.Provider(configPath), yaml.Parser()); err != nil {
			return nil, fmt.Errorf("failed to load config file %s: %w", configPath, err)
		}
	}

	// Layer 3: Load environment variables (highest priority)
	// PASTIME_CATALOG_PATH -> catalog.path
	// PASTIME_LOG_LEVEL -> logging.level
	if err := k.Load(env.Provider(EnvPrefix, ".", envTransformFunc), nil); err != nil {
		return nil, fmt.Errorf("failed to load environment variables: %w", err)
	}

	cfg := &Config{}
	if err := k.Unmarshal("", cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal configuration: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}

	return cfg, nil
}

// Default returns the validated default configuration.
func Default() *Config {
	return defaultConfig()
}

// findConfigFile searches for a config file in the default paths.
// Returns the path to the first file found, or empty string if none found.
func findConfigFile() string {
	if envPath := os.Getenv(ConfigPathEnvVar); envPath != "" {
		if _, err := os.Stat(envPath); err == nil {
			return envPath
		}
	}

	for _, path := range DefaultConfigPaths {
		if _, err := os.Stat(path); err == nil {
			return path
		}
	}

	return ""
}

// envMappings maps environment variable names (prefix stripped, lower case)
// to koanf config paths.
var envMappings = map[string]string{
	// Catalog
	"catalog_path":   "catalog.path",
	"catalog_source": "catalog.source",
	"dataset":        "catalog.path",

	// Recommendation engine
	"recommend_default_top_n":     "recommend.default_top_n",
	"recommend_max_top_n":         "recommend.max_top_n",
	"recommend_fill_excluded":     "recommend.fill_excluded",
	"recommend_seed":              "recommend.seed",
	"recommend_like_boost":        "recommend.weights.like_boost",
	"recommend_pin_boost":         "recommend.weights.pin_boost",
	"recommend_dislike_penalty":   "recommend.weights.dislike_penalty",
	"recommend_sentinel":          "recommend.weights.sentinel",
	"recommend_cache_enabled":     "recommend.cache.enabled",
	"recommend_cache_ttl":         "recommend.cache.ttl",
	"recommend_cache_max_entries": "recommend.cache.max_entries",

	// Logging
	"log_level":  "logging.level",
	"log_format": "logging.format",
	"log_caller": "logging.caller",

	// Metrics
	"metrics_enabled":          "metrics.enabled",
	"metrics_addr":             "metrics.addr",
	"metrics_shutdown_timeout": "metrics.shutdown_timeout",

	// Supervisor
	"supervisor_failure_threshold": "supervisor.failure_threshold",
	"supervisor_failure_decay":     "supervisor.failure_decay",
	"supervisor_failure_backoff":   "supervisor.failure_backoff",
	"supervisor_shutdown_timeout":  "supervisor.shutdown_timeout",
}

// envTransformFunc transforms environment variable names to koanf config paths.
//
// Examples:
//   - PASTIME_CATALOG_PATH -> catalog.path
//   - PASTIME_RECOMMEND_LIKE_BOOST -> recommend.weights.like_boost
//   - PASTIME_LOG_LEVEL -> logging.level
func envTransformFunc(key string) string {
	key = strings.ToLower(strings.TrimPrefix(key, EnvPrefix))

	if mapped, ok := envMappings[key]; ok {
		return mapped
	}

	// Unmapped keys are skipped so stray variables cannot pollute config.
	return ""
}
