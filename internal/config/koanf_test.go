// Pastime - Activity Recommendation Engine
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/pastime

package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"
)

// TestDefaultConfig verifies that defaultConfig() returns proper defaults
func TestDefaultConfig(t *testing.T) {
	cfg := defaultConfig()

	if err := cfg.Validate(); err != nil {
		t.Fatalf("defaults should validate: %v", err)
	}
	if cfg.Catalog.Source != "csv" {
		t.Errorf("Catalog.Source = %q, want csv", cfg.Catalog.Source)
	}
	if cfg.Recommend.DefaultTopN != 5 {
		t.Errorf("Recommend.DefaultTopN = %d, want 5", cfg.Recommend.DefaultTopN)
	}
	if cfg.Recommend.Weights.Sentinel != -10 {
		t.Errorf("Recommend.Weights.Sentinel = %v, want -10", cfg.Recommend.Weights.Sentinel)
	}
	if cfg.Recommend.Cache.TTL != 5*time.Minute {
		t.Errorf("Recommend.Cache.TTL = %v, want 5m", cfg.Recommend.Cache.TTL)
	}
	if cfg.Metrics.Enabled {
		t.Error("Metrics.Enabled should be false by default")
	}
}

// TestEnvTransformFunc verifies environment variable name transformations
func TestEnvTransformFunc(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		{"PASTIME_CATALOG_PATH", "catalog.path"},
		{"PASTIME_DATASET", "catalog.path"},
		{"PASTIME_CATALOG_SOURCE", "catalog.source"},
		{"PASTIME_RECOMMEND_LIKE_BOOST", "recommend.weights.like_boost"},
		{"PASTIME_RECOMMEND_CACHE_TTL", "recommend.cache.ttl"},
		{"PASTIME_LOG_LEVEL", "logging.level"},
		{"PASTIME_METRICS_ADDR", "metrics.addr"},
		{"PASTIME_SUPERVISOR_FAILURE_BACKOFF", "supervisor.failure_backoff"},
		{"PASTIME_UNKNOWN_THING", ""},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			if got := envTransformFunc(tt.input); got != tt.expected {
				t.Errorf("envTransformFunc(%q) = %q, want %q", tt.input, got, tt.expected)
			}
		})
	}
}

// chdirTemp switches into an empty directory so no pastime.yaml is found.
func chdirTemp(t *testing.T) string {
	t.Helper()

	dir := t.TempDir()
	origDir, err := os.Getwd()
	if err != nil {
		t.Fatalf("Failed to get working directory: %v", err)
	}
	if err := os.Chdir(dir); err != nil {
		t.Fatalf("Failed to change to temp directory: %v", err)
	}
	t.Cleanup(func() {
		if err := os.Chdir(origDir); err != nil {
			t.Errorf("Failed to restore working directory: %v", err)
		}
	})
	return dir
}

func TestLoad_Defaults(t *testing.T) {
	chdirTemp(t)
	t.Setenv(ConfigPathEnvVar, "")

	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if cfg.Catalog.Path != "Activity_DataSet.csv" {
		t.Errorf("Catalog.Path = %q", cfg.Catalog.Path)
	}
	if cfg.Supervisor.FailureBackoff != 15*time.Second {
		t.Errorf("Supervisor.FailureBackoff = %v, want 15s", cfg.Supervisor.FailureBackoff)
	}
}

func TestLoad_FileThenEnv(t *testing.T) {
	dir := chdirTemp(t)

	content := `
catalog:
  path: data/activities.csv
  source: duckdb
recommend:
  default_top_n: 3
  weights:
    like_boost: 0.75
  cache:
    ttl: 30s
logging:
  level: debug
`
	path := filepath.Join(dir, "custom.yaml")
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatalf("Failed to write config file: %v", err)
	}

	t.Setenv(ConfigPathEnvVar, path)
	t.Setenv("PASTIME_LOG_LEVEL", "warn")
	t.Setenv("PASTIME_RECOMMEND_PIN_BOOST", "0.1")
	t.Setenv("PASTIME_METRICS_ENABLED", "true")
	t.Setenv("UNRELATED_VAR", "ignored")

	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	if cfg.Catalog.Path != "data/activities.csv" || cfg.Catalog.Source != "duckdb" {
		t.Errorf("Catalog = %+v, want file values", cfg.Catalog)
	}
	if cfg.Recommend.DefaultTopN != 3 {
		t.Errorf("DefaultTopN = %d, want 3", cfg.Recommend.DefaultTopN)
	}
	if cfg.Recommend.Weights.LikeBoost != 0.75 {
		t.Errorf("LikeBoost = %v, want 0.75", cfg.Recommend.Weights.LikeBoost)
	}
	if cfg.Recommend.Weights.PinBoost != 0.1 {
		t.Errorf("PinBoost = %v, want 0.1 from env", cfg.Recommend.Weights.PinBoost)
	}
	if cfg.Recommend.Weights.DislikePenalty != 1.0 {
		t.Errorf("DislikePenalty = %v, want default 1.0", cfg.Recommend.Weights.DislikePenalty)
	}
	if cfg.Recommend.Cache.TTL != 30*time.Second {
		t.Errorf("Cache.TTL = %v, want 30s", cfg.Recommend.Cache.TTL)
	}
	if cfg.Logging.Level != "warn" {
		t.Errorf("Logging.Level = %q, want warn (env beats file)", cfg.Logging.Level)
	}
	if !cfg.Metrics.Enabled {
		t.Error("Metrics.Enabled should be true from env")
	}
}

func TestLoad_ExplicitPathMissing(t *testing.T) {
	chdirTemp(t)

	if _, err := Load("/non/existent/pastime.yaml"); err == nil {
		t.Error("Load() with missing explicit path should fail")
	}
}

func TestLoad_ValidationErrors(t *testing.T) {
	tests := []struct {
		name    string
		env     map[string]string
		wantErr string
	}{
		{
			name:    "unknown source",
			env:     map[string]string{"PASTIME_CATALOG_SOURCE": "parquet"},
			wantErr: "Source must be one of",
		},
		{
			name:    "blank path",
			env:     map[string]string{"PASTIME_CATALOG_PATH": " "},
			wantErr: "Path must not be blank",
		},
		{
			name:    "max below default",
			env:     map[string]string{"PASTIME_RECOMMEND_MAX_TOP_N": "2"},
			wantErr: "MaxTopN",
		},
		{
			name:    "bad log level",
			env:     map[string]string{"PASTIME_LOG_LEVEL": "loud"},
			wantErr: "Level must be one of",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			chdirTemp(t)
			t.Setenv(ConfigPathEnvVar, "")
			for k, v := range tt.env {
				t.Setenv(k, v)
			}

			_, err := Load("")
			if err == nil {
				t.Fatal("Load() expected validation error")
			}
			if !strings.Contains(err.Error(), tt.wantErr) {
				t.Errorf("Load() error = %v, want substring %q", err, tt.wantErr)
			}
		})
	}
}

func TestEngineConfig(t *testing.T) {
	cfg := defaultConfig()
	cfg.Recommend.FillExcluded = true
	cfg.Recommend.Seed = 7

	engine := cfg.Recommend.EngineConfig()
	if err := engine.Validate(); err != nil {
		t.Fatalf("EngineConfig().Validate() = %v", err)
	}
	if !engine.FillExcluded || engine.Seed != 7 {
		t.Errorf("EngineConfig() = %+v", engine)
	}
	if engine.Limits.DefaultTopN != cfg.Recommend.DefaultTopN {
		t.Errorf("DefaultTopN not carried over")
	}
}

func TestLoggerConfig(t *testing.T) {
	lc := LoggingConfig{Level: "debug", Format: "json", Caller: true}.LoggerConfig()
	if lc.Level != "debug" || lc.Format != "json" || !lc.Caller {
		t.Errorf("LoggerConfig() = %+v", lc)
	}
	if lc.Output != os.Stderr {
		t.Error("LoggerConfig() should write to stderr")
	}
}
