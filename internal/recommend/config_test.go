// Pastime - Activity Recommendation Engine
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/pastime

package recommend

import (
	"math"
	"strings"
	"testing"
)

func TestDefaultConfig(t *testing.T) {
	t.Parallel()

	cfg := DefaultConfig()
	if err := cfg.Validate(); err != nil {
		t.Fatalf("DefaultConfig().Validate() = %v", err)
	}

	w := cfg.Weights
	if w.LikeBoost != 0.5 || w.PinBoost != 0.3 || w.DislikePenalty != 1.0 || w.Sentinel != -10 {
		t.Errorf("unexpected default weights: %+v", w)
	}
	if cfg.Limits.DefaultTopN != 5 {
		t.Errorf("DefaultTopN = %d, want 5", cfg.Limits.DefaultTopN)
	}
	if cfg.FillExcluded {
		t.Error("FillExcluded should default to false")
	}
}

func TestConfigValidate(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		mutate  func(c *Config)
		wantErr string
	}{
		{name: "nan weight", mutate: func(c *Config) { c.Weights.LikeBoost = math.NaN() }, wantErr: "weights.like_boost"},
		{name: "infinite sentinel", mutate: func(c *Config) { c.Weights.Sentinel = math.Inf(-1) }, wantErr: "weights.sentinel"},
		{name: "zero default top n", mutate: func(c *Config) { c.Limits.DefaultTopN = 0 }, wantErr: "default_top_n"},
		{name: "max below default", mutate: func(c *Config) { c.Limits.MaxTopN = 1 }, wantErr: "max_top_n"},
		{name: "zero ttl", mutate: func(c *Config) { c.Cache.TTL = 0 }, wantErr: "cache.ttl"},
		{name: "zero entries", mutate: func(c *Config) { c.Cache.MaxEntries = 0 }, wantErr: "cache.max_entries"},
		{name: "disabled cache skips checks", mutate: func(c *Config) { c.Cache.Enabled = false; c.Cache.TTL = 0 }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			cfg := DefaultConfig()
			tt.mutate(cfg)
			err := cfg.Validate()

			if tt.wantErr == "" {
				if err != nil {
					t.Errorf("Validate() = %v, want nil", err)
				}
				return
			}
			if err == nil || !strings.Contains(err.Error(), tt.wantErr) {
				t.Errorf("Validate() = %v, want error containing %q", err, tt.wantErr)
			}
		})
	}
}

func TestConfigClone(t *testing.T) {
	t.Parallel()

	cfg := DefaultConfig()
	clone := cfg.Clone()
	clone.Weights.LikeBoost = 9

	if cfg.Weights.LikeBoost == 9 {
		t.Error("Clone() shares state with the original")
	}
}
