// Pastime - Activity Recommendation Engine
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/pastime

package recommend

import (
	"fmt"
	"math"
	"time"
)

// Config holds all recommendation engine parameters.
type Config struct {
	// Weights controls the interaction boosts and the sentinel score.
	Weights Weights `json:"weights"`

	// Limits bounds the size of a recommendation list.
	Limits LimitsConfig `json:"limits"`

	// Cache controls response caching.
	Cache CacheConfig `json:"cache"`

	// FillExcluded keeps sentinel-scored activities in the ranked list so it
	// is always min(TopN, catalog size) long. When false they are dropped.
	// Default: false.
	FillExcluded bool `json:"fill_excluded"`

	// Seed initializes the fallback sampler. Zero seeds from the clock.
	Seed int64 `json:"seed"`
}

// Weights are the additive adjustments applied on top of rating propagation.
type Weights struct {
	// LikeBoost is added to each liked activity. Default: 0.5.
	LikeBoost float64 `json:"like_boost"`

	// PinBoost is added to each pinned activity. Default: 0.3.
	PinBoost float64 `json:"pin_boost"`

	// DislikePenalty is subtracted from each disliked activity. Default: 1.0.
	DislikePenalty float64 `json:"dislike_penalty"`

	// Sentinel is the score assigned to filtered and already seen activities.
	// Default: -10.
	Sentinel float64 `json:"sentinel"`
}

// LimitsConfig contains list size limits.
type LimitsConfig struct {
	// DefaultTopN is used when a request asks for zero or fewer items.
	// Default: 5.
	DefaultTopN int `json:"default_top_n"`

	// MaxTopN caps the requested list size.
	// Default: 100.
	MaxTopN int `json:"max_top_n"`
}

// CacheConfig contains caching parameters.
type CacheConfig struct {
	// Enabled controls whether caching is active.
	// Default: true.
	Enabled bool `json:"enabled"`

	// TTL is the cache entry time-to-live.
	// Default: 5m.
	TTL time.Duration `json:"ttl"`

	// MaxEntries is the maximum number of cached entries.
	// Default: 1000.
	MaxEntries int `json:"max_entries"`
}

// DefaultWeights returns the standard boosts and sentinel.
func DefaultWeights() Weights {
	return Weights{
		LikeBoost:      0.5,
		PinBoost:       0.3,
		DislikePenalty: 1.0,
		Sentinel:       -10,
	}
}

// DefaultConfig returns a Config with the standard defaults.
func DefaultConfig() *Config {
	return &Config{
		Weights: DefaultWeights(),
		Limits: LimitsConfig{
			DefaultTopN: 5,
			MaxTopN:     100,
		},
		Cache: CacheConfig{
			Enabled:    true,
			TTL:        5 * time.Minute,
			MaxEntries: 1000,
		},
	}
}

// Validate checks the configuration for errors.
func (c *Config) Validate() error {
	weights := map[string]float64{
		"weights.like_boost":      c.Weights.LikeBoost,
		"weights.pin_boost":       c.Weights.PinBoost,
		"weights.dislike_penalty": c.Weights.DislikePenalty,
		"weights.sentinel":        c.Weights.Sentinel,
	}
	for name, v := range weights {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return fmt.Errorf("%s must be finite, got %f", name, v)
		}
	}

	if c.Limits.DefaultTopN < 1 {
		return fmt.Errorf("limits.default_top_n must be positive, got %d", c.Limits.DefaultTopN)
	}
	if c.Limits.MaxTopN < c.Limits.DefaultTopN {
		return fmt.Errorf("limits.max_top_n must be >= limits.default_top_n, got %d < %d", c.Limits.MaxTopN, c.Limits.DefaultTopN)
	}

	if c.Cache.Enabled {
		if c.Cache.TTL <= 0 {
			return fmt.Errorf("cache.ttl must be positive, got %v", c.Cache.TTL)
		}
		if c.Cache.MaxEntries < 1 {
			return fmt.Errorf("cache.max_entries must be positive, got %d", c.Cache.MaxEntries)
		}
	}

	return nil
}

// Clone returns a copy of the configuration.
func (c *Config) Clone() *Config {
	out := *c
	return &out
}
