// Pastime - Activity Recommendation Engine
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/pastime

package services

import (
	"context"
	"time"

	"github.com/rs/zerolog"
)

// DefaultSweepInterval is used when no sweep interval is configured.
const DefaultSweepInterval = time.Minute

// CachePurger drops expired cache entries. Satisfied by *recommend.Engine.
type CachePurger interface {
	PurgeExpired() int
}

// CacheJanitorService periodically purges expired recommendation cache
// entries so idle sessions do not hold stale responses until the next
// insert.
type CacheJanitorService struct {
	purger   CachePurger
	interval time.Duration
	logger   zerolog.Logger
	name     string
}

// NewCacheJanitorService creates a janitor that sweeps every interval.
//
//nolint:gocritic // logger passed by value is acceptable for zerolog
func NewCacheJanitorService(purger CachePurger, interval time.Duration, logger zerolog.Logger) *CacheJanitorService {
	if interval <= 0 {
		interval = DefaultSweepInterval
	}
	return &CacheJanitorService{
		purger:   purger,
		interval: interval,
		logger:   logger.With().Str("service", "cache-janitor").Logger(),
		name:     "cache-janitor",
	}
}

// Serve implements suture.Service.
func (s *CacheJanitorService) Serve(ctx context.Context) error {
	s.logger.Debug().Dur("interval", s.interval).Msg("cache janitor starting")

	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			s.logger.Debug().Msg("cache janitor shutting down")
			return ctx.Err()

		case <-ticker.C:
			if n := s.purger.PurgeExpired(); n > 0 {
				s.logger.Debug().Int("purged", n).Msg("expired cache entries purged")
			}
		}
	}
}

// String implements fmt.Stringer.
func (s *CacheJanitorService) String() string {
	return s.name
}
