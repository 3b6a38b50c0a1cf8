// Pastime - Activity Recommendation Engine
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/pastime

package recommend

import (
	"fmt"
	"time"

	"github.com/rs/zerolog"

	"github.com/tomtom215/pastime/internal/metrics"
)

// cacheKey generates a cache key. A profile mutation bumps the revision,
// so stale entries are never matched.
func (e *Engine) cacheKey(username string, revision uint64, topN int) string {
	return fmt.Sprintf("rec:%s:%d:%d", username, revision, topN)
}

// tryGetCachedResponse attempts to retrieve a cached response.
//
//nolint:gocritic // logger passed by value is acceptable for zerolog
func (e *Engine) tryGetCachedResponse(key string, start time.Time, logger zerolog.Logger) *Response {
	if !e.config.Cache.Enabled {
		return nil
	}

	resp := e.checkCache(key)
	if resp == nil {
		e.cacheMisses.Add(1)
		return nil
	}

	e.cacheHits.Add(1)
	resp.Metadata.CacheHit = true
	resp.Metadata.LatencyMS = time.Since(start).Milliseconds()
	metrics.RecordRecommendation(metrics.OutcomeCached, time.Since(start))
	logger.Debug().Msg("cache hit")
	return resp
}

// cacheResponse stores the response in cache if enabled.
func (e *Engine) cacheResponse(key string, resp *Response) {
	if e.config.Cache.Enabled {
		e.storeCache(key, resp)
	}
}

// checkCache returns a copy of a live cached response, or nil.
func (e *Engine) checkCache(key string) *Response {
	e.cacheMu.RLock()
	defer e.cacheMu.RUnlock()

	entry, ok := e.cache[key]
	if !ok {
		return nil
	}
	if time.Now().After(entry.expiresAt) {
		return nil
	}

	return copyResponse(entry.response)
}

// copyResponse creates a copy of a cached response.
func copyResponse(resp *Response) *Response {
	items := make([]ScoredActivity, len(resp.Items))
	for i, item := range resp.Items {
		scores := make(map[string]float64, len(item.Scores))
		for k, v := range item.Scores {
			scores[k] = v
		}
		item.Scores = scores
		items[i] = item
	}

	return &Response{
		Items:    items,
		Eligible: resp.Eligible,
		Metadata: resp.Metadata,
	}
}

// storeCache stores a copy of the response in the cache.
func (e *Engine) storeCache(key string, resp *Response) {
	e.cacheMu.Lock()
	defer e.cacheMu.Unlock()

	e.evictIfCacheFull()

	e.cache[key] = cacheEntry{
		response:  copyResponse(resp),
		expiresAt: time.Now().Add(e.config.Cache.TTL),
	}
}

// evictIfCacheFull drops expired entries when the cache is at capacity, and
// clears it entirely if that did not free a slot.
// Must be called with cacheMu held.
func (e *Engine) evictIfCacheFull() {
	if len(e.cache) < e.config.Cache.MaxEntries {
		return
	}
	e.evictExpiredLocked()
	if len(e.cache) >= e.config.Cache.MaxEntries {
		e.cache = make(map[string]cacheEntry)
		e.logger.Debug().Msg("cache cleared")
	}
}

// evictExpiredLocked removes expired cache entries.
// Must be called with cacheMu held.
func (e *Engine) evictExpiredLocked() {
	now := time.Now()
	for key, entry := range e.cache {
		if now.After(entry.expiresAt) {
			delete(e.cache, key)
		}
	}
}

// PurgeExpired drops expired cache entries and returns how many were removed.
func (e *Engine) PurgeExpired() int {
	e.cacheMu.Lock()
	defer e.cacheMu.Unlock()

	before := len(e.cache)
	e.evictExpiredLocked()
	return before - len(e.cache)
}

// CacheLen returns the number of cached responses, live or expired.
func (e *Engine) CacheLen() int {
	e.cacheMu.RLock()
	defer e.cacheMu.RUnlock()
	return len(e.cache)
}
