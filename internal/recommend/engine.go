// Pastime - Activity Recommendation Engine
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/pastime

package recommend

import (
	"context"
	"errors"
	"fmt"
	"math"
	"math/rand"
	"sort"
	"sync"
	"sync/atomic"
	"time"

	"github.com/rs/zerolog"

	"github.com/tomtom215/pastime/internal/catalog"
	"github.com/tomtom215/pastime/internal/features"
	"github.com/tomtom215/pastime/internal/logging"
	"github.com/tomtom215/pastime/internal/metrics"
	"github.com/tomtom215/pastime/internal/profile"
)

// Engine ranks catalog activities for a user. It is safe for concurrent use.
type Engine struct {
	// Configuration
	config *Config
	logger zerolog.Logger

	// Immutable session data
	catalog    *catalog.Catalog
	similarity *features.Similarity
	profiles   Profiles

	// Counters
	requestCount  atomic.Int64
	cacheHits     atomic.Int64
	cacheMisses   atomic.Int64
	fallbackCount atomic.Int64

	// Cache keyed by username, profile revision and list size
	cache   map[string]cacheEntry
	cacheMu sync.RWMutex

	// Random source for the fallback sample (protected by rngMu)
	rng   *rand.Rand
	rngMu sync.Mutex
}

// cacheEntry holds a cached recommendation response.
type cacheEntry struct {
	response  *Response
	expiresAt time.Time
}

// NewEngine creates a recommendation engine over an immutable catalog and
// its similarity matrix.
//
//nolint:gocritic // logger passed by value is acceptable for zerolog
func NewEngine(cfg *Config, cat *catalog.Catalog, sim *features.Similarity, profiles Profiles, logger zerolog.Logger) (*Engine, error) {
	if cfg == nil {
		cfg = DefaultConfig()
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}
	if cat == nil || sim == nil || profiles == nil {
		return nil, fmt.Errorf("catalog, similarity and profiles are required")
	}
	if sim.Len() != cat.Len() {
		return nil, fmt.Errorf("%w: %d activities, %dx%d matrix", ErrDimensionMismatch, cat.Len(), sim.Len(), sim.Len())
	}

	seed := cfg.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	return &Engine{
		config:     cfg,
		logger:     logger.With().Str("component", "recommend").Logger(),
		catalog:    cat,
		similarity: sim,
		profiles:   profiles,
		cache:      make(map[string]cacheEntry),
		rng:        rand.New(rand.NewSource(seed)), //nolint:gosec // math/rand is fine for fallback sampling
	}, nil
}

// Rank scores every activity for username and returns the first topN by
// descending score, ties broken by ascending id. Filtered and already seen
// activities get the sentinel score and are dropped, unless FillExcluded is
// set, in which case they fill the remaining slots. Rank is deterministic.
func (e *Engine) Rank(username string, topN int) ([]ScoredActivity, error) {
	user, err := e.profiles.Snapshot(username)
	if err != nil {
		return nil, err
	}
	items, _, err := e.rank(user, e.normalizeTopN(topN))
	return items, err
}

// Recommend generates recommendations for a user.
//
// Recommend always returns a usable response. When ranking fails it returns
// a uniformly random sample of min(TopN, catalog size) activities with
// Metadata.Fallback set, together with a *RecommendationError.
//
//nolint:gocritic // hugeParam: req passed by value for immutability
func (e *Engine) Recommend(ctx context.Context, req Request) (*Response, error) {
	start := time.Now()
	e.requestCount.Add(1)

	req = e.prepareRequest(req)
	logger := e.createRequestLogger(ctx, req)
	logger.Debug().Msg("processing recommendation request")

	user, err := e.profiles.Snapshot(req.Username)
	if err != nil {
		return e.fallbackResponse(req, start, err, logger)
	}

	cacheKey := e.cacheKey(req.Username, user.Revision, req.TopN)
	if resp := e.tryGetCachedResponse(cacheKey, start, logger); resp != nil {
		return resp, nil
	}

	items, eligible, err := e.safeRank(user, req.TopN)
	if err != nil {
		return e.fallbackResponse(req, start, err, logger)
	}

	resp := &Response{
		Items:    items,
		Eligible: eligible,
		Metadata: e.buildResponseMetadata(req, user.Revision, start, false),
	}
	e.cacheResponse(cacheKey, resp)
	metrics.RecordRecommendation(metrics.OutcomeRanked, time.Since(start))

	logger.Debug().
		Int("eligible", eligible).
		Int("returned", len(items)).
		Int64("latency_ms", resp.Metadata.LatencyMS).
		Msg("recommendation complete")

	return resp, nil
}

// RandomActivity returns the single top-ranked unseen activity. It is only
// random when the fallback path triggers.
func (e *Engine) RandomActivity(ctx context.Context, username string) (*Response, error) {
	return e.Recommend(ctx, Request{Username: username, TopN: 1})
}

// Similar returns up to k activities most content-similar to id.
func (e *Engine) Similar(id, k int) ([]ScoredActivity, error) {
	if !e.catalog.Contains(id) {
		return nil, fmt.Errorf("%w: %d", profile.ErrUnknownActivity, id)
	}

	neighbors := e.similarity.MostSimilar(id, k)
	out := make([]ScoredActivity, len(neighbors))
	for i, n := range neighbors {
		a, _ := e.catalog.Get(n.ID)
		out[i] = ScoredActivity{
			Activity: a,
			Score:    n.Score,
			Scores:   map[string]float64{ScoreSimilarity: n.Score},
			Reason:   ReasonSimilar,
		}
	}
	return out, nil
}

// Stats returns the engine counters.
func (e *Engine) Stats() Stats {
	return Stats{
		RequestCount:  e.requestCount.Load(),
		CacheHits:     e.cacheHits.Load(),
		CacheMisses:   e.cacheMisses.Load(),
		FallbackCount: e.fallbackCount.Load(),
	}
}

// GetConfig returns a copy of the current configuration.
func (e *Engine) GetConfig() *Config {
	return e.config.Clone()
}

// prepareRequest applies defaults and generates a request ID if needed.
//
//nolint:gocritic // hugeParam: req passed by value for immutability
func (e *Engine) prepareRequest(req Request) Request {
	if req.RequestID == "" {
		req.RequestID = logging.GenerateRequestID()
	}
	req.TopN = e.normalizeTopN(req.TopN)
	return req
}

func (e *Engine) normalizeTopN(topN int) int {
	if topN <= 0 {
		topN = e.config.Limits.DefaultTopN
	}
	if topN > e.config.Limits.MaxTopN {
		topN = e.config.Limits.MaxTopN
	}
	return topN
}

// createRequestLogger creates a logger with request context.
//
//nolint:gocritic // hugeParam: req passed by value for immutability
func (e *Engine) createRequestLogger(ctx context.Context, req Request) zerolog.Logger {
	logCtx := e.logger.With().
		Str("request_id", req.RequestID).
		Str("username", req.Username).
		Int("top_n", req.TopN)
	if sessionID := logging.SessionIDFromContext(ctx); sessionID != "" {
		logCtx = logCtx.Str("session_id", sessionID)
	}
	return logCtx.Logger()
}

// safeRank runs rank and converts a panic into ErrInternal.
func (e *Engine) safeRank(user profile.User, topN int) (items []ScoredActivity, eligible int, err error) {
	defer func() {
		if r := recover(); r != nil {
			items, eligible = nil, 0
			err = fmt.Errorf("%w: %v", ErrInternal, r)
		}
	}()
	return e.rank(user, topN)
}

// rank implements the scoring pipeline and returns the top list and the
// number of eligible activities.
//
//nolint:gocritic // hugeParam: user passed by value as a snapshot
func (e *Engine) rank(user profile.User, topN int) ([]ScoredActivity, int, error) {
	n := e.catalog.Len()
	w := e.config.Weights

	similarity := make([]float64, n)
	for _, id := range user.RatedIDs() {
		rating := float64(user.Ratings[id])
		for j, s := range e.similarity.Row(id) {
			similarity[j] += s * rating
		}
	}

	scored := make([]ScoredActivity, n)
	eligible := 0
	for _, a := range e.catalog.All() {
		id := a.ID
		breakdown := map[string]float64{ScoreSimilarity: similarity[id]}
		score := similarity[id]
		reason := ReasonPreferences
		if similarity[id] > 0 {
			reason = ReasonSimilar
		}

		if _, ok := user.Likes[id]; ok {
			score += w.LikeBoost
			breakdown[ScoreLike] = w.LikeBoost
			reason = ReasonLiked
		}
		if _, ok := user.Pins[id]; ok {
			score += w.PinBoost
			breakdown[ScorePin] = w.PinBoost
			reason = ReasonPinned
		}
		if _, ok := user.Dislikes[id]; ok {
			score -= w.DislikePenalty
			breakdown[ScoreDislike] = -w.DislikePenalty
			reason = ReasonDisliked
		}

		if math.IsNaN(score) || math.IsInf(score, 0) {
			return nil, 0, fmt.Errorf("%w: activity %d", ErrNonFiniteScore, id)
		}

		excluded := false
		switch {
		case user.Interacted(id):
			score, reason, excluded = w.Sentinel, ReasonSeen, true
		case !user.Preferences.Allows(a):
			score, reason, excluded = w.Sentinel, ReasonFiltered, true
		default:
			eligible++
		}

		scored[id] = ScoredActivity{
			Activity: a,
			Score:    score,
			Scores:   breakdown,
			Reason:   reason,
			Excluded: excluded,
		}
	}

	sort.SliceStable(scored, func(i, j int) bool {
		if scored[i].Score != scored[j].Score {
			return scored[i].Score > scored[j].Score
		}
		return scored[i].Activity.ID < scored[j].Activity.ID
	})

	if !e.config.FillExcluded {
		kept := scored[:0]
		for _, item := range scored {
			if !item.Excluded {
				kept = append(kept, item)
			}
		}
		scored = kept
	}

	if topN < len(scored) {
		scored = scored[:topN]
	}
	return scored, eligible, nil
}

// fallbackResponse logs the failure and returns a random sample.
//
//nolint:gocritic // hugeParam: req passed by value for immutability
func (e *Engine) fallbackResponse(req Request, start time.Time, cause error, logger zerolog.Logger) (*Response, error) {
	e.fallbackCount.Add(1)
	metrics.RecordRecommendError(failureReason(cause))

	resp := &Response{
		Items:    e.randomSample(req.TopN),
		Metadata: e.buildResponseMetadata(req, 0, start, false),
	}
	resp.Metadata.Fallback = true
	metrics.RecordRecommendation(metrics.OutcomeFallback, time.Since(start))

	logger.Warn().
		Err(cause).
		Int("returned", len(resp.Items)).
		Msg("Ranking failed, returning random sample")

	return resp, &RecommendationError{Username: req.Username, Err: cause}
}

// failureReason maps a ranking failure to its metric label.
func failureReason(err error) string {
	switch {
	case errors.Is(err, profile.ErrUnknownUser):
		return metrics.ReasonUnknownUser
	case errors.Is(err, ErrNonFiniteScore):
		return metrics.ReasonNonFinite
	case errors.Is(err, ErrDimensionMismatch):
		return metrics.ReasonDimension
	default:
		return metrics.ReasonInternal
	}
}

// randomSample draws min(k, n) distinct activities uniformly at random.
func (e *Engine) randomSample(k int) []ScoredActivity {
	n := e.catalog.Len()
	if k > n {
		k = n
	}

	e.rngMu.Lock()
	perm := e.rng.Perm(n)
	e.rngMu.Unlock()

	out := make([]ScoredActivity, k)
	for i := 0; i < k; i++ {
		a, _ := e.catalog.Get(perm[i])
		out[i] = ScoredActivity{Activity: a, Reason: ReasonRandom}
	}
	return out
}

// buildResponseMetadata constructs response metadata.
//
//nolint:gocritic // hugeParam: req passed by value for immutability
func (e *Engine) buildResponseMetadata(req Request, revision uint64, start time.Time, cacheHit bool) ResponseMetadata {
	return ResponseMetadata{
		RequestID: req.RequestID,
		Username:  req.Username,
		TopN:      req.TopN,
		LatencyMS: time.Since(start).Milliseconds(),
		CacheHit:  cacheHit,
		Revision:  revision,
		Timestamp: time.Now(),
	}
}
