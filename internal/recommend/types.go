// Pastime - Activity Recommendation Engine
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/pastime

package recommend

import (
	"errors"
	"fmt"
	"time"

	"github.com/tomtom215/pastime/internal/catalog"
	"github.com/tomtom215/pastime/internal/profile"
)

// Score breakdown keys.
const (
	ScoreSimilarity = "similarity"
	ScoreLike       = "like"
	ScorePin        = "pin"
	ScoreDislike    = "dislike"
)

// Reasons attached to scored activities.
const (
	ReasonSimilar     = "Similar to activities you rated"
	ReasonLiked       = "You liked this"
	ReasonPinned      = "You pinned this"
	ReasonDisliked    = "You disliked this"
	ReasonPreferences = "Matches your preferences"
	ReasonSeen        = "Already in your history"
	ReasonFiltered    = "Outside your preferences"
	ReasonRandom      = "Random pick"
)

var (
	// ErrNonFiniteScore is returned when scoring produced NaN or Inf.
	ErrNonFiniteScore = errors.New("non-finite score")

	// ErrDimensionMismatch is returned when the similarity matrix does not
	// match the catalog.
	ErrDimensionMismatch = errors.New("similarity matrix does not match catalog")

	// ErrInternal wraps a recovered panic during scoring.
	ErrInternal = errors.New("internal scoring error")
)

// RecommendationError reports that ranking failed and a random sample was
// returned instead.
type RecommendationError struct {
	Username string
	Err      error
}

func (e *RecommendationError) Error() string {
	return fmt.Sprintf("recommendation error for %q: %v", e.Username, e.Err)
}

func (e *RecommendationError) Unwrap() error {
	return e.Err
}

// Profiles is the read side of the profile store.
type Profiles interface {
	Snapshot(username string) (profile.User, error)
}

// ScoredActivity is an activity with its recommendation score.
type ScoredActivity struct {
	// Activity is the catalog entry.
	Activity catalog.Activity `json:"activity"`

	// Score is the final score. Filtered and seen activities carry the
	// sentinel score.
	Score float64 `json:"score"`

	// Scores is the pre-filter breakdown by component.
	Scores map[string]float64 `json:"scores,omitempty"`

	// Reason provides an interpretable explanation for the score.
	Reason string `json:"reason,omitempty"`

	// Excluded is true when the activity was filtered or already seen.
	Excluded bool `json:"excluded,omitempty"`
}

// Request represents a recommendation request.
type Request struct {
	// Username is the user to recommend for.
	Username string `json:"username"`

	// TopN is the number of recommendations to return.
	// Defaults to Config.Limits.DefaultTopN if zero or negative.
	TopN int `json:"top_n,omitempty"`

	// RequestID is a unique identifier for tracing.
	RequestID string `json:"request_id,omitempty"`
}

// Response represents a recommendation response.
type Response struct {
	// Items is the ordered list of recommended activities.
	Items []ScoredActivity `json:"items"`

	// Eligible is the number of activities that passed every filter.
	Eligible int `json:"eligible"`

	// Metadata contains timing and diagnostic information.
	Metadata ResponseMetadata `json:"metadata"`
}

// ResponseMetadata contains timing and diagnostic information.
type ResponseMetadata struct {
	RequestID string    `json:"request_id"`
	Username  string    `json:"username"`
	TopN      int       `json:"top_n"`
	LatencyMS int64     `json:"latency_ms"`
	CacheHit  bool      `json:"cache_hit"`
	Fallback  bool      `json:"fallback"`
	Revision  uint64    `json:"revision"`
	Timestamp time.Time `json:"timestamp"`
}

// Stats are engine counters.
type Stats struct {
	RequestCount  int64 `json:"request_count"`
	CacheHits     int64 `json:"cache_hits"`
	CacheMisses   int64 `json:"cache_misses"`
	FallbackCount int64 `json:"fallback_count"`
}
