// Pastime - Activity Recommendation Engine
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/pastime

package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Recommendation outcomes used as the "outcome" label.
const (
	OutcomeRanked   = "ranked"
	OutcomeCached   = "cached"
	OutcomeFallback = "fallback"
)

// Failure reasons used as the "reason" label. The set is closed so the
// label never carries user input.
const (
	ReasonUnknownUser = "unknown_user"
	ReasonNonFinite   = "non_finite"
	ReasonDimension   = "dimension"
	ReasonInternal    = "internal"
)

var recommendErrorReasons = map[string]struct{}{
	ReasonUnknownUser: {},
	ReasonNonFinite:   {},
	ReasonDimension:   {},
	ReasonInternal:    {},
}

var (
	// Catalog Metrics
	CatalogLoads = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "pastime_catalog_loads_total",
			Help: "Total number of catalog load attempts",
		},
		[]string{"source", "outcome"}, // outcome: "ok", "fallback"
	)

	CatalogActivities = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "pastime_catalog_activities",
			Help: "Number of activities in the loaded catalog",
		},
	)

	SimilarityBuildDuration = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "pastime_similarity_build_duration_seconds",
			Help:    "Time to build feature vectors and the similarity matrix",
			Buckets: prometheus.DefBuckets,
		},
	)

	// Recommendation Metrics
	RecommendRequests = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "pastime_recommend_requests_total",
			Help: "Total number of recommendation requests by outcome",
		},
		[]string{"outcome"},
	)

	RecommendDuration = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "pastime_recommend_duration_seconds",
			Help:    "Latency of recommendation requests",
			Buckets: []float64{.0001, .0005, .001, .005, .01, .05, .1, .5, 1},
		},
	)

	RecommendErrors = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "pastime_recommend_errors_total",
			Help: "Total number of recommendation failures that triggered the random fallback",
		},
		[]string{"reason"},
	)

	// Profile Metrics
	UsersRegistered = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "pastime_users_registered_total",
			Help: "Total number of registered users",
		},
	)

	Interactions = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "pastime_interactions_total",
			Help: "Total number of recorded user interactions",
		},
		[]string{"kind"}, // "pin", "unpin", "like", "dislike", "rate"
	)
)

// RecordCatalogLoad records a catalog load attempt and the resulting size.
func RecordCatalogLoad(source string, fallback bool, size int) {
	outcome := "ok"
	if fallback {
		outcome = "fallback"
	}
	CatalogLoads.WithLabelValues(source, outcome).Inc()
	CatalogActivities.Set(float64(size))
}

// RecordRecommendation records one recommendation request.
func RecordRecommendation(outcome string, duration time.Duration) {
	RecommendRequests.WithLabelValues(outcome).Inc()
	RecommendDuration.Observe(duration.Seconds())
}

// RecordRecommendError counts a failure by reason. Unrecognized reasons are
// counted as ReasonInternal.
func RecordRecommendError(reason string) {
	if _, ok := recommendErrorReasons[reason]; !ok {
		reason = ReasonInternal
	}
	RecommendErrors.WithLabelValues(reason).Inc()
}

// RecordInteraction counts a user interaction of the given kind.
func RecordInteraction(kind string) {
	Interactions.WithLabelValues(kind).Inc()
}
