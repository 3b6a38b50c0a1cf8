// Pastime - Activity Recommendation Engine
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/pastime

/*
Package metrics provides Prometheus instrumentation for the recommender.

# Available Metrics

Catalog:
  - pastime_catalog_loads_total{source, outcome}
  - pastime_catalog_activities
  - pastime_similarity_build_duration_seconds

Recommendations:
  - pastime_recommend_requests_total{outcome}
  - pastime_recommend_duration_seconds
  - pastime_recommend_errors_total{reason}

Profiles:
  - pastime_users_registered_total
  - pastime_interactions_total{kind}

# Metrics Endpoint

When metrics.enabled is set, NewRouter is served by the supervisor tree:

	curl http://localhost:9464/metrics
	curl http://localhost:9464/healthz
*/
package metrics
