// Pastime - Activity Recommendation Engine
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/pastime

/*
Package config loads application configuration with Koanf v2.

Sources are layered, later ones winning:

 1. Built-in defaults
 2. YAML file (--config flag, PASTIME_CONFIG, or ./pastime.yaml)
 3. PASTIME_* environment variables

# Example File

	catalog:
	  path: data/activities.csv
	  source: duckdb
	recommend:
	  default_top_n: 5
	  weights:
	    like_boost: 0.5
	  cache:
	    ttl: 10m
	logging:
	  level: debug
	metrics:
	  enabled: true
	  addr: 127.0.0.1:9464

# Environment Variables

	PASTIME_CATALOG_PATH, PASTIME_CATALOG_SOURCE
	PASTIME_RECOMMEND_DEFAULT_TOP_N, PASTIME_RECOMMEND_MAX_TOP_N
	PASTIME_RECOMMEND_LIKE_BOOST, PASTIME_RECOMMEND_PIN_BOOST
	PASTIME_RECOMMEND_DISLIKE_PENALTY, PASTIME_RECOMMEND_SENTINEL
	PASTIME_RECOMMEND_CACHE_ENABLED, PASTIME_RECOMMEND_CACHE_TTL
	PASTIME_LOG_LEVEL, PASTIME_LOG_FORMAT
	PASTIME_METRICS_ENABLED, PASTIME_METRICS_ADDR

Validation uses go-playground/validator tags plus the engine's own checks.
*/
package config
