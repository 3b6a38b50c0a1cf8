// Pastime - Activity Recommendation Engine
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/pastime

/*
Package services provides suture.Service wrappers for Pastime's background
components.

Each wrapper translates a component's lifecycle into suture's context-aware
Serve pattern and implements fmt.Stringer so supervisor events name it.

# Available Services

HTTPServerService wraps an *http.Server, typically the metrics router, and
shuts it down gracefully when its context is canceled.

CacheJanitorService periodically drops expired entries from the
recommendation engine's response cache.

# Usage

	tree.AddAPIService(services.NewHTTPServerService("metrics-server", srv, 5*time.Second))
	tree.AddEngineService(services.NewCacheJanitorService(engine, time.Minute, logger))
*/
package services
