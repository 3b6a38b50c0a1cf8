// Pastime - Activity Recommendation Engine
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/pastime

/*
Package supervisor runs Pastime's background services under a suture v4
supervisor tree.

Services that crash are restarted with exponential backoff. Supervisor
events are logged through sutureslog into the application's zerolog
logger (see logging.NewSlogLogger).

# Tree Layout

	pastime (root)
	├── engine-layer
	│   └── cache-janitor
	└── api-layer
	    └── metrics-server

The interactive session is not supervised; it owns the process lifetime
and cancels the tree's context when it exits.

See the services subpackage for the individual wrappers.
*/
package supervisor
