// Pastime - Activity Recommendation Engine
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/pastime

// Package main is the entry point for the Pastime command-line application.
//
// Pastime suggests leisure activities from a small tabular catalog. Each run
// is one session: users register, set preferences, rate, like, dislike and
// pin activities, and ask for ranked recommendations. Nothing is persisted.
//
// # Application Architecture
//
// Every command initializes components in the same order:
//
//  1. Configuration: defaults, then pastime.yaml, then PASTIME_* environment (Koanf v2)
//  2. Logging: zerolog, configured from the logging section
//  3. Catalog: the dataset via encoding/csv or DuckDB, with a built-in fallback
//  4. Features: price and one-hot category vectors, cosine similarity
//  5. Engine and session: profile store, recommendation engine, session facade
//  6. Supervisor (shell only): cache janitor and optional metrics server
//
// # Commands
//
//	pastime                  interactive shell (same as "pastime shell")
//	pastime catalog          list activities
//	pastime recommend        one-shot recommendations from flags
//	pastime similar <id>     activities most similar to one activity
//	pastime version          build information
//
// # Signal Handling
//
// SIGINT and SIGTERM cancel the command context. The shell exits at the next
// prompt and the supervisor tree is shut down gracefully.
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
)

func main() {
	os.Exit(run())
}

func run() int {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := newRootCmd().ExecuteContext(ctx); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		return 1
	}
	return 0
}
