// Pastime - Activity Recommendation Engine
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/pastime

// Package logging provides the zerolog-based logger shared by every Pastime
// component.
//
// # Quick Start
//
//	if err := logging.Init(cfg.Logging.LoggerConfig()); err != nil {
//		return err
//	}
//	logging.Debug().Str("dataset", path).Msg("Configuration loaded")
//
// Components receive a zerolog.Logger and add a "component" field:
//
//	logger := logging.WithComponent("recommend")
//
// A session tags its logger once with WithSession. Session and request
// identifiers travel through context.Context and are
// attached by Ctx:
//
//	ctx = logging.ContextWithSessionID(ctx, logging.GenerateSessionID())
//	logging.Ctx(ctx).Debug().Msg("action handled")
//
// Always terminate log chains with .Msg() or .Send(); an unterminated event is
// never written.
//
// # slog Bridge
//
// SlogHandler routes log/slog records into zerolog. The supervisor tree uses
// it because sutureslog only accepts *slog.Logger.
package logging
