// Pastime - Activity Recommendation Engine
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/pastime

package logging

import (
	"context"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

type contextKey string

const (
	sessionIDKey contextKey = "session_id"
	requestIDKey contextKey = "request_id"
	loggerKey    contextKey = "logger"
)

// GenerateSessionID creates a short session identifier.
// The first 8 characters of a UUID are enough for a single process.
func GenerateSessionID() string {
	return uuid.New().String()[:8]
}

// GenerateRequestID creates a new unique request ID.
func GenerateRequestID() string {
	return uuid.New().String()
}

// ContextWithSessionID returns a new context carrying the session ID.
func ContextWithSessionID(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, sessionIDKey, id)
}

// SessionIDFromContext returns the session ID, or "" if absent.
func SessionIDFromContext(ctx context.Context) string {
	if id, ok := ctx.Value(sessionIDKey).(string); ok {
		return id
	}
	return ""
}

// ContextWithRequestID returns a new context carrying the request ID.
func ContextWithRequestID(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, requestIDKey, id)
}

// RequestIDFromContext returns the request ID, or "" if absent.
func RequestIDFromContext(ctx context.Context) string {
	if id, ok := ctx.Value(requestIDKey).(string); ok {
		return id
	}
	return ""
}

// ContextWithLogger stores a logger in the context.
//
//nolint:gocritic // zerolog.Logger is designed to be passed by value
func ContextWithLogger(ctx context.Context, logger zerolog.Logger) context.Context {
	return context.WithValue(ctx, loggerKey, logger)
}

// LoggerFromContext retrieves a logger from context.
// Returns the global logger if no logger is stored in context.
func LoggerFromContext(ctx context.Context) zerolog.Logger {
	if logger, ok := ctx.Value(loggerKey).(zerolog.Logger); ok {
		return logger
	}
	return Logger()
}

// Ctx returns a logger with session_id and request_id fields added when present.
//
//	logging.Ctx(ctx).Info().Msg("recommendations served")
func Ctx(ctx context.Context) *zerolog.Logger {
	logCtx := LoggerFromContext(ctx).With()

	if sessionID := SessionIDFromContext(ctx); sessionID != "" {
		logCtx = logCtx.Str("session_id", sessionID)
	}
	if requestID := RequestIDFromContext(ctx); requestID != "" {
		logCtx = logCtx.Str("request_id", requestID)
	}

	logger := logCtx.Logger()
	return &logger
}

// WithComponent creates a child logger with a component field.
//
//	catalogLogger := logging.WithComponent("catalog")
func WithComponent(component string) zerolog.Logger {
	return With().Str("component", component).Logger()
}
