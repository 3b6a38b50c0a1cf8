// Pastime - Activity Recommendation Engine
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/pastime

package logging

import (
	"fmt"
	"io"
	"os"
	"strings"
	"sync"
	"time"

	"github.com/rs/zerolog"
)

// AppName is attached to every record written by the global logger.
const AppName = "pastime"

// Config mirrors the "logging" configuration section.
type Config struct {
	// Level is trace, debug, info, warn or error. Empty means info.
	Level string

	// Format is json or console. Console is meant for the interactive shell.
	Format string

	// Caller adds file:line to every record.
	Caller bool

	// Output defaults to os.Stderr so stdout stays free for command output.
	Output io.Writer
}

// DefaultConfig returns info-level JSON logging to stderr.
func DefaultConfig() Config {
	return Config{Level: "info", Format: "json", Output: os.Stderr}
}

var (
	mu  sync.RWMutex
	log = newLogger(DefaultConfig(), zerolog.InfoLevel)
)

// Init reconfigures the global logger. An unknown level is an error and
// leaves the current logger in place.
func Init(cfg Config) error {
	level, err := ParseLevel(cfg.Level)
	if err != nil {
		return err
	}

	mu.Lock()
	defer mu.Unlock()
	zerolog.SetGlobalLevel(level)
	log = newLogger(cfg, level)
	return nil
}

// ParseLevel resolves a configured level name. "warning" is accepted as an
// alias for warn and an empty name means info.
func ParseLevel(name string) (zerolog.Level, error) {
	name = strings.ToLower(strings.TrimSpace(name))
	switch name {
	case "":
		return zerolog.InfoLevel, nil
	case "warning":
		return zerolog.WarnLevel, nil
	}
	level, err := zerolog.ParseLevel(name)
	if err != nil {
		return zerolog.NoLevel, fmt.Errorf("invalid log level %q", name)
	}
	return level, nil
}

func newLogger(cfg Config, level zerolog.Level) zerolog.Logger {
	zerolog.TimeFieldFormat = time.RFC3339

	out := cfg.Output
	if out == nil {
		out = os.Stderr
	}
	if cfg.Format == "console" {
		out = zerolog.ConsoleWriter{Out: out, TimeFormat: "15:04:05"}
	}

	ctx := zerolog.New(out).Level(level).With().Timestamp().Str("app", AppName)
	if cfg.Caller {
		ctx = ctx.Caller()
	}
	return ctx.Logger()
}

// Logger returns the global logger.
func Logger() zerolog.Logger {
	mu.RLock()
	defer mu.RUnlock()
	return log
}

// With starts a child context of the global logger.
func With() zerolog.Context {
	mu.RLock()
	defer mu.RUnlock()
	return log.With()
}

// Debug starts a debug record on the global logger.
func Debug() *zerolog.Event {
	mu.RLock()
	defer mu.RUnlock()
	return log.Debug()
}

// WithSession tags logger with the session component and id so every
// record a session writes can be grouped.
//
//nolint:gocritic // zerolog.Logger is designed to be passed by value
func WithSession(logger zerolog.Logger, sessionID string) zerolog.Logger {
	return logger.With().Str("component", "session").Str("session_id", sessionID).Logger()
}

// NewTestLogger creates a logger that writes to w.
func NewTestLogger(w io.Writer) zerolog.Logger {
	return zerolog.New(w).With().Timestamp().Logger()
}
