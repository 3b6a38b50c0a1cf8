// Pastime - Activity Recommendation Engine
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/pastime

package catalog

import (
	"context"
	"fmt"
	"time"

	"github.com/rs/zerolog"

	"github.com/tomtom215/pastime/internal/metrics"
)

// Source kinds accepted by NewSource.
const (
	SourceCSV    = "csv"
	SourceDuckDB = "duckdb"
)

// LoadError reports that the dataset could not be used and the fallback
// catalog was substituted.
type LoadError struct {
	Source string
	Path   string
	Err    error
}

func (e *LoadError) Error() string {
	return fmt.Sprintf("failed to load data from %s (%s): %v", e.Path, e.Source, e.Err)
}

func (e *LoadError) Unwrap() error {
	return e.Err
}

// NewSource returns the Source for kind reading path.
func NewSource(kind, path string) (Source, error) {
	switch kind {
	case SourceCSV, "":
		return NewCSVSource(path), nil
	case SourceDuckDB:
		return NewDuckDBSource(path), nil
	default:
		return nil, fmt.Errorf("unknown catalog source %q", kind)
	}
}

// Loader produces the session catalog from a Source.
type Loader struct {
	source Source
	path   string
	logger zerolog.Logger
}

// NewLoader creates a loader. path is only used in error reports.
func NewLoader(source Source, path string, logger zerolog.Logger) *Loader {
	return &Loader{
		source: source,
		path:   path,
		logger: logger.With().Str("component", "catalog").Logger(),
	}
}

// Load reads and normalizes the dataset.
//
// Load never leaves the caller without a catalog: on any failure it returns
// the fallback catalog together with a *LoadError.
func (l *Loader) Load(ctx context.Context) (*Catalog, error) {
	start := time.Now()

	cat, err := l.load(ctx)
	if err != nil {
		fb := Fallback()
		l.logger.Error().
			Err(err).
			Str("source", l.source.Name()).
			Str("path", l.path).
			Int("activities", fb.Len()).
			Msg("Dataset load failed, using fallback catalog")
		metrics.RecordCatalogLoad(l.source.Name(), true, fb.Len())
		return fb, &LoadError{Source: l.source.Name(), Path: l.path, Err: err}
	}

	l.logger.Info().
		Str("source", l.source.Name()).
		Str("path", l.path).
		Int("activities", cat.Len()).
		Int("categories", len(cat.Categories())).
		Dur("duration", time.Since(start)).
		Msg("Catalog loaded")
	metrics.RecordCatalogLoad(l.source.Name(), false, cat.Len())
	return cat, nil
}

func (l *Loader) load(ctx context.Context) (*Catalog, error) {
	ds, err := l.source.Read(ctx)
	if err != nil {
		return nil, err
	}
	return New(ds, l.source.Name())
}
