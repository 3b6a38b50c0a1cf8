// Pastime - Activity Recommendation Engine
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/pastime

// Package catalog loads the activity dataset and normalizes it into an
// immutable Catalog.
//
// Two sources are available: CSVSource (encoding/csv) and DuckDBSource
// (read_csv_auto). Header cells are matched after NFKC normalization and
// case folding, so "Activity", "ACTIVITY" and "Name" all resolve to the
// activity name column.
//
// Loader.Load always returns a usable catalog. When the dataset is missing
// or malformed it substitutes the built-in four-activity fallback catalog and
// reports a *LoadError.
package catalog
