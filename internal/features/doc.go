// Pastime - Activity Recommendation Engine
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/pastime

// Package features turns a catalog into content feature vectors
// ([price, one-hot category...]) and a cosine similarity matrix.
package features
