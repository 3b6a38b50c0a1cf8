// Pastime - Activity Recommendation Engine
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/pastime

// Package profile stores per-user preferences and interactions (pins, likes,
// dislikes and 1..5 ratings) for the lifetime of a session.
//
// Likes and dislikes are mutually exclusive. Every mutation bumps the user's
// Revision, which the recommendation engine uses as a cache key.
package profile
