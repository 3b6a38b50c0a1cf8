// Pastime - Activity Recommendation Engine
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/pastime

// Package session is the boundary between the presentation layer and the
// recommender core.
//
// The presentation layer calls the On* methods in response to user actions
// and renders the Notification values it receives through its Notifier.
// Every failure is both notified and returned as a *Error carrying the
// notification Kind; no callback panics or leaves the session unusable.
package session
