// Pastime - Activity Recommendation Engine
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/pastime

package profile

import "errors"

var (
	// ErrDuplicateUser is returned when registering an existing username.
	ErrDuplicateUser = errors.New("username already exists")

	// ErrInvalidUsername is returned for empty or whitespace-only usernames.
	ErrInvalidUsername = errors.New("username must not be blank")

	// ErrUnknownUser is returned when the username is not registered.
	ErrUnknownUser = errors.New("user not found")

	// ErrUnknownActivity is returned when an activity id is not in the catalog.
	ErrUnknownActivity = errors.New("activity not found")

	// ErrInvalidRating is returned for ratings outside 1..5.
	ErrInvalidRating = errors.New("rating must be between 1 and 5")

	// ErrInvalidPreferences is returned when preference bounds are out of range.
	ErrInvalidPreferences = errors.New("invalid preferences")
)
