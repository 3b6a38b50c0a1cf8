// Pastime - Activity Recommendation Engine
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/pastime

package session

import (
	"errors"
	"fmt"

	"github.com/tomtom215/pastime/internal/catalog"
	"github.com/tomtom215/pastime/internal/profile"
	"github.com/tomtom215/pastime/internal/recommend"
)

// Kind classifies a notification.
type Kind string

// Notification kinds.
const (
	KindInfo                    Kind = "Info"
	KindDatasetLoadError        Kind = "DatasetLoadError"
	KindDuplicateUserError      Kind = "DuplicateUserError"
	KindInvalidUsernameError    Kind = "InvalidUsernameError"
	KindUnknownUserError        Kind = "UnknownUserError"
	KindInvalidRatingError      Kind = "InvalidRatingError"
	KindRecommendationError     Kind = "RecommendationError"
	KindUnknownActivityError    Kind = "UnknownActivityError"
	KindNotLoggedInError        Kind = "NotLoggedInError"
	KindInvalidPreferencesError Kind = "InvalidPreferencesError"
)

// IsError reports whether the kind describes a failure.
func (k Kind) IsError() bool {
	return k != KindInfo
}

// Notification is a user-facing message for the presentation layer.
type Notification struct {
	Kind    Kind   `json:"kind"`
	Message string `json:"message"`
}

// Notifier receives notifications. Implementations display them.
type Notifier interface {
	Notify(n Notification)
}

// NotifierFunc adapts a function to Notifier.
type NotifierFunc func(n Notification)

// Notify implements Notifier.
func (f NotifierFunc) Notify(n Notification) {
	f(n)
}

// discard drops every notification.
type discard struct{}

func (discard) Notify(Notification) {}

var (
	// ErrNotLoggedIn is returned for actions that need a current user.
	ErrNotLoggedIn = errors.New("not logged in")

	// ErrNoActivity is returned when no activity could be suggested.
	ErrNoActivity = errors.New("couldn't generate an activity")
)

// Error is returned by session callbacks. It carries the notification kind
// and wraps the underlying cause.
type Error struct {
	Kind Kind
	Err  error
}

func (e *Error) Error() string {
	return fmt.Sprintf("%s: %v", e.Kind, e.Err)
}

func (e *Error) Unwrap() error {
	return e.Err
}

// classify maps an error to its notification kind and user-facing message.
func classify(err error) (Kind, string) {
	var loadErr *catalog.LoadError
	var recErr *recommend.RecommendationError

	switch {
	case errors.As(err, &loadErr):
		return KindDatasetLoadError, "Failed to load data: " + loadErr.Err.Error()
	case errors.As(err, &recErr):
		return KindRecommendationError, "Recommendation error: " + recErr.Err.Error()
	case errors.Is(err, ErrNoActivity):
		return KindRecommendationError, "Couldn't generate an activity"
	case errors.Is(err, ErrNotLoggedIn):
		return KindNotLoggedInError, "Please log in first"
	case errors.Is(err, profile.ErrInvalidUsername):
		return KindInvalidUsernameError, "Please enter a username"
	case errors.Is(err, profile.ErrDuplicateUser):
		return KindDuplicateUserError, "Username already exists"
	case errors.Is(err, profile.ErrUnknownUser):
		return KindUnknownUserError, "Username not found"
	case errors.Is(err, profile.ErrUnknownActivity):
		return KindUnknownActivityError, "Activity not found"
	case errors.Is(err, profile.ErrInvalidRating):
		return KindInvalidRatingError, "Rating must be between 1 and 5"
	case errors.Is(err, profile.ErrInvalidPreferences):
		return KindInvalidPreferencesError, "Invalid preferences: " + err.Error()
	default:
		return KindRecommendationError, err.Error()
	}
}
