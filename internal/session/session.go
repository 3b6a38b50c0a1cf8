// Pastime - Activity Recommendation Engine
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/pastime

package session

import (
	"context"
	"fmt"
	"strings"

	"github.com/rs/zerolog"

	"github.com/tomtom215/pastime/internal/catalog"
	"github.com/tomtom215/pastime/internal/logging"
	"github.com/tomtom215/pastime/internal/profile"
	"github.com/tomtom215/pastime/internal/recommend"
)

// Info messages.
const (
	MsgRegistered       = "Welcome, %s! Set your preferences to get started."
	MsgLoggedIn         = "Welcome back, %s!"
	MsgLoggedOut        = "Logged out"
	MsgPreferencesSaved = "Preferences saved successfully!"
	MsgPinned           = "Activity added to your pins!"
	MsgUnpinned         = "Activity removed from your pins"
	MsgLiked            = "Activity added to your likes!"
	MsgDisliked         = "We'll avoid similar activities"
	MsgRated            = "Thanks for your %d-star rating!"
	MsgNoResults        = "No recommendations available. Try adjusting your preferences."
)

// Session is the presentation-layer boundary for one interactive user
// session. Callbacks are expected from a single control flow.
type Session struct {
	id       string
	catalog  *catalog.Catalog
	store    *profile.Store
	engine   *recommend.Engine
	notifier Notifier
	logger   zerolog.Logger

	current string
}

// New creates a session. A nil notifier discards notifications.
//
//nolint:gocritic // logger passed by value is acceptable for zerolog
func New(cat *catalog.Catalog, store *profile.Store, engine *recommend.Engine, notifier Notifier, logger zerolog.Logger) *Session {
	if notifier == nil {
		notifier = discard{}
	}
	id := logging.GenerateSessionID()
	return &Session{
		id:       id,
		catalog:  cat,
		store:    store,
		engine:   engine,
		notifier: notifier,
		logger:   logging.WithSession(logger, id),
	}
}

// ID returns the session identifier.
func (s *Session) ID() string {
	return s.id
}

// CurrentUser returns the logged-in username, or "".
func (s *Session) CurrentUser() string {
	return s.current
}

// Catalog returns the session catalog.
func (s *Session) Catalog() *catalog.Catalog {
	return s.catalog
}

// Context returns ctx annotated with the session id for log correlation.
func (s *Session) Context(ctx context.Context) context.Context {
	return logging.ContextWithSessionID(ctx, s.id)
}

// ReportLoadError notifies the presentation layer that the dataset could
// not be loaded. A nil error is ignored.
func (s *Session) ReportLoadError(err error) {
	if err == nil {
		return
	}
	s.fail(err)
}

// OnRegister creates a user and logs them in. The username is an exact,
// case-sensitive key and is stored as given.
func (s *Session) OnRegister(username string) error {
	if _, err := s.store.Register(username); err != nil {
		return s.fail(err)
	}
	s.current = username
	s.info(fmt.Sprintf(MsgRegistered, username))
	return nil
}

// OnLogin logs in an existing user.
func (s *Session) OnLogin(username string) error {
	if strings.TrimSpace(username) == "" {
		return s.fail(profile.ErrInvalidUsername)
	}
	if !s.store.Exists(username) {
		return s.fail(fmt.Errorf("%w: %s", profile.ErrUnknownUser, username))
	}
	s.current = username
	s.logger.Info().Str("username", username).Msg("User logged in")
	s.info(fmt.Sprintf(MsgLoggedIn, username))
	return nil
}

// OnLogout clears the current user.
func (s *Session) OnLogout() {
	if s.current == "" {
		return
	}
	s.logger.Info().Str("username", s.current).Msg("User logged out")
	s.current = ""
	s.info(MsgLoggedOut)
}

// OnSetPreferences normalizes and stores the current user's preferences.
//
//nolint:gocritic // hugeParam: prefs passed by value as a replacement
func (s *Session) OnSetPreferences(prefs profile.Preferences) error {
	user, err := s.requireUser()
	if err != nil {
		return err
	}
	if err := s.store.SetPreferences(user, prefs.Normalize()); err != nil {
		return s.fail(err)
	}
	s.info(MsgPreferencesSaved)
	return nil
}

// OnPin pins an activity for the current user.
func (s *Session) OnPin(id int) error {
	return s.interact(id, s.store.Pin, MsgPinned)
}

// OnUnpin removes a pin for the current user.
func (s *Session) OnUnpin(id int) error {
	return s.interact(id, s.store.Unpin, MsgUnpinned)
}

// OnLike likes an activity for the current user.
func (s *Session) OnLike(id int) error {
	return s.interact(id, s.store.Like, MsgLiked)
}

// OnDislike dislikes an activity for the current user.
func (s *Session) OnDislike(id int) error {
	return s.interact(id, s.store.Dislike, MsgDisliked)
}

// OnRate rates an activity 1..5 for the current user.
func (s *Session) OnRate(id, rating int) error {
	rate := func(username string, id int) error {
		return s.store.Rate(username, id, rating)
	}
	return s.interact(id, rate, fmt.Sprintf(MsgRated, rating))
}

// OnRequestRecommendations returns up to topN recommendations. On engine
// failure the response still holds a random sample and the error is also
// returned.
func (s *Session) OnRequestRecommendations(ctx context.Context, topN int) (*recommend.Response, error) {
	user, err := s.requireUser()
	if err != nil {
		return nil, err
	}

	resp, err := s.engine.Recommend(s.Context(ctx), recommend.Request{Username: user, TopN: topN})
	if err != nil {
		return resp, s.fail(err)
	}
	if len(resp.Items) == 0 {
		s.info(MsgNoResults)
	}
	return resp, nil
}

// OnRequestRandomActivity returns the single top-ranked unseen activity.
func (s *Session) OnRequestRandomActivity(ctx context.Context) (*recommend.ScoredActivity, error) {
	user, err := s.requireUser()
	if err != nil {
		return nil, err
	}

	resp, err := s.engine.RandomActivity(s.Context(ctx), user)
	if err != nil {
		failed := s.fail(err)
		if resp == nil || len(resp.Items) == 0 {
			return nil, failed
		}
		return &resp.Items[0], failed
	}
	if len(resp.Items) == 0 {
		return nil, s.fail(ErrNoActivity)
	}
	return &resp.Items[0], nil
}

// OnRequestSimilar returns up to k activities most similar to id.
func (s *Session) OnRequestSimilar(id, k int) ([]recommend.ScoredActivity, error) {
	items, err := s.engine.Similar(id, k)
	if err != nil {
		return nil, s.fail(err)
	}
	return items, nil
}

// Pinned returns the current user's pinned activities.
func (s *Session) Pinned() ([]catalog.Activity, error) {
	u, err := s.snapshot()
	if err != nil {
		return nil, err
	}
	return s.activities(u.PinnedIDs()), nil
}

// Liked returns the current user's liked activities.
func (s *Session) Liked() ([]catalog.Activity, error) {
	u, err := s.snapshot()
	if err != nil {
		return nil, err
	}
	return s.activities(u.LikedIDs()), nil
}

// Disliked returns the current user's disliked activities.
func (s *Session) Disliked() ([]catalog.Activity, error) {
	u, err := s.snapshot()
	if err != nil {
		return nil, err
	}
	return s.activities(u.DislikedIDs()), nil
}

// RatedActivity is an activity with the current user's rating.
type RatedActivity struct {
	Activity catalog.Activity `json:"activity"`
	Rating   int              `json:"rating"`
}

// Rated returns the current user's ratings in activity id order.
func (s *Session) Rated() ([]RatedActivity, error) {
	u, err := s.snapshot()
	if err != nil {
		return nil, err
	}
	out := make([]RatedActivity, 0, len(u.Ratings))
	for _, id := range u.RatedIDs() {
		a, _ := s.catalog.Get(id)
		out = append(out, RatedActivity{Activity: a, Rating: u.Ratings[id]})
	}
	return out, nil
}

// Preferences returns the current user's preferences.
func (s *Session) Preferences() (profile.Preferences, error) {
	u, err := s.snapshot()
	if err != nil {
		return profile.Preferences{}, err
	}
	return u.Preferences, nil
}

func (s *Session) interact(id int, op func(username string, id int) error, msg string) error {
	user, err := s.requireUser()
	if err != nil {
		return err
	}
	if err := op(user, id); err != nil {
		return s.fail(err)
	}
	s.info(msg)
	return nil
}

func (s *Session) snapshot() (profile.User, error) {
	user, err := s.requireUser()
	if err != nil {
		return profile.User{}, err
	}
	u, err := s.store.Snapshot(user)
	if err != nil {
		return profile.User{}, s.fail(err)
	}
	return u, nil
}

func (s *Session) activities(ids []int) []catalog.Activity {
	out := make([]catalog.Activity, 0, len(ids))
	for _, id := range ids {
		if a, ok := s.catalog.Get(id); ok {
			out = append(out, a)
		}
	}
	return out
}

func (s *Session) requireUser() (string, error) {
	if s.current == "" {
		return "", s.fail(ErrNotLoggedIn)
	}
	return s.current, nil
}

// fail logs err, notifies the presentation layer and returns a *Error.
func (s *Session) fail(err error) error {
	kind, msg := classify(err)
	s.logger.Warn().Err(err).Str("kind", string(kind)).Str("username", s.current).Msg("Session action failed")
	s.notifier.Notify(Notification{Kind: kind, Message: msg})
	return &Error{Kind: kind, Err: err}
}

func (s *Session) info(msg string) {
	s.notifier.Notify(Notification{Kind: KindInfo, Message: msg})
}
