// Pastime - Activity Recommendation Engine
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/pastime

package profile

import (
	"fmt"
	"sort"
	"strings"
	"sync"

	"github.com/rs/zerolog"

	"github.com/tomtom215/pastime/internal/catalog"
	"github.com/tomtom215/pastime/internal/metrics"
)

// Rating bounds.
const (
	MinRating = 1
	MaxRating = 5
)

// Interaction kinds, used for metrics and logging.
const (
	KindPin     = "pin"
	KindUnpin   = "unpin"
	KindLike    = "like"
	KindDislike = "dislike"
	KindRate    = "rate"
)

// User is a registered user with preferences and interactions.
// Values returned by the Store are deep copies.
type User struct {
	ID          int
	Username    string
	Preferences Preferences
	Pins        map[int]struct{}
	Likes       map[int]struct{}
	Dislikes    map[int]struct{}
	Ratings     map[int]int

	// Revision increments on every mutation of this user.
	Revision uint64
}

func newUser(id int, username string) *User {
	return &User{
		ID:          id,
		Username:    username,
		Preferences: DefaultPreferences(),
		Pins:        make(map[int]struct{}),
		Likes:       make(map[int]struct{}),
		Dislikes:    make(map[int]struct{}),
		Ratings:     make(map[int]int),
	}
}

func (u *User) clone() User {
	out := User{
		ID:          u.ID,
		Username:    u.Username,
		Preferences: u.Preferences.clone(),
		Pins:        cloneSet(u.Pins),
		Likes:       cloneSet(u.Likes),
		Dislikes:    cloneSet(u.Dislikes),
		Ratings:     make(map[int]int, len(u.Ratings)),
		Revision:    u.Revision,
	}
	for id, r := range u.Ratings {
		out.Ratings[id] = r
	}
	return out
}

// PinnedIDs returns pinned activity ids in ascending order.
func (u User) PinnedIDs() []int { return sortedKeys(u.Pins) }

// LikedIDs returns liked activity ids in ascending order.
func (u User) LikedIDs() []int { return sortedKeys(u.Likes) }

// DislikedIDs returns disliked activity ids in ascending order.
func (u User) DislikedIDs() []int { return sortedKeys(u.Dislikes) }

// RatedIDs returns rated activity ids in ascending order.
func (u User) RatedIDs() []int {
	ids := make([]int, 0, len(u.Ratings))
	for id := range u.Ratings {
		ids = append(ids, id)
	}
	sort.Ints(ids)
	return ids
}

// Interacted reports whether the user pinned, liked, disliked or rated id.
func (u User) Interacted(id int) bool {
	if _, ok := u.Pins[id]; ok {
		return true
	}
	if _, ok := u.Likes[id]; ok {
		return true
	}
	if _, ok := u.Dislikes[id]; ok {
		return true
	}
	_, ok := u.Ratings[id]
	return ok
}

// Store holds every user for the session. It is safe for concurrent use.
type Store struct {
	mu      sync.RWMutex
	users   map[string]*User
	catalog *catalog.Catalog
	logger  zerolog.Logger
}

// NewStore creates an empty store. Activity ids are validated against cat.
func NewStore(cat *catalog.Catalog, logger zerolog.Logger) *Store {
	return &Store{
		users:   make(map[string]*User),
		catalog: cat,
		logger:  logger.With().Str("component", "profile").Logger(),
	}
}

// CreateUser registers username and reports whether it was newly created.
func (s *Store) CreateUser(username string) bool {
	_, err := s.Register(username)
	return err == nil
}

// Register creates a user with default preferences and empty interactions.
// Usernames are case-sensitive.
func (s *Store) Register(username string) (*User, error) {
	if strings.TrimSpace(username) == "" {
		return nil, ErrInvalidUsername
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if _, exists := s.users[username]; exists {
		return nil, fmt.Errorf("%w: %s", ErrDuplicateUser, username)
	}

	u := newUser(len(s.users), username)
	s.users[username] = u
	metrics.UsersRegistered.Inc()

	s.logger.Info().Str("username", username).Int("user_id", u.ID).Msg("User registered")

	out := u.clone()
	return &out, nil
}

// Exists reports whether username is registered.
func (s *Store) Exists(username string) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	_, ok := s.users[username]
	return ok
}

// Len returns the number of registered users.
func (s *Store) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.users)
}

// Snapshot returns a deep copy of the user.
func (s *Store) Snapshot(username string) (User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	u, ok := s.users[username]
	if !ok {
		return User{}, fmt.Errorf("%w: %s", ErrUnknownUser, username)
	}
	return u.clone(), nil
}

// Preferences returns the user's current preferences.
func (s *Store) Preferences(username string) (Preferences, error) {
	u, err := s.Snapshot(username)
	if err != nil {
		return Preferences{}, err
	}
	return u.Preferences, nil
}

// SetPreferences replaces the user's preferences wholesale.
// Bounds must be on their scales; ordering of min and max is not checked.
func (s *Store) SetPreferences(username string, prefs Preferences) error {
	if err := prefs.Validate(); err != nil {
		return err
	}

	return s.mutate(username, func(u *User) {
		u.Preferences = prefs.clone()
	})
}

// Pin adds id to the user's pins.
func (s *Store) Pin(username string, id int) error {
	return s.interact(username, id, KindPin, func(u *User) {
		u.Pins[id] = struct{}{}
	})
}

// Unpin removes id from the user's pins.
func (s *Store) Unpin(username string, id int) error {
	return s.interact(username, id, KindUnpin, func(u *User) {
		delete(u.Pins, id)
	})
}

// Like adds id to the user's likes and removes it from dislikes.
func (s *Store) Like(username string, id int) error {
	return s.interact(username, id, KindLike, func(u *User) {
		u.Likes[id] = struct{}{}
		delete(u.Dislikes, id)
	})
}

// Dislike adds id to the user's dislikes and removes it from likes.
func (s *Store) Dislike(username string, id int) error {
	return s.interact(username, id, KindDislike, func(u *User) {
		u.Dislikes[id] = struct{}{}
		delete(u.Likes, id)
	})
}

// Rate records a 1..5 rating for id, overwriting any earlier rating.
// Out-of-range ratings are rejected without changing state.
func (s *Store) Rate(username string, id, rating int) error {
	if rating < MinRating || rating > MaxRating {
		return fmt.Errorf("%w: got %d", ErrInvalidRating, rating)
	}
	return s.interact(username, id, KindRate, func(u *User) {
		u.Ratings[id] = rating
	})
}

func (s *Store) interact(username string, id int, kind string, fn func(u *User)) error {
	if !s.catalog.Contains(id) {
		return fmt.Errorf("%w: %d", ErrUnknownActivity, id)
	}

	if err := s.mutate(username, fn); err != nil {
		return err
	}

	metrics.RecordInteraction(kind)
	s.logger.Debug().Str("username", username).Int("activity_id", id).Str("kind", kind).Msg("Interaction recorded")
	return nil
}

func (s *Store) mutate(username string, fn func(u *User)) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	u, ok := s.users[username]
	if !ok {
		return fmt.Errorf("%w: %s", ErrUnknownUser, username)
	}
	fn(u)
	u.Revision++
	return nil
}

func cloneSet(in map[int]struct{}) map[int]struct{} {
	out := make(map[int]struct{}, len(in))
	for k := range in {
		out[k] = struct{}{}
	}
	return out
}

func sortedKeys(set map[int]struct{}) []int {
	ids := make([]int, 0, len(set))
	for id := range set {
		ids = append(ids, id)
	}
	sort.Ints(ids)
	return ids
}
