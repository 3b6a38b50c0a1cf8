// Pastime - Activity Recommendation Engine
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/pastime

package profile

import (
	"reflect"
	"testing"

	"github.com/tomtom215/pastime/internal/catalog"
)

func TestPreferencesAllows(t *testing.T) {
	t.Parallel()

	activity := catalog.Activity{Category: "Indoor", Price: 0.5, GroupSize: 3}

	tests := []struct {
		name  string
		prefs Preferences
		want  bool
	}{
		{name: "defaults", prefs: DefaultPreferences(), want: true},
		{name: "category match", prefs: Preferences{Categories: []string{"Outdoor", "Indoor"}, PriceMax: 1, GroupMin: 1, GroupMax: 5}, want: true},
		{name: "category mismatch", prefs: Preferences{Categories: []string{"Outdoor"}, PriceMax: 1, GroupMin: 1, GroupMax: 5}, want: false},
		{name: "inclusive price bounds", prefs: Preferences{PriceMin: 0.5, PriceMax: 0.5, GroupMin: 1, GroupMax: 5}, want: true},
		{name: "price above max", prefs: Preferences{PriceMin: 0, PriceMax: 0.4, GroupMin: 1, GroupMax: 5}, want: false},
		{name: "inclusive group bounds", prefs: Preferences{PriceMax: 1, GroupMin: 3, GroupMax: 3}, want: true},
		{name: "group below min", prefs: Preferences{PriceMax: 1, GroupMin: 4, GroupMax: 5}, want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			if got := tt.prefs.Allows(activity); got != tt.want {
				t.Errorf("Allows() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestPreferencesNormalize(t *testing.T) {
	t.Parallel()

	in := Preferences{
		Categories: []string{"Outdoor", "", "Indoor", "Outdoor"},
		PriceMin:   0.9,
		PriceMax:   0.1,
		GroupMin:   5,
		GroupMax:   2,
	}
	want := Preferences{
		Categories: []string{"Indoor", "Outdoor"},
		PriceMin:   0.1,
		PriceMax:   0.9,
		GroupMin:   2,
		GroupMax:   5,
	}

	if got := in.Normalize(); !reflect.DeepEqual(got, want) {
		t.Errorf("Normalize() = %+v, want %+v", got, want)
	}
	if in.PriceMin != 0.9 {
		t.Error("Normalize must not modify the receiver")
	}
}

func TestPreferencesValidate(t *testing.T) {
	t.Parallel()

	if err := DefaultPreferences().Validate(); err != nil {
		t.Errorf("defaults should validate: %v", err)
	}
	bad := Preferences{PriceMin: 0, PriceMax: 2, GroupMin: 0, GroupMax: 5}
	if err := bad.Validate(); err == nil {
		t.Error("expected error for out-of-range bounds")
	}
}
