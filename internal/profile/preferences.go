// Pastime - Activity Recommendation Engine
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/pastime

package profile

import (
	"fmt"
	"sort"

	"github.com/tomtom215/pastime/internal/catalog"
	"github.com/tomtom215/pastime/internal/validation"
)

// Preferences filter which activities may be recommended.
// An empty Categories list means no category filter.
type Preferences struct {
	Categories []string `json:"categories"`
	PriceMin   float64  `json:"price_min" validate:"gte=0,lte=1"`
	PriceMax   float64  `json:"price_max" validate:"gte=0,lte=1"`
	GroupMin   int      `json:"group_min" validate:"gte=1,lte=5"`
	GroupMax   int      `json:"group_max" validate:"gte=1,lte=5"`
}

// DefaultPreferences allows every activity.
func DefaultPreferences() Preferences {
	return Preferences{
		PriceMin: 0,
		PriceMax: 1,
		GroupMin: catalog.MinGroupSize,
		GroupMax: catalog.MaxGroupSize,
	}
}

// Validate checks that every bound is on its scale.
func (p Preferences) Validate() error {
	if err := validation.Validate(&p); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidPreferences, err)
	}
	return nil
}

// Normalize returns a copy with reversed bounds swapped and categories
// deduplicated and sorted.
func (p Preferences) Normalize() Preferences {
	out := p
	if out.PriceMin > out.PriceMax {
		out.PriceMin, out.PriceMax = out.PriceMax, out.PriceMin
	}
	if out.GroupMin > out.GroupMax {
		out.GroupMin, out.GroupMax = out.GroupMax, out.GroupMin
	}

	seen := make(map[string]struct{}, len(p.Categories))
	out.Categories = make([]string, 0, len(p.Categories))
	for _, c := range p.Categories {
		if _, ok := seen[c]; ok || c == "" {
			continue
		}
		seen[c] = struct{}{}
		out.Categories = append(out.Categories, c)
	}
	sort.Strings(out.Categories)
	return out
}

// Allows reports whether the activity passes every filter. Bounds are
// inclusive.
func (p Preferences) Allows(a catalog.Activity) bool {
	if len(p.Categories) > 0 && !p.hasCategory(a.Category) {
		return false
	}
	if a.Price < p.PriceMin || a.Price > p.PriceMax {
		return false
	}
	if a.GroupSize < p.GroupMin || a.GroupSize > p.GroupMax {
		return false
	}
	return true
}

func (p Preferences) hasCategory(c string) bool {
	for _, want := range p.Categories {
		if want == c {
			return true
		}
	}
	return false
}

func (p Preferences) clone() Preferences {
	out := p
	out.Categories = append([]string(nil), p.Categories...)
	return out
}
