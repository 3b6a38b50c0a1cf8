// Pastime - Activity Recommendation Engine
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/pastime

package main

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/tomtom215/pastime/internal/catalog"
	"github.com/tomtom215/pastime/internal/profile"
)

// parsePreferenceArgs applies key=value arguments on top of base:
//
//	category=Indoor,Outdoor  (category=any clears the filter)
//	price=0-0.5              (normalized price bounds)
//	group=2-4                (group-size bounds)
func parsePreferenceArgs(base profile.Preferences, args []string) (profile.Preferences, error) {
	prefs := base
	for _, arg := range args {
		key, value, ok := strings.Cut(arg, "=")
		if !ok {
			return base, fmt.Errorf("expected key=value, got %q", arg)
		}
		switch strings.ToLower(key) {
		case "category", "categories":
			prefs.Categories = parseCategories(value)
		case "price":
			lo, hi, err := parseFloatRange(value)
			if err != nil {
				return base, fmt.Errorf("price: %w", err)
			}
			prefs.PriceMin, prefs.PriceMax = lo, hi
		case "group":
			lo, hi, err := parseIntRange(value)
			if err != nil {
				return base, fmt.Errorf("group: %w", err)
			}
			prefs.GroupMin, prefs.GroupMax = lo, hi
		default:
			return base, fmt.Errorf("unknown preference %q", key)
		}
	}
	return prefs, nil
}

func parseCategories(value string) []string {
	if strings.EqualFold(value, "any") {
		return nil
	}
	var out []string
	for _, c := range strings.Split(value, ",") {
		if c = strings.TrimSpace(c); c != "" {
			out = append(out, c)
		}
	}
	return out
}

func parseFloatRange(value string) (lo, hi float64, err error) {
	l, h, ok := strings.Cut(value, "-")
	if !ok {
		return 0, 0, fmt.Errorf("expected min-max, got %q", value)
	}
	if lo, err = strconv.ParseFloat(strings.TrimSpace(l), 64); err != nil {
		return 0, 0, err
	}
	if hi, err = strconv.ParseFloat(strings.TrimSpace(h), 64); err != nil {
		return 0, 0, err
	}
	return lo, hi, nil
}

func parseIntRange(value string) (lo, hi int, err error) {
	l, h, ok := strings.Cut(value, "-")
	if !ok {
		return 0, 0, fmt.Errorf("expected min-max, got %q", value)
	}
	if lo, err = strconv.Atoi(strings.TrimSpace(l)); err != nil {
		return 0, 0, err
	}
	if hi, err = strconv.Atoi(strings.TrimSpace(h)); err != nil {
		return 0, 0, err
	}
	return lo, hi, nil
}

func formatPreferences(p profile.Preferences) string {
	categories := "any"
	if len(p.Categories) > 0 {
		categories = strings.Join(p.Categories, ",")
	}
	return fmt.Sprintf("category=%s price=%g-%g group=%d-%d", categories, p.PriceMin, p.PriceMax, p.GroupMin, p.GroupMax)
}

// filterCategory returns the activities in category, or all of them when
// category is empty. Matching ignores case.
func filterCategory(activities []catalog.Activity, category string) []catalog.Activity {
	if category == "" {
		return activities
	}
	out := activities[:0:0]
	for _, a := range activities {
		if strings.EqualFold(a.Category, category) {
			out = append(out, a)
		}
	}
	return out
}
