// Pastime - Activity Recommendation Engine
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/pastime

package catalog

// FallbackSource is the name reported for the built-in catalog.
const FallbackSource = "fallback"

// fallbackDataset is the built-in catalog used when the dataset cannot be read.
func fallbackDataset() *Dataset {
	return &Dataset{
		Records: []Record{
			{Name: "Hiking", Category: "Outdoor", Price: 0.3, Participants: 4, Description: "Enjoy nature on a scenic trail"},
			{Name: "Movie Night", Category: "Indoor", Price: 0.7, Participants: 2, Description: "Watch the latest blockbuster at home"},
			{Name: "Cooking Class", Category: "Indoor", Price: 0.5, Participants: 3, Description: "Learn to make pasta from scratch"},
			{Name: "Museum Visit", Category: "Cultural", Price: 0.6, Participants: 3, Description: "Explore ancient artifacts and history"},
		},
		HasCategory:     true,
		HasPrice:        true,
		HasParticipants: true,
		HasDescription:  true,
		PreScaled:       true,
	}
}

// Fallback returns the built-in four-activity catalog, normalized like any
// other dataset.
func Fallback() *Catalog {
	cat, err := New(fallbackDataset(), FallbackSource)
	if err != nil {
		panic("catalog: invalid fallback dataset: " + err.Error())
	}
	cat.fallback = true
	return cat
}
