// Pastime - Activity Recommendation Engine
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/pastime

package catalog

import (
	"errors"
	"fmt"
	"math"
	"sort"
)

const (
	// DefaultDescription fills rows without a description.
	DefaultDescription = "No description available"

	// DefaultCategory is used when a row has no category.
	DefaultCategory = "General"

	// MinGroupSize and MaxGroupSize bound the normalized group-size scale.
	MinGroupSize = 1
	MaxGroupSize = 5
)

var (
	// ErrEmptyDataset is returned when a dataset has no rows.
	ErrEmptyDataset = errors.New("dataset is empty")

	// ErrMissingColumn is returned when a required column is absent.
	ErrMissingColumn = errors.New("missing required column")

	// ErrMalformedValue is returned when a cell cannot be parsed.
	ErrMalformedValue = errors.New("malformed value")
)

// Activity is one immutable catalog entry.
type Activity struct {
	// ID is the row index in the loaded catalog. Dense and 0-based.
	ID int `json:"id"`

	// Name is the display name of the activity.
	Name string `json:"name"`

	// Category is the categorical label (the dataset's "Type" column).
	Category string `json:"category"`

	// Price is min-max normalized to [0,1] across the catalog.
	Price float64 `json:"price"`

	// RawPrice is the price as read from the dataset.
	RawPrice float64 `json:"raw_price"`

	// GroupSize is the participant count rescaled to [1,5].
	GroupSize int `json:"group_size"`

	// Description is free text, defaulted when absent.
	Description string `json:"description"`
}

// Record is one raw dataset row before normalization.
type Record struct {
	Name         string
	Category     string
	Price        float64
	Participants float64
	Description  string
}

// Dataset is the raw table produced by a Source.
// The Has* flags report which optional columns were present.
type Dataset struct {
	Records         []Record
	HasCategory     bool
	HasPrice        bool
	HasParticipants bool
	HasDescription  bool

	// PreScaled marks participants that are already group sizes on the
	// [1,5] scale. Only the built-in fallback rows set it.
	PreScaled bool
}

// Catalog is the validated, normalized activity list.
// It is never mutated after construction.
type Catalog struct {
	activities []Activity
	categories []string
	source     string
	fallback   bool
}

// New validates and normalizes a dataset into a Catalog.
//
// Price is min-max normalized to [0,1] (constant column maps to 0).
// Participants are rescaled linearly from their observed range onto [1,5]
// and rounded (a constant column maps every row to 1). PreScaled datasets
// are only rounded.
// Missing descriptions get DefaultDescription.
func New(ds *Dataset, source string) (*Catalog, error) {
	if ds == nil || len(ds.Records) == 0 {
		return nil, ErrEmptyDataset
	}

	n := len(ds.Records)
	prices := make([]float64, n)
	participants := make([]float64, n)
	for i, rec := range ds.Records {
		if math.IsNaN(rec.Price) || math.IsInf(rec.Price, 0) {
			return nil, fmt.Errorf("row %d price: %w", i, ErrMalformedValue)
		}
		if math.IsNaN(rec.Participants) || math.IsInf(rec.Participants, 0) {
			return nil, fmt.Errorf("row %d participants: %w", i, ErrMalformedValue)
		}
		prices[i] = rec.Price
		participants[i] = rec.Participants
	}

	normPrices := MinMax(prices)

	groupSizes := make([]int, n)
	if ds.HasParticipants {
		scaled := participants
		if !ds.PreScaled {
			scaled = Rescale(participants, MinGroupSize, MaxGroupSize)
		}
		for i, v := range scaled {
			groupSizes[i] = clampInt(int(math.Round(v)), MinGroupSize, MaxGroupSize)
		}
	} else {
		for i := range groupSizes {
			groupSizes[i] = MinGroupSize
		}
	}

	activities := make([]Activity, n)
	seen := make(map[string]struct{})
	for i, rec := range ds.Records {
		category := rec.Category
		if !ds.HasCategory || category == "" {
			category = DefaultCategory
		}
		desc := rec.Description
		if desc == "" {
			desc = DefaultDescription
		}

		activities[i] = Activity{
			ID:          i,
			Name:        rec.Name,
			Category:    category,
			Price:       normPrices[i],
			RawPrice:    rec.Price,
			GroupSize:   groupSizes[i],
			Description: desc,
		}
		seen[category] = struct{}{}
	}

	categories := make([]string, 0, len(seen))
	for c := range seen {
		categories = append(categories, c)
	}
	sort.Strings(categories)

	return &Catalog{
		activities: activities,
		categories: categories,
		source:     source,
	}, nil
}

// Len returns the number of activities.
func (c *Catalog) Len() int {
	return len(c.activities)
}

// Get returns the activity with the given id.
func (c *Catalog) Get(id int) (Activity, bool) {
	if id < 0 || id >= len(c.activities) {
		return Activity{}, false
	}
	return c.activities[id], true
}

// Contains reports whether id is a valid activity id.
func (c *Catalog) Contains(id int) bool {
	return id >= 0 && id < len(c.activities)
}

// All returns a copy of every activity in id order.
func (c *Catalog) All() []Activity {
	out := make([]Activity, len(c.activities))
	copy(out, c.activities)
	return out
}

// Categories returns the distinct categories in lexicographic order.
func (c *Catalog) Categories() []string {
	out := make([]string, len(c.categories))
	copy(out, c.categories)
	return out
}

// Source names where the catalog came from.
func (c *Catalog) Source() string {
	return c.source
}

// IsFallback reports whether this is the built-in fallback catalog.
func (c *Catalog) IsFallback() bool {
	return c.fallback
}

// MinMax scales values linearly into [0,1].
// A constant (or single-element) input maps to all zeros.
func MinMax(values []float64) []float64 {
	out := make([]float64, len(values))
	if len(values) == 0 {
		return out
	}
	lo, hi := bounds(values)
	if hi-lo == 0 {
		return out
	}
	for i, v := range values {
		out[i] = (v - lo) / (hi - lo)
	}
	return out
}

// Rescale maps values linearly from their observed range onto [lo,hi].
// A constant input collapses to lo.
func Rescale(values []float64, lo, hi float64) []float64 {
	out := make([]float64, len(values))
	if len(values) == 0 {
		return out
	}
	minV, maxV := bounds(values)
	if maxV-minV == 0 {
		for i := range out {
			out[i] = lo
		}
		return out
	}
	for i, v := range values {
		out[i] = (v-minV)/(maxV-minV)*(hi-lo) + lo
	}
	return out
}

func bounds(values []float64) (lo, hi float64) {
	lo, hi = values[0], values[0]
	for _, v := range values[1:] {
		if v < lo {
			lo = v
		}
		if v > hi {
			hi = v
		}
	}
	return lo, hi
}

func clampInt(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
