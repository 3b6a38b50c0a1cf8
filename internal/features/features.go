// Pastime - Activity Recommendation Engine
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/pastime

package features

import (
	"math"
	"sort"
	"time"

	"github.com/tomtom215/pastime/internal/catalog"
	"github.com/tomtom215/pastime/internal/metrics"
)

// PriceColumn is the name of the first feature column.
const PriceColumn = "price"

// Matrix holds one feature vector per activity, indexed by activity ID.
// Column 0 is the normalized price; the remaining columns are a one-hot
// encoding of the catalog's categories in lexicographic order.
type Matrix struct {
	columns []string
	vectors [][]float64
}

// Rows returns the number of vectors.
func (m *Matrix) Rows() int {
	return len(m.vectors)
}

// Dim returns the vector dimension.
func (m *Matrix) Dim() int {
	return len(m.columns)
}

// Columns returns the column names.
func (m *Matrix) Columns() []string {
	out := make([]string, len(m.columns))
	copy(out, m.columns)
	return out
}

// Vector returns a copy of the feature vector for id.
func (m *Matrix) Vector(id int) []float64 {
	out := make([]float64, len(m.vectors[id]))
	copy(out, m.vectors[id])
	return out
}

// Build encodes the catalog and computes its cosine similarity matrix.
func Build(cat *catalog.Catalog) (*Matrix, *Similarity) {
	start := time.Now()
	defer func() {
		metrics.SimilarityBuildDuration.Observe(time.Since(start).Seconds())
	}()

	m := Encode(cat)
	return m, Cosine(m)
}

// Encode builds the feature matrix for a catalog. Price is min-max
// normalized again so the result does not depend on the loader having
// done it; on already normalized input this is the identity (or all zeros
// for a constant column).
func Encode(cat *catalog.Catalog) *Matrix {
	activities := cat.All()
	categories := cat.Categories()

	colIndex := make(map[string]int, len(categories))
	columns := make([]string, 0, len(categories)+1)
	columns = append(columns, PriceColumn)
	for i, c := range categories {
		colIndex[c] = i + 1
		columns = append(columns, c)
	}

	prices := make([]float64, len(activities))
	for i, a := range activities {
		prices[i] = a.Price
	}
	prices = catalog.MinMax(prices)

	vectors := make([][]float64, len(activities))
	for i, a := range activities {
		v := make([]float64, len(columns))
		v[0] = prices[i]
		if j, ok := colIndex[a.Category]; ok {
			v[j] = 1
		}
		vectors[i] = v
	}

	return &Matrix{columns: columns, vectors: vectors}
}

// Similarity is a symmetric n×n cosine similarity matrix with a unit diagonal.
// It is immutable once built.
type Similarity struct {
	n      int
	values []float64
}

// Cosine computes pairwise cosine similarity over the matrix rows.
// Pairs involving a zero vector score 0. Results are clamped to [-1,1].
func Cosine(m *Matrix) *Similarity {
	n := m.Rows()
	s := &Similarity{n: n, values: make([]float64, n*n)}

	norms := make([]float64, n)
	for i, v := range m.vectors {
		norms[i] = math.Sqrt(dot(v, v))
	}

	for i := 0; i < n; i++ {
		s.values[i*n+i] = 1
		for j := i + 1; j < n; j++ {
			var sim float64
			if norms[i] > 0 && norms[j] > 0 {
				sim = clamp(dot(m.vectors[i], m.vectors[j])/(norms[i]*norms[j]), -1, 1)
			}
			s.values[i*n+j] = sim
			s.values[j*n+i] = sim
		}
	}

	return s
}

// Len returns n.
func (s *Similarity) Len() int {
	return s.n
}

// At returns sim(i, j).
func (s *Similarity) At(i, j int) float64 {
	return s.values[i*s.n+j]
}

// Row returns row i. The slice aliases the matrix and must not be modified.
func (s *Similarity) Row(i int) []float64 {
	return s.values[i*s.n : (i+1)*s.n]
}

// Neighbor is an activity and its similarity to a reference activity.
type Neighbor struct {
	ID    int     `json:"id"`
	Score float64 `json:"score"`
}

// MostSimilar returns up to k activities most similar to id, excluding id
// itself, ordered by descending similarity then ascending ID.
func (s *Similarity) MostSimilar(id, k int) []Neighbor {
	if id < 0 || id >= s.n || k <= 0 {
		return nil
	}

	neighbors := make([]Neighbor, 0, s.n-1)
	for j, v := range s.Row(id) {
		if j == id {
			continue
		}
		neighbors = append(neighbors, Neighbor{ID: j, Score: v})
	}

	sort.SliceStable(neighbors, func(a, b int) bool {
		if neighbors[a].Score != neighbors[b].Score {
			return neighbors[a].Score > neighbors[b].Score
		}
		return neighbors[a].ID < neighbors[b].ID
	})

	if k < len(neighbors) {
		neighbors = neighbors[:k]
	}
	return neighbors
}

func dot(a, b []float64) float64 {
	var sum float64
	for i := range a {
		sum += a[i] * b[i]
	}
	return sum
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
