// Pastime - Activity Recommendation Engine
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/pastime

package features

import (
	"math"
	"reflect"
	"testing"

	"github.com/tomtom215/pastime/internal/catalog"
)

const epsilon = 1e-9

func mustCatalog(t *testing.T, records ...catalog.Record) *catalog.Catalog {
	t.Helper()
	cat, err := catalog.New(&catalog.Dataset{
		Records:     records,
		HasCategory: true,
		HasPrice:    true,
	}, "test")
	if err != nil {
		t.Fatalf("catalog.New() error = %v", err)
	}
	return cat
}

func TestEncode(t *testing.T) {
	t.Parallel()

	m := Encode(catalog.Fallback())

	wantCols := []string{PriceColumn, "Cultural", "Indoor", "Outdoor"}
	if got := m.Columns(); !reflect.DeepEqual(got, wantCols) {
		t.Fatalf("Columns() = %v, want %v", got, wantCols)
	}
	if m.Rows() != 4 || m.Dim() != 4 {
		t.Fatalf("shape = %dx%d, want 4x4", m.Rows(), m.Dim())
	}

	want := [][]float64{
		{0, 0, 0, 1},
		{1, 0, 1, 0},
		{0.5, 0, 1, 0},
		{0.75, 1, 0, 0},
	}
	for i := range want {
		got := m.Vector(i)
		for j := range want[i] {
			if math.Abs(got[j]-want[i][j]) > epsilon {
				t.Errorf("vector %d = %v, want %v", i, got, want[i])
				break
			}
		}
	}
}

func TestBuild_SimilarityProperties(t *testing.T) {
	t.Parallel()

	cat := mustCatalog(t,
		catalog.Record{Name: "A", Category: "Outdoor", Price: 3},
		catalog.Record{Name: "B", Category: "Indoor", Price: 9},
		catalog.Record{Name: "C", Category: "Indoor", Price: 1},
		catalog.Record{Name: "D", Category: "Cultural", Price: 5},
		catalog.Record{Name: "E", Category: "Outdoor", Price: 7},
	)

	m, sim := Build(cat)
	if m.Rows() != cat.Len() {
		t.Fatalf("Rows() = %d, want %d", m.Rows(), cat.Len())
	}
	if sim.Len() != cat.Len() {
		t.Fatalf("Len() = %d, want %d", sim.Len(), cat.Len())
	}

	for i := 0; i < sim.Len(); i++ {
		if sim.At(i, i) != 1 {
			t.Errorf("diagonal sim(%d,%d) = %v, want 1", i, i, sim.At(i, i))
		}
		for j := 0; j < sim.Len(); j++ {
			v := sim.At(i, j)
			if v != sim.At(j, i) {
				t.Errorf("sim(%d,%d)=%v != sim(%d,%d)=%v", i, j, v, j, i, sim.At(j, i))
			}
			if v < -1 || v > 1 {
				t.Errorf("sim(%d,%d) = %v out of [-1,1]", i, j, v)
			}
		}
	}
}

func TestCosine_KnownValues(t *testing.T) {
	t.Parallel()

	_, sim := Build(catalog.Fallback())

	tests := []struct {
		i, j int
		want float64
	}{
		{0, 1, 0},
		{1, 2, 1.5 / (math.Sqrt(2) * math.Sqrt(1.25))},
		{1, 3, 0.75 / (math.Sqrt(2) * 1.25)},
		{0, 3, 0},
	}
	for _, tt := range tests {
		if got := sim.At(tt.i, tt.j); math.Abs(got-tt.want) > epsilon {
			t.Errorf("sim(%d,%d) = %v, want %v", tt.i, tt.j, got, tt.want)
		}
	}
}

func TestCosine_ZeroVector(t *testing.T) {
	t.Parallel()

	m := &Matrix{
		columns: []string{PriceColumn, "x"},
		vectors: [][]float64{{0, 0}, {1, 0}, {0, 0}},
	}
	sim := Cosine(m)

	if sim.At(0, 1) != 0 || sim.At(0, 2) != 0 {
		t.Errorf("zero vector similarities = %v, %v; want 0", sim.At(0, 1), sim.At(0, 2))
	}
	if sim.At(0, 0) != 1 || sim.At(2, 2) != 1 {
		t.Error("diagonal must be 1 for zero vectors")
	}
}

func TestBuild_SingleActivity(t *testing.T) {
	t.Parallel()

	cat := mustCatalog(t, catalog.Record{Name: "Solo", Category: "Indoor", Price: 42})
	m, sim := Build(cat)

	if v := m.Vector(0); v[0] != 0 || v[1] != 1 {
		t.Errorf("Vector(0) = %v, want [0 1]", v)
	}
	if sim.Len() != 1 || sim.At(0, 0) != 1 {
		t.Errorf("single activity similarity = %v", sim.Row(0))
	}
}

func TestMostSimilar(t *testing.T) {
	t.Parallel()

	_, sim := Build(catalog.Fallback())

	tests := []struct {
		name    string
		id, k   int
		wantIDs []int
	}{
		{name: "top two", id: 1, k: 2, wantIDs: []int{2, 3}},
		{name: "k larger than catalog", id: 1, k: 10, wantIDs: []int{2, 3, 0}},
		{name: "ties by id", id: 0, k: 3, wantIDs: []int{1, 2, 3}},
		{name: "zero k", id: 1, k: 0, wantIDs: nil},
		{name: "unknown id", id: 99, k: 2, wantIDs: nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got := sim.MostSimilar(tt.id, tt.k)
			var ids []int
			for _, n := range got {
				ids = append(ids, n.ID)
			}
			if !reflect.DeepEqual(ids, tt.wantIDs) {
				t.Errorf("MostSimilar(%d,%d) = %v, want %v", tt.id, tt.k, ids, tt.wantIDs)
			}
		})
	}
}
