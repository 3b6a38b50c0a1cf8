// Pastime - Activity Recommendation Engine
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/pastime

package validation

import (
	"errors"
	"strings"
	"testing"
)

func TestGetValidator_Singleton(t *testing.T) {
	v1 := GetValidator()
	v2 := GetValidator()

	if v1 == nil {
		t.Fatal("GetValidator() should not return nil")
	}
	if v1 != v2 {
		t.Error("GetValidator() should return the same singleton instance")
	}
}

type rangeStruct struct {
	Name string  `validate:"notblank"`
	Min  float64 `validate:"gte=0,lte=1"`
	Max  float64 `validate:"gte=0,lte=1,gtefield=Min"`
	Size int     `validate:"min=1,max=5"`
	Kind string  `validate:"oneof=csv duckdb"`
}

func TestValidateStruct(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		input      rangeStruct
		wantFields []string
	}{
		{
			name:  "valid",
			input: rangeStruct{Name: "x", Min: 0.2, Max: 0.8, Size: 3, Kind: "csv"},
		},
		{
			name:       "blank name",
			input:      rangeStruct{Name: "   ", Min: 0, Max: 1, Size: 1, Kind: "csv"},
			wantFields: []string{"Name"},
		},
		{
			name:       "out of range values",
			input:      rangeStruct{Name: "x", Min: -0.1, Max: 1.5, Size: 9, Kind: "xml"},
			wantFields: []string{"Min", "Max", "Size", "Kind"},
		},
		{
			name:       "max below min",
			input:      rangeStruct{Name: "x", Min: 0.9, Max: 0.1, Size: 2, Kind: "duckdb"},
			wantFields: []string{"Max"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			verr := ValidateStruct(&tt.input)
			if len(tt.wantFields) == 0 {
				if verr != nil {
					t.Fatalf("ValidateStruct() unexpected error: %v", verr)
				}
				return
			}
			if verr == nil {
				t.Fatalf("ValidateStruct() expected errors for %v", tt.wantFields)
			}
			for _, f := range tt.wantFields {
				if !verr.HasField(f) {
					t.Errorf("expected field %s in errors: %v", f, verr)
				}
			}
		})
	}
}

func TestValidateReturnsNilInterface(t *testing.T) {
	t.Parallel()

	ok := rangeStruct{Name: "x", Min: 0, Max: 1, Size: 1, Kind: "csv"}
	if err := Validate(&ok); err != nil {
		t.Fatalf("Validate() = %v, want nil", err)
	}

	bad := rangeStruct{Name: "x", Min: 0, Max: 1, Size: 0, Kind: "csv"}
	err := Validate(&bad)
	var se *StructError
	if !errors.As(err, &se) {
		t.Fatalf("Validate() error type = %T, want *StructError", err)
	}
	if !strings.Contains(err.Error(), "Size must be at least 1") {
		t.Errorf("unexpected message: %s", err.Error())
	}
}
