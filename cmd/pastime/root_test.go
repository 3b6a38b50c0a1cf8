// Pastime - Activity Recommendation Engine
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/pastime

package main

import (
	"bytes"
	"strings"
	"testing"

	"github.com/goccy/go-json"
)

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()

	var out, errOut bytes.Buffer
	cmd := newRootCmd()
	cmd.SetOut(&out)
	cmd.SetErr(&errOut)
	cmd.SetIn(strings.NewReader(""))
	cmd.SetArgs(append([]string{"--log-level", "error"}, args...))
	err := cmd.Execute()
	return out.String(), err
}

func TestVersionCmd(t *testing.T) {
	out, err := execute(t, "version")
	if err != nil {
		t.Fatalf("version error = %v", err)
	}
	if !strings.Contains(out, "pastime version dev") {
		t.Errorf("output = %q", out)
	}
}

func TestCatalogCmd_JSON(t *testing.T) {
	out, err := execute(t, "catalog", "--dataset", "testdata/activities.csv", "--json", "--category", "indoor")
	if err != nil {
		t.Fatalf("catalog error = %v", err)
	}

	var got catalogOutput
	if err := json.Unmarshal([]byte(out), &got); err != nil {
		t.Fatalf("invalid JSON: %v\n%s", err, out)
	}
	if got.Fallback {
		t.Error("Fallback = true, want false")
	}
	if len(got.Activities) != 2 {
		t.Errorf("activities = %d, want 2", len(got.Activities))
	}
	if len(got.Categories) != 3 {
		t.Errorf("categories = %v, want 3", got.Categories)
	}
}

func TestRecommendCmd(t *testing.T) {
	out, err := execute(t, "recommend",
		"--dataset", "testdata/activities.csv",
		"--rate", "1=5",
		"--top", "2",
	)
	if err != nil {
		t.Fatalf("recommend error = %v", err)
	}
	if !strings.Contains(out, "Cooking Class") || !strings.Contains(out, "Museum Visit") {
		t.Errorf("output = %q", out)
	}
	if strings.Contains(out, "Movie Night") {
		t.Errorf("rated activity recommended: %q", out)
	}
}

func TestRecommendCmd_InvalidRating(t *testing.T) {
	_, err := execute(t, "recommend", "--dataset", "testdata/activities.csv", "--rate", "1=7")
	if err == nil {
		t.Fatal("expected error for out-of-range rating")
	}
}

func TestSimilarCmd(t *testing.T) {
	out, err := execute(t, "similar", "1", "--dataset", "testdata/activities.csv", "-k", "1")
	if err != nil {
		t.Fatalf("similar error = %v", err)
	}
	if !strings.Contains(out, "Cooking Class") {
		t.Errorf("output = %q", out)
	}
}

func TestRootCmd_InvalidSource(t *testing.T) {
	_, err := execute(t, "catalog", "--source", "parquet")
	if err == nil || !strings.Contains(err.Error(), "invalid configuration") {
		t.Errorf("error = %v, want invalid configuration", err)
	}
}
