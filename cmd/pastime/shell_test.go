// Pastime - Activity Recommendation Engine
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/pastime

package main

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"github.com/tomtom215/pastime/internal/config"
)

func testConfig(t *testing.T, dataset string) *config.Config {
	t.Helper()
	cfg := config.Default()
	cfg.Catalog.Path = dataset
	cfg.Recommend.Seed = 1
	return cfg
}

func runScript(t *testing.T, dataset, script string) string {
	t.Helper()

	var out bytes.Buffer
	a, err := bootstrap(context.Background(), testConfig(t, dataset), notifier(&out))
	if err != nil {
		t.Fatalf("bootstrap() error = %v", err)
	}
	sh := &shell{
		sess: a.session,
		in:   strings.NewReader(script),
		out:  &out,
		topN: 3,
	}
	if err := sh.run(context.Background()); err != nil {
		t.Fatalf("run() error = %v", err)
	}
	return out.String()
}

func TestShell_Session(t *testing.T) {
	t.Parallel()

	script := strings.Join([]string{
		"recommend",
		"register alice",
		"register alice",
		"rate 1 5",
		"rate 1 9",
		"like 2",
		"prefs set category=Indoor,Cultural",
		"prefs",
		"recommend 2",
		"ratings",
		"likes",
		"bogus",
		"quit",
	}, "\n")

	out := runScript(t, "testdata/activities.csv", script)

	for _, want := range []string{
		"4 activities loaded",
		"! Please log in first",
		"Welcome, alice!",
		"! Username already exists",
		"Thanks for your 5-star rating!",
		"! Rating must be between 1 and 5",
		"Activity added to your likes!",
		"Preferences saved successfully!",
		"category=Cultural,Indoor price=0-1 group=1-5",
		"Cooking Class",
		"Museum Visit",
		"*****",
		`! unknown command "bogus"`,
		"Goodbye!",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q\n%s", want, out)
		}
	}
}

func TestShell_FallbackCatalog(t *testing.T) {
	t.Parallel()

	out := runScript(t, "testdata/missing.csv", "list\n")

	if !strings.Contains(out, "! Failed to load data:") {
		t.Errorf("output missing load error\n%s", out)
	}
	if !strings.Contains(out, "Hiking") {
		t.Errorf("fallback catalog not listed\n%s", out)
	}
}

func TestShell_Usage(t *testing.T) {
	t.Parallel()

	out := runScript(t, "testdata/activities.csv", "register bob\nrate x\nsimilar\nshow 99\nexit\n")

	for _, want := range []string{
		"! usage: rate <id> <1-5>",
		"! usage: similar <id> [k]",
		"! no activity 99",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q\n%s", want, out)
		}
	}
}
