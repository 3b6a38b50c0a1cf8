// Pastime - Activity Recommendation Engine
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/pastime

package main

import (
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	"github.com/goccy/go-json"

	"github.com/tomtom215/pastime/internal/catalog"
	"github.com/tomtom215/pastime/internal/recommend"
	"github.com/tomtom215/pastime/internal/session"
)

func writeJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

func newTable(w io.Writer) *tabwriter.Writer {
	return tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
}

func printActivities(w io.Writer, activities []catalog.Activity) error {
	if len(activities) == 0 {
		_, err := fmt.Fprintln(w, "(none)")
		return err
	}
	tw := newTable(w)
	fmt.Fprintln(tw, "ID\tNAME\tCATEGORY\tPRICE\tGROUP")
	for _, a := range activities {
		fmt.Fprintf(tw, "%d\t%s\t%s\t%.2f\t%d\n", a.ID, a.Name, a.Category, a.Price, a.GroupSize)
	}
	return tw.Flush()
}

func printActivity(w io.Writer, a catalog.Activity) error {
	_, err := fmt.Fprintf(w, "#%d %s [%s]\n  price %.2f, group of %d\n  %s\n",
		a.ID, a.Name, a.Category, a.Price, a.GroupSize, a.Description)
	return err
}

func printScored(w io.Writer, items []recommend.ScoredActivity) error {
	if len(items) == 0 {
		_, err := fmt.Fprintln(w, "(none)")
		return err
	}
	tw := newTable(w)
	fmt.Fprintln(tw, "RANK\tID\tNAME\tCATEGORY\tSCORE\tWHY")
	for i, item := range items {
		a := item.Activity
		fmt.Fprintf(tw, "%d\t%d\t%s\t%s\t%.3f\t%s\n", i+1, a.ID, a.Name, a.Category, item.Score, item.Reason)
	}
	return tw.Flush()
}

func printRated(w io.Writer, rated []session.RatedActivity) error {
	if len(rated) == 0 {
		_, err := fmt.Fprintln(w, "(none)")
		return err
	}
	tw := newTable(w)
	fmt.Fprintln(tw, "ID\tNAME\tRATING")
	for _, r := range rated {
		fmt.Fprintf(tw, "%d\t%s\t%s\n", r.Activity.ID, r.Activity.Name, strings.Repeat("*", r.Rating))
	}
	return tw.Flush()
}

// notifier renders session notifications as plain lines.
func notifier(w io.Writer) session.Notifier {
	return session.NotifierFunc(func(n session.Notification) {
		if n.Kind.IsError() {
			fmt.Fprintf(w, "! %s\n", n.Message)
			return
		}
		fmt.Fprintf(w, "%s\n", n.Message)
	})
}
