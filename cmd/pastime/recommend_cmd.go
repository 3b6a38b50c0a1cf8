// Pastime - Activity Recommendation Engine
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/pastime

package main

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/tomtom215/pastime/internal/session"
)

type recommendOptions struct {
	user     string
	ratings  []string
	likes    []int
	dislikes []int
	pins     []int
	prefs    []string
	topN     int
	random   bool
	asJSON   bool
}

func newRecommendCmd(opts *rootOptions) *cobra.Command {
	ro := &recommendOptions{}

	cmd := &cobra.Command{
		Use:   "recommend",
		Short: "Print recommendations for a profile described by flags",
		Long: `Build a throwaway profile from flags and print its recommendations.

Example:
  pastime recommend --rate 3=5 --rate 7=2 --like 4 --pref category=Outdoor --top 3`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runRecommend(cmd, opts, ro)
		},
	}

	flags := cmd.Flags()
	flags.StringVarP(&ro.user, "user", "u", "guest", "username for the throwaway profile")
	flags.StringArrayVar(&ro.ratings, "rate", nil, "rating as id=stars (repeatable)")
	flags.IntSliceVar(&ro.likes, "like", nil, "liked activity ids")
	flags.IntSliceVar(&ro.dislikes, "dislike", nil, "disliked activity ids")
	flags.IntSliceVar(&ro.pins, "pin", nil, "pinned activity ids")
	flags.StringArrayVar(&ro.prefs, "pref", nil, "preference as key=value: category=a,b price=0-1 group=1-5")
	flags.IntVarP(&ro.topN, "top", "n", 0, "number of recommendations (default: recommend.default_top_n)")
	flags.BoolVar(&ro.random, "random", false, "print a single suggestion")
	flags.BoolVar(&ro.asJSON, "json", false, "print JSON")
	return cmd
}

func runRecommend(cmd *cobra.Command, opts *rootOptions, ro *recommendOptions) error {
	ctx := cmd.Context()
	out := cmd.OutOrStdout()

	a, err := bootstrap(ctx, opts.cfg, notifier(cmd.ErrOrStderr()))
	if err != nil {
		return err
	}
	sess := a.session

	if err := sess.OnRegister(ro.user); err != nil {
		return err
	}
	if err := applyProfileFlags(sess, ro); err != nil {
		return err
	}

	if ro.random {
		item, err := sess.OnRequestRandomActivity(ctx)
		if item == nil {
			return err
		}
		if ro.asJSON {
			return writeJSON(out, item)
		}
		return printActivity(out, item.Activity)
	}

	resp, err := sess.OnRequestRecommendations(ctx, ro.topN)
	if resp == nil {
		return err
	}
	if ro.asJSON {
		if jerr := writeJSON(out, resp); jerr != nil {
			return jerr
		}
		return err
	}
	if perr := printScored(out, resp.Items); perr != nil {
		return perr
	}
	return err
}

func applyProfileFlags(sess *session.Session, ro *recommendOptions) error {
	if len(ro.prefs) > 0 {
		current, err := sess.Preferences()
		if err != nil {
			return err
		}
		var args []string
		for _, p := range ro.prefs {
			args = append(args, strings.Fields(p)...)
		}
		prefs, err := parsePreferenceArgs(current, args)
		if err != nil {
			return err
		}
		if err := sess.OnSetPreferences(prefs); err != nil {
			return err
		}
	}

	for _, r := range ro.ratings {
		id, stars, err := parseRating(r)
		if err != nil {
			return err
		}
		if err := sess.OnRate(id, stars); err != nil {
			return err
		}
	}
	for _, id := range ro.likes {
		if err := sess.OnLike(id); err != nil {
			return err
		}
	}
	for _, id := range ro.dislikes {
		if err := sess.OnDislike(id); err != nil {
			return err
		}
	}
	for _, id := range ro.pins {
		if err := sess.OnPin(id); err != nil {
			return err
		}
	}
	return nil
}

// parseRating parses "id=stars".
func parseRating(s string) (id, stars int, err error) {
	l, r, ok := strings.Cut(s, "=")
	if !ok {
		return 0, 0, fmt.Errorf("rating %q: expected id=stars", s)
	}
	if id, err = strconv.Atoi(strings.TrimSpace(l)); err != nil {
		return 0, 0, fmt.Errorf("rating %q: bad id", s)
	}
	if stars, err = strconv.Atoi(strings.TrimSpace(r)); err != nil {
		return 0, 0, fmt.Errorf("rating %q: bad stars", s)
	}
	return id, stars, nil
}
