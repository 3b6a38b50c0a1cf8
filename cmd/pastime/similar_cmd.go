// Pastime - Activity Recommendation Engine
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/pastime

package main

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"
)

func newSimilarCmd(opts *rootOptions) *cobra.Command {
	var (
		k      int
		asJSON bool
	)

	cmd := &cobra.Command{
		Use:   "similar <id>",
		Short: "List the activities most similar to one activity",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := strconv.Atoi(args[0])
			if err != nil {
				return fmt.Errorf("invalid activity id %q", args[0])
			}

			a, err := bootstrap(cmd.Context(), opts.cfg, notifier(cmd.ErrOrStderr()))
			if err != nil {
				return err
			}
			items, err := a.session.OnRequestSimilar(id, k)
			if err != nil {
				return err
			}

			if asJSON {
				return writeJSON(cmd.OutOrStdout(), items)
			}
			return printScored(cmd.OutOrStdout(), items)
		},
	}

	cmd.Flags().IntVarP(&k, "k", "k", 5, "number of similar activities")
	cmd.Flags().BoolVar(&asJSON, "json", false, "print JSON")
	return cmd
}
