// Pastime - Activity Recommendation Engine
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/pastime

package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/tomtom215/pastime/internal/catalog"
)

// catalogOutput is the JSON shape of the catalog command.
type catalogOutput struct {
	Source     string             `json:"source"`
	Fallback   bool               `json:"fallback"`
	Categories []string           `json:"categories"`
	Activities []catalog.Activity `json:"activities"`
}

func newCatalogCmd(opts *rootOptions) *cobra.Command {
	var (
		category string
		asJSON   bool
	)

	cmd := &cobra.Command{
		Use:   "catalog",
		Short: "List the loaded activities",
		Long: `List every activity in the dataset after normalization: price scaled to
[0,1], group size on the 1-5 scale, and missing descriptions filled in.
If the dataset cannot be loaded the built-in fallback catalog is listed.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			out := cmd.OutOrStdout()
			a, err := bootstrap(cmd.Context(), opts.cfg, notifier(cmd.ErrOrStderr()))
			if err != nil {
				return err
			}

			activities := filterCategory(a.catalog.All(), category)
			if asJSON {
				return writeJSON(out, catalogOutput{
					Source:     a.catalog.Source(),
					Fallback:   a.catalog.IsFallback(),
					Categories: a.catalog.Categories(),
					Activities: activities,
				})
			}

			fmt.Fprintf(out, "%d activities from %s\n", len(activities), a.catalog.Source())
			return printActivities(out, activities)
		},
	}

	cmd.Flags().StringVar(&category, "category", "", "only list activities in this category")
	cmd.Flags().BoolVar(&asJSON, "json", false, "print JSON")
	return cmd
}
