// Pastime - Activity Recommendation Engine
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/pastime

package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/tomtom215/pastime/internal/config"
	"github.com/tomtom215/pastime/internal/logging"
)

// rootOptions holds persistent flags and the configuration they produce.
type rootOptions struct {
	configPath string
	dataset    string
	source     string
	logLevel   string

	cfg *config.Config
}

func newRootCmd() *cobra.Command {
	opts := &rootOptions{}

	cmd := &cobra.Command{
		Use:   "pastime",
		Short: "Suggest leisure activities from a small catalog",
		Long: `pastime recommends leisure activities by combining your ratings with
content similarity between activities, boosted by likes and pins and
filtered by your category, price and group-size preferences.

Without a subcommand it starts an interactive session.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return opts.load(cmd)
		},
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runShell(cmd, opts)
		},
	}
	cmd.CompletionOptions.HiddenDefaultCmd = true

	flags := cmd.PersistentFlags()
	flags.StringVarP(&opts.configPath, "config", "c", "", "config file (default: pastime.yaml or $"+config.ConfigPathEnvVar+")")
	flags.StringVar(&opts.dataset, "dataset", "", "activity dataset path (overrides catalog.path)")
	flags.StringVar(&opts.source, "source", "", "dataset reader: csv or duckdb (overrides catalog.source)")
	flags.StringVar(&opts.logLevel, "log-level", "", "log level (overrides logging.level)")

	cmd.AddCommand(
		newShellCmd(opts),
		newCatalogCmd(opts),
		newRecommendCmd(opts),
		newSimilarCmd(opts),
		newVersionCmd(),
	)
	return cmd
}

// load reads configuration, applies flag overrides and initializes logging.
func (o *rootOptions) load(cmd *cobra.Command) error {
	cfg, err := config.Load(o.configPath)
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}

	flags := cmd.Flags()
	if flags.Changed("dataset") {
		cfg.Catalog.Path = o.dataset
	}
	if flags.Changed("source") {
		cfg.Catalog.Source = o.source
	}
	if flags.Changed("log-level") {
		cfg.Logging.Level = o.logLevel
	}
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}

	if err := logging.Init(cfg.Logging.LoggerConfig()); err != nil {
		return fmt.Errorf("init logging: %w", err)
	}
	logging.Debug().
		Str("dataset", cfg.Catalog.Path).
		Str("source", cfg.Catalog.Source).
		Msg("Configuration loaded")

	o.cfg = cfg
	return nil
}
