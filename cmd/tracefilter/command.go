// Copyright The OpenTelemetry Authors
// SPDX-License-Identifier: Apache-2.0

package main

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"go.opentelemetry.io/tracefilter"
	"go.opentelemetry.io/tracefilter/directive"
)

func newCommand(logger *zap.Logger) *cobra.Command {
	var cfgFile string

	cmd := &cobra.Command{
		Use:   "tracefilter [rules...]",
		Short: "Validate trace filtering directives",
		Long: `tracefilter parses the filtering rules given as arguments, and/or in the
file named by --config, and reports each directive's specificity class
and level. It exits non-zero when any rule is invalid.`,
		SilenceUsage:  true, // Don't print usage on Run error.
		SilenceErrors: true, // Don't print errors; main does it.
		RunE: func(cmd *cobra.Command, args []string) error {
			return checkRules(cmd, args, cfgFile, logger)
		},
	}
	cmd.Flags().StringVar(&cfgFile, "config", "", "filter configuration file")
	return cmd
}

func checkRules(cmd *cobra.Command, args []string, cfgFile string, logger *zap.Logger) error {
	rules := args
	if cfgFile != "" {
		cfg, err := tracefilter.LoadConfig(cfgFile)
		if err != nil {
			return err
		}
		logger.Info("using config file", zap.String("path", cfgFile))
		rules = append(cfg.Directives, rules...)
		if cfg.DefaultLevel != "" {
			rules = append(rules, cfg.DefaultLevel)
		}
	}
	if len(rules) == 0 {
		return errors.New("no rules given; pass rules as arguments or use --config")
	}

	directives, err := tracefilter.ParseList(strings.Join(rules, ","))
	out := cmd.OutOrStdout()
	for _, d := range directives {
		kind := "static"
		if d.IsDynamic() {
			kind = "dynamic"
		}
		fmt.Fprintf(out, "%-8s %-6s %s\n", kind, d.Level(), d)
	}
	if err != nil {
		return err
	}

	dynamics, statics := directive.MakeTables(directives)
	maxLevel := statics.MaxLevel()
	if lvl := dynamics.MaxLevel(); lvl > maxLevel {
		maxLevel = lvl
	}
	fmt.Fprintf(out, "%d static, %d dynamic, max level %s\n",
		statics.Len(), dynamics.Len(), maxLevel)
	return nil
}
