// Copyright (c) 2025 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package command

import (
	"context"
	"os"

	"github.com/apex/log"
	"github.com/urfave/cli/v3"

	"github.com/staranto/cachefxgo/internal/config"
	"github.com/staranto/cachefxgo/internal/meta"
	"github.com/staranto/cachefxgo/internal/report"
)

// AnalyzeUsage is the arity message for the primary operation. main also
// prints it when invoked with no arguments at all.
const AnalyzeUsage = "Usage: cachefx <stats-durations.json>"

// AnalyzeCommandAction is the action handler for the "analyze"
// subcommand. It loads one stats capture, ranks every task by the
// estimated time savings from removing the caching layer, and emits the
// report per the common flags.
func AnalyzeCommandAction(ctx context.Context, cmd *cli.Command) error {
	m := GetMeta(cmd)
	log.Debugf("Executing action for %v", m.Args[1:])

	config.Config.Namespace = "analyze"

	args := cmd.Args().Slice()
	if len(args) != 1 {
		return &UsageError{Usage: AnalyzeUsage}
	}

	results, err := loadRanked(ctx, args[0])
	if err != nil {
		return err
	}

	results = sliceResults(cmd, results)

	report.SliceDiceSpit(results, report.Options{
		Output: cmd.String("output"),
		Color:  cmd.Bool("color"),
		Titles: cmd.Bool("titles"),
	}, os.Stdout)

	return nil
}

// AnalyzeCommandBuilder constructs the cli.Command for "analyze", wiring
// metadata, flags, and action/validator handlers.
func AnalyzeCommandBuilder(cmd *cli.Command, meta meta.Meta) *cli.Command {
	return &cli.Command{
		Name:      "analyze",
		Usage:     "rank tasks by caching effectiveness",
		UsageText: `cachefx [analyze] <stats-durations.json> [options]`,
		Metadata: map[string]any{
			"meta": meta,
		},
		Flags: NewGlobalFlags("analyze"),
		Action: func(ctx context.Context, cmd *cli.Command) error {
			if err := GlobalFlagsValidator(ctx, cmd); err != nil {
				return err
			}
			return AnalyzeCommandAction(ctx, cmd)
		},
	}
}
