// Copyright (c) 2025 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package command

import (
	"context"

	"github.com/apex/log"
	"github.com/urfave/cli/v3"

	"github.com/staranto/cachefxgo/internal/browse"
	"github.com/staranto/cachefxgo/internal/config"
	"github.com/staranto/cachefxgo/internal/meta"
)

const browseUsage = "Usage: cachefx browse <stats-durations.json>"

// BrowseCommandAction opens the ranked report in an interactive,
// scrollable table.
func BrowseCommandAction(ctx context.Context, cmd *cli.Command) error {
	m := GetMeta(cmd)
	log.Debugf("Executing action for %v", m.Args[1:])

	config.Config.Namespace = "browse"

	args := cmd.Args().Slice()
	if len(args) != 1 {
		return &UsageError{Usage: browseUsage}
	}

	results, err := loadRanked(ctx, args[0])
	if err != nil {
		return err
	}

	return browse.Run(sliceResults(cmd, results))
}

// BrowseCommandBuilder constructs the cli.Command for "browse".
func BrowseCommandBuilder(cmd *cli.Command, meta meta.Meta) *cli.Command {
	return &cli.Command{
		Name:      "browse",
		Usage:     "browse the ranked report interactively",
		UsageText: `cachefx browse <stats-durations.json> [options]`,
		Metadata: map[string]any{
			"meta": meta,
		},
		Flags: NewGlobalFlags("browse"),
		Action: func(ctx context.Context, cmd *cli.Command) error {
			if err := GlobalFlagsValidator(ctx, cmd); err != nil {
				return err
			}
			return BrowseCommandAction(ctx, cmd)
		},
	}
}
