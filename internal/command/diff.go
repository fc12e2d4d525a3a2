// Copyright (c) 2025 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package command

import (
	"context"
	"fmt"
	"os"

	"github.com/apex/log"
	"github.com/urfave/cli/v3"

	"github.com/staranto/cachefxgo/internal/config"
	"github.com/staranto/cachefxgo/internal/differ"
	"github.com/staranto/cachefxgo/internal/meta"
	"github.com/staranto/cachefxgo/internal/source"
	"github.com/staranto/cachefxgo/internal/stats"
)

const diffUsage = "Usage: cachefx diff <before.json> <after.json>"

// DiffCommandAction compares two stats captures of the same build and
// prints what changed between them.
func DiffCommandAction(ctx context.Context, cmd *cli.Command) error {
	m := GetMeta(cmd)
	log.Debugf("Executing action for %v", m.Args[1:])

	config.Config.Namespace = "diff"

	args := cmd.Args().Slice()
	if len(args) != 2 {
		return &UsageError{Usage: diffUsage}
	}

	docs := make([][]byte, 0, 2)
	for _, statsPath := range args {
		raw, err := source.Fetch(ctx, statsPath)
		if err != nil {
			return err
		}
		// Validate the shape before diffing so a bad capture surfaces as a
		// parse error, not a confusing diff.
		if _, err := stats.Parse(raw); err != nil {
			return err
		}
		docs = append(docs, raw)
	}

	changed, err := differ.Diff(os.Stdout, docs[0], docs[1], cmd.Bool("color"))
	if err != nil {
		return err
	}
	if !changed {
		fmt.Println("No differences.")
	}

	return nil
}

// DiffCommandBuilder constructs the cli.Command for "diff".
func DiffCommandBuilder(cmd *cli.Command, meta meta.Meta) *cli.Command {
	return &cli.Command{
		Name:      "diff",
		Usage:     "diff two stats captures",
		UsageText: `cachefx diff <before.json> <after.json> [options]`,
		Metadata: map[string]any{
			"meta": meta,
		},
		Flags: NewGlobalFlags("diff"),
		Action: func(ctx context.Context, cmd *cli.Command) error {
			if err := GlobalFlagsValidator(ctx, cmd); err != nil {
				return err
			}
			return DiffCommandAction(ctx, cmd)
		},
	}
}
