// Copyright (c) 2025 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package command

import (
	"context"

	"github.com/urfave/cli/v3"

	"github.com/staranto/cachefxgo/internal/analyzer"
	"github.com/staranto/cachefxgo/internal/meta"
	"github.com/staranto/cachefxgo/internal/report"
	"github.com/staranto/cachefxgo/internal/source"
	"github.com/staranto/cachefxgo/internal/stats"
)

// UsageError reports wrong command-line arity. The Usage text is printed
// verbatim by main.
type UsageError struct {
	Usage string
}

func (e *UsageError) Error() string {
	return e.Usage
}

// GetMeta returns the meta.Meta stored in the command's Metadata. If missing
// or of an unexpected type, it returns the zero value.
func GetMeta(cmd *cli.Command) meta.Meta {
	if cmd == nil || cmd.Metadata == nil {
		return meta.Meta{}
	}
	if m, ok := cmd.Metadata["meta"].(meta.Meta); ok {
		return m
	}
	return meta.Meta{}
}

// loadRanked runs the load → rank half of the pipeline for a single
// stats path.
func loadRanked(ctx context.Context, statsPath string) ([]analyzer.Result, error) {
	raw, err := source.Fetch(ctx, statsPath)
	if err != nil {
		return nil, err
	}

	records, err := stats.Parse(raw)
	if err != nil {
		return nil, err
	}

	return analyzer.Rank(records), nil
}

// sliceResults applies the shared --filter and --limit flags to the
// ranked results.
func sliceResults(cmd *cli.Command, results []analyzer.Result) []analyzer.Result {
	if spec := cmd.String("filter"); spec != "" {
		results = report.FilterResults(results, spec)
	}

	if limit := cmd.Int("limit"); limit > 0 && len(results) > limit {
		results = results[:limit]
	}

	return results
}
