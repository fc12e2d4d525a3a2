// Copyright (c) 2025 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package report

import (
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/apex/log"
	"github.com/charmbracelet/lipgloss/v2"
	"github.com/charmbracelet/lipgloss/v2/table"
	"github.com/dustin/go-humanize"
	"golang.org/x/term"
	"gopkg.in/yaml.v2"

	"github.com/staranto/cachefxgo/internal/analyzer"
	"github.com/staranto/cachefxgo/internal/config"
)

// Options carries the rendering knobs shared by the non-default output
// modes.
type Options struct {
	Output string // text, json, yaml, table
	Color  bool
	Titles bool
}

// Dataset flattens ranked results into ordered key/value rows. The raw
// nanosecond and count values are preserved so json/yaml consumers can do
// their own arithmetic.
func Dataset(results []analyzer.Result) []map[string]interface{} {
	//nolint:prealloc
	var rows []map[string]interface{}
	for _, r := range results {
		rows = append(rows, map[string]interface{}{
			"task":        r.Task.Name,
			"savings_ns":  r.TimeSavingsNanos,
			"hit_rate":    r.Task.CacheHitRate(),
			"avg_exec_ns": r.Task.AvgExecutionTimeNanos(),
			"operations":  r.Task.TotalOperations(),
		})
	}
	return rows
}

// SliceDiceSpit renders ranked results per the output options. The
// default text mode is handled by WriteText; this routine covers the
// structured and styled variants.
func SliceDiceSpit(results []analyzer.Result, opts Options, w io.Writer) {
	if w == nil {
		w = os.Stdout
	}

	switch opts.Output {
	case "json":
		jsonOutput, err := json.Marshal(Dataset(results))
		if err != nil {
			slog.Error("SliceDiceSpit()", "err", err)
			return
		}
		_, _ = w.Write(jsonOutput)
		fmt.Fprintln(w)
	case "yaml":
		yamlOutput, err := yaml.Marshal(Dataset(results))
		if err != nil {
			slog.Error("SliceDiceSpit()", "err", err)
			return
		}
		_, _ = w.Write(yamlOutput)
	case "table":
		TableWriter(results, opts, w)
	default:
		WriteText(w, results)
	}
}

// TableWriter renders the ranked results in a styled tabular form
// honoring color and title options.
func TableWriter(results []analyzer.Result, opts Options, w io.Writer) {
	if len(results) == 0 {
		fmt.Fprintln(w, "No tasks would benefit from removing caching.")
		return
	}

	var (
		headerStyle  = lipgloss.NewStyle().Align(lipgloss.Left)
		cellStyle    = lipgloss.NewStyle().Padding(0, 0).Align(lipgloss.Left)
		evenRowStyle = cellStyle
		oddRowStyle  = cellStyle
	)

	// Color only when asked for and actually talking to a terminal.
	if opts.Color && term.IsTerminal(int(os.Stdout.Fd())) {
		headerColor, evenColor, oddColor := getColors("colors")

		headerStyle = headerStyle.Foreground(lipgloss.Color(headerColor))
		evenRowStyle = evenRowStyle.Foreground(lipgloss.Color(evenColor))
		oddRowStyle = oddRowStyle.Foreground(lipgloss.Color(oddColor))
	}

	var rows [][]string
	for _, r := range results {
		rows = append(rows, []string{
			FormatTime(r.TimeSavingsNanos),
			FormatHitRate(r.Task.CacheHitRate()),
			FormatTime(r.Task.AvgExecutionTimeNanos()),
			humanize.Comma(r.Task.TotalOperations()),
			r.Task.Name,
		})
	}

	t := table.New().
		BorderBottom(false).
		BorderTop(false).
		BorderLeft(false).
		BorderRight(false).
		Border(lipgloss.HiddenBorder()).
		StyleFunc(func(row, col int) lipgloss.Style {
			pad, _ := config.GetInt("padding", 0)

			var style lipgloss.Style
			switch {
			case row == table.HeaderRow:
				style = headerStyle
			case row%2 == 0:
				style = evenRowStyle
			default:
				style = oddRowStyle
			}

			if col > 0 {
				style = style.PaddingLeft(pad)
			}

			return style
		}).
		Headers().
		Rows(rows...)

	if opts.Titles {
		// https://github.com/charmbracelet/lipgloss/issues/261
		t = t.Headers("Savings", "Hit Rate", "Exec Time", "Operations", "Task Name").BorderHeader(false)
	}

	fmt.Fprintln(w, t)

	sum := analyzer.Summarize(results)
	fmt.Fprintln(w)
	fmt.Fprintf(w, "Summary: %d tasks would benefit from removing caching\n", sum.BenefitingTasks)
	fmt.Fprintf(w, "Total potential savings: %s\n", FormatTime(sum.TotalSavingsNanos))

	log.Debugf("table rows: %d", len(rows))
}

// getColors returns configured color values for table rendering.
func getColors(key string) (header string, even string, odd string) {
	header, _ = config.GetString(fmt.Sprintf("%s.title", key), "#f6be00")
	even, _ = config.GetString(fmt.Sprintf("%s.even", key), "#ffffff")
	odd, _ = config.GetString(fmt.Sprintf("%s.odd", key), "#00c8f0")
	return
}
