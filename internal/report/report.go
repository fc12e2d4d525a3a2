// Copyright (c) 2025 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package report

import (
	"fmt"
	"io"
	"strings"
	"unicode/utf8"

	"github.com/dustin/go-humanize"

	"github.com/staranto/cachefxgo/internal/analyzer"
)

// FormatTime renders nanoseconds with a magnitude-appropriate unit using
// base-1000 thresholds. Negative magnitudes keep a leading '-'.
func FormatTime(nanos int64) string {
	sign := ""
	if nanos < 0 {
		sign = "-"
		nanos = -nanos
	}

	ns := float64(nanos)
	switch {
	case ns >= 1_000_000_000:
		return fmt.Sprintf("%s%.2fs", sign, ns/1_000_000_000)
	case ns >= 1_000_000:
		return fmt.Sprintf("%s%.2fms", sign, ns/1_000_000)
	case ns >= 1_000:
		return fmt.Sprintf("%s%.2fμs", sign, ns/1_000)
	default:
		return fmt.Sprintf("%s%.0fns", sign, ns)
	}
}

// FormatHitRate renders a [0,1] rate as a percentage with one decimal.
func FormatHitRate(rate float64) string {
	return fmt.Sprintf("%.1f%%", rate*100)
}

// Column order and minimum widths of the text report.
var columns = []struct {
	title string
	width int
}{
	{"Savings", 10},
	{"Hit Rate", 8},
	{"Exec Time", 10},
	{"Operations", 10},
	{"Task Name", 0},
}

// WriteText emits the ranked report in its plain-text form: intro line,
// column header, dashed rule, one row per task, and a summary with a
// legend. An empty ranking short-circuits to the no-benefit message.
func WriteText(w io.Writer, results []analyzer.Result) {
	fmt.Fprintln(w, "Tasks ranked by estimated time savings from removing caching layer")
	fmt.Fprintln(w)

	if len(results) == 0 {
		fmt.Fprintln(w, "No tasks would benefit from removing caching.")
		return
	}

	header := headerLine()
	fmt.Fprintln(w, header)
	fmt.Fprintln(w, strings.Repeat("-", utf8.RuneCountInString(header)))

	for _, r := range results {
		cells := []string{
			FormatTime(r.TimeSavingsNanos),
			FormatHitRate(r.Task.CacheHitRate()),
			FormatTime(r.Task.AvgExecutionTimeNanos()),
			humanize.Comma(r.Task.TotalOperations()),
			r.Task.Name,
		}
		fmt.Fprintln(w, rowLine(cells))
	}

	sum := analyzer.Summarize(results)
	fmt.Fprintln(w)
	fmt.Fprintf(w, "Summary: %d tasks would benefit from removing caching\n", sum.BenefitingTasks)
	fmt.Fprintf(w, "Total potential savings: %s\n", FormatTime(sum.TotalSavingsNanos))
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Legend:")
	fmt.Fprintln(w, "- Savings: Time saved by removing caching layer")
	fmt.Fprintln(w, "- Hit Rate: Percentage of operations that were cache hits")
	fmt.Fprintln(w, "- Exec Time: Average execution time per operation")
	fmt.Fprintln(w, "- Operations: Total number of cache hits + misses")
}

func headerLine() string {
	titles := make([]string, 0, len(columns))
	for _, c := range columns {
		titles = append(titles, c.title)
	}
	return rowLine(titles)
}

// rowLine joins cells with single spaces, left-aligning each to its
// column's minimum width. Widths are counted in runes, not bytes, so the
// μs unit doesn't skew alignment.
func rowLine(cells []string) string {
	parts := make([]string, 0, len(cells))
	for i, cell := range cells {
		parts = append(parts, pad(cell, columns[i].width))
	}
	return strings.TrimRight(strings.Join(parts, " "), " ")
}

func pad(s string, width int) string {
	if n := utf8.RuneCountInString(s); n < width {
		return s + strings.Repeat(" ", width-n)
	}
	return s
}
