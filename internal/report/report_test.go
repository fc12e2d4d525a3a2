// Copyright (c) 2025 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0
// no-cloc

package report

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/staranto/cachefxgo/internal/analyzer"
	"github.com/staranto/cachefxgo/internal/stats"
)

func TestFormatTime(t *testing.T) {
	tests := []struct {
		name  string
		nanos int64
		want  string
	}{
		{name: "zero", nanos: 0, want: "0ns"},
		{name: "sub-microsecond", nanos: 999, want: "999ns"},
		{name: "exactly one microsecond", nanos: 1000, want: "1.00μs"},
		{name: "microseconds", nanos: 50_000, want: "50.00μs"},
		{name: "fractional microseconds", nanos: 9250, want: "9.25μs"},
		{name: "exactly one millisecond", nanos: 1_000_000, want: "1.00ms"},
		{name: "milliseconds", nanos: 2_500_000, want: "2.50ms"},
		{name: "exactly one second", nanos: 1_000_000_000, want: "1.00s"},
		{name: "seconds", nanos: 1_500_000_000, want: "1.50s"},
		{name: "negative milliseconds", nanos: -2_500_000, want: "-2.50ms"},
		{name: "negative nanoseconds", nanos: -42, want: "-42ns"},
		{name: "negative seconds", nanos: -3_000_000_000, want: "-3.00s"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, FormatTime(tt.nanos))
		})
	}
}

func TestFormatHitRate(t *testing.T) {
	tests := []struct {
		name string
		rate float64
		want string
	}{
		{name: "zero", rate: 0, want: "0.0%"},
		{name: "full", rate: 1, want: "100.0%"},
		{name: "three quarters", rate: 0.75, want: "75.0%"},
		{name: "rounded to one decimal", rate: 0.12345, want: "12.3%"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, FormatHitRate(tt.rate))
		})
	}
}

func TestWriteText_Empty(t *testing.T) {
	var buf bytes.Buffer
	WriteText(&buf, nil)

	want := "Tasks ranked by estimated time savings from removing caching layer\n" +
		"\n" +
		"No tasks would benefit from removing caching.\n"
	assert.Equal(t, want, buf.String())
}

func TestWriteText(t *testing.T) {
	records := []stats.TaskRecord{
		{Name: "alpha", CacheHits: 100},
		{Name: "beta", CacheMisses: 10, Executions: 10, TotalDurationNanos: 100_000},
	}

	var buf bytes.Buffer
	WriteText(&buf, analyzer.Rank(records))

	want := "Tasks ranked by estimated time savings from removing caching layer\n" +
		"\n" +
		"Savings    Hit Rate Exec Time  Operations Task Name\n" +
		strings.Repeat("-", 51) + "\n" +
		"60.00μs    0.0%     9.25μs     10         beta\n" +
		"50.00μs    100.0%   0ns        100        alpha\n" +
		"\n" +
		"Summary: 2 tasks would benefit from removing caching\n" +
		"Total potential savings: 110.00μs\n" +
		"\n" +
		"Legend:\n" +
		"- Savings: Time saved by removing caching layer\n" +
		"- Hit Rate: Percentage of operations that were cache hits\n" +
		"- Exec Time: Average execution time per operation\n" +
		"- Operations: Total number of cache hits + misses\n"
	assert.Equal(t, want, buf.String())
}

func TestWriteText_OperationsGrouping(t *testing.T) {
	records := []stats.TaskRecord{
		{Name: "busy", CacheHits: 1_234_567},
	}

	var buf bytes.Buffer
	WriteText(&buf, analyzer.Rank(records))

	assert.Contains(t, buf.String(), "1,234,567  busy")
}

func TestWriteText_RuleMatchesHeaderWidth(t *testing.T) {
	records := []stats.TaskRecord{{Name: "t", CacheHits: 1}}

	var buf bytes.Buffer
	WriteText(&buf, analyzer.Rank(records))

	lines := strings.Split(buf.String(), "\n")
	header, rule := lines[2], lines[3]
	assert.Equal(t, strings.Repeat("-", len([]rune(header))), rule)
}

func TestDataset(t *testing.T) {
	records := []stats.TaskRecord{
		{Name: "alpha", CacheHits: 100},
	}

	ds := Dataset(analyzer.Rank(records))
	assert.Len(t, ds, 1)
	assert.Equal(t, "alpha", ds[0]["task"])
	assert.Equal(t, int64(50_000), ds[0]["savings_ns"])
	assert.Equal(t, 1.0, ds[0]["hit_rate"])
	assert.Equal(t, int64(0), ds[0]["avg_exec_ns"])
	assert.Equal(t, int64(100), ds[0]["operations"])
}
