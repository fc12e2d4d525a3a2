// Copyright (c) 2025 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package analyzer

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/staranto/cachefxgo/internal/stats"
)

func TestTimeSavings(t *testing.T) {
	tests := []struct {
		name string
		task stats.TaskRecord
		want int64
	}{
		{
			// Every lookup hits and nothing ever executes, so the cache is
			// pure overhead: 100 hits * 500ns lookup cost.
			name: "all hits never executes",
			task: stats.TaskRecord{CacheHits: 100},
			want: 50_000,
		},
		{
			// avg = (100000 - 750*10)/10 = 9250. Savings are all on the
			// miss side: 10 * (6000 + 9250) - 10 * 9250 = 60000.
			name: "all misses",
			task: stats.TaskRecord{
				CacheMisses:        10,
				Executions:         10,
				TotalDurationNanos: 100_000,
			},
			want: 60_000,
		},
		{
			// avg = (1000 - 750)/1 = 250. Savings:
			// 1000*500 + 1*(6000 + 250) - 1001*250 = 256000.
			name: "hit heavy with one miss",
			task: stats.TaskRecord{
				CacheHits:          1000,
				CacheMisses:        1,
				Executions:         1,
				TotalDurationNanos: 1000,
			},
			want: 256_000,
		},
		{
			name: "no operations",
			task: stats.TaskRecord{Executions: 5, TotalDurationNanos: 1_000_000},
			want: 0,
		},
		{
			// Expensive executions make caching a clear win; the estimate
			// goes negative.
			name: "caching pays for itself",
			task: stats.TaskRecord{
				CacheHits:          1000,
				CacheMisses:        1,
				Executions:         1,
				TotalDurationNanos: 10_000_750,
			},
			want: 1000*stats.CacheHitCostNanos +
				(stats.ExecutionOverheadNanos + 10_000_000) -
				1001*10_000_000,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, TimeSavings(tt.task))
		})
	}
}

func TestRank(t *testing.T) {
	records := []stats.TaskRecord{
		{Name: "cheap", CacheHits: 10},
		{Name: "hot", CacheHits: 1000, CacheMisses: 1, Executions: 1, TotalDurationNanos: 1000},
		{Name: "idle"},
		{Name: "expensive", CacheHits: 1000, CacheMisses: 1, Executions: 1, TotalDurationNanos: 10_000_750},
	}

	results := Rank(records)
	assert.Len(t, results, 4)

	// Highest savings first, monotonically non-increasing throughout.
	assert.Equal(t, "hot", results[0].Task.Name)
	for i := 1; i < len(results); i++ {
		assert.GreaterOrEqual(t,
			results[i-1].TimeSavingsNanos, results[i].TimeSavingsNanos)
	}

	// Caching win lands at the bottom.
	assert.Equal(t, "expensive", results[3].Task.Name)
	assert.Negative(t, results[3].TimeSavingsNanos)
}

func TestRank_StableTies(t *testing.T) {
	// Identical counters score identically; ties must keep input order.
	records := []stats.TaskRecord{
		{Name: "first", CacheHits: 10},
		{Name: "second", CacheHits: 10},
		{Name: "third", CacheHits: 10},
	}

	results := Rank(records)
	assert.Equal(t, "first", results[0].Task.Name)
	assert.Equal(t, "second", results[1].Task.Name)
	assert.Equal(t, "third", results[2].Task.Name)
}

func TestRank_Empty(t *testing.T) {
	assert.Empty(t, Rank(nil))
	assert.Empty(t, Rank([]stats.TaskRecord{}))
}

func TestSummarize(t *testing.T) {
	tests := []struct {
		name        string
		results     []Result
		wantTasks   int
		wantSavings int64
	}{
		{
			name: "positive only",
			results: []Result{
				{TimeSavingsNanos: 1000},
				{TimeSavingsNanos: 250},
			},
			wantTasks:   2,
			wantSavings: 1250,
		},
		{
			name: "negative and zero excluded",
			results: []Result{
				{TimeSavingsNanos: 1000},
				{TimeSavingsNanos: 0},
				{TimeSavingsNanos: -5000},
			},
			wantTasks:   1,
			wantSavings: 1000,
		},
		{
			name:        "empty",
			results:     nil,
			wantTasks:   0,
			wantSavings: 0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Summarize(tt.results)
			assert.Equal(t, tt.wantTasks, got.BenefitingTasks)
			assert.Equal(t, tt.wantSavings, got.TotalSavingsNanos)
		})
	}
}
