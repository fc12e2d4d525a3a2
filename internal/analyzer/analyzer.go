// Copyright (c) 2025 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package analyzer

import (
	"sort"

	"github.com/apex/log"

	"github.com/staranto/cachefxgo/internal/stats"
)

// Result pairs a task with its estimated savings from removing the
// caching layer. Positive savings mark a poor cache candidate.
type Result struct {
	Task             stats.TaskRecord
	TimeSavingsNanos int64
}

// TimeSavings estimates the signed wall-time difference between the
// task's actual cached history and a hypothetical history with no caching
// layer at all.
//
// With caching, hits pay only the lookup cost and misses pay the caching
// layer's bookkeeping overhead plus the true execution time. Without
// caching, every operation pays the true execution time and nothing else.
func TimeSavings(task stats.TaskRecord) int64 {
	ops := task.TotalOperations()
	if ops == 0 {
		// No data, no opinion.
		return 0
	}

	avg := task.AvgExecutionTimeNanos()

	currentCost := task.CacheHits*stats.CacheHitCostNanos +
		task.CacheMisses*(stats.ExecutionOverheadNanos+avg)
	noCacheCost := ops * avg

	return currentCost - noCacheCost
}

// Rank scores every record and sorts the results by savings, highest
// first. The sort is stable, so records with equal savings keep their
// input (discovery) order and output is deterministic for a given file.
func Rank(records []stats.TaskRecord) []Result {
	results := make([]Result, 0, len(records))
	for _, task := range records {
		results = append(results, Result{
			Task:             task,
			TimeSavingsNanos: TimeSavings(task),
		})
	}

	sort.SliceStable(results, func(i, j int) bool {
		return results[i].TimeSavingsNanos > results[j].TimeSavingsNanos
	})

	log.Debugf("ranked %d tasks", len(results))
	return results
}

// Summary aggregates the ranked results: how many tasks would benefit
// from removing caching and the total of their positive savings. Negative
// and zero estimates contribute nothing.
type Summary struct {
	BenefitingTasks   int
	TotalSavingsNanos int64
}

// Summarize folds the ranked results into a Summary.
func Summarize(results []Result) Summary {
	var s Summary
	for _, r := range results {
		if r.TimeSavingsNanos > 0 {
			s.BenefitingTasks++
			s.TotalSavingsNanos += r.TimeSavingsNanos
		}
	}
	return s
}
