// Copyright (c) 2025 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package stats

// Cost model constants, taken from the overhead micro-benchmark of the
// instrumented build. These are the optimistic (best-case-for-removal)
// estimates.
const (
	// CacheHitCostNanos is the cost of a single cache lookup that hit.
	CacheHitCostNanos int64 = 500

	// ExecutionOverheadNanos is the fixed bookkeeping cost the caching
	// layer adds on top of the real execution time for every miss.
	ExecutionOverheadNanos int64 = 6000

	// MeasurementOverheadNanos is the instrumentation overhead baked into
	// every recorded duration sample.
	MeasurementOverheadNanos int64 = 750
)

// TaskRecord is one task's counters as reported by the build's statistics
// file. Records are immutable once loaded; everything derived is computed
// on demand.
type TaskRecord struct {
	Name               string
	CacheHits          int64
	CacheMisses        int64
	Executions         int64
	TotalDurationNanos int64
}

// TotalOperations is the number of cache lookups, hit or miss.
func (t TaskRecord) TotalOperations() int64 {
	return t.CacheHits + t.CacheMisses
}

// CacheHitRate is the fraction of lookups satisfied by the cache. Defined
// as 0 when the task saw no operations at all.
func (t TaskRecord) CacheHitRate() float64 {
	ops := t.TotalOperations()
	if ops == 0 {
		return 0
	}
	return float64(t.CacheHits) / float64(ops)
}

// AvgExecutionTimeNanos estimates the true per-execution cost by backing
// the measurement overhead out of the recorded duration. Clamped at zero;
// a task whose recorded duration is below its accumulated overhead still
// reports 0, never a negative time. Defined as 0 when there are no
// recorded executions.
func (t TaskRecord) AvgExecutionTimeNanos() int64 {
	if t.Executions == 0 {
		return 0
	}
	adjusted := t.TotalDurationNanos - MeasurementOverheadNanos*t.Executions
	if adjusted < 0 {
		return 0
	}
	return adjusted / t.Executions
}
