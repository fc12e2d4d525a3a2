// Copyright (c) 2025 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package report

import (
	"os"
	"regexp"
	"strconv"
	"strings"

	"github.com/apex/log"

	"github.com/staranto/cachefxgo/internal/analyzer"
)

// filterRegex is the pattern used to parse filter expressions into key,
// operator, and target components. The operator can be negated with !.
var filterRegex = regexp.MustCompile(`^(.*?)(!?[=^~<>@/])(.*)$`)

// Filter represents a single parsed --filter expression including the
// key, operand, optional negation and target value.
type Filter struct {
	Key     string
	Negate  bool
	Operand string
	Target  string
}

// BuildFilters parses a filter specification string into a slice of
// Filter. Invalid specs (unsupported operand or malformed expression) are
// skipped.
func BuildFilters(spec string) []Filter {
	//nolint:prealloc
	var filters []Filter

	// If there are no filters specified, go home early.
	if spec == "" {
		return filters
	}

	// Default delimiter is ",", allow an override.
	delim := ","
	if d, ok := os.LookupEnv("CACHEFX_FILTER_DELIM"); ok {
		delim = d
	}

	for _, filterSpec := range strings.Split(spec, delim) {
		parts := filterRegex.FindStringSubmatch(filterSpec)

		// If a supported operand was not found, log an error and throw it
		// away.
		if parts == nil {
			log.Error("invalid filter: " + filterSpec)
			continue
		}

		negate := strings.HasPrefix(parts[2], "!")
		if negate {
			parts[2] = strings.TrimPrefix(parts[2], "!")
		}

		filters = append(filters, Filter{
			Key:     parts[1],
			Negate:  negate,
			Operand: parts[2],
			Target:  parts[3],
		})
	}

	return filters
}

// FilterResults returns the ranked results that match every filter in the
// spec. Filtering happens after ranking, so relative order is preserved.
func FilterResults(results []analyzer.Result, spec string) []analyzer.Result {
	filters := BuildFilters(spec)
	if len(filters) == 0 {
		return results
	}

	//nolint:prealloc
	var filtered []analyzer.Result
	for _, r := range results {
		if matchesAll(r, filters) {
			filtered = append(filtered, r)
		}
	}
	return filtered
}

// Filterable column keys and how each maps to a row value.
func filterValue(r analyzer.Result, key string) (string, bool) {
	switch key {
	case "task":
		return r.Task.Name, true
	case "savings":
		return strconv.FormatInt(r.TimeSavingsNanos, 10), true
	case "exec":
		return strconv.FormatInt(r.Task.AvgExecutionTimeNanos(), 10), true
	case "ops":
		return strconv.FormatInt(r.Task.TotalOperations(), 10), true
	case "hits":
		return strconv.FormatInt(r.Task.CacheHits, 10), true
	case "misses":
		return strconv.FormatInt(r.Task.CacheMisses, 10), true
	default:
		return "", false
	}
}

func matchesAll(r analyzer.Result, filters []Filter) bool {
	for _, filter := range filters {
		value, ok := filterValue(r, filter.Key)
		if !ok {
			log.Error("filter key not found: " + filter.Key)
			continue
		}

		if !checkOperand(value, filter) {
			return false
		}
	}
	return true
}

// checkOperand evaluates a comparison filter against the provided value.
// The ordering operands compare numerically when both sides parse as
// integers, otherwise lexically.
func checkOperand(value string, filter Filter) bool {
	switch filter.Operand {
	case "=":
		return value == filter.Target == !filter.Negate
	case "~":
		return strings.EqualFold(value, filter.Target) == !filter.Negate
	case "^":
		return strings.HasPrefix(value, filter.Target) == !filter.Negate
	case ">":
		return numericLess(filter.Target, value) == !filter.Negate
	case "<":
		return numericLess(value, filter.Target) == !filter.Negate
	case "@":
		return strings.Contains(value, filter.Target) == !filter.Negate
	case "/":
		matched, err := regexp.MatchString(filter.Target, value)
		if err != nil {
			log.Error("invalid regex: " + filter.Target)
			return false
		}
		return matched == !filter.Negate
	default:
		log.Error("unsupported filtering operand: " + filter.Operand)
		return false
	}
}

func numericLess(a, b string) bool {
	ai, aErr := strconv.ParseInt(a, 10, 64)
	bi, bErr := strconv.ParseInt(b, 10, 64)
	if aErr == nil && bErr == nil {
		return ai < bi
	}
	return a < b
}
