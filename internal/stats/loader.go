// Copyright (c) 2025 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package stats

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/apex/log"
	"github.com/tidwall/gjson"
)

// Load is the plain-file convenience entry: it reads a local stats file
// and parses it, fully buffered, with no other side effects. Callers
// that need s3:// URIs or compressed captures resolve the path through
// source.Fetch instead (which maps missing files to the same
// NotFoundError) and hand the bytes to Parse.
func Load(path string) ([]TaskRecord, error) {
	fi, err := os.Stat(path)
	if err != nil || fi.IsDir() {
		return nil, &NotFoundError{Path: path}
	}

	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, &NotFoundError{Path: path}
	}

	return Parse(raw)
}

// Parse converts a raw stats document into TaskRecords, one per top-level
// key, in discovery order. The document must be a JSON object mapping
// task name to its counters:
//
//	{"task": {"duration": {"secs": 1, "nanos": 2},
//	          "cache_hit": 3, "cache_miss": 4, "executions": 4}}
//
// The duration sub-fields are optional and default to 0. The three
// counter keys are required; a task entry missing any of them is a
// structural error.
func Parse(raw []byte) ([]TaskRecord, error) {
	if !gjson.ValidBytes(raw) {
		return nil, &MalformedError{Detail: syntaxDetail(raw)}
	}

	doc := gjson.ParseBytes(raw)
	if !doc.IsObject() {
		return nil, &MalformedError{Detail: "top-level value is not an object"}
	}

	var records []TaskRecord
	var badEntry error

	doc.ForEach(func(key, value gjson.Result) bool {
		if !value.IsObject() {
			badEntry = &MalformedError{
				Detail: fmt.Sprintf("task '%s': entry is not an object", key.String()),
			}
			return false
		}

		for _, required := range []string{"cache_hit", "cache_miss", "executions"} {
			if !value.Get(required).Exists() {
				badEntry = &MalformedError{
					Detail: fmt.Sprintf("task '%s': missing required key '%s'", key.String(), required),
				}
				return false
			}
		}

		records = append(records, TaskRecord{
			Name:               key.String(),
			CacheHits:          value.Get("cache_hit").Int(),
			CacheMisses:        value.Get("cache_miss").Int(),
			Executions:         value.Get("executions").Int(),
			TotalDurationNanos: durationNanos(value.Get("duration")),
		})
		return true
	})

	if badEntry != nil {
		return nil, badEntry
	}

	log.Debugf("loaded %d task records", len(records))
	return records, nil
}

// durationNanos combines the nested duration object into nanoseconds.
// Missing secs/nanos (or a missing duration object entirely) count as 0.
func durationNanos(duration gjson.Result) int64 {
	return duration.Get("secs").Int()*1_000_000_000 + duration.Get("nanos").Int()
}

// syntaxDetail runs the stdlib parser over known-bad input purely to
// harvest its error message, so the reported detail matches what users
// expect from a JSON parser.
func syntaxDetail(raw []byte) string {
	var v any
	if err := json.Unmarshal(raw, &v); err != nil {
		return err.Error()
	}
	return "invalid JSON"
}
