// Copyright (c) 2025 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package stats

import "fmt"

// NotFoundError reports a stats path that did not resolve to a readable
// file (or S3 object).
type NotFoundError struct {
	Path string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("file '%s' not found", e.Path)
}

// MalformedError reports content that is not the expected stats shape:
// not valid JSON, not a top-level object, or a task entry missing one of
// its required counter keys.
type MalformedError struct {
	Detail string
}

func (e *MalformedError) Error() string {
	return e.Detail
}
