// Copyright (c) 2025 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

// Package differ compares two stats captures of the same build and
// renders what changed between them.
package differ

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/apex/log"
	gojsondiff "github.com/yudai/gojsondiff"
	"github.com/yudai/gojsondiff/formatter"
)

// Diff compares the left and right stats documents and writes an ASCII
// diff. Returns true if the documents differ.
func Diff(w io.Writer, left []byte, right []byte, color bool) (bool, error) {
	d, err := gojsondiff.New().Compare(left, right)
	if err != nil {
		return false, fmt.Errorf("failed to compare stats documents: %w", err)
	}

	if !d.Modified() {
		log.Debug("stats documents are identical")
		return false, nil
	}

	var leftDoc map[string]interface{}
	if err := json.Unmarshal(left, &leftDoc); err != nil {
		return false, fmt.Errorf("failed to unmarshal left document: %w", err)
	}

	f := formatter.NewAsciiFormatter(leftDoc, formatter.AsciiFormatterConfig{
		ShowArrayIndex: true,
		Coloring:       color,
	})
	out, err := f.Format(d)
	if err != nil {
		return false, fmt.Errorf("failed to format diff: %w", err)
	}

	fmt.Fprint(w, out)
	return true, nil
}
