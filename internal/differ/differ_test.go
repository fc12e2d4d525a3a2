// Copyright (c) 2025 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package differ

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDiff_Identical(t *testing.T) {
	doc := []byte(`{"build": {"cache_hit": 100, "cache_miss": 0, "executions": 0}}`)

	var buf bytes.Buffer
	changed, err := Diff(&buf, doc, doc, false)
	assert.NoError(t, err)
	assert.False(t, changed)
	assert.Empty(t, buf.String())
}

func TestDiff_Changed(t *testing.T) {
	left := []byte(`{"build": {"cache_hit": 100, "cache_miss": 0, "executions": 0}}`)
	right := []byte(`{"build": {"cache_hit": 150, "cache_miss": 3, "executions": 3}}`)

	var buf bytes.Buffer
	changed, err := Diff(&buf, left, right, false)
	assert.NoError(t, err)
	assert.True(t, changed)
	assert.Contains(t, buf.String(), "cache_hit")
}

func TestDiff_InvalidJSON(t *testing.T) {
	left := []byte(`{"build": `)
	right := []byte(`{}`)

	var buf bytes.Buffer
	_, err := Diff(&buf, left, right, false)
	assert.Error(t, err)
}
