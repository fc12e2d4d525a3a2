// Copyright (c) 2025 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package source

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/klauspost/compress/gzip"
	"github.com/klauspost/compress/zstd"
	"github.com/stretchr/testify/assert"

	"github.com/staranto/cachefxgo/internal/stats"
)

const sampleDoc = `{"build": {"cache_hit": 100, "cache_miss": 0, "executions": 0}}`

func writeTemp(t *testing.T, name string, content []byte) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	assert.NoError(t, os.WriteFile(path, content, 0o600))
	return path
}

func gzipBytes(t *testing.T, content []byte) []byte {
	t.Helper()
	var buf bytes.Buffer
	zw := gzip.NewWriter(&buf)
	_, err := zw.Write(content)
	assert.NoError(t, err)
	assert.NoError(t, zw.Close())
	return buf.Bytes()
}

func zstdBytes(t *testing.T, content []byte) []byte {
	t.Helper()
	var buf bytes.Buffer
	zw, err := zstd.NewWriter(&buf)
	assert.NoError(t, err)
	_, err = zw.Write(content)
	assert.NoError(t, err)
	assert.NoError(t, zw.Close())
	return buf.Bytes()
}

func TestFetch_Local(t *testing.T) {
	path := writeTemp(t, "stats-durations.json", []byte(sampleDoc))

	raw, err := Fetch(context.Background(), path)
	assert.NoError(t, err)
	assert.Equal(t, sampleDoc, string(raw))
}

func TestFetch_Gzip(t *testing.T) {
	path := writeTemp(t, "stats-durations.json.gz", gzipBytes(t, []byte(sampleDoc)))

	raw, err := Fetch(context.Background(), path)
	assert.NoError(t, err)
	assert.Equal(t, sampleDoc, string(raw))
}

func TestFetch_Zstd(t *testing.T) {
	path := writeTemp(t, "stats-durations.json.zst", zstdBytes(t, []byte(sampleDoc)))

	raw, err := Fetch(context.Background(), path)
	assert.NoError(t, err)
	assert.Equal(t, sampleDoc, string(raw))
}

func TestFetch_CorruptGzip(t *testing.T) {
	path := writeTemp(t, "stats-durations.json.gz", []byte("this is not gzip"))

	_, err := Fetch(context.Background(), path)
	var malformed *stats.MalformedError
	assert.ErrorAs(t, err, &malformed)
	assert.Contains(t, malformed.Detail, "gzip")
}

func TestFetch_CorruptZstd(t *testing.T) {
	path := writeTemp(t, "stats-durations.json.zst", []byte("this is not zstd"))

	_, err := Fetch(context.Background(), path)
	var malformed *stats.MalformedError
	assert.ErrorAs(t, err, &malformed)
}

func TestFetch_NotFound(t *testing.T) {
	missing := filepath.Join(t.TempDir(), "nope.json")

	_, err := Fetch(context.Background(), missing)
	var notFound *stats.NotFoundError
	assert.ErrorAs(t, err, &notFound)
	assert.Equal(t, missing, notFound.Path)
}

func TestFetch_Directory(t *testing.T) {
	_, err := Fetch(context.Background(), t.TempDir())

	var notFound *stats.NotFoundError
	assert.ErrorAs(t, err, &notFound)
}

func TestSplitS3URI(t *testing.T) {
	tests := []struct {
		name       string
		uri        string
		wantBucket string
		wantKey    string
		wantErr    bool
	}{
		{
			name:       "bucket and key",
			uri:        "s3://builds/nightly/stats-durations.json",
			wantBucket: "builds",
			wantKey:    "nightly/stats-durations.json",
		},
		{
			name:    "missing key",
			uri:     "s3://builds",
			wantErr: true,
		},
		{
			name:    "empty bucket",
			uri:     "s3:///key",
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			bucket, key, err := splitS3URI(tt.uri)

			if tt.wantErr {
				assert.Error(t, err)
				return
			}

			assert.NoError(t, err)
			assert.Equal(t, tt.wantBucket, bucket)
			assert.Equal(t, tt.wantKey, key)
		})
	}
}
