// Copyright (c) 2025 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

// Package source resolves a stats path to its raw bytes. Plain files are
// read from disk; s3://bucket/key URIs are fetched from S3. Either way
// the content is fully buffered and compressed captures (.gz, .zst) are
// transparently decompressed before parsing.
package source

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"os"
	"path"
	"strings"

	"github.com/apex/log"
	"github.com/klauspost/compress/gzip"
	"github.com/klauspost/compress/zstd"

	"github.com/staranto/cachefxgo/internal/stats"
)

// Fetch returns the decompressed content of the stats path. A path that
// does not resolve to a readable file or object maps to
// *stats.NotFoundError; content that fails to decompress maps to
// *stats.MalformedError.
func Fetch(ctx context.Context, statsPath string) ([]byte, error) {
	var raw []byte
	var err error

	if strings.HasPrefix(statsPath, "s3://") {
		raw, err = fetchS3(ctx, statsPath)
	} else {
		raw, err = fetchLocal(statsPath)
	}
	if err != nil {
		return nil, err
	}

	return decompress(statsPath, raw)
}

func fetchLocal(statsPath string) ([]byte, error) {
	fi, err := os.Stat(statsPath)
	if err != nil || fi.IsDir() {
		return nil, &stats.NotFoundError{Path: statsPath}
	}

	raw, err := os.ReadFile(statsPath)
	if err != nil {
		return nil, &stats.NotFoundError{Path: statsPath}
	}

	log.Debugf("read %d bytes from %s", len(raw), statsPath)
	return raw, nil
}

// decompress unwraps a compressed capture based on its extension. Build
// pipelines routinely gzip or zstd their stats dumps before shipping them
// around.
func decompress(statsPath string, raw []byte) ([]byte, error) {
	switch path.Ext(strings.TrimPrefix(statsPath, "s3://")) {
	case ".gz":
		zr, err := gzip.NewReader(bytes.NewReader(raw))
		if err != nil {
			return nil, &stats.MalformedError{Detail: fmt.Sprintf("gzip: %v", err)}
		}
		defer zr.Close()

		out, err := io.ReadAll(zr)
		if err != nil {
			return nil, &stats.MalformedError{Detail: fmt.Sprintf("gzip: %v", err)}
		}
		return out, nil
	case ".zst":
		zr, err := zstd.NewReader(bytes.NewReader(raw))
		if err != nil {
			return nil, &stats.MalformedError{Detail: fmt.Sprintf("zstd: %v", err)}
		}
		defer zr.Close()

		out, err := io.ReadAll(zr.IOReadCloser())
		if err != nil {
			return nil, &stats.MalformedError{Detail: fmt.Sprintf("zstd: %v", err)}
		}
		return out, nil
	default:
		return raw, nil
	}
}
