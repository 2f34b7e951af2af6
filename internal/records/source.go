// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

// Package records supplies (record_id, text) pairs from tabular and plain
// text files. Sources are the engine's input collaborators: the engine
// imposes no ordering on them and passes record IDs through untouched.
package records

import (
	"fmt"
	"path/filepath"
	"strings"

	"lgpd-scan/internal/detector"
)

// Source yields the records of one input file.
type Source interface {
	// Read returns every record in the file. Empty rows are skipped.
	Read() ([]detector.Record, error)
	// Kind returns the source type, e.g. "csv".
	Kind() string
}

// Options configures source construction.
type Options struct {
	// Column names the text column for tabular sources. Empty means
	// discover it with the mean-length heuristic.
	Column string
}

// Open builds a source for path based on its extension. Supported: .csv,
// .txt, .xlsx, .xls.
func Open(path string, opts Options) (Source, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".csv":
		return NewCSVSource(path, opts.Column), nil
	case ".txt":
		return NewTextSource(path), nil
	case ".xlsx", ".xls":
		return NewExcelSource(path, opts.Column), nil
	default:
		return nil, fmt.Errorf("unsupported file extension: %s", filepath.Ext(path))
	}
}

// minHeuristicLength is the mean cell length a column must exceed to be
// picked as the text column when no name is configured.
const minHeuristicLength = 20

// pickTextColumn returns the index of the text column in rows (excluding
// the header): the configured name when present in the header, otherwise
// the first column whose mean cell length exceeds the heuristic threshold.
// Returns -1 when nothing qualifies.
func pickTextColumn(header []string, rows [][]string, configured string) int {
	if configured != "" {
		for i, name := range header {
			if strings.EqualFold(strings.TrimSpace(name), configured) {
				return i
			}
		}
	}

	cols := len(header)
	for c := 0; c < cols; c++ {
		total := 0
		cells := 0
		for _, row := range rows {
			if c < len(row) {
				total += len(row[c])
				cells++
			}
		}
		if cells > 0 && float64(total)/float64(cells) > minHeuristicLength {
			return c
		}
	}
	return -1
}
