// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package records

import (
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"lgpd-scan/internal/detector"
)

// CSVSource reads records from one column of a CSV file.
type CSVSource struct {
	path   string
	column string
}

// NewCSVSource creates a CSV source. column may be empty to use the text
// column heuristic.
func NewCSVSource(path, column string) *CSVSource {
	return &CSVSource{path: path, column: column}
}

// Kind returns "csv".
func (s *CSVSource) Kind() string { return "csv" }

// Read parses the file and returns one record per data row. Record IDs are
// 1-based row numbers. Short rows and empty cells are skipped, not errors.
func (s *CSVSource) Read() ([]detector.Record, error) {
	f, err := os.Open(filepath.Clean(s.path))
	if err != nil {
		return nil, fmt.Errorf("open csv: %w", err)
	}
	defer f.Close()

	reader := csv.NewReader(f)
	reader.FieldsPerRecord = -1 // ragged rows are common in exports
	rows, err := reader.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("parse csv: %w", err)
	}
	if len(rows) < 2 {
		return nil, fmt.Errorf("csv has no data rows")
	}

	header, data := rows[0], rows[1:]
	col := pickTextColumn(header, data, s.column)
	if col < 0 {
		return nil, fmt.Errorf("no text column identified in %s", filepath.Base(s.path))
	}

	out := make([]detector.Record, 0, len(data))
	for i, row := range data {
		if col >= len(row) {
			continue
		}
		text := strings.TrimSpace(row[col])
		if text == "" {
			continue
		}
		out = append(out, detector.Record{ID: strconv.Itoa(i + 1), Text: text})
	}
	return out, nil
}
