// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package records

import (
	"fmt"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/xuri/excelize/v2"

	"lgpd-scan/internal/detector"
)

// ExcelSource reads records from one column of the first sheet of an XLSX
// workbook.
type ExcelSource struct {
	path   string
	column string
}

// NewExcelSource creates an Excel source. column may be empty to use the
// text column heuristic.
func NewExcelSource(path, column string) *ExcelSource {
	return &ExcelSource{path: path, column: column}
}

// Kind returns "xlsx".
func (s *ExcelSource) Kind() string { return "xlsx" }

// Read parses the first sheet and returns one record per data row, with
// 1-based row numbers as IDs.
func (s *ExcelSource) Read() ([]detector.Record, error) {
	f, err := excelize.OpenFile(filepath.Clean(s.path))
	if err != nil {
		return nil, fmt.Errorf("open workbook: %w", err)
	}
	defer f.Close()

	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		return nil, fmt.Errorf("workbook has no sheets")
	}

	rows, err := f.GetRows(sheets[0])
	if err != nil {
		return nil, fmt.Errorf("read sheet %s: %w", sheets[0], err)
	}
	if len(rows) < 2 {
		return nil, fmt.Errorf("sheet %s has no data rows", sheets[0])
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
