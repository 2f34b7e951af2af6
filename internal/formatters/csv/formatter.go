// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

// Package csv renders the per-type breakdown as CSV rows for spreadsheet
// tooling.
package csv

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"strconv"

	"lgpd-scan/internal/formatters"
	"lgpd-scan/internal/report"
)

// Formatter implements CSV output.
type Formatter struct{}

func init() {
	formatters.Register(&Formatter{})
}

func (f *Formatter) Name() string { return "csv" }

func (f *Formatter) Description() string {
	return "PII breakdown rows in CSV format"
}

func (f *Formatter) FileExtension() string { return ".csv" }

// Format renders the breakdown, one row per detected type.
func (f *Formatter) Format(r *report.ProcessReport, _ formatters.Options) (string, error) {
	var buf bytes.Buffer
	w := csv.NewWriter(&buf)

	header := []string{"process_id", "type", "description", "count", "percentage", "risk_level"}
	if err := w.Write(header); err != nil {
		return "", fmt.Errorf("write csv header: %w", err)
	}

	for _, entry := range r.Breakdown {
		row := []string{
			r.ProcessID,
			string(entry.Type),
			entry.Description,
			strconv.Itoa(entry.Count),
			strconv.FormatFloat(entry.Percentage, 'f', 2, 64),
			r.Risk.Level.String(),
		}
		if err := w.Write(row); err != nil {
			return "", fmt.Errorf("write csv row: %w", err)
		}
	}

	w.Flush()
	if err := w.Error(); err != nil {
		return "", err
	}
	return buf.String(), nil
}
