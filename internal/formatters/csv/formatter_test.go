// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package csv

import (
	stdcsv "encoding/csv"
	"strings"
	"testing"
	"time"

	"lgpd-scan/internal/detector"
	"lgpd-scan/internal/formatters"
	"lgpd-scan/internal/pii"
	"lgpd-scan/internal/report"
)

func sampleReport() *report.ProcessReport {
	agg := report.NewAggregator("proc-csv", report.FileInfo{}, nil)
	agg.Add(detector.RecordResult{
		RecordID:  "1",
		PiiCounts: map[pii.Type]int{pii.CPF: 1, pii.Email: 3},
		HasPII:    true,
	})
	return agg.Finalize(time.Second)
}

func TestFormat(t *testing.T) {
	out, err := (&Formatter{}).Format(sampleReport(), formatters.Options{})
	if err != nil {
		t.Fatalf("Format: %v", err)
	}

	rows, err := stdcsv.NewReader(strings.NewReader(out)).ReadAll()
	if err != nil {
		t.Fatalf("output is not valid CSV: %v", err)
	}
	if len(rows) != 3 { // header + 2 types
		t.Fatalf("got %d rows, want 3", len(rows))
	}
	if rows[0][0] != "process_id" || rows[0][5] != "risk_level" {
		t.Errorf("unexpected header %v", rows[0])
	}
	// Breakdown is count-descending: EMAIL(3) before CPF(1).
	if rows[1][1] != "EMAIL" || rows[1][3] != "3" {
		t.Errorf("unexpected first data row %v", rows[1])
	}
	if rows[2][1] != "CPF" || rows[2][5] != "CRITICO" {
		t.Errorf("unexpected second data row %v", rows[2])
	}
}

func TestFormatEmptyBreakdown(t *testing.T) {
	agg := report.NewAggregator("proc-empty", report.FileInfo{}, nil)
	r := agg.Finalize(time.Second)

	out, err := (&Formatter{}).Format(r, formatters.Options{})
	if err != nil {
		t.Fatalf("Format: %v", err)
	}
	if lines := strings.Count(strings.TrimSpace(out), "\n"); lines != 0 {
		t.Errorf("empty breakdown rendered %d extra lines", lines)
	}
}

func TestRegisteredInDefaultRegistry(t *testing.T) {
	f, ok := formatters.Get("csv")
	if !ok {
		t.Fatal("csv formatter not registered")
	}
	if f.FileExtension() != ".csv" {
		t.Errorf("extension %q", f.FileExtension())
	}
}
