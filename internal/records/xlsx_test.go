// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package records

import (
	"path/filepath"
	"testing"

	"github.com/xuri/excelize/v2"
)

func writeWorkbook(t *testing.T, rows [][]any) string {
	t.Helper()
	f := excelize.NewFile()
	defer f.Close()

	for i, row := range rows {
		cell, err := excelize.CoordinatesToCellName(1, i+1)
		if err != nil {
			t.Fatal(err)
		}
		if err := f.SetSheetRow("Sheet1", cell, &row); err != nil {
			t.Fatal(err)
		}
	}

	path := filepath.Join(t.TempDir(), "planilha.xlsx")
	if err := f.SaveAs(path); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestExcelSourceRead(t *testing.T) {
	path := writeWorkbook(t, [][]any{
		{"ID", "Texto"},
		{"1", "Cliente João Silva, CPF 123.456.789-09, abriu chamado"},
		{"2", ""},
		{"3", "Contato pelo email maria@empresa.com.br sem retorno"},
	})

	recs, err := NewExcelSource(path, "Texto").Read()
	if err != nil {
		t.Fatalf("Read: %v", err)
	}
	if len(recs) != 2 {
		t.Fatalf("got %d records, want 2 (empty cell skipped)", len(recs))
	}
	if recs[0].ID != "1" || recs[1].ID != "3" {
		t.Errorf("record IDs %q %q, want 1 3", recs[0].ID, recs[1].ID)
	}
	if recs[0].Text != "Cliente João Silva, CPF 123.456.789-09, abriu chamado" {
		t.Errorf("unexpected text %q", recs[0].Text)
	}
}

func TestExcelSourceHeuristicColumn(t *testing.T) {
	path := writeWorkbook(t, [][]any{
		{"ID", "Status", "Relato"},
		{"1", "aberto", "Cliente informou CPF 123.456.789-09 durante o atendimento"},
	})

	recs, err := NewExcelSource(path, "").Read()
	if err != nil {
		t.Fatalf("Read: %v", err)
	}
	if len(recs) != 1 {
		t.Fatalf("got %d records, want 1", len(recs))
	}
	if recs[0].Text != "Cliente informou CPF 123.456.789-09 durante o atendimento" {
		t.Errorf("picked wrong column: %q", recs[0].Text)
	}
}

func TestExcelSourceHeaderOnly(t *testing.T) {
	path := writeWorkbook(t, [][]any{{"ID", "Texto"}})

	if _, err := NewExcelSource(path, "Texto").Read(); err == nil {
		t.Error("expected error for header-only sheet")
	}
}

func TestExcelSourceMissingFile(t *testing.T) {
	if _, err := NewExcelSource(filepath.Join(t.TempDir(), "nope.xlsx"), "").Read(); err == nil {
		t.Error("expected error for missing file")
	}
}
