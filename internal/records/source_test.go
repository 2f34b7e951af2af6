// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package records

import (
	"os"
	"path/filepath"
	"testing"
)

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(content), 0600); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestOpenByExtension(t *testing.T) {
	tests := []struct {
		path string
		kind string
	}{
		{"dados.csv", "csv"},
		{"dados.CSV", "csv"},
		{"registros.txt", "txt"},
		{"planilha.xlsx", "xlsx"},
		{"planilha.xls", "xlsx"},
	}

	for _, tt := range tests {
		src, err := Open(tt.path, Options{})
		if err != nil {
			t.Errorf("Open(%q): %v", tt.path, err)
			continue
		}
		if src.Kind() != tt.kind {
			t.Errorf("Open(%q).Kind() = %q, want %q", tt.path, src.Kind(), tt.kind)
		}
	}

	if _, err := Open("dados.pdf", Options{}); err == nil {
		t.Error("expected error for unsupported extension")
	}
}

func TestPickTextColumnConfiguredName(t *testing.T) {
	header := []string{"ID", "Texto Mascarado", "Data"}
	rows := [][]string{{"1", "curto", "2024-01-01"}}

	if got := pickTextColumn(header, rows, "Texto Mascarado"); got != 1 {
		t.Errorf("configured column index %d, want 1", got)
	}
	// Lookup is case-insensitive and trims header whitespace.
	if got := pickTextColumn([]string{"id", " texto mascarado "}, rows, "Texto Mascarado"); got != 1 {
		t.Errorf("case-insensitive lookup returned %d, want 1", got)
	}
}

func TestPickTextColumnHeuristic(t *testing.T) {
	header := []string{"ID", "Status", "Descricao"}
	rows := [][]string{
		{"1", "aberto", "Cliente João Silva solicitou segunda via do boleto"},
		{"2", "fechado", "Reclamação sobre cobrança indevida no cartão"},
	}

	if got := pickTextColumn(header, rows, ""); got != 2 {
		t.Errorf("heuristic picked column %d, want 2", got)
	}

	// Configured name missing from the header falls back to the heuristic.
	if got := pickTextColumn(header, rows, "Inexistente"); got != 2 {
		t.Errorf("fallback picked column %d, want 2", got)
	}
}

func TestPickTextColumnNothingQualifies(t *testing.T) {
	header := []string{"ID", "Status"}
	rows := [][]string{{"1", "ok"}, {"2", "erro"}}

	if got := pickTextColumn(header, rows, ""); got != -1 {
		t.Errorf("expected -1, got %d", got)
	}
}

func TestCSVSourceRead(t *testing.T) {
	path := writeFile(t, "dados.csv",
		"ID,Texto\n"+
			"1,\"Cliente João Silva, CPF 123.456.789-09, abriu chamado\"\n"+
			"2,\n"+
			"3,\"Contato pelo email maria@empresa.com.br sem retorno\"\n")

	src := NewCSVSource(path, "Texto")
	recs, err := src.Read()
	if err != nil {
		t.Fatalf("Read: %v", err)
	}
	if len(recs) != 2 {
		t.Fatalf("got %d records, want 2 (empty cell skipped)", len(recs))
	}
	// IDs are row numbers, so the skipped row leaves a gap.
	if recs[0].ID != "1" || recs[1].ID != "3" {
		t.Errorf("record IDs %q %q, want 1 3", recs[0].ID, recs[1].ID)
	}
}

func TestCSVSourceHeuristicColumn(t *testing.T) {
	path := writeFile(t, "dados.csv",
		"ID,Status,Relato\n"+
			"1,aberto,\"Cliente informou CPF 123.456.789-09 durante o atendimento\"\n"+
			"2,fechado,\"Solicitação de segunda via encaminhada para o financeiro\"\n")

	recs, err := NewCSVSource(path, "").Read()
	if err != nil {
		t.Fatalf("Read: %v", err)
	}
	if len(recs) != 2 {
		t.Fatalf("got %d records, want 2", len(recs))
	}
	if recs[0].Text != "Cliente informou CPF 123.456.789-09 durante o atendimento" {
		t.Errorf("picked wrong column: %q", recs[0].Text)
	}
}

func TestCSVSourceNoDataRows(t *testing.T) {
	path := writeFile(t, "vazio.csv", "ID,Texto\n")
	if _, err := NewCSVSource(path, "Texto").Read(); err == nil {
		t.Error("expected error for header-only file")
	}
}

func TestCSVSourceNoTextColumn(t *testing.T) {
	path := writeFile(t, "curto.csv", "ID,Status\n1,ok\n")
	if _, err := NewCSVSource(path, "").Read(); err == nil {
		t.Error("expected error when no column qualifies")
	}
}

func TestCSVSourceMissingFile(t *testing.T) {
	if _, err := NewCSVSource(filepath.Join(t.TempDir(), "nope.csv"), "").Read(); err == nil {
		t.Error("expected error for missing file")
	}
}

func TestTextSourceRead(t *testing.T) {
	path := writeFile(t, "registros.txt",
		"Primeira linha com conteúdo\n"+
			"\n"+
			"   \n"+
			"Segunda linha após vazias\n")

	recs, err := NewTextSource(path).Read()
	if err != nil {
		t.Fatalf("Read: %v", err)
	}
	if len(recs) != 2 {
		t.Fatalf("got %d records, want 2", len(recs))
	}
	if recs[0].ID != "1" || recs[1].ID != "2" {
		t.Errorf("record IDs %q %q", recs[0].ID, recs[1].ID)
	}
	if recs[1].Text != "Segunda linha após vazias" {
		t.Errorf("unexpected text %q", recs[1].Text)
	}
}

func TestTextSourceMissingFile(t *testing.T) {
	if _, err := NewTextSource(filepath.Join(t.TempDir(), "nope.txt")).Read(); err == nil {
		t.Error("expected error for missing file")
	}
}
