// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package suppressions

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"lgpd-scan/internal/detector"
	"lgpd-scan/internal/pii"
)

func emailSpan(text string) detector.Span {
	return detector.Span{Start: 0, End: len([]rune(text)), Type: pii.Email, Source: detector.SourcePattern, Text: text}
}

func TestHashFindingStable(t *testing.T) {
	s := emailSpan("joao@empresa.com")

	h1 := HashFinding(s, "42")
	h2 := HashFinding(s, "42")
	if h1 != h2 {
		t.Error("hash of identical finding differs between calls")
	}
	if h1 == HashFinding(s, "43") {
		t.Error("record ID does not contribute to the hash")
	}
	other := s
	other.Text = "maria@empresa.com"
	if h1 == HashFinding(other, "42") {
		t.Error("matched text does not contribute to the hash")
	}
}

func TestIsSuppressedByHash(t *testing.T) {
	s := emailSpan("joao@empresa.com")
	rule := NewRuleForFinding(s, "42", "sample data")
	m := NewManagerFromRules([]Rule{rule})

	if ok, matched := m.IsSuppressed(s, "42"); !ok || matched.ID != rule.ID {
		t.Errorf("expected hash rule to match, got %v %v", ok, matched)
	}
	// Same value in another record has a different hash.
	if ok, _ := m.IsSuppressed(s, "43"); ok {
		t.Error("hash rule matched a different record")
	}
}

func TestIsSuppressedByValuePattern(t *testing.T) {
	m := NewManagerFromRules([]Rule{{
		ID:           "s1",
		Enabled:      true,
		Type:         "EMAIL",
		ValuePattern: `.*@orgao\.gov\.br`,
	}})

	if ok, _ := m.IsSuppressed(emailSpan("ouvidoria@orgao.gov.br"), "1"); !ok {
		t.Error("expected pattern rule to match institutional address")
	}
	if ok, _ := m.IsSuppressed(emailSpan("joao@empresa.com"), "1"); ok {
		t.Error("pattern rule matched an unrelated address")
	}

	// Type-restricted rules never match other types.
	cpfSpan := detector.Span{Type: pii.CPF, Text: "ouvidoria@orgao.gov.br"}
	if ok, _ := m.IsSuppressed(cpfSpan, "1"); ok {
		t.Error("EMAIL rule matched a CPF span")
	}
}

func TestDisabledAndExpiredRulesIgnored(t *testing.T) {
	past := time.Now().Add(-time.Hour)
	m := NewManagerFromRules([]Rule{
		{ID: "off", Enabled: false, ValuePattern: `.*`},
		{ID: "old", Enabled: true, ValuePattern: `.*`, ExpiresAt: &past},
	})

	if ok, _ := m.IsSuppressed(emailSpan("joao@empresa.com"), "1"); ok {
		t.Error("disabled or expired rule suppressed a finding")
	}
}

func TestFilter(t *testing.T) {
	m := NewManagerFromRules([]Rule{{
		ID: "s1", Enabled: true, ValuePattern: `ouvidoria@.*`,
	}})

	spans := []detector.Span{
		emailSpan("ouvidoria@orgao.gov.br"),
		emailSpan("joao@empresa.com"),
	}
	kept, suppressed := m.Filter(spans, "1")
	if suppressed != 1 || len(kept) != 1 {
		t.Fatalf("Filter kept %d suppressed %d", len(kept), suppressed)
	}
	if kept[0].Text != "joao@empresa.com" {
		t.Errorf("wrong span kept: %q", kept[0].Text)
	}
}

func TestFilterNilManager(t *testing.T) {
	var m *Manager
	spans := []detector.Span{emailSpan("joao@empresa.com")}

	kept, suppressed := m.Filter(spans, "1")
	if suppressed != 0 || len(kept) != 1 {
		t.Errorf("nil manager altered spans: kept %d suppressed %d", len(kept), suppressed)
	}
}

func TestNewManagerMissingFile(t *testing.T) {
	m := NewManager(filepath.Join(t.TempDir(), "nope.yaml"))
	if m.Len() != 0 {
		t.Errorf("missing file produced %d rules", m.Len())
	}
}

func TestSaveAndLoadRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "suppressions.yaml")
	rules := []Rule{
		NewRuleForFinding(emailSpan("teste@exemplo.com"), "1", "dados de teste"),
		{ID: "s2", Reason: "CPF de homologação", Enabled: true, Type: "CPF", ValuePattern: `111\.444\.777-35`},
	}

	if err := Save(path, rules); err != nil {
		t.Fatalf("Save: %v", err)
	}
	if _, err := os.Stat(path); err != nil {
		t.Fatalf("saved file missing: %v", err)
	}

	m := NewManager(path)
	if m.Len() != 2 {
		t.Fatalf("loaded %d rules, want 2", m.Len())
	}
	cpf := detector.Span{Type: pii.CPF, Text: "111.444.777-35"}
	if ok, _ := m.IsSuppressed(cpf, "9"); !ok {
		t.Error("reloaded pattern rule did not match")
	}
}

func TestBadPatternDisablesOnlyThatRule(t *testing.T) {
	m := NewManagerFromRules([]Rule{
		{ID: "bad", Enabled: true, ValuePattern: `([`},
		{ID: "good", Enabled: true, ValuePattern: `ouvidoria@.*`},
	})

	if m.Len() != 1 {
		t.Fatalf("expected 1 usable rule, got %d", m.Len())
	}
	if ok, _ := m.IsSuppressed(emailSpan("ouvidoria@orgao.gov.br"), "1"); !ok {
		t.Error("valid rule did not survive a bad sibling")
	}
}
