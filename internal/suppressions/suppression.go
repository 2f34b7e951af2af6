// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

// Package suppressions filters known false positives out of resolved spans
// before anonymization. Rules live in a YAML file an operator maintains:
// a rule suppresses either one exact finding (by hash) or every finding of
// a type whose value matches a regex (test CPFs, sample card numbers).
package suppressions

import (
	"crypto/sha256"
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"time"

	"gopkg.in/yaml.v3"

	"lgpd-scan/internal/detector"
)

// Rule is a single suppression rule.
type Rule struct {
	ID      string `yaml:"id"`
	Reason  string `yaml:"reason"`
	Enabled bool   `yaml:"enabled"`

	// Hash suppresses one exact finding, see HashFinding.
	Hash string `yaml:"hash,omitempty"`

	// Type plus ValuePattern suppress every finding of that type whose
	// masked value matches the pattern.
	Type         string `yaml:"type,omitempty"`
	ValuePattern string `yaml:"value_pattern,omitempty"`

	CreatedAt time.Time  `yaml:"created_at,omitempty"`
	ExpiresAt *time.Time `yaml:"expires_at,omitempty"`

	compiled *regexp.Regexp
}

// Config is the suppression file layout.
type Config struct {
	Version string `yaml:"version"`
	Rules   []Rule `yaml:"rules"`
}

// Manager evaluates suppression rules against findings.
type Manager struct {
	rules []Rule
}

// NewManager loads rules from path. A missing or unreadable file yields an
// empty manager: scans must not fail because the suppression file is gone.
func NewManager(path string) *Manager {
	m := &Manager{}
	if path == "" {
		return m
	}

	data, err := os.ReadFile(filepath.Clean(path))
	if err != nil {
		return m
	}
	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return m
	}

	for _, rule := range cfg.Rules {
		if rule.ValuePattern != "" {
			compiled, err := regexp.Compile(rule.ValuePattern)
			if err != nil {
				continue // bad pattern disables only that rule
			}
			rule.compiled = compiled
		}
		m.rules = append(m.rules, rule)
	}
	return m
}

// NewManagerFromRules builds a manager directly, for tests and embedders.
func NewManagerFromRules(rules []Rule) *Manager {
	m := &Manager{}
	for _, rule := range rules {
		if rule.ValuePattern != "" {
			compiled, err := regexp.Compile(rule.ValuePattern)
			if err != nil {
				continue
			}
			rule.compiled = compiled
		}
		m.rules = append(m.rules, rule)
	}
	return m
}

// Len returns the number of loaded rules.
func (m *Manager) Len() int {
	if m == nil {
		return 0
	}
	return len(m.rules)
}

// IsSuppressed reports whether the span (found in record recordID) matches
// an active rule, and which rule matched.
func (m *Manager) IsSuppressed(span detector.Span, recordID string) (bool, *Rule) {
	if m == nil || len(m.rules) == 0 {
		return false, nil
	}

	now := time.Now()
	findingHash := HashFinding(span, recordID)

	for i := range m.rules {
		rule := &m.rules[i]
		if !rule.Enabled {
			continue
		}
		if rule.ExpiresAt != nil && now.After(*rule.ExpiresAt) {
			continue
		}

		if rule.Hash != "" && rule.Hash == findingHash {
			return true, rule
		}
		if rule.compiled != nil &&
			(rule.Type == "" || rule.Type == string(span.Type)) &&
			rule.compiled.MatchString(span.Text) {
			return true, rule
		}
	}
	return false, nil
}

// Filter splits spans into kept and suppressed-count. Order is preserved.
func (m *Manager) Filter(spans []detector.Span, recordID string) ([]detector.Span, int) {
	if m.Len() == 0 {
		return spans, 0
	}
	kept := spans[:0:0]
	suppressed := 0
	for _, s := range spans {
		if ok, _ := m.IsSuppressed(s, recordID); ok {
			suppressed++
			continue
		}
		kept = append(kept, s)
	}
	return kept, suppressed
}

// HashFinding produces the stable identity of one finding: type, record and
// a digest of the matched text. The raw value never appears in the rule
// file.
func HashFinding(span detector.Span, recordID string) string {
	composite := fmt.Sprintf("%s|%s|%x", span.Type, recordID, sha256.Sum256([]byte(span.Text)))
	return fmt.Sprintf("%x", sha256.Sum256([]byte(composite)))
}

// NewRuleForFinding creates an exact-match rule for a finding, the shape
// operators append to the suppression file.
func NewRuleForFinding(span detector.Span, recordID, reason string) Rule {
	return Rule{
		ID:        fmt.Sprintf("sup-%s", HashFinding(span, recordID)[:12]),
		Reason:    reason,
		Enabled:   true,
		Hash:      HashFinding(span, recordID),
		Type:      string(span.Type),
		CreatedAt: time.Now(),
	}
}

// Save writes rules to path in the suppression file layout.
func Save(path string, rules []Rule) error {
	data, err := yaml.Marshal(Config{Version: "1.0", Rules: rules})
	if err != nil {
		return fmt.Errorf("marshal suppression rules: %w", err)
	}
	return os.WriteFile(path, data, 0600)
}
