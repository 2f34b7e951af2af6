// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

// Package detector defines the data model shared by every stage of the
// pipeline: candidate spans, records and per-record results. All offsets are
// rune offsets into the record text, zero-based with an exclusive end, so
// accented Portuguese text masks one 'x' per visible character.
package detector

import (
	"fmt"

	"lgpd-scan/internal/pii"
)

// Source identifies which detection path produced a span.
type Source int

const (
	// SourcePattern marks spans produced by the validator registry
	// (regex shape plus checksum/format validation).
	SourcePattern Source = iota
	// SourceModel marks spans produced by the external entity recognizer.
	SourceModel
)

func (s Source) String() string {
	if s == SourceModel {
		return "model"
	}
	return "pattern"
}

// Span is one contiguous range of record text identified as a single PII
// type. Start/End are rune offsets, 0 <= Start < End <= rune length.
type Span struct {
	Start  int
	End    int
	Type   pii.Type
	Source Source
	Text   string
}

// Len returns the span length in runes.
func (s Span) Len() int { return s.End - s.Start }

// Overlaps reports whether s and other share at least one rune. Adjacent
// spans (s.End == other.Start) do not overlap.
func (s Span) Overlaps(other Span) bool {
	return s.Start < other.End && other.Start < s.End
}

// Validate checks the span invariant against a text of runeLen runes.
func (s Span) Validate(runeLen int) error {
	if s.Start < 0 || s.End <= s.Start || s.End > runeLen {
		return fmt.Errorf("invalid span offsets [%d,%d) for text of %d runes", s.Start, s.End, runeLen)
	}
	return nil
}

// PatternValidator is the contract every per-type validator package
// implements. DetectPatterns never fails: malformed input simply yields no
// spans.
type PatternValidator interface {
	// Name returns the check name, e.g. "CPF".
	Name() string
	// DetectPatterns returns all format-validated candidate spans in text,
	// with Source == SourcePattern.
	DetectPatterns(text string) []Span
}

// Record is one unit of input text with a caller-supplied identifier that is
// passed through to the result untouched.
type Record struct {
	ID   string
	Text string
}

// RecordResult is the immutable outcome of processing one record. Partial is
// set when a collaborator (entity recognizer, phone grammar) failed for this
// record; pattern-based findings are still present in that case so callers
// can tell "no PII found" from "detector unavailable".
type RecordResult struct {
	RecordID       string           `json:"record_id"`
	OriginalLength int              `json:"original_length"`
	AnonymizedText string           `json:"anonymized_text"`
	PiiCounts      map[pii.Type]int `json:"pii_counts"`
	HasPII         bool             `json:"has_pii"`
	Partial        bool             `json:"partial,omitempty"`
	DetectorErrors []string         `json:"detector_errors,omitempty"`
	Suppressed     int              `json:"suppressed,omitempty"`
}

// TotalDetections returns the sum of all per-type counts.
func (r RecordResult) TotalDetections() int {
	total := 0
	for _, c := range r.PiiCounts {
		total += c
	}
	return total
}

// RuneIndex maps byte offsets of a string to rune offsets. Regex matching
// yields byte offsets; the rest of the pipeline works in runes, so every
// validator converts through one of these (built once per record).
type RuneIndex struct {
	byteToRune map[int]int
	runeLen    int
}

// NewRuneIndex precomputes the byte-to-rune offset table for text.
func NewRuneIndex(text string) *RuneIndex {
	idx := &RuneIndex{byteToRune: make(map[int]int, len(text)+1)}
	r := 0
	for b := range text {
		idx.byteToRune[b] = r
		r++
	}
	idx.byteToRune[len(text)] = r
	idx.runeLen = r
	return idx
}

// RuneLen returns the number of runes in the indexed text.
func (ri *RuneIndex) RuneLen() int { return ri.runeLen }

// ToRune converts a byte offset (which must fall on a rune boundary, as all
// regexp match offsets do) to a rune offset.
func (ri *RuneIndex) ToRune(byteOff int) int {
	return ri.byteToRune[byteOff]
}

// SpanAt builds a pattern span from regexp byte offsets.
func (ri *RuneIndex) SpanAt(text string, byteStart, byteEnd int, t pii.Type) Span {
	return Span{
		Start:  ri.ToRune(byteStart),
		End:    ri.ToRune(byteEnd),
		Type:   t,
		Source: SourcePattern,
		Text:   text[byteStart:byteEnd],
	}
}
