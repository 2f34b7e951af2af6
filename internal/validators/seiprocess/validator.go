// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

// Package seiprocess detects SEI administrative process numbers
// (00000-000000/0000-00 and longer central-block variants).
package seiprocess

import (
	"regexp"

	"lgpd-scan/internal/detector"
	"lgpd-scan/internal/pii"
)

// Validator implements detector.PatternValidator for SEI process numbers.
type Validator struct {
	regex *regexp.Regexp
}

// NewValidator creates a SEI process validator.
func NewValidator() *Validator {
	return &Validator{
		regex: regexp.MustCompile(`\b\d{5}[-\s]?\d{6,}/?\d{4}[-\s]?\d{2}\b`),
	}
}

// Name returns the check name.
func (v *Validator) Name() string { return string(pii.SEIProcess) }

// DetectPatterns returns every SEI-process-shaped match in text.
func (v *Validator) DetectPatterns(text string) []detector.Span {
	locs := v.regex.FindAllStringIndex(text, -1)
	if locs == nil {
		return nil
	}

	idx := detector.NewRuneIndex(text)
	spans := make([]detector.Span, 0, len(locs))
	for _, loc := range locs {
		spans = append(spans, idx.SpanAt(text, loc[0], loc[1], pii.SEIProcess))
	}
	return spans
}
