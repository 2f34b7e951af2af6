// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

// Package rg detects Brazilian RG identity numbers. RG has no national
// checksum, so detection is structural only.
package rg

import (
	"regexp"

	"lgpd-scan/internal/detector"
	"lgpd-scan/internal/pii"
)

// Validator implements detector.PatternValidator for RG numbers.
type Validator struct {
	regex *regexp.Regexp
}

// NewValidator creates an RG validator.
func NewValidator() *Validator {
	return &Validator{
		// 00.000.000-0, final position may be the X verification character
		regex: regexp.MustCompile(`\b\d{1,2}\.?\d{3}\.?\d{3}[-\s]?[0-9xX]\b`),
	}
}

// Name returns the check name.
func (v *Validator) Name() string { return string(pii.RG) }

// DetectPatterns returns every RG-shaped match in text.
func (v *Validator) DetectPatterns(text string) []detector.Span {
	locs := v.regex.FindAllStringIndex(text, -1)
	if locs == nil {
		return nil
	}

	idx := detector.NewRuneIndex(text)
	spans := make([]detector.Span, 0, len(locs))
	for _, loc := range locs {
		spans = append(spans, idx.SpanAt(text, loc[0], loc[1], pii.RG))
	}
	return spans
}
