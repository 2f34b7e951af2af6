// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

// Package datebirth detects dd/mm/yyyy dates in the 1900-2099 range.
// Without surrounding context every such date is treated as a potential
// birth date; the risk classifier weighs it accordingly.
package datebirth

import (
	"regexp"

	"lgpd-scan/internal/detector"
	"lgpd-scan/internal/pii"
)

// Validator implements detector.PatternValidator for birth dates.
type Validator struct {
	regex *regexp.Regexp
}

// NewValidator creates a birth date validator.
func NewValidator() *Validator {
	return &Validator{
		regex: regexp.MustCompile(`\b(?:0?[1-9]|[12][0-9]|3[01])[/\-](?:0?[1-9]|1[0-2])[/\-](?:19|20)\d{2}\b`),
	}
}

// Name returns the check name.
func (v *Validator) Name() string { return string(pii.DateBirth) }

// DetectPatterns returns every date-shaped match in text.
func (v *Validator) DetectPatterns(text string) []detector.Span {
	locs := v.regex.FindAllStringIndex(text, -1)
	if locs == nil {
		return nil
	}

	idx := detector.NewRuneIndex(text)
	spans := make([]detector.Span, 0, len(locs))
	for _, loc := range locs {
		spans = append(spans, idx.SpanAt(text, loc[0], loc[1], pii.DateBirth))
	}
	return spans
}
