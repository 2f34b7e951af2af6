// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

// Package cep detects Brazilian postal codes (CEP). Structural match only;
// a CEP inside a longer SEI process number loses to it at resolution time.
package cep

import (
	"regexp"

	"lgpd-scan/internal/detector"
	"lgpd-scan/internal/pii"
)

// Validator implements detector.PatternValidator for CEP codes.
type Validator struct {
	regex *regexp.Regexp
}

// NewValidator creates a CEP validator.
func NewValidator() *Validator {
	return &Validator{
		regex: regexp.MustCompile(`\b\d{5}[-\s]?\d{3}\b`),
	}
}

// Name returns the check name.
func (v *Validator) Name() string { return string(pii.CEP) }

// DetectPatterns returns every CEP-shaped match in text.
func (v *Validator) DetectPatterns(text string) []detector.Span {
	locs := v.regex.FindAllStringIndex(text, -1)
	if locs == nil {
		return nil
	}

	idx := detector.NewRuneIndex(text)
	spans := make([]detector.Span, 0, len(locs))
	for _, loc := range locs {
		spans = append(spans, idx.SpanAt(text, loc[0], loc[1], pii.CEP))
	}
	return spans
}
