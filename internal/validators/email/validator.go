// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

// Package email detects e-mail addresses with the standard local@domain
// structural pattern.
package email

import (
	"regexp"

	"lgpd-scan/internal/detector"
	"lgpd-scan/internal/pii"
)

// Validator implements detector.PatternValidator for e-mail addresses.
type Validator struct {
	regex *regexp.Regexp
}

// NewValidator creates an e-mail validator.
func NewValidator() *Validator {
	return &Validator{
		regex: regexp.MustCompile(`\b[A-Za-z0-9._%+\-]+@[A-Za-z0-9.\-]+\.[A-Za-z]{2,}\b`),
	}
}

// Name returns the check name.
func (v *Validator) Name() string { return string(pii.Email) }

// DetectPatterns returns every e-mail address in text.
func (v *Validator) DetectPatterns(text string) []detector.Span {
	locs := v.regex.FindAllStringIndex(text, -1)
	if locs == nil {
		return nil
	}

	idx := detector.NewRuneIndex(text)
	spans := make([]detector.Span, 0, len(locs))
	for _, loc := range locs {
		spans = append(spans, idx.SpanAt(text, loc[0], loc[1], pii.Email))
	}
	return spans
}
