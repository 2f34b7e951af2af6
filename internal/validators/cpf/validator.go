// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

// Package cpf detects Brazilian CPF numbers (Cadastro de Pessoa Física).
// A candidate must match the 11-digit shape and pass both mod-11 check
// digits before it is promoted to a span.
package cpf

import (
	"regexp"

	"lgpd-scan/internal/detector"
	"lgpd-scan/internal/pii"
)

// Validator implements detector.PatternValidator for CPF numbers.
type Validator struct {
	regex *regexp.Regexp
}

// NewValidator creates a CPF validator with the standard shape pattern.
func NewValidator() *Validator {
	return &Validator{
		// 000.000.000-00 with optional separators, e.g. 12345678909
		regex: regexp.MustCompile(`\b\d{3}\.?\d{3}\.?\d{3}[-\s]?\d{2}\b`),
	}
}

// Name returns the check name.
func (v *Validator) Name() string { return string(pii.CPF) }

// DetectPatterns returns every check-digit-valid CPF in text.
func (v *Validator) DetectPatterns(text string) []detector.Span {
	locs := v.regex.FindAllStringIndex(text, -1)
	if locs == nil {
		return nil
	}

	idx := detector.NewRuneIndex(text)
	var spans []detector.Span
	for _, loc := range locs {
		candidate := text[loc[0]:loc[1]]
		if !IsValid(candidate) {
			continue
		}
		spans = append(spans, idx.SpanAt(text, loc[0], loc[1], pii.CPF))
	}
	return spans
}

// IsValid reports whether candidate is a check-digit-valid CPF. Separators
// are ignored; known invalid sequences (all digits equal) are rejected even
// though their check digits compute correctly.
func IsValid(candidate string) bool {
	digits := extractDigits(candidate)
	if len(digits) != 11 {
		return false
	}
	if allEqual(digits) {
		return false
	}
	return digits[9] == checkDigit(digits[:9], 10) &&
		digits[10] == checkDigit(digits[:10], 11)
}

// checkDigit computes one CPF check digit over ds with descending weights
// starting at startWeight. The result 11 - (sum mod 11) is normalized to 0
// when it reaches 10 or 11.
func checkDigit(ds []int, startWeight int) int {
	sum := 0
	w := startWeight
	for _, d := range ds {
		sum += d * w
		w--
	}
	d := 11 - sum%11
	if d >= 10 {
		return 0
	}
	return d
}

func extractDigits(s string) []int {
	digits := make([]int, 0, len(s))
	for _, r := range s {
		if r >= '0' && r <= '9' {
			digits = append(digits, int(r-'0'))
		}
	}
	return digits
}

func allEqual(ds []int) bool {
	for _, d := range ds[1:] {
		if d != ds[0] {
			return false
		}
	}
	return true
}
