// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

// Package cnpj detects Brazilian CNPJ numbers (Cadastro Nacional de Pessoa
// Jurídica) using the 14-digit shape and the two mod-11 check digits with
// CNPJ's weight vectors.
package cnpj

import (
	"regexp"

	"lgpd-scan/internal/detector"
	"lgpd-scan/internal/pii"
)

// Weight vectors for the first and second check digit. The second vector
// extends the first to cover the first check digit itself.
var (
	weightsFirst  = []int{5, 4, 3, 2, 9, 8, 7, 6, 5, 4, 3, 2}
	weightsSecond = []int{6, 5, 4, 3, 2, 9, 8, 7, 6, 5, 4, 3, 2}
)

// Validator implements detector.PatternValidator for CNPJ numbers.
type Validator struct {
	regex *regexp.Regexp
}

// NewValidator creates a CNPJ validator with the standard shape pattern.
func NewValidator() *Validator {
	return &Validator{
		// 00.000.000/0000-00 with optional separators
		regex: regexp.MustCompile(`\b\d{2}\.?\d{3}\.?\d{3}/?\d{4}[-\s]?\d{2}\b`),
	}
}

// Name returns the check name.
func (v *Validator) Name() string { return string(pii.CNPJ) }

// DetectPatterns returns every check-digit-valid CNPJ in text.
func (v *Validator) DetectPatterns(text string) []detector.Span {
	locs := v.regex.FindAllStringIndex(text, -1)
	if locs == nil {
		return nil
	}

	idx := detector.NewRuneIndex(text)
	var spans []detector.Span
	for _, loc := range locs {
		if !IsValid(text[loc[0]:loc[1]]) {
			continue
		}
		spans = append(spans, idx.SpanAt(text, loc[0], loc[1], pii.CNPJ))
	}
	return spans
}

// IsValid reports whether candidate is a check-digit-valid CNPJ.
func IsValid(candidate string) bool {
	digits := extractDigits(candidate)
	if len(digits) != 14 {
		return false
	}
	if allEqual(digits) {
		return false
	}
	return digits[12] == checkDigit(digits[:12], weightsFirst) &&
		digits[13] == checkDigit(digits[:13], weightsSecond)
}

// checkDigit applies the weighted mod-11 scheme; a result of 10 or 11 is
// normalized to 0, same as CPF.
func checkDigit(ds []int, weights []int) int {
	sum := 0
	for i, d := range ds {
		sum += d * weights[i]
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
