// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

// Package creditcard detects payment card numbers. Candidates must match
// the 16-digit grouped shape and pass the Luhn checksum.
package creditcard

import (
	"regexp"

	"lgpd-scan/internal/detector"
	"lgpd-scan/internal/pii"
)

// Validator implements detector.PatternValidator for credit card numbers.
type Validator struct {
	regex *regexp.Regexp
}

// NewValidator creates a credit card validator.
func NewValidator() *Validator {
	return &Validator{
		// Four groups of four digits, separated by dash/space or nothing
		regex: regexp.MustCompile(`\b(?:\d{4}[-\s]?){3}\d{4}\b`),
	}
}

// Name returns the check name.
func (v *Validator) Name() string { return string(pii.CreditCard) }

// DetectPatterns returns every Luhn-valid card number in text.
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
		spans = append(spans, idx.SpanAt(text, loc[0], loc[1], pii.CreditCard))
	}
	return spans
}

// IsValid reports whether candidate passes the Luhn checksum. Separators are
// ignored. All-equal digit runs are rejected before the checksum; some of
// them happen to be Luhn-valid but are never real card numbers.
func IsValid(candidate string) bool {
	digits := extractDigits(candidate)
	if len(digits) != 16 {
		return false
	}
	if allEqual(digits) {
		return false
	}
	return luhnCheck(digits)
}

// luhnCheck runs the standard Luhn algorithm: doubling every second digit
// from the right, subtracting 9 from doubles above 9, total must be
// divisible by 10.
func luhnCheck(digits []int) bool {
	sum := 0
	double := false
	for i := len(digits) - 1; i >= 0; i-- {
		d := digits[i]
		if double {
			d *= 2
			if d > 9 {
				d -= 9
			}
		}
		sum += d
		double = !double
	}
	return sum%10 == 0
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
