// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

// Package anonymizer renders the masked copy of a record and tallies
// detections by type.
//
// Masking is structure-preserving: alphanumeric runes inside an accepted
// span become 'x', everything else (dots, dashes, slashes, parentheses,
// spaces, '@') stays, so a masked CPF keeps its xxx.xxx.xxx-xx grid. That
// trades total obfuscation for downstream format-sensitive tooling.
package anonymizer

import (
	"unicode"

	"lgpd-scan/internal/detector"
	"lgpd-scan/internal/pii"
)

// MaskRune is the replacement for identifying characters.
const MaskRune = 'x'

// Anonymize masks the resolved spans in text and returns the anonymized
// rendering plus per-type span counts. Spans must be non-overlapping and
// sorted by start (the resolver output); offsets are rune offsets. Text
// outside every span is copied verbatim.
func Anonymize(text string, spans []detector.Span) (string, map[pii.Type]int) {
	counts := make(map[pii.Type]int)
	if text == "" {
		return text, counts
	}

	runes := []rune(text)
	for _, s := range spans {
		if s.Start < 0 || s.End > len(runes) || s.Start >= s.End {
			continue // defends the invariant; resolver output never trips this
		}
		counts[s.Type]++
		for i := s.Start; i < s.End; i++ {
			if isIdentifying(runes[i]) {
				runes[i] = MaskRune
			}
		}
	}
	return string(runes), counts
}

// HasPII reports whether any type was counted.
func HasPII(counts map[pii.Type]int) bool {
	for _, c := range counts {
		if c > 0 {
			return true
		}
	}
	return false
}

// isIdentifying reports whether a rune carries identifying content.
// Separators and punctuation belong to the value's format and survive.
func isIdentifying(r rune) bool {
	return unicode.IsLetter(r) || unicode.IsDigit(r)
}
