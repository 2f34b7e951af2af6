// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

// Package phone detects telephone numbers. A loose structural pattern finds
// candidates; grammar validation is delegated to libphonenumber
// (github.com/nyaruka/phonenumbers), so only numbers that parse as valid for
// the configured region are promoted to spans.
package phone

import (
	"regexp"

	"github.com/nyaruka/phonenumbers"

	"lgpd-scan/internal/detector"
	"lgpd-scan/internal/pii"
)

// DefaultRegion is the region hint used when none is configured.
const DefaultRegion = "BR"

// Validator implements detector.PatternValidator for phone numbers.
type Validator struct {
	regex  *regexp.Regexp
	region string
}

// NewValidator creates a phone validator for the default region.
func NewValidator() *Validator {
	return NewValidatorForRegion(DefaultRegion)
}

// NewValidatorForRegion creates a phone validator using region as the
// libphonenumber parse hint for numbers written without a country code.
func NewValidatorForRegion(region string) *Validator {
	if region == "" {
		region = DefaultRegion
	}
	return &Validator{
		// Optional two-digit area code, mobile 9-prefix or landline block
		regex:  regexp.MustCompile(`\b(?:\(?\d{2}\)?\s?)?(?:9\s?\d{4}|\d{4})[-.\s]?\d{4}\b`),
		region: region,
	}
}

// Name returns the check name.
func (v *Validator) Name() string { return string(pii.Phone) }

// Region returns the configured region hint.
func (v *Validator) Region() string { return v.region }

// DetectPatterns returns every candidate that libphonenumber accepts as a
// valid number for the configured region. Candidates that fail to parse are
// discarded silently; that is a rejection, not an error.
func (v *Validator) DetectPatterns(text string) []detector.Span {
	locs := v.regex.FindAllStringIndex(text, -1)
	if locs == nil {
		return nil
	}

	idx := detector.NewRuneIndex(text)
	var spans []detector.Span
	for _, loc := range locs {
		candidate := text[loc[0]:loc[1]]
		if !v.isValidNumber(candidate) {
			continue
		}
		spans = append(spans, idx.SpanAt(text, loc[0], loc[1], pii.Phone))
	}
	return spans
}

// isValidNumber asks libphonenumber whether candidate is a valid number for
// the region.
func (v *Validator) isValidNumber(candidate string) bool {
	num, err := phonenumbers.Parse(candidate, v.region)
	if err != nil {
		return false
	}
	return phonenumbers.IsValidNumber(num)
}

// Canonical returns the E.164 form of candidate, or "" when it does not
// parse as a valid number. Exposed for report consumers that want the
// normalized value before masking.
func (v *Validator) Canonical(candidate string) string {
	num, err := phonenumbers.Parse(candidate, v.region)
	if err != nil || !phonenumbers.IsValidNumber(num) {
		return ""
	}
	return phonenumbers.Format(num, phonenumbers.E164)
}
