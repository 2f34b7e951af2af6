// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

// Package validators builds and runs the pattern validator set. Each PII
// type lives in its own subpackage; this package wires them into a registry
// that produces one overlap-free candidate list per record.
package validators

import (
	"strings"

	"lgpd-scan/internal/detector"
	"lgpd-scan/internal/pii"
	"lgpd-scan/internal/resolver"
	"lgpd-scan/internal/validators/cep"
	"lgpd-scan/internal/validators/cnpj"
	"lgpd-scan/internal/validators/cpf"
	"lgpd-scan/internal/validators/creditcard"
	"lgpd-scan/internal/validators/datebirth"
	"lgpd-scan/internal/validators/email"
	"lgpd-scan/internal/validators/phone"
	"lgpd-scan/internal/validators/rg"
	"lgpd-scan/internal/validators/seiprocess"
)

// Options configures validator construction.
type Options struct {
	// PhoneRegion is the libphonenumber region hint, default BR.
	PhoneRegion string
}

// Registry holds the enabled pattern validators for a scan.
type Registry struct {
	validators []detector.PatternValidator
}

// ParseChecksToRun converts a comma-separated check list into an
// enabled-checks map. Empty input or "all" enables every check.
func ParseChecksToRun(checks string) map[string]bool {
	result := make(map[string]bool, len(pii.All()))
	for _, t := range pii.All() {
		if t == pii.PersonName || t == pii.Location {
			continue // model-based, not pattern checks
		}
		result[string(t)] = false
	}

	checks = strings.TrimSpace(checks)
	if checks == "" || strings.EqualFold(checks, "all") {
		for key := range result {
			result[key] = true
		}
		return result
	}

	for _, check := range strings.Split(checks, ",") {
		name := strings.ToUpper(strings.TrimSpace(check))
		if _, exists := result[name]; exists {
			result[name] = true
		}
	}
	return result
}

// NewRegistry builds the validator set for the enabled checks. A nil
// enabled map enables everything.
func NewRegistry(enabled map[string]bool, opts Options) *Registry {
	all := []detector.PatternValidator{
		cpf.NewValidator(),
		cnpj.NewValidator(),
		creditcard.NewValidator(),
		seiprocess.NewValidator(),
		rg.NewValidator(),
		cep.NewValidator(),
		phone.NewValidatorForRegion(opts.PhoneRegion),
		email.NewValidator(),
		datebirth.NewValidator(),
	}

	r := &Registry{}
	for _, v := range all {
		if enabled == nil || enabled[v.Name()] {
			r.validators = append(r.validators, v)
		}
	}
	return r
}

// Names returns the enabled check names in priority order.
func (r *Registry) Names() []string {
	names := make([]string, 0, len(r.validators))
	for _, v := range r.validators {
		names = append(names, v.Name())
	}
	return names
}

// DetectPatterns runs every enabled validator over text and returns the
// union of their spans with intra-registry overlap already resolved
// (longest match at an offset wins, then the fixed type priority). Never
// fails: malformed or empty input yields no spans.
func (r *Registry) DetectPatterns(text string) []detector.Span {
	if text == "" {
		return nil
	}

	var candidates []detector.Span
	for _, v := range r.validators {
		candidates = append(candidates, v.DetectPatterns(text)...)
	}
	return resolver.Resolve(candidates)
}
