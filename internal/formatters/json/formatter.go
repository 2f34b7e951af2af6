// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

// Package json renders reports as indented JSON.
package json

import (
	"encoding/json"
	"fmt"

	"lgpd-scan/internal/formatters"
	"lgpd-scan/internal/report"
)

// Formatter implements JSON output.
type Formatter struct{}

func init() {
	formatters.Register(&Formatter{})
}

func (f *Formatter) Name() string { return "json" }

func (f *Formatter) Description() string {
	return "Full report as indented JSON for downstream tooling"
}

func (f *Formatter) FileExtension() string { return ".json" }

// Format renders the report.
func (f *Formatter) Format(r *report.ProcessReport, _ formatters.Options) (string, error) {
	data, err := json.MarshalIndent(r, "", "  ")
	if err != nil {
		return "", fmt.Errorf("encode report: %w", err)
	}
	return string(data), nil
}
