// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

// Package text renders a colored, human-readable report.
package text

import (
	"fmt"
	"strings"

	"github.com/fatih/color"

	"lgpd-scan/internal/formatters"
	"lgpd-scan/internal/report"
	"lgpd-scan/internal/risk"
)

// Formatter implements human-readable text output.
type Formatter struct {
	levelColors map[risk.Level]*color.Color
}

func init() {
	formatters.Register(NewFormatter())
}

// NewFormatter creates a text formatter with the risk level color map.
func NewFormatter() *Formatter {
	return &Formatter{
		levelColors: map[risk.Level]*color.Color{
			risk.Critico: color.New(color.FgRed, color.Bold),
			risk.Alto:    color.New(color.FgRed),
			risk.Medio:   color.New(color.FgYellow),
			risk.Baixo:   color.New(color.FgCyan),
			risk.Minimo:  color.New(color.FgGreen),
		},
	}
}

func (f *Formatter) Name() string { return "text" }

func (f *Formatter) Description() string {
	return "Human-readable report with colors and tables"
}

func (f *Formatter) FileExtension() string { return ".txt" }

// Format renders the report.
func (f *Formatter) Format(r *report.ProcessReport, options formatters.Options) (string, error) {
	if options.NoColor {
		color.NoColor = true
	}

	var b strings.Builder
	bold := color.New(color.Bold)

	b.WriteString(bold.Sprintf("LGPD PII Scan Report\n"))
	b.WriteString(fmt.Sprintf("Process:  %s\n", r.ProcessID))
	b.WriteString(fmt.Sprintf("File:     %s (%s)\n", r.FileInfo.Filename, r.FileInfo.FileType))
	b.WriteString(fmt.Sprintf("Records:  %d total, %d with PII (%.2f%%)\n",
		r.FileInfo.TotalRecords, r.Stats.RecordsWithPii, r.Stats.PiiRatePercentage))
	b.WriteString(fmt.Sprintf("Duration: %.2fs (%.2f records/s)\n",
		r.Stats.ProcessingTimeSeconds, r.Stats.RecordsPerSecond))
	if r.Stats.PartialRecords > 0 {
		b.WriteString(color.YellowString("Partial:  %d records processed without entity recognition\n",
			r.Stats.PartialRecords))
	}
	if r.Stats.SuppressedFindings > 0 {
		b.WriteString(fmt.Sprintf("Suppressed findings: %d\n", r.Stats.SuppressedFindings))
	}
	if r.Incomplete {
		b.WriteString(color.YellowString("NOTE: report covers a truncated record subset\n"))
	}
	b.WriteString("\n")

	if len(r.Breakdown) == 0 {
		b.WriteString(color.GreenString("No PII detected.\n"))
	} else {
		b.WriteString(bold.Sprintf("%-13s %-38s %8s %8s\n", "TYPE", "DESCRIPTION", "COUNT", "PCT"))
		for _, entry := range r.Breakdown {
			b.WriteString(fmt.Sprintf("%-13s %-38s %8d %7.2f%%\n",
				entry.Type, entry.Description, entry.Count, entry.Percentage))
		}
	}
	b.WriteString("\n")

	levelColor, ok := f.levelColors[r.Risk.Level]
	if !ok {
		levelColor = color.New(color.FgWhite)
	}
	b.WriteString(fmt.Sprintf("Risk level: %s\n", levelColor.Sprint(r.Risk.Level)))
	b.WriteString(fmt.Sprintf("%s\n", r.Risk.Description))

	if options.Verbose {
		b.WriteString("\n")
		b.WriteString(bold.Sprint("Recommendations:\n"))
		for _, rec := range r.Risk.Recommendations {
			b.WriteString(fmt.Sprintf("  - %s\n", rec))
		}
		b.WriteString("\n")
		b.WriteString(fmt.Sprintf("Retention: %s\n", r.Compliance.RetentionPolicy))
	}

	return b.String(), nil
}
