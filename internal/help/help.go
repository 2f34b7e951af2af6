// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

// Package help prints the CLI usage text with grouped flags and per-check
// descriptions.
package help

import (
	"fmt"
	"io"

	"github.com/fatih/color"

	"lgpd-scan/internal/pii"
)

// PrintUsage writes the grouped usage text to w.
func PrintUsage(w io.Writer, noColor bool) {
	if noColor {
		color.NoColor = true
	}
	title := color.New(color.FgWhite, color.Bold)
	section := color.New(color.FgCyan, color.Bold)

	fmt.Fprintln(w, title.Sprint("lgpd-scan - PII detection and anonymization for LGPD compliance"))
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Usage: lgpd-scan -file <path> [options]")
	fmt.Fprintln(w)

	fmt.Fprintln(w, section.Sprint("Input:"))
	fmt.Fprintln(w, "  -file string        File to scan (.csv, .txt, .xlsx)")
	fmt.Fprintln(w, "  -column string      Text column name for tabular files (default: auto-detect)")
	fmt.Fprintln(w)

	fmt.Fprintln(w, section.Sprint("Detection:"))
	fmt.Fprintln(w, "  -checks string      Comma-separated checks to run, or 'all' (default)")
	fmt.Fprintln(w, "  -region string      Phone number region hint (default BR)")
	fmt.Fprintln(w, "  -threshold int      EMAIL/PHONE volume that raises risk to ALTO (default 10)")
	fmt.Fprintln(w, "  -recognizer string  Entity recognizer sidecar URL (default: disabled)")
	fmt.Fprintln(w, "  -suppressions string  Suppression rule file for known false positives")
	fmt.Fprintln(w)

	fmt.Fprintln(w, section.Sprint("Output:"))
	fmt.Fprintln(w, "  -format string      Output format: text, json, csv (default text)")
	fmt.Fprintln(w, "  -output string      Write the report to a file instead of stdout")
	fmt.Fprintln(w, "  -store string       Persist report and anonymized records to a bbolt database")
	fmt.Fprintln(w, "  -verbose            Include recommendations and compliance details")
	fmt.Fprintln(w, "  -no-color           Disable colored output")
	fmt.Fprintln(w)

	fmt.Fprintln(w, section.Sprint("Execution:"))
	fmt.Fprintln(w, "  -workers int        Concurrent record workers (default: CPU count)")
	fmt.Fprintln(w, "  -config string      Config file path (default: ./lgpd-scan.yaml)")
	fmt.Fprintln(w, "  -profile string     Named profile from the config file")
	fmt.Fprintln(w, "  -debug              Emit JSON timing lines to stderr")
	fmt.Fprintln(w, "  -version            Print version information")
	fmt.Fprintln(w)

	fmt.Fprintln(w, section.Sprint("Checks:"))
	for _, t := range pii.All() {
		fmt.Fprintf(w, "  %-13s %s\n", t, pii.Description(t))
	}
}
