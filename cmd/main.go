// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"
	"golang.org/x/term"

	"lgpd-scan/internal/config"
	"lgpd-scan/internal/detector"
	"lgpd-scan/internal/engine"
	"lgpd-scan/internal/formatters"
	_ "lgpd-scan/internal/formatters/csv"
	_ "lgpd-scan/internal/formatters/json"
	_ "lgpd-scan/internal/formatters/text"
	"lgpd-scan/internal/help"
	"lgpd-scan/internal/observability"
	"lgpd-scan/internal/parallel"
	"lgpd-scan/internal/recognizer"
	"lgpd-scan/internal/records"
	"lgpd-scan/internal/report"
	"lgpd-scan/internal/risk"
	"lgpd-scan/internal/storage"
	"lgpd-scan/internal/suppressions"
	"lgpd-scan/internal/version"
)

func main() {
	os.Exit(run())
}

func run() int {
	var (
		filePath        = flag.String("file", "", "file to scan (.csv, .txt, .xlsx)")
		column          = flag.String("column", "", "text column name for tabular files")
		checks          = flag.String("checks", "", "comma-separated checks to run, or 'all'")
		format          = flag.String("format", "", "output format: text, json, csv")
		output          = flag.String("output", "", "write report to file instead of stdout")
		workers         = flag.Int("workers", 0, "concurrent record workers (0 = CPU count)")
		region          = flag.String("region", "", "phone number region hint")
		threshold       = flag.Int("threshold", 0, "EMAIL/PHONE volume that raises risk to ALTO")
		recognizerURL   = flag.String("recognizer", "", "entity recognizer sidecar URL")
		storePath       = flag.String("store", "", "persist report and records to a bbolt database")
		suppressionFile = flag.String("suppressions", "", "suppression rule file")
		configFile      = flag.String("config", "", "config file path")
		profile         = flag.String("profile", "", "named profile from the config file")
		verbose         = flag.Bool("verbose", false, "include recommendations in text output")
		noColor         = flag.Bool("no-color", false, "disable colored output")
		debug           = flag.Bool("debug", false, "emit JSON timing lines to stderr")
		showVersion     = flag.Bool("version", false, "print version information")
	)
	flag.Usage = func() {
		help.PrintUsage(os.Stderr, *noColor)
	}
	flag.Parse()

	if *showVersion {
		fmt.Println(version.Info())
		return 0
	}
	if *filePath == "" {
		flag.Usage()
		return 2
	}

	// Config file, then flags on top.
	configPath := *configFile
	if configPath == "" {
		configPath = config.FindConfigFile()
	}
	cfg := config.LoadConfigOrDefault(configPath)
	if err := cfg.ApplyProfile(*profile); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return 2
	}
	applyFlagOverrides(cfg, *column, *checks, *format, *workers, *region, *threshold,
		*recognizerURL, *storePath, *suppressionFile, *noColor, *debug)

	// Piped output gets no color escapes regardless of flags.
	if !term.IsTerminal(int(os.Stdout.Fd())) {
		cfg.Defaults.NoColor = true
	}

	level := observability.LevelMetrics
	if cfg.Defaults.Debug {
		level = observability.LevelDebug
	}
	observer := observability.NewObserver(level, os.Stderr)

	var rec recognizer.Recognizer
	if cfg.Recognizer.URL != "" {
		rec = recognizer.NewHTTPRecognizer(cfg.Recognizer.URL,
			time.Duration(cfg.Recognizer.TimeoutSeconds)*time.Second)
	}

	eng := engine.New(engine.Options{
		Checks:       cfg.Defaults.Checks,
		PhoneRegion:  cfg.Detection.PhoneRegion,
		Recognizer:   rec,
		MinNameWords: cfg.Detection.MinNameWords,
		Suppressions: suppressions.NewManager(cfg.Suppressions.File),
		Observer:     observer,
	})

	source, err := records.Open(*filePath, records.Options{Column: cfg.Defaults.Column})
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return 2
	}
	recs, err := source.Read()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return 1
	}

	processID := uuid.NewString()
	classifier := &risk.Classifier{HighVolumeThreshold: cfg.Detection.HighVolumeThreshold}
	agg := report.NewAggregator(processID, report.FileInfo{
		Filename: filepath.Base(*filePath),
		FileType: source.Kind(),
	}, classifier)

	pool := parallel.NewPool(cfg.Defaults.Workers, observer)
	start := time.Now()
	results, procErr := pool.Process(context.Background(), recs, eng, agg)

	var finalReport *report.ProcessReport
	if procErr != nil {
		fmt.Fprintf(os.Stderr, "Warning: batch interrupted: %v\n", procErr)
		finalReport = agg.FinalizeIncomplete(time.Since(start))
	} else {
		finalReport = agg.Finalize(time.Since(start))
	}

	out, err := formatters.Export(cfg.Defaults.Format, finalReport, formatters.Options{
		NoColor: cfg.Defaults.NoColor,
		Verbose: *verbose,
	})
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return 1
	}

	if *output != "" {
		if err := os.WriteFile(*output, []byte(out), 0600); err != nil {
			fmt.Fprintf(os.Stderr, "Error writing output file: %v\n", err)
			return 1
		}
		fmt.Fprintf(os.Stderr, "Report written to %s\n", *output)
	} else {
		fmt.Println(out)
	}

	if cfg.Storage.Path != "" {
		if err := persist(cfg.Storage.Path, finalReport, processID, results); err != nil {
			fmt.Fprintf(os.Stderr, "Warning: could not persist results: %v\n", err)
		}
	}

	if finalReport.Risk.Level >= risk.Critico {
		return 3 // scripting hook: critical findings flip the exit code
	}
	return 0
}

// applyFlagOverrides overlays non-zero flag values onto the loaded config.
func applyFlagOverrides(cfg *config.Config, column, checks, format string, workers int,
	region string, threshold int, recognizerURL, storePath, suppressionFile string,
	noColor, debug bool) {
	if column != "" {
		cfg.Defaults.Column = column
	}
	if checks != "" {
		cfg.Defaults.Checks = checks
	}
	if format != "" {
		cfg.Defaults.Format = strings.ToLower(format)
	}
	if workers > 0 {
		cfg.Defaults.Workers = workers
	}
	if region != "" {
		cfg.Detection.PhoneRegion = region
	}
	if threshold > 0 {
		cfg.Detection.HighVolumeThreshold = threshold
	}
	if recognizerURL != "" {
		cfg.Recognizer.URL = recognizerURL
	}
	if storePath != "" {
		cfg.Storage.Path = storePath
	}
	if suppressionFile != "" {
		cfg.Suppressions.File = suppressionFile
	}
	if noColor {
		cfg.Defaults.NoColor = true
	}
	if debug {
		cfg.Defaults.Debug = true
	}
}

// persist writes the finalized report and the anonymized records to the
// embedded store. Originals are never written.
func persist(path string, r *report.ProcessReport, processID string, results []detector.RecordResult) error {
	store, err := storage.Open(path)
	if err != nil {
		return err
	}
	defer store.Close()

	if err := store.SaveReport(r); err != nil {
		return err
	}
	return store.SaveRecords(processID, results)
}
