// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

// Package engine runs the per-record detection pipeline: pattern detection,
// entity recognition, span resolution, suppression and anonymization.
// Processing one record is a pure function of its text and touches no shared
// state, so records can run concurrently with no coordination beyond
// collecting results.
package engine

import (
	"context"
	"unicode/utf8"

	"lgpd-scan/internal/anonymizer"
	"lgpd-scan/internal/detector"
	"lgpd-scan/internal/observability"
	"lgpd-scan/internal/recognizer"
	"lgpd-scan/internal/resilience"
	"lgpd-scan/internal/resolver"
	"lgpd-scan/internal/suppressions"
	"lgpd-scan/internal/validators"
)

// Engine owns the immutable per-scan detection components. Safe for
// concurrent use: ProcessRecord only reads engine state.
type Engine struct {
	registry     *validators.Registry
	adapter      *recognizer.Adapter
	suppressions *suppressions.Manager
	observer     *observability.Observer
	retryConfig  resilience.RetryConfig
}

// Options configures engine construction.
type Options struct {
	// Checks is the comma-separated enabled check list, "" or "all" for
	// everything.
	Checks string
	// PhoneRegion is the libphonenumber region hint, default BR.
	PhoneRegion string
	// Recognizer supplies model-based entities. nil disables the model path;
	// pattern detection still runs at full strength.
	Recognizer recognizer.Recognizer
	// MinNameWords drops shorter person names, default 2.
	MinNameWords int
	// Suppressions filters known false positives, may be nil.
	Suppressions *suppressions.Manager
	// Observer receives timing and contract-violation events, may be nil.
	Observer *observability.Observer
}

// New builds an engine from opts.
func New(opts Options) *Engine {
	rec := opts.Recognizer
	if rec == nil {
		rec = recognizer.Noop{}
	}
	adapter := recognizer.NewAdapter(rec, opts.Observer)
	if opts.MinNameWords > 0 {
		adapter.SetMinNameWords(opts.MinNameWords)
	}

	return &Engine{
		registry: validators.NewRegistry(
			validators.ParseChecksToRun(opts.Checks),
			validators.Options{PhoneRegion: opts.PhoneRegion},
		),
		adapter:      adapter,
		suppressions: opts.Suppressions,
		observer:     opts.Observer,
		retryConfig:  resilience.RecognizerRetryConfig(),
	}
}

// ProcessRecord runs the full pipeline over one record and returns its
// immutable result. Empty or malformed text is not an error: it yields an
// empty result with HasPII false. A recognizer failure degrades the record
// to partial (pattern findings intact) and never fails the batch.
func (e *Engine) ProcessRecord(ctx context.Context, record detector.Record) detector.RecordResult {
	finish := e.observer.StartTiming("engine", "process_record", record.ID)

	patternSpans := e.registry.DetectPatterns(record.Text)

	modelSpans, err := resilience.RetryWithResult(ctx, e.retryConfig,
		func(ctx context.Context) ([]detector.Span, error) {
			return e.adapter.DetectEntities(ctx, record.Text)
		})
	partial := false
	var detectorErrors []string
	if err != nil {
		// Recognizer unavailable: proceed with pattern spans only and let
		// the caller tell "no PII" apart from "detector down".
		partial = true
		detectorErrors = append(detectorErrors, "entity recognizer: "+err.Error())
		modelSpans = nil
	}

	resolved := resolver.Resolve(append(patternSpans, modelSpans...))
	resolved, suppressed := e.suppressions.Filter(resolved, record.ID)

	anonymized, counts := anonymizer.Anonymize(record.Text, resolved)

	out := detector.RecordResult{
		RecordID:       record.ID,
		OriginalLength: utf8.RuneCountInString(record.Text),
		AnonymizedText: anonymized,
		PiiCounts:      counts,
		HasPII:         anonymizer.HasPII(counts),
		Partial:        partial,
		DetectorErrors: detectorErrors,
		Suppressed:     suppressed,
	}

	finish(!partial, map[string]any{
		"span_count": len(resolved),
		"suppressed": suppressed,
	})
	return out
}

// Checks returns the enabled pattern check names.
func (e *Engine) Checks() []string {
	return e.registry.Names()
}
