// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

// Package recognizer adapts an external named-entity recognizer into the
// span model. The engine depends only on the Recognizer capability
// interface, so any recognizer (spaCy sidecar, hosted NER service, scripted
// fake in tests) can be substituted without touching the resolver or the
// anonymizer. The adapter itself performs no linguistic analysis: it maps
// label names, validates offsets, and nothing else.
package recognizer

import (
	"context"
	"strings"

	"lgpd-scan/internal/detector"
	"lgpd-scan/internal/observability"
	"lgpd-scan/internal/pii"
)

// Entity is one recognizer detection: zero-based, exclusive-end rune
// offsets into exactly the analyzed text.
type Entity struct {
	Start int    `json:"start"`
	End   int    `json:"end"`
	Label string `json:"label"`
}

// Recognizer is the capability contract for the external entity
// recognizer. Implementations must be deterministic for identical input so
// report generation stays reproducible.
type Recognizer interface {
	Recognize(ctx context.Context, text string) ([]Entity, error)
}

// labelTypes maps recognizer label names onto PII types. Labels outside
// this table are dropped, not errors.
var labelTypes = map[string]pii.Type{
	"PER":      pii.PersonName,
	"PERSON":   pii.PersonName,
	"LOC":      pii.Location,
	"GPE":      pii.Location,
	"LOCATION": pii.Location,
}

// Adapter wraps a Recognizer and translates its entities into model spans.
type Adapter struct {
	recognizer Recognizer
	observer   *observability.Observer

	// minNameWords drops person names with fewer words, cutting single-token
	// false positives. 2 matches the original heuristic.
	minNameWords int
}

// NewAdapter creates an adapter around r. A nil observer disables contract
// violation logging.
func NewAdapter(r Recognizer, observer *observability.Observer) *Adapter {
	return &Adapter{recognizer: r, observer: observer, minNameWords: 2}
}

// SetMinNameWords overrides the person-name word threshold. Values below 1
// are clamped to 1.
func (a *Adapter) SetMinNameWords(n int) {
	if n < 1 {
		n = 1
	}
	a.minNameWords = n
}

// DetectEntities returns the recognizer's findings for text as model spans,
// restricted to PERSON_NAME and LOCATION. Entities with offsets outside
// [0, len(text)) or inverted ranges are rejected at this boundary and logged
// as contract violations; they never reach the resolver. A recognizer error
// is returned as-is so the engine can mark the record partial.
func (a *Adapter) DetectEntities(ctx context.Context, text string) ([]detector.Span, error) {
	if text == "" || a.recognizer == nil {
		return nil, nil
	}

	entities, err := a.recognizer.Recognize(ctx, text)
	if err != nil {
		return nil, err
	}

	runes := []rune(text)
	var spans []detector.Span
	for _, ent := range entities {
		t, known := labelTypes[strings.ToUpper(ent.Label)]
		if !known {
			continue
		}

		if ent.Start < 0 || ent.End <= ent.Start || ent.End > len(runes) {
			a.observer.ContractViolation("recognizer", "",
				"entity offsets out of bounds")
			continue
		}

		entText := string(runes[ent.Start:ent.End])
		if t == pii.PersonName && len(strings.Fields(entText)) < a.minNameWords {
			continue
		}

		spans = append(spans, detector.Span{
			Start:  ent.Start,
			End:    ent.End,
			Type:   t,
			Source: detector.SourceModel,
			Text:   entText,
		})
	}
	return spans, nil
}

// Noop is a Recognizer that finds nothing. Used when no recognizer sidecar
// is configured: pattern detection still runs at full strength.
type Noop struct{}

// Recognize implements Recognizer.
func (Noop) Recognize(context.Context, string) ([]Entity, error) { return nil, nil }
