// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

// Package resolver merges candidate spans from all detection paths into one
// ordered, non-overlapping set per record.
//
// Candidates are sorted by (start, -length, priority) and swept left to
// right; a span is accepted only if it does not overlap an already-accepted
// span. Priority favors pattern spans over model spans (a validated
// structural match is trusted over a heuristic entity match touching the
// same text) and breaks pattern-vs-pattern ties with the fixed type order.
// Greedy interval scheduling keeps the behavior auditable in O(n log n)
// instead of optimizing raw span count.
package resolver

import (
	"sort"

	"lgpd-scan/internal/detector"
	"lgpd-scan/internal/pii"
)

// Resolve returns a maximal non-overlapping subset of spans, sorted by
// start offset. The input slice is not modified. Spans with identical
// offsets keep only the higher-priority source. Adjacent spans (one ends
// where the next starts) are both kept.
func Resolve(spans []detector.Span) []detector.Span {
	if len(spans) == 0 {
		return nil
	}

	candidates := make([]detector.Span, len(spans))
	copy(candidates, spans)

	sort.SliceStable(candidates, func(i, j int) bool {
		a, b := candidates[i], candidates[j]
		if a.Start != b.Start {
			return a.Start < b.Start
		}
		if a.Len() != b.Len() {
			return a.Len() > b.Len() // longest match first at a given offset
		}
		return rank(a) < rank(b)
	})

	var accepted []detector.Span
	lastEnd := -1
	for _, s := range candidates {
		if s.Start < lastEnd {
			continue // overlaps an accepted span, discard whole
		}
		accepted = append(accepted, s)
		lastEnd = s.End
	}
	return accepted
}

// rank is the tie-break key for spans with identical offsets and length:
// pattern sources before model sources, then the fixed type priority.
func rank(s detector.Span) int {
	base := 0
	if s.Source == detector.SourceModel {
		// Any pattern type outranks any model type on identical spans.
		base = len(pii.All())
	}
	return base + pii.Priority(s.Type)
}
