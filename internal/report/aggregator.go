// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package report

import (
	"sort"
	"sync"
	"time"

	"lgpd-scan/internal/detector"
	"lgpd-scan/internal/pii"
	"lgpd-scan/internal/risk"
)

// Aggregator folds a stream of record results into running totals. The fold
// is additive, commutative and associative: records may arrive in any order
// and partial aggregates from independent workers merge into the same final
// report. All methods are safe for concurrent use.
type Aggregator struct {
	mu sync.Mutex

	processID string
	fileInfo  FileInfo

	totalRecords   int
	recordsWithPii int
	partialRecords int
	suppressed     int
	counts         map[pii.Type]int

	classifier *risk.Classifier

	finalized bool
	report    *ProcessReport
}

// NewAggregator creates an aggregator for one batch. classifier may be nil,
// in which case the default classifier is used at finalization.
func NewAggregator(processID string, fileInfo FileInfo, classifier *risk.Classifier) *Aggregator {
	if classifier == nil {
		classifier = risk.NewClassifier()
	}
	return &Aggregator{
		processID:  processID,
		fileInfo:   fileInfo,
		counts:     make(map[pii.Type]int),
		classifier: classifier,
	}
}

// Add folds one record result into the running totals. Calling Add after
// Finalize is a programming error; the late record is ignored so an already
// emitted report is never silently contradicted.
func (a *Aggregator) Add(result detector.RecordResult) {
	a.mu.Lock()
	defer a.mu.Unlock()
	if a.finalized {
		return
	}

	a.totalRecords++
	if result.HasPII {
		a.recordsWithPii++
	}
	if result.Partial {
		a.partialRecords++
	}
	a.suppressed += result.Suppressed
	for t, n := range result.PiiCounts {
		a.counts[t] += n
	}
}

// Merge folds another aggregator's totals into this one. other must not be
// used afterwards during the same batch. Merge order does not affect the
// final report.
func (a *Aggregator) Merge(other *Aggregator) {
	if other == nil || other == a {
		return
	}
	other.mu.Lock()
	defer other.mu.Unlock()
	a.mu.Lock()
	defer a.mu.Unlock()
	if a.finalized {
		return
	}

	a.totalRecords += other.totalRecords
	a.recordsWithPii += other.recordsWithPii
	a.partialRecords += other.partialRecords
	a.suppressed += other.suppressed
	for t, n := range other.counts {
		a.counts[t] += n
	}
}

// Totals returns a copy of the current per-type counts.
func (a *Aggregator) Totals() map[pii.Type]int {
	a.mu.Lock()
	defer a.mu.Unlock()
	out := make(map[pii.Type]int, len(a.counts))
	for t, n := range a.counts {
		out[t] = n
	}
	return out
}

// Finalize computes the breakdown and risk level exactly once and returns
// the immutable report. elapsed is the caller-measured batch duration; the
// aggregator performs no timing itself. Subsequent calls return the same
// report regardless of arguments.
func (a *Aggregator) Finalize(elapsed time.Duration) *ProcessReport {
	return a.finalize(elapsed, false)
}

// FinalizeIncomplete finalizes a deliberately truncated batch. The report
// is marked incomplete so consumers know totals cover a subset.
func (a *Aggregator) FinalizeIncomplete(elapsed time.Duration) *ProcessReport {
	return a.finalize(elapsed, true)
}

func (a *Aggregator) finalize(elapsed time.Duration, incomplete bool) *ProcessReport {
	a.mu.Lock()
	defer a.mu.Unlock()
	if a.finalized {
		return a.report
	}

	totalDetections := 0
	for _, n := range a.counts {
		totalDetections += n
	}

	breakdown := make([]BreakdownEntry, 0, len(a.counts))
	for t, n := range a.counts {
		entry := BreakdownEntry{Type: t, Description: pii.Description(t), Count: n}
		if totalDetections > 0 {
			entry.Percentage = round2(float64(n) / float64(totalDetections) * 100)
		}
		breakdown = append(breakdown, entry)
	}
	// Count descending, ties by the fixed type priority so reruns produce
	// byte-identical reports.
	sort.SliceStable(breakdown, func(i, j int) bool {
		if breakdown[i].Count != breakdown[j].Count {
			return breakdown[i].Count > breakdown[j].Count
		}
		return pii.Priority(breakdown[i].Type) < pii.Priority(breakdown[j].Type)
	})

	level := a.classifier.Classify(a.counts)

	stats := Stats{
		ProcessingTimeSeconds: round2(elapsed.Seconds()),
		TotalPiiDetected:      totalDetections,
		RecordsWithPii:        a.recordsWithPii,
		RecordsWithoutPii:     a.totalRecords - a.recordsWithPii,
		PartialRecords:        a.partialRecords,
		SuppressedFindings:    a.suppressed,
	}
	if elapsed > 0 {
		stats.RecordsPerSecond = round2(float64(a.totalRecords) / elapsed.Seconds())
	}
	if a.totalRecords > 0 {
		stats.PiiRatePercentage = round2(float64(a.recordsWithPii) / float64(a.totalRecords) * 100)
	}

	now := time.Now()
	fileInfo := a.fileInfo
	fileInfo.TotalRecords = a.totalRecords

	a.report = &ProcessReport{
		ProcessID: a.processID,
		CreatedAt: now,
		FileInfo:  fileInfo,
		Stats:     stats,
		Breakdown: breakdown,
		Risk: RiskAssessment{
			Level:           level,
			Description:     risk.Description(level),
			Recommendations: risk.Recommendations(level, a.counts),
		},
		Compliance: Compliance{
			AnonymizationApplied: true,
			DataMinimization:     totalDetections > 0,
			ProcessingDate:       now,
			RetentionPolicy:      "Dados originais não armazenados - apenas versão anonimizada",
		},
		Incomplete: incomplete,
	}
	a.finalized = true
	return a.report
}

func round2(f float64) float64 {
	return float64(int64(f*100+0.5)) / 100
}
