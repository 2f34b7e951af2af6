// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

// Package parallel processes records concurrently across a worker pool.
// Each worker folds its own aggregator; partial aggregates merge at the end.
// The fold is commutative, so worker scheduling never changes the final
// report.
package parallel

import (
	"context"
	"runtime"
	"sync"
	"time"

	"lgpd-scan/internal/detector"
	"lgpd-scan/internal/engine"
	"lgpd-scan/internal/observability"
	"lgpd-scan/internal/report"
)

// Pool runs the per-record pipeline across worker goroutines.
type Pool struct {
	workers  int
	observer *observability.Observer
}

// NewPool creates a pool with the given worker count; values below 1 use
// GOMAXPROCS.
func NewPool(workers int, observer *observability.Observer) *Pool {
	if workers < 1 {
		workers = runtime.GOMAXPROCS(0)
	}
	return &Pool{workers: workers, observer: observer}
}

// Workers returns the configured worker count.
func (p *Pool) Workers() int { return p.workers }

// result pairs a record result with its input position so output order
// matches input order regardless of worker scheduling.
type result struct {
	index int
	res   detector.RecordResult
}

// Process runs eng over every record and folds the outcomes into agg.
// Results are returned in input order. When ctx is cancelled mid-batch the
// already-processed results are returned along with ctx.Err(); the caller
// decides whether to finalize the aggregate as incomplete.
func (p *Pool) Process(ctx context.Context, records []detector.Record, eng *engine.Engine, agg *report.Aggregator) ([]detector.RecordResult, error) {
	if len(records) == 0 {
		return nil, nil
	}

	finish := p.observer.StartTiming("worker_pool", "process_batch", "")
	start := time.Now()

	jobs := make(chan int)
	results := make(chan result, p.workers)

	var wg sync.WaitGroup
	for w := 0; w < p.workers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			// Per-worker aggregator: no lock contention on the hot path,
			// merged once below.
			local := report.NewAggregator("", report.FileInfo{}, nil)
			for i := range jobs {
				res := eng.ProcessRecord(ctx, records[i])
				local.Add(res)
				select {
				case results <- result{index: i, res: res}:
				case <-ctx.Done():
					agg.Merge(local)
					return
				}
			}
			agg.Merge(local)
		}()
	}

	go func() {
		defer close(jobs)
		for i := range records {
			select {
			case jobs <- i:
			case <-ctx.Done():
				return
			}
		}
	}()

	go func() {
		wg.Wait()
		close(results)
	}()

	ordered := make([]detector.RecordResult, len(records))
	seen := make([]bool, len(records))
	collected := 0
	for r := range results {
		ordered[r.index] = r.res
		seen[r.index] = true
		collected++
	}

	err := ctx.Err()
	if err != nil {
		// Keep only the results that actually completed.
		compact := make([]detector.RecordResult, 0, collected)
		for i, ok := range seen {
			if ok {
				compact = append(compact, ordered[i])
			}
		}
		ordered = compact
	}

	finish(err == nil, map[string]any{
		"records":     len(records),
		"processed":   collected,
		"workers":     p.workers,
		"duration_ms": time.Since(start).Milliseconds(),
	})
	return ordered, err
}
