// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

// Package observability provides the JSON-line timing observer threaded
// through the scan pipeline.
package observability

import (
	"encoding/json"
	"io"
	"sync"
	"time"
)

// Level controls how much the observer emits.
type Level int

const (
	LevelOff     Level = 0
	LevelMetrics Level = 1
	LevelDebug   Level = 2
)

// Observer records per-operation timing and outcome for engine components.
// Safe for concurrent use by worker goroutines.
type Observer struct {
	level  Level
	writer io.Writer
	mu     sync.Mutex
}

// NewObserver creates an observer writing JSON lines to w at the given level.
func NewObserver(level Level, w io.Writer) *Observer {
	return &Observer{level: level, writer: w}
}

// OperationData is one emitted observation.
type OperationData struct {
	Component  string         `json:"component"`
	Operation  string         `json:"operation"`
	RecordID   string         `json:"record_id,omitempty"`
	DurationMs int64          `json:"duration_ms,omitempty"`
	Success    bool           `json:"success"`
	Error      string         `json:"error,omitempty"`
	SpanCount  int            `json:"span_count,omitempty"`
	Metadata   map[string]any `json:"metadata,omitempty"`
}

// StartTiming begins timing an operation and returns the completion
// callback. A nil *Observer is valid and does nothing, so call sites don't
// need guards.
func (o *Observer) StartTiming(component, operation, recordID string) func(success bool, metadata map[string]any) {
	if o == nil || o.level == LevelOff {
		return func(bool, map[string]any) {}
	}
	start := time.Now()
	return func(success bool, metadata map[string]any) {
		o.Log(OperationData{
			Component:  component,
			Operation:  operation,
			RecordID:   recordID,
			DurationMs: time.Since(start).Milliseconds(),
			Success:    success,
			Metadata:   metadata,
		})
	}
}

// Log emits one observation. Only debug level writes; metrics level keeps
// counters cheap without flooding stderr during large batches.
func (o *Observer) Log(data OperationData) {
	if o == nil || o.level != LevelDebug {
		return
	}
	o.mu.Lock()
	defer o.mu.Unlock()
	_ = json.NewEncoder(o.writer).Encode(data)
}

// ContractViolation records a collaborator returning data that breaks its
// contract (bad offsets, unknown labels at unexpected volume). These are
// operator signals, never surfaced to the report consumer.
func (o *Observer) ContractViolation(component, recordID, detail string) {
	if o == nil || o.level == LevelOff {
		return
	}
	o.mu.Lock()
	defer o.mu.Unlock()
	_ = json.NewEncoder(o.writer).Encode(OperationData{
		Component: component,
		Operation: "contract_violation",
		RecordID:  recordID,
		Success:   false,
		Error:     detail,
	})
}
