// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package observability

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"
)

func TestNilObserverIsSafe(t *testing.T) {
	var o *Observer

	finish := o.StartTiming("engine", "process_record", "1")
	finish(true, nil)
	o.Log(OperationData{Component: "engine"})
	o.ContractViolation("recognizer", "1", "bad offsets")
}

func TestDebugLevelEmitsJSONLines(t *testing.T) {
	var buf bytes.Buffer
	o := NewObserver(LevelDebug, &buf)

	finish := o.StartTiming("engine", "process_record", "42")
	finish(true, map[string]any{"span_count": 3})

	line := strings.TrimSpace(buf.String())
	var data OperationData
	if err := json.Unmarshal([]byte(line), &data); err != nil {
		t.Fatalf("output is not a JSON line: %v", err)
	}
	if data.Component != "engine" || data.Operation != "process_record" || data.RecordID != "42" {
		t.Errorf("unexpected observation %+v", data)
	}
	if !data.Success {
		t.Error("success flag lost")
	}
}

func TestMetricsLevelDoesNotLog(t *testing.T) {
	var buf bytes.Buffer
	o := NewObserver(LevelMetrics, &buf)

	o.Log(OperationData{Component: "engine"})
	if buf.Len() != 0 {
		t.Errorf("metrics level wrote %q", buf.String())
	}
}

func TestOffLevelEmitsNothing(t *testing.T) {
	var buf bytes.Buffer
	o := NewObserver(LevelOff, &buf)

	finish := o.StartTiming("engine", "op", "")
	finish(false, nil)
	o.ContractViolation("recognizer", "", "detail")

	if buf.Len() != 0 {
		t.Errorf("off level wrote %q", buf.String())
	}
}

func TestContractViolation(t *testing.T) {
	var buf bytes.Buffer
	o := NewObserver(LevelMetrics, &buf)

	o.ContractViolation("recognizer", "7", "entity offsets out of bounds")

	var data OperationData
	if err := json.Unmarshal(buf.Bytes(), &data); err != nil {
		t.Fatalf("parse: %v", err)
	}
	if data.Operation != "contract_violation" || data.Success {
		t.Errorf("unexpected violation record %+v", data)
	}
	if data.Error != "entity offsets out of bounds" {
		t.Errorf("detail %q", data.Error)
	}
}
