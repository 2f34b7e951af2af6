// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package storage

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"lgpd-scan/internal/detector"
	"lgpd-scan/internal/pii"
	"lgpd-scan/internal/report"
	"lgpd-scan/internal/risk"
)

func openStore(t *testing.T) *Store {
	t.Helper()
	store, err := Open(filepath.Join(t.TempDir(), "reports.db"))
	require.NoError(t, err)
	t.Cleanup(func() { store.Close() })
	return store
}

func sampleReport(processID string) *report.ProcessReport {
	agg := report.NewAggregator(processID, report.FileInfo{Filename: "dados.csv", FileType: "csv"}, nil)
	agg.Add(detector.RecordResult{
		RecordID:  "1",
		PiiCounts: map[pii.Type]int{pii.CPF: 1, pii.Email: 2},
		HasPII:    true,
	})
	return agg.Finalize(time.Second)
}

func TestSaveAndGetReport(t *testing.T) {
	store := openStore(t)
	want := sampleReport("proc-1")

	require.NoError(t, store.SaveReport(want))

	got, err := store.GetReport("proc-1")
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, "proc-1", got.ProcessID)
	assert.Equal(t, want.Stats.TotalPiiDetected, got.Stats.TotalPiiDetected)
	assert.Equal(t, risk.Critico, want.Risk.Level)
	assert.Equal(t, want.Risk.Level.String(), "CRITICO")
	assert.Equal(t, want.Breakdown, got.Breakdown)
}

func TestGetReportAbsent(t *testing.T) {
	store := openStore(t)

	got, err := store.GetReport("nope")
	require.NoError(t, err)
	assert.Nil(t, got)
}

func TestListReportIDs(t *testing.T) {
	store := openStore(t)
	require.NoError(t, store.SaveReport(sampleReport("b")))
	require.NoError(t, store.SaveReport(sampleReport("a")))

	ids, err := store.ListReportIDs()
	require.NoError(t, err)
	assert.Equal(t, []string{"a", "b"}, ids)
}

func TestSaveAndGetRecords(t *testing.T) {
	store := openStore(t)
	results := []detector.RecordResult{
		{RecordID: "1", AnonymizedText: "CPF xxx.xxx.xxx-xx", PiiCounts: map[pii.Type]int{pii.CPF: 1}, HasPII: true},
		{RecordID: "2", AnonymizedText: "sem dados", PiiCounts: map[pii.Type]int{}},
	}

	require.NoError(t, store.SaveRecords("proc-1", results))

	got, err := store.GetRecords("proc-1")
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, "CPF xxx.xxx.xxx-xx", got[0].AnonymizedText)
	assert.True(t, got[0].HasPII)

	// Unknown batch yields no results, not an error.
	got, err = store.GetRecords("nope")
	require.NoError(t, err)
	assert.Empty(t, got)
}

func TestReportRoundTripUnmarshalsRiskLevel(t *testing.T) {
	store := openStore(t)
	require.NoError(t, store.SaveReport(sampleReport("proc-risk")))

	got, err := store.GetReport("proc-risk")
	require.NoError(t, err)
	assert.Equal(t, "CRITICO", got.Risk.Level.String())
}
