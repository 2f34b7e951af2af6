// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

// Package report folds per-record results into process-level reports.
package report

import (
	"time"

	"lgpd-scan/internal/pii"
	"lgpd-scan/internal/risk"
)

// FileInfo describes the scanned input.
type FileInfo struct {
	Filename     string `json:"filename"`
	FileType     string `json:"file_type"`
	TotalRecords int    `json:"total_records"`
}

// Stats holds processing statistics for a finished batch.
type Stats struct {
	ProcessingTimeSeconds float64 `json:"processing_time_seconds"`
	RecordsPerSecond      float64 `json:"records_per_second"`
	TotalPiiDetected      int     `json:"total_pii_detected"`
	RecordsWithPii        int     `json:"records_with_pii"`
	RecordsWithoutPii     int     `json:"records_without_pii"`
	PiiRatePercentage     float64 `json:"pii_rate_percentage"`
	PartialRecords        int     `json:"partial_records"`
	SuppressedFindings    int     `json:"suppressed_findings"`
}

// BreakdownEntry is one row of the per-type detection breakdown.
type BreakdownEntry struct {
	Type        pii.Type `json:"type"`
	Description string   `json:"description"`
	Count       int      `json:"count"`
	Percentage  float64  `json:"percentage"`
}

// RiskAssessment carries the classified level with its explanation.
type RiskAssessment struct {
	Level           risk.Level `json:"level"`
	Description     string     `json:"description"`
	Recommendations []string   `json:"recommendations"`
}

// Compliance is the LGPD compliance statement attached to every report.
type Compliance struct {
	AnonymizationApplied bool      `json:"anonymization_applied"`
	DataMinimization     bool      `json:"data_minimization"`
	ProcessingDate       time.Time `json:"processing_date"`
	RetentionPolicy      string    `json:"retention_policy"`
}

// ProcessReport is the finalized, immutable outcome of one batch.
type ProcessReport struct {
	ProcessID  string           `json:"process_id"`
	CreatedAt  time.Time        `json:"created_at"`
	FileInfo   FileInfo         `json:"file_info"`
	Stats      Stats            `json:"processing_stats"`
	Breakdown  []BreakdownEntry `json:"pii_breakdown"`
	Risk       RiskAssessment   `json:"risk_assessment"`
	Compliance Compliance       `json:"lgpd_compliance"`

	// Incomplete marks reports finalized over a deliberately truncated
	// record subset. Totals then cover only the folded records.
	Incomplete bool `json:"incomplete,omitempty"`
}
