// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

// Package storage persists finalized reports and anonymized record results
// in an embedded bbolt database. The engine never touches this layer; the
// CLI hands it already-finalized values, honoring the rule that originals
// are never stored — only the anonymized rendering is written.
package storage

import (
	"encoding/json"
	"fmt"

	bolt "go.etcd.io/bbolt"

	"lgpd-scan/internal/detector"
	"lgpd-scan/internal/report"
)

var (
	bucketReports = []byte("reports")
	bucketRecords = []byte("records")
)

// Store is an embedded report store.
type Store struct {
	db *bolt.DB
}

// Open opens (creating if necessary) the store at path.
func Open(path string) (*Store, error) {
	db, err := bolt.Open(path, 0600, nil)
	if err != nil {
		return nil, fmt.Errorf("open store: %w", err)
	}
	err = db.Update(func(tx *bolt.Tx) error {
		if _, err := tx.CreateBucketIfNotExists(bucketReports); err != nil {
			return err
		}
		_, err := tx.CreateBucketIfNotExists(bucketRecords)
		return err
	})
	if err != nil {
		db.Close()
		return nil, fmt.Errorf("initialize store: %w", err)
	}
	return &Store{db: db}, nil
}

// Close releases the underlying database.
func (s *Store) Close() error { return s.db.Close() }

// SaveReport stores a finalized report keyed by its process ID.
func (s *Store) SaveReport(r *report.ProcessReport) error {
	data, err := json.Marshal(r)
	if err != nil {
		return fmt.Errorf("encode report: %w", err)
	}
	return s.db.Update(func(tx *bolt.Tx) error {
		return tx.Bucket(bucketReports).Put([]byte(r.ProcessID), data)
	})
}

// GetReport loads a report by process ID, returning nil when absent.
func (s *Store) GetReport(processID string) (*report.ProcessReport, error) {
	var r *report.ProcessReport
	err := s.db.View(func(tx *bolt.Tx) error {
		data := tx.Bucket(bucketReports).Get([]byte(processID))
		if data == nil {
			return nil
		}
		r = &report.ProcessReport{}
		return json.Unmarshal(data, r)
	})
	if err != nil {
		return nil, fmt.Errorf("load report %s: %w", processID, err)
	}
	return r, nil
}

// ListReportIDs returns every stored process ID in key order.
func (s *Store) ListReportIDs() ([]string, error) {
	var ids []string
	err := s.db.View(func(tx *bolt.Tx) error {
		return tx.Bucket(bucketReports).ForEach(func(k, _ []byte) error {
			ids = append(ids, string(k))
			return nil
		})
	})
	return ids, err
}

// SaveRecords stores the anonymized record results of one batch under a
// nested bucket keyed by the process ID.
func (s *Store) SaveRecords(processID string, results []detector.RecordResult) error {
	return s.db.Update(func(tx *bolt.Tx) error {
		parent := tx.Bucket(bucketRecords)
		bucket, err := parent.CreateBucketIfNotExists([]byte(processID))
		if err != nil {
			return fmt.Errorf("create record bucket: %w", err)
		}
		for _, res := range results {
			data, err := json.Marshal(res)
			if err != nil {
				return fmt.Errorf("encode record %s: %w", res.RecordID, err)
			}
			if err := bucket.Put([]byte(res.RecordID), data); err != nil {
				return err
			}
		}
		return nil
	})
}

// GetRecords loads the anonymized results of one batch.
func (s *Store) GetRecords(processID string) ([]detector.RecordResult, error) {
	var results []detector.RecordResult
	err := s.db.View(func(tx *bolt.Tx) error {
		bucket := tx.Bucket(bucketRecords).Bucket([]byte(processID))
		if bucket == nil {
			return nil
		}
		return bucket.ForEach(func(_, v []byte) error {
			var res detector.RecordResult
			if err := json.Unmarshal(v, &res); err != nil {
				return err
			}
			results = append(results, res)
			return nil
		})
	})
	return results, err
}
