// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package records

import (
	"bufio"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"lgpd-scan/internal/detector"
)

// TextSource reads one record per non-empty line of a plain text file.
type TextSource struct {
	path string
}

// NewTextSource creates a text source for path.
func NewTextSource(path string) *TextSource {
	return &TextSource{path: path}
}

// Kind returns "txt".
func (s *TextSource) Kind() string { return "txt" }

// Read returns one record per non-empty line. Record IDs are 1-based
// counters over the kept lines, matching how the original rows were
// numbered.
func (s *TextSource) Read() ([]detector.Record, error) {
	f, err := os.Open(filepath.Clean(s.path))
	if err != nil {
		return nil, fmt.Errorf("open txt: %w", err)
	}
	defer f.Close()

	var out []detector.Record
	scanner := bufio.NewScanner(f)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	for scanner.Scan() {
		text := strings.TrimSpace(scanner.Text())
		if text == "" {
			continue
		}
		out = append(out, detector.Record{ID: strconv.Itoa(len(out) + 1), Text: text})
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("read txt: %w", err)
	}
	return out, nil
}
