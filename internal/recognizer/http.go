// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package recognizer

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"
)

const maxRecognizerResponse = 10 << 20 // 10 MB

// HTTPRecognizer calls a JSON entity-recognition sidecar (typically a spaCy
// service). Request: POST {"text": ...}; response:
// {"entities":[{"start":..,"end":..,"label":".."}]} with rune offsets.
type HTTPRecognizer struct {
	url    string
	client *http.Client
}

// NewHTTPRecognizer creates a client for the sidecar at baseURL. The
// timeout bounds each call; zero means 10 seconds.
func NewHTTPRecognizer(baseURL string, timeout time.Duration) *HTTPRecognizer {
	if timeout <= 0 {
		timeout = 10 * time.Second
	}
	return &HTTPRecognizer{
		url:    baseURL + "/entities",
		client: &http.Client{Timeout: timeout},
	}
}

type recognizeRequest struct {
	Text string `json:"text"`
}

type recognizeResponse struct {
	Entities []Entity `json:"entities"`
}

// Recognize implements Recognizer.
func (r *HTTPRecognizer) Recognize(ctx context.Context, text string) ([]Entity, error) {
	reqBody, err := json.Marshal(recognizeRequest{Text: text})
	if err != nil {
		return nil, fmt.Errorf("encode recognizer request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, r.url, bytes.NewReader(reqBody))
	if err != nil {
		return nil, fmt.Errorf("create recognizer request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := r.client.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("recognizer returned status %d", resp.StatusCode)
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxRecognizerResponse))
	if err != nil {
		return nil, err
	}

	var parsed recognizeResponse
	if err := json.Unmarshal(body, &parsed); err != nil {
		return nil, fmt.Errorf("recognizer response parse error: %w", err)
	}
	return parsed.Entities, nil
}
