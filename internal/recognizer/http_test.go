// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package recognizer

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestHTTPRecognizerRoundTrip(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost || r.URL.Path != "/entities" {
			t.Errorf("unexpected request %s %s", r.Method, r.URL.Path)
		}
		var req struct {
			Text string `json:"text"`
		}
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			t.Errorf("decode request: %v", err)
		}
		if req.Text != "João Silva mora em Recife" {
			t.Errorf("unexpected text %q", req.Text)
		}
		json.NewEncoder(w).Encode(map[string]any{
			"entities": []Entity{
				{Start: 0, End: 10, Label: "PER"},
				{Start: 19, End: 25, Label: "LOC"},
			},
		})
	}))
	defer srv.Close()

	rec := NewHTTPRecognizer(srv.URL, 0)
	entities, err := rec.Recognize(context.Background(), "João Silva mora em Recife")
	if err != nil {
		t.Fatalf("Recognize: %v", err)
	}
	if len(entities) != 2 {
		t.Fatalf("expected 2 entities, got %d", len(entities))
	}
	if entities[0].Label != "PER" || entities[1].Label != "LOC" {
		t.Errorf("unexpected entities %+v", entities)
	}
}

func TestHTTPRecognizerNon200(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "model loading", http.StatusServiceUnavailable)
	}))
	defer srv.Close()

	rec := NewHTTPRecognizer(srv.URL, 0)
	if _, err := rec.Recognize(context.Background(), "texto"); err == nil {
		t.Error("expected error for 503 response")
	}
}

func TestHTTPRecognizerMalformedResponse(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("not json"))
	}))
	defer srv.Close()

	rec := NewHTTPRecognizer(srv.URL, 0)
	if _, err := rec.Recognize(context.Background(), "texto"); err == nil {
		t.Error("expected parse error")
	}
}

func TestHTTPRecognizerContextCancellation(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		<-r.Context().Done()
	}))
	defer srv.Close()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	rec := NewHTTPRecognizer(srv.URL, 0)
	if _, err := rec.Recognize(ctx, "texto"); err == nil {
		t.Error("expected error for cancelled context")
	}
}
