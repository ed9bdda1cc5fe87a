// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package testutil

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/danielhkuo/stimmie/cliparse"
	"github.com/danielhkuo/stimmie/models"
	"github.com/danielhkuo/stimmie/store"
)

// SetupTestStore opens a fresh in-memory sqlite store with the full schema.
// It is closed when the test ends.
func SetupTestStore(t *testing.T) *store.SQLStore {
	t.Helper()

	s, err := store.OpenSQL(context.Background(), "sqlite", ":memory:")
	if err != nil {
		t.Fatalf("Failed to open test store: %v", err)
	}
	t.Cleanup(func() { s.Close() })

	return s
}

// GetTestConfig returns a standard test configuration
func GetTestConfig() cliparse.Config {
	return cliparse.Config{
		Port:         5000,
		DatabaseURL:  ":memory:",
		DatabaseType: "sqlite",
		APIURL:       "http://localhost:5000",
		Timeout:      2 * time.Second,
		LogLevel:     "error",
	}
}

// ValidRecord returns a response that passes validation against the
// default catalog.
func ValidRecord() models.ResponseRecord {
	return models.ResponseRecord{
		WordsDescribeSelf:      []string{"curious", "patient", "organized"},
		WordsDescribeDS:        []string{"patterns", "python", "insight"},
		ConfidenceStorytelling: 7,
		ConfidenceAnalytics:    8,
		Skills:                 []string{"Python", "SQL"},
		CompetitionsJoined:     2,
		Committees:             []string{"Finance", "External Affairs", "Training and Skills"},
		Hometown:               "Cebu",
		FavoriteProvince:       "Palawan",
		FavoriteProvinceReason: "the beaches",
	}
}

// InsertTestRecord stores rec and returns it with id and timestamp set
func InsertTestRecord(t *testing.T, s store.Store, rec models.ResponseRecord) models.ResponseRecord {
	t.Helper()

	stored, err := s.Insert(context.Background(), rec)
	if err != nil {
		t.Fatalf("Failed to insert test record: %v", err)
	}
	return stored
}

// MakeRequest creates an HTTP test request
func MakeRequest(method, path string, body any, headers map[string]string) *http.Request {
	var req *http.Request
	if body != nil {
		jsonBody, _ := json.Marshal(body)
		req = httptest.NewRequest(method, path, bytes.NewReader(jsonBody))
		req.Header.Set("Content-Type", "application/json")
	} else {
		req = httptest.NewRequest(method, path, nil)
	}

	for k, v := range headers {
		req.Header.Set(k, v)
	}

	return req
}

// AssertStatus checks that the response has the expected status code
func AssertStatus(t *testing.T, w *httptest.ResponseRecorder, expected int) {
	t.Helper()
	if w.Code != expected {
		t.Errorf("Expected status %d, got %d. Body: %s", expected, w.Code, w.Body.String())
	}
}

// AssertJSON decodes the response body into the provided value
func AssertJSON(t *testing.T, w *httptest.ResponseRecorder, v any) {
	t.Helper()
	if err := json.NewDecoder(w.Body).Decode(v); err != nil {
		t.Fatalf("Failed to decode JSON response: %v", err)
	}
}
