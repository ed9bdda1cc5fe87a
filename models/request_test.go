// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package models

import (
	"encoding/json"
	"errors"
	"strings"
	"testing"

	"github.com/danielhkuo/stimmie/catalog"
)

const validRequestJSON = `{
	"wordsDescribeSelf": ["curious", "calm", "driven"],
	"wordsDescribeDS": ["patterns", "math", "stories"],
	"confidenceStorytelling": 7,
	"confidenceAnalytics": 8,
	"skills": ["Python", "SQL"],
	"competitionsJoined": 0,
	"committees": ["Finance", "External Affairs", "Training and Skills"],
	"hometown": "Cebu",
	"favoriteProvince": "Palawan",
	"favoriteProvinceReason": "the beaches",
	"id": "ignored",
	"timestamp": "2020-01-01T00:00:00Z"
}`

func TestInterviewRequest_Valid(t *testing.T) {
	var req InterviewRequest
	if err := json.Unmarshal([]byte(validRequestJSON), &req); err != nil {
		t.Fatalf("Unmarshal failed: %v", err)
	}
	if err := req.Validate(catalog.Default()); err != nil {
		t.Fatalf("Expected valid request, got %v", err)
	}

	rec := req.Record()
	if rec.ID != "" || !rec.Timestamp.IsZero() {
		t.Errorf("Expected no client identity, got id '%s' timestamp %v", rec.ID, rec.Timestamp)
	}
	if rec.CompetitionsJoined != 0 || rec.ConfidenceAnalytics != 8 {
		t.Errorf("Expected numbers carried over, got %+v", rec)
	}
}

func TestInterviewRequest_MissingNumbers(t *testing.T) {
	body := strings.Replace(validRequestJSON, `"competitionsJoined": 0,`, ``, 1)
	body = strings.Replace(body, `"confidenceAnalytics": 8,`, `"confidenceAnalytics": null,`, 1)

	var req InterviewRequest
	if err := json.Unmarshal([]byte(body), &req); err != nil {
		t.Fatalf("Unmarshal failed: %v", err)
	}
	err := req.Validate(catalog.Default())
	if err == nil {
		t.Fatal("Expected missing fields to fail validation")
	}

	msg := err.Error()
	for _, want := range []string{"competitionsJoined: is required", "confidenceAnalytics: is required"} {
		if !strings.Contains(msg, want) {
			t.Errorf("Expected '%s' in '%s'", want, msg)
		}
	}
	if strings.Contains(msg, "must be between") {
		t.Errorf("Expected no range error for a missing confidence, got '%s'", msg)
	}
}

func TestInterviewRequest_WrongTypes(t *testing.T) {
	tests := []struct {
		name  string
		old   string
		new   string
		field string
	}{
		{"empty string count", `"competitionsJoined": 0`, `"competitionsJoined": ""`, "competitionsJoined"},
		{"word count", `"competitionsJoined": 0`, `"competitionsJoined": "lots"`, "competitionsJoined"},
		{"fractional rating", `"confidenceStorytelling": 7`, `"confidenceStorytelling": 7.5`, "confidenceStorytelling"},
		{"string list", `"skills": ["Python", "SQL"]`, `"skills": "Python"`, "skills"},
		{"numeric hometown", `"hometown": "Cebu"`, `"hometown": 5`, "hometown"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var req InterviewRequest
			err := json.Unmarshal([]byte(strings.Replace(validRequestJSON, tt.old, tt.new, 1)), &req)

			var typeErr *json.UnmarshalTypeError
			if !errors.As(err, &typeErr) {
				t.Fatalf("Expected type error, got %v", err)
			}
			if typeErr.Field != tt.field {
				t.Errorf("Expected field '%s', got '%s'", tt.field, typeErr.Field)
			}
		})
	}
}
