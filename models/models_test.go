// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package models

import (
	"encoding/json"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/danielhkuo/stimmie/catalog"
)

func validRecord() ResponseRecord {
	return ResponseRecord{
		WordsDescribeSelf:      []string{"curious", "calm", "driven"},
		WordsDescribeDS:        []string{"patterns", "math", "stories"},
		ConfidenceStorytelling: 7,
		ConfidenceAnalytics:    8,
		Skills:                 []string{"Python", "SQL"},
		CompetitionsJoined:     2,
		Committees:             []string{"Finance", "External Affairs", "Training and Skills"},
		Hometown:               "Cebu",
		FavoriteProvince:       "Palawan",
		FavoriteProvinceReason: "beaches",
	}
}

func TestValidate_Valid(t *testing.T) {
	if err := validRecord().Validate(catalog.Default()); err != nil {
		t.Fatalf("Expected valid record, got %v", err)
	}

	// Hometown and favorite province may be the same
	rec := validRecord()
	rec.FavoriteProvince = rec.Hometown
	if err := rec.Validate(catalog.Default()); err != nil {
		t.Errorf("Expected favorite == hometown to be valid, got %v", err)
	}

	// Zero competitions is a real answer
	rec = validRecord()
	rec.CompetitionsJoined = 0
	if err := rec.Validate(catalog.Default()); err != nil {
		t.Errorf("Expected zero competitions to be valid, got %v", err)
	}
}

func TestValidate_Invalid(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(r *ResponseRecord)
		field  string
	}{
		{"empty word", func(r *ResponseRecord) { r.WordsDescribeSelf[1] = "" }, "wordsDescribeSelf"},
		{"two words", func(r *ResponseRecord) { r.WordsDescribeDS = []string{"a", "b"} }, "wordsDescribeDS"},
		{"long word", func(r *ResponseRecord) { r.WordsDescribeSelf[0] = strings.Repeat("x", 25) }, "wordsDescribeSelf"},
		{"storytelling zero", func(r *ResponseRecord) { r.ConfidenceStorytelling = 0 }, "confidenceStorytelling"},
		{"analytics eleven", func(r *ResponseRecord) { r.ConfidenceAnalytics = 11 }, "confidenceAnalytics"},
		{"no skills", func(r *ResponseRecord) { r.Skills = nil }, "skills"},
		{"unknown skill", func(r *ResponseRecord) { r.Skills = []string{"COBOL"} }, "skills"},
		{"duplicate skill", func(r *ResponseRecord) { r.Skills = []string{"R", "R"} }, "skills"},
		{"negative competitions", func(r *ResponseRecord) { r.CompetitionsJoined = -1 }, "competitionsJoined"},
		{"empty committee", func(r *ResponseRecord) { r.Committees[2] = "" }, "committees"},
		{"duplicate committee", func(r *ResponseRecord) { r.Committees[2] = "Finance" }, "committees"},
		{"unknown committee", func(r *ResponseRecord) { r.Committees[0] = "Catering" }, "committees"},
		{"missing hometown", func(r *ResponseRecord) { r.Hometown = "" }, "hometown"},
		{"unknown favorite", func(r *ResponseRecord) { r.FavoriteProvince = "Atlantis" }, "favoriteProvince"},
		{"blank reason", func(r *ResponseRecord) { r.FavoriteProvinceReason = "   " }, "favoriteProvinceReason"},
		{"long reason", func(r *ResponseRecord) { r.FavoriteProvinceReason = strings.Repeat("y", 33) }, "favoriteProvinceReason"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			rec := validRecord()
			tc.mutate(&rec)

			err := rec.Validate(catalog.Default())
			if err == nil {
				t.Fatal("Expected validation error")
			}

			var fe *FieldError
			if !errors.As(err, &fe) {
				t.Fatalf("Expected *FieldError, got %T", err)
			}
			if fe.Field != tc.field {
				t.Errorf("Expected field %s, got %s (%v)", tc.field, fe.Field, err)
			}
		})
	}
}

func TestValidate_MultibyteLimits(t *testing.T) {
	rec := validRecord()
	rec.WordsDescribeSelf[0] = strings.Repeat("ñ", MaxWordLength)
	rec.FavoriteProvinceReason = strings.Repeat("é", MaxReasonLength)

	if err := rec.Validate(catalog.Default()); err != nil {
		t.Errorf("Limits count characters, not bytes: %v", err)
	}
}

func TestUnmarshalJSON_Lenient(t *testing.T) {
	body := `{
		"wordsDescribeSelf": ["a", 3, "b", null, "c"],
		"confidenceStorytelling": "7",
		"confidenceAnalytics": "",
		"competitionsJoined": 2.0,
		"skills": "Python",
		"hometown": 12,
		"favoriteProvince": "Cebu",
		"timestamp": {"_seconds": 1700000000, "_nanoseconds": 5}
	}`

	var rec ResponseRecord
	if err := json.Unmarshal([]byte(body), &rec); err != nil {
		t.Fatalf("Unmarshal failed: %v", err)
	}

	if len(rec.WordsDescribeSelf) != 3 || rec.WordsDescribeSelf[2] != "c" {
		t.Errorf("Expected non-string words dropped, got %v", rec.WordsDescribeSelf)
	}
	if rec.ConfidenceStorytelling != 7 {
		t.Errorf("Expected 7, got %d", rec.ConfidenceStorytelling)
	}
	if rec.ConfidenceAnalytics != 0 {
		t.Errorf("Expected empty string to read as 0, got %d", rec.ConfidenceAnalytics)
	}
	if rec.CompetitionsJoined != 2 {
		t.Errorf("Expected 2, got %d", rec.CompetitionsJoined)
	}
	if rec.Skills != nil {
		t.Errorf("Expected non-array skills to be dropped, got %v", rec.Skills)
	}
	if rec.Hometown != "" {
		t.Errorf("Expected non-string hometown to be dropped, got %q", rec.Hometown)
	}
	want := time.Unix(1700000000, 5).UTC()
	if !rec.Timestamp.Equal(want) {
		t.Errorf("Expected timestamp %v, got %v", want, rec.Timestamp)
	}
}

func TestUnmarshalJSON_RoundTrip(t *testing.T) {
	rec := validRecord()
	rec.ID = "abc"
	rec.Timestamp = time.Date(2025, 3, 1, 10, 30, 0, 0, time.UTC)

	data, err := json.Marshal(rec)
	if err != nil {
		t.Fatal(err)
	}

	var got ResponseRecord
	if err := json.Unmarshal(data, &got); err != nil {
		t.Fatal(err)
	}
	if got.ID != "abc" || !got.Timestamp.Equal(rec.Timestamp) || got.Committees[1] != "External Affairs" {
		t.Errorf("Round trip mismatch: %+v", got)
	}
}

func TestMarshal_OmitsZeroTimestamp(t *testing.T) {
	data, err := json.Marshal(validRecord())
	if err != nil {
		t.Fatal(err)
	}
	if strings.Contains(string(data), "timestamp") {
		t.Errorf("Client payload must not carry a timestamp: %s", data)
	}
}

func TestDecodeRecords(t *testing.T) {
	tests := []struct {
		name     string
		body     string
		expected int
	}{
		{"array", `[{"hometown":"Cebu"},{"hometown":"Rizal"}]`, 2},
		{"empty array", `[]`, 0},
		{"object", `{"hometown":"Cebu"}`, 0},
		{"null", `null`, 0},
		{"garbage", `not json`, 0},
		{"mixed elements", `[{"hometown":"Cebu"}, "x", 3, null, []]`, 1},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got := DecodeRecords([]byte(tc.body))
			if got == nil {
				t.Fatal("Expected non-nil slice")
			}
			if len(got) != tc.expected {
				t.Errorf("Expected %d records, got %d", tc.expected, len(got))
			}
		})
	}
}
