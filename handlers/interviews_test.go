// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/danielhkuo/stimmie/models"
	"github.com/danielhkuo/stimmie/testutil"
)

func TestCreateInterview(t *testing.T) {
	st := testutil.SetupTestStore(t)
	handler := NewInterviewHandler(st, nil)

	unknownProvince := testutil.ValidRecord()
	unknownProvince.Hometown = "Atlantis"

	duplicateCommittee := testutil.ValidRecord()
	duplicateCommittee.Committees = []string{"Finance", "Finance", "External Affairs"}

	blankReason := testutil.ValidRecord()
	blankReason.FavoriteProvinceReason = "   "

	noCompetitions := validBody(t, func(m map[string]any) { delete(m, "competitionsJoined") })
	emptyCompetitions := validBody(t, func(m map[string]any) { m["competitionsJoined"] = "" })
	nullCompetitions := validBody(t, func(m map[string]any) { m["competitionsJoined"] = nil })
	wordyCompetitions := validBody(t, func(m map[string]any) { m["competitionsJoined"] = "lots" })
	fractionalConfidence := validBody(t, func(m map[string]any) { m["confidenceAnalytics"] = 7.5 })
	stringSkills := validBody(t, func(m map[string]any) { m["skills"] = "Python" })

	tests := []struct {
		name           string
		body           any
		rawBody        string
		expectedStatus int
		errorContains  string
	}{
		{
			name:           "valid interview",
			body:           testutil.ValidRecord(),
			expectedStatus: http.StatusCreated,
		},
		{
			name:           "invalid JSON",
			rawBody:        `{not json`,
			expectedStatus: http.StatusBadRequest,
			errorContains:  "Invalid JSON",
		},
		{
			name:           "empty object",
			rawBody:        `{}`,
			expectedStatus: http.StatusBadRequest,
			errorContains:  "wordsDescribeSelf",
		},
		{
			name:           "unknown province",
			body:           unknownProvince,
			expectedStatus: http.StatusBadRequest,
			errorContains:  "hometown",
		},
		{
			name:           "duplicate committee",
			body:           duplicateCommittee,
			expectedStatus: http.StatusBadRequest,
			errorContains:  "ranked more than once",
		},
		{
			name:           "blank reason",
			body:           blankReason,
			expectedStatus: http.StatusBadRequest,
			errorContains:  "favoriteProvinceReason",
		},
		{
			name:           "competitions missing",
			body:           noCompetitions,
			expectedStatus: http.StatusBadRequest,
			errorContains:  "competitionsJoined: is required",
		},
		{
			name:           "competitions empty string",
			body:           emptyCompetitions,
			expectedStatus: http.StatusBadRequest,
			errorContains:  "competitionsJoined",
		},
		{
			name:           "competitions null",
			body:           nullCompetitions,
			expectedStatus: http.StatusBadRequest,
			errorContains:  "competitionsJoined: is required",
		},
		{
			name:           "competitions not a number",
			body:           wordyCompetitions,
			expectedStatus: http.StatusBadRequest,
			errorContains:  "competitionsJoined",
		},
		{
			name:           "fractional confidence",
			body:           fractionalConfidence,
			expectedStatus: http.StatusBadRequest,
			errorContains:  "confidenceAnalytics",
		},
		{
			name:           "skills not a list",
			body:           stringSkills,
			expectedStatus: http.StatusBadRequest,
			errorContains:  "skills",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var req *http.Request
			if tt.rawBody != "" {
				req = httptest.NewRequest("POST", "/api/interviews", strings.NewReader(tt.rawBody))
			} else {
				req = testutil.MakeRequest("POST", "/api/interviews", tt.body, nil)
			}
			w := httptest.NewRecorder()

			handler.Create(w, req)

			testutil.AssertStatus(t, w, tt.expectedStatus)

			if tt.expectedStatus == http.StatusCreated {
				var resp models.InterviewResponse
				testutil.AssertJSON(t, w, &resp)
				if !resp.Success {
					t.Error("Expected success true")
				}
				return
			}

			var resp models.ErrorResponse
			testutil.AssertJSON(t, w, &resp)
			if resp.Success {
				t.Error("Expected success false")
			}
			if !strings.Contains(resp.Error, tt.errorContains) {
				t.Errorf("Expected error containing '%s', got '%s'", tt.errorContains, resp.Error)
			}
		})
	}

	n, err := st.Count(context.Background())
	if err != nil {
		t.Fatal(err)
	}
	if n != 1 {
		t.Errorf("Expected exactly 1 stored interview, got %d", n)
	}
}

// validBody returns a valid interview as a JSON object after applying mutate.
func validBody(t *testing.T, mutate func(map[string]any)) map[string]any {
	t.Helper()
	data, err := json.Marshal(testutil.ValidRecord())
	if err != nil {
		t.Fatal(err)
	}
	var m map[string]any
	if err := json.Unmarshal(data, &m); err != nil {
		t.Fatal(err)
	}
	mutate(m)
	return m
}

func TestCreateInterview_IgnoresClientIdentity(t *testing.T) {
	st := testutil.SetupTestStore(t)
	handler := NewInterviewHandler(st, nil)

	rec := testutil.ValidRecord()
	rec.ID = "client-chosen"
	rec.Timestamp = time.Date(1999, 1, 1, 0, 0, 0, 0, time.UTC)

	w := httptest.NewRecorder()
	handler.Create(w, testutil.MakeRequest("POST", "/api/interviews", rec, nil))
	testutil.AssertStatus(t, w, http.StatusCreated)

	records, err := st.ReadAllResponses(context.Background())
	if err != nil {
		t.Fatal(err)
	}
	if len(records) != 1 {
		t.Fatalf("Expected 1 record, got %d", len(records))
	}
	if records[0].ID == "client-chosen" {
		t.Error("Expected server-assigned id")
	}
	if records[0].Timestamp.Year() == 1999 {
		t.Error("Expected server-assigned timestamp")
	}
}

func TestCreateInterview_StoreFailure(t *testing.T) {
	st := testutil.SetupTestStore(t)
	handler := NewInterviewHandler(st, nil)
	st.Close()

	w := httptest.NewRecorder()
	handler.Create(w, testutil.MakeRequest("POST", "/api/interviews", testutil.ValidRecord(), nil))

	testutil.AssertStatus(t, w, http.StatusInternalServerError)

	var resp models.ErrorResponse
	testutil.AssertJSON(t, w, &resp)
	if resp.Success || resp.Error == "" {
		t.Errorf("Expected failure body, got %+v", resp)
	}
}

func TestListInterviews(t *testing.T) {
	st := testutil.SetupTestStore(t)
	handler := NewInterviewHandler(st, nil)

	// Empty store returns an empty array, not null
	w := httptest.NewRecorder()
	handler.List(w, httptest.NewRequest("GET", "/api/interviews", nil))
	testutil.AssertStatus(t, w, http.StatusOK)
	if strings.TrimSpace(w.Body.String()) != "[]" {
		t.Errorf("Expected '[]', got '%s'", w.Body.String())
	}

	first := testutil.ValidRecord()
	second := testutil.ValidRecord()
	second.Hometown = "Rizal"
	testutil.InsertTestRecord(t, st, first)
	testutil.InsertTestRecord(t, st, second)

	w = httptest.NewRecorder()
	handler.List(w, httptest.NewRequest("GET", "/api/interviews", nil))
	testutil.AssertStatus(t, w, http.StatusOK)

	if ct := w.Header().Get("Content-Type"); ct != "application/json" {
		t.Errorf("Expected Content-Type 'application/json', got '%s'", ct)
	}
	etag := w.Header().Get("ETag")
	if etag == "" || !strings.HasPrefix(etag, `"`) {
		t.Fatalf("Expected strong ETag, got '%s'", etag)
	}

	records := models.DecodeRecords(w.Body.Bytes())
	if len(records) != 2 {
		t.Fatalf("Expected 2 records, got %d", len(records))
	}
	if records[0].Hometown != "Cebu" || records[1].Hometown != "Rizal" {
		t.Errorf("Expected submission order, got %s then %s", records[0].Hometown, records[1].Hometown)
	}
	for _, r := range records {
		if r.ID == "" || r.Timestamp.IsZero() {
			t.Errorf("Expected id and timestamp on every record, got %+v", r)
		}
	}

	// Matching If-None-Match gets 304
	w = httptest.NewRecorder()
	handler.List(w, testutil.MakeRequest("GET", "/api/interviews", nil, map[string]string{"If-None-Match": etag}))
	testutil.AssertStatus(t, w, http.StatusNotModified)
	if w.Body.Len() != 0 {
		t.Errorf("Expected empty body on 304, got '%s'", w.Body.String())
	}

	// A new submission changes the tag
	testutil.InsertTestRecord(t, st, testutil.ValidRecord())
	w = httptest.NewRecorder()
	handler.List(w, testutil.MakeRequest("GET", "/api/interviews", nil, map[string]string{"If-None-Match": etag}))
	testutil.AssertStatus(t, w, http.StatusOK)
	if w.Header().Get("ETag") == etag {
		t.Error("Expected ETag to change after a new submission")
	}
}

func TestListInterviews_StoreFailure(t *testing.T) {
	st := testutil.SetupTestStore(t)
	handler := NewInterviewHandler(st, nil)
	st.Close()

	w := httptest.NewRecorder()
	handler.List(w, httptest.NewRequest("GET", "/api/interviews", nil))
	testutil.AssertStatus(t, w, http.StatusInternalServerError)
}

func TestETagMatches(t *testing.T) {
	tag := ETag([]byte("[]"))

	tests := []struct {
		header   string
		expected bool
	}{
		{"", false},
		{tag, true},
		{"W/" + tag, true},
		{`"other", ` + tag, true},
		{"*", true},
		{`"other"`, false},
	}

	for _, tt := range tests {
		if got := etagMatches(tt.header, tag); got != tt.expected {
			t.Errorf("etagMatches(%q) = %v, expected %v", tt.header, got, tt.expected)
		}
	}

	if ETag([]byte("[]")) != tag {
		t.Error("Expected ETag to be deterministic")
	}
	if ETag([]byte("[1]")) == tag {
		t.Error("Expected different bodies to get different tags")
	}
}
