// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package router

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/danielhkuo/stimmie/testutil"
)

func TestHealthEndpoint(t *testing.T) {
	st := testutil.SetupTestStore(t)
	mux := NewRouter(st, nil)

	req := httptest.NewRequest("GET", "/health", nil)
	w := httptest.NewRecorder()

	mux.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Errorf("Expected status 200, got %d", w.Code)
	}
	if w.Body.String() != "OK" {
		t.Errorf("Expected body 'OK', got '%s'", w.Body.String())
	}
}

func TestRootEndpoint(t *testing.T) {
	st := testutil.SetupTestStore(t)
	mux := NewRouter(st, nil)

	req := httptest.NewRequest("GET", "/", nil)
	w := httptest.NewRecorder()

	mux.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Errorf("Expected status 200, got %d", w.Code)
	}

	expected := "Stimmie API is running"
	if w.Body.String() != expected {
		t.Errorf("Expected body '%s', got '%s'", expected, w.Body.String())
	}
}

func TestAPIRootEndpoint(t *testing.T) {
	st := testutil.SetupTestStore(t)
	mux := NewRouter(st, nil)

	req := httptest.NewRequest("GET", "/api", nil)
	w := httptest.NewRecorder()

	mux.ServeHTTP(w, req)

	testutil.AssertStatus(t, w, http.StatusOK)
	expected := `{"status":"ok","message":"API root is working"}`
	if strings.TrimSpace(w.Body.String()) != expected {
		t.Errorf("Expected body '%s', got '%s'", expected, w.Body.String())
	}
}

func TestRouteExistence(t *testing.T) {
	st := testutil.SetupTestStore(t)
	mux := NewRouter(st, nil)

	testCases := []struct {
		method string
		path   string
	}{
		{"GET", "/health"},
		{"GET", "/"},
		{"GET", "/api"},
		{"GET", "/api/store-check"},
		{"POST", "/api/interviews"},
		{"GET", "/api/interviews"},
		{"GET", "/api/summary"},
	}

	for _, tc := range testCases {
		t.Run(tc.method+" "+tc.path, func(t *testing.T) {
			req := httptest.NewRequest(tc.method, tc.path, strings.NewReader("{}"))
			w := httptest.NewRecorder()

			mux.ServeHTTP(w, req)

			if w.Code == http.StatusNotFound || w.Code == http.StatusMethodNotAllowed {
				t.Errorf("Route %s %s not registered (status %d)", tc.method, tc.path, w.Code)
			}
		})
	}
}

func TestUnknownRoutes(t *testing.T) {
	st := testutil.SetupTestStore(t)
	mux := NewRouter(st, nil)

	testCases := []struct {
		method   string
		path     string
		expected int
	}{
		{"GET", "/nope", http.StatusNotFound},
		{"GET", "/api/polls", http.StatusNotFound},
		{"DELETE", "/api/interviews", http.StatusMethodNotAllowed},
	}

	for _, tc := range testCases {
		req := httptest.NewRequest(tc.method, tc.path, nil)
		w := httptest.NewRecorder()

		mux.ServeHTTP(w, req)

		if w.Code != tc.expected {
			t.Errorf("%s %s: expected %d, got %d", tc.method, tc.path, tc.expected, w.Code)
		}
	}
}

func TestNewHandler_CORSAndCompression(t *testing.T) {
	st := testutil.SetupTestStore(t)
	for i := 0; i < 20; i++ {
		testutil.InsertTestRecord(t, st, testutil.ValidRecord())
	}
	h := NewHandler(st, nil)

	t.Run("preflight", func(t *testing.T) {
		req := httptest.NewRequest("OPTIONS", "/api/interviews", nil)
		req.Header.Set("Origin", "http://localhost:3000")
		w := httptest.NewRecorder()

		h.ServeHTTP(w, req)

		testutil.AssertStatus(t, w, http.StatusOK)
		if w.Header().Get("Access-Control-Allow-Origin") != "http://localhost:3000" {
			t.Error("Expected origin to be reflected")
		}
	})

	t.Run("gzip", func(t *testing.T) {
		req := httptest.NewRequest("GET", "/api/interviews", nil)
		req.Header.Set("Accept-Encoding", "gzip")
		w := httptest.NewRecorder()

		h.ServeHTTP(w, req)

		testutil.AssertStatus(t, w, http.StatusOK)
		if w.Header().Get("Content-Encoding") != "gzip" {
			t.Errorf("Expected gzip response, got '%s'", w.Header().Get("Content-Encoding"))
		}
		if w.Header().Get("Access-Control-Allow-Origin") != "*" {
			t.Error("Expected wildcard origin")
		}
	})
}
