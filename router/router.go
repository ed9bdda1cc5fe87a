// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package router

import (
	"net/http"

	"github.com/danielhkuo/stimmie/catalog"
	"github.com/danielhkuo/stimmie/handlers"
	"github.com/danielhkuo/stimmie/middleware"
	"github.com/danielhkuo/stimmie/store"
)

func NewRouter(st store.Store, cat *catalog.Catalog) *http.ServeMux {
	mux := http.NewServeMux()

	// Initialize handlers
	statusHandler := handlers.NewStatusHandler(st)
	interviewHandler := handlers.NewInterviewHandler(st, cat)
	summaryHandler := handlers.NewSummaryHandler(st)

	// Probes
	mux.HandleFunc("GET /health", statusHandler.Health)
	mux.HandleFunc("GET /api", middleware.WithLogging(statusHandler.APIRoot))
	mux.HandleFunc("GET /api/store-check", middleware.WithLogging(statusHandler.StoreCheck))

	// Interviews
	mux.HandleFunc("POST /api/interviews", middleware.WithLogging(interviewHandler.Create))
	mux.HandleFunc("GET /api/interviews", middleware.WithLogging(interviewHandler.List))

	// Aggregates
	mux.HandleFunc("GET /api/summary", middleware.WithLogging(summaryHandler.Get))

	// Root endpoint
	mux.HandleFunc("GET /{$}", statusHandler.Root)

	return mux
}

// NewHandler returns the router wrapped with CORS and compression.
func NewHandler(st store.Store, cat *catalog.Catalog) http.Handler {
	return middleware.CORS(middleware.Compress(NewRouter(st, cat)))
}
