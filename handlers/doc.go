// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package handlers contains HTTP request handlers for the Stimmie API.

# Handler Types

Each handler is a struct holding the store it reads and writes:

  - InterviewHandler: submit and list survey responses
  - SummaryHandler: aggregate view of every response
  - StatusHandler: liveness and store probes

	interviews := handlers.NewInterviewHandler(st, catalog.Default())

# Interviews

	POST /api/interviews → Create (201 {"success":true})
	GET  /api/interviews → List (JSON array, ETag)

Create validates the body against the answer catalog and rejects bad input
with 400. The store assigns id and timestamp. List sends a strong ETag
derived from the body; a matching If-None-Match gets 304.

# Summary

	GET /api/summary → Get

Builds aggregate.Summary from every stored response. Concurrent requests
share one read.

# Status

	GET /                → Root
	GET /api             → APIRoot
	GET /health          → Health
	GET /api/store-check → StoreCheck

Errors are always {"success":false,"error":"..."}.
*/
package handlers
