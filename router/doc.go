// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package router defines HTTP routes for the Stimmie API.

# Route Registration

NewRouter creates a configured http.ServeMux with all endpoints:

	mux := router.NewRouter(st, catalog.Default())

NewHandler wraps the same mux with CORS and gzip and is what the server
listens with.

# Endpoints

Probes:

	GET /                 - plain-text banner
	GET /health           - OK
	GET /api              - {"status":"ok",...}
	GET /api/store-check  - stored interview count

Interviews:

	POST /api/interviews  - Submit a response
	GET  /api/interviews  - Every response (ETag, 304)

Aggregates:

	GET /api/summary      - Aggregate view

Any other path returns 404.
*/
package router
