// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package main provides the stimmie command.

Stimmie is a member survey: three words about yourself and about data
science, two confidence ratings, skills, competitions joined, three ranked
committees, hometown and favorite province. Responses are stored through a
small REST API and summarized as word counts, histograms and province maps.

# Commands

	stimmie serve                   # run the API server
	stimmie summary [--json]        # print aggregate results
	stimmie submit answers.yaml     # fill in and submit the survey

summary reads from the API and falls back to the local snapshot cache and
then the bundled dataset when the API is unreachable. submit drives the
same step-by-step flow a respondent goes through and writes through the API,
or straight to the database with --direct.

# Configuration

Flags override environment variables; a .env file in the working directory
is loaded first.

  - PORT (-p): Server port (default: 5000)
  - DATABASE_TYPE (-t): sqlite, postgres or mongo (default: sqlite)
  - DATABASE_URL (-d): Connection string or sqlite file (default: stimmie.db)
  - STIMMIE_API_URL (--api-url): API base URL for summary and submit
  - STIMMIE_CACHE_DIR (--cache-dir): Snapshot cache directory (default: in memory)
  - STIMMIE_FALLBACK (--fallback): Fallback dataset file (default: embedded)
  - STIMMIE_CATALOG (--catalog): Answer choices YAML (default: embedded)
  - STIMMIE_TIMEOUT (--timeout): Request timeout (default: 10s)
  - LOG_LEVEL (--log-level): debug, info, warn or error

# Architecture

  - survey: step-by-step flow controller with per-step validation
  - aggregate: pure aggregation over stored responses
  - gateway: HTTP client, snapshot cache and fallback read chain
  - store: sqlite, postgres and mongo persistence
  - handlers, router, middleware: the REST API
  - models, catalog: record types, validation and answer choices
  - report: terminal rendering of the summary
  - cliparse: configuration parsing

See package documentation for each component.
*/
package main
