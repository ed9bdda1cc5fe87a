// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package cliparse handles command-line argument parsing and configuration.

# Configuration

ParseFlags returns a Config struct with all settings:

	cfg, err := cliparse.ParseFlags(os.Args[1:])

Commands built with cobra bind the same flags and resolve afterwards:

	cliparse.BindFlags(cmd.PersistentFlags(), &cfg)
	// after parsing
	cfg, err = cliparse.Resolve(cfg)

# CLI Flags

	-p, --port           Server port
	-d, --database-url   Database URL
	-t, --database-type  sqlite, postgres or mongo
	--api-url            Survey API base URL
	--cache-dir          Snapshot cache directory
	--fallback           Fallback dataset file
	--timeout            Request timeout
	--log-level          debug, info, warn or error

# Environment Variables

Flags fall back to environment variables, then to defaults:

	PORT              → -p               (5000)
	DATABASE_URL      → -d               (stimmie.db for sqlite)
	DATABASE_TYPE     → -t               (sqlite)
	STIMMIE_API_URL   → --api-url        (http://localhost:5000)
	STIMMIE_CACHE_DIR → --cache-dir      (in-memory cache)
	STIMMIE_FALLBACK  → --fallback       (embedded dataset)
	STIMMIE_TIMEOUT   → --timeout        (10s)
	LOG_LEVEL         → --log-level      (info)

CLI flags take precedence over environment variables. LoadEnvFile reads a
.env file first without overriding variables that are already set.

# Validation

Resolve returns an error for a malformed PORT or STIMMIE_TIMEOUT, an
unknown database type or an unknown log level. RequireDatabase checks that
postgres and mongo were given a URL.
*/
package cliparse
