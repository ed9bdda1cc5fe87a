// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package store persists survey responses.

# Backends

Open picks a backend by database type:

	sqlite    modernc.org/sqlite, file path or ":memory:"
	postgres  lib/pq, standard postgres:// URL
	mongo     mongo-driver, collection "interviews"

	s, err := store.Open(ctx, "sqlite", "stimmie.db")
	if err != nil {
		log.Fatal(err)
	}
	defer s.Close()

Every backend implements gateway.Reader and gateway.Writer, so a survey
controller can write to the database in-process.

# Schema

SQL backends keep one row per response:

	interview(id TEXT PRIMARY KEY, payload, submitted_at TEXT)

payload is the record as JSON (JSONB on postgres). submitted_at is a
fixed-width UTC timestamp so rows sort by submission time. CreateSchema is
safe to call multiple times.

# Identity

Insert assigns a random UUID and the current UTC time. Records coming in
never carry their own id or timestamp.
*/
package store
