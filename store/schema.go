// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package store

import (
	"database/sql"
	"fmt"
)

// CreateSchema creates the interview table for driver.
// Safe to call multiple times - uses IF NOT EXISTS.
func CreateSchema(db *sql.DB, driver string) error {
	ddl := sqliteSchema
	if driver == "postgres" {
		ddl = postgresSchema
	}

	_, err := db.Exec(ddl)
	if err != nil {
		return fmt.Errorf("failed to create schema: %w", err)
	}

	return nil
}

const sqliteSchema = `
-- Interviews
CREATE TABLE IF NOT EXISTS interview (
    id TEXT PRIMARY KEY,
    payload TEXT NOT NULL,
    submitted_at TEXT NOT NULL
);

CREATE INDEX IF NOT EXISTS idx_interview_submitted_at ON interview(submitted_at);
`

const postgresSchema = `
-- Interviews
CREATE TABLE IF NOT EXISTS interview (
    id TEXT PRIMARY KEY,
    payload JSONB NOT NULL,
    submitted_at TEXT NOT NULL
);

CREATE INDEX IF NOT EXISTS idx_interview_submitted_at ON interview(submitted_at);
`
