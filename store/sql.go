// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"log/slog"

	"github.com/google/uuid"
	_ "github.com/lib/pq"
	_ "modernc.org/sqlite"

	"github.com/danielhkuo/stimmie/models"
)

// submittedAtLayout is fixed width so text ordering matches time ordering.
const submittedAtLayout = "2006-01-02T15:04:05.000000000Z"

// SQLStore keeps responses in a relational database.
type SQLStore struct {
	db     *sql.DB
	driver string
}

// OpenSQL opens a sqlite or postgres database and creates the schema.
func OpenSQL(ctx context.Context, driver, url string) (*SQLStore, error) {
	if url == "" {
		return nil, fmt.Errorf("database URL required for %s", driver)
	}

	db, err := sql.Open(driver, url)
	if err != nil {
		return nil, fmt.Errorf("database connection failed: %w", err)
	}
	if driver == "sqlite" {
		// One connection keeps ":memory:" databases shared and serializes writers.
		db.SetMaxOpenConns(1)
	}
	if err := db.PingContext(ctx); err != nil {
		db.Close()
		return nil, fmt.Errorf("database ping failed: %w", err)
	}
	if err := CreateSchema(db, driver); err != nil {
		db.Close()
		return nil, err
	}

	slog.Info("Database schema ready", "driver", driver)
	return &SQLStore{db: db, driver: driver}, nil
}

// NewSQL wraps an open database whose schema already exists.
func NewSQL(db *sql.DB, driver string) *SQLStore {
	return &SQLStore{db: db, driver: driver}
}

// DB exposes the underlying connection.
func (s *SQLStore) DB() *sql.DB {
	return s.db
}

func (s *SQLStore) Insert(ctx context.Context, rec models.ResponseRecord) (models.ResponseRecord, error) {
	rec.ID = uuid.NewString()
	rec.Timestamp = stamp()

	payload, err := json.Marshal(rec)
	if err != nil {
		return models.ResponseRecord{}, fmt.Errorf("failed to encode interview: %w", err)
	}

	_, err = s.db.ExecContext(ctx, `
		INSERT INTO interview (id, payload, submitted_at)
		VALUES ($1, $2, $3)
	`, rec.ID, string(payload), rec.Timestamp.Format(submittedAtLayout))
	if err != nil {
		return models.ResponseRecord{}, fmt.Errorf("failed to insert interview: %w", err)
	}

	return rec, nil
}

func (s *SQLStore) WriteResponse(ctx context.Context, rec models.ResponseRecord) error {
	_, err := s.Insert(ctx, rec)
	return err
}

// ReadAllResponses returns every record in submission order.
func (s *SQLStore) ReadAllResponses(ctx context.Context) ([]models.ResponseRecord, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT payload FROM interview
		ORDER BY submitted_at, id
	`)
	if err != nil {
		return nil, fmt.Errorf("failed to query interviews: %w", err)
	}
	defer rows.Close()

	records := []models.ResponseRecord{}
	for rows.Next() {
		var payload []byte
		if err := rows.Scan(&payload); err != nil {
			return nil, fmt.Errorf("failed to scan interview: %w", err)
		}

		var rec models.ResponseRecord
		if err := json.Unmarshal(payload, &rec); err != nil {
			slog.Warn("Skipping unreadable interview", "error", err)
			continue
		}
		records = append(records, rec)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read interviews: %w", err)
	}

	return records, nil
}

func (s *SQLStore) Count(ctx context.Context) (int, error) {
	var n int
	if err := s.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM interview`).Scan(&n); err != nil {
		return 0, fmt.Errorf("failed to count interviews: %w", err)
	}
	return n, nil
}

func (s *SQLStore) Close() error {
	return s.db.Close()
}
