// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package store

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/danielhkuo/stimmie/gateway"
	"github.com/danielhkuo/stimmie/models"
)

// ErrUnknownBackend is returned by Open for an unsupported database type.
var ErrUnknownBackend = errors.New("unknown database type")

// Store persists survey responses.
type Store interface {
	gateway.ReadWriter

	// Insert stores rec and returns it with its assigned id and timestamp.
	Insert(ctx context.Context, rec models.ResponseRecord) (models.ResponseRecord, error)
	Count(ctx context.Context) (int, error)
	Close() error
}

// Open connects to the backend named by dbType and prepares its schema.
func Open(ctx context.Context, dbType, url string) (Store, error) {
	switch dbType {
	case "", "sqlite":
		return OpenSQL(ctx, "sqlite", url)
	case "postgres":
		return OpenSQL(ctx, "postgres", url)
	case "mongo", "mongodb":
		return OpenMongo(ctx, url)
	}
	return nil, fmt.Errorf("%w: %q", ErrUnknownBackend, dbType)
}

// stamp returns the time recorded for a new response.
func stamp() time.Time {
	return time.Now().UTC()
}
