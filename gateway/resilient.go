// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package gateway

import (
	"context"
	"errors"
	"log/slog"

	"github.com/danielhkuo/stimmie/models"
)

// ErrNoData means every read source failed.
var ErrNoData = errors.New("no data available")

// OfflineNotice is shown when data comes from a fallback source.
const OfflineNotice = "offline mode - limited data available"

// Source names where a collection came from.
type Source string

const (
	SourcePrimary Source = "primary"
	SourceCache   Source = "cache"
	SourceStatic  Source = "static"
)

// Result is a collection plus its origin.
type Result struct {
	Records []models.ResponseRecord
	Source  Source
}

// Offline reports whether the records came from a fallback.
func (r Result) Offline() bool {
	return r.Source != SourcePrimary
}

// Notice returns the inline message for r, or "".
func (r Result) Notice() string {
	if r.Offline() {
		return OfflineNotice
	}
	return ""
}

// Resilient reads from primary and falls back to the cached snapshot and
// then the static dataset. Writes go to primary only.
type Resilient struct {
	primary ReadWriter
	cache   *SnapshotCache
	static  Reader
}

// NewResilient builds the read chain. cache and static may be nil.
func NewResilient(primary ReadWriter, cache *SnapshotCache, static Reader) *Resilient {
	return &Resilient{primary: primary, cache: cache, static: static}
}

func (r *Resilient) WriteResponse(ctx context.Context, rec models.ResponseRecord) error {
	return r.primary.WriteResponse(ctx, rec)
}

func (r *Resilient) ReadAllResponses(ctx context.Context) ([]models.ResponseRecord, error) {
	res, err := r.Fetch(ctx)
	if err != nil {
		return nil, err
	}
	return res.Records, nil
}

// Fetch walks the chain and returns the first collection it can get.
// A successful primary read refreshes the cache.
func (r *Resilient) Fetch(ctx context.Context) (Result, error) {
	records, err := r.primary.ReadAllResponses(ctx)
	if err == nil {
		if r.cache != nil {
			if cerr := r.cache.Save(records); cerr != nil {
				slog.Warn("Failed to refresh snapshot cache", "error", cerr)
			}
		}
		return Result{Records: records, Source: SourcePrimary}, nil
	}
	slog.Warn("Primary read failed, trying fallbacks", "error", err)

	if r.cache != nil {
		snap, cerr := r.cache.Load()
		if cerr == nil {
			slog.Info("Serving cached snapshot", "records", len(snap.Records), "saved_at", snap.SavedAt)
			return Result{Records: snap.Records, Source: SourceCache}, nil
		}
		if !errors.Is(cerr, ErrNoSnapshot) {
			slog.Warn("Failed to load snapshot cache", "error", cerr)
		}
	}

	if r.static != nil {
		records, serr := r.static.ReadAllResponses(ctx)
		if serr == nil {
			slog.Info("Serving static fallback dataset", "records", len(records))
			return Result{Records: records, Source: SourceStatic}, nil
		}
		slog.Warn("Failed to read static fallback", "error", serr)
	}

	return Result{Records: []models.ResponseRecord{}}, ErrNoData
}
