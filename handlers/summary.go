// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"golang.org/x/sync/singleflight"

	"github.com/danielhkuo/stimmie/aggregate"
	"github.com/danielhkuo/stimmie/middleware"
	"github.com/danielhkuo/stimmie/store"
)

// summaryTimeout bounds the shared read behind concurrent summary requests.
const summaryTimeout = 30 * time.Second

type SummaryHandler struct {
	store store.Store
	group singleflight.Group
}

func NewSummaryHandler(st store.Store) *SummaryHandler {
	return &SummaryHandler{store: st}
}

// Get handles GET /api/summary
// Concurrent requests share one read and aggregation. The shared read does
// not end when the request that started it is canceled.
func (h *SummaryHandler) Get(w http.ResponseWriter, r *http.Request) {
	ch := h.group.DoChan("summary", func() (any, error) {
		ctx, cancel := context.WithTimeout(context.WithoutCancel(r.Context()), summaryTimeout)
		defer cancel()

		records, err := h.store.ReadAllResponses(ctx)
		if err != nil {
			return nil, err
		}
		return aggregate.Summarize(records), nil
	})

	var res singleflight.Result
	select {
	case res = <-ch:
	case <-r.Context().Done():
		slog.Debug("summary request canceled", "error", r.Context().Err())
		return
	}
	if res.Err != nil {
		slog.Error("failed to build summary", "error", res.Err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Failed to build summary")
		return
	}

	summary := res.Val.(aggregate.Summary)
	slog.Debug("summary built", "responses", summary.Responses, "shared", res.Shared)
	middleware.JSONResponse(w, http.StatusOK, summary)
}
