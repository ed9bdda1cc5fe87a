// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"log/slog"
	"net/http"

	"github.com/danielhkuo/stimmie/middleware"
	"github.com/danielhkuo/stimmie/models"
	"github.com/danielhkuo/stimmie/store"
)

type StatusHandler struct {
	store store.Store
}

func NewStatusHandler(st store.Store) *StatusHandler {
	return &StatusHandler{store: st}
}

// Root handles GET /
func (h *StatusHandler) Root(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.Write([]byte("Stimmie API is running"))
}

// APIRoot handles GET /api
func (h *StatusHandler) APIRoot(w http.ResponseWriter, r *http.Request) {
	middleware.JSONResponse(w, http.StatusOK, models.APIStatusResponse{
		Status:  "ok",
		Message: "API root is working",
	})
}

// Health handles GET /health
func (h *StatusHandler) Health(w http.ResponseWriter, r *http.Request) {
	w.WriteHeader(http.StatusOK)
	w.Write([]byte("OK"))
}

// StoreCheck handles GET /api/store-check
// Reports how many interviews the store holds.
func (h *StatusHandler) StoreCheck(w http.ResponseWriter, r *http.Request) {
	n, err := h.store.Count(r.Context())
	if err != nil {
		slog.Error("store check failed", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, err.Error())
		return
	}

	middleware.JSONResponse(w, http.StatusOK, models.StoreCheckResponse{
		Success: true,
		Count:   n,
	})
}
