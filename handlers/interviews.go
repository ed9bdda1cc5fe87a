// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"strings"

	"github.com/zeebo/blake3"

	"github.com/danielhkuo/stimmie/catalog"
	"github.com/danielhkuo/stimmie/middleware"
	"github.com/danielhkuo/stimmie/models"
	"github.com/danielhkuo/stimmie/store"
)

type InterviewHandler struct {
	store store.Store
	cat   *catalog.Catalog
}

func NewInterviewHandler(st store.Store, cat *catalog.Catalog) *InterviewHandler {
	if cat == nil {
		cat = catalog.Default()
	}
	return &InterviewHandler{store: st, cat: cat}
}

// Create handles POST /api/interviews
// The server assigns id and timestamp; any sent by the client are ignored.
func (h *InterviewHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req models.InterviewRequest
	if err := middleware.ParseJSONBody(r, &req); err != nil {
		var typeErr *json.UnmarshalTypeError
		if errors.As(err, &typeErr) && typeErr.Field != "" {
			middleware.ErrorResponse(w, http.StatusBadRequest, fmt.Sprintf("%s: expected %s", typeErr.Field, typeErr.Type))
			return
		}
		middleware.ErrorResponse(w, http.StatusBadRequest, "Invalid JSON")
		return
	}

	if err := req.Validate(h.cat); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, strings.ReplaceAll(err.Error(), "\n", "; "))
		return
	}

	stored, err := h.store.Insert(r.Context(), req.Record())
	if err != nil {
		slog.Error("failed to store interview", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Failed to save interview")
		return
	}

	slog.Info("interview stored", "id", stored.ID, "hometown", stored.Hometown)
	middleware.JSONResponse(w, http.StatusCreated, models.InterviewResponse{Success: true})
}

// List handles GET /api/interviews
// Responds 304 when If-None-Match carries the current ETag.
func (h *InterviewHandler) List(w http.ResponseWriter, r *http.Request) {
	records, err := h.store.ReadAllResponses(r.Context())
	if err != nil {
		slog.Error("failed to read interviews", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Failed to fetch interviews")
		return
	}

	body, err := json.Marshal(records)
	if err != nil {
		slog.Error("failed to encode interviews", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Failed to fetch interviews")
		return
	}

	etag := ETag(body)
	w.Header().Set("ETag", etag)
	w.Header().Set("Cache-Control", "no-cache")

	if etagMatches(r.Header.Get("If-None-Match"), etag) {
		w.WriteHeader(http.StatusNotModified)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	if _, err := w.Write(body); err != nil {
		slog.Error("failed to write interviews", "error", err)
	}
}

// ETag returns a strong entity tag for body.
func ETag(body []byte) string {
	sum := blake3.Sum256(body)
	return fmt.Sprintf(`"%x"`, sum[:16])
}

func etagMatches(header, etag string) bool {
	if header == "" {
		return false
	}
	for _, candidate := range strings.Split(header, ",") {
		candidate = strings.TrimPrefix(strings.TrimSpace(candidate), "W/")
		if candidate == "*" || candidate == etag {
			return true
		}
	}
	return false
}
