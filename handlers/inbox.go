// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"log/slog"
	"net/http"
	"strconv"

	"github.com/dustin/go-humanize"

	"github.com/royalflight/flightsupport/auth"
	"github.com/royalflight/flightsupport/cliparse"
	"github.com/royalflight/flightsupport/middleware"
	"github.com/royalflight/flightsupport/models"
)

type InboxHandler struct {
	deps Deps
	cfg  cliparse.Config
}

func NewInboxHandler(deps Deps, cfg cliparse.Config) *InboxHandler {
	return &InboxHandler{deps: deps, cfg: cfg}
}

// List handles GET /api/inbox?limit=N
func (h *InboxHandler) List(w http.ResponseWriter, r *http.Request) {
	if !h.deps.Inbox.Enabled() {
		middleware.ErrorResponse(w, http.StatusNotFound, "inbox disabled")
		return
	}

	adminKey := r.Header.Get("X-Admin-Key")
	if adminKey == "" {
		middleware.ErrorResponse(w, http.StatusUnauthorized, "X-Admin-Key header required")
		return
	}
	if err := auth.ValidateAdminKey(auth.InboxScope, adminKey, h.cfg.AdminKeySalt); err != nil {
		middleware.ErrorResponse(w, http.StatusUnauthorized, "invalid admin key")
		return
	}

	limit := 0
	if s := r.URL.Query().Get("limit"); s != "" {
		n, err := strconv.Atoi(s)
		if err != nil || n < 1 {
			middleware.ErrorResponse(w, http.StatusBadRequest, "limit must be a positive integer")
			return
		}
		limit = n
	}

	entries, err := h.deps.Inbox.List(r.Context(), limit)
	if err != nil {
		slog.Error("failed to list inbox", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Failed to list inbox")
		return
	}
	total, err := h.deps.Inbox.Count(r.Context())
	if err != nil {
		slog.Error("failed to count inbox", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Failed to list inbox")
		return
	}

	out := models.InboxList{Total: total, Entries: make([]models.InboxEntry, 0, len(entries))}
	for _, e := range entries {
		out.Entries = append(out.Entries, models.InboxEntry{
			ID:         e.ID,
			Name:       e.Name,
			Email:      e.Email,
			Message:    e.Message,
			Outcome:    string(e.Outcome),
			IPHash:     e.IPHash,
			UserAgent:  e.UserAgent,
			ReceivedAt: e.ReceivedAt,
			Received:   humanize.Time(e.ReceivedAt),
		})
	}
	middleware.JSONResponse(w, http.StatusOK, out)
}
