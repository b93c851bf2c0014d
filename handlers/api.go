// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"net/http"
	"strings"

	"github.com/iancoleman/orderedmap"

	"github.com/royalflight/flightsupport/cliparse"
	"github.com/royalflight/flightsupport/middleware"
	"github.com/royalflight/flightsupport/models"
	"github.com/royalflight/flightsupport/permits"
)

type APIHandler struct {
	deps Deps
	cfg  cliparse.Config
}

func NewAPIHandler(deps Deps, cfg cliparse.Config) *APIHandler {
	return &APIHandler{deps: deps, cfg: cfg}
}

type permitView struct {
	Name string `json:"name"`
	permits.Record
}

// ListPermits handles GET /api/permits
// Keys keep the dataset's order.
func (h *APIHandler) ListPermits(w http.ResponseWriter, r *http.Request) {
	out := orderedmap.New()
	out.SetEscapeHTML(false)
	for _, code := range h.deps.Permits.Codes() {
		rec, ok := h.deps.Permits.Lookup(code)
		if !ok {
			continue
		}
		out.Set(code, permitView{Name: h.deps.Names.Display(code), Record: rec})
	}
	middleware.JSONResponse(w, http.StatusOK, out)
}

// GetPermit handles GET /api/permits/{code}
func (h *APIHandler) GetPermit(w http.ResponseWriter, r *http.Request) {
	code := strings.ToUpper(r.PathValue("code"))
	panel, ok := permits.BuildPanel(h.deps.Permits, h.deps.Names, code)
	if !ok {
		middleware.ErrorResponse(w, http.StatusNotFound, "no permits for "+code)
		return
	}
	loc := middleware.LocaleFrom(r.Context(), h.deps.Bundle)
	middleware.JSONResponse(w, http.StatusOK, localizePanel(panel, loc))
}

// RegionalPermits handles GET /api/permits/regional
func (h *APIHandler) RegionalPermits(w http.ResponseWriter, r *http.Request) {
	middleware.JSONResponse(w, http.StatusOK, permits.Regional())
}

type mapResponse struct {
	permits.MapView
	Degraded bool `json:"degraded"`
}

// Map handles GET /api/map
func (h *APIHandler) Map(w http.ResponseWriter, r *http.Request) {
	mv, degraded := mapView(r.Context(), h.deps)
	middleware.JSONResponse(w, http.StatusOK, mapResponse{MapView: mv, Degraded: degraded})
}

// Categories handles GET /api/charter/categories
func (h *APIHandler) Categories(w http.ResponseWriter, r *http.Request) {
	loc := middleware.LocaleFrom(r.Context(), h.deps.Bundle)
	middleware.JSONResponse(w, http.StatusOK, categoryViews(loc))
}

// Health handles GET /api/health
func (h *APIHandler) Health(w http.ResponseWriter, r *http.Request) {
	middleware.JSONResponse(w, http.StatusOK, models.HealthResponse{
		Status:    "ok",
		Inbox:     h.deps.Inbox.Enabled(),
		Simulated: h.deps.Mailer.Simulated(),
	})
}
