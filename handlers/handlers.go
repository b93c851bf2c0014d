// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/royalflight/flightsupport/geo"
	"github.com/royalflight/flightsupport/i18n"
	"github.com/royalflight/flightsupport/inbox"
	"github.com/royalflight/flightsupport/mailer"
	"github.com/royalflight/flightsupport/middleware"
	"github.com/royalflight/flightsupport/permits"
	"github.com/royalflight/flightsupport/web"
)

// shapeTimeout bounds how long a page waits for country shapes.
const shapeTimeout = 5 * time.Second

// Mailer forwards contact submissions. *mailer.Service implements it.
type Mailer interface {
	Send(ctx context.Context, m mailer.Message) (mailer.Result, error)
	Simulated() bool
}

// Deps are the services shared by every handler.
type Deps struct {
	Bundle   *i18n.Bundle
	Renderer *web.Renderer
	Mailer   Mailer
	Inbox    *inbox.Store // nil when disabled
	Shapes   geo.Source
	Permits  *permits.Dataset
	Names    permits.Names
	Client   *http.Client // outbound client for MAIL_ENDPOINT
}

// pageData is what every template receives.
type pageData struct {
	Name   string
	L      i18n.Locale
	Toggle string
	Path   string
	Title  string
	Year   int
	Page   any
}

func newPageData(r *http.Request, bundle *i18n.Bundle, name, titleKey string, page any) pageData {
	loc := middleware.LocaleFrom(r.Context(), bundle)
	title := ""
	if titleKey != "" {
		title = loc.T(titleKey)
	}
	// the toggle redirects with GET, so form posts link back home
	path := r.URL.RequestURI()
	if r.Method != http.MethodGet {
		path = "/"
	}
	return pageData{
		Name:   name,
		L:      loc,
		Toggle: loc.Toggle().Lang(),
		Path:   path,
		Title:  title,
		Year:   time.Now().Year(),
		Page:   page,
	}
}

type errorPage struct {
	Status  int
	Message string
}

// render writes a page, falling back to a plain 500 when the template fails.
func render(w http.ResponseWriter, r *http.Request, deps Deps, status int, name, titleKey string, page any) {
	data := newPageData(r, deps.Bundle, name, titleKey, page)
	if err := deps.Renderer.Render(w, status, name, data); err != nil {
		slog.Error("failed to render page", "page", name, "error", err)
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
	}
}

func renderError(w http.ResponseWriter, r *http.Request, deps Deps, status int) {
	render(w, r, deps, status, web.PageError, "", errorPage{Status: status, Message: http.StatusText(status)})
}

// mapView builds the permits map. When shapes cannot be loaded the map
// degrades to markers only and degraded is true.
func mapView(ctx context.Context, deps Deps) (mv permits.MapView, degraded bool) {
	var shapes []geo.Shape
	if deps.Shapes != nil {
		ctx, cancel := context.WithTimeout(ctx, shapeTimeout)
		defer cancel()

		var err error
		shapes, err = deps.Shapes.Shapes(ctx)
		if err != nil {
			slog.Warn("country shapes unavailable, showing markers only", "error", err)
			shapes, degraded = nil, true
		}
	} else {
		degraded = true
	}
	return permits.BuildMap(deps.Permits, deps.Names, shapes, geo.DefaultProjection()), degraded
}

var sectionKeys = map[permits.SectionKind]string{
	permits.SectionOverflight: "overflight_permit",
	permits.SectionLanding:    "landing_permit",
	permits.SectionHandling:   "handling_services",
	permits.SectionOther:      "other_permits",
}

// localizePanel replaces section titles with the locale's strings.
func localizePanel(p permits.Panel, loc i18n.Locale) permits.Panel {
	for i, s := range p.Sections {
		if key, ok := sectionKeys[s.Kind]; ok {
			p.Sections[i].Title = loc.T(key)
		}
	}
	return p
}
