// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"fmt"
	"net/http"
	"strconv"
	"strings"

	"github.com/royalflight/flightsupport/charter"
	"github.com/royalflight/flightsupport/cliparse"
	"github.com/royalflight/flightsupport/contact"
	"github.com/royalflight/flightsupport/gallery"
	"github.com/royalflight/flightsupport/i18n"
	"github.com/royalflight/flightsupport/middleware"
	"github.com/royalflight/flightsupport/models"
	"github.com/royalflight/flightsupport/permits"
	"github.com/royalflight/flightsupport/web"
)

type PageHandler struct {
	deps Deps
	cfg  cliparse.Config
}

func NewPageHandler(deps Deps, cfg cliparse.Config) *PageHandler {
	return &PageHandler{deps: deps, cfg: cfg}
}

type service struct {
	TitleKey string
	DescKey  string
	Href     string
}

var services = []service{
	{"service_charter_title", "service_charter_desc", "/charter"},
	{"service_permits_title", "service_permits_desc", "/permits"},
	{"service_fuel_title", "service_fuel_desc", ""},
	{"service_catering_title", "service_catering_desc", ""},
}

type contactCard struct {
	Name      string
	Email     string
	Phone     string
	PhoneDial string
}

var operationsCard = contactCard{
	Name:      "Santiago Prieto Durán",
	Email:     "Ops@royal-flightsupport.com",
	Phone:     "+57 300 282 7853",
	PhoneDial: "+573002827853",
}

type contactView struct {
	Values contact.Submission
	Errors map[string]string // field -> translated error
	Status contact.Status
}

var errorKeys = map[string]string{
	contact.TextRequired:   "err_required",
	contact.TextEmailShape: "err_email",
}

func newContactView(f *contact.Form, loc i18n.Locale) contactView {
	cv := contactView{Values: f.Values(), Status: f.Status()}
	if errs := f.Errors(); len(errs) > 0 {
		cv.Errors = make(map[string]string, len(errs))
		for field, text := range errs {
			if key, ok := errorKeys[text]; ok {
				text = loc.T(key)
			}
			cv.Errors[field] = text
		}
	}
	return cv
}

type contactPage struct {
	Contact contactView
	Card    contactCard
}

type homePage struct {
	Services []service
	Preview  []int
	Total    int
	Contact  contactView
	Card     contactCard
}

// Home handles GET /. It is also the catch-all route, so it answers 405
// for other methods and 404 for other paths.
func (h *PageHandler) Home(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet && r.Method != http.MethodHead {
		w.Header().Set("Allow", "GET, HEAD")
		renderError(w, r, h.deps, http.StatusMethodNotAllowed)
		return
	}
	if r.URL.Path != "/" {
		renderError(w, r, h.deps, http.StatusNotFound)
		return
	}
	loc := middleware.LocaleFrom(r.Context(), h.deps.Bundle)
	render(w, r, h.deps, http.StatusOK, web.PageHome, "", homePage{
		Services: services,
		Preview:  gallery.Positions(gallery.PreviewImages),
		Total:    gallery.TotalImages,
		Contact:  newContactView(contact.NewForm(), loc),
		Card:     operationsCard,
	})
}

type galleryPage struct {
	Current    int
	Total      int
	Mode       gallery.Mode
	Positions  []int
	PrevHref   string
	NextHref   string
	ToggleHref string
}

func galleryHref(v *gallery.Viewer) string {
	return fmt.Sprintf("/gallery?image=%d&view=%s", v.Current(), v.Mode())
}

// Gallery handles GET /gallery?image=N&view=grid|lightbox&key=K&action=A
func (h *PageHandler) Gallery(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	image, err := strconv.Atoi(q.Get("image"))
	if err != nil {
		image = 1
	}

	v := gallery.New(gallery.TotalImages, image)
	if gallery.ParseMode(q.Get("view")) == gallery.ModeLightbox {
		v.OpenAt(v.Current())
	}
	if key := q.Get("key"); key != "" {
		v.HandleKey(key)
	}
	switch q.Get("action") {
	case "next":
		v.Next()
	case "prev":
		v.Prev()
	case "toggle":
		v.ToggleMode()
	case "close":
		v.Close()
	}

	if !v.IsOpen() {
		http.Redirect(w, r, "/#gallery", http.StatusSeeOther)
		return
	}

	prev, next, toggle := v.Clone(), v.Clone(), v.Clone()
	prev.Prev()
	next.Next()
	toggle.ToggleMode()

	render(w, r, h.deps, http.StatusOK, web.PageGallery, "gallery", galleryPage{
		Current:    v.Current(),
		Total:      v.Total(),
		Mode:       v.Mode(),
		Positions:  gallery.Positions(v.Total()),
		PrevHref:   galleryHref(prev),
		NextHref:   galleryHref(next),
		ToggleHref: galleryHref(toggle),
	})
}

type charterPage struct {
	Categories []models.CategoryView
	Selected   *models.CategoryView
}

func categoryView(c charter.Category, loc i18n.Locale) models.CategoryView {
	return models.CategoryView{
		ID:       c.ID,
		Name:     loc.T(c.NameKey),
		Tagline:  loc.T(c.TaglineKey),
		Capacity: loc.T(c.CapacityKey),
		Range:    loc.T(c.RangeKey),
		Aircraft: c.Aircraft,
		Image:    c.Image,
	}
}

func categoryViews(loc i18n.Locale) []models.CategoryView {
	cats := charter.Categories()
	views := make([]models.CategoryView, len(cats))
	for i, c := range cats {
		views[i] = categoryView(c, loc)
	}
	return views
}

// Charter handles GET /charter[?category=ID]
func (h *PageHandler) Charter(w http.ResponseWriter, r *http.Request) {
	loc := middleware.LocaleFrom(r.Context(), h.deps.Bundle)

	b := charter.NewBrowser()
	b.Open()
	if id, err := strconv.Atoi(r.URL.Query().Get("category")); err == nil {
		b.Select(id)
	}

	page := charterPage{Categories: categoryViews(loc)}
	if c, ok := b.Selected(); ok {
		cv := categoryView(c, loc)
		page.Selected = &cv
	}
	render(w, r, h.deps, http.StatusOK, web.PageCharter, "privateCharter", page)
}

// CharterQuote handles GET /charter/quote
func (h *PageHandler) CharterQuote(w http.ResponseWriter, r *http.Request) {
	b := charter.NewBrowser()
	b.Open()
	http.Redirect(w, r, b.RequestQuote(), http.StatusSeeOther)
}

type countryLink struct {
	Code string
	Name string
}

type permitsPage struct {
	Map       permits.MapView
	Degraded  bool
	Selected  string
	Panel     *permits.Panel
	Countries []countryLink
	Regional  []permits.RegionalPermit
}

// Permits handles GET /permits[?country=ISO]
func (h *PageHandler) Permits(w http.ResponseWriter, r *http.Request) {
	loc := middleware.LocaleFrom(r.Context(), h.deps.Bundle)

	sel := permits.NewSelection(h.deps.Permits)
	if c := r.URL.Query().Get("country"); c != "" {
		sel.ClickShape(strings.ToUpper(c))
	}

	mv, degraded := mapView(r.Context(), h.deps)
	page := permitsPage{Map: mv, Degraded: degraded, Regional: permits.Regional()}

	if code, ok := sel.Selected(); ok {
		if p, ok := permits.BuildPanel(h.deps.Permits, h.deps.Names, code); ok {
			p = localizePanel(p, loc)
			page.Selected = code
			page.Panel = &p
		}
	}
	for _, code := range h.deps.Permits.Codes() {
		page.Countries = append(page.Countries, countryLink{Code: code, Name: h.deps.Names.Display(code)})
	}

	render(w, r, h.deps, http.StatusOK, web.PagePermits, "permitsAndHandling", page)
}

// SetLanguage handles GET /lang/{code}
func (h *PageHandler) SetLanguage(w http.ResponseWriter, r *http.Request) {
	code := r.PathValue("code")
	if !h.deps.Bundle.Has(code) {
		renderError(w, r, h.deps, http.StatusNotFound)
		return
	}
	middleware.SetLocaleCookie(w, code)
	http.Redirect(w, r, middleware.SafeRedirectTarget(r.URL.Query().Get("next")), http.StatusSeeOther)
}
