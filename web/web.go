// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package web

import (
	"bytes"
	"embed"
	"fmt"
	"html/template"
	"io/fs"
	"net/http"

	"github.com/royalflight/flightsupport/gallery"
)

//go:embed templates/*.html
var templateFS embed.FS

//go:embed static
var staticFS embed.FS

// Pages rendered by the site.
const (
	PageHome    = "home"
	PageGallery = "gallery"
	PageCharter = "charter"
	PagePermits = "permits"
	PageContact = "contact"
	PageError   = "error"
)

var pages = []string{PageHome, PageGallery, PageCharter, PagePermits, PageContact, PageError}

// Static returns the embedded stylesheet and script.
func Static() fs.FS {
	sub, err := fs.Sub(staticFS, "static")
	if err != nil {
		panic(err)
	}
	return sub
}

// Renderer executes the base layout around one page template.
type Renderer struct {
	pages map[string]*template.Template
}

// NewRenderer parses every page once.
func NewRenderer() (*Renderer, error) {
	funcs := template.FuncMap{
		"imagePath": gallery.ImagePath,
	}

	layout, err := template.New("_root").Funcs(funcs).ParseFS(templateFS, "templates/base.html", "templates/partials.html")
	if err != nil {
		return nil, fmt.Errorf("failed to parse layout: %w", err)
	}

	r := &Renderer{pages: make(map[string]*template.Template, len(pages))}
	for _, name := range pages {
		t, err := layout.Clone()
		if err != nil {
			return nil, fmt.Errorf("failed to clone layout: %w", err)
		}
		if _, err := t.ParseFS(templateFS, "templates/"+name+".html"); err != nil {
			return nil, fmt.Errorf("failed to parse %s: %w", name, err)
		}
		r.pages[name] = t
	}
	return r, nil
}

// Render writes page with the given status. The page is rendered into a
// buffer first so a template error never leaves a half-written response.
func (r *Renderer) Render(w http.ResponseWriter, status int, page string, data any) error {
	t, ok := r.pages[page]
	if !ok {
		return fmt.Errorf("unknown page %q", page)
	}

	var buf bytes.Buffer
	if err := t.ExecuteTemplate(&buf, "base", data); err != nil {
		return fmt.Errorf("failed to render %s: %w", page, err)
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	_, err := buf.WriteTo(w)
	return err
}
