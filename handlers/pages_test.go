// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"errors"
	"html"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/royalflight/flightsupport/gallery"
	"github.com/royalflight/flightsupport/middleware"
	"github.com/royalflight/flightsupport/testutil"
)

func TestHome(t *testing.T) {
	env := newTestEnv(t)
	h := NewPageHandler(env.deps, testutil.GetTestConfig())

	w := env.serve(h.Home, httptest.NewRequest("GET", "/", nil))
	testutil.AssertStatus(t, w, http.StatusOK)

	body := w.Body.String()
	assert.Contains(t, body, "Private Charter")
	assert.Contains(t, body, `href="/charter"`)
	assert.Contains(t, body, `href="/permits"`)
	assert.Contains(t, body, "Santiago Prieto Durán")
	assert.Contains(t, html.UnescapeString(body), "+57 300 282 7853")
	assert.Contains(t, body, "(23 photos)")
	for n := 1; n <= gallery.PreviewImages; n++ {
		assert.Contains(t, body, gallery.ImagePath(n))
	}
	assert.NotContains(t, body, gallery.ImagePath(gallery.PreviewImages+1))
	assert.Contains(t, body, `href="/lang/es?next=%2f"`)
}

func TestHome_Spanish(t *testing.T) {
	env := newTestEnv(t)
	h := NewPageHandler(env.deps, testutil.GetTestConfig())

	req := httptest.NewRequest("GET", "/", nil)
	req.AddCookie(&http.Cookie{Name: middleware.LocaleCookie, Value: "es"})
	w := env.serve(h.Home, req)

	testutil.AssertStatus(t, w, http.StatusOK)
	assert.Contains(t, w.Body.String(), `<html lang="es">`)
	assert.Contains(t, w.Body.String(), "Servicios")
	assert.Contains(t, w.Body.String(), `href="/lang/en?next=%2f"`)
}

func TestHome_UnknownPathIs404(t *testing.T) {
	env := newTestEnv(t)
	h := NewPageHandler(env.deps, testutil.GetTestConfig())

	w := env.serve(h.Home, httptest.NewRequest("GET", "/nope", nil))
	testutil.AssertStatus(t, w, http.StatusNotFound)
}

func TestHome_OtherMethodsAre405(t *testing.T) {
	env := newTestEnv(t)
	h := NewPageHandler(env.deps, testutil.GetTestConfig())

	for _, tc := range []struct{ method, path string }{
		{"POST", "/"},
		{"DELETE", "/"},
		{"POST", "/health"},
		{"PUT", "/nope"},
	} {
		t.Run(tc.method+" "+tc.path, func(t *testing.T) {
			w := env.serve(h.Home, httptest.NewRequest(tc.method, tc.path, nil))
			testutil.AssertStatus(t, w, http.StatusMethodNotAllowed)
			assert.Equal(t, "GET, HEAD", w.Header().Get("Allow"))
		})
	}
}

func TestGallery(t *testing.T) {
	env := newTestEnv(t)
	h := NewPageHandler(env.deps, testutil.GetTestConfig())

	tests := []struct {
		name        string
		target      string
		wantCurrent string
		wantView    string
	}{
		{"default grid", "/gallery", `data-image="1"`, `data-view="grid"`},
		{"open lightbox", "/gallery?image=5&view=lightbox", `data-image="5"`, `data-view="lightbox"`},
		{"clamped high", "/gallery?image=99&view=lightbox", `data-image="23"`, `data-view="lightbox"`},
		{"garbage image", "/gallery?image=abc", `data-image="1"`, `data-view="grid"`},
		{"right wraps", "/gallery?image=23&view=lightbox&key=ArrowRight", `data-image="1"`, `data-view="lightbox"`},
		{"left wraps", "/gallery?image=1&view=lightbox&key=ArrowLeft", `data-image="23"`, `data-view="lightbox"`},
		{"next action", "/gallery?image=4&view=lightbox&action=next", `data-image="5"`, `data-view="lightbox"`},
		{"prev action", "/gallery?image=4&view=lightbox&action=prev", `data-image="3"`, `data-view="lightbox"`},
		{"toggle keeps image", "/gallery?image=7&view=lightbox&action=toggle", `data-image="7"`, `data-view="grid"`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := env.serve(h.Gallery, httptest.NewRequest("GET", tt.target, nil))
			testutil.AssertStatus(t, w, http.StatusOK)
			assert.Contains(t, w.Body.String(), tt.wantCurrent)
			assert.Contains(t, w.Body.String(), tt.wantView)
		})
	}
}

func TestGallery_LightboxLinks(t *testing.T) {
	env := newTestEnv(t)
	h := NewPageHandler(env.deps, testutil.GetTestConfig())

	w := env.serve(h.Gallery, httptest.NewRequest("GET", "/gallery?image=1&view=lightbox", nil))
	body := w.Body.String()
	assert.Contains(t, body, `/gallery?image=23&amp;view=lightbox`)
	assert.Contains(t, body, `/gallery?image=2&amp;view=lightbox`)
	assert.Contains(t, body, `/gallery?image=1&amp;view=grid`)
	assert.Contains(t, body, gallery.ImagePath(1))
}

func TestGallery_Close(t *testing.T) {
	env := newTestEnv(t)
	h := NewPageHandler(env.deps, testutil.GetTestConfig())

	for _, target := range []string{"/gallery?image=3&view=lightbox&key=Escape", "/gallery?action=close"} {
		w := env.serve(h.Gallery, httptest.NewRequest("GET", target, nil))
		testutil.AssertStatus(t, w, http.StatusSeeOther)
		assert.Equal(t, "/#gallery", w.Header().Get("Location"))
	}
}

func TestCharter(t *testing.T) {
	env := newTestEnv(t)
	h := NewPageHandler(env.deps, testutil.GetTestConfig())

	t.Run("grid", func(t *testing.T) {
		w := env.serve(h.Charter, httptest.NewRequest("GET", "/charter", nil))
		testutil.AssertStatus(t, w, http.StatusOK)
		body := w.Body.String()
		assert.Contains(t, body, "Select a category")
		for id := 1; id <= 6; id++ {
			assert.Contains(t, body, "/charter?category="+string(rune('0'+id)))
		}
	})

	t.Run("detail", func(t *testing.T) {
		w := env.serve(h.Charter, httptest.NewRequest("GET", "/charter?category=6", nil))
		testutil.AssertStatus(t, w, http.StatusOK)
		body := w.Body.String()
		assert.Contains(t, body, "Ultra Long Range")
		assert.Contains(t, body, "Gulfstream G650/G650ER")
		assert.Contains(t, body, `href="/charter/quote"`)
		assert.Contains(t, body, "Back to categories")
	})

	t.Run("unknown category stays on grid", func(t *testing.T) {
		w := env.serve(h.Charter, httptest.NewRequest("GET", "/charter?category=42", nil))
		testutil.AssertStatus(t, w, http.StatusOK)
		assert.Contains(t, w.Body.String(), "Select a category")
	})

	t.Run("quote redirects to contact", func(t *testing.T) {
		w := env.serve(h.CharterQuote, httptest.NewRequest("GET", "/charter/quote", nil))
		testutil.AssertStatus(t, w, http.StatusSeeOther)
		assert.Equal(t, "/#contact", w.Header().Get("Location"))
	})
}

func TestPermits(t *testing.T) {
	env := newTestEnv(t)
	h := NewPageHandler(env.deps, testutil.GetTestConfig())

	t.Run("no selection lists countries", func(t *testing.T) {
		w := env.serve(h.Permits, httptest.NewRequest("GET", "/permits", nil))
		testutil.AssertStatus(t, w, http.StatusOK)
		body := w.Body.String()
		assert.Contains(t, body, `href="/permits?country=COL"`)
		assert.Contains(t, body, "CENAMER")
		assert.Contains(t, body, "#D4AF37")
		assert.Contains(t, body, "#333")
		assert.NotContains(t, body, "panel-head")
	})

	t.Run("selected country shows panel", func(t *testing.T) {
		w := env.serve(h.Permits, httptest.NewRequest("GET", "/permits?country=col", nil))
		testutil.AssertStatus(t, w, http.StatusOK)
		body := w.Body.String()
		assert.Contains(t, body, "Overflight Permit")
		assert.Contains(t, body, "Handling Services")
		assert.Contains(t, body, "SKBO")
		assert.Contains(t, body, "Permiso de permanencia")
		assert.NotContains(t, body, "Landing Permit")
	})

	t.Run("non-dataset country is ignored", func(t *testing.T) {
		w := env.serve(h.Permits, httptest.NewRequest("GET", "/permits?country=VEN", nil))
		testutil.AssertStatus(t, w, http.StatusOK)
		assert.NotContains(t, w.Body.String(), "Overflight Permit")
	})

	t.Run("degraded map", func(t *testing.T) {
		degraded := newTestEnv(t)
		degraded.deps.Shapes = testutil.FailingShapes{Err: errors.New("offline")}
		dh := NewPageHandler(degraded.deps, testutil.GetTestConfig())

		w := degraded.serve(dh.Permits, httptest.NewRequest("GET", "/permits", nil))
		testutil.AssertStatus(t, w, http.StatusOK)
		assert.Contains(t, w.Body.String(), "The map is unavailable")
		assert.Contains(t, w.Body.String(), `class="marker`)
	})
}

func TestSetLanguage(t *testing.T) {
	env := newTestEnv(t)
	h := NewPageHandler(env.deps, testutil.GetTestConfig())

	mux := http.NewServeMux()
	mux.HandleFunc("GET /lang/{code}", h.SetLanguage)

	t.Run("known code", func(t *testing.T) {
		w := httptest.NewRecorder()
		mux.ServeHTTP(w, httptest.NewRequest("GET", "/lang/es?next=/permits%3Fcountry%3DCOL", nil))

		testutil.AssertStatus(t, w, http.StatusSeeOther)
		assert.Equal(t, "/permits?country=COL", w.Header().Get("Location"))
		cookies := w.Result().Cookies()
		if assert.Len(t, cookies, 1) {
			assert.Equal(t, middleware.LocaleCookie, cookies[0].Name)
			assert.Equal(t, "es", cookies[0].Value)
		}
	})

	t.Run("offsite next is ignored", func(t *testing.T) {
		w := httptest.NewRecorder()
		mux.ServeHTTP(w, httptest.NewRequest("GET", "/lang/en?next=https://evil.example", nil))
		assert.Equal(t, "/", w.Header().Get("Location"))
	})

	t.Run("unknown code", func(t *testing.T) {
		w := httptest.NewRecorder()
		mux.ServeHTTP(w, httptest.NewRequest("GET", "/lang/fr", nil))
		testutil.AssertStatus(t, w, http.StatusNotFound)
		assert.Empty(t, w.Result().Cookies())
	})
}
