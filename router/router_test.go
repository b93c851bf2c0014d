// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package router

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/royalflight/flightsupport/handlers"
	"github.com/royalflight/flightsupport/i18n"
	"github.com/royalflight/flightsupport/permits"
	"github.com/royalflight/flightsupport/testutil"
	"github.com/royalflight/flightsupport/web"
)

func newTestRouter(t *testing.T) http.Handler {
	t.Helper()

	renderer, err := web.NewRenderer()
	if err != nil {
		t.Fatalf("Failed to build renderer: %v", err)
	}
	cfg := testutil.GetTestConfig()
	cfg.ImagesDir = t.TempDir()

	deps := handlers.Deps{
		Bundle:   i18n.MustLoad(),
		Renderer: renderer,
		Mailer:   &testutil.FakeMailer{Simulate: true},
		Inbox:    testutil.SetupTestInbox(t),
		Shapes:   testutil.TestShapes(),
		Permits:  permits.Default(),
		Names:    permits.DefaultNames(),
	}
	return NewRouter(deps, cfg)
}

func TestHealthEndpoint(t *testing.T) {
	mux := newTestRouter(t)

	req := httptest.NewRequest("GET", "/health", nil)
	w := httptest.NewRecorder()

	mux.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Errorf("Expected status 200, got %d", w.Code)
	}

	if w.Body.String() != "OK" {
		t.Errorf("Expected body 'OK', got '%s'", w.Body.String())
	}
}

func TestRouteExistence(t *testing.T) {
	mux := newTestRouter(t)

	testCases := []struct {
		method string
		path   string
		status int
	}{
		{"GET", "/", http.StatusOK},
		{"GET", "/gallery?image=3&view=lightbox", http.StatusOK},
		{"GET", "/charter", http.StatusOK},
		{"GET", "/charter?category=2", http.StatusOK},
		{"GET", "/charter/quote", http.StatusSeeOther},
		{"GET", "/permits?country=COL", http.StatusOK},
		{"GET", "/lang/es", http.StatusSeeOther},
		{"GET", "/static/site.css", http.StatusOK},
		{"GET", "/api/permits", http.StatusOK},
		{"GET", "/api/permits/regional", http.StatusOK},
		{"GET", "/api/permits/PAN", http.StatusOK},
		{"GET", "/api/map", http.StatusOK},
		{"GET", "/api/charter/categories", http.StatusOK},
		{"GET", "/api/inbox", http.StatusUnauthorized},
		{"GET", "/api/health", http.StatusOK},
		{"GET", "/no-such-page", http.StatusNotFound},
		{"GET", "/images/img1.jpeg", http.StatusNotFound},
	}

	for _, tc := range testCases {
		t.Run(tc.method+" "+tc.path, func(t *testing.T) {
			req := httptest.NewRequest(tc.method, tc.path, nil)
			w := httptest.NewRecorder()

			mux.ServeHTTP(w, req)

			if w.Code != tc.status {
				t.Errorf("Expected %d for %s %s, got %d", tc.status, tc.method, tc.path, w.Code)
			}
		})
	}
}

func TestSpecificMethodRouting(t *testing.T) {
	mux := newTestRouter(t)

	testCases := []struct {
		name           string
		method         string
		path           string
		expectedStatus int
	}{
		{"POST to health endpoint", "POST", "/health", http.StatusMethodNotAllowed},
		{"POST to home", "POST", "/", http.StatusMethodNotAllowed},
		{"POST to unknown page", "POST", "/nope", http.StatusMethodNotAllowed},
		{"GET to send-email", "GET", "/api/send-email", http.StatusMethodNotAllowed},
		{"PUT to send-email", "PUT", "/api/send-email", http.StatusMethodNotAllowed},
		{"DELETE to permits", "DELETE", "/api/permits", http.StatusMethodNotAllowed},
		{"preflight to send-email", "OPTIONS", "/api/send-email", http.StatusOK},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			req := httptest.NewRequest(tc.method, tc.path, nil)
			w := httptest.NewRecorder()

			mux.ServeHTTP(w, req)

			if w.Code != tc.expectedStatus {
				t.Errorf("Expected %d for %s %s, got %d", tc.expectedStatus, tc.method, tc.path, w.Code)
			}
		})
	}
}

func TestSendEmailThroughRouter(t *testing.T) {
	mux := newTestRouter(t)

	body := `{"name":"Ana","email":"ana@example.com","message":"Hola"}`
	req := httptest.NewRequest("POST", "/api/send-email", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Origin", "https://royal-flightsupport.com")
	w := httptest.NewRecorder()

	mux.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("Expected 200, got %d. Body: %s", w.Code, w.Body.String())
	}
	if got := w.Header().Get("Access-Control-Allow-Origin"); got != "https://royal-flightsupport.com" {
		t.Errorf("Expected CORS origin echo, got %q", got)
	}
	if w.Header().Get("X-Request-ID") == "" {
		t.Error("Expected a request ID header")
	}
}

func TestLocaleAppliesToPages(t *testing.T) {
	mux := newTestRouter(t)

	req := httptest.NewRequest("GET", "/", nil)
	req.AddCookie(&http.Cookie{Name: "lang", Value: "es"})
	w := httptest.NewRecorder()

	mux.ServeHTTP(w, req)

	if !strings.Contains(w.Body.String(), `lang="es"`) {
		t.Error("Expected the page to render in Spanish from the lang cookie")
	}
}

func TestGzipNegotiation(t *testing.T) {
	mux := newTestRouter(t)

	req := httptest.NewRequest("GET", "/", nil)
	req.Header.Set("Accept-Encoding", "gzip")
	w := httptest.NewRecorder()

	mux.ServeHTTP(w, req)

	if got := w.Header().Get("Content-Encoding"); got != "gzip" {
		t.Errorf("Expected gzip encoding for the landing page, got %q", got)
	}
}
