// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/royalflight/flightsupport/geo"
	"github.com/royalflight/flightsupport/i18n"
	"github.com/royalflight/flightsupport/inbox"
	"github.com/royalflight/flightsupport/middleware"
	"github.com/royalflight/flightsupport/permits"
	"github.com/royalflight/flightsupport/testutil"
	"github.com/royalflight/flightsupport/web"
)

type testEnv struct {
	deps   Deps
	mailer *testutil.FakeMailer
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()

	renderer, err := web.NewRenderer()
	require.NoError(t, err)

	fm := &testutil.FakeMailer{}
	return &testEnv{
		mailer: fm,
		deps: Deps{
			Bundle:   i18n.MustLoad(),
			Renderer: renderer,
			Mailer:   fm,
			Shapes:   testutil.TestShapes(),
			Permits:  permits.Default(),
			Names:    permits.DefaultNames(),
		},
	}
}

func (e *testEnv) withInbox(t *testing.T) *inbox.Store {
	e.deps.Inbox = testutil.SetupTestInbox(t)
	return e.deps.Inbox
}

// serve runs h behind the locale middleware, as the router does.
func (e *testEnv) serve(h http.HandlerFunc, req *http.Request) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	middleware.WithLocale(e.deps.Bundle, h).ServeHTTP(w, req)
	return w
}

func TestMapView_Degrades(t *testing.T) {
	env := newTestEnv(t)

	mv, degraded := mapView(t.Context(), env.deps)
	assert.False(t, degraded)
	assert.Len(t, mv.Shapes, 2)
	assert.Len(t, mv.Markers, env.deps.Permits.Len())

	env.deps.Shapes = testutil.FailingShapes{Err: errors.New("offline")}
	mv, degraded = mapView(t.Context(), env.deps)
	assert.True(t, degraded)
	assert.Empty(t, mv.Shapes)
	assert.Len(t, mv.Markers, env.deps.Permits.Len(), "markers survive a shape failure")

	env.deps.Shapes = nil
	_, degraded = mapView(t.Context(), env.deps)
	assert.True(t, degraded)
}

func TestMapView_ActiveShapes(t *testing.T) {
	env := newTestEnv(t)
	mv, _ := mapView(t.Context(), env.deps)

	for _, s := range mv.Shapes {
		assert.Equal(t, env.deps.Permits.Has(s.Code), s.Active, s.Code)
	}
}

func TestLocalizePanel(t *testing.T) {
	env := newTestEnv(t)
	p, ok := permits.BuildPanel(env.deps.Permits, env.deps.Names, "COL")
	require.True(t, ok)

	es := localizePanel(p, env.deps.Bundle.Locale("es"))
	titles := make([]string, len(es.Sections))
	for i, s := range es.Sections {
		titles[i] = s.Title
	}
	assert.Equal(t, []string{"Permiso de Sobrevuelo", "Servicios de Handling", "Otros Permisos"}, titles)
}

func TestRender_TemplateFailureIs500(t *testing.T) {
	env := newTestEnv(t)
	w := httptest.NewRecorder()
	req := httptest.NewRequest("GET", "/", nil)

	render(w, req, env.deps, http.StatusOK, "missing-page", "", nil)

	testutil.AssertStatus(t, w, http.StatusInternalServerError)
	assert.True(t, strings.HasPrefix(w.Body.String(), "Internal Server Error"))
}

var _ geo.Source = testutil.FailingShapes{}
