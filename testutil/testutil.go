// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package testutil

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"net/url"
	"path/filepath"
	"strings"
	"sync"
	"testing"

	"github.com/royalflight/flightsupport/cliparse"
	"github.com/royalflight/flightsupport/geo"
	"github.com/royalflight/flightsupport/inbox"
	"github.com/royalflight/flightsupport/mailer"
)

// SetupTestInbox opens a fresh SQLite inbox in a temp directory.
func SetupTestInbox(t *testing.T) *inbox.Store {
	t.Helper()

	url := "file:" + filepath.Join(t.TempDir(), "inbox.db")
	store, err := inbox.Open(context.Background(), "sqlite", url)
	if err != nil {
		t.Fatalf("Failed to open test inbox: %v", err)
	}
	t.Cleanup(func() { store.Close() })
	return store
}

// GetTestConfig returns a standard test configuration
func GetTestConfig() cliparse.Config {
	return cliparse.Config{
		Port:         3000,
		DatabaseType: "sqlite",
		AdminKeySalt: "test-admin-salt",
		IPHashSalt:   "test-ip-salt",
		Email: cliparse.EmailConfig{
			Port: 587,
			To:   "ops@royal.test",
		},
		Log: cliparse.LogConfig{Level: "info", Format: "text"},
	}
}

// FakeMailer records messages instead of sending them.
type FakeMailer struct {
	mu       sync.Mutex
	Sent     []mailer.Message
	Err      error // returned by Send when set
	Simulate bool
}

func (f *FakeMailer) Send(ctx context.Context, m mailer.Message) (mailer.Result, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.Err != nil {
		return "", f.Err
	}
	f.Sent = append(f.Sent, m)
	if f.Simulate {
		return mailer.ResultSimulated, nil
	}
	return mailer.ResultSent, nil
}

func (f *FakeMailer) Simulated() bool {
	return f.Simulate
}

// Messages returns a copy of what was sent so far.
func (f *FakeMailer) Messages() []mailer.Message {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]mailer.Message(nil), f.Sent...)
}

// FailingShapes is a geo.Source that always errors.
type FailingShapes struct{ Err error }

func (f FailingShapes) Shapes(context.Context) ([]geo.Shape, error) {
	return nil, f.Err
}

// TestShapes returns two square countries: Colombia, which has permits, and
// Venezuela, which does not.
func TestShapes() geo.Static {
	square := func(lon, lat float64) []geo.Polygon {
		return []geo.Polygon{{geo.Ring{
			{lon, lat}, {lon + 2, lat}, {lon + 2, lat + 2}, {lon, lat + 2}, {lon, lat},
		}}}
	}
	return geo.Static{
		{Code: "COL", Name: "Colombia", Polygons: square(-74, 4)},
		{Code: "VEN", Name: "Venezuela", Polygons: square(-66, 7)},
	}
}

// MakeRequest creates an HTTP test request
func MakeRequest(method, path string, body interface{}, headers map[string]string) *http.Request {
	var req *http.Request
	if body != nil {
		jsonBody, _ := json.Marshal(body)
		req = httptest.NewRequest(method, path, bytes.NewReader(jsonBody))
		req.Header.Set("Content-Type", "application/json")
	} else {
		req = httptest.NewRequest(method, path, nil)
	}

	for k, v := range headers {
		req.Header.Set(k, v)
	}

	return req
}

// MakeFormRequest creates a url-encoded form POST
func MakeFormRequest(path string, values url.Values) *http.Request {
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(values.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	return req
}

// AssertStatus checks that the response has the expected status code
func AssertStatus(t *testing.T, w *httptest.ResponseRecorder, expected int) {
	t.Helper()
	if w.Code != expected {
		t.Errorf("Expected status %d, got %d. Body: %s", expected, w.Code, w.Body.String())
	}
}

// AssertJSON decodes the response body into the provided struct
func AssertJSON(t *testing.T, w *httptest.ResponseRecorder, v interface{}) {
	t.Helper()
	if err := json.NewDecoder(w.Body).Decode(v); err != nil {
		t.Fatalf("Failed to decode JSON response: %v", err)
	}
}
