// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package contact

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHTTPSender(t *testing.T) {
	testCases := []struct {
		name    string
		status  int
		wantErr bool
	}{
		{"accepted", http.StatusOK, false},
		{"accepted no content", http.StatusNoContent, false},
		{"server error", http.StatusInternalServerError, true},
		{"bad request", http.StatusBadRequest, true},
		{"method not allowed", http.StatusMethodNotAllowed, true},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			var got Submission
			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				assert.Equal(t, http.MethodPost, r.Method)
				assert.Equal(t, "application/json", r.Header.Get("Content-Type"))
				assert.NoError(t, json.NewDecoder(r.Body).Decode(&got))
				w.WriteHeader(tc.status)
			}))
			defer srv.Close()

			err := NewHTTPSender(srv.URL, srv.Client()).Send(context.Background(), validSubmission())
			if tc.wantErr {
				assert.ErrorIs(t, err, ErrRejected)
			} else {
				assert.NoError(t, err)
			}
			assert.Equal(t, validSubmission(), got)
		})
	}
}

func TestHTTPSender_TransportFailure(t *testing.T) {
	srv := httptest.NewServer(http.NotFoundHandler())
	url := srv.URL
	client := srv.Client()
	srv.Close()

	err := NewHTTPSender(url, client).Send(context.Background(), validSubmission())
	require.Error(t, err)
	assert.NotErrorIs(t, err, ErrRejected)
}

func TestFormWithHTTPSender(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer srv.Close()

	f := NewForm()
	f.Fill(validSubmission())
	err := f.Submit(context.Background(), NewHTTPSender(srv.URL, srv.Client()))

	assert.ErrorIs(t, err, ErrRejected)
	assert.Equal(t, StatusError, f.Status())
	assert.Equal(t, validSubmission(), f.Values())
}
