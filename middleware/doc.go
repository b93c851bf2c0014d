// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package middleware provides HTTP middleware and helper functions.

# Request Logging

Wrap handlers with request logging:

	mux.HandleFunc("GET /health", middleware.WithLogging(handler))

Logs request start (method, path, remote, request_id) and completion
(status, duration_ms).

# Request IDs, Gzip and Locale

The router wraps the whole mux:

	handler := middleware.RequestID(middleware.Gzip(middleware.WithLocale(bundle, mux)))

RequestID reuses an incoming X-Request-ID or generates a UUID. Gzip uses
klauspost gzhttp. WithLocale picks the language from ?lang=, the lang cookie
or Accept-Language and stores an i18n.Locale in the request context:

	loc := middleware.LocaleFrom(r.Context(), bundle)

# CORS Middleware

CORS reflects the request origin and allows GET, POST and OPTIONS with
headers Content-Type, X-Admin-Key and X-Request-ID. It wraps the /api/
routes only.

# JSON Helpers

Write JSON responses:

	middleware.JSONResponse(w, http.StatusOK, data)
	middleware.ErrorResponse(w, http.StatusBadRequest, "message")

Parse JSON request bodies (capped at MaxBodyBytes):

	var req models.SendEmailRequest
	if err := middleware.ParseJSONBody(r, &req); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Invalid JSON")
		return
	}

# Client IP Extraction

Get the original client IP (handles X-Forwarded-For, X-Real-IP):

	ip := middleware.GetClientIP(r)

Used for the hashed IP stored with archived submissions.
*/
package middleware
