// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package middleware

import (
	"context"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/klauspost/compress/gzhttp"

	"github.com/royalflight/flightsupport/i18n"
)

type ctxKey int

const (
	requestIDKey ctxKey = iota
	localeKey
)

const (
	// RequestIDHeader carries the request ID in both directions.
	RequestIDHeader = "X-Request-ID"
	// LocaleCookie remembers the visitor's language.
	LocaleCookie = "lang"
)

// RequestID tags every request with an ID, reusing a sane incoming
// X-Request-ID and generating a UUID otherwise.
func RequestID(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id := r.Header.Get(RequestIDHeader)
		if id == "" || len(id) > 64 {
			id = uuid.NewString()
		}
		w.Header().Set(RequestIDHeader, id)
		next.ServeHTTP(w, r.WithContext(context.WithValue(r.Context(), requestIDKey, id)))
	})
}

// RequestIDFrom returns the request ID stored by RequestID, or "".
func RequestIDFrom(ctx context.Context) string {
	id, _ := ctx.Value(requestIDKey).(string)
	return id
}

// Gzip compresses responses for clients that accept it.
func Gzip(next http.Handler) http.Handler {
	return gzhttp.GzipHandler(next)
}

// WithLocale resolves the visitor's language from the lang query parameter,
// then the lang cookie, then Accept-Language.
func WithLocale(bundle *i18n.Bundle, next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		lang := r.URL.Query().Get("lang")
		if !bundle.Has(lang) {
			lang = ""
			if c, err := r.Cookie(LocaleCookie); err == nil && bundle.Has(c.Value) {
				lang = c.Value
			}
		}
		if lang == "" {
			lang = bundle.Match(r.Header.Get("Accept-Language"))
		}
		loc := bundle.Locale(lang)
		next.ServeHTTP(w, r.WithContext(context.WithValue(r.Context(), localeKey, loc)))
	})
}

// LocaleFrom returns the locale stored by WithLocale. Without one it falls
// back to the bundle's default.
func LocaleFrom(ctx context.Context, bundle *i18n.Bundle) i18n.Locale {
	if loc, ok := ctx.Value(localeKey).(i18n.Locale); ok {
		return loc
	}
	return bundle.Locale(i18n.Default)
}

// SetLocaleCookie stores lang for a year.
func SetLocaleCookie(w http.ResponseWriter, lang string) {
	http.SetCookie(w, &http.Cookie{
		Name:     LocaleCookie,
		Value:    lang,
		Path:     "/",
		MaxAge:   int((365 * 24 * time.Hour).Seconds()),
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
}

// SafeRedirectTarget returns target when it is a local path, otherwise "/".
func SafeRedirectTarget(target string) string {
	if target == "" || !strings.HasPrefix(target, "/") || strings.HasPrefix(target, "//") || strings.HasPrefix(target, `/\`) {
		return "/"
	}
	u, err := url.Parse(target)
	if err != nil || u.Host != "" || u.Scheme != "" {
		return "/"
	}
	return u.RequestURI()
}
