// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package router

import (
	"net/http"

	"github.com/royalflight/flightsupport/cliparse"
	"github.com/royalflight/flightsupport/handlers"
	"github.com/royalflight/flightsupport/middleware"
	"github.com/royalflight/flightsupport/web"
)

func NewRouter(deps handlers.Deps, cfg cliparse.Config) http.Handler {
	mux := http.NewServeMux()

	// Initialize handlers
	pageHandler := handlers.NewPageHandler(deps, cfg)
	contactHandler := handlers.NewContactHandler(deps, cfg)
	apiHandler := handlers.NewAPIHandler(deps, cfg)
	inboxHandler := handlers.NewInboxHandler(deps, cfg)

	// Health check
	mux.HandleFunc("GET /health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("OK"))
	})

	// Pages
	mux.HandleFunc("/", middleware.WithLogging(pageHandler.Home)) // 404 or 405 page for anything else
	mux.HandleFunc("GET /gallery", middleware.WithLogging(pageHandler.Gallery))
	mux.HandleFunc("GET /charter", middleware.WithLogging(pageHandler.Charter))
	mux.HandleFunc("GET /charter/quote", middleware.WithLogging(pageHandler.CharterQuote))
	mux.HandleFunc("GET /permits", middleware.WithLogging(pageHandler.Permits))
	mux.HandleFunc("POST /contact", middleware.WithLogging(contactHandler.SubmitForm))
	mux.HandleFunc("GET /lang/{code}", middleware.WithLogging(pageHandler.SetLanguage))

	// Assets
	mux.Handle("GET /static/", http.StripPrefix("/static/", http.FileServerFS(web.Static())))
	mux.Handle("GET /images/", http.StripPrefix("/images/", http.FileServer(http.Dir(cfg.ImagesDir))))

	// JSON API, behind CORS so preflights never reach the method patterns
	api := http.NewServeMux()
	api.HandleFunc("POST /api/send-email", middleware.WithLogging(contactHandler.SendEmail))
	api.HandleFunc("/api/send-email", middleware.WithLogging(contactHandler.MethodNotAllowed))
	api.HandleFunc("GET /api/permits", middleware.WithLogging(apiHandler.ListPermits))
	api.HandleFunc("GET /api/permits/regional", middleware.WithLogging(apiHandler.RegionalPermits))
	api.HandleFunc("GET /api/permits/{code}", middleware.WithLogging(apiHandler.GetPermit))
	api.HandleFunc("GET /api/map", middleware.WithLogging(apiHandler.Map))
	api.HandleFunc("GET /api/charter/categories", middleware.WithLogging(apiHandler.Categories))
	api.HandleFunc("GET /api/inbox", middleware.WithLogging(inboxHandler.List))
	api.HandleFunc("GET /api/health", middleware.WithLogging(apiHandler.Health))
	mux.Handle("/api/", middleware.CORS(api))

	return middleware.RequestID(middleware.Gzip(middleware.WithLocale(deps.Bundle, mux)))
}
