// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"strconv"
	"strings"
	"syscall"
	"time"

	"github.com/dustin/go-humanize"
	"gopkg.in/natefinch/lumberjack.v2"

	"github.com/royalflight/flightsupport/auth"
	"github.com/royalflight/flightsupport/cliparse"
	"github.com/royalflight/flightsupport/gallery"
	"github.com/royalflight/flightsupport/geo"
	"github.com/royalflight/flightsupport/handlers"
	"github.com/royalflight/flightsupport/i18n"
	"github.com/royalflight/flightsupport/inbox"
	"github.com/royalflight/flightsupport/mailer"
	"github.com/royalflight/flightsupport/permits"
	"github.com/royalflight/flightsupport/router"
	"github.com/royalflight/flightsupport/web"
)

func main() {
	var err error

	// Parse configuration
	cfg, err := cliparse.ParseFlags(os.Args[1:])
	if err != nil {
		slog.Error("Error parsing flags", "error", err)
		os.Exit(1)
	}

	if cfg.PrintAdminKey {
		fmt.Println(auth.GenerateAdminKey(auth.InboxScope, cfg.AdminKeySalt))
		return
	}

	closeLog := initLogger(cfg.Log)
	defer closeLog()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// Open the submission archive; an empty DATABASE_URL disables it
	store, err := inbox.Open(ctx, cfg.DatabaseType, cfg.DatabaseURL)
	switch {
	case errors.Is(err, inbox.ErrDisabled):
		slog.Info("Inbox disabled")
	case err != nil:
		slog.Error("inbox open failed", "error", err)
		os.Exit(1)
	default:
		slog.Info("Inbox ready", "type", cfg.DatabaseType)
		defer store.Close()
	}

	bundle, err := i18n.Load()
	if err != nil {
		slog.Error("locale load failed", "error", err)
		os.Exit(1)
	}

	renderer, err := web.NewRenderer()
	if err != nil {
		slog.Error("template parse failed", "error", err)
		os.Exit(1)
	}

	report, err := gallery.CheckAssets(cfg.ImagesDir, gallery.TotalImages)
	switch {
	case err != nil:
		slog.Warn("gallery images unreadable", "dir", cfg.ImagesDir, "error", err)
	case len(report.Missing) > 0:
		slog.Warn("gallery images missing", "dir", cfg.ImagesDir, "missing", report.Missing,
			"found", gallery.TotalImages-len(report.Missing), "size", humanize.Bytes(report.TotalBytes))
	default:
		slog.Info("Gallery images ready", "count", gallery.TotalImages, "size", humanize.Bytes(report.TotalBytes))
	}

	mail := mailer.New(mailer.Config{
		Host:          cfg.Email.Host,
		Port:          cfg.Email.Port,
		Secure:        cfg.Email.Secure,
		User:          cfg.Email.User,
		Pass:          cfg.Email.Pass,
		To:            cfg.Email.To,
		SimulateDelay: cfg.Email.SimulateDelay,
	})
	if mail.Simulated() {
		slog.Warn("EMAIL_HOST not configured, contact submissions will be simulated")
	}

	deps := handlers.Deps{
		Bundle:   bundle,
		Renderer: renderer,
		Mailer:   mail,
		Inbox:    store,
		Shapes: geo.NewHTTPSource(cfg.Geo.URL, geo.Options{
			CacheTTL:    cfg.Geo.CacheTTL,
			SnapshotDir: cfg.Geo.CacheDir,
		}),
		Permits: permits.Default(),
		Names:   permits.DefaultNames(),
		Client:  &http.Client{Timeout: 15 * time.Second},
	}

	// Create server
	server := http.Server{
		Handler:           router.NewRouter(deps, cfg),
		Addr:              ":" + strconv.Itoa(cfg.Port),
		ReadHeaderTimeout: 10 * time.Second,
		ReadTimeout:       30 * time.Second,
		WriteTimeout:      60 * time.Second,
		IdleTimeout:       2 * time.Minute,
	}

	go func() {
		// Wait for Ctrl-C or SIGTERM, then let in-flight sends finish
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
		defer cancel()
		if err := server.Shutdown(shutdownCtx); err != nil {
			slog.Error("graceful shutdown failed", "error", err)
			server.Close()
		}
	}()

	// Start server
	slog.Info("Listening", "port", cfg.Port, "base_url", cfg.BaseURL)
	err = server.ListenAndServe()
	if err != nil && err != http.ErrServerClosed {
		slog.Error("Server closed", "error", err)
	} else {
		slog.Info("Server closed", "error", err)
	}
}

// initLogger installs the default slog logger. With a log file set, output
// goes to stderr and a rotated file. The returned func closes the file.
func initLogger(cfg cliparse.LogConfig) func() {
	var level slog.Level
	if err := level.UnmarshalText([]byte(cfg.Level)); err != nil {
		level = slog.LevelInfo
	}

	var out io.Writer = os.Stderr
	closeFn := func() {}
	if cfg.File != "" {
		lj := &lumberjack.Logger{
			Filename:   cfg.File,
			MaxSize:    32, // MB
			MaxBackups: 5,
			MaxAge:     30, // days
			Compress:   true,
		}
		out = io.MultiWriter(os.Stderr, lj)
		closeFn = func() { lj.Close() }
	}

	opts := &slog.HandlerOptions{Level: level}
	var h slog.Handler
	if strings.EqualFold(cfg.Format, "json") {
		h = slog.NewJSONHandler(out, opts)
	} else {
		h = slog.NewTextHandler(out, opts)
	}
	slog.SetDefault(slog.New(h))
	return closeFn
}
