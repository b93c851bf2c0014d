// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package geo

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"path/filepath"
	"time"

	"github.com/hashicorp/golang-lru/v2/expirable"
	"github.com/klauspost/compress/zstd"
	"github.com/vmihailenco/msgpack/v5"
	"golang.org/x/sync/singleflight"
)

// Options configures an HTTPSource.
type Options struct {
	CodeProperty string        // GeoJSON property with the ISO alpha-3 code
	CacheTTL     time.Duration // lifetime of parsed shapes in memory
	SnapshotDir  string        // where the last good fetch is kept; empty disables
	FetchTimeout time.Duration // bound on one fetch, independent of any caller
	FailureTTL   time.Duration // how long a failed load is answered from memory
	Client       *http.Client
}

// HTTPSource fetches country shapes from a remote GeoJSON document.
type HTTPSource struct {
	url      string
	codeProp string
	client   *http.Client
	cache    *expirable.LRU[string, []Shape]
	failures *expirable.LRU[string, error]
	group    singleflight.Group
	snapDir  string
	timeout  time.Duration
}

func NewHTTPSource(url string, opts Options) *HTTPSource {
	if opts.CodeProperty == "" {
		opts.CodeProperty = "ISO_A3"
	}
	if opts.CacheTTL <= 0 {
		opts.CacheTTL = 6 * time.Hour
	}
	if opts.FetchTimeout <= 0 {
		opts.FetchTimeout = 15 * time.Second
	}
	if opts.FailureTTL <= 0 {
		opts.FailureTTL = 30 * time.Second
	}
	if opts.Client == nil {
		opts.Client = &http.Client{Timeout: 10 * time.Second}
	}
	return &HTTPSource{
		url:      url,
		codeProp: opts.CodeProperty,
		client:   opts.Client,
		cache:    expirable.NewLRU[string, []Shape](4, nil, opts.CacheTTL),
		failures: expirable.NewLRU[string, error](4, nil, opts.FailureTTL),
		snapDir:  opts.SnapshotDir,
		timeout:  opts.FetchTimeout,
	}
}

// Shapes returns the parsed shapes, fetching at most once per cache
// lifetime. When the remote document cannot be fetched the last snapshot
// on disk is served instead; when neither is available the error is
// remembered for the failure TTL.
//
// Concurrent callers share one fetch, which runs detached from any
// caller's context. Each caller waits only as long as its own context
// allows.
func (s *HTTPSource) Shapes(ctx context.Context) ([]Shape, error) {
	if shapes, ok := s.cache.Get(s.url); ok {
		return shapes, nil
	}
	if err, ok := s.failures.Get(s.url); ok {
		return nil, err
	}

	ch := s.group.DoChan(s.url, func() (any, error) {
		fetchCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), s.timeout)
		defer cancel()

		shapes, err := s.load(fetchCtx)
		if err != nil {
			s.failures.Add(s.url, err)
			return nil, err
		}
		s.failures.Remove(s.url)
		s.cache.Add(s.url, shapes)
		return shapes, nil
	})

	select {
	case <-ctx.Done():
		return nil, ctx.Err()
	case res := <-ch:
		if res.Err != nil {
			return nil, res.Err
		}
		return res.Val.([]Shape), nil
	}
}

// load fetches the remote document, falling back to the snapshot.
func (s *HTTPSource) load(ctx context.Context) ([]Shape, error) {
	shapes, err := s.fetch(ctx)
	if err == nil {
		if err := s.storeSnapshot(shapes); err != nil {
			slog.Warn("failed to store shape snapshot", "error", err)
		}
		return shapes, nil
	}

	slog.Warn("shape fetch failed, trying snapshot", "url", s.url, "error", err)
	snap, serr := s.loadSnapshot()
	if serr != nil {
		return nil, fmt.Errorf("fetch shapes: %w", err)
	}
	return snap, nil
}

func (s *HTTPSource) fetch(ctx context.Context) ([]Shape, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, s.url, nil)
	if err != nil {
		return nil, err
	}
	resp, err := s.client.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("unexpected status %s", resp.Status)
	}

	start := time.Now()
	shapes, err := Parse(resp.Body, s.codeProp)
	if err != nil {
		return nil, err
	}
	slog.Info("shapes loaded", "url", s.url, "count", len(shapes), "duration_ms", time.Since(start).Milliseconds())
	return shapes, nil
}

func (s *HTTPSource) snapshotPath() string {
	sum := sha256.Sum256([]byte(s.url))
	return filepath.Join(s.snapDir, "shapes-"+hex.EncodeToString(sum[:8])+".msgpack.zst")
}

func (s *HTTPSource) storeSnapshot(shapes []Shape) error {
	if s.snapDir == "" {
		return nil
	}
	if err := os.MkdirAll(s.snapDir, 0755); err != nil {
		return err
	}

	f, err := os.Create(s.snapshotPath())
	if err != nil {
		return err
	}
	defer f.Close()

	zw, err := zstd.NewWriter(f, zstd.WithEncoderLevel(zstd.SpeedDefault))
	if err != nil {
		return fmt.Errorf("failed to create zstd writer: %w", err)
	}
	if err := msgpack.NewEncoder(zw).Encode(shapes); err != nil {
		zw.Close()
		return fmt.Errorf("failed to encode shapes: %w", err)
	}
	return zw.Close()
}

func (s *HTTPSource) loadSnapshot() ([]Shape, error) {
	if s.snapDir == "" {
		return nil, os.ErrNotExist
	}

	f, err := os.Open(s.snapshotPath())
	if err != nil {
		return nil, err
	}
	defer f.Close()

	zr, err := zstd.NewReader(f)
	if err != nil {
		return nil, fmt.Errorf("failed to create zstd reader: %w", err)
	}
	defer zr.Close()

	var shapes []Shape
	if err := msgpack.NewDecoder(zr).Decode(&shapes); err != nil {
		return nil, fmt.Errorf("failed to decode shapes: %w", err)
	}
	return shapes, nil
}

// Static is a Source over a fixed set of shapes.
type Static []Shape

func (s Static) Shapes(context.Context) ([]Shape, error) {
	return s, nil
}
