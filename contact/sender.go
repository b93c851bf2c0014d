// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package contact

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"
)

// ErrRejected is returned when the mail endpoint answers with a non-2xx
// status.
var ErrRejected = errors.New("contact: mail endpoint rejected submission")

// HTTPSender posts submissions as JSON to a mail-send endpoint.
type HTTPSender struct {
	endpoint string
	client   *http.Client
}

func NewHTTPSender(endpoint string, client *http.Client) *HTTPSender {
	if client == nil {
		client = &http.Client{Timeout: 10 * time.Second}
	}
	return &HTTPSender{endpoint: endpoint, client: client}
}

func (s *HTTPSender) Send(ctx context.Context, sub Submission) error {
	body, err := json.Marshal(sub)
	if err != nil {
		return err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, s.endpoint, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := s.client.Do(req)
	if err != nil {
		return fmt.Errorf("post %s: %w", s.endpoint, err)
	}
	defer resp.Body.Close()
	io.Copy(io.Discard, resp.Body)

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return fmt.Errorf("%w: %s", ErrRejected, resp.Status)
	}
	return nil
}
