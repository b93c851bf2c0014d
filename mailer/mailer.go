// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package mailer

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/microcosm-cc/bluemonday"
)

// PlaceholderHost is the example host shipped in sample configs. It counts
// as "not configured".
const PlaceholderHost = "smtp.example.com"

// Config holds the outbound mail settings.
type Config struct {
	Host          string
	Port          int
	Secure        bool
	User          string
	Pass          string
	To            string // contact inbox receiving submissions
	SimulateDelay time.Duration
}

// Message is one contact submission to forward.
type Message struct {
	Name  string
	Email string
	Text  string
}

// Envelope is a fully composed email.
type Envelope struct {
	From    string
	ReplyTo string
	To      string
	Subject string
	Text    string
	HTML    string
}

// Result tells how a message was handled.
type Result string

const (
	ResultSent      Result = "sent"
	ResultSimulated Result = "simulated"
)

// Transport delivers composed envelopes.
type Transport interface {
	Deliver(ctx context.Context, env Envelope) error
}

// Service forwards contact submissions by email, or simulates doing so
// when no SMTP host is configured.
type Service struct {
	cfg       Config
	transport Transport
	policy    *bluemonday.Policy
}

// New returns a Service using SMTP when cfg.Host is set to a real host.
func New(cfg Config) *Service {
	var t Transport
	if !unconfigured(cfg.Host) {
		t = NewSMTPTransport(cfg)
	}
	return NewWithTransport(cfg, t)
}

// NewWithTransport returns a Service delivering through t. A nil t means
// every send is simulated.
func NewWithTransport(cfg Config, t Transport) *Service {
	return &Service{cfg: cfg, transport: t, policy: bluemonday.StrictPolicy()}
}

func unconfigured(host string) bool {
	host = strings.TrimSpace(host)
	return host == "" || host == PlaceholderHost
}

// Simulated reports whether sends only log the message.
func (s *Service) Simulated() bool {
	return s.transport == nil
}

// Compose builds the envelope for m. The sender is the authenticated SMTP
// user and replies go to the visitor.
func (s *Service) Compose(m Message) Envelope {
	name := s.policy.Sanitize(m.Name)
	email := s.policy.Sanitize(m.Email)
	text := s.policy.Sanitize(m.Text)
	text = strings.ReplaceAll(text, "\n", "<br>")

	return Envelope{
		From:    s.cfg.User,
		ReplyTo: m.Email,
		To:      s.cfg.To,
		Subject: "New contact form submission from " + m.Name,
		Text:    m.Text,
		HTML: fmt.Sprintf("<p>You have a new contact form submission from <strong>%s</strong> (%s):</p><p>%s</p>",
			name, email, text),
	}
}

// Send forwards m. In simulated mode it logs the message, waits the
// configured delay and reports ResultSimulated.
func (s *Service) Send(ctx context.Context, m Message) (Result, error) {
	env := s.Compose(m)

	if s.Simulated() {
		slog.Warn("SMTP not configured, simulating email send",
			"to", env.To,
			"from", fmt.Sprintf("%s <%s>", m.Name, m.Email),
			"message", m.Text,
		)
		if s.cfg.SimulateDelay > 0 {
			timer := time.NewTimer(s.cfg.SimulateDelay)
			defer timer.Stop()
			select {
			case <-ctx.Done():
				return "", ctx.Err()
			case <-timer.C:
			}
		}
		return ResultSimulated, nil
	}

	if err := s.transport.Deliver(ctx, env); err != nil {
		return "", fmt.Errorf("failed to send email: %w", err)
	}
	slog.Info("contact email sent", "to", env.To, "reply_to", env.ReplyTo)
	return ResultSent, nil
}
