// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package mailer

import (
	"context"
	"fmt"
	"time"

	"github.com/wneessen/go-mail"
)

// SMTPTransport delivers envelopes through an authenticated SMTP server.
type SMTPTransport struct {
	cfg Config
}

func NewSMTPTransport(cfg Config) *SMTPTransport {
	return &SMTPTransport{cfg: cfg}
}

func (t *SMTPTransport) options() []mail.Option {
	opts := []mail.Option{
		mail.WithTimeout(15 * time.Second),
	}
	if t.cfg.Port > 0 {
		opts = append(opts, mail.WithPort(t.cfg.Port))
	}
	if t.cfg.Secure {
		opts = append(opts, mail.WithSSL())
	} else {
		opts = append(opts, mail.WithTLSPolicy(mail.TLSOpportunistic))
	}
	if t.cfg.User != "" {
		opts = append(opts,
			mail.WithSMTPAuth(mail.SMTPAuthPlain),
			mail.WithUsername(t.cfg.User),
			mail.WithPassword(t.cfg.Pass),
		)
	}
	return opts
}

func (t *SMTPTransport) Deliver(ctx context.Context, env Envelope) error {
	msg := mail.NewMsg()
	if err := msg.From(env.From); err != nil {
		return fmt.Errorf("invalid from address: %w", err)
	}
	if err := msg.To(env.To); err != nil {
		return fmt.Errorf("invalid to address: %w", err)
	}
	if err := msg.ReplyTo(env.ReplyTo); err != nil {
		return fmt.Errorf("invalid reply-to address: %w", err)
	}
	msg.Subject(env.Subject)
	msg.SetBodyString(mail.TypeTextPlain, env.Text)
	msg.AddAlternativeString(mail.TypeTextHTML, env.HTML)

	client, err := mail.NewClient(t.cfg.Host, t.options()...)
	if err != nil {
		return fmt.Errorf("failed to create smtp client: %w", err)
	}
	return client.DialAndSendWithContext(ctx, msg)
}
