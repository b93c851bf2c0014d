// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package mailer forwards contact submissions to the company inbox.

	svc := mailer.New(mailer.Config{Host: host, Port: 587, User: u, Pass: p, To: inbox})
	result, err := svc.Send(ctx, mailer.Message{Name: n, Email: e, Text: msg})

When the host is empty or the placeholder smtp.example.com the service runs
simulated: the message is logged, the configured delay elapses and
ResultSimulated is returned. Otherwise the message goes out over SMTP with
the authenticated user as sender and the visitor as Reply-To. The HTML part
is sanitised; the plain-text part carries the message as typed.
*/
package mailer
