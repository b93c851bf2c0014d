// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package models

import "time"

// Mail endpoint status constants
const (
	StatusSuccess = "success"
	StatusError   = "error"
)

// Request types

type SendEmailRequest struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Message string `json:"message"`
}

// Response types

type SendEmailResponse struct {
	Status  string            `json:"status"`
	Message string            `json:"message,omitempty"`
	Errors  map[string]string `json:"errors,omitempty"` // field -> error text
}

type HealthResponse struct {
	Status    string `json:"status"`
	Inbox     bool   `json:"inbox"`
	Simulated bool   `json:"mail_simulated"`
}

// Domain types

// CategoryView is a charter category with its strings resolved for one
// locale.
type CategoryView struct {
	ID       int      `json:"id"`
	Name     string   `json:"name"`
	Tagline  string   `json:"tagline"`
	Capacity string   `json:"capacity"`
	Range    string   `json:"range"`
	Aircraft []string `json:"aircraft"`
	Image    string   `json:"image"`
}

type InboxEntry struct {
	ID         string    `json:"id"`
	Name       string    `json:"name"`
	Email      string    `json:"email"`
	Message    string    `json:"message"`
	Outcome    string    `json:"outcome"`
	IPHash     string    `json:"ip_hash,omitempty"`
	UserAgent  string    `json:"user_agent,omitempty"`
	ReceivedAt time.Time `json:"received_at"`
	Received   string    `json:"received"` // humanized, e.g. "3 minutes ago"
}

type InboxList struct {
	Total   int          `json:"total"`
	Entries []InboxEntry `json:"entries"`
}

// Error response

type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message,omitempty"`
}
