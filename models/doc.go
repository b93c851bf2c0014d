// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package models defines request and response types for the JSON API.

# Request Types

  - SendEmailRequest: name, email, message

# Response Types

  - SendEmailResponse: status ("success" or "error"), message, errors
  - HealthResponse: status, inbox, mail_simulated
  - InboxList: total, entries
  - ErrorResponse: error, message

# Domain Types

  - CategoryView: a charter category with translated strings
  - InboxEntry: an archived submission with a humanized "received" time

Permit, panel and map payloads are served from the permits package types
directly; they already carry JSON tags.
*/
package models
