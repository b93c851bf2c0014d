// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package inbox archives contact submissions in a database.

# Opening

	store, err := inbox.Open(ctx, "sqlite", "file:inbox.db")
	if errors.Is(err, inbox.ErrDisabled) {
		// no DATABASE_URL; run without an archive
	}

SQLite (modernc.org/sqlite, no cgo) is the default backend. PostgreSQL is
selected with database type "postgres" and uses lib/pq. Open creates the
schema; it is safe to call against an existing database.

# Tables

  - submission: one row per contact submission with its outcome
    (sent, simulated or failed), a hashed client IP and the user agent.

# Disabled Inbox

A nil *Store is valid and disabled. Record, List and Count return
ErrDisabled so callers can archive best-effort without nil checks.
*/
package inbox
