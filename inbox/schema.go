// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package inbox

import (
	"context"
	"database/sql"
	"fmt"
)

// CreateSchema creates the submission table.
// Safe to call multiple times - uses IF NOT EXISTS.
func CreateSchema(ctx context.Context, db *sql.DB) error {
	_, err := db.ExecContext(ctx, schema)
	if err != nil {
		return fmt.Errorf("failed to create schema: %w", err)
	}

	return nil
}

const schema = `
-- Contact submissions
CREATE TABLE IF NOT EXISTS submission (
    id TEXT PRIMARY KEY,
    name TEXT NOT NULL,
    email TEXT NOT NULL,
    message TEXT NOT NULL,
    outcome TEXT NOT NULL CHECK (outcome IN ('sent', 'simulated', 'failed')),
    ip_hash TEXT,
    user_agent TEXT,
    received_at TIMESTAMP NOT NULL
);

CREATE INDEX IF NOT EXISTS idx_submission_received_at ON submission(received_at);
CREATE INDEX IF NOT EXISTS idx_submission_outcome ON submission(outcome);
`
