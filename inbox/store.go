// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package inbox

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"
	_ "github.com/lib/pq"
	_ "modernc.org/sqlite"
)

var (
	ErrDisabled       = errors.New("inbox disabled")
	ErrUnknownDialect = errors.New("unknown database type")
)

// Dialect names a supported database backend.
type Dialect string

const (
	SQLite   Dialect = "sqlite"
	Postgres Dialect = "postgres"
)

// ParseDialect maps a DATABASE_TYPE value to a Dialect.
func ParseDialect(s string) (Dialect, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "sqlite", "sqlite3":
		return SQLite, nil
	case "postgres", "postgresql", "pg":
		return Postgres, nil
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownDialect, s)
}

// Outcome is what happened to a submission.
type Outcome string

const (
	OutcomeSent      Outcome = "sent"
	OutcomeSimulated Outcome = "simulated"
	OutcomeFailed    Outcome = "failed"
)

// Entry is one archived contact submission.
type Entry struct {
	ID         string
	Name       string
	Email      string
	Message    string
	Outcome    Outcome
	IPHash     string
	UserAgent  string
	ReceivedAt time.Time
}

const (
	DefaultListLimit = 50
	MaxListLimit     = 500
)

// Store archives submissions. A nil *Store is a disabled inbox: every method
// returns ErrDisabled.
type Store struct {
	db      *sql.DB
	dialect Dialect
	now     func() time.Time
}

// Open connects to the database and creates the schema. An empty url means
// the inbox is disabled and ErrDisabled is returned.
func Open(ctx context.Context, dbType, url string) (*Store, error) {
	if strings.TrimSpace(url) == "" {
		return nil, ErrDisabled
	}
	dialect, err := ParseDialect(dbType)
	if err != nil {
		return nil, err
	}

	db, err := sql.Open(string(dialect), url)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}
	if dialect == SQLite {
		// one connection so :memory: databases are shared and writes serialise
		db.SetMaxOpenConns(1)
	}
	if err := db.PingContext(ctx); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	s, err := New(ctx, db, dialect)
	if err != nil {
		db.Close()
		return nil, err
	}
	return s, nil
}

// New wraps an open database and ensures the schema exists.
func New(ctx context.Context, db *sql.DB, dialect Dialect) (*Store, error) {
	if err := CreateSchema(ctx, db); err != nil {
		return nil, err
	}
	return &Store{db: db, dialect: dialect, now: time.Now}, nil
}

// Enabled reports whether submissions are archived.
func (s *Store) Enabled() bool {
	return s != nil && s.db != nil
}

func (s *Store) Close() error {
	if !s.Enabled() {
		return nil
	}
	return s.db.Close()
}

// rebind rewrites ? placeholders for Postgres.
func (s *Store) rebind(query string) string {
	if s.dialect != Postgres {
		return query
	}
	var b strings.Builder
	n := 0
	for _, r := range query {
		if r == '?' {
			n++
			b.WriteByte('$')
			b.WriteString(strconv.Itoa(n))
			continue
		}
		b.WriteRune(r)
	}
	return b.String()
}

// Record archives e, filling in its ID and ReceivedAt when unset.
func (s *Store) Record(ctx context.Context, e Entry) (Entry, error) {
	if !s.Enabled() {
		return Entry{}, ErrDisabled
	}
	if e.ID == "" {
		e.ID = uuid.NewString()
	}
	if e.ReceivedAt.IsZero() {
		e.ReceivedAt = s.now().UTC()
	}

	_, err := s.db.ExecContext(ctx, s.rebind(`
		INSERT INTO submission (id, name, email, message, outcome, ip_hash, user_agent, received_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)
	`), e.ID, e.Name, e.Email, e.Message, string(e.Outcome), e.IPHash, e.UserAgent, e.ReceivedAt)
	if err != nil {
		return Entry{}, fmt.Errorf("failed to record submission: %w", err)
	}
	return e, nil
}

// List returns the newest submissions first. limit is clamped to
// [1, MaxListLimit]; zero or less means DefaultListLimit.
func (s *Store) List(ctx context.Context, limit int) ([]Entry, error) {
	if !s.Enabled() {
		return nil, ErrDisabled
	}
	switch {
	case limit <= 0:
		limit = DefaultListLimit
	case limit > MaxListLimit:
		limit = MaxListLimit
	}

	rows, err := s.db.QueryContext(ctx, s.rebind(`
		SELECT id, name, email, message, outcome, COALESCE(ip_hash, ''), COALESCE(user_agent, ''), received_at
		FROM submission
		ORDER BY received_at DESC, id DESC
		LIMIT ?
	`), limit)
	if err != nil {
		return nil, fmt.Errorf("failed to list submissions: %w", err)
	}
	defer rows.Close()

	var entries []Entry
	for rows.Next() {
		var e Entry
		var outcome string
		if err := rows.Scan(&e.ID, &e.Name, &e.Email, &e.Message, &outcome, &e.IPHash, &e.UserAgent, &e.ReceivedAt); err != nil {
			return nil, fmt.Errorf("failed to scan submission: %w", err)
		}
		e.Outcome = Outcome(outcome)
		entries = append(entries, e)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to list submissions: %w", err)
	}
	return entries, nil
}

// Count returns the number of archived submissions.
func (s *Store) Count(ctx context.Context) (int, error) {
	if !s.Enabled() {
		return 0, ErrDisabled
	}
	var n int
	if err := s.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM submission`).Scan(&n); err != nil {
		return 0, fmt.Errorf("failed to count submissions: %w", err)
	}
	return n, nil
}
