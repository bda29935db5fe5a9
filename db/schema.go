// Copyright (c) 2025 the evote authors.
// Licensed under the MIT License. See LICENSE.

package db

import (
	"database/sql"
	"fmt"
)

// CreateSchema creates all tables needed for the application.
// Safe to call multiple times - uses IF NOT EXISTS. The DDL sticks to the
// dialect subset shared by SQLite and PostgreSQL; cascades are handled in
// application transactions rather than FK actions.
func CreateSchema(db *sql.DB) error {
	_, err := db.Exec(schema)
	if err != nil {
		return fmt.Errorf("failed to create schema: %w", err)
	}

	return nil
}

const schema = `
-- Polls
CREATE TABLE IF NOT EXISTS polls (
    id TEXT PRIMARY KEY,
    title TEXT NOT NULL,
    is_open BOOLEAN NOT NULL,
    scheduled_close_time TIMESTAMP,
    vote_limit_enabled BOOLEAN NOT NULL,
    max_votes_per_client INTEGER NOT NULL,
    is_multi_select BOOLEAN NOT NULL,
    max_selections INTEGER NOT NULL,
    created_at TIMESTAMP NOT NULL
);

-- Candidates; the tally is denormalized onto the candidate row so a vote
-- is a single atomic UPDATE ... SET votes = votes + 1. Candidate ids are
-- scoped per poll: every query filters by poll_id.
CREATE TABLE IF NOT EXISTS candidates (
    id TEXT NOT NULL,
    poll_id TEXT NOT NULL REFERENCES polls(id),
    name TEXT NOT NULL,
    avatar_url TEXT,
    data_ai_hint TEXT,
    votes INTEGER NOT NULL DEFAULT 0,
    PRIMARY KEY (poll_id, id)
);

CREATE INDEX IF NOT EXISTS idx_candidates_poll_id ON candidates(poll_id);

-- Per-client vote counters for the soft vote limit.
CREATE TABLE IF NOT EXISTS client_votes (
    poll_id TEXT NOT NULL REFERENCES polls(id),
    client_id TEXT NOT NULL,
    count INTEGER NOT NULL DEFAULT 0,
    PRIMARY KEY (poll_id, client_id)
);

-- Key/value application settings (results visibility).
CREATE TABLE IF NOT EXISTS app_settings (
    key TEXT PRIMARY KEY,
    value TEXT NOT NULL
);
`
