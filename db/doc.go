// Copyright (c) 2025 the evote authors.
// Licensed under the MIT License. See LICENSE.

/*
Package db creates the SQL schema on startup.

The schema is written in the dialect subset shared by SQLite
(modernc.org/sqlite) and PostgreSQL (lib/pq) so the same binary runs on
either backend:

  - polls: poll record with lifecycle flags and settings
  - candidates: candidate rows with the tally denormalized as a votes column
  - client_votes: per-(poll, client) vote counters for the soft vote limit
  - app_settings: key/value settings (results visibility)

CreateSchema is idempotent and intended for development and small
deployments; production schema changes belong in a migration tool.
*/
package db
