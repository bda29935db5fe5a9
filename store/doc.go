// Copyright (c) 2025 the evote authors.
// Licensed under the MIT License. See LICENSE.

/*
Package store persists polls, tallies, client vote counters, and settings.

# Backends

SQLStore runs on database/sql and sticks to the dialect subset shared by
SQLite (modernc.org/sqlite) and PostgreSQL (lib/pq). Placeholders are
numbered in order of first occurrence so positional binding works on both
drivers.

# Vote Recording

RecordVote is the write path for ballots. Everything happens in one
transaction scoped to the poll:

 1. Load the poll, resolve its status, persist a lazy closure if the
    scheduled close time elapsed.
 2. Validate the selection against the poll's select mode.
 3. Enforce the per-client vote limit when enabled.
 4. Increment each selected candidate's tally with
    UPDATE ... SET votes = votes + 1 (atomic increment, never
    read-modify-write).

Any failure rolls the transaction back, so a rejected multi-select vote
never leaves partial tallies behind. Polls are independent; no cross-poll
locking exists or is needed.

# Errors

Domain failures surface as the poll package's sentinels (ErrNotFound,
ErrPollClosed, ErrVoteLimitExceeded, ...). Infrastructure failures are
wrapped with fmt.Errorf("...: %w", err).
*/
package store
