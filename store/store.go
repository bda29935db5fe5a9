// Copyright (c) 2025 the evote authors.
// Licensed under the MIT License. See LICENSE.

package store

import (
	"time"

	"github.com/evotehq/evote/models"
)

// Store persists polls, tallies, per-client vote counters, and application
// settings. Implementations return the poll package's sentinel errors for
// domain failures so handlers can map them to HTTP responses.
type Store interface {
	// CreatePoll inserts a poll and its candidates in one transaction.
	CreatePoll(p models.Poll) error

	// GetPoll returns a poll with candidates and tallies, or
	// poll.ErrNotFound.
	GetPoll(id string) (models.Poll, error)

	// ListPolls returns all polls, newest first.
	ListPolls() ([]models.Poll, error)

	// UpdatePoll replaces a poll's definition. Tallies are reconciled
	// against the new candidate list: removed candidates drop their
	// counts, retained ones keep them, new ones start at zero. The open
	// flag is not touched; SetPollOpen owns status changes.
	UpdatePoll(p models.Poll) error

	// DeletePoll removes the poll, its candidates, and its client vote
	// counters.
	DeletePoll(id string) error

	// SetPollOpen flips the open flag. clearSchedule also drops the
	// scheduled close time, used when an admin reopens a poll whose
	// schedule already elapsed.
	SetPollOpen(id string, open bool, clearSchedule bool) error

	// RecordVote applies one vote submission atomically: it re-checks the
	// poll's resolved open state (persisting a lazy closure it finds),
	// validates the selection, enforces the per-client limit, and
	// increments every selected candidate's tally in a single
	// transaction. On any failure no tally changes.
	RecordVote(pollID string, candidateIDs []string, clientID string, now time.Time) error

	// ClientVoteCount reports how many accepted votes a client has cast
	// in a poll; zero if it never voted.
	ClientVoteCount(pollID, clientID string) (int, error)

	// ResultsVisibility reports whether aggregated results are public.
	// Defaults to false when the setting was never written.
	ResultsVisibility() (bool, error)

	// SetResultsVisibility persists the results visibility setting.
	SetResultsVisibility(visible bool) error
}
