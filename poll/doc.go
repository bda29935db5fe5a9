// Copyright (c) 2025 the evote authors.
// Licensed under the MIT License. See LICENSE.

/*
Package poll implements the pure poll lifecycle rules: status resolution,
selection validation, tally reconciliation, and result aggregation. Nothing
in this package touches storage; the store package applies these rules
inside transactions and handlers persist resolved status transitions.

# Status Resolution

Polls close lazily. There is no background timer; every read path calls
Resolve and persists the transition when it fires:

	resolved := poll.Resolve(p, time.Now())
	if resolved.IsOpen != p.IsOpen {
		// persist the closure
	}

Resolve is idempotent and never reopens a poll.

# Selection Rules

ValidateSelection enforces the poll's select mode. Single-select polls take
exactly one candidate id; multi-select polls take 1..MaxSelections distinct
ids. Every id must belong to the poll.

# Reconciliation

Editing a poll's candidate list must not orphan tallies:

	votes := poll.ReconcileVotes(oldVotes, newCandidateIDs)

Removed candidates lose their entries, retained candidates keep their
counts, new candidates start at zero.

# Results

ComputeResults produces total votes, percentages, and the winner. Ties for
the highest tally and zero-vote polls report no winner.

# Errors

Sentinels (ErrNotFound, ErrPollClosed, ErrInvalidSelectionCount,
ErrUnknownCandidate, ErrVoteLimitExceeded, ErrValidation) are matched with
errors.Is; wrapped messages carry the detail shown to users.
*/
package poll
