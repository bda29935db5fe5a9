// Copyright (c) 2025 the evote authors.
// Licensed under the MIT License. See LICENSE.

/*
Package handlers implements the HTTP API.

# Admin Session

A single shared password unlocks poll management:

	POST /login   → Login (sets the evote_session cookie)
	POST /logout  → Logout (clears it)
	GET  /session → Session (is_admin, for UI state restore)

Admin-only handlers accept the session token from the cookie or the
X-Admin-Token header and answer 401 unauthorized without it.

# Poll Management (admin)

	POST   /polls             → CreatePoll
	PUT    /polls/{id}        → UpdatePoll (reconciles tallies)
	DELETE /polls/{id}        → DeletePoll
	POST   /polls/{id}/status → SetPollStatus (manual open/close)

# Public Reads

	GET /polls      → ListPolls
	GET /polls/{id} → GetPoll

Every read resolves poll status lazily: an open poll whose scheduled close
time elapsed is returned closed and the closure is persisted. There is no
background timer.

# Voting

	POST /polls/{id}/vote → SubmitVote

Validation order: poll exists, poll open, selection count fits the select
mode, candidates exist, client under the vote limit. The X-Client-ID
header identifies the client for the (soft) vote limit.

# Results & Settings

	GET /polls/{id}/results → GetResults (gated by results visibility)
	GET /settings           → GetSettings (public)
	PUT /settings           → UpdateSettings (admin)

# Errors

All failures are JSON {error, message} where error is a stable machine
code (see the models package). Domain errors map via domainError in
common.go; nothing is retried server side.
*/
package handlers
