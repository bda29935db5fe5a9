// Copyright (c) 2025 the evote authors.
// Licensed under the MIT License. See LICENSE.

/*
Package models defines request, response, and domain types for the API.

# Request Types

Types for parsing incoming JSON:

  - LoginRequest: password
  - CreatePollRequest / UpdatePollRequest: title, candidates, settings
  - SetPollStatusRequest: is_open
  - SubmitVoteRequest: candidate_ids
  - UpdateSettingsRequest: results_visibility

# Response Types

Types for JSON responses:

  - SessionResponse: is_admin
  - SubmitVoteResponse: message
  - SettingsResponse: results_visibility
  - PollResults: total_votes, per-candidate results, winner
  - ErrorResponse: error (machine code), message (human readable)

# Domain Types

  - Poll: poll record with candidates, tallies, and settings
  - Candidate: id, name, display metadata
  - PollSettings: scheduled close time, vote limit, multi-select bounds

# Error Codes

ErrorResponse.Error carries one of the ErrCode* constants:

	not_found
	unauthorized
	poll_closed
	invalid_selection_count
	unknown_candidate
	vote_limit_exceeded
	validation_error
	results_hidden
	internal_error
*/
package models
