// Copyright (c) 2025 the evote authors.
// Licensed under the MIT License. See LICENSE.

package models

import "time"

// Error codes returned in ErrorResponse.Error. Stable; clients switch on
// these to decide how to react (redirect, inline validation, toast).
const (
	ErrCodeNotFound              = "not_found"
	ErrCodeUnauthorized          = "unauthorized"
	ErrCodePollClosed            = "poll_closed"
	ErrCodeInvalidSelectionCount = "invalid_selection_count"
	ErrCodeUnknownCandidate      = "unknown_candidate"
	ErrCodeVoteLimitExceeded     = "vote_limit_exceeded"
	ErrCodeValidation            = "validation_error"
	ErrCodeResultsHidden         = "results_hidden"
	ErrCodeInternal              = "internal_error"
)

// Setting keys stored in the app_settings table.
const (
	SettingResultsVisibility = "resultsVisibility"
)

// Request types

type LoginRequest struct {
	Password string `json:"password"`
}

type CandidateInput struct {
	ID         string `json:"id,omitempty"`
	Name       string `json:"name"`
	AvatarURL  string `json:"avatar_url,omitempty"`
	DataAIHint string `json:"data_ai_hint,omitempty"`
}

type CreatePollRequest struct {
	Title      string           `json:"title"`
	Candidates []CandidateInput `json:"candidates"`
	PollSettings
}

// UpdatePollRequest carries the full replacement definition of a poll.
// Candidates that keep their id keep their tally; everything else is
// reconciled away.
type UpdatePollRequest struct {
	Title      string           `json:"title"`
	Candidates []CandidateInput `json:"candidates"`
	PollSettings
}

type SetPollStatusRequest struct {
	IsOpen bool `json:"is_open"`
}

type SubmitVoteRequest struct {
	CandidateIDs []string `json:"candidate_ids"`
}

type UpdateSettingsRequest struct {
	ResultsVisibility bool `json:"results_visibility"`
}

// Response types

type SessionResponse struct {
	IsAdmin bool `json:"is_admin"`
}

type SubmitVoteResponse struct {
	Message string `json:"message"`
}

type SettingsResponse struct {
	ResultsVisibility bool `json:"results_visibility"`
}

type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message,omitempty"`
}

// Domain types

// PollSettings holds the voter-facing knobs of a poll. Embedded in Poll and
// the create/update requests so the JSON stays flat.
type PollSettings struct {
	ScheduledCloseTime *time.Time `json:"scheduled_close_time,omitempty"`
	VoteLimitEnabled   bool       `json:"vote_limit_enabled"`
	MaxVotesPerClient  int        `json:"max_votes_per_client"`
	IsMultiSelect      bool       `json:"is_multi_select"`
	MaxSelections      int        `json:"max_selections"`
}

type Candidate struct {
	ID         string `json:"id"`
	Name       string `json:"name"`
	AvatarURL  string `json:"avatar_url,omitempty"`
	DataAIHint string `json:"data_ai_hint,omitempty"`
}

// Poll is the full poll record. Votes maps candidate id to its tally;
// its keys are always a subset of the current candidate ids.
type Poll struct {
	ID         string         `json:"id"`
	Title      string         `json:"title"`
	Candidates []Candidate    `json:"candidates"`
	Votes      map[string]int `json:"votes"`
	IsOpen     bool           `json:"is_open"`
	PollSettings
	CreatedAt time.Time `json:"created_at"`
}

// Results types

type CandidateResult struct {
	CandidateID string  `json:"candidate_id"`
	Name        string  `json:"name"`
	Votes       int     `json:"votes"`
	Percentage  float64 `json:"percentage"`
}

// PollResults is the aggregated view of a poll's tallies. Winner is nil
// when the poll has no votes or the top tally is shared.
type PollResults struct {
	PollID     string            `json:"poll_id"`
	Title      string            `json:"title"`
	TotalVotes int               `json:"total_votes"`
	Results    []CandidateResult `json:"results"`
	Winner     *CandidateResult  `json:"winner"`
}
