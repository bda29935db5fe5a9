// Copyright (c) 2025 the evote authors.
// Licensed under the MIT License. See LICENSE.

package handlers

import (
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/evotehq/evote/cliparse"
	"github.com/evotehq/evote/middleware"
	"github.com/evotehq/evote/models"
	"github.com/evotehq/evote/poll"
	"github.com/evotehq/evote/store"
)

type PollHandler struct {
	store store.Store
	cfg   cliparse.Config
}

func NewPollHandler(s store.Store, cfg cliparse.Config) *PollHandler {
	return &PollHandler{store: s, cfg: cfg}
}

// CreatePoll handles POST /polls
func (h *PollHandler) CreatePoll(w http.ResponseWriter, r *http.Request) {
	if !isAdmin(r, h.cfg.SessionSecret) {
		unauthorized(w)
		return
	}

	var req models.CreatePollRequest
	if err := middleware.ParseJSONBody(r, &req); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, models.ErrCodeValidation, "Invalid JSON")
		return
	}

	candidates := buildCandidates(req.Candidates)
	settings := normalizeSettings(req.PollSettings)

	if err := poll.ValidateDefinition(req.Title, candidates, settings); err != nil {
		domainError(w, err)
		return
	}

	p := models.Poll{
		ID:           uuid.NewString(),
		Title:        strings.TrimSpace(req.Title),
		Candidates:   candidates,
		Votes:        map[string]int{},
		IsOpen:       true,
		PollSettings: settings,
		CreatedAt:    time.Now().UTC(),
	}

	if err := h.store.CreatePoll(p); err != nil {
		domainError(w, err)
		return
	}

	slog.Info("poll created", "poll_id", p.ID, "candidates", len(p.Candidates))

	middleware.JSONResponse(w, http.StatusCreated, p)
}

// UpdatePoll handles PUT /polls/{id}
// Replaces the poll's definition; tallies are reconciled against the new
// candidate list.
func (h *PollHandler) UpdatePoll(w http.ResponseWriter, r *http.Request) {
	if !isAdmin(r, h.cfg.SessionSecret) {
		unauthorized(w)
		return
	}

	pollID := r.PathValue("id")
	if pollID == "" {
		middleware.ErrorResponse(w, http.StatusBadRequest, models.ErrCodeValidation, "poll id is required")
		return
	}

	var req models.UpdatePollRequest
	if err := middleware.ParseJSONBody(r, &req); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, models.ErrCodeValidation, "Invalid JSON")
		return
	}

	candidates := buildCandidates(req.Candidates)
	settings := normalizeSettings(req.PollSettings)

	if err := poll.ValidateDefinition(req.Title, candidates, settings); err != nil {
		domainError(w, err)
		return
	}

	p := models.Poll{
		ID:           pollID,
		Title:        strings.TrimSpace(req.Title),
		Candidates:   candidates,
		PollSettings: settings,
	}

	if err := h.store.UpdatePoll(p); err != nil {
		domainError(w, err)
		return
	}

	updated, err := h.store.GetPoll(pollID)
	if err != nil {
		domainError(w, err)
		return
	}

	slog.Info("poll updated", "poll_id", pollID)

	middleware.JSONResponse(w, http.StatusOK, updated)
}

// DeletePoll handles DELETE /polls/{id}
func (h *PollHandler) DeletePoll(w http.ResponseWriter, r *http.Request) {
	if !isAdmin(r, h.cfg.SessionSecret) {
		unauthorized(w)
		return
	}

	pollID := r.PathValue("id")
	if pollID == "" {
		middleware.ErrorResponse(w, http.StatusBadRequest, models.ErrCodeValidation, "poll id is required")
		return
	}

	if err := h.store.DeletePoll(pollID); err != nil {
		domainError(w, err)
		return
	}

	slog.Info("poll deleted", "poll_id", pollID)

	w.WriteHeader(http.StatusNoContent)
}

// SetPollStatus handles POST /polls/{id}/status
func (h *PollHandler) SetPollStatus(w http.ResponseWriter, r *http.Request) {
	if !isAdmin(r, h.cfg.SessionSecret) {
		unauthorized(w)
		return
	}

	pollID := r.PathValue("id")
	if pollID == "" {
		middleware.ErrorResponse(w, http.StatusBadRequest, models.ErrCodeValidation, "poll id is required")
		return
	}

	var req models.SetPollStatusRequest
	if err := middleware.ParseJSONBody(r, &req); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, models.ErrCodeValidation, "Invalid JSON")
		return
	}

	p, err := h.store.GetPoll(pollID)
	if err != nil {
		domainError(w, err)
		return
	}

	// Reopening a poll whose schedule already elapsed clears the stale
	// close time, otherwise the next read would close it again.
	clearSchedule := req.IsOpen && p.ScheduledCloseTime != nil &&
		!time.Now().Before(*p.ScheduledCloseTime)

	if err := h.store.SetPollOpen(pollID, req.IsOpen, clearSchedule); err != nil {
		domainError(w, err)
		return
	}

	updated, err := h.store.GetPoll(pollID)
	if err != nil {
		domainError(w, err)
		return
	}

	slog.Info("poll status changed", "poll_id", pollID, "is_open", req.IsOpen)

	middleware.JSONResponse(w, http.StatusOK, updated)
}

// ListPolls handles GET /polls
// Public; every read lazily resolves and persists expired polls.
func (h *PollHandler) ListPolls(w http.ResponseWriter, r *http.Request) {
	polls, err := h.store.ListPolls()
	if err != nil {
		domainError(w, err)
		return
	}

	now := time.Now()
	for i := range polls {
		polls[i] = h.resolveAndPersist(polls[i], now)
	}

	middleware.JSONResponse(w, http.StatusOK, polls)
}

// GetPoll handles GET /polls/{id}
func (h *PollHandler) GetPoll(w http.ResponseWriter, r *http.Request) {
	pollID := r.PathValue("id")
	if pollID == "" {
		middleware.ErrorResponse(w, http.StatusBadRequest, models.ErrCodeValidation, "poll id is required")
		return
	}

	p, err := h.store.GetPoll(pollID)
	if err != nil {
		domainError(w, err)
		return
	}

	middleware.JSONResponse(w, http.StatusOK, h.resolveAndPersist(p, time.Now()))
}

// resolveAndPersist applies the status resolver and writes back a closure
// when it fires. Persistence failures are logged, not surfaced: the caller
// still gets the correctly resolved poll.
func (h *PollHandler) resolveAndPersist(p models.Poll, now time.Time) models.Poll {
	resolved := poll.Resolve(p, now)
	if resolved.IsOpen != p.IsOpen {
		if err := h.store.SetPollOpen(p.ID, false, false); err != nil {
			slog.Warn("failed to persist poll closure", "poll_id", p.ID, "error", err)
		} else {
			slog.Info("poll closed by schedule", "poll_id", p.ID)
		}
	}
	return resolved
}

// buildCandidates turns candidate inputs into domain candidates, minting
// ids for new entries. Submitted ids are kept so edits preserve tallies.
func buildCandidates(inputs []models.CandidateInput) []models.Candidate {
	candidates := make([]models.Candidate, 0, len(inputs))
	for _, in := range inputs {
		id := in.ID
		if id == "" {
			id = uuid.NewString()
		}
		candidates = append(candidates, models.Candidate{
			ID:         id,
			Name:       strings.TrimSpace(in.Name),
			AvatarURL:  in.AvatarURL,
			DataAIHint: in.DataAIHint,
		})
	}
	return candidates
}

// normalizeSettings fills the inactive knobs with their storage defaults.
func normalizeSettings(s models.PollSettings) models.PollSettings {
	if !s.VoteLimitEnabled && s.MaxVotesPerClient < 1 {
		s.MaxVotesPerClient = 1
	}
	if !s.IsMultiSelect && s.MaxSelections < 1 {
		s.MaxSelections = 1
	}
	return s
}
