// Copyright (c) 2025 the evote authors.
// Licensed under the MIT License. See LICENSE.

package handlers

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/evotehq/evote/cliparse"
	"github.com/evotehq/evote/middleware"
	"github.com/evotehq/evote/models"
	"github.com/evotehq/evote/store"
)

type VoteHandler struct {
	store store.Store
	cfg   cliparse.Config
}

func NewVoteHandler(s store.Store, cfg cliparse.Config) *VoteHandler {
	return &VoteHandler{store: s, cfg: cfg}
}

// SubmitVote handles POST /polls/{id}/vote
//
// The client id from X-Client-ID feeds the per-poll vote limit. The id is
// minted by the client, so the limit is a soft, bypassable cap; see the
// middleware package.
func (h *VoteHandler) SubmitVote(w http.ResponseWriter, r *http.Request) {
	pollID := r.PathValue("id")
	if pollID == "" {
		middleware.ErrorResponse(w, http.StatusBadRequest, models.ErrCodeValidation, "poll id is required")
		return
	}

	var req models.SubmitVoteRequest
	if err := middleware.ParseJSONBody(r, &req); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, models.ErrCodeValidation, "Invalid JSON")
		return
	}

	clientID := middleware.ClientID(r)

	if err := h.store.RecordVote(pollID, req.CandidateIDs, clientID, time.Now()); err != nil {
		domainError(w, err)
		return
	}

	slog.Info("vote recorded", "poll_id", pollID, "selections", len(req.CandidateIDs))

	middleware.JSONResponse(w, http.StatusOK, models.SubmitVoteResponse{
		Message: "vote recorded",
	})
}
