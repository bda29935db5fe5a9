// Copyright (c) 2025 the evote authors.
// Licensed under the MIT License. See LICENSE.

package handlers

import (
	"net/http"
	"time"

	"github.com/evotehq/evote/cliparse"
	"github.com/evotehq/evote/middleware"
	"github.com/evotehq/evote/models"
	"github.com/evotehq/evote/poll"
	"github.com/evotehq/evote/store"
)

type ResultsHandler struct {
	store store.Store
	cfg   cliparse.Config
}

func NewResultsHandler(s store.Store, cfg cliparse.Config) *ResultsHandler {
	return &ResultsHandler{store: s, cfg: cfg}
}

// GetResults handles GET /polls/{id}/results
// Aggregated results are public only while the results visibility setting
// is on; admins always see them.
func (h *ResultsHandler) GetResults(w http.ResponseWriter, r *http.Request) {
	pollID := r.PathValue("id")
	if pollID == "" {
		middleware.ErrorResponse(w, http.StatusBadRequest, models.ErrCodeValidation, "poll id is required")
		return
	}

	if !isAdmin(r, h.cfg.SessionSecret) {
		visible, err := h.store.ResultsVisibility()
		if err != nil {
			domainError(w, err)
			return
		}
		if !visible {
			middleware.ErrorResponse(w, http.StatusForbidden, models.ErrCodeResultsHidden, "Results are not public")
			return
		}
	}

	p, err := h.store.GetPoll(pollID)
	if err != nil {
		domainError(w, err)
		return
	}

	middleware.JSONResponse(w, http.StatusOK, poll.ComputeResults(poll.Resolve(p, time.Now())))
}
