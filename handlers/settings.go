// Copyright (c) 2025 the evote authors.
// Licensed under the MIT License. See LICENSE.

package handlers

import (
	"log/slog"
	"net/http"

	"github.com/evotehq/evote/cliparse"
	"github.com/evotehq/evote/middleware"
	"github.com/evotehq/evote/models"
	"github.com/evotehq/evote/store"
)

type SettingsHandler struct {
	store store.Store
	cfg   cliparse.Config
}

func NewSettingsHandler(s store.Store, cfg cliparse.Config) *SettingsHandler {
	return &SettingsHandler{store: s, cfg: cfg}
}

// GetSettings handles GET /settings
// Public: voters need the visibility flag to know whether to offer the
// results view.
func (h *SettingsHandler) GetSettings(w http.ResponseWriter, r *http.Request) {
	visible, err := h.store.ResultsVisibility()
	if err != nil {
		domainError(w, err)
		return
	}

	middleware.JSONResponse(w, http.StatusOK, models.SettingsResponse{
		ResultsVisibility: visible,
	})
}

// UpdateSettings handles PUT /settings
func (h *SettingsHandler) UpdateSettings(w http.ResponseWriter, r *http.Request) {
	if !isAdmin(r, h.cfg.SessionSecret) {
		unauthorized(w)
		return
	}

	var req models.UpdateSettingsRequest
	if err := middleware.ParseJSONBody(r, &req); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, models.ErrCodeValidation, "Invalid JSON")
		return
	}

	if err := h.store.SetResultsVisibility(req.ResultsVisibility); err != nil {
		domainError(w, err)
		return
	}

	slog.Info("results visibility changed", "visible", req.ResultsVisibility)

	middleware.JSONResponse(w, http.StatusOK, models.SettingsResponse{
		ResultsVisibility: req.ResultsVisibility,
	})
}
