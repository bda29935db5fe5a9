// Copyright (c) 2025 the evote authors.
// Licensed under the MIT License. See LICENSE.

package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/evotehq/evote/auth"
	"github.com/evotehq/evote/middleware"
	"github.com/evotehq/evote/models"
	"github.com/evotehq/evote/poll"
)

// isAdmin reports whether the request carries a valid admin session token,
// either in the X-Admin-Token header or the session cookie.
func isAdmin(r *http.Request, secret string) bool {
	if token := r.Header.Get("X-Admin-Token"); token != "" {
		return auth.ValidateSessionToken(token, secret) == nil
	}
	if c, err := r.Cookie(auth.SessionCookieName); err == nil {
		return auth.ValidateSessionToken(c.Value, secret) == nil
	}
	return false
}

// unauthorized writes the standard response for a missing admin session.
func unauthorized(w http.ResponseWriter) {
	middleware.ErrorResponse(w, http.StatusUnauthorized, models.ErrCodeUnauthorized, "Admin session required")
}

// domainError maps poll lifecycle sentinels onto HTTP responses. Anything
// unrecognized is an internal error and gets logged.
func domainError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, poll.ErrNotFound):
		middleware.ErrorResponse(w, http.StatusNotFound, models.ErrCodeNotFound, err.Error())
	case errors.Is(err, poll.ErrPollClosed):
		middleware.ErrorResponse(w, http.StatusConflict, models.ErrCodePollClosed, err.Error())
	case errors.Is(err, poll.ErrInvalidSelectionCount):
		middleware.ErrorResponse(w, http.StatusBadRequest, models.ErrCodeInvalidSelectionCount, err.Error())
	case errors.Is(err, poll.ErrUnknownCandidate):
		middleware.ErrorResponse(w, http.StatusBadRequest, models.ErrCodeUnknownCandidate, err.Error())
	case errors.Is(err, poll.ErrVoteLimitExceeded):
		middleware.ErrorResponse(w, http.StatusConflict, models.ErrCodeVoteLimitExceeded, err.Error())
	case errors.Is(err, poll.ErrValidation):
		middleware.ErrorResponse(w, http.StatusBadRequest, models.ErrCodeValidation, err.Error())
	default:
		slog.Error("request failed", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, models.ErrCodeInternal, "Internal server error")
	}
}
