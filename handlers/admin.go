// Copyright (c) 2025 the evote authors.
// Licensed under the MIT License. See LICENSE.

package handlers

import (
	"log/slog"
	"net/http"

	"github.com/evotehq/evote/auth"
	"github.com/evotehq/evote/cliparse"
	"github.com/evotehq/evote/middleware"
	"github.com/evotehq/evote/models"
)

type AdminHandler struct {
	cfg cliparse.Config
}

func NewAdminHandler(cfg cliparse.Config) *AdminHandler {
	return &AdminHandler{cfg: cfg}
}

// Login handles POST /login
func (h *AdminHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req models.LoginRequest
	if err := middleware.ParseJSONBody(r, &req); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, models.ErrCodeValidation, "Invalid JSON")
		return
	}

	if !auth.VerifyPassword(req.Password, h.cfg.AdminPassword) {
		slog.Warn("admin login rejected", "remote", r.RemoteAddr)
		middleware.ErrorResponse(w, http.StatusUnauthorized, models.ErrCodeUnauthorized, "Invalid password")
		return
	}

	token, err := auth.NewSessionToken(h.cfg.SessionSecret)
	if err != nil {
		slog.Error("failed to create session token", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, models.ErrCodeInternal, "Failed to log in")
		return
	}

	http.SetCookie(w, &http.Cookie{
		Name:     auth.SessionCookieName,
		Value:    token,
		Path:     "/",
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})

	slog.Info("admin logged in", "remote", r.RemoteAddr)

	middleware.JSONResponse(w, http.StatusOK, models.SessionResponse{IsAdmin: true})
}

// Logout handles POST /logout
func (h *AdminHandler) Logout(w http.ResponseWriter, r *http.Request) {
	http.SetCookie(w, &http.Cookie{
		Name:     auth.SessionCookieName,
		Value:    "",
		Path:     "/",
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
		MaxAge:   -1,
	})

	middleware.JSONResponse(w, http.StatusOK, models.SessionResponse{IsAdmin: false})
}

// Session handles GET /session
// Lets the UI restore admin state after a reload.
func (h *AdminHandler) Session(w http.ResponseWriter, r *http.Request) {
	middleware.JSONResponse(w, http.StatusOK, models.SessionResponse{
		IsAdmin: isAdmin(r, h.cfg.SessionSecret),
	})
}
