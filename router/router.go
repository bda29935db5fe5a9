// Copyright (c) 2025 the evote authors.
// Licensed under the MIT License. See LICENSE.

package router

import (
	"net/http"

	"github.com/evotehq/evote/cliparse"
	"github.com/evotehq/evote/handlers"
	"github.com/evotehq/evote/middleware"
	"github.com/evotehq/evote/store"
)

func NewRouter(s store.Store, cfg cliparse.Config) *http.ServeMux {
	mux := http.NewServeMux()

	// Initialize handlers
	adminHandler := handlers.NewAdminHandler(cfg)
	pollHandler := handlers.NewPollHandler(s, cfg)
	voteHandler := handlers.NewVoteHandler(s, cfg)
	resultsHandler := handlers.NewResultsHandler(s, cfg)
	settingsHandler := handlers.NewSettingsHandler(s, cfg)

	// Health check
	mux.HandleFunc("GET /health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("OK"))
	})

	// Admin session
	mux.HandleFunc("POST /login", middleware.WithLogging(adminHandler.Login))
	mux.HandleFunc("POST /logout", middleware.WithLogging(adminHandler.Logout))
	mux.HandleFunc("GET /session", middleware.WithLogging(adminHandler.Session))

	// Poll management (admin) and public reads
	mux.HandleFunc("POST /polls", middleware.WithLogging(pollHandler.CreatePoll))
	mux.HandleFunc("GET /polls", middleware.WithLogging(pollHandler.ListPolls))
	mux.HandleFunc("GET /polls/{id}", middleware.WithLogging(pollHandler.GetPoll))
	mux.HandleFunc("PUT /polls/{id}", middleware.WithLogging(pollHandler.UpdatePoll))
	mux.HandleFunc("DELETE /polls/{id}", middleware.WithLogging(pollHandler.DeletePoll))
	mux.HandleFunc("POST /polls/{id}/status", middleware.WithLogging(pollHandler.SetPollStatus))

	// Voting (public)
	mux.HandleFunc("POST /polls/{id}/vote", middleware.WithLogging(voteHandler.SubmitVote))

	// Results and settings
	mux.HandleFunc("GET /polls/{id}/results", middleware.WithLogging(resultsHandler.GetResults))
	mux.HandleFunc("GET /settings", middleware.WithLogging(settingsHandler.GetSettings))
	mux.HandleFunc("PUT /settings", middleware.WithLogging(settingsHandler.UpdateSettings))

	// Root endpoint; {$} keeps the banner off every other GET path so
	// method mismatches get 405 and unknown paths get 404.
	mux.HandleFunc("GET /{$}", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("evote API v1"))
	})

	return mux
}
