// Copyright (c) 2025 the evote authors.
// Licensed under the MIT License. See LICENSE.

/*
Package router defines HTTP routes for the evote API.

# Route Registration

NewRouter creates a configured http.ServeMux with all endpoints:

	mux := router.NewRouter(store, cfg)

# Endpoints

Health:

	GET /health

Admin session:

	POST /login   - Exchange the admin password for a session cookie
	POST /logout  - Clear the session cookie
	GET  /session - Current admin state

Poll management (admin, requires session cookie or X-Admin-Token):

	POST   /polls             - Create poll
	PUT    /polls/{id}        - Update poll definition
	DELETE /polls/{id}        - Delete poll
	POST   /polls/{id}/status - Open or close manually

Public reads and voting:

	GET  /polls             - List polls
	GET  /polls/{id}        - Poll details
	POST /polls/{id}/vote   - Submit a vote (X-Client-ID for limited polls)

Results and settings:

	GET /polls/{id}/results - Aggregated results (visibility-gated)
	GET /settings           - Application settings
	PUT /settings           - Update settings (admin)

# Handler Initialization

The router creates handler instances with dependency injection:

	adminHandler := handlers.NewAdminHandler(cfg)
	pollHandler := handlers.NewPollHandler(s, cfg)
	voteHandler := handlers.NewVoteHandler(s, cfg)
	resultsHandler := handlers.NewResultsHandler(s, cfg)
	settingsHandler := handlers.NewSettingsHandler(s, cfg)

Handlers receive the store and configuration; none hold global state.
*/
package router
