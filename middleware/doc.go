// Copyright (c) 2025 the evote authors.
// Licensed under the MIT License. See LICENSE.

/*
Package middleware provides HTTP middleware and JSON helpers.

# Logging

WithLogging wraps a handler with structured request/completion logs via
log/slog.

# JSON Helpers

	middleware.JSONResponse(w, http.StatusOK, payload)
	middleware.ErrorResponse(w, http.StatusNotFound, models.ErrCodeNotFound, "poll not found")
	err := middleware.ParseJSONBody(r, &req)

ErrorResponse bodies carry a stable machine code plus a human-readable
message so clients can react per error kind.

# CORS

CORS reflects the request origin and answers preflight requests. Applied
once around the whole mux in main.

# Client Identity

ClientID reads the X-Client-ID header. Clients mint their own id (a UUID
kept in local storage), so the per-poll vote limit keyed on it is soft and
bypassable by design.
*/
package middleware
