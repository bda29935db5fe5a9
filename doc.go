// Copyright (c) 2025 the evote authors.
// Licensed under the MIT License. See LICENSE.

/*
Package main provides the entry point for the evote API server.

evote is a small electronic voting service: an admin creates polls with
candidates and settings (close schedule, vote limit, multi-select),
voters cast votes, and aggregated results are revealed when the admin
flips the results visibility switch.

# Starting the Server

The server reads configuration from CLI flags, the environment, or a
.env file:

	ADMIN_PASSWORD=... SESSION_SECRET=... go run .

Or with flags:

	go run . -p 8090 -t sqlite -d "file:evote.db" \
	    -admin-password ... -session-secret ...

# Configuration

Required settings:

  - ADMIN_PASSWORD (-admin-password): Shared admin password
  - SESSION_SECRET (-session-secret): Secret for session token HMAC

Optional settings:

  - PORT (-p): Server port (default: 8090)
  - DATABASE_TYPE (-t): "sqlite" (default) or "postgres"
  - DATABASE_URL (-d): DSN for the chosen driver (default: file:evote.db)

# Architecture

The server uses a handler-based architecture with dependency injection:

  - handlers: HTTP request handlers (admin session, polls, voting, results, settings)
  - router: Route definitions using Go 1.22+ routing
  - middleware: CORS, logging, JSON helpers
  - models: Request/response and domain types
  - poll: Pure domain logic (status, validation, reconciliation, results)
  - store: SQL persistence behind a small interface
  - auth: Password check and session tokens
  - db: Schema creation
  - cliparse: Configuration parsing

See package documentation for each component.
*/
package main
