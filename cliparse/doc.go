// Copyright (c) 2025 the evote authors.
// Licensed under the MIT License. See LICENSE.

/*
Package cliparse handles command-line argument parsing and configuration.

# Configuration

ParseFlags returns a Config struct with all settings:

	cfg, err := cliparse.ParseFlags(os.Args[1:])

# Config Fields

  - Port: Server listen port (default: 8090)
  - DatabaseURL: Connection string (default: file:evote.db for sqlite)
  - DatabaseType: "sqlite" or "postgres" (default: sqlite)
  - AdminPassword: Shared admin password (required)
  - SessionSecret: Secret for session token HMAC (required)

# CLI Flags

	-p               Server port
	-d               Database URL
	-t               Database type (sqlite or postgres)
	-admin-password  Admin password
	-session-secret  Session token secret

# Environment Variables

Flags fall back to environment variables:

	PORT           → -p
	DATABASE_URL   → -d
	DATABASE_TYPE  → -t
	ADMIN_PASSWORD → -admin-password
	SESSION_SECRET → -session-secret

CLI flags take precedence over environment variables.

# Validation

ParseFlags returns an error if required values are missing:

  - ADMIN_PASSWORD must be provided
  - SESSION_SECRET must be provided
  - DATABASE_URL must be provided when DATABASE_TYPE is postgres
*/
package cliparse
