// Copyright (c) 2025 the evote authors.
// Licensed under the MIT License. See LICENSE.

/*
Package auth implements the admin gate: a single shared-secret password and
HMAC-signed session tokens.

# Password Check

The admin password is a single configured secret with no per-user accounts,
lockout, or rate limiting:

	if auth.VerifyPassword(req.Password, cfg.AdminPassword) { ... }

The comparison is constant time.

# Session Tokens

A successful login mints a stateless token:

	token, err := auth.NewSessionToken(cfg.SessionSecret)
	err = auth.ValidateSessionToken(token, cfg.SessionSecret)

The token is "id.signature" where id is 24 random bytes and the signature
is HMAC-SHA256(id, secret), both URL-safe base64 without padding. Because
tokens are not stored server side, logout only clears the cookie; a leaked
token stays valid until the session secret rotates.

The token travels in the evote_session cookie or the X-Admin-Token header.
*/
package auth
