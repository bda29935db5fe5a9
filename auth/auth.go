// Copyright (c) 2025 the evote authors.
// Licensed under the MIT License. See LICENSE.

package auth

import (
	"crypto/hmac"
	"crypto/rand"
	"crypto/sha256"
	"encoding/base64"
	"errors"
	"fmt"
	"strings"
)

var (
	ErrInvalidSession = errors.New("invalid session token")
)

// SessionCookieName is the cookie carrying the admin session token.
const SessionCookieName = "evote_session"

// VerifyPassword compares a submitted password against the configured admin
// password in constant time. An empty configured password never matches.
func VerifyPassword(got, want string) bool {
	if want == "" {
		return false
	}
	return hmac.Equal([]byte(got), []byte(want))
}

// NewSessionToken creates an admin session token: a random 24-byte id plus
// an HMAC-SHA256 signature over it, both URL-safe base64 without padding,
// joined by a dot. The token is stateless; possession of a validly signed
// token is the admin session.
func NewSessionToken(secret string) (string, error) {
	b := make([]byte, 24)
	if _, err := rand.Read(b); err != nil {
		return "", fmt.Errorf("failed to generate session id: %w", err)
	}
	id := encode(b)
	return id + "." + sign(id, secret), nil
}

// ValidateSessionToken checks a token's signature against the secret.
func ValidateSessionToken(token, secret string) error {
	id, sig, ok := strings.Cut(token, ".")
	if !ok || id == "" {
		return ErrInvalidSession
	}
	if !hmac.Equal([]byte(sig), []byte(sign(id, secret))) {
		return ErrInvalidSession
	}
	return nil
}

func sign(id, secret string) string {
	h := hmac.New(sha256.New, []byte(secret))
	h.Write([]byte(id))
	return encode(h.Sum(nil))
}

func encode(b []byte) string {
	return strings.TrimRight(base64.URLEncoding.EncodeToString(b), "=")
}
