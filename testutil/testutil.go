// Copyright (c) 2025 the evote authors.
// Licensed under the MIT License. See LICENSE.

package testutil

import (
	"bytes"
	"database/sql"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/google/uuid"
	_ "modernc.org/sqlite"

	"github.com/evotehq/evote/auth"
	"github.com/evotehq/evote/cliparse"
	"github.com/evotehq/evote/db"
	"github.com/evotehq/evote/models"
)

// SetupTestDB opens a fresh in-memory SQLite database with the full schema.
func SetupTestDB(t *testing.T) *sql.DB {
	t.Helper()

	conn, err := sql.Open("sqlite", ":memory:")
	if err != nil {
		t.Fatalf("Failed to open test database: %v", err)
	}
	// A memory database lives inside its connection; a pool of one keeps
	// every query on the same database.
	conn.SetMaxOpenConns(1)

	if err := db.CreateSchema(conn); err != nil {
		t.Fatalf("Failed to create schema: %v", err)
	}

	t.Cleanup(func() { conn.Close() })
	return conn
}

// GetTestConfig returns a standard test configuration
func GetTestConfig() cliparse.Config {
	return cliparse.Config{
		Port:          8090,
		DatabaseURL:   ":memory:",
		DatabaseType:  "sqlite",
		AdminPassword: "test-admin-password",
		SessionSecret: "test-session-secret",
	}
}

// NewPoll builds an open single-select poll with one candidate per name.
// Candidate ids are fresh UUIDs; read them back from the returned poll.
func NewPoll(title string, candidateNames ...string) models.Poll {
	p := models.Poll{
		ID:        uuid.NewString(),
		Title:     title,
		Votes:     map[string]int{},
		IsOpen:    true,
		CreatedAt: time.Now().UTC(),
	}
	p.MaxVotesPerClient = 1
	p.MaxSelections = 1
	for _, name := range candidateNames {
		p.Candidates = append(p.Candidates, models.Candidate{
			ID:   uuid.NewString(),
			Name: name,
		})
	}
	return p
}

// AdminToken mints a valid session token for the test config's secret.
func AdminToken(t *testing.T, cfg cliparse.Config) string {
	t.Helper()

	token, err := auth.NewSessionToken(cfg.SessionSecret)
	if err != nil {
		t.Fatalf("Failed to create session token: %v", err)
	}
	return token
}

// MakeRequest creates an HTTP test request with a JSON body
func MakeRequest(method, path string, body interface{}, headers map[string]string) *http.Request {
	var req *http.Request
	if body != nil {
		jsonBody, _ := json.Marshal(body)
		req = httptest.NewRequest(method, path, bytes.NewReader(jsonBody))
		req.Header.Set("Content-Type", "application/json")
	} else {
		req = httptest.NewRequest(method, path, nil)
	}

	for k, v := range headers {
		req.Header.Set(k, v)
	}

	return req
}
