// Copyright (c) 2025 the evote authors.
// Licensed under the MIT License. See LICENSE.

package store

import (
	"database/sql"
	"fmt"
	"strconv"
	"time"

	"github.com/evotehq/evote/models"
	"github.com/evotehq/evote/poll"
)

// SQLStore implements Store on database/sql. The queries stay within the
// dialect subset shared by SQLite and PostgreSQL; placeholders are numbered
// in order of first occurrence so positional binding works on both drivers.
type SQLStore struct {
	db *sql.DB
}

var _ Store = (*SQLStore)(nil)

func NewSQL(db *sql.DB) *SQLStore {
	return &SQLStore{db: db}
}

func (s *SQLStore) CreatePoll(p models.Poll) error {
	tx, err := s.db.Begin()
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	_, err = tx.Exec(`
		INSERT INTO polls (id, title, is_open, scheduled_close_time,
			vote_limit_enabled, max_votes_per_client, is_multi_select,
			max_selections, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
	`, p.ID, p.Title, p.IsOpen, p.ScheduledCloseTime, p.VoteLimitEnabled,
		p.MaxVotesPerClient, p.IsMultiSelect, p.MaxSelections, p.CreatedAt)
	if err != nil {
		return fmt.Errorf("failed to insert poll: %w", err)
	}

	for _, c := range p.Candidates {
		_, err = tx.Exec(`
			INSERT INTO candidates (id, poll_id, name, avatar_url, data_ai_hint, votes)
			VALUES ($1, $2, $3, $4, $5, $6)
		`, c.ID, p.ID, c.Name, c.AvatarURL, c.DataAIHint, p.Votes[c.ID])
		if err != nil {
			return fmt.Errorf("failed to insert candidate: %w", err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}
	return nil
}

func (s *SQLStore) GetPoll(id string) (models.Poll, error) {
	p, err := scanPoll(s.db.QueryRow(`
		SELECT id, title, is_open, scheduled_close_time, vote_limit_enabled,
			max_votes_per_client, is_multi_select, max_selections, created_at
		FROM polls
		WHERE id = $1
	`, id))
	if err == sql.ErrNoRows {
		return models.Poll{}, poll.ErrNotFound
	}
	if err != nil {
		return models.Poll{}, fmt.Errorf("failed to query poll: %w", err)
	}

	candidates, votes, err := s.pollCandidates(p.ID)
	if err != nil {
		return models.Poll{}, err
	}
	p.Candidates = candidates
	p.Votes = votes
	return p, nil
}

func (s *SQLStore) ListPolls() ([]models.Poll, error) {
	rows, err := s.db.Query(`
		SELECT id, title, is_open, scheduled_close_time, vote_limit_enabled,
			max_votes_per_client, is_multi_select, max_selections, created_at
		FROM polls
		ORDER BY created_at DESC, id
	`)
	if err != nil {
		return nil, fmt.Errorf("failed to query polls: %w", err)
	}
	defer rows.Close()

	polls := []models.Poll{}
	for rows.Next() {
		p, err := scanPoll(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan poll: %w", err)
		}
		polls = append(polls, p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read polls: %w", err)
	}
	rows.Close()

	for i := range polls {
		candidates, votes, err := s.pollCandidates(polls[i].ID)
		if err != nil {
			return nil, err
		}
		polls[i].Candidates = candidates
		polls[i].Votes = votes
	}
	return polls, nil
}

func (s *SQLStore) UpdatePoll(p models.Poll) error {
	tx, err := s.db.Begin()
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	res, err := tx.Exec(`
		UPDATE polls
		SET title = $1, scheduled_close_time = $2, vote_limit_enabled = $3,
			max_votes_per_client = $4, is_multi_select = $5, max_selections = $6
		WHERE id = $7
	`, p.Title, p.ScheduledCloseTime, p.VoteLimitEnabled, p.MaxVotesPerClient,
		p.IsMultiSelect, p.MaxSelections, p.ID)
	if err != nil {
		return fmt.Errorf("failed to update poll: %w", err)
	}
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return poll.ErrNotFound
	}

	oldVotes, err := candidateVotesTx(tx, p.ID)
	if err != nil {
		return err
	}

	newIDs := make([]string, 0, len(p.Candidates))
	for _, c := range p.Candidates {
		newIDs = append(newIDs, c.ID)
	}
	votes := poll.ReconcileVotes(oldVotes, newIDs)

	if _, err := tx.Exec(`DELETE FROM candidates WHERE poll_id = $1`, p.ID); err != nil {
		return fmt.Errorf("failed to clear candidates: %w", err)
	}
	for _, c := range p.Candidates {
		_, err = tx.Exec(`
			INSERT INTO candidates (id, poll_id, name, avatar_url, data_ai_hint, votes)
			VALUES ($1, $2, $3, $4, $5, $6)
		`, c.ID, p.ID, c.Name, c.AvatarURL, c.DataAIHint, votes[c.ID])
		if err != nil {
			return fmt.Errorf("failed to insert candidate: %w", err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}
	return nil
}

func (s *SQLStore) DeletePoll(id string) error {
	tx, err := s.db.Begin()
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	if _, err := tx.Exec(`DELETE FROM client_votes WHERE poll_id = $1`, id); err != nil {
		return fmt.Errorf("failed to delete client votes: %w", err)
	}
	if _, err := tx.Exec(`DELETE FROM candidates WHERE poll_id = $1`, id); err != nil {
		return fmt.Errorf("failed to delete candidates: %w", err)
	}

	res, err := tx.Exec(`DELETE FROM polls WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete poll: %w", err)
	}
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return poll.ErrNotFound
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}
	return nil
}

func (s *SQLStore) SetPollOpen(id string, open bool, clearSchedule bool) error {
	var (
		res sql.Result
		err error
	)
	if clearSchedule {
		res, err = s.db.Exec(`
			UPDATE polls SET is_open = $1, scheduled_close_time = NULL WHERE id = $2
		`, open, id)
	} else {
		res, err = s.db.Exec(`UPDATE polls SET is_open = $1 WHERE id = $2`, open, id)
	}
	if err != nil {
		return fmt.Errorf("failed to update poll status: %w", err)
	}
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return poll.ErrNotFound
	}
	return nil
}

func (s *SQLStore) RecordVote(pollID string, candidateIDs []string, clientID string, now time.Time) error {
	tx, err := s.db.Begin()
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	var p models.Poll
	var closeTime sql.NullTime
	err = tx.QueryRow(`
		SELECT id, is_open, scheduled_close_time, vote_limit_enabled,
			max_votes_per_client, is_multi_select, max_selections
		FROM polls
		WHERE id = $1
	`, pollID).Scan(&p.ID, &p.IsOpen, &closeTime, &p.VoteLimitEnabled,
		&p.MaxVotesPerClient, &p.IsMultiSelect, &p.MaxSelections)
	if err == sql.ErrNoRows {
		return poll.ErrNotFound
	}
	if err != nil {
		return fmt.Errorf("failed to query poll: %w", err)
	}
	if closeTime.Valid {
		t := closeTime.Time
		p.ScheduledCloseTime = &t
	}

	ids, err := candidateIDsTx(tx, pollID)
	if err != nil {
		return err
	}
	for _, id := range ids {
		p.Candidates = append(p.Candidates, models.Candidate{ID: id})
	}

	resolved := poll.Resolve(p, now)
	if !resolved.IsOpen {
		if p.IsOpen {
			// Persist the lazy closure even though the vote is rejected.
			if _, err := tx.Exec(`UPDATE polls SET is_open = $1 WHERE id = $2`, false, pollID); err != nil {
				return fmt.Errorf("failed to close expired poll: %w", err)
			}
			if err := tx.Commit(); err != nil {
				return fmt.Errorf("failed to commit transaction: %w", err)
			}
		}
		return poll.ErrPollClosed
	}

	if err := poll.ValidateSelection(resolved, candidateIDs); err != nil {
		return err
	}

	if p.VoteLimitEnabled {
		if clientID == "" {
			return fmt.Errorf("%w: X-Client-ID header is required for this poll", poll.ErrValidation)
		}
		count, err := clientVoteCountTx(tx, pollID, clientID)
		if err != nil {
			return err
		}
		if count >= p.MaxVotesPerClient {
			return poll.ErrVoteLimitExceeded
		}
	}

	for _, cid := range candidateIDs {
		res, err := tx.Exec(`
			UPDATE candidates SET votes = votes + 1 WHERE id = $1 AND poll_id = $2
		`, cid, pollID)
		if err != nil {
			return fmt.Errorf("failed to increment tally: %w", err)
		}
		if n, err := res.RowsAffected(); err == nil && n == 0 {
			return poll.ErrUnknownCandidate
		}
	}

	if p.VoteLimitEnabled {
		_, err = tx.Exec(`
			INSERT INTO client_votes (poll_id, client_id, count)
			VALUES ($1, $2, 1)
			ON CONFLICT (poll_id, client_id) DO UPDATE SET count = client_votes.count + 1
		`, pollID, clientID)
		if err != nil {
			return fmt.Errorf("failed to update client vote count: %w", err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}
	return nil
}

func (s *SQLStore) ClientVoteCount(pollID, clientID string) (int, error) {
	var count int
	err := s.db.QueryRow(`
		SELECT count FROM client_votes WHERE poll_id = $1 AND client_id = $2
	`, pollID, clientID).Scan(&count)
	if err == sql.ErrNoRows {
		return 0, nil
	}
	if err != nil {
		return 0, fmt.Errorf("failed to query client vote count: %w", err)
	}
	return count, nil
}

func (s *SQLStore) ResultsVisibility() (bool, error) {
	var value string
	err := s.db.QueryRow(`
		SELECT value FROM app_settings WHERE key = $1
	`, models.SettingResultsVisibility).Scan(&value)
	if err == sql.ErrNoRows {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("failed to query setting: %w", err)
	}
	return value == "true", nil
}

func (s *SQLStore) SetResultsVisibility(visible bool) error {
	_, err := s.db.Exec(`
		INSERT INTO app_settings (key, value)
		VALUES ($1, $2)
		ON CONFLICT (key) DO UPDATE SET value = excluded.value
	`, models.SettingResultsVisibility, strconv.FormatBool(visible))
	if err != nil {
		return fmt.Errorf("failed to update setting: %w", err)
	}
	return nil
}

// scanner covers *sql.Row and *sql.Rows.
type scanner interface {
	Scan(dest ...interface{}) error
}

func scanPoll(row scanner) (models.Poll, error) {
	var p models.Poll
	var closeTime sql.NullTime
	err := row.Scan(&p.ID, &p.Title, &p.IsOpen, &closeTime, &p.VoteLimitEnabled,
		&p.MaxVotesPerClient, &p.IsMultiSelect, &p.MaxSelections, &p.CreatedAt)
	if err != nil {
		return models.Poll{}, err
	}
	if closeTime.Valid {
		t := closeTime.Time
		p.ScheduledCloseTime = &t
	}
	return p, nil
}

func (s *SQLStore) pollCandidates(pollID string) ([]models.Candidate, map[string]int, error) {
	rows, err := s.db.Query(`
		SELECT id, name, avatar_url, data_ai_hint, votes
		FROM candidates
		WHERE poll_id = $1
		ORDER BY name, id
	`, pollID)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to query candidates: %w", err)
	}
	defer rows.Close()

	candidates := []models.Candidate{}
	votes := map[string]int{}
	for rows.Next() {
		var c models.Candidate
		var avatar, hint sql.NullString
		var tally int
		if err := rows.Scan(&c.ID, &c.Name, &avatar, &hint, &tally); err != nil {
			return nil, nil, fmt.Errorf("failed to scan candidate: %w", err)
		}
		c.AvatarURL = avatar.String
		c.DataAIHint = hint.String
		candidates = append(candidates, c)
		votes[c.ID] = tally
	}
	if err := rows.Err(); err != nil {
		return nil, nil, fmt.Errorf("failed to read candidates: %w", err)
	}
	return candidates, votes, nil
}

func candidateIDsTx(tx *sql.Tx, pollID string) ([]string, error) {
	rows, err := tx.Query(`SELECT id FROM candidates WHERE poll_id = $1`, pollID)
	if err != nil {
		return nil, fmt.Errorf("failed to query candidates: %w", err)
	}
	defer rows.Close()

	var ids []string
	for rows.Next() {
		var id string
		if err := rows.Scan(&id); err != nil {
			return nil, fmt.Errorf("failed to scan candidate: %w", err)
		}
		ids = append(ids, id)
	}
	return ids, rows.Err()
}

func candidateVotesTx(tx *sql.Tx, pollID string) (map[string]int, error) {
	rows, err := tx.Query(`SELECT id, votes FROM candidates WHERE poll_id = $1`, pollID)
	if err != nil {
		return nil, fmt.Errorf("failed to query candidate tallies: %w", err)
	}
	defer rows.Close()

	votes := map[string]int{}
	for rows.Next() {
		var id string
		var tally int
		if err := rows.Scan(&id, &tally); err != nil {
			return nil, fmt.Errorf("failed to scan candidate tally: %w", err)
		}
		votes[id] = tally
	}
	return votes, rows.Err()
}

func clientVoteCountTx(tx *sql.Tx, pollID, clientID string) (int, error) {
	var count int
	err := tx.QueryRow(`
		SELECT count FROM client_votes WHERE poll_id = $1 AND client_id = $2
	`, pollID, clientID).Scan(&count)
	if err == sql.ErrNoRows {
		return 0, nil
	}
	if err != nil {
		return 0, fmt.Errorf("failed to query client vote count: %w", err)
	}
	return count, nil
}
