// Copyright (c) 2025 the evote authors.
// Licensed under the MIT License. See LICENSE.

package store

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/evotehq/evote/models"
	"github.com/evotehq/evote/poll"
	"github.com/evotehq/evote/testutil"
)

func newStore(t *testing.T) *SQLStore {
	t.Helper()
	return NewSQL(testutil.SetupTestDB(t))
}

func TestCreateAndGetPoll(t *testing.T) {
	s := newStore(t)

	p := testutil.NewPoll("Best lunch spot", "Alice", "Bob")
	p.Candidates[0].AvatarURL = "https://example.com/a.png"
	p.Candidates[0].DataAIHint = "portrait"
	require.NoError(t, s.CreatePoll(p))

	got, err := s.GetPoll(p.ID)
	require.NoError(t, err)

	assert.Equal(t, p.ID, got.ID)
	assert.Equal(t, "Best lunch spot", got.Title)
	assert.True(t, got.IsOpen)
	require.Len(t, got.Candidates, 2)
	assert.Equal(t, map[string]int{p.Candidates[0].ID: 0, p.Candidates[1].ID: 0}, got.Votes)

	for _, c := range got.Candidates {
		if c.ID == p.Candidates[0].ID {
			assert.Equal(t, "https://example.com/a.png", c.AvatarURL)
			assert.Equal(t, "portrait", c.DataAIHint)
		}
	}
}

func TestGetPollNotFound(t *testing.T) {
	s := newStore(t)

	_, err := s.GetPoll("missing")
	assert.ErrorIs(t, err, poll.ErrNotFound)
}

func TestListPollsNewestFirst(t *testing.T) {
	s := newStore(t)

	older := testutil.NewPoll("Older", "A", "B")
	older.CreatedAt = time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
	newer := testutil.NewPoll("Newer", "C", "D")
	newer.CreatedAt = time.Date(2025, 2, 1, 0, 0, 0, 0, time.UTC)

	require.NoError(t, s.CreatePoll(older))
	require.NoError(t, s.CreatePoll(newer))

	polls, err := s.ListPolls()
	require.NoError(t, err)
	require.Len(t, polls, 2)
	assert.Equal(t, "Newer", polls[0].Title)
	assert.Equal(t, "Older", polls[1].Title)
	require.Len(t, polls[0].Candidates, 2)
}

func TestUpdatePollReconcilesVotes(t *testing.T) {
	s := newStore(t)

	p := testutil.NewPoll("Favorites", "Alice", "Bob", "Carol")
	require.NoError(t, s.CreatePoll(p))

	alice, bob, carol := p.Candidates[0], p.Candidates[1], p.Candidates[2]

	// Give Alice 3 votes and Bob 1.
	for i := 0; i < 3; i++ {
		require.NoError(t, s.RecordVote(p.ID, []string{alice.ID}, "", time.Now()))
	}
	require.NoError(t, s.RecordVote(p.ID, []string{bob.ID}, "", time.Now()))

	// Edit: drop Carol, keep Alice and Bob, add Dave.
	updated := p
	updated.Title = "Favorites v2"
	updated.Candidates = []models.Candidate{
		alice,
		bob,
		{ID: "dave", Name: "Dave"},
	}
	require.NoError(t, s.UpdatePoll(updated))

	got, err := s.GetPoll(p.ID)
	require.NoError(t, err)
	assert.Equal(t, "Favorites v2", got.Title)
	assert.Equal(t, map[string]int{
		alice.ID: 3,
		bob.ID:   1,
		"dave":   0,
	}, got.Votes)
	assert.NotContains(t, got.Votes, carol.ID, "removed candidate's tally must be dropped")
}

func TestUpdatePollNotFound(t *testing.T) {
	s := newStore(t)

	p := testutil.NewPoll("Ghost", "A", "B")
	assert.ErrorIs(t, s.UpdatePoll(p), poll.ErrNotFound)
}

func TestDeletePollCascades(t *testing.T) {
	s := newStore(t)

	p := testutil.NewPoll("Doomed", "A", "B")
	p.VoteLimitEnabled = true
	p.MaxVotesPerClient = 5
	require.NoError(t, s.CreatePoll(p))
	require.NoError(t, s.RecordVote(p.ID, []string{p.Candidates[0].ID}, "client-1", time.Now()))

	require.NoError(t, s.DeletePoll(p.ID))

	_, err := s.GetPoll(p.ID)
	assert.ErrorIs(t, err, poll.ErrNotFound)

	count, err := s.ClientVoteCount(p.ID, "client-1")
	require.NoError(t, err)
	assert.Zero(t, count, "client counters must be removed with the poll")

	assert.ErrorIs(t, s.DeletePoll(p.ID), poll.ErrNotFound)
}

func TestSetPollOpen(t *testing.T) {
	s := newStore(t)

	past := time.Now().Add(-time.Hour).UTC()
	p := testutil.NewPoll("Toggled", "A", "B")
	p.IsOpen = false
	p.ScheduledCloseTime = &past
	require.NoError(t, s.CreatePoll(p))

	// Reopening with clearSchedule drops the stale close time, otherwise
	// the next read would close the poll again.
	require.NoError(t, s.SetPollOpen(p.ID, true, true))

	got, err := s.GetPoll(p.ID)
	require.NoError(t, err)
	assert.True(t, got.IsOpen)
	assert.Nil(t, got.ScheduledCloseTime)

	require.NoError(t, s.SetPollOpen(p.ID, false, false))
	got, err = s.GetPoll(p.ID)
	require.NoError(t, err)
	assert.False(t, got.IsOpen)

	assert.ErrorIs(t, s.SetPollOpen("missing", true, false), poll.ErrNotFound)
}

func TestRecordVoteTallyConservation(t *testing.T) {
	s := newStore(t)

	p := testutil.NewPoll("Tallies", "X", "Y")
	require.NoError(t, s.CreatePoll(p))

	x, y := p.Candidates[0], p.Candidates[1]
	for i := 0; i < 5; i++ {
		require.NoError(t, s.RecordVote(p.ID, []string{x.ID}, "", time.Now()))
	}

	got, err := s.GetPoll(p.ID)
	require.NoError(t, err)
	assert.Equal(t, 5, got.Votes[x.ID], "five accepted votes must raise the tally by exactly five")
	assert.Equal(t, 0, got.Votes[y.ID], "other tallies must be unchanged")
}

func TestRecordVoteMultiSelect(t *testing.T) {
	s := newStore(t)

	p := testutil.NewPoll("Multi", "A", "B", "C")
	p.IsMultiSelect = true
	p.MaxSelections = 2
	require.NoError(t, s.CreatePoll(p))

	a, b, c := p.Candidates[0], p.Candidates[1], p.Candidates[2]

	require.NoError(t, s.RecordVote(p.ID, []string{a.ID, c.ID}, "", time.Now()))

	got, err := s.GetPoll(p.ID)
	require.NoError(t, err)
	assert.Equal(t, 1, got.Votes[a.ID])
	assert.Equal(t, 0, got.Votes[b.ID])
	assert.Equal(t, 1, got.Votes[c.ID])

	err = s.RecordVote(p.ID, []string{a.ID, b.ID, c.ID}, "", time.Now())
	assert.ErrorIs(t, err, poll.ErrInvalidSelectionCount)

	err = s.RecordVote(p.ID, nil, "", time.Now())
	assert.ErrorIs(t, err, poll.ErrInvalidSelectionCount)
}

func TestRecordVoteRollsBackOnUnknownCandidate(t *testing.T) {
	s := newStore(t)

	p := testutil.NewPoll("Atomic", "A", "B", "C")
	p.IsMultiSelect = true
	p.MaxSelections = 3
	require.NoError(t, s.CreatePoll(p))

	a := p.Candidates[0]
	err := s.RecordVote(p.ID, []string{a.ID, "nope"}, "", time.Now())
	assert.ErrorIs(t, err, poll.ErrUnknownCandidate)

	got, err := s.GetPoll(p.ID)
	require.NoError(t, err)
	assert.Equal(t, 0, got.Votes[a.ID], "rejected vote must not leave partial tallies")
}

func TestRecordVoteLimit(t *testing.T) {
	s := newStore(t)

	p := testutil.NewPoll("Limited", "A", "B")
	p.VoteLimitEnabled = true
	p.MaxVotesPerClient = 2
	require.NoError(t, s.CreatePoll(p))

	a := p.Candidates[0]

	require.NoError(t, s.RecordVote(p.ID, []string{a.ID}, "client-1", time.Now()))
	require.NoError(t, s.RecordVote(p.ID, []string{a.ID}, "client-1", time.Now()))

	err := s.RecordVote(p.ID, []string{a.ID}, "client-1", time.Now())
	assert.ErrorIs(t, err, poll.ErrVoteLimitExceeded)

	got, err := s.GetPoll(p.ID)
	require.NoError(t, err)
	assert.Equal(t, 2, got.Votes[a.ID], "rejected third vote must not change the tally")

	count, err := s.ClientVoteCount(p.ID, "client-1")
	require.NoError(t, err)
	assert.Equal(t, 2, count)

	// A different client is unaffected.
	require.NoError(t, s.RecordVote(p.ID, []string{a.ID}, "client-2", time.Now()))
}

func TestRecordVoteRequiresClientIDWhenLimited(t *testing.T) {
	s := newStore(t)

	p := testutil.NewPoll("Limited", "A", "B")
	p.VoteLimitEnabled = true
	p.MaxVotesPerClient = 1
	require.NoError(t, s.CreatePoll(p))

	err := s.RecordVote(p.ID, []string{p.Candidates[0].ID}, "", time.Now())
	assert.ErrorIs(t, err, poll.ErrValidation)
}

func TestRecordVoteClosedPoll(t *testing.T) {
	s := newStore(t)

	p := testutil.NewPoll("Closed", "A", "B")
	p.IsOpen = false
	require.NoError(t, s.CreatePoll(p))

	err := s.RecordVote(p.ID, []string{p.Candidates[0].ID}, "", time.Now())
	assert.ErrorIs(t, err, poll.ErrPollClosed)
}

func TestRecordVotePersistsLazyClosure(t *testing.T) {
	s := newStore(t)

	past := time.Now().Add(-time.Minute).UTC()
	p := testutil.NewPoll("Expired", "A", "B")
	p.ScheduledCloseTime = &past
	require.NoError(t, s.CreatePoll(p))

	// Stored flag is still open but the schedule elapsed: the vote is
	// rejected and the closure is written back.
	err := s.RecordVote(p.ID, []string{p.Candidates[0].ID}, "", time.Now())
	assert.ErrorIs(t, err, poll.ErrPollClosed)

	got, err := s.GetPoll(p.ID)
	require.NoError(t, err)
	assert.False(t, got.IsOpen)
	assert.Equal(t, 0, got.Votes[p.Candidates[0].ID])
}

// Candidate ids are scoped per poll: the same admin-chosen id may appear
// in two polls, and votes land only in the poll they were cast in.
func TestCandidateIDsScopedPerPoll(t *testing.T) {
	s := newStore(t)

	first := testutil.NewPoll("First", "A", "B")
	first.Candidates[0].ID = "shared-id"
	require.NoError(t, s.CreatePoll(first))

	second := testutil.NewPoll("Second", "A", "B")
	second.Candidates[0].ID = "shared-id"
	require.NoError(t, s.CreatePoll(second))

	require.NoError(t, s.RecordVote(first.ID, []string{"shared-id"}, "", time.Now()))

	got, err := s.GetPoll(first.ID)
	require.NoError(t, err)
	assert.Equal(t, 1, got.Votes["shared-id"])

	other, err := s.GetPoll(second.ID)
	require.NoError(t, err)
	assert.Equal(t, 0, other.Votes["shared-id"])
}

func TestRecordVoteNotFound(t *testing.T) {
	s := newStore(t)

	err := s.RecordVote("missing", []string{"a"}, "", time.Now())
	assert.ErrorIs(t, err, poll.ErrNotFound)
}

func TestResultsVisibility(t *testing.T) {
	s := newStore(t)

	visible, err := s.ResultsVisibility()
	require.NoError(t, err)
	assert.False(t, visible, "visibility defaults to private")

	require.NoError(t, s.SetResultsVisibility(true))
	visible, err = s.ResultsVisibility()
	require.NoError(t, err)
	assert.True(t, visible)

	require.NoError(t, s.SetResultsVisibility(false))
	visible, err = s.ResultsVisibility()
	require.NoError(t, err)
	assert.False(t, visible)
}
