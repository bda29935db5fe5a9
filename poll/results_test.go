// Copyright (c) 2025 the evote authors.
// Licensed under the MIT License. See LICENSE.

package poll

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/evotehq/evote/models"
)

func resultsPoll(votes map[string]int) models.Poll {
	return models.Poll{
		ID:    "p1",
		Title: "Favorite",
		Candidates: []models.Candidate{
			{ID: "a", Name: "Alice"},
			{ID: "b", Name: "Bob"},
			{ID: "c", Name: "Carol"},
		},
		Votes: votes,
	}
}

func TestComputeResultsWinner(t *testing.T) {
	p := resultsPoll(map[string]int{"a": 7, "b": 3, "c": 0})

	res := ComputeResults(p)
	assert.Equal(t, 10, res.TotalVotes)
	require.NotNil(t, res.Winner)
	assert.Equal(t, "a", res.Winner.CandidateID)
	assert.Equal(t, 7, res.Winner.Votes)
	assert.InDelta(t, 70.0, res.Winner.Percentage, 1e-9)
}

func TestComputeResultsTieHasNoWinner(t *testing.T) {
	p := resultsPoll(map[string]int{"a": 5, "b": 5, "c": 2})

	res := ComputeResults(p)
	assert.Equal(t, 12, res.TotalVotes)
	assert.Nil(t, res.Winner, "tie for the highest tally must report no winner")
}

func TestComputeResultsZeroVotes(t *testing.T) {
	p := resultsPoll(map[string]int{})

	res := ComputeResults(p)
	assert.Equal(t, 0, res.TotalVotes)
	assert.Nil(t, res.Winner)
	require.Len(t, res.Results, 3)
	for _, r := range res.Results {
		assert.Equal(t, 0, r.Votes)
		assert.Zero(t, r.Percentage, "zero-vote poll reports zero percent for every candidate")
	}
}

func TestComputeResultsOrdering(t *testing.T) {
	p := resultsPoll(map[string]int{"a": 1, "b": 4, "c": 1})

	res := ComputeResults(p)
	require.Len(t, res.Results, 3)
	assert.Equal(t, "b", res.Results[0].CandidateID)
	// Tied tallies fall back to name order.
	assert.Equal(t, "a", res.Results[1].CandidateID)
	assert.Equal(t, "c", res.Results[2].CandidateID)
}

func TestComputeResultsPercentagesSumToHundred(t *testing.T) {
	p := resultsPoll(map[string]int{"a": 2, "b": 1, "c": 1})

	res := ComputeResults(p)
	sum := 0.0
	for _, r := range res.Results {
		sum += r.Percentage
	}
	assert.InDelta(t, 100.0, sum, 1e-9)
}

func TestComputeResultsSingleVoterWinner(t *testing.T) {
	p := resultsPoll(map[string]int{"c": 1})

	res := ComputeResults(p)
	require.NotNil(t, res.Winner)
	assert.Equal(t, "c", res.Winner.CandidateID)
	assert.InDelta(t, 100.0, res.Winner.Percentage, 1e-9)
}
