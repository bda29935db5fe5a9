// Copyright (c) 2025 the evote authors.
// Licensed under the MIT License. See LICENSE.

package poll

import (
	"sort"

	"github.com/evotehq/evote/models"
)

// ComputeResults aggregates a poll's tallies for display: total votes,
// per-candidate percentages, and the winner. The winner is nil when the
// poll has no votes or when two or more candidates share the highest tally.
// A zero-vote poll reports 0% for every candidate.
//
// Results are ordered by descending tally, ties broken by name.
func ComputeResults(p models.Poll) models.PollResults {
	results := make([]models.CandidateResult, 0, len(p.Candidates))

	total := 0
	for _, c := range p.Candidates {
		total += p.Votes[c.ID]
	}

	for _, c := range p.Candidates {
		tally := p.Votes[c.ID]
		pct := 0.0
		if total > 0 {
			pct = float64(tally) / float64(total) * 100
		}
		results = append(results, models.CandidateResult{
			CandidateID: c.ID,
			Name:        c.Name,
			Votes:       tally,
			Percentage:  pct,
		})
	}

	sort.Slice(results, func(i, j int) bool {
		if results[i].Votes != results[j].Votes {
			return results[i].Votes > results[j].Votes
		}
		return results[i].Name < results[j].Name
	})

	var winner *models.CandidateResult
	if total > 0 && len(results) > 0 {
		top := results[0].Votes
		if len(results) == 1 || results[1].Votes < top {
			w := results[0]
			winner = &w
		}
	}

	return models.PollResults{
		PollID:     p.ID,
		Title:      p.Title,
		TotalVotes: total,
		Results:    results,
		Winner:     winner,
	}
}
