// Copyright (c) 2025 the evote authors.
// Licensed under the MIT License. See LICENSE.

package poll

// ReconcileVotes adjusts stored tallies to match an edited candidate list.
// Tallies for removed candidates are dropped, retained candidates keep
// their counts, and new candidates start at zero.
func ReconcileVotes(oldVotes map[string]int, newCandidateIDs []string) map[string]int {
	votes := make(map[string]int, len(newCandidateIDs))
	for _, id := range newCandidateIDs {
		votes[id] = oldVotes[id]
	}
	return votes
}
