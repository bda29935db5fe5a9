// Copyright (c) 2025 the evote authors.
// Licensed under the MIT License. See LICENSE.

package poll

import (
	"fmt"
	"strings"

	"github.com/evotehq/evote/models"
)

// ValidateDefinition checks a poll definition before it is created or
// updated: non-empty title, at least two candidates with non-empty unique
// names, and settings within bounds.
func ValidateDefinition(title string, candidates []models.Candidate, settings models.PollSettings) error {
	if strings.TrimSpace(title) == "" {
		return fmt.Errorf("%w: title is required", ErrValidation)
	}
	if len(candidates) < 2 {
		return fmt.Errorf("%w: a poll needs at least 2 candidates", ErrValidation)
	}
	seen := make(map[string]bool, len(candidates))
	for _, c := range candidates {
		if strings.TrimSpace(c.Name) == "" {
			return fmt.Errorf("%w: candidate name is required", ErrValidation)
		}
		if c.ID != "" {
			if seen[c.ID] {
				return fmt.Errorf("%w: duplicate candidate id %q", ErrValidation, c.ID)
			}
			seen[c.ID] = true
		}
	}
	if settings.VoteLimitEnabled && settings.MaxVotesPerClient < 1 {
		return fmt.Errorf("%w: max_votes_per_client must be at least 1", ErrValidation)
	}
	if settings.IsMultiSelect {
		if settings.MaxSelections < 1 {
			return fmt.Errorf("%w: max_selections must be at least 1", ErrValidation)
		}
		if settings.MaxSelections > len(candidates) {
			return fmt.Errorf("%w: max_selections cannot exceed the number of candidates", ErrValidation)
		}
	}
	return nil
}

// ValidateSelection checks a vote's candidate ids against the poll's select
// mode: single-select takes exactly one id, multi-select takes between 1 and
// MaxSelections. Duplicate ids are rejected, and every id must belong to the
// poll. Poll existence and open state are the caller's concern.
func ValidateSelection(p models.Poll, candidateIDs []string) error {
	n := len(candidateIDs)
	if !p.IsMultiSelect {
		if n != 1 {
			return fmt.Errorf("%w: exactly one candidate must be selected, got %d", ErrInvalidSelectionCount, n)
		}
	} else {
		max := p.MaxSelections
		if max < 1 {
			max = 1
		}
		if n < 1 || n > max {
			return fmt.Errorf("%w: between 1 and %d candidates may be selected, got %d", ErrInvalidSelectionCount, max, n)
		}
	}

	seen := make(map[string]bool, n)
	for _, id := range candidateIDs {
		if seen[id] {
			return fmt.Errorf("%w: candidate %q selected more than once", ErrInvalidSelectionCount, id)
		}
		seen[id] = true
	}

	valid := make(map[string]bool, len(p.Candidates))
	for _, c := range p.Candidates {
		valid[c.ID] = true
	}
	for _, id := range candidateIDs {
		if !valid[id] {
			return fmt.Errorf("%w: %q is not a candidate in this poll", ErrUnknownCandidate, id)
		}
	}
	return nil
}
