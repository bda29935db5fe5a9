// Copyright (c) 2025 the evote authors.
// Licensed under the MIT License. See LICENSE.

package poll

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/evotehq/evote/models"
)

func TestResolve(t *testing.T) {
	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	past := now.Add(-time.Hour)
	future := now.Add(time.Hour)

	tests := []struct {
		name       string
		isOpen     bool
		closeTime  *time.Time
		expectOpen bool
	}{
		{
			name:       "open poll without schedule stays open",
			isOpen:     true,
			closeTime:  nil,
			expectOpen: true,
		},
		{
			name:       "open poll with future close stays open",
			isOpen:     true,
			closeTime:  &future,
			expectOpen: true,
		},
		{
			name:       "open poll with elapsed close flips closed",
			isOpen:     true,
			closeTime:  &past,
			expectOpen: false,
		},
		{
			name:       "close time equal to now counts as elapsed",
			isOpen:     true,
			closeTime:  &now,
			expectOpen: false,
		},
		{
			name:       "closed poll never reopens",
			isOpen:     false,
			closeTime:  &future,
			expectOpen: false,
		},
		{
			name:       "closed poll without schedule stays closed",
			isOpen:     false,
			closeTime:  nil,
			expectOpen: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := models.Poll{
				ID:     "p1",
				Title:  "Test",
				IsOpen: tt.isOpen,
			}
			p.ScheduledCloseTime = tt.closeTime

			resolved := Resolve(p, now)
			assert.Equal(t, tt.expectOpen, resolved.IsOpen)

			// Idempotent: resolving twice equals resolving once.
			again := Resolve(resolved, now)
			assert.Equal(t, resolved, again)
		})
	}
}

func TestResolveDoesNotMutateInput(t *testing.T) {
	past := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
	p := models.Poll{ID: "p1", IsOpen: true}
	p.ScheduledCloseTime = &past

	resolved := Resolve(p, past.Add(time.Minute))
	assert.False(t, resolved.IsOpen)
	assert.True(t, p.IsOpen, "input poll must not be mutated")
}

func TestResolveClosureIsMonotonic(t *testing.T) {
	closeAt := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	p := models.Poll{ID: "p1", IsOpen: true}
	p.ScheduledCloseTime = &closeAt

	p = Resolve(p, closeAt.Add(time.Second))
	assert.False(t, p.IsOpen)

	// No sequence of further resolver calls reopens it, even with an
	// earlier clock.
	for _, now := range []time.Time{closeAt.Add(-time.Hour), closeAt, closeAt.Add(48 * time.Hour)} {
		p = Resolve(p, now)
		assert.False(t, p.IsOpen)
	}
}
