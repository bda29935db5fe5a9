// Copyright (c) 2025 the evote authors.
// Licensed under the MIT License. See LICENSE.

package poll

import (
	"time"

	"github.com/evotehq/evote/models"
)

// Resolve returns p with its open flag corrected against now. A poll that
// is still marked open but whose scheduled close time has elapsed comes
// back closed; everything else is returned unchanged. The scheduled close
// instant itself counts as elapsed.
//
// Resolve never reopens a poll and never touches storage; callers persist
// the transition when Resolve flips the flag.
func Resolve(p models.Poll, now time.Time) models.Poll {
	if !p.IsOpen || p.ScheduledCloseTime == nil {
		return p
	}
	if !now.Before(*p.ScheduledCloseTime) {
		p.IsOpen = false
	}
	return p
}
