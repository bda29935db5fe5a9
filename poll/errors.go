// Copyright (c) 2025 the evote authors.
// Licensed under the MIT License. See LICENSE.

package poll

import "errors"

// Sentinel errors for the poll lifecycle. Callers match with errors.Is;
// wrapped messages carry the human-readable detail.
var (
	ErrNotFound              = errors.New("poll not found")
	ErrPollClosed            = errors.New("poll is closed")
	ErrInvalidSelectionCount = errors.New("invalid selection count")
	ErrUnknownCandidate      = errors.New("unknown candidate")
	ErrVoteLimitExceeded     = errors.New("vote limit exceeded")
	ErrValidation            = errors.New("validation failed")
)
