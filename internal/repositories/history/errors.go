package history

import "errors"

var (
	// ErrNilRound is returned when a round is missing from the input
	ErrNilRound = errors.New("input and round cannot be nil")

	// ErrMissingSessionID is returned when a session ID is required but empty
	ErrMissingSessionID = errors.New("session ID cannot be empty")
)
