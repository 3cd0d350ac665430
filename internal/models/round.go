package models

import (
	"time"
)

// RoundRecord is the history entry kept for a finished round
type RoundRecord struct {
	// ID is the unique identifier for the round
	ID string

	// SessionID is the session the round was played in
	SessionID string

	// Target is the value the player had to guess
	Target float64

	// Range is the range the target was drawn from
	Range Range

	// HintKind is the hint the player asked for
	HintKind HintKind

	// Attempts is the number of guesses that counted toward the round
	Attempts int

	// InvalidGuesses is the number of rejected inputs
	InvalidGuesses int

	// Retry is set when the round replayed the previous target
	Retry bool

	// Won is false when input ended before the target was found
	Won bool

	StartedAt  time.Time
	FinishedAt time.Time
}
