package models

import (
	"fmt"
	"strings"
)

// ContinuationChoice is the decision a player makes after winning a round
type ContinuationChoice string

const (
	// ChoiceRetrySameTarget replays the round against the target just guessed
	ChoiceRetrySameTarget ContinuationChoice = "retry_same_target"

	// ChoiceNewTarget draws a fresh target from the current range
	ChoiceNewTarget ContinuationChoice = "new_target"

	// ChoiceNewRange asks for a new range and then draws a fresh target
	ChoiceNewRange ContinuationChoice = "new_range"

	// ChoiceQuit ends the session
	ChoiceQuit ContinuationChoice = "quit"
)

var continuationAliases = map[string]ContinuationChoice{
	"1":     ChoiceRetrySameTarget,
	"r":     ChoiceRetrySameTarget,
	"retry": ChoiceRetrySameTarget,
	"same":  ChoiceRetrySameTarget,
	"2":     ChoiceNewTarget,
	"y":     ChoiceNewTarget,
	"yes":   ChoiceNewTarget,
	"new":   ChoiceNewTarget,
	"again": ChoiceNewTarget,
	"3":     ChoiceNewRange,
	"range": ChoiceNewRange,
	"4":     ChoiceQuit,
	"q":     ChoiceQuit,
	"quit":  ChoiceQuit,
	"n":     ChoiceQuit,
	"no":    ChoiceQuit,
	"exit":  ChoiceQuit,
}

// ParseContinuation maps a typed answer to a choice. Unknown input returns
// ChoiceQuit together with ErrInvalidContinuation so callers can report it.
func ParseContinuation(text string) (ContinuationChoice, error) {
	key := strings.ToLower(strings.TrimSpace(text))
	if choice, ok := continuationAliases[key]; ok {
		return choice, nil
	}

	return ChoiceQuit, fmt.Errorf("%w: %q", ErrInvalidContinuation, text)
}
