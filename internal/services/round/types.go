package round

import (
	"github.com/rs/zerolog"

	"github.com/KirkDiggler/numguess/internal/guess"
	"github.com/KirkDiggler/numguess/internal/models"
	"github.com/KirkDiggler/numguess/internal/presenter"
	"github.com/KirkDiggler/numguess/internal/services/hint"
)

// AttemptPolicy decides whether rejected input costs an attempt
type AttemptPolicy string

const (
	// AttemptPolicySkipInvalid counts only guesses that were scored
	AttemptPolicySkipInvalid AttemptPolicy = "skip_invalid"

	// AttemptPolicyCountInvalid also counts empty, malformed and out-of-range input
	AttemptPolicyCountInvalid AttemptPolicy = "count_invalid"
)

// Config holds configuration for the round service
type Config struct {
	// Reader supplies raw guess input
	Reader presenter.LineReader

	// Presenter receives round events
	Presenter presenter.Presenter

	// HintService draws the round's hint
	HintService hint.Service

	// Evaluator scores guesses; the zero value compares exactly
	Evaluator guess.Evaluator

	// AttemptPolicy defaults to AttemptPolicySkipInvalid
	AttemptPolicy AttemptPolicy

	// Logger defaults to a disabled logger
	Logger *zerolog.Logger
}

// RunRoundInput contains parameters for playing a round
type RunRoundInput struct {
	// Target is the hidden value
	Target float64

	// Range bounds valid guesses
	Range models.Range

	// HintKind selects the hint shown before the first guess
	HintKind models.HintKind
}

// RunRoundOutput contains the result of a round
type RunRoundOutput struct {
	// Attempts counts guesses under the configured policy, winning guess included
	Attempts int

	// InvalidGuesses counts rejected input
	InvalidGuesses int

	// Guesses lists the scored guesses in order
	Guesses []float64
}
