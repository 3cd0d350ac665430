// Package presenter declares the boundary between the game loop and whatever
// reads player input and shows results.
package presenter

//go:generate mockgen -package=mocks -destination=mocks/mock_presenter.go github.com/KirkDiggler/numguess/internal/presenter Presenter,LineReader

import (
	"context"

	"github.com/KirkDiggler/numguess/internal/models"
)

// LineReader supplies one line of player input per call. io.EOF reports that
// no more input will arrive.
type LineReader interface {
	ReadLine(ctx context.Context) (string, error)
}

// Presenter receives the semantic events of a session. Implementations own
// all wording and formatting.
type Presenter interface {
	// Welcome is shown once when a session starts
	Welcome(ctx context.Context, r models.Range)

	// TargetChosen announces that a round is starting
	TargetChosen(ctx context.Context, r models.Range, retry bool)

	// PromptHint asks which kind of hint the player wants
	PromptHint(ctx context.Context)

	// InvalidHintChoice reports a hint answer that was not understood
	InvalidHintChoice(ctx context.Context, err error)

	// HintRequested shows the hint drawn for the round
	HintRequested(ctx context.Context, hint *models.Hint)

	// PromptGuess asks for the next guess
	PromptGuess(ctx context.Context, r models.Range, attempts int)

	// InvalidGuess reports rejected guess input
	InvalidGuess(ctx context.Context, err error)

	GuessTooLow(ctx context.Context, guess float64)
	GuessTooHigh(ctx context.Context, guess float64)

	// GuessCorrect reports the win and the attempts it took
	GuessCorrect(ctx context.Context, attempts int)

	// PromptContinuation asks what to do after a win
	PromptContinuation(ctx context.Context)

	// PromptRange asks for a new range
	PromptRange(ctx context.Context, current models.Range)

	// InvalidRange reports a range answer that was rejected
	InvalidRange(ctx context.Context, err error)

	// SessionEnded is the last event of a session
	SessionEnded(ctx context.Context, summary *models.SessionSummary)
}
