package guess

import (
	"cmp"
	"math"

	"github.com/KirkDiggler/numguess/internal/models"
)

// Evaluate compares a guess to the target using exact equality. Targets are
// drawn on the same decimal grid players type, so no epsilon is needed.
func Evaluate(guess, target float64) models.Outcome {
	switch cmp.Compare(guess, target) {
	case -1:
		return models.OutcomeTooLow
	case 1:
		return models.OutcomeTooHigh
	default:
		return models.OutcomeCorrect
	}
}

// Evaluator scores guesses with an optional tolerance
type Evaluator struct {
	// Tolerance is the largest distance still scored as correct; zero is exact
	Tolerance float64
}

// Evaluate compares a guess to the target
func (e Evaluator) Evaluate(guess, target float64) models.Outcome {
	if e.Tolerance > 0 && math.Abs(guess-target) <= e.Tolerance {
		return models.OutcomeCorrect
	}
	return Evaluate(guess, target)
}
