package models

// Outcome is the result of comparing one guess to the target
type Outcome string

const (
	// OutcomeTooLow indicates the guess is below the target
	OutcomeTooLow Outcome = "too_low"

	// OutcomeTooHigh indicates the guess is above the target
	OutcomeTooHigh Outcome = "too_high"

	// OutcomeCorrect indicates the guess matches the target
	OutcomeCorrect Outcome = "correct"
)

// IsCorrect reports whether the outcome ends the round
func (o Outcome) IsCorrect() bool {
	return o == OutcomeCorrect
}
