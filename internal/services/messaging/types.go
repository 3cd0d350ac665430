package messaging

import (
	"github.com/KirkDiggler/numguess/internal/guess"
	"github.com/KirkDiggler/numguess/internal/models"
	"github.com/KirkDiggler/numguess/internal/rng"
)

// MessageTone represents the tone of a message
type MessageTone string

const (
	// ToneNeutral is a neutral tone
	ToneNeutral MessageTone = "neutral"

	// ToneFunny is a humorous tone
	ToneFunny MessageTone = "funny"

	// ToneSarcastic is a sarcastic tone
	ToneSarcastic MessageTone = "sarcastic"

	// ToneEncouraging is an encouraging tone
	ToneEncouraging MessageTone = "encouraging"

	// ToneCelebration is a celebratory tone
	ToneCelebration MessageTone = "celebration"
)

// ServiceConfig holds configuration for the messaging service
type ServiceConfig struct {
	// Generator picks among candidate messages
	Generator rng.Generator
}

// GetWelcomeMessageInput contains parameters for getting a welcome message
type GetWelcomeMessageInput struct {
	// Range is the range of the first target
	Range models.Range
}

// GetWelcomeMessageOutput contains the welcome message
type GetWelcomeMessageOutput struct {
	Message string
	Tone    MessageTone
}

// GetGuessResultMessageInput contains parameters for getting a guess result message
type GetGuessResultMessageInput struct {
	// Outcome is how the guess compared to the target
	Outcome models.Outcome

	// Attempts is the number of attempts so far, this guess included
	Attempts int

	// PreferredTone is the preferred tone for the message (optional)
	PreferredTone MessageTone
}

// GetGuessResultMessageOutput contains the guess result message
type GetGuessResultMessageOutput struct {
	Message string
	Tone    MessageTone
}

// GetInvalidGuessMessageInput contains parameters for explaining rejected input
type GetInvalidGuessMessageInput struct {
	// Reason is why the input was rejected
	Reason guess.Reason
}

// GetInvalidGuessMessageOutput contains the explanation
type GetInvalidGuessMessageOutput struct {
	Message string
}

// GetSessionEndMessageInput contains parameters for getting a farewell
type GetSessionEndMessageInput struct {
	Summary *models.SessionSummary
}

// GetSessionEndMessageOutput contains the farewell
type GetSessionEndMessageOutput struct {
	Title   string
	Message string
}
