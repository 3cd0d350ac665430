package messaging

import (
	"context"
	"fmt"
	"strconv"

	"github.com/KirkDiggler/numguess/internal/guess"
	"github.com/KirkDiggler/numguess/internal/models"
	"github.com/KirkDiggler/numguess/internal/rng"
)

// slowAttempts is where the quips stop being kind
const slowAttempts = 7

// service implements the Service interface
type service struct {
	// Generator for selecting random messages
	generator rng.Generator
}

// NewService creates a new messaging service
func NewService(config *ServiceConfig) (Service, error) {
	if config == nil {
		return nil, ErrNilConfig
	}

	if config.Generator == nil {
		return nil, ErrNilGenerator
	}

	return &service{
		generator: config.Generator,
	}, nil
}

// GetWelcomeMessage returns a greeting for a new session
func (s *service) GetWelcomeMessage(ctx context.Context, input *GetWelcomeMessageInput) (*GetWelcomeMessageOutput, error) {
	if input == nil {
		return nil, ErrNilInput
	}

	messages := []string{
		"I'm thinking of a number between %s and %s. Care to read my mind?",
		"Somewhere between %s and %s hides a number. Go find it.",
		"Pick a number, any number... as long as it's between %s and %s.",
		"A number between %s and %s walks into a bar. Guess which one.",
	}

	low, high := formatNumber(input.Range.Low), formatNumber(input.Range.High)

	return &GetWelcomeMessageOutput{
		Message: fmt.Sprintf(s.pick(messages), low, high),
		Tone:    ToneFunny,
	}, nil
}

// GetGuessResultMessage returns a quip for a scored guess
func (s *service) GetGuessResultMessage(ctx context.Context, input *GetGuessResultMessageInput) (*GetGuessResultMessageOutput, error) {
	if input == nil {
		return nil, ErrNilInput
	}

	var messages []string
	tone := input.PreferredTone

	switch input.Outcome {
	case models.OutcomeCorrect:
		tone = ToneCelebration
		switch {
		case input.Attempts <= 1:
			messages = []string{
				"First try?! Are you reading my mind?",
				"Hole in one! Nobody will believe this.",
				"One guess. One. Buy a lottery ticket today.",
			}
		case input.Attempts < slowAttempts:
			messages = []string{
				"Nailed it! That's some fine guessing.",
				"Bingo! You cracked it.",
				"Right on the money!",
				"That's the one! Well played.",
			}
		default:
			messages = []string{
				"Finally! I was starting to worry about you.",
				"You got there in the end. Persistence pays!",
				"Slow and steady wins the race, I suppose.",
			}
		}
	case models.OutcomeTooLow, models.OutcomeTooHigh:
		direction := "higher"
		if input.Outcome == models.OutcomeTooHigh {
			direction = "lower"
		}

		if tone == "" {
			tone = ToneEncouraging
			if input.Attempts >= slowAttempts {
				tone = ToneSarcastic
			}
		}

		switch tone {
		case ToneSarcastic:
			messages = []string{
				"Still no. Try " + direction + ", if you can manage it.",
				"Bold strategy. Wrong, but bold. Go " + direction + ".",
				"Have you considered " + direction + "? Just a thought.",
			}
		case ToneNeutral:
			messages = []string{
				"Go " + direction + ".",
			}
		default:
			messages = []string{
				"Close-ish! Try " + direction + ".",
				"Not quite. Aim " + direction + ".",
				"Keep going, go " + direction + "!",
				"Warm, but you need to go " + direction + ".",
			}
		}
	default:
		return nil, fmt.Errorf("unknown outcome %q", input.Outcome)
	}

	return &GetGuessResultMessageOutput{
		Message: s.pick(messages),
		Tone:    tone,
	}, nil
}

// GetInvalidGuessMessage returns a user-friendly explanation for rejected input
func (s *service) GetInvalidGuessMessage(ctx context.Context, input *GetInvalidGuessMessageInput) (*GetInvalidGuessMessageOutput, error) {
	if input == nil {
		return nil, ErrNilInput
	}

	var messages []string

	// Select messages based on the rejection reason
	switch input.Reason {
	case guess.ErrEmpty:
		messages = []string{
			"You didn't type anything. Shy?",
			"Silence is golden, but it isn't a number.",
			"Type a number, then press enter.",
		}
	case guess.ErrNotANumber:
		messages = []string{
			"That's not a number. I only speak digits.",
			"Nice try, but I need an actual number.",
			"Numbers only, please.",
		}
	case guess.ErrOutOfRange:
		messages = []string{
			"That's outside the range. Stay inside the lines!",
			"Way off the map. Check the range and try again.",
			"Out of bounds! The number is inside the range.",
		}
	default:
		messages = []string{
			"I didn't understand that. Try again.",
		}
	}

	return &GetInvalidGuessMessageOutput{
		Message: s.pick(messages),
	}, nil
}

// GetSessionEndMessage returns a farewell based on how the session went
func (s *service) GetSessionEndMessage(ctx context.Context, input *GetSessionEndMessageInput) (*GetSessionEndMessageOutput, error) {
	if input == nil {
		return nil, ErrNilInput
	}

	if input.Summary == nil {
		return nil, ErrNilSummary
	}

	summary := input.Summary

	var title string
	var messages []string

	switch {
	case summary.Rounds == 0:
		title = "No rounds won"
		messages = []string{
			"Leaving already? The number will miss you.",
			"Maybe next time. The number isn't going anywhere.",
		}
	case summary.BestAttempts == 1:
		title = "Mind reader"
		messages = []string{
			"A first-try win in the books. Legendary.",
			"You guessed one in a single shot. Show-off.",
		}
	default:
		title = "Thanks for playing"
		messages = []string{
			"Good game! Come back and beat your best.",
			"Well played. The numbers fear you now.",
			"That was fun. See you next time!",
		}
	}

	if summary.EndReason == models.EndReasonInputClosed {
		messages = []string{"Input closed. Game over."}
	}

	return &GetSessionEndMessageOutput{
		Title:   title,
		Message: s.pick(messages),
	}, nil
}

func (s *service) pick(messages []string) string {
	return messages[s.generator.Intn(len(messages))]
}

func formatNumber(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
