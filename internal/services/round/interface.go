package round

//go:generate mockgen -package=mocks -destination=mocks/mock_service.go github.com/KirkDiggler/numguess/internal/services/round Service

import "context"

// Service plays a single round against a fixed target
type Service interface {
	// RunRound collects guesses until one is correct and reports the attempts
	RunRound(ctx context.Context, input *RunRoundInput) (*RunRoundOutput, error)
}
