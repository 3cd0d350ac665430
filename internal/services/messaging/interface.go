package messaging

//go:generate mockgen -package=mocks -destination=mocks/mock_service.go github.com/KirkDiggler/numguess/internal/services/messaging Service

import "context"

// Service is the interface for the messaging service
type Service interface {
	// GetWelcomeMessage returns a greeting for a new session
	GetWelcomeMessage(ctx context.Context, input *GetWelcomeMessageInput) (*GetWelcomeMessageOutput, error)

	// GetGuessResultMessage returns a quip for a scored guess
	GetGuessResultMessage(ctx context.Context, input *GetGuessResultMessageInput) (*GetGuessResultMessageOutput, error)

	// GetInvalidGuessMessage returns a user-friendly explanation for rejected input
	GetInvalidGuessMessage(ctx context.Context, input *GetInvalidGuessMessageInput) (*GetInvalidGuessMessageOutput, error)

	// GetSessionEndMessage returns a farewell based on how the session went
	GetSessionEndMessage(ctx context.Context, input *GetSessionEndMessageInput) (*GetSessionEndMessageOutput, error)
}
