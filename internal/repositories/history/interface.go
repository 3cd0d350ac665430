package history

//go:generate mockgen -package=mocks -destination=mocks/mock_repository.go github.com/KirkDiggler/numguess/internal/repositories/history Repository

import (
	"context"
)

// Repository keeps the rounds played during a session
type Repository interface {
	// SaveRound appends a finished round to its session
	SaveRound(ctx context.Context, input *SaveRoundInput) error

	// ListRounds returns a session's rounds in the order they were saved
	ListRounds(ctx context.Context, input *ListRoundsInput) (*ListRoundsOutput, error)

	// DeleteSession drops every round of a session
	DeleteSession(ctx context.Context, input *DeleteSessionInput) error
}
