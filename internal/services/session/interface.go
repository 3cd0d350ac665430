package session

//go:generate mockgen -package=mocks -destination=mocks/mock_service.go github.com/KirkDiggler/numguess/internal/services/session Service

import "context"

// Service drives a sequence of rounds until the player quits or input ends
type Service interface {
	// RunSession plays rounds starting in the given range and reports the summary
	RunSession(ctx context.Context, input *RunSessionInput) (*RunSessionOutput, error)
}
