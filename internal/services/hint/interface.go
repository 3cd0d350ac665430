package hint

//go:generate mockgen -package=mocks -destination=mocks/mock_service.go github.com/KirkDiggler/numguess/internal/services/hint Service

import "context"

// Service looks up display-only hints about a target
type Service interface {
	// GetHint draws a hint of the requested kind and evaluates it at the target
	GetHint(ctx context.Context, input *GetHintInput) (*GetHintOutput, error)
}
