package history

import (
	"context"
	"sync"

	"github.com/KirkDiggler/numguess/internal/models"
)

// memoryRepository implements the Repository interface in process memory
type memoryRepository struct {
	mu     sync.RWMutex
	rounds map[string][]*models.RoundRecord
}

// NewMemory creates a new in-memory history repository
func NewMemory() *memoryRepository {
	return &memoryRepository{
		rounds: make(map[string][]*models.RoundRecord),
	}
}

// SaveRound appends a copy of the round to its session
func (r *memoryRepository) SaveRound(ctx context.Context, input *SaveRoundInput) error {
	if input == nil || input.Round == nil {
		return ErrNilRound
	}

	if input.Round.SessionID == "" {
		return ErrMissingSessionID
	}

	record := *input.Round

	r.mu.Lock()
	defer r.mu.Unlock()
	r.rounds[record.SessionID] = append(r.rounds[record.SessionID], &record)

	return nil
}

// ListRounds returns copies of a session's rounds
func (r *memoryRepository) ListRounds(ctx context.Context, input *ListRoundsInput) (*ListRoundsOutput, error) {
	if input == nil || input.SessionID == "" {
		return nil, ErrMissingSessionID
	}

	r.mu.RLock()
	defer r.mu.RUnlock()

	stored := r.rounds[input.SessionID]
	rounds := make([]*models.RoundRecord, 0, len(stored))
	for _, record := range stored {
		copied := *record
		rounds = append(rounds, &copied)
	}

	return &ListRoundsOutput{Rounds: rounds}, nil
}

// DeleteSession drops every round of a session
func (r *memoryRepository) DeleteSession(ctx context.Context, input *DeleteSessionInput) error {
	if input == nil || input.SessionID == "" {
		return ErrMissingSessionID
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.rounds, input.SessionID)

	return nil
}
