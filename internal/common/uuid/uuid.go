// Package uuid hands out identifiers for sessions and rounds.
package uuid

import "github.com/google/uuid"

//go:generate mockgen -package=mocks -destination=mocks/mock_uuid.go github.com/KirkDiggler/numguess/internal/common/uuid UUID

type UUID interface {
	NewUUID() string
}

// Random produces version 4 UUIDs
type Random struct{}

func New() *Random {
	return &Random{}
}

// NewUUID returns a new random UUID string
func (r *Random) NewUUID() string {
	return uuid.NewString()
}
