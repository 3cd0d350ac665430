package session

import (
	"github.com/rs/zerolog"

	"github.com/KirkDiggler/numguess/internal/common/clock"
	"github.com/KirkDiggler/numguess/internal/common/uuid"
	"github.com/KirkDiggler/numguess/internal/models"
	"github.com/KirkDiggler/numguess/internal/presenter"
	"github.com/KirkDiggler/numguess/internal/repositories/history"
	"github.com/KirkDiggler/numguess/internal/rng"
	"github.com/KirkDiggler/numguess/internal/services/round"
)

// Config holds configuration for the session service
type Config struct {
	// Generator draws targets
	Generator rng.Generator

	// RoundService plays each round
	RoundService round.Service

	// Reader supplies hint, continuation and range answers
	Reader presenter.LineReader

	// Presenter receives session events
	Presenter presenter.Presenter

	// HistoryRepo records finished rounds
	HistoryRepo history.Repository

	// Clock defaults to the system clock
	Clock clock.Clock

	// UUIDGenerator defaults to random UUIDs
	UUIDGenerator uuid.UUID

	// TargetDecimals is the precision targets are rounded to; negative keeps raw draws
	TargetDecimals int

	// Logger defaults to a disabled logger
	Logger *zerolog.Logger
}

// RunSessionInput contains parameters for starting a session
type RunSessionInput struct {
	// Range is the initial range targets are drawn from
	Range models.Range
}

// RunSessionOutput contains the result of a session
type RunSessionOutput struct {
	Summary *models.SessionSummary
}
