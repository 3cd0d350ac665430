package session

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/rs/zerolog"

	"github.com/KirkDiggler/numguess/internal/common/clock"
	"github.com/KirkDiggler/numguess/internal/common/uuid"
	"github.com/KirkDiggler/numguess/internal/models"
	"github.com/KirkDiggler/numguess/internal/presenter"
	"github.com/KirkDiggler/numguess/internal/repositories/history"
	"github.com/KirkDiggler/numguess/internal/rng"
	"github.com/KirkDiggler/numguess/internal/services/round"
)

// service implements the Service interface
type service struct {
	generator      rng.Generator
	roundService   round.Service
	reader         presenter.LineReader
	presenter      presenter.Presenter
	historyRepo    history.Repository
	clock          clock.Clock
	uuidGenerator  uuid.UUID
	targetDecimals int
	logger         zerolog.Logger
}

// New creates a new session service
func New(cfg *Config) (*service, error) {
	if cfg == nil {
		return nil, ErrNilConfig
	}

	if cfg.Generator == nil {
		return nil, ErrNilGenerator
	}

	if cfg.RoundService == nil {
		return nil, ErrNilRoundService
	}

	if cfg.Reader == nil {
		return nil, ErrNilReader
	}

	if cfg.Presenter == nil {
		return nil, ErrNilPresenter
	}

	if cfg.HistoryRepo == nil {
		return nil, ErrNilHistoryRepo
	}

	var c clock.Clock = clock.New()
	if cfg.Clock != nil {
		c = cfg.Clock
	}

	var u uuid.UUID = uuid.New()
	if cfg.UUIDGenerator != nil {
		u = cfg.UUIDGenerator
	}

	logger := zerolog.Nop()
	if cfg.Logger != nil {
		logger = *cfg.Logger
	}

	return &service{
		generator:      cfg.Generator,
		roundService:   cfg.RoundService,
		reader:         cfg.Reader,
		presenter:      cfg.Presenter,
		historyRepo:    cfg.HistoryRepo,
		clock:          c,
		uuidGenerator:  u,
		targetDecimals: cfg.TargetDecimals,
		logger:         logger.With().Str("component", "session").Logger(),
	}, nil
}

// roundState is what carries over from one round to the next
type roundState struct {
	rng    models.Range
	target float64
	retry  bool
}

// RunSession plays rounds until the player quits or input closes. Closed input
// is a normal ending; only history and read failures or cancellation are errors.
func (s *service) RunSession(ctx context.Context, input *RunSessionInput) (*RunSessionOutput, error) {
	if input == nil {
		return nil, ErrNilInput
	}

	if err := input.Range.Validate(); err != nil {
		return nil, err
	}

	sessionID := s.uuidGenerator.NewUUID()
	logger := s.logger.With().Str("session_id", sessionID).Logger()

	s.presenter.Welcome(ctx, input.Range)

	state := &roundState{rng: input.Range}
	state.target = s.drawTarget(state.rng)
	logger.Debug().Float64("target", state.target).Str("range", state.rng.String()).Msg("target generated")

	reason, err := s.play(ctx, sessionID, state, logger)
	if err != nil {
		return nil, err
	}

	listOutput, err := s.historyRepo.ListRounds(ctx, &history.ListRoundsInput{SessionID: sessionID})
	if err != nil {
		logger.Error().Err(err).Msg("failed to list rounds")
		return nil, fmt.Errorf("failed to list rounds: %w", err)
	}

	summary := models.SummarizeRounds(sessionID, listOutput.Rounds, reason)

	// Rounds only matter while the session runs
	if err := s.historyRepo.DeleteSession(ctx, &history.DeleteSessionInput{SessionID: sessionID}); err != nil {
		logger.Warn().Err(err).Msg("failed to delete session history")
	}

	s.presenter.SessionEnded(ctx, summary)

	return &RunSessionOutput{Summary: summary}, nil
}

// play loops over rounds and returns why the session stopped
func (s *service) play(ctx context.Context, sessionID string, state *roundState, logger zerolog.Logger) (models.EndReason, error) {
	for {
		if err := ctx.Err(); err != nil {
			return "", err
		}

		s.presenter.TargetChosen(ctx, state.rng, state.retry)

		hintKind, err := s.askHint(ctx, logger)
		if err != nil {
			return s.endOnRead(err)
		}

		startedAt := s.clock.Now()
		logger.Debug().Bool("retry", state.retry).Str("hint", string(hintKind)).Msg("round started")

		roundOutput, err := s.roundService.RunRound(ctx, &round.RunRoundInput{
			Target:   state.target,
			Range:    state.rng,
			HintKind: hintKind,
		})
		closed := errors.Is(err, round.ErrInputClosed)
		if err != nil && !closed {
			return "", fmt.Errorf("failed to run round: %w", err)
		}
		if roundOutput == nil {
			roundOutput = &round.RunRoundOutput{}
		}

		record := &models.RoundRecord{
			ID:             s.uuidGenerator.NewUUID(),
			SessionID:      sessionID,
			Target:         state.target,
			Range:          state.rng,
			HintKind:       hintKind,
			Attempts:       roundOutput.Attempts,
			InvalidGuesses: roundOutput.InvalidGuesses,
			Retry:          state.retry,
			Won:            !closed,
			StartedAt:      startedAt,
			FinishedAt:     s.clock.Now(),
		}
		if err := s.historyRepo.SaveRound(ctx, &history.SaveRoundInput{Round: record}); err != nil {
			logger.Error().Err(err).Str("round_id", record.ID).Msg("failed to save round")
			return "", fmt.Errorf("failed to save round: %w", err)
		}
		logger.Debug().
			Str("round_id", record.ID).
			Int("attempts", record.Attempts).
			Bool("won", record.Won).
			Msg("round finished")

		if closed {
			return models.EndReasonInputClosed, nil
		}

		choice, err := s.askContinuation(ctx, logger)
		if err != nil {
			return s.endOnRead(err)
		}

		switch choice {
		case models.ChoiceRetrySameTarget:
			state.retry = true
		case models.ChoiceNewTarget:
			state.retry = false
			state.target = s.drawTarget(state.rng)
			logger.Debug().Float64("target", state.target).Msg("target generated")
		case models.ChoiceNewRange:
			newRange, err := s.askRange(ctx, state.rng, logger)
			if err != nil {
				return s.endOnRead(err)
			}
			state.rng = newRange
			state.retry = false
			state.target = s.drawTarget(state.rng)
			logger.Debug().Float64("target", state.target).Str("range", state.rng.String()).Msg("target generated")
		default:
			return models.EndReasonQuit, nil
		}
	}
}

// endOnRead turns a failed read into a session ending. Closed input ends the
// session normally; anything else is fatal.
func (s *service) endOnRead(err error) (models.EndReason, error) {
	if errors.Is(err, io.EOF) {
		return models.EndReasonInputClosed, nil
	}
	return "", fmt.Errorf("failed to read input: %w", err)
}

func (s *service) drawTarget(r models.Range) float64 {
	return s.generator.Grid(r, s.targetDecimals)
}

// askHint reads the hint choice. Unknown answers mean no hint.
func (s *service) askHint(ctx context.Context, logger zerolog.Logger) (models.HintKind, error) {
	s.presenter.PromptHint(ctx)

	line, err := s.reader.ReadLine(ctx)
	if err != nil {
		return models.HintNone, err
	}

	kind, err := models.ParseHintKind(line)
	if err != nil {
		logger.Warn().Err(err).Str("input", line).Msg("unrecognized hint choice")
		s.presenter.InvalidHintChoice(ctx, err)
		return models.HintNone, nil
	}

	return kind, nil
}

// askContinuation reads what to do after a round. Unknown answers quit.
func (s *service) askContinuation(ctx context.Context, logger zerolog.Logger) (models.ContinuationChoice, error) {
	s.presenter.PromptContinuation(ctx)

	line, err := s.reader.ReadLine(ctx)
	if err != nil {
		return models.ChoiceQuit, err
	}

	choice, err := models.ParseContinuation(line)
	if err != nil {
		logger.Warn().Err(err).Str("input", line).Msg("unrecognized continuation, quitting")
	}

	return choice, nil
}

// askRange reads a replacement range. Invalid answers keep the current one.
func (s *service) askRange(ctx context.Context, current models.Range, logger zerolog.Logger) (models.Range, error) {
	s.presenter.PromptRange(ctx, current)

	line, err := s.reader.ReadLine(ctx)
	if err != nil {
		return current, err
	}

	newRange, err := models.ParseRange(line)
	if err != nil {
		logger.Warn().Err(err).Str("input", line).Msg("invalid range, keeping current")
		s.presenter.InvalidRange(ctx, err)
		return current, nil
	}

	return newRange, nil
}
