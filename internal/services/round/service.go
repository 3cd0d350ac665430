package round

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/rs/zerolog"

	"github.com/KirkDiggler/numguess/internal/guess"
	"github.com/KirkDiggler/numguess/internal/models"
	"github.com/KirkDiggler/numguess/internal/presenter"
	"github.com/KirkDiggler/numguess/internal/services/hint"
)

// service implements the Service interface
type service struct {
	reader        presenter.LineReader
	presenter     presenter.Presenter
	hintService   hint.Service
	evaluator     guess.Evaluator
	attemptPolicy AttemptPolicy
	logger        zerolog.Logger
}

// New creates a new round service
func New(cfg *Config) (*service, error) {
	if cfg == nil {
		return nil, ErrNilConfig
	}

	if cfg.Reader == nil {
		return nil, ErrNilReader
	}

	if cfg.Presenter == nil {
		return nil, ErrNilPresenter
	}

	if cfg.HintService == nil {
		return nil, ErrNilHintService
	}

	policy := cfg.AttemptPolicy
	switch policy {
	case "":
		policy = AttemptPolicySkipInvalid
	case AttemptPolicySkipInvalid, AttemptPolicyCountInvalid:
	default:
		return nil, fmt.Errorf("%w: %q", ErrInvalidAttemptPolicy, policy)
	}

	logger := zerolog.Nop()
	if cfg.Logger != nil {
		logger = *cfg.Logger
	}

	return &service{
		reader:        cfg.Reader,
		presenter:     cfg.Presenter,
		hintService:   cfg.HintService,
		evaluator:     cfg.Evaluator,
		attemptPolicy: policy,
		logger:        logger.With().Str("component", "round").Logger(),
	}, nil
}

// RunRound collects guesses until one is correct. The round has no attempt
// limit; it ends early only when input closes (ErrInputClosed), the context
// is cancelled, or reading fails. On those errors the output still carries the
// progress made so far.
func (s *service) RunRound(ctx context.Context, input *RunRoundInput) (*RunRoundOutput, error) {
	if input == nil {
		return nil, ErrNilInput
	}

	if err := input.Range.Validate(); err != nil {
		return nil, err
	}

	if !input.Range.Contains(input.Target) {
		return nil, ErrTargetOutOfRange
	}

	s.showHint(ctx, input)

	output := &RunRoundOutput{}
	for {
		if err := ctx.Err(); err != nil {
			return output, err
		}

		s.presenter.PromptGuess(ctx, input.Range, output.Attempts)

		line, err := s.reader.ReadLine(ctx)
		if err != nil {
			if errors.Is(err, io.EOF) {
				return output, ErrInputClosed
			}
			return output, fmt.Errorf("failed to read guess: %w", err)
		}

		value, err := guess.ParseAndValidate(line, input.Range)
		if err != nil {
			output.InvalidGuesses++
			if s.attemptPolicy == AttemptPolicyCountInvalid {
				output.Attempts++
			}
			s.logger.Debug().Err(err).Int("attempts", output.Attempts).Msg("guess rejected")
			s.presenter.InvalidGuess(ctx, err)
			continue
		}

		output.Attempts++
		output.Guesses = append(output.Guesses, value)

		outcome := s.evaluator.Evaluate(value, input.Target)
		s.logger.Debug().
			Float64("guess", value).
			Str("outcome", string(outcome)).
			Int("attempts", output.Attempts).
			Msg("guess scored")

		switch outcome {
		case models.OutcomeTooLow:
			s.presenter.GuessTooLow(ctx, value)
		case models.OutcomeTooHigh:
			s.presenter.GuessTooHigh(ctx, value)
		default:
			s.presenter.GuessCorrect(ctx, output.Attempts)
			return output, nil
		}
	}
}

// showHint presents the round's hint. Hints never affect the outcome, so a
// failed lookup only costs the player the hint.
func (s *service) showHint(ctx context.Context, input *RunRoundInput) {
	if input.HintKind == "" || input.HintKind == models.HintNone {
		return
	}

	hintOutput, err := s.hintService.GetHint(ctx, &hint.GetHintInput{
		Kind:   input.HintKind,
		Target: input.Target,
	})
	if err != nil {
		s.logger.Warn().Err(err).Str("kind", string(input.HintKind)).Msg("hint unavailable")
		return
	}

	s.presenter.HintRequested(ctx, hintOutput.Hint)
}
