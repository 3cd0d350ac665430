package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"

	"github.com/KirkDiggler/numguess/internal/config"
	"github.com/KirkDiggler/numguess/internal/guess"
	"github.com/KirkDiggler/numguess/internal/handlers/terminal"
	"github.com/KirkDiggler/numguess/internal/repositories/history"
	"github.com/KirkDiggler/numguess/internal/rng"
	"github.com/KirkDiggler/numguess/internal/services/hint"
	"github.com/KirkDiggler/numguess/internal/services/messaging"
	"github.com/KirkDiggler/numguess/internal/services/round"
	"github.com/KirkDiggler/numguess/internal/services/session"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "invalid configuration: %v\n", err)
		os.Exit(1)
	}

	logger := newLogger(cfg, os.Stderr)

	if err := run(context.Background(), cfg, os.Stdin, os.Stdout, &logger); err != nil {
		logger.Error().Err(err).Msg("game stopped")
		os.Exit(1)
	}
}

// newLogger writes human-readable logs to w so they stay apart from play on stdout
func newLogger(cfg *config.Config, w io.Writer) zerolog.Logger {
	level, err := cfg.Level()
	if err != nil {
		level = zerolog.WarnLevel
	}

	return zerolog.New(zerolog.ConsoleWriter{Out: w, TimeFormat: time.Kitchen, NoColor: cfg.NoColor}).
		Level(level).
		With().
		Timestamp().
		Logger()
}

// run wires the game together and plays one session
func run(ctx context.Context, cfg *config.Config, in io.Reader, out io.Writer, logger *zerolog.Logger) error {
	generator := rng.New(&rng.Config{Seed: cfg.Seed})

	historyRepo, closeHistory, err := newHistoryRepository(cfg)
	if err != nil {
		return err
	}
	defer closeHistory()

	hintSvc, err := hint.New(&hint.Config{
		Generator: generator,
	})
	if err != nil {
		return fmt.Errorf("failed to create hint service: %w", err)
	}

	messagingSvc, err := messaging.NewService(&messaging.ServiceConfig{
		Generator: generator,
	})
	if err != nil {
		return fmt.Errorf("failed to create messaging service: %w", err)
	}

	reader := terminal.NewReader(in)

	renderer, err := terminal.NewRenderer(&terminal.Config{
		Out:       out,
		Messaging: messagingSvc,
		NoColor:   cfg.NoColor,
		Tone:      messaging.MessageTone(cfg.Tone),
		Logger:    logger,
	})
	if err != nil {
		return fmt.Errorf("failed to create renderer: %w", err)
	}

	policy := round.AttemptPolicySkipInvalid
	if cfg.CountInvalid {
		policy = round.AttemptPolicyCountInvalid
	}

	roundSvc, err := round.New(&round.Config{
		Reader:        reader,
		Presenter:     renderer,
		HintService:   hintSvc,
		Evaluator:     guess.Evaluator{Tolerance: cfg.Tolerance},
		AttemptPolicy: policy,
		Logger:        logger,
	})
	if err != nil {
		return fmt.Errorf("failed to create round service: %w", err)
	}

	sessionSvc, err := session.New(&session.Config{
		Generator:      generator,
		RoundService:   roundSvc,
		Reader:         reader,
		Presenter:      renderer,
		HistoryRepo:    historyRepo,
		TargetDecimals: cfg.TargetDecimals,
		Logger:         logger,
	})
	if err != nil {
		return fmt.Errorf("failed to create session service: %w", err)
	}

	output, err := sessionSvc.RunSession(ctx, &session.RunSessionInput{Range: cfg.Range()})
	if err != nil {
		return err
	}

	logger.Info().
		Str("session_id", output.Summary.SessionID).
		Int("rounds", output.Summary.Rounds).
		Str("end_reason", string(output.Summary.EndReason)).
		Msg("session finished")

	return nil
}

func newHistoryRepository(cfg *config.Config) (history.Repository, func(), error) {
	if cfg.HistoryBackend != config.HistoryBackendRedis {
		return history.NewMemory(), func() {}, nil
	}

	redisClient := redis.NewClient(&redis.Options{
		Addr:     cfg.RedisAddr,
		Password: cfg.RedisPassword,
		DB:       cfg.RedisDB,
	})

	repo, err := history.NewRedis(&history.Config{
		RedisClient: redisClient,
		TTL:         cfg.HistoryTTL,
	})
	if err != nil {
		_ = redisClient.Close()
		return nil, nil, fmt.Errorf("failed to create history repository: %w", err)
	}

	return repo, func() { _ = redisClient.Close() }, nil
}
