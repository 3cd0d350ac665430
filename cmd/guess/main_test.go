package main

import (
	"bytes"
	"context"
	"strings"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/KirkDiggler/numguess/internal/config"
)

func testConfig() *config.Config {
	return &config.Config{
		RangeLow:       5,
		RangeHigh:      5,
		Seed:           7,
		HistoryBackend: config.HistoryBackendMemory,
		HistoryTTL:     time.Hour,
		LogLevel:       "debug",
		NoColor:        true,
	}
}

func TestRun_PlaysScriptedSession(t *testing.T) {
	cfg := testConfig()
	var out, logs bytes.Buffer
	logger := newLogger(cfg, &logs)

	// no hint, two rejected guesses, win, retry without hint, win, quit
	in := strings.NewReader("3\n\nfive\n5\n1\n3\n5\n4\n")

	err := run(context.Background(), cfg, in, &out, &logger)
	require.NoError(t, err)

	output := out.String()
	assert.Equal(t, 2, strings.Count(output, "Correct! You got it in 1 attempt."))
	assert.Contains(t, output, "Same number again, range 5-5.")
	assert.Contains(t, output, "Rounds won: 2")
	assert.Contains(t, output, "Best round: 1")
	assert.Contains(t, logs.String(), "session finished")
}

func TestRun_CountInvalidPolicy(t *testing.T) {
	cfg := testConfig()
	cfg.CountInvalid = true
	var out bytes.Buffer
	logger := zerolog.Nop()

	err := run(context.Background(), cfg, strings.NewReader("3\nabc\n5\nq\n"), &out, &logger)
	require.NoError(t, err)

	assert.Contains(t, out.String(), "Correct! You got it in 2 attempts.")
}

func TestRun_InputClosedIsNotAnError(t *testing.T) {
	cfg := testConfig()
	var out bytes.Buffer
	logger := zerolog.Nop()

	err := run(context.Background(), cfg, strings.NewReader("3\nabc\n"), &out, &logger)
	require.NoError(t, err)

	assert.Contains(t, out.String(), "Rounds won: 0")
}

func TestRun_OversizedGuessIsRejected(t *testing.T) {
	cfg := testConfig()
	cfg.RangeLow, cfg.RangeHigh = 1, 1
	var out bytes.Buffer
	logger := zerolog.Nop()

	in := strings.NewReader("\n" + strings.Repeat("9", 70_000) + "\n1\n4\n")

	err := run(context.Background(), cfg, in, &out, &logger)
	require.NoError(t, err)

	assert.Contains(t, out.String(), "Correct! You got it in 1 attempt.")
	assert.Contains(t, out.String(), "Rounds won: 1")
}

func TestRun_RedisHistory(t *testing.T) {
	mr := miniredis.RunT(t)
	cfg := testConfig()
	cfg.HistoryBackend = config.HistoryBackendRedis
	cfg.RedisAddr = mr.Addr()
	var out bytes.Buffer
	logger := zerolog.Nop()

	err := run(context.Background(), cfg, strings.NewReader("3\n5\nquit\n"), &out, &logger)
	require.NoError(t, err)
	assert.Contains(t, out.String(), "Rounds won: 1")

	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	defer client.Close()

	keys, err := client.Keys(context.Background(), "numguess:session:*").Result()
	require.NoError(t, err)
	assert.Empty(t, keys, "session history is removed when the session ends")
}

func TestRun_RedisUnavailable(t *testing.T) {
	mr := miniredis.RunT(t)
	cfg := testConfig()
	cfg.HistoryBackend = config.HistoryBackendRedis
	cfg.RedisAddr = mr.Addr()
	mr.Close()
	logger := zerolog.Nop()

	err := run(context.Background(), cfg, strings.NewReader(""), &bytes.Buffer{}, &logger)
	assert.ErrorContains(t, err, "failed to create history repository")
}
