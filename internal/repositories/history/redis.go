package history

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/KirkDiggler/numguess/internal/models"
)

const (
	// Key prefix for a session's round list
	sessionKeyPrefix = "numguess:session:"
	roundsKeySuffix  = ":rounds"

	// DefaultTTL bounds how long a session's rounds outlive their last write
	DefaultTTL = time.Hour
)

// Config holds configuration for the Redis history repository
type Config struct {
	// Redis client
	RedisClient *redis.Client

	// TTL is refreshed on every write; zero means DefaultTTL
	TTL time.Duration
}

// redisRepository implements the Repository interface using Redis
type redisRepository struct {
	client *redis.Client
	ttl    time.Duration
}

// NewRedis creates a new Redis-backed history repository
func NewRedis(cfg *Config) (*redisRepository, error) {
	if cfg == nil {
		return nil, errors.New("config cannot be nil")
	}

	if cfg.RedisClient == nil {
		return nil, errors.New("redis client cannot be nil")
	}

	// Test connection
	if err := cfg.RedisClient.Ping(context.Background()).Err(); err != nil {
		return nil, fmt.Errorf("failed to connect to Redis: %w", err)
	}

	ttl := cfg.TTL
	if ttl <= 0 {
		ttl = DefaultTTL
	}

	return &redisRepository{
		client: cfg.RedisClient,
		ttl:    ttl,
	}, nil
}

func roundsKey(sessionID string) string {
	return sessionKeyPrefix + sessionID + roundsKeySuffix
}

// SaveRound appends a round to its session's list and refreshes the expiry
func (r *redisRepository) SaveRound(ctx context.Context, input *SaveRoundInput) error {
	if input == nil || input.Round == nil {
		return ErrNilRound
	}

	if input.Round.SessionID == "" {
		return ErrMissingSessionID
	}

	roundJSON, err := json.Marshal(input.Round)
	if err != nil {
		return fmt.Errorf("failed to marshal round: %w", err)
	}

	key := roundsKey(input.Round.SessionID)

	pipe := r.client.TxPipeline()
	pipe.RPush(ctx, key, roundJSON)
	pipe.Expire(ctx, key, r.ttl)

	if _, err := pipe.Exec(ctx); err != nil {
		return fmt.Errorf("failed to save round: %w", err)
	}

	return nil
}

// ListRounds returns a session's rounds in the order they were saved
func (r *redisRepository) ListRounds(ctx context.Context, input *ListRoundsInput) (*ListRoundsOutput, error) {
	if input == nil || input.SessionID == "" {
		return nil, ErrMissingSessionID
	}

	values, err := r.client.LRange(ctx, roundsKey(input.SessionID), 0, -1).Result()
	if err != nil {
		return nil, fmt.Errorf("failed to list rounds: %w", err)
	}

	rounds := make([]*models.RoundRecord, 0, len(values))
	for _, value := range values {
		var record models.RoundRecord
		if err := json.Unmarshal([]byte(value), &record); err != nil {
			return nil, fmt.Errorf("failed to unmarshal round: %w", err)
		}
		rounds = append(rounds, &record)
	}

	return &ListRoundsOutput{Rounds: rounds}, nil
}

// DeleteSession drops every round of a session
func (r *redisRepository) DeleteSession(ctx context.Context, input *DeleteSessionInput) error {
	if input == nil || input.SessionID == "" {
		return ErrMissingSessionID
	}

	if err := r.client.Del(ctx, roundsKey(input.SessionID)).Err(); err != nil {
		return fmt.Errorf("failed to delete session: %w", err)
	}

	return nil
}
