package sessionstate

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/oguzk/mentorlink/internal/pkg/logger"
)

const keyPrefix = "mentorlink:client-state:"

// RedisStore persists client session state in Redis so cached identities
// survive restarts. Reads fail safe: a Redis failure behaves like a cache
// miss so the synchronizer falls back to re-validating the session.
type RedisStore struct {
	client *redis.Client
	ttl    time.Duration
}

// NewRedisStore creates a new RedisStore
func NewRedisStore(client *redis.Client, ttl time.Duration) *RedisStore {
	return &RedisStore{client: client, ttl: ttl}
}

func stateKey(clientID string) string {
	return keyPrefix + clientID
}

// Load returns the cached state for a client, or nil on miss
func (s *RedisStore) Load(ctx context.Context, clientID string) (*State, error) {
	raw, err := s.client.Get(ctx, stateKey(clientID)).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, nil
	}
	if err != nil {
		// fail safe: behave like a cache miss
		logger.Warn().Err(err).Str("clientID", clientID).Msg("Failed to load client state from redis")
		return nil, nil
	}

	var state State
	if err := json.Unmarshal(raw, &state); err != nil {
		logger.Warn().Err(err).Str("clientID", clientID).Msg("Corrupt client state in redis, discarding")
		return nil, nil
	}

	return &state, nil
}

// Save stores the state for a client with the configured TTL
func (s *RedisStore) Save(ctx context.Context, clientID string, state *State) error {
	raw, err := json.Marshal(state)
	if err != nil {
		return fmt.Errorf("failed to marshal client state: %w", err)
	}

	if err := s.client.Set(ctx, stateKey(clientID), raw, s.ttl).Err(); err != nil {
		return fmt.Errorf("failed to save client state: %w", err)
	}

	return nil
}

// Clear removes the state for a client. Clearing a missing client is a no-op.
func (s *RedisStore) Clear(ctx context.Context, clientID string) error {
	if err := s.client.Del(ctx, stateKey(clientID)).Err(); err != nil {
		return fmt.Errorf("failed to clear client state: %w", err)
	}
	return nil
}
