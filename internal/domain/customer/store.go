// internal/domain/customer/store.go
package customer

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

// ErrNoProfile is returned when the session has no customer attached.
var ErrNoProfile = errors.New("no customer profile in session")

// Store keeps the per-session customer profile.
type Store interface {
	Load(ctx context.Context, sessionID string) (*Customer, error)
	Save(ctx context.Context, sessionID string, c *Customer) error
	Delete(ctx context.Context, sessionID string) error
}

// RedisStore persists the session profile as JSON in Redis.
type RedisStore struct {
	redisClient *redis.Client
	ttl         time.Duration
}

// NewRedisStore creates a new session profile store
func NewRedisStore(redisClient *redis.Client, ttl time.Duration) *RedisStore {
	return &RedisStore{redisClient: redisClient, ttl: ttl}
}

func (s *RedisStore) key(sessionID string) string {
	return fmt.Sprintf("customer:session:%s", sessionID)
}

func (s *RedisStore) Load(ctx context.Context, sessionID string) (*Customer, error) {
	data, err := s.redisClient.Get(ctx, s.key(sessionID)).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, ErrNoProfile
		}
		return nil, fmt.Errorf("failed to load customer profile: %w", err)
	}

	var c Customer
	if err := json.Unmarshal([]byte(data), &c); err != nil {
		return nil, fmt.Errorf("failed to unmarshal customer profile: %w", err)
	}
	return &c, nil
}

func (s *RedisStore) Save(ctx context.Context, sessionID string, c *Customer) error {
	data, err := json.Marshal(c)
	if err != nil {
		return fmt.Errorf("failed to marshal customer profile: %w", err)
	}
	if err := s.redisClient.Set(ctx, s.key(sessionID), data, s.ttl).Err(); err != nil {
		return fmt.Errorf("failed to save customer profile: %w", err)
	}
	return nil
}

func (s *RedisStore) Delete(ctx context.Context, sessionID string) error {
	if err := s.redisClient.Del(ctx, s.key(sessionID)).Err(); err != nil {
		return fmt.Errorf("failed to delete customer profile: %w", err)
	}
	return nil
}
