// internal/domain/order/history.go
package order

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

// HistoryStore keeps the per-session list of placed orders, newest last.
type HistoryStore interface {
	Append(ctx context.Context, sessionID string, o *Order) error
	List(ctx context.Context, sessionID string) ([]Order, error)
}

// RedisHistory stores order snapshots as a Redis list per session.
type RedisHistory struct {
	redisClient *redis.Client
	ttl         time.Duration
}

// NewRedisHistory creates a new order history store
func NewRedisHistory(redisClient *redis.Client, ttl time.Duration) *RedisHistory {
	return &RedisHistory{redisClient: redisClient, ttl: ttl}
}

func historyKey(sessionID string) string {
	return fmt.Sprintf("orders:session:%s", sessionID)
}

func (h *RedisHistory) Append(ctx context.Context, sessionID string, o *Order) error {
	data, err := json.Marshal(o)
	if err != nil {
		return fmt.Errorf("failed to marshal order: %w", err)
	}

	pipe := h.redisClient.Pipeline()
	pipe.RPush(ctx, historyKey(sessionID), data)
	pipe.Expire(ctx, historyKey(sessionID), h.ttl)
	if _, err := pipe.Exec(ctx); err != nil {
		return fmt.Errorf("failed to append order history: %w", err)
	}
	return nil
}

func (h *RedisHistory) List(ctx context.Context, sessionID string) ([]Order, error) {
	entries, err := h.redisClient.LRange(ctx, historyKey(sessionID), 0, -1).Result()
	if err != nil {
		return nil, fmt.Errorf("failed to list order history: %w", err)
	}

	orders := make([]Order, 0, len(entries))
	for _, entry := range entries {
		var o Order
		if err := json.Unmarshal([]byte(entry), &o); err != nil {
			return nil, fmt.Errorf("failed to unmarshal order history entry: %w", err)
		}
		orders = append(orders, o)
	}
	return orders, nil
}
