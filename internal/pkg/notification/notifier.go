// internal/pkg/notification/notifier.go
package notification

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"
)

// Level classifies a user-visible notice
type Level string

const (
	LevelSuccess Level = "success"
	LevelInfo    Level = "info"
	LevelError   Level = "error"
)

// Notice represents a single transient user-visible notification
type Notice struct {
	Level     Level     `json:"level"`
	Message   string    `json:"message"`
	CreatedAt time.Time `json:"created_at"`
}

// Notifier emits transient user-visible notifications for a session.
// Delivery is best effort; emitting never fails the calling operation.
type Notifier interface {
	Success(ctx context.Context, sessionID, message string)
	Info(ctx context.Context, sessionID, message string)
	Error(ctx context.Context, sessionID, message string)
}

const (
	feedMaxLength = 50
	feedTTL       = 24 * time.Hour
)

// Feed is a Redis-backed per-session notification feed, drained by the UI
type Feed struct {
	redisClient *redis.Client
	log         *logrus.Logger
}

// NewFeed creates a new notification feed
func NewFeed(redisClient *redis.Client, log *logrus.Logger) *Feed {
	return &Feed{
		redisClient: redisClient,
		log:         log,
	}
}

// Success appends a success notice to the session feed
func (f *Feed) Success(ctx context.Context, sessionID, message string) {
	f.push(ctx, sessionID, LevelSuccess, message)
}

// Info appends an informational notice to the session feed
func (f *Feed) Info(ctx context.Context, sessionID, message string) {
	f.push(ctx, sessionID, LevelInfo, message)
}

// Error appends an error notice to the session feed
func (f *Feed) Error(ctx context.Context, sessionID, message string) {
	f.push(ctx, sessionID, LevelError, message)
}

// Drain returns all pending notices for the session and clears the feed
func (f *Feed) Drain(ctx context.Context, sessionID string) ([]Notice, error) {
	key := feedKey(sessionID)

	values, err := f.redisClient.LRange(ctx, key, 0, -1).Result()
	if err != nil {
		return nil, fmt.Errorf("failed to read notifications: %w", err)
	}

	notices := make([]Notice, 0, len(values))
	for _, value := range values {
		var notice Notice
		if err := json.Unmarshal([]byte(value), &notice); err != nil {
			continue
		}
		notices = append(notices, notice)
	}

	f.redisClient.Del(ctx, key)
	return notices, nil
}

func (f *Feed) push(ctx context.Context, sessionID string, level Level, message string) {
	if sessionID == "" {
		return
	}

	notice := Notice{
		Level:     level,
		Message:   message,
		CreatedAt: time.Now().UTC(),
	}

	data, err := json.Marshal(notice)
	if err != nil {
		return
	}

	key := feedKey(sessionID)
	pipe := f.redisClient.Pipeline()
	pipe.RPush(ctx, key, data)
	pipe.LTrim(ctx, key, -feedMaxLength, -1)
	pipe.Expire(ctx, key, feedTTL)
	if _, err := pipe.Exec(ctx); err != nil {
		f.log.WithError(err).Debug("failed to push notification")
	}
}

func feedKey(sessionID string) string {
	return fmt.Sprintf("notifications:session:%s", sessionID)
}

// Nop is a Notifier that discards all notices
type Nop struct{}

func (Nop) Success(context.Context, string, string) {}
func (Nop) Info(context.Context, string, string)    {}
func (Nop) Error(context.Context, string, string)   {}
