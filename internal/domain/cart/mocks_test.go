package cart

import (
	"context"
	"encoding/json"
)

// memoryStore is an in-memory Store that mirrors the Redis store's
// behavior, including JSON round-tripping on every save.
type memoryStore struct {
	data      map[string][]byte
	saveCalls int
}

func newMemoryStore() *memoryStore {
	return &memoryStore{data: map[string][]byte{}}
}

func (s *memoryStore) Load(_ context.Context, sessionID string) (*Cart, error) {
	raw, ok := s.data[sessionID]
	if !ok {
		return nil, ErrNotFound
	}
	var c Cart
	if err := json.Unmarshal(raw, &c); err != nil {
		return nil, err
	}
	return &c, nil
}

func (s *memoryStore) Save(_ context.Context, c *Cart) error {
	raw, err := json.Marshal(c)
	if err != nil {
		return err
	}
	s.saveCalls++
	s.data[c.SessionID] = raw
	return nil
}

func (s *memoryStore) Delete(_ context.Context, sessionID string) error {
	delete(s.data, sessionID)
	return nil
}

// captureNotifier records notification messages in order.
type captureNotifier struct {
	messages []string
}

func (n *captureNotifier) Success(_ context.Context, _ string, message string) {
	n.messages = append(n.messages, message)
}

func (n *captureNotifier) Info(_ context.Context, _ string, message string) {
	n.messages = append(n.messages, message)
}

func (n *captureNotifier) Error(_ context.Context, _ string, message string) {
	n.messages = append(n.messages, message)
}
