package redis

import (
	"context"
	"errors"
	"fmt"

	"github.com/redis/go-redis/v9"

	"github.com/nyayasetu/nyayasetu/internal/core/ports"
)

// SessionSlot keeps the session record in a single string key.
// Key format: session:<key>
type SessionSlot struct {
	client *redis.Client
	key    string
}

func NewSessionSlot(client *redis.Client, key string) *SessionSlot {
	return &SessionSlot{client: client, key: "session:" + key}
}

func (s *SessionSlot) Load(ctx context.Context) ([]byte, error) {
	b, err := s.client.Get(ctx, s.key).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, ports.ErrSlotEmpty
	}
	if err != nil {
		return nil, fmt.Errorf("redis get session: %w", err)
	}
	return b, nil
}

// Save writes the record without expiry; it lives until Clear.
func (s *SessionSlot) Save(ctx context.Context, payload []byte) error {
	if err := s.client.Set(ctx, s.key, payload, 0).Err(); err != nil {
		return fmt.Errorf("redis set session: %w", err)
	}
	return nil
}

func (s *SessionSlot) Clear(ctx context.Context) error {
	if err := s.client.Del(ctx, s.key).Err(); err != nil {
		return fmt.Errorf("redis del session: %w", err)
	}
	return nil
}
