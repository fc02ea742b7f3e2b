package redis

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

// DefaultGuardTTL bounds how long a crashed submission can hold the guard.
// It must exceed the longest simulated delay.
const DefaultGuardTTL = 30 * time.Second

// SubmissionGuard marks an outstanding login/register with a SETNX key so
// every replica sharing the session slot sees it.
// Key format: inflight:<slot key>:<op>
type SubmissionGuard struct {
	client *redis.Client
	prefix string
	ttl    time.Duration
}

func NewSubmissionGuard(client *redis.Client, slotKey string, ttl time.Duration) *SubmissionGuard {
	if ttl <= 0 {
		ttl = DefaultGuardTTL
	}
	return &SubmissionGuard{client: client, prefix: "inflight:" + slotKey, ttl: ttl}
}

// TryAcquire reports whether op was free and is now held.
func (g *SubmissionGuard) TryAcquire(ctx context.Context, op string) (bool, error) {
	ok, err := g.client.SetNX(ctx, g.key(op), "1", g.ttl).Result()
	if err != nil {
		return false, fmt.Errorf("acquire submission guard: %w", err)
	}
	return ok, nil
}

func (g *SubmissionGuard) Release(ctx context.Context, op string) error {
	if err := g.client.Del(ctx, g.key(op)).Err(); err != nil {
		return fmt.Errorf("release submission guard: %w", err)
	}
	return nil
}

func (g *SubmissionGuard) key(op string) string {
	return fmt.Sprintf("%s:%s", g.prefix, op)
}
