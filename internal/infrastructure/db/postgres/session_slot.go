package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/nyayasetu/nyayasetu/internal/core/ports"
)

var _ ports.SessionSlot = (*SessionSlot)(nil)

// SessionSlot keeps the session record in one row of session_slots.
type SessionSlot struct {
	pool *pgxpool.Pool
	key  string
}

func NewSessionSlot(pool *pgxpool.Pool, key string) *SessionSlot {
	return &SessionSlot{pool: pool, key: key}
}

func (s *SessionSlot) Load(ctx context.Context) ([]byte, error) {
	var payload []byte
	err := s.pool.QueryRow(ctx, `SELECT payload FROM session_slots WHERE key = $1`, s.key).Scan(&payload)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ports.ErrSlotEmpty
	}
	if err != nil {
		return nil, fmt.Errorf("load session slot: %w", err)
	}
	return payload, nil
}

func (s *SessionSlot) Save(ctx context.Context, payload []byte) error {
	query := `INSERT INTO session_slots (key, payload, updated_at)
			  VALUES ($1, $2, now())
			  ON CONFLICT (key) DO UPDATE SET payload = EXCLUDED.payload, updated_at = now()`

	if _, err := s.pool.Exec(ctx, query, s.key, payload); err != nil {
		return fmt.Errorf("save session slot: %w", err)
	}
	return nil
}

func (s *SessionSlot) Clear(ctx context.Context) error {
	if _, err := s.pool.Exec(ctx, `DELETE FROM session_slots WHERE key = $1`, s.key); err != nil {
		return fmt.Errorf("clear session slot: %w", err)
	}
	return nil
}
