// Package guard serializes submissions within a single process.
package guard

import (
	"context"
	"sync"

	"golang.org/x/sync/semaphore"
)

// Local holds one weighted semaphore of size one per operation.
type Local struct {
	mu   sync.Mutex
	sems map[string]*semaphore.Weighted
}

func NewLocal() *Local {
	return &Local{sems: make(map[string]*semaphore.Weighted)}
}

func (l *Local) TryAcquire(_ context.Context, op string) (bool, error) {
	return l.sem(op).TryAcquire(1), nil
}

// Release frees op. Releasing an op that is not held is a no-op.
func (l *Local) Release(_ context.Context, op string) error {
	s := l.sem(op)
	// Weighted panics on over-release; probe by acquiring first.
	if s.TryAcquire(1) {
		s.Release(1)
		return nil
	}
	s.Release(1)
	return nil
}

func (l *Local) sem(op string) *semaphore.Weighted {
	l.mu.Lock()
	defer l.mu.Unlock()
	s, ok := l.sems[op]
	if !ok {
		s = semaphore.NewWeighted(1)
		l.sems[op] = s
	}
	return s
}
