package service

import (
	"context"
	"encoding/json"
	"errors"
	"sort"
	"sync"
	"time"

	"github.com/nyayasetu/nyayasetu/internal/core/domain"
	"github.com/nyayasetu/nyayasetu/internal/core/ports"
)

// ---------------------------------------------------------------------------
// Clock
// ---------------------------------------------------------------------------

type fakeClock struct {
	mu    sync.Mutex
	now   time.Time
	slept []time.Duration
}

func newFakeClock() *fakeClock {
	return &fakeClock{now: time.Date(2024, 3, 1, 10, 0, 0, 0, time.UTC)}
}

func (c *fakeClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.now
}

func (c *fakeClock) Sleep(d time.Duration) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.slept = append(c.slept, d)
	c.now = c.now.Add(d)
}

// ---------------------------------------------------------------------------
// Session slot + codec
// ---------------------------------------------------------------------------

// memSlot is shared between stores to simulate a process restart.
type memSlot struct {
	payload  []byte
	loadErr  error
	saveErr  error
	clearErr error
	saves    int
	clears   int
}

func (s *memSlot) Load(context.Context) ([]byte, error) {
	if s.loadErr != nil {
		return nil, s.loadErr
	}
	if s.payload == nil {
		return nil, ports.ErrSlotEmpty
	}
	return append([]byte(nil), s.payload...), nil
}

func (s *memSlot) Save(_ context.Context, p []byte) error {
	if s.saveErr != nil {
		return s.saveErr
	}
	s.saves++
	s.payload = append([]byte(nil), p...)
	return nil
}

func (s *memSlot) Clear(context.Context) error {
	if s.clearErr != nil {
		return s.clearErr
	}
	s.clears++
	s.payload = nil
	return nil
}

type jsonCodec struct{}

func (jsonCodec) Encode(id domain.Identity) ([]byte, error) { return json.Marshal(id) }

func (jsonCodec) Decode(p []byte) (domain.Identity, error) {
	var id domain.Identity
	err := json.Unmarshal(p, &id)
	return id, err
}

// ---------------------------------------------------------------------------
// Application repository + review log
// ---------------------------------------------------------------------------

type stubApplicationRepo struct {
	byID      map[string]*domain.LawyerApplication
	createErr error
	updateErr error
}

func newStubApplicationRepo() *stubApplicationRepo {
	return &stubApplicationRepo{byID: make(map[string]*domain.LawyerApplication)}
}

func (r *stubApplicationRepo) Create(_ context.Context, app *domain.LawyerApplication) error {
	if r.createErr != nil {
		return r.createErr
	}
	clone := *app
	r.byID[app.ID] = &clone
	return nil
}

func (r *stubApplicationRepo) FindByID(_ context.Context, id string) (*domain.LawyerApplication, error) {
	app, ok := r.byID[id]
	if !ok {
		return nil, domain.ErrApplicationNotFound
	}
	clone := *app
	return &clone, nil
}

func (r *stubApplicationRepo) List(_ context.Context, status domain.ApplicationStatus) ([]*domain.LawyerApplication, error) {
	var out []*domain.LawyerApplication
	for _, app := range r.byID {
		if status != "" && app.Status != status {
			continue
		}
		clone := *app
		out = append(out, &clone)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].AppliedAt.Before(out[j].AppliedAt) })
	return out, nil
}

func (r *stubApplicationRepo) UpdateReview(_ context.Context, app *domain.LawyerApplication) error {
	if r.updateErr != nil {
		return r.updateErr
	}
	stored, ok := r.byID[app.ID]
	if !ok {
		return domain.ErrApplicationNotFound
	}
	if stored.Status.Terminal() {
		return domain.ErrApplicationFinalized
	}
	clone := *app
	r.byID[app.ID] = &clone
	return nil
}

func (r *stubApplicationRepo) Count(context.Context) (int64, error) {
	return int64(len(r.byID)), nil
}

type stubReviewLog struct {
	events []*domain.ReviewEvent
	err    error
}

func (l *stubReviewLog) Append(_ context.Context, e *domain.ReviewEvent) error {
	if l.err != nil {
		return l.err
	}
	l.events = append(l.events, e)
	return nil
}

// ---------------------------------------------------------------------------
// Accounts
// ---------------------------------------------------------------------------

type stubAccountRepo struct {
	byEmail   map[string]*domain.Account
	createErr error
}

func newStubAccountRepo() *stubAccountRepo {
	return &stubAccountRepo{byEmail: make(map[string]*domain.Account)}
}

func (r *stubAccountRepo) FindByEmail(_ context.Context, email string) (*domain.Account, error) {
	acc, ok := r.byEmail[email]
	if !ok {
		return nil, domain.ErrAccountNotFound
	}
	clone := *acc
	return &clone, nil
}

func (r *stubAccountRepo) Create(_ context.Context, acc *domain.Account) error {
	if r.createErr != nil {
		return r.createErr
	}
	if _, ok := r.byEmail[acc.Email]; ok {
		return domain.ErrAccountExists
	}
	clone := *acc
	r.byEmail[acc.Email] = &clone
	return nil
}

func (r *stubAccountRepo) Delete(_ context.Context, email string) error {
	delete(r.byEmail, email)
	return nil
}

func (r *stubAccountRepo) UpdateIdentity(_ context.Context, email string, id domain.Identity) error {
	acc, ok := r.byEmail[email]
	if !ok {
		return domain.ErrAccountNotFound
	}
	acc.Identity = id
	return nil
}

var errDisk = errors.New("disk unavailable")
