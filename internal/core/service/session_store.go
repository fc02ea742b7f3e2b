package service

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/rs/zerolog"

	"github.com/nyayasetu/nyayasetu/internal/core/domain"
	"github.com/nyayasetu/nyayasetu/internal/core/ports"
	"github.com/nyayasetu/nyayasetu/internal/pkg/clock"
)

const (
	defaultLoginDelay    = time.Second
	defaultRegisterDelay = 1500 * time.Millisecond
)

// SessionStore owns the portal's current identity and its durable record.
type SessionStore struct {
	slot     ports.SessionSlot
	codec    ports.IdentityCodec
	resolver ports.CredentialResolver
	apps     ports.ApplicationRecorder
	enroller ports.AccountEnroller
	clock    clock.Clock
	log      zerolog.Logger

	loginDelay    time.Duration
	registerDelay time.Duration

	// transition serializes identity changes so slot writes and the
	// in-memory identity never disagree.
	transition sync.Mutex

	mu       sync.RWMutex
	current  *domain.Identity
	restored bool
	inFlight int
}

// SessionStoreOption configures a SessionStore.
type SessionStoreOption func(*SessionStore)

// WithCredentialResolver replaces the demo email heuristic.
func WithCredentialResolver(r ports.CredentialResolver) SessionStoreOption {
	return func(s *SessionStore) { s.resolver = r }
}

// WithApplicationRecorder sets where lawyer registrations are filed.
func WithApplicationRecorder(r ports.ApplicationRecorder) SessionStoreOption {
	return func(s *SessionStore) { s.apps = r }
}

// WithAccountEnroller stores every registration in an account directory.
func WithAccountEnroller(e ports.AccountEnroller) SessionStoreOption {
	return func(s *SessionStore) { s.enroller = e }
}

// WithClock overrides the wall clock.
func WithClock(c clock.Clock) SessionStoreOption {
	return func(s *SessionStore) { s.clock = c }
}

// WithLatency sets the simulated backend delay for login and register.
// Negative values are ignored.
func WithLatency(login, register time.Duration) SessionStoreOption {
	return func(s *SessionStore) {
		if login >= 0 {
			s.loginDelay = login
		}
		if register >= 0 {
			s.registerDelay = register
		}
	}
}

// NewSessionStore builds an anonymous, not-yet-restored store.
func NewSessionStore(slot ports.SessionSlot, codec ports.IdentityCodec, log zerolog.Logger, opts ...SessionStoreOption) *SessionStore {
	s := &SessionStore{
		slot:          slot,
		codec:         codec,
		clock:         clock.Real(),
		log:           log,
		loginDelay:    defaultLoginDelay,
		registerDelay: defaultRegisterDelay,
	}
	for _, opt := range opts {
		opt(s)
	}
	if s.resolver == nil {
		s.resolver = NewDemoResolver(s.clock)
	}
	return s
}

// Restore adopts the persisted identity, if any. A record that cannot be
// decoded is cleared and the session stays anonymous; only a failure to read
// the slot is returned.
func (s *SessionStore) Restore(ctx context.Context) error {
	s.transition.Lock()
	defer s.transition.Unlock()
	defer s.markRestored()

	payload, err := s.slot.Load(ctx)
	if errors.Is(err, ports.ErrSlotEmpty) {
		s.log.Debug().Msg("no persisted session")
		return nil
	}
	if err != nil {
		return fmt.Errorf("restore session: %w: %w", domain.ErrPersistence, err)
	}

	id, err := s.codec.Decode(payload)
	if err != nil {
		s.log.Warn().Err(err).Msg("discarding unreadable session record")
		if clearErr := s.slot.Clear(ctx); clearErr != nil {
			s.log.Warn().Err(clearErr).Msg("failed to clear unreadable session record")
		}
		return nil
	}

	s.setCurrent(&id)
	s.log.Info().Str("user_id", id.ID).Str("role", string(id.Role())).Msg("session restored")
	return nil
}

// Login resolves credentials after the simulated backend delay, persists the
// identity and makes it current. The delay cannot be cancelled.
func (s *SessionStore) Login(ctx context.Context, email, password string) (domain.Identity, error) {
	ctx = context.WithoutCancel(ctx)
	s.beginCall()
	defer s.endCall()

	s.clock.Sleep(s.loginDelay)

	id, err := s.resolver.Resolve(ctx, email, password)
	if err != nil {
		return domain.Identity{}, fmt.Errorf("login: %w", err)
	}

	s.transition.Lock()
	defer s.transition.Unlock()

	if err := s.persist(ctx, id); err != nil {
		s.log.Error().Err(err).Str("user_id", id.ID).Msg("login not persisted")
		return domain.Identity{}, err
	}
	s.setCurrent(&id)

	s.log.Info().Str("user_id", id.ID).Str("role", string(id.Role())).Msg("logged in")
	return id, nil
}

// Register builds a new identity from the submitted form. Citizens are
// verified and signed in at once; lawyers are filed as pending applications
// and stay signed out. A failed registration leaves no account behind.
func (s *SessionStore) Register(ctx context.Context, in ports.RegistrationInput, password string) (*ports.RegistrationResult, error) {
	ctx = context.WithoutCancel(ctx)
	s.beginCall()
	defer s.endCall()

	s.clock.Sleep(s.registerDelay)

	id := newRegisteredIdentity(in, s.clock.Now().UTC())
	result := &ports.RegistrationResult{Identity: id}

	s.transition.Lock()
	defer s.transition.Unlock()

	if s.enroller != nil {
		err := s.enroller.Enroll(ctx, id, password)
		if errors.Is(err, domain.ErrAccountExists) {
			return nil, fmt.Errorf("register: %w", err)
		}
		if err != nil {
			return nil, fmt.Errorf("register: %w: %w", domain.ErrPersistence, err)
		}
	}

	if id.Role() == domain.RoleLawyer && s.apps != nil {
		app, err := s.apps.Submit(ctx, in)
		if err != nil {
			s.withdraw(ctx, id)
			return nil, fmt.Errorf("register: %w: %w", domain.ErrPersistence, err)
		}
		result.Application = app
	}

	if !id.IsVerified {
		s.log.Info().Str("user_id", id.ID).Str("role", string(id.Role())).Msg("registration awaiting review")
		return result, nil
	}

	if err := s.persist(ctx, id); err != nil {
		s.log.Error().Err(err).Str("user_id", id.ID).Msg("registration not persisted")
		s.withdraw(ctx, id)
		return nil, err
	}
	s.setCurrent(&id)
	result.Authenticated = true

	s.log.Info().Str("user_id", id.ID).Msg("citizen registered")
	return result, nil
}

// Logout removes the record and then drops the current identity. If the
// record cannot be removed the session is left as it was. Calling it while
// anonymous is a no-op.
func (s *SessionStore) Logout(ctx context.Context) error {
	s.transition.Lock()
	defer s.transition.Unlock()

	if err := s.slot.Clear(ctx); err != nil {
		return fmt.Errorf("logout: %w: %w", domain.ErrPersistence, err)
	}

	prev := s.Session()
	s.setCurrent(nil)
	if id, ok := prev.Identity(); ok {
		s.log.Info().Str("user_id", id.ID).Msg("logged out")
	}
	return nil
}

// Session returns a snapshot of the current session.
func (s *SessionStore) Session() domain.Session {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.current == nil {
		return domain.AnonymousSession()
	}
	return domain.AuthenticatedSession(*s.current)
}

// Loading reports whether the store has not restored yet or a login or
// registration is waiting on its delay.
func (s *SessionStore) Loading() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return !s.restored || s.inFlight > 0
}

// Restored reports whether the startup restore has finished.
func (s *SessionStore) Restored() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.restored
}

func (s *SessionStore) persist(ctx context.Context, id domain.Identity) error {
	payload, err := s.codec.Encode(id)
	if err != nil {
		return fmt.Errorf("encode session: %w: %w", domain.ErrPersistence, err)
	}
	if err := s.slot.Save(ctx, payload); err != nil {
		return fmt.Errorf("save session: %w: %w", domain.ErrPersistence, err)
	}
	return nil
}

// withdraw removes an account enrolled by a registration that then failed.
func (s *SessionStore) withdraw(ctx context.Context, id domain.Identity) {
	if s.enroller == nil {
		return
	}
	if err := s.enroller.Withdraw(ctx, id.Email); err != nil {
		s.log.Error().Err(err).Str("user_id", id.ID).Msg("failed to withdraw enrolled account")
	}
}

func (s *SessionStore) setCurrent(id *domain.Identity) {
	s.mu.Lock()
	s.current = id
	s.mu.Unlock()
}

func (s *SessionStore) markRestored() {
	s.mu.Lock()
	s.restored = true
	s.mu.Unlock()
}

func (s *SessionStore) beginCall() {
	s.mu.Lock()
	s.inFlight++
	s.mu.Unlock()
}

func (s *SessionStore) endCall() {
	s.mu.Lock()
	s.inFlight--
	s.mu.Unlock()
}

// newRegisteredIdentity builds the identity for a registration form. An
// empty or unknown role is recorded as a citizen but only an explicit citizen
// registration is verified.
func newRegisteredIdentity(in ports.RegistrationInput, now time.Time) domain.Identity {
	var profile domain.Profile
	switch in.Role {
	case domain.RoleLawyer:
		profile = domain.LawyerProfile{
			BarCouncilID:  in.BarCouncilID,
			PracticeAreas: append([]string(nil), in.PracticeAreas...),
			Experience:    in.Experience,
		}
	case domain.RoleAdmin:
		profile = domain.AdminProfile{}
	default:
		profile = domain.CitizenProfile{}
	}

	role := profile.Role()
	return domain.Identity{
		ID:         fmt.Sprintf("%s-%d", role, now.UnixMilli()),
		Name:       in.Name,
		Email:      in.Email,
		Phone:      in.Phone,
		IsVerified: in.Role == domain.RoleCitizen,
		CreatedAt:  now,
		Profile:    profile,
	}
}
