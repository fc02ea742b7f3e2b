package service

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/nyayasetu/nyayasetu/internal/core/domain"
	"github.com/nyayasetu/nyayasetu/internal/core/ports"
	"github.com/nyayasetu/nyayasetu/internal/pkg/clock"
)

// ApplicationService files lawyer applications and applies admin reviews.
type ApplicationService struct {
	repo     ports.ApplicationRepository
	reviews  ports.ReviewLog
	accounts ports.AccountRepository // nil in demo mode
	clock    clock.Clock
	log      zerolog.Logger
}

// NewApplicationService returns an ApplicationService. accounts may be nil,
// in which case Promote reports domain.ErrDirectoryUnavailable.
func NewApplicationService(
	repo ports.ApplicationRepository,
	reviews ports.ReviewLog,
	accounts ports.AccountRepository,
	c clock.Clock,
	log zerolog.Logger,
) *ApplicationService {
	if c == nil {
		c = clock.Real()
	}
	return &ApplicationService{repo: repo, reviews: reviews, accounts: accounts, clock: c, log: log}
}

// Submit files a pending application for a lawyer registration.
func (s *ApplicationService) Submit(ctx context.Context, in ports.RegistrationInput) (*domain.LawyerApplication, error) {
	app := &domain.LawyerApplication{
		ID:            uuid.NewString(),
		Name:          in.Name,
		Email:         in.Email,
		Phone:         in.Phone,
		BarCouncilID:  in.BarCouncilID,
		PracticeAreas: append([]string{}, in.PracticeAreas...),
		Experience:    in.Experience,
		Documents:     append([]string{}, in.Documents...),
		Status:        domain.ApplicationPending,
		AppliedAt:     s.clock.Now().UTC(),
	}
	if err := s.repo.Create(ctx, app); err != nil {
		return nil, fmt.Errorf("submit application: %w", err)
	}

	s.log.Info().Str("application_id", app.ID).Str("email", app.Email).Msg("lawyer application submitted")
	return app, nil
}

func (s *ApplicationService) List(ctx context.Context, status domain.ApplicationStatus) ([]*domain.LawyerApplication, error) {
	return s.repo.List(ctx, status)
}

func (s *ApplicationService) Get(ctx context.Context, id string) (*domain.LawyerApplication, error) {
	return s.repo.FindByID(ctx, id)
}

func (s *ApplicationService) Approve(ctx context.Context, id, reviewer string) (*domain.LawyerApplication, error) {
	return s.review(ctx, id, domain.ApplicationApproved, reviewer, "")
}

func (s *ApplicationService) Reject(ctx context.Context, id, reviewer, reason string) (*domain.LawyerApplication, error) {
	return s.review(ctx, id, domain.ApplicationRejected, reviewer, reason)
}

func (s *ApplicationService) review(ctx context.Context, id string, decision domain.ApplicationStatus, reviewer, reason string) (*domain.LawyerApplication, error) {
	app, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	now := s.clock.Now().UTC()
	if err := app.Review(decision, reviewer, reason, now); err != nil {
		return nil, err
	}
	if err := s.repo.UpdateReview(ctx, app); err != nil {
		return nil, fmt.Errorf("review application: %w", err)
	}

	// The audit trail is best effort; the review itself is already stored.
	event := &domain.ReviewEvent{
		ApplicationID: app.ID,
		Decision:      decision,
		Reviewer:      reviewer,
		Reason:        reason,
		At:            now,
	}
	if err := s.reviews.Append(ctx, event); err != nil {
		s.log.Warn().Err(err).Str("application_id", app.ID).Msg("failed to append review event")
	}

	s.log.Info().
		Str("application_id", app.ID).
		Str("decision", string(decision)).
		Str("reviewer", reviewer).
		Msg("application reviewed")
	return app, nil
}

// Promote marks the applicant's directory account as a verified lawyer
// carrying the practice details from the approved application.
func (s *ApplicationService) Promote(ctx context.Context, id string) (domain.Identity, error) {
	if s.accounts == nil {
		return domain.Identity{}, domain.ErrDirectoryUnavailable
	}

	app, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return domain.Identity{}, err
	}
	if app.Status != domain.ApplicationApproved {
		return domain.Identity{}, domain.ErrApplicationNotApproved
	}

	acc, err := s.accounts.FindByEmail(ctx, app.Email)
	if err != nil {
		return domain.Identity{}, err
	}
	current, ok := acc.Identity.Lawyer()
	if !ok {
		return domain.Identity{}, domain.ErrRoleImmutable
	}

	promoted := acc.Identity
	promoted.IsVerified = true
	promoted.Profile = domain.LawyerProfile{
		BarCouncilID:  app.BarCouncilID,
		PracticeAreas: append([]string{}, app.PracticeAreas...),
		Experience:    app.Experience,
		Rating:        current.Rating,
	}
	if err := s.accounts.UpdateIdentity(ctx, app.Email, promoted); err != nil {
		return domain.Identity{}, fmt.Errorf("promote applicant: %w", err)
	}

	s.log.Info().Str("application_id", app.ID).Str("user_id", promoted.ID).Msg("applicant promoted to verified lawyer")
	return promoted, nil
}

// SeedDemo files the two demo applications when the repository is empty.
func (s *ApplicationService) SeedDemo(ctx context.Context) (int, error) {
	n, err := s.repo.Count(ctx)
	if err != nil {
		return 0, fmt.Errorf("seed applications: %w", err)
	}
	if n > 0 {
		return 0, nil
	}

	seeds := []*domain.LawyerApplication{
		{
			ID:            "app-1",
			Name:          "Advocate Priya Sharma",
			Email:         "priya.sharma@lawyer.com",
			Phone:         "+91 9876543210",
			BarCouncilID:  "DL/12345/2020",
			PracticeAreas: []string{"Civil Law", "Criminal Law", "Family Law"},
			Experience:    8,
			Documents:     []string{},
			Status:        domain.ApplicationPending,
			AppliedAt:     time.Date(2024, 1, 15, 0, 0, 0, 0, time.UTC),
		},
		{
			ID:            "app-2",
			Name:          "Advocate Rajesh Kumar",
			Email:         "rajesh.kumar@lawyer.com",
			Phone:         "+91 9876543211",
			BarCouncilID:  "MH/67890/2018",
			PracticeAreas: []string{"Corporate Law", "Labour Law"},
			Experience:    12,
			Documents:     []string{},
			Status:        domain.ApplicationPending,
			AppliedAt:     time.Date(2024, 1, 18, 0, 0, 0, 0, time.UTC),
		},
	}
	for _, app := range seeds {
		if err := s.repo.Create(ctx, app); err != nil {
			return 0, fmt.Errorf("seed applications: %w", err)
		}
	}

	s.log.Info().Int("count", len(seeds)).Msg("demo applications seeded")
	return len(seeds), nil
}
