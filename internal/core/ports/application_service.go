package ports

import (
	"context"

	"github.com/nyayasetu/nyayasetu/internal/core/domain"
)

// ApplicationService is the admin-facing desk for lawyer applications.
type ApplicationService interface {
	ApplicationRecorder
	List(ctx context.Context, status domain.ApplicationStatus) ([]*domain.LawyerApplication, error)
	Get(ctx context.Context, id string) (*domain.LawyerApplication, error)
	Approve(ctx context.Context, id, reviewer string) (*domain.LawyerApplication, error)
	Reject(ctx context.Context, id, reviewer, reason string) (*domain.LawyerApplication, error)
	// Promote turns an approved application into a verified lawyer account.
	// It is separate from Approve so it can be wired to a real backend.
	Promote(ctx context.Context, id string) (domain.Identity, error)
	SeedDemo(ctx context.Context) (int, error)
}
