package ports

import (
	"context"

	"github.com/nyayasetu/nyayasetu/internal/core/domain"
)

// ApplicationRepository persists lawyer applications.
type ApplicationRepository interface {
	Create(ctx context.Context, app *domain.LawyerApplication) error
	FindByID(ctx context.Context, id string) (*domain.LawyerApplication, error)
	// List returns applications ordered by applied time; an empty status
	// matches every application.
	List(ctx context.Context, status domain.ApplicationStatus) ([]*domain.LawyerApplication, error)
	// UpdateReview stores the review fields of app, but only while the stored
	// application is still pending. It returns domain.ErrApplicationFinalized
	// otherwise.
	UpdateReview(ctx context.Context, app *domain.LawyerApplication) error
	Count(ctx context.Context) (int64, error)
}

// ReviewLog is the append-only audit trail of review decisions.
type ReviewLog interface {
	Append(ctx context.Context, event *domain.ReviewEvent) error
}
