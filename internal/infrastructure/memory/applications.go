// Package memory holds process-local stand-ins for the Mongo repositories,
// used when no MONGO_URI is configured.
package memory

import (
	"context"
	"sort"
	"sync"

	"github.com/rs/zerolog"

	"github.com/nyayasetu/nyayasetu/internal/core/domain"
	"github.com/nyayasetu/nyayasetu/internal/core/ports"
)

var _ ports.ApplicationRepository = (*ApplicationRepository)(nil)

type ApplicationRepository struct {
	mu   sync.RWMutex
	byID map[string]domain.LawyerApplication
}

func NewApplicationRepository() *ApplicationRepository {
	return &ApplicationRepository{byID: make(map[string]domain.LawyerApplication)}
}

func (r *ApplicationRepository) Create(_ context.Context, app *domain.LawyerApplication) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.byID[app.ID] = clone(*app)
	return nil
}

func (r *ApplicationRepository) FindByID(_ context.Context, id string) (*domain.LawyerApplication, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	app, ok := r.byID[id]
	if !ok {
		return nil, domain.ErrApplicationNotFound
	}
	out := clone(app)
	return &out, nil
}

func (r *ApplicationRepository) List(_ context.Context, status domain.ApplicationStatus) ([]*domain.LawyerApplication, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]*domain.LawyerApplication, 0, len(r.byID))
	for _, app := range r.byID {
		if status != "" && app.Status != status {
			continue
		}
		c := clone(app)
		out = append(out, &c)
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].AppliedAt.Equal(out[j].AppliedAt) {
			return out[i].ID < out[j].ID
		}
		return out[i].AppliedAt.Before(out[j].AppliedAt)
	})
	return out, nil
}

func (r *ApplicationRepository) UpdateReview(_ context.Context, app *domain.LawyerApplication) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	stored, ok := r.byID[app.ID]
	if !ok {
		return domain.ErrApplicationNotFound
	}
	if stored.Status != domain.ApplicationPending {
		return domain.ErrApplicationFinalized
	}
	stored.Status = app.Status
	stored.ReviewedAt = app.ReviewedAt
	stored.ReviewedBy = app.ReviewedBy
	stored.RejectionReason = app.RejectionReason
	r.byID[app.ID] = stored
	return nil
}

func (r *ApplicationRepository) Count(context.Context) (int64, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return int64(len(r.byID)), nil
}

func clone(app domain.LawyerApplication) domain.LawyerApplication {
	app.PracticeAreas = append([]string{}, app.PracticeAreas...)
	app.Documents = append([]string{}, app.Documents...)
	if app.ReviewedAt != nil {
		at := *app.ReviewedAt
		app.ReviewedAt = &at
	}
	return app
}

// ReviewLog writes review decisions to the logger instead of a collection.
type ReviewLog struct {
	log zerolog.Logger
}

func NewReviewLog(log zerolog.Logger) *ReviewLog {
	return &ReviewLog{log: log}
}

func (l *ReviewLog) Append(_ context.Context, e *domain.ReviewEvent) error {
	l.log.Info().
		Str("application_id", e.ApplicationID).
		Str("decision", string(e.Decision)).
		Str("reviewer", e.Reviewer).
		Str("reason", e.Reason).
		Time("at", e.At).
		Msg("review recorded")
	return nil
}
