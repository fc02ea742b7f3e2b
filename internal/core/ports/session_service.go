package ports

import (
	"context"

	"github.com/nyayasetu/nyayasetu/internal/core/domain"
)

// RegistrationInput carries the submitted registration form.
type RegistrationInput struct {
	Name          string
	Email         string
	Phone         string
	Role          domain.Role
	BarCouncilID  string
	PracticeAreas []string
	Experience    int
	Documents     []string
}

// RegistrationResult reports what a registration produced. Identity is set
// for every registration; Application only for lawyer registrations.
type RegistrationResult struct {
	Identity      domain.Identity
	Authenticated bool
	Application   *domain.LawyerApplication
}

// SessionService owns the current identity and its durable record.
type SessionService interface {
	Restore(ctx context.Context) error
	Login(ctx context.Context, email, password string) (domain.Identity, error)
	Register(ctx context.Context, in RegistrationInput, password string) (*RegistrationResult, error)
	Logout(ctx context.Context) error
	Session() domain.Session
	Loading() bool
}

// ApplicationRecorder creates the pending application for a lawyer
// registration.
type ApplicationRecorder interface {
	Submit(ctx context.Context, in RegistrationInput) (*domain.LawyerApplication, error)
}
