package ports

import (
	"context"

	"github.com/nyayasetu/nyayasetu/internal/core/domain"
)

// CredentialResolver turns login credentials into an identity. The demo
// resolver derives the role from the email; a directory resolver checks a
// stored password hash.
type CredentialResolver interface {
	Resolve(ctx context.Context, email, password string) (domain.Identity, error)
}

// AccountRepository persists directory accounts.
type AccountRepository interface {
	FindByEmail(ctx context.Context, email string) (*domain.Account, error)
	// Create stores a new account and returns domain.ErrAccountExists when
	// the email is taken.
	Create(ctx context.Context, account *domain.Account) error
	Delete(ctx context.Context, email string) error
	// UpdateIdentity replaces the stored identity for email.
	UpdateIdentity(ctx context.Context, email string, id domain.Identity) error
}

// AccountEnroller records a newly registered identity with its password.
// Withdraw undoes an enrollment whose registration did not complete.
type AccountEnroller interface {
	Enroll(ctx context.Context, id domain.Identity, password string) error
	Withdraw(ctx context.Context, email string) error
}
