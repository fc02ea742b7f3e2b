package service

import (
	"context"
	"errors"
	"strings"

	"golang.org/x/crypto/bcrypt"

	"github.com/nyayasetu/nyayasetu/internal/core/domain"
	"github.com/nyayasetu/nyayasetu/internal/core/ports"
	"github.com/nyayasetu/nyayasetu/internal/pkg/clock"
)

// AdminEmail is the one address the demo resolver maps to the administrator.
const AdminEmail = "admin@nyayasetu.com"

// DemoResolver derives the role from the email and returns a fixed demo
// profile. The password is never checked.
type DemoResolver struct {
	clock clock.Clock
}

func NewDemoResolver(c clock.Clock) *DemoResolver {
	if c == nil {
		c = clock.Real()
	}
	return &DemoResolver{clock: c}
}

func (r *DemoResolver) Resolve(_ context.Context, email, _ string) (domain.Identity, error) {
	now := r.clock.Now().UTC()

	switch {
	case email == AdminEmail:
		return domain.Identity{
			ID:         "admin-1",
			Name:       "System Administrator",
			Email:      AdminEmail,
			Phone:      "+91 9876543210",
			IsVerified: true,
			CreatedAt:  now,
			Profile: domain.AdminProfile{
				Permissions: []string{"manage_users", "manage_lawyers", "view_analytics"},
			},
		}, nil
	case strings.Contains(email, "lawyer"):
		return domain.Identity{
			ID:         "lawyer-1",
			Name:       "Advocate Priya Sharma",
			Email:      email,
			Phone:      "+91 9876543211",
			IsVerified: true,
			CreatedAt:  now,
			Profile: domain.LawyerProfile{
				BarCouncilID:  "DL/12345/2020",
				PracticeAreas: []string{"Civil Law", "Criminal Law", "Family Law"},
				Experience:    8,
				Rating:        4.7,
			},
		}, nil
	default:
		return domain.Identity{
			ID:         "citizen-1",
			Name:       "Rahul Kumar",
			Email:      email,
			Phone:      "+91 9876543212",
			IsVerified: true,
			CreatedAt:  now,
			Profile:    domain.CitizenProfile{},
		}, nil
	}
}

// DirectoryResolver checks credentials against stored bcrypt hashes.
type DirectoryResolver struct {
	accounts ports.AccountRepository
}

func NewDirectoryResolver(accounts ports.AccountRepository) *DirectoryResolver {
	return &DirectoryResolver{accounts: accounts}
}

func (r *DirectoryResolver) Resolve(ctx context.Context, email, password string) (domain.Identity, error) {
	if email == "" || password == "" {
		return domain.Identity{}, domain.ErrInvalidCredentials
	}

	acc, err := r.accounts.FindByEmail(ctx, email)
	if errors.Is(err, domain.ErrAccountNotFound) {
		return domain.Identity{}, domain.ErrInvalidCredentials
	}
	if err != nil {
		return domain.Identity{}, err
	}

	if bcrypt.CompareHashAndPassword([]byte(acc.PasswordHash), []byte(password)) != nil {
		return domain.Identity{}, domain.ErrInvalidCredentials
	}
	return acc.Identity, nil
}

// Enroll stores a new identity with a hash of its password. An email that is
// already registered is refused with domain.ErrAccountExists.
func (r *DirectoryResolver) Enroll(ctx context.Context, id domain.Identity, password string) error {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	return r.accounts.Create(ctx, &domain.Account{
		Email:        id.Email,
		PasswordHash: string(hash),
		Identity:     id,
	})
}

func (r *DirectoryResolver) Withdraw(ctx context.Context, email string) error {
	return r.accounts.Delete(ctx, email)
}
