package mongo

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/nyayasetu/nyayasetu/internal/core/domain"
	"github.com/nyayasetu/nyayasetu/internal/core/ports"
)

const collectionAccounts = "accounts"

var _ ports.AccountRepository = (*AccountRepository)(nil)

type AccountRepository struct {
	col *mongo.Collection
}

func NewAccountRepository(db *mongo.Database) *AccountRepository {
	return &AccountRepository{col: db.Collection(collectionAccounts)}
}

type mongoAccount struct {
	Email         string   `bson:"_id"`
	PasswordHash  string   `bson:"password_hash"`
	UserID        string   `bson:"user_id"`
	Name          string   `bson:"name"`
	Phone         string   `bson:"phone"`
	Role          string   `bson:"role"`
	IsVerified    bool     `bson:"is_verified"`
	CreatedAt     int64    `bson:"created_at"`
	BarCouncilID  string   `bson:"bar_council_id,omitempty"`
	PracticeAreas []string `bson:"practice_areas,omitempty"`
	Experience    int      `bson:"experience,omitempty"`
	Rating        float64  `bson:"rating,omitempty"`
	Permissions   []string `bson:"permissions,omitempty"`
}

func (r *AccountRepository) FindByEmail(ctx context.Context, email string) (*domain.Account, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	var ma mongoAccount
	if err := r.col.FindOne(ctx, bson.M{"_id": email}).Decode(&ma); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrAccountNotFound
		}
		return nil, fmt.Errorf("find account: %w", err)
	}
	return ma.toDomain()
}

// Create inserts the account keyed by email. An existing account is never
// replaced.
func (r *AccountRepository) Create(ctx context.Context, acc *domain.Account) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	doc := toMongoAccount(acc.Email, acc.PasswordHash, acc.Identity)
	if _, err := r.col.InsertOne(ctx, doc); err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return domain.ErrAccountExists
		}
		return fmt.Errorf("create account: %w", err)
	}
	return nil
}

func (r *AccountRepository) Delete(ctx context.Context, email string) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	if _, err := r.col.DeleteOne(ctx, bson.M{"_id": email}); err != nil {
		return fmt.Errorf("delete account: %w", err)
	}
	return nil
}

// UpdateIdentity replaces the identity fields and keeps the password hash.
func (r *AccountRepository) UpdateIdentity(ctx context.Context, email string, id domain.Identity) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	doc := toMongoAccount(email, "", id)
	set := bson.M{
		"user_id":        doc.UserID,
		"name":           doc.Name,
		"phone":          doc.Phone,
		"role":           doc.Role,
		"is_verified":    doc.IsVerified,
		"created_at":     doc.CreatedAt,
		"bar_council_id": doc.BarCouncilID,
		"practice_areas": doc.PracticeAreas,
		"experience":     doc.Experience,
		"rating":         doc.Rating,
		"permissions":    doc.Permissions,
	}
	res, err := r.col.UpdateOne(ctx, bson.M{"_id": email}, bson.M{"$set": set})
	if err != nil {
		return fmt.Errorf("update account identity: %w", err)
	}
	if res.MatchedCount == 0 {
		return domain.ErrAccountNotFound
	}
	return nil
}

func toMongoAccount(email, hash string, id domain.Identity) mongoAccount {
	ma := mongoAccount{
		Email:        email,
		PasswordHash: hash,
		UserID:       id.ID,
		Name:         id.Name,
		Phone:        id.Phone,
		Role:         string(id.Role()),
		IsVerified:   id.IsVerified,
		CreatedAt:    id.CreatedAt.Unix(),
	}
	switch p := id.Profile.(type) {
	case domain.LawyerProfile:
		ma.BarCouncilID = p.BarCouncilID
		ma.PracticeAreas = p.PracticeAreas
		ma.Experience = p.Experience
		ma.Rating = p.Rating
	case domain.AdminProfile:
		ma.Permissions = p.Permissions
	}
	return ma
}

func (ma mongoAccount) toDomain() (*domain.Account, error) {
	var profile domain.Profile
	switch domain.Role(ma.Role) {
	case domain.RoleCitizen:
		profile = domain.CitizenProfile{}
	case domain.RoleLawyer:
		profile = domain.LawyerProfile{
			BarCouncilID:  ma.BarCouncilID,
			PracticeAreas: ma.PracticeAreas,
			Experience:    ma.Experience,
			Rating:        ma.Rating,
		}
	case domain.RoleAdmin:
		profile = domain.AdminProfile{Permissions: ma.Permissions}
	default:
		return nil, fmt.Errorf("%w: account %s has role %q", domain.ErrMalformedRecord, ma.Email, ma.Role)
	}

	return &domain.Account{
		Email:        ma.Email,
		PasswordHash: ma.PasswordHash,
		Identity: domain.Identity{
			ID:         ma.UserID,
			Name:       ma.Name,
			Email:      ma.Email,
			Phone:      ma.Phone,
			IsVerified: ma.IsVerified,
			CreatedAt:  unixToTime(ma.CreatedAt),
			Profile:    profile,
		},
	}, nil
}

func unixToTime(ts int64) time.Time {
	if ts == 0 {
		return time.Time{}
	}
	return time.Unix(ts, 0).UTC()
}
