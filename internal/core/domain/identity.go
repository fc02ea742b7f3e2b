package domain

import (
	"encoding/json"
	"fmt"
	"time"
)

// Role names the kind of principal an Identity represents.
type Role string

const (
	RoleCitizen Role = "citizen"
	RoleLawyer  Role = "lawyer"
	RoleAdmin   Role = "admin"
)

// Valid reports whether r is one of the known roles.
func (r Role) Valid() bool {
	switch r {
	case RoleCitizen, RoleLawyer, RoleAdmin:
		return true
	}
	return false
}

// Profile carries the role-specific part of an Identity. Exactly one of
// CitizenProfile, LawyerProfile or AdminProfile implements it, so a citizen
// can never hold lawyer or admin attributes.
type Profile interface {
	Role() Role
	isProfile()
}

// CitizenProfile has no attributes beyond the common identity fields.
type CitizenProfile struct{}

func (CitizenProfile) Role() Role { return RoleCitizen }
func (CitizenProfile) isProfile() {}

// LawyerProfile holds bar registration and practice details.
type LawyerProfile struct {
	BarCouncilID  string
	PracticeAreas []string
	Experience    int
	Rating        float64
}

func (LawyerProfile) Role() Role { return RoleLawyer }
func (LawyerProfile) isProfile() {}

// AdminProfile holds the permission tags granted to an administrator.
type AdminProfile struct {
	Permissions []string
}

func (AdminProfile) Role() Role { return RoleAdmin }
func (AdminProfile) isProfile() {}

// Identity is the authenticated principal. The role is fixed by the
// Profile variant chosen at construction.
type Identity struct {
	ID         string
	Name       string
	Email      string
	Phone      string
	IsVerified bool
	CreatedAt  time.Time
	Profile    Profile
}

// Role returns the identity's role, or "" when no profile is attached.
func (i Identity) Role() Role {
	if i.Profile == nil {
		return ""
	}
	return i.Profile.Role()
}

// Lawyer returns the lawyer profile when the identity is a lawyer.
func (i Identity) Lawyer() (LawyerProfile, bool) {
	p, ok := i.Profile.(LawyerProfile)
	return p, ok
}

// Admin returns the admin profile when the identity is an admin.
func (i Identity) Admin() (AdminProfile, bool) {
	p, ok := i.Profile.(AdminProfile)
	return p, ok
}

// identityRecord is the flat wire form of an Identity. Field names follow
// the portal's stored session record.
type identityRecord struct {
	ID            string    `json:"id"`
	Name          string    `json:"name"`
	Email         string    `json:"email"`
	Phone         string    `json:"phone"`
	Role          Role      `json:"role"`
	IsVerified    bool      `json:"isVerified"`
	CreatedAt     time.Time `json:"createdAt"`
	BarCouncilID  *string   `json:"barCouncilId,omitempty"`
	PracticeAreas []string  `json:"practiceAreas,omitempty"`
	Experience    *int      `json:"experience,omitempty"`
	Rating        *float64  `json:"rating,omitempty"`
	Permissions   []string  `json:"permissions,omitempty"`
}

// MarshalJSON flattens the profile into the record.
func (i Identity) MarshalJSON() ([]byte, error) {
	rec := identityRecord{
		ID:         i.ID,
		Name:       i.Name,
		Email:      i.Email,
		Phone:      i.Phone,
		Role:       i.Role(),
		IsVerified: i.IsVerified,
		CreatedAt:  i.CreatedAt,
	}
	switch p := i.Profile.(type) {
	case LawyerProfile:
		rec.BarCouncilID = &p.BarCouncilID
		rec.PracticeAreas = nonNil(p.PracticeAreas)
		rec.Experience = &p.Experience
		rec.Rating = &p.Rating
	case AdminProfile:
		rec.Permissions = nonNil(p.Permissions)
	}
	return json.Marshal(rec)
}

// UnmarshalJSON rebuilds the profile variant from the record's role and
// rejects records whose role-conditional fields do not match the role.
func (i *Identity) UnmarshalJSON(data []byte) error {
	var rec identityRecord
	if err := json.Unmarshal(data, &rec); err != nil {
		return fmt.Errorf("%w: %v", ErrMalformedRecord, err)
	}
	if rec.ID == "" || rec.Email == "" {
		return fmt.Errorf("%w: missing id or email", ErrMalformedRecord)
	}

	lawyerFields := rec.BarCouncilID != nil || rec.PracticeAreas != nil || rec.Experience != nil || rec.Rating != nil
	adminFields := rec.Permissions != nil

	var profile Profile
	switch rec.Role {
	case RoleCitizen:
		if lawyerFields || adminFields {
			return fmt.Errorf("%w: citizen record carries role-specific fields", ErrMalformedRecord)
		}
		profile = CitizenProfile{}
	case RoleLawyer:
		if adminFields {
			return fmt.Errorf("%w: lawyer record carries permissions", ErrMalformedRecord)
		}
		lp := LawyerProfile{PracticeAreas: rec.PracticeAreas}
		if rec.BarCouncilID != nil {
			lp.BarCouncilID = *rec.BarCouncilID
		}
		if rec.Experience != nil {
			lp.Experience = *rec.Experience
		}
		if rec.Rating != nil {
			lp.Rating = *rec.Rating
		}
		profile = lp
	case RoleAdmin:
		if lawyerFields {
			return fmt.Errorf("%w: admin record carries lawyer fields", ErrMalformedRecord)
		}
		profile = AdminProfile{Permissions: rec.Permissions}
	default:
		return fmt.Errorf("%w: unknown role %q", ErrMalformedRecord, rec.Role)
	}

	*i = Identity{
		ID:         rec.ID,
		Name:       rec.Name,
		Email:      rec.Email,
		Phone:      rec.Phone,
		IsVerified: rec.IsVerified,
		CreatedAt:  rec.CreatedAt,
		Profile:    profile,
	}
	return nil
}

func nonNil(s []string) []string {
	if s == nil {
		return []string{}
	}
	return s
}
