package domain

import "time"

// ApplicationStatus is the review state of a LawyerApplication.
type ApplicationStatus string

const (
	ApplicationPending  ApplicationStatus = "pending"
	ApplicationApproved ApplicationStatus = "approved"
	ApplicationRejected ApplicationStatus = "rejected"
)

// Terminal reports whether no further review is possible.
func (s ApplicationStatus) Terminal() bool {
	return s == ApplicationApproved || s == ApplicationRejected
}

// ParseApplicationStatus validates a status filter. The empty string is
// accepted and means "any status".
func ParseApplicationStatus(s string) (ApplicationStatus, error) {
	switch st := ApplicationStatus(s); st {
	case "", ApplicationPending, ApplicationApproved, ApplicationRejected:
		return st, nil
	}
	return "", ErrUnknownApplicationStatus
}

// LawyerApplication is a request for a registrant to become a verified lawyer.
type LawyerApplication struct {
	ID              string            `json:"id" bson:"_id"`
	Name            string            `json:"name" bson:"name"`
	Email           string            `json:"email" bson:"email"`
	Phone           string            `json:"phone" bson:"phone"`
	BarCouncilID    string            `json:"barCouncilId" bson:"bar_council_id"`
	PracticeAreas   []string          `json:"practiceAreas" bson:"practice_areas"`
	Experience      int               `json:"experience" bson:"experience"`
	Documents       []string          `json:"documents" bson:"documents"`
	Status          ApplicationStatus `json:"status" bson:"status"`
	AppliedAt       time.Time         `json:"appliedAt" bson:"applied_at"`
	ReviewedAt      *time.Time        `json:"reviewedAt,omitempty" bson:"reviewed_at,omitempty"`
	ReviewedBy      string            `json:"reviewedBy,omitempty" bson:"reviewed_by,omitempty"`
	RejectionReason string            `json:"rejectionReason,omitempty" bson:"rejection_reason,omitempty"`
}

// Review moves a pending application to a terminal status.
func (a *LawyerApplication) Review(decision ApplicationStatus, reviewer, reason string, at time.Time) error {
	if a.Status.Terminal() {
		return ErrApplicationFinalized
	}
	if !decision.Terminal() {
		return ErrUnknownApplicationStatus
	}
	a.Status = decision
	a.ReviewedAt = &at
	a.ReviewedBy = reviewer
	if decision == ApplicationRejected {
		a.RejectionReason = reason
	}
	return nil
}

// ReviewEvent is the audit entry written for every review decision.
type ReviewEvent struct {
	ApplicationID string            `bson:"application_id"`
	Decision      ApplicationStatus `bson:"decision"`
	Reviewer      string            `bson:"reviewer"`
	Reason        string            `bson:"reason,omitempty"`
	At            time.Time         `bson:"at"`
}

// PracticeAreas is the set of practice areas a lawyer may declare.
var PracticeAreas = []string{
	"Civil Law", "Criminal Law", "Family Law", "Corporate Law", "Labour Law",
	"Property Law", "Consumer Law", "Constitutional Law", "Tax Law", "Environmental Law",
}

// IsPracticeArea reports whether s is one of PracticeAreas.
func IsPracticeArea(s string) bool {
	for _, a := range PracticeAreas {
		if a == s {
			return true
		}
	}
	return false
}
