package handler

import (
	"github.com/nyayasetu/nyayasetu/internal/core/domain"
)

// systemReviewer is stamped on reviews made while no one is signed in.
const systemReviewer = "system"

// SessionReader exposes the current session snapshot.
type SessionReader interface {
	Session() domain.Session
}

// reviewerID returns the current identity's id, or systemReviewer. Routes
// carry no authorization; the id is recorded for the audit trail only.
func reviewerID(sessions SessionReader) string {
	if id, ok := sessions.Session().Identity(); ok {
		return id.ID
	}
	return systemReviewer
}
