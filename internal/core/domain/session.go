package domain

// Session is a snapshot of the portal's authentication state: anonymous, or
// authenticated with exactly one Identity.
type Session struct {
	identity *Identity
}

// AnonymousSession returns the session with no identity.
func AnonymousSession() Session { return Session{} }

// AuthenticatedSession returns a session holding a copy of id.
func AuthenticatedSession(id Identity) Session {
	return Session{identity: &id}
}

// Authenticated reports whether the session holds an identity.
func (s Session) Authenticated() bool { return s.identity != nil }

// Identity returns the session's identity, if any.
func (s Session) Identity() (Identity, bool) {
	if s.identity == nil {
		return Identity{}, false
	}
	return *s.identity, true
}
