package domain

import "errors"

var (
	ErrMalformedRecord          = errors.New("malformed session record")
	ErrPersistence              = errors.New("session persistence failed")
	ErrInvalidCredentials       = errors.New("invalid credentials")
	ErrAccountNotFound          = errors.New("account not found")
	ErrAccountExists            = errors.New("account already registered")
	ErrUnknownModule            = errors.New("unknown module")
	ErrUnsupportedLocale        = errors.New("unsupported locale")
	ErrUnknownApplicationStatus = errors.New("unknown application status")
	ErrApplicationNotFound      = errors.New("application not found")
	ErrApplicationFinalized     = errors.New("application already reviewed")
	ErrApplicationNotApproved   = errors.New("application is not approved")
	ErrDirectoryUnavailable     = errors.New("account directory not configured")
	ErrSubmissionInFlight       = errors.New("a submission is already in progress")
	ErrRoleImmutable            = errors.New("identity role cannot change")
)
