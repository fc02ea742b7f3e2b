package domain

// Account is a directory entry used by the credential verifier when the
// portal runs against a real account store instead of the demo table.
type Account struct {
	Email        string
	PasswordHash string
	Identity     Identity
}
