package entity

import "time"

// Credential is an email/password login kept by the local identity provider.
type Credential struct {
	UID          string    // Identity the credential signs in as.
	Email        string    // Lower-cased login email; the document key.
	PasswordHash string    // bcrypt hash.
	DisplayName  string    // Name placed in issued tokens.
	Roles        Roles     // Role claims placed in issued tokens.
	CreatedAt    time.Time // When the account was created.
}
