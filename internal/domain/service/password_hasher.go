// Package service defines interfaces for infrastructure the usecases depend on:
// identity, tokens, events, push, storage, rendering and background writes.
package service

// PasswordHasher hashes and verifies local account passwords.
type PasswordHasher interface {
	// Hash generates a salted hash from a plaintext password.
	Hash(password string) (string, error)

	// Check compares a plaintext password with a hash to see if they match.
	Check(password, hash string) bool
}
