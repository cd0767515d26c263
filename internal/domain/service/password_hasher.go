// Package service defines interfaces for core, stateless domain logic.
// These services encapsulate business rules that don't naturally fit within a single entity.
package service

// PasswordHasher defines the interface for password hashing and verification.
// This abstracts the underlying hashing algorithm (e.g., bcrypt), keeping the domain pure.
type PasswordHasher interface {
	// Hash generates a salted hash from a plaintext password. Each call
	// produces a fresh salt, so two hashes of the same password differ.
	Hash(password string) (string, error)

	// Check compares a plaintext password with a stored hash. It returns
	// false for a mismatch and for a malformed hash alike; the caller cannot
	// tell the two apart.
	Check(password, hash string) bool
}
