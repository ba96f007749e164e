// Package service declares the stateless domain services the use cases
// depend on: token issuance and verification, password hashing, mail
// delivery, and QR rendering. Implementations live under internal/infra.
package service

// PasswordHasher hides the credential hashing scheme from the domain.
// The bcrypt implementation takes its cost from configuration.
type PasswordHasher interface {
	// Hash derives a salted hash for storing alongside the account.
	Hash(password string) (string, error)

	// Check reports whether the plaintext matches the stored hash.
	Check(password, hash string) bool
}
