// Package auth implements the credential and token services declared by the domain.
package auth

import (
	"golang.org/x/crypto/bcrypt"

	"rolodex/config"
	"rolodex/internal/domain/service"
)

// bcryptHasher implements service.PasswordHasher on bcrypt.
type bcryptHasher struct {
	cost int
}

// NewBcryptHasher builds the hasher with the cost taken from auth.bcryptCost.
// Missing or out-of-range values fall back to the bcrypt default.
func NewBcryptHasher(cfg *config.Config) service.PasswordHasher {
	cost := bcrypt.DefaultCost
	if cfg.Auth != nil && cfg.Auth.BcryptCost >= bcrypt.MinCost && cfg.Auth.BcryptCost <= bcrypt.MaxCost {
		cost = cfg.Auth.BcryptCost
	}

	return &bcryptHasher{cost: cost}
}

// Hash salts and hashes a plaintext password. The salt is bcrypt's own.
func (h *bcryptHasher) Hash(password string) (string, error) {
	bytes, err := bcrypt.GenerateFromPassword([]byte(password), h.cost)
	return string(bytes), err
}

// Check reports whether the plaintext password matches the stored hash.
func (h *bcryptHasher) Check(password, hash string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(password)) == nil
}
