// Package repository declares the persistence contracts the use cases call.
// Implementations live under internal/infra/persistence.
package repository

import (
	"context"
	"errors"

	"rolodex/internal/domain/entity"
)

// ErrUserNotFound reports an email with no account behind it.
var ErrUserNotFound = errors.New("user not found")

// UserRepository persists accounts.
type UserRepository interface {
	// FindByEmail retrieves a single user by email address. The match is exact
	// and case-sensitive; "User@x" and "user@x" are distinct identities.
	FindByEmail(ctx context.Context, email string) (*entity.User, error)

	// Create persists a new user entity to the storage. The unique index on
	// email is the authoritative duplicate guard; violations surface as domain errors.
	Create(ctx context.Context, user *entity.User) error

	// Update modifies an existing user entity in the storage.
	Update(ctx context.Context, user *entity.User) error
}
