// Package entity contains the core business objects of the project,
// each representing a unique, identifiable concept within the domain.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// User is the core entity in the system, representing a single registered account.
// The email doubles as the login identifier and is stored exactly as submitted;
// lookups against it are case-sensitive.
type User struct {
	ID           uuid.UUID // The Global Unique Identifier (GUID) for the user.
	Email        string    // The user's email address, used as the login identifier.
	PasswordHash string    // Bcrypt hash of the user's password. Never leaves the service layer.
	Verified     bool      // Whether the user has confirmed ownership of the email address.
	CreatedAt    time.Time // Timestamp of when this account was created.
	UpdatedAt    time.Time // Timestamp of the last modification to this account.
}
