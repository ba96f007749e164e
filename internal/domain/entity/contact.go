package entity

import (
	"time"

	"github.com/google/uuid"
)

// Contact is a single address book entry. Contacts are a shared collection:
// any authenticated principal may read and modify any entry.
type Contact struct {
	ID             uuid.UUID // The Global Unique Identifier (GUID) for the contact.
	FirstName      string
	LastName       string
	Email          string
	PhoneNumber    string
	Birthday       time.Time // Calendar date; the time of day carries no meaning.
	AdditionalInfo string    // Free-form note, may be empty.
	CreatedAt      time.Time
	UpdatedAt      time.Time
}
