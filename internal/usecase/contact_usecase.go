package usecase

import (
	"context"
	"time"

	"rolodex/internal/domain/entity"

	"github.com/google/uuid"
)

// DefaultContactPageSize is used when the caller does not specify a limit.
const DefaultContactPageSize = 10

// ContactInput carries the full set of writable contact fields. Updates
// replace every field, mirroring a PUT with a complete document.
type ContactInput struct {
	FirstName      string
	LastName       string
	Email          string
	PhoneNumber    string
	Birthday       time.Time
	AdditionalInfo string
}

// ListContactsInput carries pagination parameters. Non-positive values fall
// back to defaults.
type ListContactsInput struct {
	Skip  int
	Limit int
}

// ContactUsecase defines the interface for contact management operations.
// All operations act on the shared collection; callers are already
// authenticated by the time these run.
type ContactUsecase interface {
	ListContacts(ctx context.Context, input ListContactsInput) ([]*entity.Contact, error)
	GetContact(ctx context.Context, id uuid.UUID) (*entity.Contact, error)
	CreateContact(ctx context.Context, input ContactInput) (*entity.Contact, error)
	UpdateContact(ctx context.Context, id uuid.UUID, input ContactInput) (*entity.Contact, error)

	// DeleteContact removes the contact and returns its last state.
	DeleteContact(ctx context.Context, id uuid.UUID) (*entity.Contact, error)

	// ContactQR renders the contact as a shareable vCard QR code PNG.
	ContactQR(ctx context.Context, id uuid.UUID) ([]byte, error)
}
