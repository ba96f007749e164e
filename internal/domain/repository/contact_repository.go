package repository

import (
	"context"
	"errors"

	"rolodex/internal/domain/entity"

	"github.com/google/uuid"
)

// ErrContactNotFound is a domain-specific error returned when a contact is not found.
var ErrContactNotFound = errors.New("contact not found")

// ContactRepository defines the standard operations for contact persistence.
type ContactRepository interface {
	// List returns a page of contacts ordered by creation time, skipping the
	// first skip rows and returning at most limit rows.
	List(ctx context.Context, skip, limit int) ([]*entity.Contact, error)

	// FindByID retrieves a single contact by its unique ID.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Contact, error)

	// Create persists a new contact entity to the storage.
	Create(ctx context.Context, contact *entity.Contact) error

	// Update modifies an existing contact entity in the storage.
	Update(ctx context.Context, contact *entity.Contact) error

	// Delete removes a contact by its unique ID.
	Delete(ctx context.Context, id uuid.UUID) error
}
