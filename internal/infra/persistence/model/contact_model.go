package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ContactModel mirrors the 'contacts' table.
type ContactModel struct {
	ID             uuid.UUID `gorm:"type:uuid;primaryKey"`
	FirstName      string    `gorm:"type:varchar(25);not null;index"`
	LastName       string    `gorm:"type:varchar(30);not null;index"`
	Email          string    `gorm:"type:varchar(50);not null;index"`
	PhoneNumber    string    `gorm:"type:varchar(15);not null"`
	Birthday       time.Time `gorm:"type:date"`
	AdditionalInfo string    `gorm:"type:varchar(255)"`
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

// TableName explicitly sets the table name for GORM.
func (ContactModel) TableName() string {
	return "contacts"
}

// BeforeCreate assigns a UUIDv7 primary key when none is set.
func (m *ContactModel) BeforeCreate(_ *gorm.DB) error {
	if m.ID == uuid.Nil {
		id, err := uuid.NewV7()
		if err != nil {
			return err
		}
		m.ID = id
	}

	return nil
}
