package service

import (
	"rolodex/internal/domain/entity"
)

// QRCodeService renders contacts as scannable QR images.
type QRCodeService interface {
	// GenerateContactQR renders a contact as a vCard QR code PNG, suitable for
	// scanning with a phone camera to import the contact.
	GenerateContactQR(contact *entity.Contact) ([]byte, error)
}
