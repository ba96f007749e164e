package qrcode

import (
	"fmt"
	"strings"

	"github.com/skip2/go-qrcode"

	"rolodex/internal/domain/entity"
	"rolodex/internal/domain/service"
)

type qrcodeService struct {
	size                 int
	errorCorrectionLevel qrcode.RecoveryLevel
}

// recoveryLevels maps the usual QR level vocabulary to the library's constants.
var recoveryLevels = map[string]qrcode.RecoveryLevel{
	"L": qrcode.Low,
	"M": qrcode.Medium,
	"Q": qrcode.High,
	"H": qrcode.Highest,
}

// NewQRCodeService builds the renderer. Unknown level names fall back to M.
func NewQRCodeService(size int, errorCorrectionLevel string) service.QRCodeService {
	level, ok := recoveryLevels[errorCorrectionLevel]
	if !ok {
		level = qrcode.Medium
	}

	return &qrcodeService{size: size, errorCorrectionLevel: level}
}

// GenerateContactQR renders the contact as a vCard 3.0 QR code PNG.
func (s *qrcodeService) GenerateContactQR(contact *entity.Contact) ([]byte, error) {
	qrCode, err := qrcode.New(EncodeVCard(contact), s.errorCorrectionLevel)
	if err != nil {
		return nil, fmt.Errorf("failed to create QR code: %w", err)
	}

	pngBytes, err := qrCode.PNG(s.size)
	if err != nil {
		return nil, fmt.Errorf("failed to generate PNG: %w", err)
	}

	return pngBytes, nil
}

// EncodeVCard builds a minimal vCard 3.0 document understood by phone camera apps.
func EncodeVCard(contact *entity.Contact) string {
	lines := []string{
		"BEGIN:VCARD",
		"VERSION:3.0",
		fmt.Sprintf("N:%s;%s;;;", escapeVCard(contact.LastName), escapeVCard(contact.FirstName)),
		fmt.Sprintf("FN:%s %s", escapeVCard(contact.FirstName), escapeVCard(contact.LastName)),
		"EMAIL;TYPE=INTERNET:" + escapeVCard(contact.Email),
		"TEL;TYPE=CELL:" + escapeVCard(contact.PhoneNumber),
	}
	if !contact.Birthday.IsZero() {
		lines = append(lines, "BDAY:"+contact.Birthday.Format("2006-01-02"))
	}
	if contact.AdditionalInfo != "" {
		lines = append(lines, "NOTE:"+escapeVCard(contact.AdditionalInfo))
	}
	lines = append(lines, "END:VCARD")

	return strings.Join(lines, "\r\n") + "\r\n"
}

// escapeVCard escapes the characters the vCard grammar treats as separators.
func escapeVCard(value string) string {
	replacer := strings.NewReplacer(
		"\\", "\\\\",
		";", "\\;",
		",", "\\,",
		"\r\n", "\\n",
		"\n", "\\n",
	)

	return replacer.Replace(value)
}
