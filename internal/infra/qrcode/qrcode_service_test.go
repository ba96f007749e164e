package qrcode

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"rolodex/internal/domain/entity"
)

func testContact() *entity.Contact {
	return &entity.Contact{
		ID:             uuid.New(),
		FirstName:      "Ada",
		LastName:       "Lovelace",
		Email:          "ada@example.com",
		PhoneNumber:    "+441234567890",
		Birthday:       time.Date(1815, time.December, 10, 0, 0, 0, 0, time.UTC),
		AdditionalInfo: "first programmer",
	}
}

func TestNewQRCodeService_LevelNames(t *testing.T) {
	// Unknown names must still yield a working renderer via the M fallback.
	for _, level := range []string{"L", "M", "Q", "H", "bogus", ""} {
		t.Run("level "+level, func(t *testing.T) {
			service := NewQRCodeService(128, level)

			qrBytes, err := service.GenerateContactQR(testContact())
			require.NoError(t, err)
			assert.NotEmpty(t, qrBytes)
		})
	}
}

func TestQRCodeService_GenerateContactQR(t *testing.T) {
	service := NewQRCodeService(256, "M")

	qrBytes, err := service.GenerateContactQR(testContact())
	require.NoError(t, err)
	require.True(t, len(qrBytes) > 4)

	// PNG magic prefix
	assert.Equal(t, []byte{0x89, 'P', 'N', 'G'}, qrBytes[:4])
}

func TestQRCodeService_GenerateContactQR_Sizes(t *testing.T) {
	for _, size := range []int{128, 256, 512} {
		service := NewQRCodeService(size, "M")

		qrBytes, err := service.GenerateContactQR(testContact())
		require.NoError(t, err)
		assert.NotEmpty(t, qrBytes)
	}
}

func TestEncodeVCard(t *testing.T) {
	vcard := EncodeVCard(testContact())

	assert.True(t, len(vcard) > 0)
	assert.Contains(t, vcard, "BEGIN:VCARD\r\n")
	assert.Contains(t, vcard, "VERSION:3.0\r\n")
	assert.Contains(t, vcard, "N:Lovelace;Ada;;;\r\n")
	assert.Contains(t, vcard, "FN:Ada Lovelace\r\n")
	assert.Contains(t, vcard, "EMAIL;TYPE=INTERNET:ada@example.com\r\n")
	assert.Contains(t, vcard, "TEL;TYPE=CELL:+441234567890\r\n")
	assert.Contains(t, vcard, "BDAY:1815-12-10\r\n")
	assert.Contains(t, vcard, "NOTE:first programmer\r\n")
	assert.Contains(t, vcard, "END:VCARD\r\n")
}

func TestEncodeVCard_EscapesSeparators(t *testing.T) {
	contact := testContact()
	contact.LastName = "Smith; Jones"
	contact.AdditionalInfo = "met at conf,\nfollow up"

	vcard := EncodeVCard(contact)

	assert.Contains(t, vcard, `N:Smith\; Jones;Ada;;;`)
	assert.Contains(t, vcard, `NOTE:met at conf\,\nfollow up`)
}

func TestEncodeVCard_OmitsEmptyOptionalFields(t *testing.T) {
	contact := testContact()
	contact.Birthday = time.Time{}
	contact.AdditionalInfo = ""

	vcard := EncodeVCard(contact)

	assert.NotContains(t, vcard, "BDAY:")
	assert.NotContains(t, vcard, "NOTE:")
}
