package handler

import (
	"io"
	"log/slog"
	"net/http"
	"testing"
	"time"

	"rolodex/internal/domain/entity"
	domainerrors "rolodex/internal/domain/errors"
	mockUsecase "rolodex/internal/mocks/usecase"
	"rolodex/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestContactHandler(t *testing.T) (*ContactHandler, *mockUsecase.MockContactUsecase) {
	contactUC := mockUsecase.NewMockContactUsecase(t)
	h := NewContactHandler(ContactHandlerParams{
		ContactUC: contactUC,
		Logger:    slog.New(slog.NewTextHandler(io.Discard, nil)),
	})

	return h, contactUC
}

// authenticate plants a principal the way the auth middleware does after a
// successful token check.
func authenticate(c echo.Context) {
	c.Set("principal", &entity.User{
		ID:       uuid.New(),
		Email:    "principal@example.com",
		Verified: true,
	})
}

func newStoredContact() *entity.Contact {
	return &entity.Contact{
		ID:          uuid.New(),
		FirstName:   "Ada",
		LastName:    "Lovelace",
		Email:       "ada@example.com",
		PhoneNumber: "+442079460000",
		Birthday:    time.Date(1815, time.December, 10, 0, 0, 0, 0, time.UTC),
		CreatedAt:   time.Now(),
		UpdatedAt:   time.Now(),
	}
}

const validContactBody = `{
	"first_name": "Ada",
	"last_name": "Lovelace",
	"email": "ada@example.com",
	"phone_number": "+442079460000",
	"birthday": "1815-12-10"
}`

func TestContactHandler_ListContacts_Success(t *testing.T) {
	h, contactUC := newTestContactHandler(t)

	c, rec := newEchoTestContext(http.MethodGet, "/contacts?skip=5&limit=2", "")
	authenticate(c)

	contacts := []*entity.Contact{newStoredContact(), newStoredContact()}
	contacts[1].FirstName = "Charles"

	contactUC.EXPECT().
		ListContacts(c.Request().Context(), usecase.ListContactsInput{Skip: 5, Limit: 2}).
		Return(contacts, nil)

	err := h.ListContacts(c)

	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "Ada")
	assert.Contains(t, rec.Body.String(), "Charles")
	assert.Contains(t, rec.Body.String(), `"birthday":"1815-12-10"`)
}

func TestContactHandler_ListContacts_Unauthenticated(t *testing.T) {
	h, _ := newTestContactHandler(t)

	c, rec := newEchoTestContext(http.MethodGet, "/contacts", "")

	err := h.ListContacts(c)

	require.NoError(t, err)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Contains(t, rec.Body.String(), "UNAUTHENTICATED")
}

func TestContactHandler_GetContact_Success(t *testing.T) {
	h, contactUC := newTestContactHandler(t)

	contact := newStoredContact()

	c, rec := newEchoTestContext(http.MethodGet, "/contacts/"+contact.ID.String(), "")
	c.SetParamNames("contactId")
	c.SetParamValues(contact.ID.String())
	authenticate(c)

	contactUC.EXPECT().
		GetContact(c.Request().Context(), contact.ID).
		Return(contact, nil)

	err := h.GetContact(c)

	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), contact.ID.String())
	assert.Contains(t, rec.Body.String(), "ada@example.com")
}

func TestContactHandler_GetContact_InvalidID(t *testing.T) {
	h, _ := newTestContactHandler(t)

	c, rec := newEchoTestContext(http.MethodGet, "/contacts/not-a-uuid", "")
	c.SetParamNames("contactId")
	c.SetParamValues("not-a-uuid")
	authenticate(c)

	err := h.GetContact(c)

	require.NoError(t, err)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "INVALID_ID")
}

func TestContactHandler_GetContact_NotFound(t *testing.T) {
	h, contactUC := newTestContactHandler(t)

	id := uuid.New()

	c, rec := newEchoTestContext(http.MethodGet, "/contacts/"+id.String(), "")
	c.SetParamNames("contactId")
	c.SetParamValues(id.String())
	authenticate(c)

	contactUC.EXPECT().
		GetContact(c.Request().Context(), id).
		Return(nil, domainerrors.ErrContactNotFound.WrapMessage("contact does not exist"))

	err := h.GetContact(c)

	require.NoError(t, err)
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Contains(t, rec.Body.String(), "CONTACT_NOT_FOUND")
}

func TestContactHandler_CreateContact_Success(t *testing.T) {
	h, contactUC := newTestContactHandler(t)

	c, rec := newEchoTestContext(http.MethodPost, "/contacts", validContactBody)
	authenticate(c)

	created := newStoredContact()

	contactUC.EXPECT().
		CreateContact(c.Request().Context(), usecase.ContactInput{
			FirstName:   "Ada",
			LastName:    "Lovelace",
			Email:       "ada@example.com",
			PhoneNumber: "+442079460000",
			Birthday:    time.Date(1815, time.December, 10, 0, 0, 0, 0, time.UTC),
		}).
		Return(created, nil)

	err := h.CreateContact(c)

	require.NoError(t, err)
	assert.Equal(t, http.StatusCreated, rec.Code)
	assert.Contains(t, rec.Body.String(), created.ID.String())
	assert.Contains(t, rec.Body.String(), `"birthday":"1815-12-10"`)
}

func TestContactHandler_CreateContact_ValidationError(t *testing.T) {
	h, _ := newTestContactHandler(t)

	c, rec := newEchoTestContext(http.MethodPost, "/contacts",
		`{"first_name":"","last_name":"Lovelace","email":"ada@example.com","phone_number":"+442079460000","birthday":"1815-12-10"}`)
	authenticate(c)

	err := h.CreateContact(c)

	require.NoError(t, err)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "VALIDATION_ERROR")
}

func TestContactHandler_CreateContact_InvalidBirthday(t *testing.T) {
	h, _ := newTestContactHandler(t)

	c, rec := newEchoTestContext(http.MethodPost, "/contacts",
		`{"first_name":"Ada","last_name":"Lovelace","email":"ada@example.com","phone_number":"+442079460000","birthday":"10/12/1815"}`)
	authenticate(c)

	err := h.CreateContact(c)

	require.NoError(t, err)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "Invalid birthday")
}

func TestContactHandler_UpdateContact_Success(t *testing.T) {
	h, contactUC := newTestContactHandler(t)

	id := uuid.New()

	c, rec := newEchoTestContext(http.MethodPut, "/contacts/"+id.String(), validContactBody)
	c.SetParamNames("contactId")
	c.SetParamValues(id.String())
	authenticate(c)

	updated := newStoredContact()
	updated.ID = id

	contactUC.EXPECT().
		UpdateContact(c.Request().Context(), id, usecase.ContactInput{
			FirstName:   "Ada",
			LastName:    "Lovelace",
			Email:       "ada@example.com",
			PhoneNumber: "+442079460000",
			Birthday:    time.Date(1815, time.December, 10, 0, 0, 0, 0, time.UTC),
		}).
		Return(updated, nil)

	err := h.UpdateContact(c)

	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), id.String())
}

func TestContactHandler_UpdateContact_NotFound(t *testing.T) {
	h, contactUC := newTestContactHandler(t)

	id := uuid.New()

	c, rec := newEchoTestContext(http.MethodPut, "/contacts/"+id.String(), validContactBody)
	c.SetParamNames("contactId")
	c.SetParamValues(id.String())
	authenticate(c)

	contactUC.EXPECT().
		UpdateContact(c.Request().Context(), id, usecase.ContactInput{
			FirstName:   "Ada",
			LastName:    "Lovelace",
			Email:       "ada@example.com",
			PhoneNumber: "+442079460000",
			Birthday:    time.Date(1815, time.December, 10, 0, 0, 0, 0, time.UTC),
		}).
		Return(nil, domainerrors.ErrContactNotFound.WrapMessage("contact does not exist"))

	err := h.UpdateContact(c)

	require.NoError(t, err)
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Contains(t, rec.Body.String(), "CONTACT_NOT_FOUND")
}

func TestContactHandler_DeleteContact_Success(t *testing.T) {
	h, contactUC := newTestContactHandler(t)

	contact := newStoredContact()

	c, rec := newEchoTestContext(http.MethodDelete, "/contacts/"+contact.ID.String(), "")
	c.SetParamNames("contactId")
	c.SetParamValues(contact.ID.String())
	authenticate(c)

	contactUC.EXPECT().
		DeleteContact(c.Request().Context(), contact.ID).
		Return(contact, nil)

	err := h.DeleteContact(c)

	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, rec.Code)
	// The deleted record is echoed back
	assert.Contains(t, rec.Body.String(), contact.ID.String())
	assert.Contains(t, rec.Body.String(), "ada@example.com")
}

func TestContactHandler_ContactQR_Success(t *testing.T) {
	h, contactUC := newTestContactHandler(t)

	id := uuid.New()
	png := []byte{0x89, 0x50, 0x4E, 0x47, 0x0D, 0x0A, 0x1A, 0x0A}

	c, rec := newEchoTestContext(http.MethodGet, "/contacts/"+id.String()+"/qrcode", "")
	c.SetParamNames("contactId")
	c.SetParamValues(id.String())
	authenticate(c)

	contactUC.EXPECT().
		ContactQR(c.Request().Context(), id).
		Return(png, nil)

	err := h.ContactQR(c)

	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "image/png", rec.Header().Get(echo.HeaderContentType))
	assert.Equal(t, "inline; filename=contact-qr.png", rec.Header().Get("Content-Disposition"))
	assert.Equal(t, png, rec.Body.Bytes())
}

func TestContactHandler_ContactQR_Unauthenticated(t *testing.T) {
	h, _ := newTestContactHandler(t)

	id := uuid.New()

	c, rec := newEchoTestContext(http.MethodGet, "/contacts/"+id.String()+"/qrcode", "")
	c.SetParamNames("contactId")
	c.SetParamValues(id.String())

	err := h.ContactQR(c)

	require.NoError(t, err)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Contains(t, rec.Body.String(), "UNAUTHENTICATED")
}
