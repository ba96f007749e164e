package handler

import (
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"rolodex/internal/delivery/http/middleware"
	"rolodex/internal/delivery/http/response"
	"rolodex/internal/domain/entity"
	"rolodex/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// birthdayLayout is the wire format for contact birthdays.
const birthdayLayout = "2006-01-02"

// ContactHandlerParams holds dependencies for ContactHandler, injected by Fx.
type ContactHandlerParams struct {
	fx.In

	ContactUC usecase.ContactUsecase
	Logger    *slog.Logger
}

// ContactHandler holds dependencies for contact-related handlers
type ContactHandler struct {
	contactUC usecase.ContactUsecase
	logger    *slog.Logger
}

// NewContactHandler is the constructor for ContactHandler
func NewContactHandler(params ContactHandlerParams) *ContactHandler {
	return &ContactHandler{
		contactUC: params.ContactUC,
		logger:    params.Logger,
	}
}

// ContactRequest represents the request body for creating or replacing a contact.
// Updates carry the complete document; absent optional fields reset to empty.
type ContactRequest struct {
	FirstName      string `json:"first_name" validate:"required,max=25"`
	LastName       string `json:"last_name" validate:"required,max=30"`
	Email          string `json:"email" validate:"required,email,max=50"`
	PhoneNumber    string `json:"phone_number" validate:"required,max=15"`
	Birthday       string `json:"birthday" validate:"required"`
	AdditionalInfo string `json:"additional_info" validate:"max=255"`
}

// ContactView is the API projection of a contact
type ContactView struct {
	ID             uuid.UUID `json:"id"`
	FirstName      string    `json:"first_name"`
	LastName       string    `json:"last_name"`
	Email          string    `json:"email"`
	PhoneNumber    string    `json:"phone_number"`
	Birthday       string    `json:"birthday"`
	AdditionalInfo string    `json:"additional_info,omitempty"`
	CreatedAt      time.Time `json:"created_at"`
	UpdatedAt      time.Time `json:"updated_at"`
}

func newContactView(contact *entity.Contact) ContactView {
	return ContactView{
		ID:             contact.ID,
		FirstName:      contact.FirstName,
		LastName:       contact.LastName,
		Email:          contact.Email,
		PhoneNumber:    contact.PhoneNumber,
		Birthday:       contact.Birthday.Format(birthdayLayout),
		AdditionalInfo: contact.AdditionalInfo,
		CreatedAt:      contact.CreatedAt,
		UpdatedAt:      contact.UpdatedAt,
	}
}

func newContactViews(contacts []*entity.Contact) []ContactView {
	views := make([]ContactView, 0, len(contacts))
	for _, contact := range contacts {
		views = append(views, newContactView(contact))
	}

	return views
}

// toInput parses the wire representation into the usecase input.
func (r ContactRequest) toInput() (usecase.ContactInput, error) {
	birthday, err := time.Parse(birthdayLayout, r.Birthday)
	if err != nil {
		return usecase.ContactInput{}, err
	}

	return usecase.ContactInput{
		FirstName:      r.FirstName,
		LastName:       r.LastName,
		Email:          r.Email,
		PhoneNumber:    r.PhoneNumber,
		Birthday:       birthday,
		AdditionalInfo: r.AdditionalInfo,
	}, nil
}

// parsePagination reads skip/limit query parameters. Absent or malformed
// values come back as zero; the usecase applies the defaults.
func parsePagination(c echo.Context) (int, int) {
	skip, _ := strconv.Atoi(c.QueryParam("skip"))
	limit, _ := strconv.Atoi(c.QueryParam("limit"))

	return skip, limit
}

// ListContacts handles retrieving a page of contacts
func (h *ContactHandler) ListContacts(c echo.Context) error {
	if _, ok := middleware.GetPrincipal(c); !ok {
		return response.Unauthorized(c, "UNAUTHENTICATED", "Authentication required")
	}

	skip, limit := parsePagination(c)

	contacts, err := h.contactUC.ListContacts(c.Request().Context(), usecase.ListContactsInput{
		Skip:  skip,
		Limit: limit,
	})
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, newContactViews(contacts))
}

// GetContact handles retrieving a single contact by ID
func (h *ContactHandler) GetContact(c echo.Context) error {
	if _, ok := middleware.GetPrincipal(c); !ok {
		return response.Unauthorized(c, "UNAUTHENTICATED", "Authentication required")
	}

	contactID, err := uuid.Parse(c.Param("contactId"))
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid contact ID")
	}

	contact, err := h.contactUC.GetContact(c.Request().Context(), contactID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, newContactView(contact))
}

// CreateContact handles creating a new contact
func (h *ContactHandler) CreateContact(c echo.Context) error {
	if _, ok := middleware.GetPrincipal(c); !ok {
		return response.Unauthorized(c, "UNAUTHENTICATED", "Authentication required")
	}

	var req ContactRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid contact input")
	}

	if err := c.Validate(&req); err != nil {
		return response.BadRequest(c, "VALIDATION_ERROR", err.Error())
	}

	input, err := req.toInput()
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid birthday, expected YYYY-MM-DD")
	}

	contact, err := h.contactUC.CreateContact(c.Request().Context(), input)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusCreated, newContactView(contact))
}

// UpdateContact handles replacing an existing contact
func (h *ContactHandler) UpdateContact(c echo.Context) error {
	if _, ok := middleware.GetPrincipal(c); !ok {
		return response.Unauthorized(c, "UNAUTHENTICATED", "Authentication required")
	}

	contactID, err := uuid.Parse(c.Param("contactId"))
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid contact ID")
	}

	var req ContactRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid contact input")
	}

	if err := c.Validate(&req); err != nil {
		return response.BadRequest(c, "VALIDATION_ERROR", err.Error())
	}

	input, err := req.toInput()
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid birthday, expected YYYY-MM-DD")
	}

	contact, err := h.contactUC.UpdateContact(c.Request().Context(), contactID, input)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, newContactView(contact))
}

// DeleteContact handles removing a contact. The deleted record is echoed back.
func (h *ContactHandler) DeleteContact(c echo.Context) error {
	if _, ok := middleware.GetPrincipal(c); !ok {
		return response.Unauthorized(c, "UNAUTHENTICATED", "Authentication required")
	}

	contactID, err := uuid.Parse(c.Param("contactId"))
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid contact ID")
	}

	contact, err := h.contactUC.DeleteContact(c.Request().Context(), contactID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, newContactView(contact))
}

// ContactQR handles rendering a contact as a vCard QR code
func (h *ContactHandler) ContactQR(c echo.Context) error {
	if _, ok := middleware.GetPrincipal(c); !ok {
		return response.Unauthorized(c, "UNAUTHENTICATED", "Authentication required")
	}

	contactID, err := uuid.Parse(c.Param("contactId"))
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid contact ID")
	}

	qrCode, err := h.contactUC.ContactQR(c.Request().Context(), contactID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	// Return QR code as PNG image
	c.Response().Header().Set("Content-Disposition", "inline; filename=contact-qr.png")

	return c.Blob(http.StatusOK, "image/png", qrCode)
}
