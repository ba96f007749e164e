package handler

import (
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"rolodex/internal/delivery/http/validator"
	"rolodex/internal/domain/entity"
	domainerrors "rolodex/internal/domain/errors"
	mockUsecase "rolodex/internal/mocks/usecase"
	"rolodex/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newEchoTestContext(method, target, body string) (echo.Context, *httptest.ResponseRecorder) {
	e := echo.New()
	e.Validator = validator.New()

	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, target, reader)
	if body != "" {
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	rec := httptest.NewRecorder()

	return e.NewContext(req, rec), rec
}

func newTestAuthHandler(t *testing.T) (*AuthHandler, *mockUsecase.MockAuthUsecase) {
	authUC := mockUsecase.NewMockAuthUsecase(t)
	h := NewAuthHandler(AuthHandlerParams{
		AuthUC: authUC,
		Logger: slog.New(slog.NewTextHandler(io.Discard, nil)),
	})

	return h, authUC
}

func TestAuthHandler_Register_Success(t *testing.T) {
	h, authUC := newTestAuthHandler(t)

	c, rec := newEchoTestContext(http.MethodPost, "/register",
		`{"email":"new@example.com","password":"Password123!"}`)

	user := &entity.User{
		ID:        uuid.New(),
		Email:     "new@example.com",
		Verified:  false,
		CreatedAt: time.Now(),
	}

	authUC.EXPECT().
		Register(c.Request().Context(), usecase.RegisterInput{
			Email:    "new@example.com",
			Password: "Password123!",
		}).
		Return(&usecase.RegisterOutput{User: user}, nil)

	err := h.Register(c)

	require.NoError(t, err)
	assert.Equal(t, http.StatusCreated, rec.Code)
	assert.Contains(t, rec.Body.String(), "new@example.com")
	assert.Contains(t, rec.Body.String(), `"verified":false`)
	// The password hash must never appear in a response
	assert.NotContains(t, rec.Body.String(), "password")
}

func TestAuthHandler_Register_ValidationError(t *testing.T) {
	h, _ := newTestAuthHandler(t)

	c, rec := newEchoTestContext(http.MethodPost, "/register",
		`{"email":"not-an-email","password":"Password123!"}`)

	err := h.Register(c)

	require.NoError(t, err)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "VALIDATION_ERROR")
}

func TestAuthHandler_Register_DuplicateEmail(t *testing.T) {
	h, authUC := newTestAuthHandler(t)

	c, rec := newEchoTestContext(http.MethodPost, "/register",
		`{"email":"taken@example.com","password":"Password123!"}`)

	authUC.EXPECT().
		Register(c.Request().Context(), usecase.RegisterInput{
			Email:    "taken@example.com",
			Password: "Password123!",
		}).
		Return(nil, domainerrors.ErrDuplicateEmail.WrapMessage("email already registered"))

	err := h.Register(c)

	require.NoError(t, err)
	assert.Equal(t, http.StatusConflict, rec.Code)
	assert.Contains(t, rec.Body.String(), "EMAIL_ALREADY_REGISTERED")
}

func TestAuthHandler_Login_Success(t *testing.T) {
	h, authUC := newTestAuthHandler(t)

	c, rec := newEchoTestContext(http.MethodPost, "/token",
		`{"email":"test@example.com","password":"Password123!"}`)

	authUC.EXPECT().
		Login(c.Request().Context(), usecase.LoginInput{
			Email:    "test@example.com",
			Password: "Password123!",
		}).
		Return(&usecase.LoginOutput{AccessToken: "signed-token", TokenType: "bearer"}, nil)

	err := h.Login(c)

	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"access_token":"signed-token"`)
	assert.Contains(t, rec.Body.String(), `"token_type":"bearer"`)
}

func TestAuthHandler_Login_InvalidCredentials(t *testing.T) {
	h, authUC := newTestAuthHandler(t)

	c, rec := newEchoTestContext(http.MethodPost, "/token",
		`{"email":"test@example.com","password":"wrong"}`)

	authUC.EXPECT().
		Login(c.Request().Context(), usecase.LoginInput{
			Email:    "test@example.com",
			Password: "wrong",
		}).
		Return(nil, domainerrors.ErrInvalidCredentials.WrapMessage("password mismatch"))

	err := h.Login(c)

	require.NoError(t, err)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Contains(t, rec.Body.String(), "INVALID_CREDENTIALS")
	// The response must not disclose which credential was wrong
	assert.NotContains(t, rec.Body.String(), "password mismatch")
}

func TestAuthHandler_VerifyEmail_Success(t *testing.T) {
	h, authUC := newTestAuthHandler(t)

	c, rec := newEchoTestContext(http.MethodGet, "/verify_email?token=signed-verification-token", "")

	user := &entity.User{
		ID:       uuid.New(),
		Email:    "test@example.com",
		Verified: true,
	}

	authUC.EXPECT().
		VerifyEmail(c.Request().Context(), "signed-verification-token").
		Return(user, nil)

	err := h.VerifyEmail(c)

	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"verified":true`)
}

func TestAuthHandler_VerifyEmail_MissingToken(t *testing.T) {
	h, _ := newTestAuthHandler(t)

	c, rec := newEchoTestContext(http.MethodGet, "/verify_email", "")

	err := h.VerifyEmail(c)

	require.NoError(t, err)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "Verification token is missing")
}

func TestAuthHandler_VerifyEmail_InvalidToken(t *testing.T) {
	h, authUC := newTestAuthHandler(t)

	c, rec := newEchoTestContext(http.MethodGet, "/verify_email?token=garbage", "")

	authUC.EXPECT().
		VerifyEmail(c.Request().Context(), "garbage").
		Return(nil, domainerrors.ErrInvalidToken.WrapMessage("signature is invalid"))

	err := h.VerifyEmail(c)

	require.NoError(t, err)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "INVALID_TOKEN")
}

func TestHealthCheck(t *testing.T) {
	c, rec := newEchoTestContext(http.MethodGet, "/health", "")

	err := HealthCheck(c)

	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"status":"ok"`)
}
