package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"rolodex/internal/domain/entity"
	domainerrors "rolodex/internal/domain/errors"
	mockUsecase "rolodex/internal/mocks/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newAuthTestContext(t *testing.T, authorization string) (echo.Context, *httptest.ResponseRecorder) {
	t.Helper()

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/contacts", nil)
	if authorization != "" {
		req.Header.Set(echo.HeaderAuthorization, authorization)
	}
	rec := httptest.NewRecorder()

	return e.NewContext(req, rec), rec
}

func TestAuthMiddleware_MissingHeader(t *testing.T) {
	authUC := mockUsecase.NewMockAuthUsecase(t)
	m := NewAuthMiddleware(authUC)

	c, rec := newAuthTestContext(t, "")

	nextCalled := false
	err := m.Authenticate(func(c echo.Context) error {
		nextCalled = true
		return nil
	})(c)

	require.NoError(t, err)
	assert.False(t, nextCalled)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Contains(t, rec.Body.String(), "UNAUTHENTICATED")
	assert.Contains(t, rec.Body.String(), "Authorization header is missing")
}

func TestAuthMiddleware_NotBearer(t *testing.T) {
	authUC := mockUsecase.NewMockAuthUsecase(t)
	m := NewAuthMiddleware(authUC)

	c, rec := newAuthTestContext(t, "Basic dXNlcjpwYXNz")

	nextCalled := false
	err := m.Authenticate(func(c echo.Context) error {
		nextCalled = true
		return nil
	})(c)

	require.NoError(t, err)
	assert.False(t, nextCalled)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Contains(t, rec.Body.String(), "must be Bearer token")
}

func TestAuthMiddleware_InvalidToken(t *testing.T) {
	authUC := mockUsecase.NewMockAuthUsecase(t)
	m := NewAuthMiddleware(authUC)

	c, rec := newAuthTestContext(t, "Bearer not-a-real-token")

	authUC.EXPECT().
		ResolvePrincipal(c.Request().Context(), "not-a-real-token").
		Return(nil, domainerrors.ErrUnauthenticated.WrapMessage("token is expired"))

	nextCalled := false
	err := m.Authenticate(func(c echo.Context) error {
		nextCalled = true
		return nil
	})(c)

	require.NoError(t, err)
	assert.False(t, nextCalled)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Contains(t, rec.Body.String(), "UNAUTHENTICATED")
}

func TestAuthMiddleware_ValidToken(t *testing.T) {
	authUC := mockUsecase.NewMockAuthUsecase(t)
	m := NewAuthMiddleware(authUC)

	c, rec := newAuthTestContext(t, "Bearer valid-token")

	user := &entity.User{
		ID:       uuid.New(),
		Email:    "test@example.com",
		Verified: true,
	}

	authUC.EXPECT().
		ResolvePrincipal(c.Request().Context(), "valid-token").
		Return(user, nil)

	err := m.Authenticate(func(c echo.Context) error {
		principal, ok := GetPrincipal(c)
		require.True(t, ok)
		assert.Equal(t, user, principal)

		return c.NoContent(http.StatusOK)
	})(c)

	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestGetPrincipal_NotSet(t *testing.T) {
	c, _ := newAuthTestContext(t, "")

	principal, ok := GetPrincipal(c)
	assert.False(t, ok)
	assert.Nil(t, principal)
}
