package middleware

import (
	"strings"

	"rolodex/internal/delivery/http/response"
	"rolodex/internal/domain/entity"
	"rolodex/internal/usecase"

	"github.com/labstack/echo/v4"
)

// principalKey is the echo.Context key under which the authenticated user is stored.
const principalKey = "principal"

// AuthMiddleware guards routes that require an authenticated principal.
type AuthMiddleware struct {
	authUC usecase.AuthUsecase
}

// NewAuthMiddleware is the constructor for AuthMiddleware.
func NewAuthMiddleware(authUC usecase.AuthUsecase) *AuthMiddleware {
	return &AuthMiddleware{authUC: authUC}
}

// Authenticate validates the bearer access token and resolves the account it
// identifies. A missing or malformed header is rejected before the token
// service is consulted.
func (m *AuthMiddleware) Authenticate(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		authHeader := c.Request().Header.Get(echo.HeaderAuthorization)
		if authHeader == "" {
			return response.Unauthorized(c, "UNAUTHENTICATED", "Authorization header is missing")
		}

		tokenString := strings.TrimPrefix(authHeader, "Bearer ")
		if tokenString == authHeader || tokenString == "" {
			return response.Unauthorized(c, "UNAUTHENTICATED", "Invalid token format, must be Bearer token")
		}

		principal, err := m.authUC.ResolvePrincipal(c.Request().Context(), tokenString)
		if err != nil {
			return response.HandleAppError(c, err)
		}

		c.Set(principalKey, principal)

		return next(c)
	}
}

// GetPrincipal returns the authenticated user stored by Authenticate.
// The second return is false on routes where the middleware did not run.
func GetPrincipal(c echo.Context) (*entity.User, bool) {
	principal, ok := c.Get(principalKey).(*entity.User)

	return principal, ok
}
