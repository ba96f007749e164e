// Package usecase contains the application-specific business rules.
// It orchestrates the domain layer to perform tasks.
package usecase

import (
	"context"

	"rolodex/internal/domain/entity"
)

// --- Input DTOs ---

// RegisterInput defines the data required to register a new account.
type RegisterInput struct {
	Email    string
	Password string
}

// LoginInput defines the data required to log in.
type LoginInput struct {
	Email    string
	Password string
}

// --- Output DTOs ---

// RegisterOutput returns the newly created account.
type RegisterOutput struct {
	User *entity.User
}

// LoginOutput carries the bearer token issued after a successful login.
type LoginOutput struct {
	AccessToken string
	TokenType   string
}

// AuthUsecase defines the interface for authentication business operations.
// This is the contract that the delivery layer (e.g., API handlers) will depend on.
type AuthUsecase interface {
	// Register creates a new unverified account and sends the confirmation
	// mail. A mail delivery failure does not fail the registration.
	Register(ctx context.Context, input RegisterInput) (*RegisterOutput, error)

	// Authenticate checks an email/password pair and returns the matching user.
	// Unknown email and wrong password are indistinguishable to the caller.
	Authenticate(ctx context.Context, input LoginInput) (*entity.User, error)

	// Login authenticates the credentials and issues a bearer access token.
	Login(ctx context.Context, input LoginInput) (*LoginOutput, error)

	// ResolvePrincipal exchanges a bearer access token for the user it
	// identifies. Any token or lookup failure reports ErrUnauthenticated.
	ResolvePrincipal(ctx context.Context, token string) (*entity.User, error)

	// VerifyEmail consumes an email confirmation token and marks the account
	// verified. Verifying an already verified account succeeds without change.
	VerifyEmail(ctx context.Context, token string) (*entity.User, error)
}
