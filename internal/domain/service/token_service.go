package service

import (
	"github.com/golang-jwt/jwt/v5"
)

// TokenPurpose tags a token with the single flow it is valid for. A
// verification token presented as an access token must fail, and vice versa.
type TokenPurpose string

const (
	// PurposeAccess marks short-lived tokens that authenticate API requests.
	PurposeAccess TokenPurpose = "access"

	// PurposeVerification marks tokens embedded in email confirmation links.
	PurposeVerification TokenPurpose = "verification"
)

// Claims defines the custom claims carried by every token issued by this
// service. The registered subject claim holds the user's email.
type Claims struct {
	Purpose TokenPurpose `json:"purpose"`
	jwt.RegisteredClaims
}

// TokenService defines the interface for issuing and verifying signed, time-limited tokens.
// This abstracts the details of token creation from the use cases.
type TokenService interface {
	// IssueAccessToken creates a short-lived token authenticating the given subject.
	IssueAccessToken(subject string) (string, error)

	// IssueVerificationToken creates a longer-lived token for the email confirmation link.
	IssueVerificationToken(subject string) (string, error)

	// Verify checks the signature, expiry and purpose of a token string and
	// returns its claims. Tokens issued for a different purpose are rejected.
	Verify(tokenString string, purpose TokenPurpose) (*Claims, error)
}
