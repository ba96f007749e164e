// Package auth provides concrete implementations for authentication-related domain services.
package auth

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"rolodex/config"
	"rolodex/internal/domain/service"
)

const (
	defaultAccessTTL       = 15 * time.Minute
	defaultVerificationTTL = 24 * time.Hour
)

// jwtService is a concrete implementation of the TokenService interface using the JWT standard.
type jwtService struct {
	secret          []byte            // Secret key shared by all token purposes.
	method          jwt.SigningMethod // HMAC signing method resolved from config.
	accessTTL       time.Duration     // Time-to-live for access tokens.
	verificationTTL time.Duration     // Time-to-live for email verification tokens.
}

// NewJWTService is the constructor for jwtService.
// It takes configuration values to create a new token service instance.
func NewJWTService(cfg *config.Config) (service.TokenService, error) {
	if cfg.Token == nil || cfg.Token.Secret == "" {
		return nil, errors.New("jwt secret must be provided")
	}

	algorithm := cfg.Token.Algorithm
	if algorithm == "" {
		algorithm = "HS256"
	}
	method := jwt.GetSigningMethod(algorithm)
	if _, ok := method.(*jwt.SigningMethodHMAC); !ok {
		return nil, fmt.Errorf("unsupported jwt signing algorithm %q", algorithm)
	}

	accessTTL := cfg.Token.AccessTTL
	if accessTTL <= 0 {
		accessTTL = defaultAccessTTL
	}
	verificationTTL := cfg.Token.VerificationTTL
	if verificationTTL <= 0 {
		verificationTTL = defaultVerificationTTL
	}

	return &jwtService{
		secret:          []byte(cfg.Token.Secret),
		method:          method,
		accessTTL:       accessTTL,
		verificationTTL: verificationTTL,
	}, nil
}

// IssueAccessToken creates a short-lived token authenticating the given subject.
func (s *jwtService) IssueAccessToken(subject string) (string, error) {
	return s.issueToken(subject, service.PurposeAccess, s.accessTTL)
}

// IssueVerificationToken creates the token embedded in email confirmation links.
func (s *jwtService) IssueVerificationToken(subject string) (string, error) {
	return s.issueToken(subject, service.PurposeVerification, s.verificationTTL)
}

// Verify checks the signature, expiry and purpose of a token string.
func (s *jwtService) Verify(tokenString string, purpose service.TokenPurpose) (*service.Claims, error) {
	claims := new(service.Claims)
	token, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (any, error) {
		// Ensure the signing method matches the configured algorithm exactly.
		if token.Method.Alg() != s.method.Alg() {
			return nil, jwt.ErrSignatureInvalid
		}
		return s.secret, nil
	})
	if err != nil {
		return nil, fmt.Errorf("parse token: %w", err)
	}
	if !token.Valid {
		return nil, jwt.ErrTokenUnverifiable
	}
	if claims.Purpose != purpose {
		return nil, fmt.Errorf("token purpose %q, expected %q: %w", claims.Purpose, purpose, jwt.ErrTokenInvalidClaims)
	}
	if claims.Subject == "" {
		return nil, fmt.Errorf("token has no subject: %w", jwt.ErrTokenRequiredClaimMissing)
	}

	return claims, nil
}

// issueToken is a private helper to create a JWT with the subject, purpose and expiry claims.
func (s *jwtService) issueToken(subject string, purpose service.TokenPurpose, ttl time.Duration) (string, error) {
	now := time.Now()
	claims := &service.Claims{
		Purpose: purpose,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   subject,   // Subject (who the token is for)
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
		},
	}

	token := jwt.NewWithClaims(s.method, claims)
	return token.SignedString(s.secret)
}
