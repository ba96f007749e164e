package auth

import (
	"testing"
	"time"

	"rolodex/config"
	"rolodex/internal/domain/service"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
)

func newTestTokenConfig() *config.Config {
	return &config.Config{
		Token: &config.TokenConfig{
			Secret:          "test_secret_key_very_long_for_testing",
			AccessTTL:       15 * time.Minute,
			VerificationTTL: 24 * time.Hour,
		},
	}
}

func TestJWTService_IssueAndVerifyTokens(t *testing.T) {
	jwtService, err := NewJWTService(newTestTokenConfig())
	assert.NoError(t, err)
	assert.NotNil(t, jwtService)

	subject := "test@example.com"

	// Issue tokens for both purposes
	accessToken, err := jwtService.IssueAccessToken(subject)
	assert.NoError(t, err)
	assert.NotEmpty(t, accessToken)

	verificationToken, err := jwtService.IssueVerificationToken(subject)
	assert.NoError(t, err)
	assert.NotEmpty(t, verificationToken)

	// Verify access token
	accessClaims, err := jwtService.Verify(accessToken, service.PurposeAccess)
	assert.NoError(t, err)
	assert.NotNil(t, accessClaims)
	assert.Equal(t, subject, accessClaims.Subject)
	assert.Equal(t, service.PurposeAccess, accessClaims.Purpose)
	assert.True(t, accessClaims.ExpiresAt.After(time.Now()))

	// Verify verification token
	verificationClaims, err := jwtService.Verify(verificationToken, service.PurposeVerification)
	assert.NoError(t, err)
	assert.NotNil(t, verificationClaims)
	assert.Equal(t, subject, verificationClaims.Subject)
	assert.Equal(t, service.PurposeVerification, verificationClaims.Purpose)
}

func TestJWTService_PurposeMismatch(t *testing.T) {
	jwtService, err := NewJWTService(newTestTokenConfig())
	assert.NoError(t, err)

	subject := "test@example.com"

	accessToken, err := jwtService.IssueAccessToken(subject)
	assert.NoError(t, err)

	verificationToken, err := jwtService.IssueVerificationToken(subject)
	assert.NoError(t, err)

	// An access token must not pass email verification
	claims, err := jwtService.Verify(accessToken, service.PurposeVerification)
	assert.Error(t, err)
	assert.Nil(t, claims)
	assert.Contains(t, err.Error(), "token purpose")

	// A verification token must not authenticate API requests
	claims, err = jwtService.Verify(verificationToken, service.PurposeAccess)
	assert.Error(t, err)
	assert.Nil(t, claims)
	assert.Contains(t, err.Error(), "token purpose")
}

func TestJWTService_InvalidToken(t *testing.T) {
	jwtService, err := NewJWTService(newTestTokenConfig())
	assert.NoError(t, err)

	// Test invalid token - using clearly non-JWT format
	invalidToken := "clearly-not-a-jwt-token-format"
	claims, err := jwtService.Verify(invalidToken, service.PurposeAccess)
	assert.Error(t, err)
	assert.Nil(t, claims)
	assert.Contains(t, err.Error(), "parse token")
}

func TestJWTService_WrongSecret(t *testing.T) {
	jwtService, err := NewJWTService(newTestTokenConfig())
	assert.NoError(t, err)

	otherCfg := newTestTokenConfig()
	otherCfg.Token.Secret = "a_completely_different_secret_key"
	otherService, err := NewJWTService(otherCfg)
	assert.NoError(t, err)

	token, err := jwtService.IssueAccessToken("test@example.com")
	assert.NoError(t, err)

	claims, err := otherService.Verify(token, service.PurposeAccess)
	assert.Error(t, err)
	assert.Nil(t, claims)
	assert.ErrorIs(t, err, jwt.ErrSignatureInvalid)
}

func TestJWTService_ExpiredToken(t *testing.T) {
	cfg := newTestTokenConfig()
	cfg.Token.AccessTTL = time.Nanosecond

	jwtService, err := NewJWTService(cfg)
	assert.NoError(t, err)

	token, err := jwtService.IssueAccessToken("test@example.com")
	assert.NoError(t, err)

	claims, err := jwtService.Verify(token, service.PurposeAccess)
	assert.Error(t, err)
	assert.Nil(t, claims)
	assert.ErrorIs(t, err, jwt.ErrTokenExpired)
}

func TestJWTService_EmptySubject(t *testing.T) {
	jwtService, err := NewJWTService(newTestTokenConfig())
	assert.NoError(t, err)

	token, err := jwtService.IssueAccessToken("")
	assert.NoError(t, err)

	claims, err := jwtService.Verify(token, service.PurposeAccess)
	assert.Error(t, err)
	assert.Nil(t, claims)
	assert.Contains(t, err.Error(), "token has no subject")
}

func TestJWTService_MissingSecret(t *testing.T) {
	// Should fail to create service without a signing secret
	jwtService, err := NewJWTService(&config.Config{})
	assert.Error(t, err)
	assert.Nil(t, jwtService)
	assert.Contains(t, err.Error(), "jwt secret must be provided")

	jwtService, err = NewJWTService(&config.Config{Token: &config.TokenConfig{}})
	assert.Error(t, err)
	assert.Nil(t, jwtService)
}

func TestJWTService_UnsupportedAlgorithm(t *testing.T) {
	cfg := newTestTokenConfig()
	cfg.Token.Algorithm = "RS256"

	jwtService, err := NewJWTService(cfg)
	assert.Error(t, err)
	assert.Nil(t, jwtService)
	assert.Contains(t, err.Error(), "unsupported jwt signing algorithm")
}

func TestJWTService_AlgorithmConfig(t *testing.T) {
	cfg := newTestTokenConfig()
	cfg.Token.Algorithm = "HS384"

	jwtService, err := NewJWTService(cfg)
	assert.NoError(t, err)

	token, err := jwtService.IssueAccessToken("test@example.com")
	assert.NoError(t, err)

	claims, err := jwtService.Verify(token, service.PurposeAccess)
	assert.NoError(t, err)
	assert.Equal(t, "test@example.com", claims.Subject)
}
