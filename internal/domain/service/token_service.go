package service

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// Claims defines the custom claims of an ID token issued by the local identity provider.
type Claims struct {
	Email         string `json:"email"`
	EmailVerified bool   `json:"email_verified"`
	jwt.RegisteredClaims
}

// TokenService defines the interface for issuing and validating ID tokens.
type TokenService interface {
	// Issue creates a signed ID token for the subject. tokenID is carried in the jti
	// claim so the issuer can revoke tokens it handed out earlier.
	Issue(subject, email, tokenID string) (token string, expiresAt time.Time, err error)

	// Validate checks the signature and expiry of a token and returns its claims.
	Validate(tokenString string) (*Claims, error)
}
