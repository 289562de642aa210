package service

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// TokenService defines the interface for issuing and validating JWT tokens.
type TokenService interface {
	// GenerateToken issues a signed access token carrying the user ID and roles.
	GenerateToken(userID uuid.UUID, roles []string, secret string, ttl time.Duration) (string, error)

	// ValidateToken parses and verifies a signed token.
	ValidateToken(tokenString, secret string) (*jwt.Token, error)
}
