package service

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// Claims defines the custom claims carried by access and refresh tokens.
type Claims struct {
	UserID uuid.UUID
	Type   string // "access" or "refresh"
	jwt.RegisteredClaims
}

// TokenService defines the interface for generating and validating JWTs.
// This abstracts the details of token creation from the use cases.
type TokenService interface {
	// GenerateTokens creates a new access/refresh token pair for a user.
	GenerateTokens(userID uuid.UUID) (accessToken string, refreshToken string, err error)

	// ValidateAccessToken verifies an access token and returns its claims.
	ValidateAccessToken(tokenString string) (*Claims, error)

	// ValidateRefreshToken verifies a refresh token and returns its claims.
	ValidateRefreshToken(tokenString string) (*Claims, error)

	// HashToken returns the hash under which a token is persisted. Tokens
	// are never stored raw; the persisted hash is compared by exact
	// equality during rotation, which is what detects reuse.
	HashToken(token string) string

	// GetRefreshTokenDuration returns the configured refresh token lifetime.
	GetRefreshTokenDuration() time.Duration
}
