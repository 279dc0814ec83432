package middleware

import (
	"strings"

	"clipstream/internal/delivery/http/response"
	"clipstream/internal/domain/service"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

// KeyUserID is the echo.Context key under which the authenticated user's ID
// is stored.
const KeyUserID = "userID"

// AuthMiddleware provides middleware for JWT authentication.
type AuthMiddleware struct {
	tokenSvc service.TokenService
}

// NewAuthMiddleware is the constructor for AuthMiddleware.
func NewAuthMiddleware(tokenSvc service.TokenService) *AuthMiddleware {
	return &AuthMiddleware{tokenSvc: tokenSvc}
}

// Authenticate validates the bearer access token and stores the user ID on
// the context. Requests without a valid token are rejected.
func (m *AuthMiddleware) Authenticate(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		userID, errMsg := m.resolveUserID(c)
		if errMsg != "" {
			return response.Unauthorized(c, "UNAUTHENTICATED", errMsg)
		}

		c.Set(KeyUserID, userID)

		return next(c)
	}
}

// OptionalAuthenticate resolves the user ID when a valid bearer token is
// present and proceeds anonymously otherwise. Used on read endpoints whose
// projections carry viewer-specific flags.
func (m *AuthMiddleware) OptionalAuthenticate(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		if userID, errMsg := m.resolveUserID(c); errMsg == "" {
			c.Set(KeyUserID, userID)
		}

		return next(c)
	}
}

func (m *AuthMiddleware) resolveUserID(c echo.Context) (uuid.UUID, string) {
	authHeader := c.Request().Header.Get("Authorization")
	if authHeader == "" {
		return uuid.Nil, "Authorization header is missing"
	}

	tokenString := strings.TrimPrefix(authHeader, "Bearer ")
	if tokenString == authHeader {
		return uuid.Nil, "Invalid token format, must be Bearer token"
	}

	claims, err := m.tokenSvc.ValidateAccessToken(tokenString)
	if err != nil {
		return uuid.Nil, "Invalid or expired token"
	}

	return claims.UserID, ""
}

// UserID extracts the authenticated user's ID set by Authenticate.
func UserID(c echo.Context) (uuid.UUID, bool) {
	userID, ok := c.Get(KeyUserID).(uuid.UUID)

	return userID, ok
}

// OptionalUserID returns a pointer to the viewer's ID, or nil for anonymous
// requests.
func OptionalUserID(c echo.Context) *uuid.UUID {
	if userID, ok := UserID(c); ok {
		return &userID
	}

	return nil
}
