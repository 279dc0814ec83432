package auth

import (
	"testing"
	"time"

	"clipstream/config"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func testConfig() *config.Config {
	cfg := &config.Config{}
	cfg.SecretKey.Access = "test_access_secret_key_very_long_for_testing"
	cfg.SecretKey.Refresh = "test_refresh_secret_key_very_long_for_testing"

	return cfg
}

func TestJWTService_GenerateAndValidateTokens(t *testing.T) {
	jwtService, err := NewJWTService(testConfig())
	assert.NoError(t, err)
	assert.NotNil(t, jwtService)

	userID := uuid.New()

	accessToken, refreshToken, err := jwtService.GenerateTokens(userID)
	assert.NoError(t, err)
	assert.NotEmpty(t, accessToken)
	assert.NotEmpty(t, refreshToken)

	accessClaims, err := jwtService.ValidateAccessToken(accessToken)
	assert.NoError(t, err)
	assert.NotNil(t, accessClaims)
	assert.Equal(t, userID, accessClaims.UserID)
	assert.Equal(t, "access", accessClaims.Type)

	refreshClaims, err := jwtService.ValidateRefreshToken(refreshToken)
	assert.NoError(t, err)
	assert.NotNil(t, refreshClaims)
	assert.Equal(t, userID, refreshClaims.UserID)
	assert.Equal(t, "refresh", refreshClaims.Type)
}

func TestJWTService_RejectsWrongTokenType(t *testing.T) {
	jwtService, err := NewJWTService(testConfig())
	assert.NoError(t, err)

	userID := uuid.New()
	accessToken, refreshToken, err := jwtService.GenerateTokens(userID)
	assert.NoError(t, err)

	// An access token must not pass refresh validation, and vice versa.
	claims, err := jwtService.ValidateRefreshToken(accessToken)
	assert.Error(t, err)
	assert.Nil(t, claims)

	claims, err = jwtService.ValidateAccessToken(refreshToken)
	assert.Error(t, err)
	assert.Nil(t, claims)
}

func TestJWTService_InvalidToken(t *testing.T) {
	jwtService, err := NewJWTService(testConfig())
	assert.NoError(t, err)

	invalidToken := "clearly-not-a-jwt-token-format"
	claims, err := jwtService.ValidateAccessToken(invalidToken)
	assert.Error(t, err)
	assert.Nil(t, claims)
	assert.Contains(t, err.Error(), "failed to parse token structure")
}

func TestJWTService_EmptySecrets(t *testing.T) {
	cfg := &config.Config{}

	jwtService, err := NewJWTService(cfg)
	assert.Error(t, err)
	assert.Nil(t, jwtService)
	assert.Contains(t, err.Error(), "jwt secrets must be provided")
}

func TestJWTService_HashTokenIsDeterministic(t *testing.T) {
	jwtService, err := NewJWTService(testConfig())
	assert.NoError(t, err)

	hash := jwtService.HashToken("some-token")
	assert.Equal(t, hash, jwtService.HashToken("some-token"))
	assert.NotEqual(t, hash, jwtService.HashToken("other-token"))
	assert.Len(t, hash, 64) // hex sha256
}

func TestJWTService_RefreshTokenDuration(t *testing.T) {
	cfg := testConfig()
	cfg.Auth = &config.AuthConfig{RefreshTokenTTL: time.Hour * 24}

	jwtService, err := NewJWTService(cfg)
	assert.NoError(t, err)
	assert.Equal(t, time.Hour*24, jwtService.GetRefreshTokenDuration())

	jwtService, err = NewJWTService(testConfig())
	assert.NoError(t, err)
	assert.Equal(t, time.Hour*24*7, jwtService.GetRefreshTokenDuration())
}
