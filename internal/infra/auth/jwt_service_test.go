package auth

import (
	"testing"
	"time"

	"gemmarket/config"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testJWTConfig(secret string) *config.Config {
	cfg := &config.Config{
		Auth: &config.AuthConfig{AccessTokenTTL: time.Minute},
	}
	cfg.SecretKey.Access = secret

	return cfg
}

func TestJWTService_GenerateAndValidateAccessToken(t *testing.T) {
	secret := "test_access_secret_key_very_long_for_testing"
	jwtService, err := NewJWTService(testJWTConfig(secret))
	require.NoError(t, err)

	userID := uuid.New()
	roles := []string{"user", "merchant"}

	tokenString, err := jwtService.GenerateAccessToken(userID, roles)
	require.NoError(t, err)
	assert.NotEmpty(t, tokenString)

	token, err := jwtService.ValidateToken(tokenString, secret)
	require.NoError(t, err)
	assert.True(t, token.Valid)

	claims, ok := token.Claims.(jwt.MapClaims)
	require.True(t, ok)
	assert.Equal(t, userID.String(), claims["sub"])

	claimedRoles, ok := claims["roles"].([]any)
	require.True(t, ok)
	assert.Equal(t, []any{"user", "merchant"}, claimedRoles)
}

func TestJWTService_ValidateWithWrongSecret(t *testing.T) {
	secret := "test_access_secret_key_very_long_for_testing"
	jwtService, err := NewJWTService(testJWTConfig(secret))
	require.NoError(t, err)

	tokenString, err := jwtService.GenerateAccessToken(uuid.New(), []string{"user"})
	require.NoError(t, err)

	_, err = jwtService.ValidateToken(tokenString, "a_different_secret")
	assert.Error(t, err)
}

func TestJWTService_ValidateGarbageToken(t *testing.T) {
	secret := "test_access_secret_key_very_long_for_testing"
	jwtService, err := NewJWTService(testJWTConfig(secret))
	require.NoError(t, err)

	_, err = jwtService.ValidateToken("not.a.token", secret)
	assert.Error(t, err)
}

func TestJWTService_RequiresSecret(t *testing.T) {
	cfg := &config.Config{Auth: &config.AuthConfig{}}

	_, err := NewJWTService(cfg)
	assert.Error(t, err)
}
