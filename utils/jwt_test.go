package utils

import (
	"testing"
	"time"

	"educonnect/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateAndExtractToken(t *testing.T) {
	config.AppConfig.JWTSecret = "test-secret"

	token, err := GenerateToken("64a1f0c2e1b2c3d4e5f60718", "tutor", 3, time.Hour)
	require.NoError(t, err)

	claims, err := ExtractClaimsFromToken(token)
	require.NoError(t, err)
	assert.Equal(t, "64a1f0c2e1b2c3d4e5f60718", claims.UserID)
	assert.Equal(t, "tutor", claims.Role)
	assert.Equal(t, 3, claims.TokenVersion)
}

func TestExpiredTokenRejected(t *testing.T) {
	config.AppConfig.JWTSecret = "test-secret"

	token, err := GenerateToken("64a1f0c2e1b2c3d4e5f60718", "student", 0, -time.Minute)
	require.NoError(t, err)

	_, err = ExtractClaimsFromToken(token)
	assert.Error(t, err)
}

func TestTamperedTokenRejected(t *testing.T) {
	config.AppConfig.JWTSecret = "test-secret"

	token, err := GenerateToken("64a1f0c2e1b2c3d4e5f60718", "student", 0, time.Hour)
	require.NoError(t, err)

	config.AppConfig.JWTSecret = "other-secret"
	_, err = ExtractClaimsFromToken(token)
	assert.Error(t, err)
}
