package jwtPkg

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSign(t *testing.T) {
	t.Setenv("JWT_MANAGEMENT_TOKEN_SECRET", "test-secret")

	token, expiredAt, err := Sign(map[string]interface{}{
		"sub":   "ops-cli",
		"scope": "management",
	}, time.Hour)
	require.NoError(t, err)
	assert.NotEmpty(t, token)
	assert.Greater(t, expiredAt, time.Now().Unix())

	parsed, err := jwt.Parse(token, func(t *jwt.Token) (interface{}, error) {
		return []byte("test-secret"), nil
	})
	require.NoError(t, err)
	require.True(t, parsed.Valid)

	claims, ok := parsed.Claims.(jwt.MapClaims)
	require.True(t, ok)
	assert.Equal(t, "ops-cli", claims["sub"])
	assert.Equal(t, "management", claims["scope"])
	assert.Equal(t, true, claims["authorization"])
}

func TestSignMissingSecret(t *testing.T) {
	t.Setenv("JWT_MANAGEMENT_TOKEN_SECRET", "")

	_, _, err := Sign(map[string]interface{}{"scope": "management"}, time.Hour)
	assert.Error(t, err)
}
