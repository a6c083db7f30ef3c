package utils_test

import (
	"testing"
	"time"

	"pawhaven/config"
	"pawhaven/utils"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTokenRoundTrip(t *testing.T) {
	config.AppConfig.JWTSecret = "test-secret"

	token, err := utils.GenerateToken("abc123", "user@example.com", time.Hour)
	require.NoError(t, err)

	subject, email, err := utils.TokenClaims(token)
	require.NoError(t, err)
	assert.Equal(t, "abc123", subject)
	assert.Equal(t, "user@example.com", email)
}

func TestExpiredTokenRejected(t *testing.T) {
	config.AppConfig.JWTSecret = "test-secret"

	token, err := utils.GenerateToken("abc123", "user@example.com", -time.Minute)
	require.NoError(t, err)

	_, _, err = utils.TokenClaims(token)
	assert.Error(t, err)
}

func TestTamperedTokenRejected(t *testing.T) {
	config.AppConfig.JWTSecret = "test-secret"

	token, err := utils.GenerateToken("abc123", "user@example.com", time.Hour)
	require.NoError(t, err)

	_, _, err = utils.TokenClaims(token + "x")
	assert.Error(t, err)
}

func TestHashTokenIsStable(t *testing.T) {
	a := utils.HashToken("some-token")
	b := utils.HashToken("some-token")
	c := utils.HashToken("other-token")
	assert.Equal(t, a, b)
	assert.NotEqual(t, a, c)
	assert.Len(t, a, 64)
}
