package auth

import (
	"testing"
	"time"

	"schoolsite/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testSessionConfig() *config.SessionConfig {
	return &config.SessionConfig{Secret: "test-secret", TTL: time.Hour, Issuer: "schoolsite"}
}

func TestSessionTokenRoundTrip(t *testing.T) {
	cfg := testSessionConfig()
	token, err := GenerateSessionToken(cfg, 7, "admin@school.test")
	require.NoError(t, err)

	claims, err := ParseSessionToken(cfg, token)
	require.NoError(t, err)
	assert.Equal(t, uint(7), claims.UserID)
	assert.Equal(t, "admin@school.test", claims.Email)
}

func TestSessionTokenRejectsOtherSecret(t *testing.T) {
	token, err := GenerateSessionToken(testSessionConfig(), 1, "a@b.c")
	require.NoError(t, err)

	other := testSessionConfig()
	other.Secret = "different"
	_, err = ParseSessionToken(other, token)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestSessionTokenExpires(t *testing.T) {
	cfg := testSessionConfig()
	cfg.TTL = -time.Minute
	token, err := GenerateSessionToken(cfg, 1, "a@b.c")
	require.NoError(t, err)

	_, err = ParseSessionToken(cfg, token)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestSessionTokenGarbage(t *testing.T) {
	_, err := ParseSessionToken(testSessionConfig(), "not-a-token")
	assert.ErrorIs(t, err, ErrInvalidToken)
}
