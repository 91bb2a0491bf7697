package auth_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/codecompass/codecompass/internal/auth"
)

func TestNewTokenService_RejectsShortSecret(t *testing.T) {
	_, err := auth.NewTokenService("short", time.Hour)
	assert.Error(t, err)
}

func TestTokenService_RoundTrip(t *testing.T) {
	svc, err := auth.NewTokenService("0123456789abcdef", time.Hour)
	require.NoError(t, err)

	token, err := svc.Generate("user-1")
	require.NoError(t, err)
	require.NotEmpty(t, token)

	userID, err := svc.Validate(token)
	require.NoError(t, err)
	assert.Equal(t, "user-1", userID)
}

func TestTokenService_RejectsExpiredToken(t *testing.T) {
	svc, err := auth.NewTokenService("0123456789abcdef", -time.Minute)
	require.NoError(t, err)

	token, err := svc.Generate("user-1")
	require.NoError(t, err)

	_, err = svc.Validate(token)
	assert.Error(t, err)
}

func TestTokenService_RejectsForeignSignature(t *testing.T) {
	signer, err := auth.NewTokenService("0123456789abcdef", time.Hour)
	require.NoError(t, err)
	verifier, err := auth.NewTokenService("fedcba9876543210", time.Hour)
	require.NoError(t, err)

	token, err := signer.Generate("user-1")
	require.NoError(t, err)

	_, err = verifier.Validate(token)
	assert.Error(t, err)
}

func TestTokenService_RejectsGarbage(t *testing.T) {
	svc, err := auth.NewTokenService("0123456789abcdef", time.Hour)
	require.NoError(t, err)

	_, err = svc.Validate("not-a-token")
	assert.Error(t, err)
}
