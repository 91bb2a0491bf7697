package auth_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/codecompass/codecompass/internal/auth"
)

func TestHashPassword_VerifiesOwnHash(t *testing.T) {
	hash, err := auth.HashPassword("hunter2!")
	require.NoError(t, err)
	require.NotEmpty(t, hash)
	assert.NotEqual(t, "hunter2!", hash)

	assert.True(t, auth.CheckPassword(hash, "hunter2!"))
	assert.False(t, auth.CheckPassword(hash, "hunter3!"))
}

func TestHashPassword_SaltsEachHash(t *testing.T) {
	h1, err := auth.HashPassword("same password")
	require.NoError(t, err)
	h2, err := auth.HashPassword("same password")
	require.NoError(t, err)

	assert.NotEqual(t, h1, h2)
	assert.True(t, auth.CheckPassword(h1, "same password"))
	assert.True(t, auth.CheckPassword(h2, "same password"))
}

func TestCheckPassword_MalformedHash(t *testing.T) {
	assert.False(t, auth.CheckPassword("not a bcrypt hash", "anything"))
}
