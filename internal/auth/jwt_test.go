package auth

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTokenRoundTrip(t *testing.T) {
	secret := []byte("test-secret")

	token, err := GenerateToken("alice", RoleAdmin, secret, time.Hour)
	require.NoError(t, err)
	require.NotEmpty(t, token)

	username, role, err := ParseToken(token, secret)
	require.NoError(t, err)
	assert.Equal(t, "alice", username)
	assert.Equal(t, RoleAdmin, role)
}

func TestParseToken_WrongSecret(t *testing.T) {
	token, err := GenerateToken("alice", RoleUser, []byte("right"), time.Hour)
	require.NoError(t, err)

	_, _, err = ParseToken(token, []byte("wrong"))
	assert.Error(t, err)
}

func TestParseToken_Expired(t *testing.T) {
	secret := []byte("test-secret")
	token, err := GenerateToken("alice", RoleUser, secret, -time.Minute)
	require.NoError(t, err)

	_, _, err = ParseToken(token, secret)
	assert.Error(t, err)
}
