package jwt

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGeneratePairAndParse(t *testing.T) {
	maker := NewMaker("test-secret", 30*time.Minute, 24*time.Hour)

	pair, err := maker.GeneratePair(42, "testuser", true)
	require.NoError(t, err)
	require.NotEmpty(t, pair.AccessToken)
	require.NotEmpty(t, pair.RefreshToken)
	assert.NotEqual(t, pair.AccessToken, pair.RefreshToken)

	access, err := maker.ParseToken(pair.AccessToken)
	require.NoError(t, err)
	assert.Equal(t, int64(42), access.UserID)
	assert.Equal(t, "testuser", access.Username)
	assert.True(t, access.IsModerator)
	assert.Equal(t, TokenTypeAccess, access.TokenType)

	refresh, err := maker.ParseToken(pair.RefreshToken)
	require.NoError(t, err)
	assert.Equal(t, TokenTypeRefresh, refresh.TokenType)
}

func TestParseToken_WrongSecret(t *testing.T) {
	maker := NewMaker("secret-one", 30*time.Minute, 24*time.Hour)
	other := NewMaker("secret-two", 30*time.Minute, 24*time.Hour)

	pair, err := maker.GeneratePair(1, "testuser", false)
	require.NoError(t, err)

	_, err = other.ParseToken(pair.AccessToken)
	assert.Error(t, err)
}

func TestParseToken_Expired(t *testing.T) {
	maker := NewMaker("test-secret", -time.Minute, -time.Minute)

	pair, err := maker.GeneratePair(1, "testuser", false)
	require.NoError(t, err)

	_, err = maker.ParseToken(pair.AccessToken)
	assert.Error(t, err)
}

func TestParseToken_Garbage(t *testing.T) {
	maker := NewMaker("test-secret", 30*time.Minute, 24*time.Hour)

	_, err := maker.ParseToken("not-a-token")
	assert.Error(t, err)
}
