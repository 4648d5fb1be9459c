package password

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetHashAndCompare(t *testing.T) {
	hash, err := GetHash("secret-password")
	require.NoError(t, err)
	require.NotEmpty(t, hash)
	assert.NotEqual(t, "secret-password", hash)

	assert.NoError(t, CompareHash(hash, "secret-password"))
}

func TestCompareHash_WrongPassword(t *testing.T) {
	hash, err := GetHash("secret-password")
	require.NoError(t, err)

	assert.Error(t, CompareHash(hash, "another-password"))
}

func TestGetHash_SaltedHashesDiffer(t *testing.T) {
	first, err := GetHash("secret-password")
	require.NoError(t, err)
	second, err := GetHash("secret-password")
	require.NoError(t, err)

	assert.NotEqual(t, first, second)
}
