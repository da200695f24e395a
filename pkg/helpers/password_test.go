package helpers

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestHashPasswordRoundTrip(t *testing.T) {
	hash, err := HashPassword("secret1")
	require.NoError(t, err)
	require.NotEqual(t, "secret1", hash)
	require.True(t, strings.HasPrefix(hash, "$2"))

	require.True(t, CompareHashAndPassword(hash, "secret1"))
	require.False(t, CompareHashAndPassword(hash, "secret2"))
}

func TestHashPasswordSalts(t *testing.T) {
	h1, err := HashPassword("secret1")
	require.NoError(t, err)
	h2, err := HashPassword("secret1")
	require.NoError(t, err)
	require.NotEqual(t, h1, h2)
}

func TestCompareRejectsGarbageHash(t *testing.T) {
	require.False(t, CompareHashAndPassword("not-a-bcrypt-hash", "secret1"))
}
