package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestJWTRoundTrip(t *testing.T) {
	t.Run("TestGenerateAndParse", func(t *testing.T) {
		token, err := GenerateJWT("user-1", "admin@example.edu", "admin", "state-u")
		require.NoError(t, err)
		require.NotEmpty(t, token)

		claims, err := ParseJWT(token)
		require.NoError(t, err)
		assert.Equal(t, "user-1", claims.UserID)
		assert.Equal(t, "admin@example.edu", claims.Email)
		assert.Equal(t, "admin", claims.Role)
		assert.Equal(t, "state-u", claims.UniversitySlug)
	})

	t.Run("TestEmptyToken", func(t *testing.T) {
		_, err := ParseJWT("")
		assert.Error(t, err)
	})

	t.Run("TestGarbageToken", func(t *testing.T) {
		_, err := ParseJWT("not.a.token")
		assert.Error(t, err)
	})

	t.Run("TestTamperedToken", func(t *testing.T) {
		token, err := GenerateJWT("user-1", "admin@example.edu", "admin", "")
		require.NoError(t, err)

		_, err = ParseJWT(token + "x")
		assert.Error(t, err)
	})
}

func TestGenerateRandomString(t *testing.T) {
	a := GenerateRandomString(32)
	b := GenerateRandomString(32)
	assert.Len(t, a, 32)
	assert.NotEqual(t, a, b)
}
