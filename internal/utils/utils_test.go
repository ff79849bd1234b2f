package utils_test

import (
	"testing"
	"time"

	"github.com/FurkanErogluu/shopping-cart/internal/utils"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewFollowID(t *testing.T) {
	seen := make(map[string]bool)
	for i := 0; i < 100; i++ {
		id := utils.NewFollowID()
		assert.Len(t, id, utils.FollowIDLength)
		assert.NotContains(t, id, "-")
		seen[id] = true
	}
	// Collisions over 100 draws from a 16^8 space would be astonishing.
	assert.Greater(t, len(seen), 95)
}

func TestHashAndCheckPassword(t *testing.T) {
	hash, err := utils.HashPassword("s3cret-password")
	require.NoError(t, err)
	assert.NotEqual(t, "s3cret-password", hash)

	assert.True(t, utils.CheckPasswordHash("s3cret-password", hash))
	assert.False(t, utils.CheckPasswordHash("wrong-password", hash))
}

func TestGenerateAndParseJWT(t *testing.T) {
	secret := "test-secret"
	token, err := utils.GenerateJWT("user-42", secret, time.Hour, "shopping-cart")
	require.NoError(t, err)

	claims, err := utils.ParseAndValidateJWT(token, secret)
	require.NoError(t, err)
	assert.Equal(t, "user-42", claims.Subject)
	assert.Equal(t, "shopping-cart", claims.Issuer)

	_, err = utils.ParseAndValidateJWT(token, "other-secret")
	assert.Error(t, err)
}

func TestParseExpiredJWT(t *testing.T) {
	token, err := utils.GenerateJWT("user-42", "test-secret", -time.Minute, "shopping-cart")
	require.NoError(t, err)

	_, err = utils.ParseAndValidateJWT(token, "test-secret")
	assert.Error(t, err)
}

func TestGenerateSecureRandomString(t *testing.T) {
	s, err := utils.GenerateSecureRandomString(32)
	require.NoError(t, err)
	assert.Len(t, s, 64)

	_, err = utils.GenerateSecureRandomString(0)
	assert.Error(t, err)
}

func TestNewRefreshTokenValue(t *testing.T) {
	a, err := utils.NewRefreshTokenValue()
	require.NoError(t, err)
	assert.Len(t, a, 64)

	b, err := utils.NewRefreshTokenValue()
	require.NoError(t, err)
	assert.NotEqual(t, a, b)
}
