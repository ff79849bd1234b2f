package utils

import (
	"crypto/rand"
	"encoding/hex"
	"fmt"
)

// refreshTokenBytes is the entropy of an opaque refresh token. Hex encoding
// doubles it to a 64-character string.
const refreshTokenBytes = 32

// NewRefreshTokenValue generates the opaque random string stored as a
// refresh token.
func NewRefreshTokenValue() (string, error) {
	return GenerateSecureRandomString(refreshTokenBytes)
}

// GenerateSecureRandomString draws lengthInBytes cryptographically secure
// random bytes and hex encodes them.
func GenerateSecureRandomString(lengthInBytes int) (string, error) {
	if lengthInBytes <= 0 {
		return "", fmt.Errorf("lengthInBytes must be positive")
	}
	b := make([]byte, lengthInBytes)
	if _, err := rand.Read(b); err != nil {
		return "", fmt.Errorf("failed to read random bytes: %w", err)
	}
	return hex.EncodeToString(b), nil
}
