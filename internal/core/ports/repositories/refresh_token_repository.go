package repositories

import (
	"context"
	"time"

	"github.com/FurkanErogluu/shopping-cart/internal/core/domain"
)

// RefreshTokenRepository defines persistence operations for refresh tokens.
type RefreshTokenRepository interface {
	// SaveRefreshToken persists a newly issued refresh token.
	SaveRefreshToken(ctx context.Context, token domain.RefreshToken) error

	// FindRefreshTokenByToken retrieves a live (non-revoked) token by its
	// opaque string. Revoked or unknown tokens yield apperrors.ErrNotFound.
	FindRefreshTokenByToken(ctx context.Context, token string) (*domain.RefreshToken, error)

	// RevokeRefreshToken marks a single token as revoked.
	RevokeRefreshToken(ctx context.Context, tokenID string, revokedAt time.Time) error

	// RevokeAllUserTokens marks every live token of a user as revoked.
	RevokeAllUserTokens(ctx context.Context, userID string, revokedAt time.Time) error
}
