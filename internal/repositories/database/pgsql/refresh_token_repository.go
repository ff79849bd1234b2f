package pgsql

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/FurkanErogluu/shopping-cart/internal/apperrors"
	"github.com/FurkanErogluu/shopping-cart/internal/core/domain"
	portsrepo "github.com/FurkanErogluu/shopping-cart/internal/core/ports/repositories"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type PgxRefreshTokenRepository struct {
	BaseRepository
}

func newPgxRefreshTokenRepository(pool *pgxpool.Pool) portsrepo.RefreshTokenRepository {
	return &PgxRefreshTokenRepository{BaseRepository{Pool: pool}}
}

// Ensure PgxRefreshTokenRepository implements portsrepo.RefreshTokenRepository
var _ portsrepo.RefreshTokenRepository = (*PgxRefreshTokenRepository)(nil)

func (r *PgxRefreshTokenRepository) SaveRefreshToken(ctx context.Context, token domain.RefreshToken) error {
	query := `
		INSERT INTO refresh_tokens (token_id, user_id, token, expires_at, revoked_at)
		VALUES ($1, $2, $3, $4, $5);
	`
	_, err := r.Pool.Exec(ctx, query,
		token.TokenID,
		token.UserID,
		token.Token,
		token.ExpiresAt,
		token.RevokedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to save refresh token: %w", err)
	}
	return nil
}

func (r *PgxRefreshTokenRepository) FindRefreshTokenByToken(ctx context.Context, tokenStr string) (*domain.RefreshToken, error) {
	// Revoked tokens are invisible here: a rotated token reads as absent.
	query := `
		SELECT token_id, user_id, token, expires_at, revoked_at
		FROM refresh_tokens
		WHERE token = $1 AND revoked_at IS NULL;
	`
	var token domain.RefreshToken
	err := r.Pool.QueryRow(ctx, query, tokenStr).Scan(
		&token.TokenID,
		&token.UserID,
		&token.Token,
		&token.ExpiresAt,
		&token.RevokedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find refresh token: %w", err)
	}
	return &token, nil
}

func (r *PgxRefreshTokenRepository) RevokeRefreshToken(ctx context.Context, tokenID string, revokedAt time.Time) error {
	query := `
		UPDATE refresh_tokens
		SET revoked_at = $2
		WHERE token_id = $1 AND revoked_at IS NULL;
	`
	tag, err := r.Pool.Exec(ctx, query, tokenID, revokedAt)
	if err != nil {
		return fmt.Errorf("failed to revoke refresh token: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

func (r *PgxRefreshTokenRepository) RevokeAllUserTokens(ctx context.Context, userID string, revokedAt time.Time) error {
	query := `
		UPDATE refresh_tokens
		SET revoked_at = $2
		WHERE user_id = $1 AND revoked_at IS NULL;
	`
	if _, err := r.Pool.Exec(ctx, query, userID, revokedAt); err != nil {
		return fmt.Errorf("failed to revoke user tokens: %w", err)
	}
	return nil
}
