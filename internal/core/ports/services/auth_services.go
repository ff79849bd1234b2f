package services

import (
	"context"

	"github.com/FurkanErogluu/shopping-cart/internal/dto"
)

// AuthSvcFacade owns credential verification and the token lifecycle.
type AuthSvcFacade interface {
	// Register creates a new account and issues a token pair.
	// Fails EMAIL_EXISTS when the email is already registered.
	Register(ctx context.Context, req dto.RegisterRequest) (*dto.AuthResponse, error)

	// Login verifies credentials and issues a token pair.
	// Fails INVALID_CREDENTIALS whether the user is absent or the password is
	// wrong; the two causes are deliberately not distinguished.
	Login(ctx context.Context, req dto.LoginRequest) (*dto.AuthResponse, error)

	// Refresh rotates a refresh token: the presented token is revoked and a
	// fresh pair is issued. Each token refreshes exactly once.
	Refresh(ctx context.Context, refreshToken string) (*dto.AuthResponse, error)

	// RevokeAllTokens revokes every live refresh token of a user.
	RevokeAllTokens(ctx context.Context, userID string) error

	// GetUserByID retrieves a user's public view.
	GetUserByID(ctx context.Context, userID string) (*dto.UserResponse, error)
}
