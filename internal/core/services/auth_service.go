package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/FurkanErogluu/shopping-cart/internal/apperrors"
	"github.com/FurkanErogluu/shopping-cart/internal/core/domain"
	portsrepo "github.com/FurkanErogluu/shopping-cart/internal/core/ports/repositories"
	portssvc "github.com/FurkanErogluu/shopping-cart/internal/core/ports/services"
	"github.com/FurkanErogluu/shopping-cart/internal/dto"
	"github.com/FurkanErogluu/shopping-cart/internal/platform/config"
	"github.com/FurkanErogluu/shopping-cart/internal/utils"
	"github.com/google/uuid"
)

// followIDAttempts caps retries when a freshly generated follow id collides
// with an existing one.
const followIDAttempts = 3

// authService implements the AuthSvcFacade interface
type authService struct {
	BaseService
	cfg       *config.Config
	userRepo  portsrepo.UserRepository
	tokenRepo portsrepo.RefreshTokenRepository
}

// NewAuthService creates a new auth service with the provided dependencies
func NewAuthService(cfg *config.Config, userRepo portsrepo.UserRepository, tokenRepo portsrepo.RefreshTokenRepository) portssvc.AuthSvcFacade {
	return &authService{
		cfg:       cfg,
		userRepo:  userRepo,
		tokenRepo: tokenRepo,
	}
}

var _ portssvc.AuthSvcFacade = (*authService)(nil)

// Register creates a new user account and issues the first token pair.
func (s *authService) Register(ctx context.Context, req dto.RegisterRequest) (*dto.AuthResponse, error) {
	_, err := s.userRepo.FindUserByEmail(ctx, req.Email)
	if err == nil {
		return nil, apperrors.NewBusiness("EMAIL_EXISTS", "Email already registered", apperrors.ErrConflict)
	}
	if !errors.Is(err, apperrors.ErrNotFound) {
		s.LogError(ctx, err, "Failed to check email uniqueness")
		return nil, fmt.Errorf("failed to check email uniqueness: %w", err)
	}

	passwordHash, err := utils.HashPassword(req.Password)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	user := domain.User{
		UserID:       uuid.NewString(),
		Email:        req.Email,
		PasswordHash: passwordHash,
		CreatedAt:    time.Now(),
	}

	// The follow id is drawn from a small space; regenerate on the rare
	// unique-index collision instead of failing the registration. An email
	// conflict here means the address was registered concurrently after the
	// uniqueness check above.
	for attempt := 0; ; attempt++ {
		user.FollowID = utils.NewFollowID()
		err = s.userRepo.SaveUser(ctx, user)
		if err == nil {
			break
		}
		if errors.Is(err, apperrors.ErrDuplicateEmail) {
			return nil, apperrors.NewBusiness("EMAIL_EXISTS", "Email already registered", apperrors.ErrConflict)
		}
		if errors.Is(err, apperrors.ErrDuplicateFollowID) && attempt < followIDAttempts-1 {
			s.LogDebug(ctx, "Follow id collision, regenerating",
				slog.String("follow_id", user.FollowID))
			continue
		}
		s.LogError(ctx, err, "Failed to save user", slog.String("email", req.Email))
		return nil, fmt.Errorf("failed to save user: %w", err)
	}

	s.LogInfo(ctx, "User registered", slog.String("user_id", user.UserID))
	return s.generateAuthResponse(ctx, &user)
}

// Login verifies credentials and issues a token pair. Absent user and wrong
// password produce the same error so accounts cannot be enumerated.
func (s *authService) Login(ctx context.Context, req dto.LoginRequest) (*dto.AuthResponse, error) {
	user, err := s.userRepo.FindUserByEmail(ctx, req.Email)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, apperrors.NewBusiness("INVALID_CREDENTIALS", "Invalid email or password", apperrors.ErrUnauthorized)
		}
		s.LogError(ctx, err, "Failed to find user for login")
		return nil, fmt.Errorf("failed to find user for login: %w", err)
	}

	if !utils.CheckPasswordHash(req.Password, user.PasswordHash) {
		return nil, apperrors.NewBusiness("INVALID_CREDENTIALS", "Invalid email or password", apperrors.ErrUnauthorized)
	}

	s.LogInfo(ctx, "User logged in", slog.String("user_id", user.UserID))
	return s.generateAuthResponse(ctx, user)
}

// Refresh rotates the presented refresh token: each issued token refreshes
// exactly once.
func (s *authService) Refresh(ctx context.Context, refreshToken string) (*dto.AuthResponse, error) {
	token, err := s.tokenRepo.FindRefreshTokenByToken(ctx, refreshToken)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, apperrors.NewBusiness("INVALID_REFRESH_TOKEN", "Invalid or expired refresh token", apperrors.ErrUnauthorized)
		}
		s.LogError(ctx, err, "Failed to look up refresh token")
		return nil, fmt.Errorf("failed to look up refresh token: %w", err)
	}

	if token.IsExpired(time.Now()) {
		return nil, apperrors.NewBusiness("INVALID_REFRESH_TOKEN", "Invalid or expired refresh token", apperrors.ErrUnauthorized)
	}

	user, err := s.userRepo.FindUserByID(ctx, token.UserID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			// Should not occur: tokens cascade with their user.
			return nil, apperrors.NewBusiness("USER_NOT_FOUND", "User not found", apperrors.ErrNotFound)
		}
		s.LogError(ctx, err, "Failed to find user for refresh", slog.String("user_id", token.UserID))
		return nil, fmt.Errorf("failed to find user for refresh: %w", err)
	}

	if err := s.tokenRepo.RevokeRefreshToken(ctx, token.TokenID, time.Now()); err != nil {
		s.LogError(ctx, err, "Failed to revoke refresh token", slog.String("token_id", token.TokenID))
		return nil, fmt.Errorf("failed to revoke refresh token: %w", err)
	}

	s.LogInfo(ctx, "Refresh token rotated", slog.String("user_id", user.UserID))
	return s.generateAuthResponse(ctx, user)
}

// RevokeAllTokens revokes every live refresh token of a user.
func (s *authService) RevokeAllTokens(ctx context.Context, userID string) error {
	if err := s.tokenRepo.RevokeAllUserTokens(ctx, userID, time.Now()); err != nil {
		s.LogError(ctx, err, "Failed to revoke user tokens", slog.String("user_id", userID))
		return fmt.Errorf("failed to revoke user tokens: %w", err)
	}
	s.LogInfo(ctx, "All refresh tokens revoked", slog.String("user_id", userID))
	return nil
}

// GetUserByID retrieves a user's public view.
func (s *authService) GetUserByID(ctx context.Context, userID string) (*dto.UserResponse, error) {
	user, err := s.userRepo.FindUserByID(ctx, userID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, apperrors.NewBusiness("USER_NOT_FOUND", "User not found", apperrors.ErrNotFound)
		}
		s.LogError(ctx, err, "Failed to find user", slog.String("user_id", userID))
		return nil, fmt.Errorf("failed to find user: %w", err)
	}

	resp := dto.ToUserResponse(user)
	return &resp, nil
}

// generateAuthResponse issues an access token and persists a fresh refresh
// token for the user.
func (s *authService) generateAuthResponse(ctx context.Context, user *domain.User) (*dto.AuthResponse, error) {
	accessExpiry := time.Now().Add(s.cfg.JWTExpiryDuration)
	accessToken, err := utils.GenerateJWT(user.UserID, s.cfg.JWTSecret, s.cfg.JWTExpiryDuration, s.cfg.JWTIssuer)
	if err != nil {
		return nil, fmt.Errorf("failed to generate access token: %w", err)
	}

	rawRefreshToken, err := utils.NewRefreshTokenValue()
	if err != nil {
		return nil, fmt.Errorf("failed to generate refresh token: %w", err)
	}
	refreshExpiry := time.Now().Add(s.cfg.RefreshTokenExpiryDuration)

	refreshToken := domain.RefreshToken{
		TokenID:   uuid.NewString(),
		UserID:    user.UserID,
		Token:     rawRefreshToken,
		ExpiresAt: refreshExpiry,
	}
	if err := s.tokenRepo.SaveRefreshToken(ctx, refreshToken); err != nil {
		s.LogError(ctx, err, "Failed to save refresh token", slog.String("user_id", user.UserID))
		return nil, fmt.Errorf("failed to save refresh token: %w", err)
	}

	return &dto.AuthResponse{
		AccessToken:        accessToken,
		RefreshToken:       rawRefreshToken,
		AccessTokenExpiry:  accessExpiry,
		RefreshTokenExpiry: refreshExpiry,
		User:               dto.ToUserResponse(user),
	}, nil
}
