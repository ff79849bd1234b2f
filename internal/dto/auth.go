package dto

import (
	"time"

	"github.com/FurkanErogluu/shopping-cart/internal/core/domain"
)

// RegisterRequest carries the credentials for a new account.
type RegisterRequest struct {
	Email    string `json:"email" binding:"required,email,max=255"`
	Password string `json:"password" binding:"required,min=6,max=72"`
}

// LoginRequest carries login credentials.
type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// RefreshTokenRequest carries the opaque refresh token to rotate.
type RefreshTokenRequest struct {
	RefreshToken string `json:"refreshToken" binding:"required"`
}

// UserResponse is the public view of a user. The password hash is never part
// of any response shape.
type UserResponse struct {
	ID        string    `json:"id"`
	Email     string    `json:"email"`
	FollowID  string    `json:"followId"`
	CreatedAt time.Time `json:"createdAt"`
}

// AuthResponse bundles a fresh token pair with the owning user's view.
type AuthResponse struct {
	AccessToken        string       `json:"accessToken"`
	RefreshToken       string       `json:"refreshToken"`
	AccessTokenExpiry  time.Time    `json:"accessTokenExpiry"`
	RefreshTokenExpiry time.Time    `json:"refreshTokenExpiry"`
	User               UserResponse `json:"user"`
}

// ToUserResponse converts a domain.User to its public view.
func ToUserResponse(user *domain.User) UserResponse {
	return UserResponse{
		ID:        user.UserID,
		Email:     user.Email,
		FollowID:  user.FollowID,
		CreatedAt: user.CreatedAt,
	}
}
