package repositories

import (
	"context"

	"github.com/FurkanErogluu/shopping-cart/internal/core/domain"
)

// UserReader defines read operations for user data
type UserReader interface {
	// FindUserByID retrieves a specific user by their ID.
	FindUserByID(ctx context.Context, userID string) (*domain.User, error)

	// FindUserByEmail retrieves a user by their unique email.
	FindUserByEmail(ctx context.Context, email string) (*domain.User, error)

	// FindUserByFollowID retrieves a user by their public follow id.
	FindUserByFollowID(ctx context.Context, followID string) (*domain.User, error)
}

// UserWriter defines write operations for user data
type UserWriter interface {
	// SaveUser persists a new user. A collision on the email or follow id
	// unique index yields apperrors.ErrDuplicateEmail or
	// apperrors.ErrDuplicateFollowID respectively; both unwrap to
	// apperrors.ErrConflict.
	SaveUser(ctx context.Context, user domain.User) error
}

// UserRepository combines all user-related repository interfaces
type UserRepository interface {
	UserReader
	UserWriter
}
