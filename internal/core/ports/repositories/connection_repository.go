package repositories

import (
	"context"

	"github.com/FurkanErogluu/shopping-cart/internal/core/domain"
)

// ConnectionReader defines read operations for user connections
type ConnectionReader interface {
	// FindConnectionByID retrieves a specific connection by its ID.
	FindConnectionByID(ctx context.Context, connectionID string) (*domain.UserConnection, error)

	// FindConnectionBetween retrieves the connection between two users,
	// regardless of argument order.
	FindConnectionBetween(ctx context.Context, userAID, userBID string) (*domain.UserConnection, error)

	// ListConnectionsByUserID retrieves every connection touching the user.
	ListConnectionsByUserID(ctx context.Context, userID string) ([]domain.UserConnection, error)

	// AreUsersConnected reports whether a connection exists between the two
	// users, regardless of argument order.
	AreUsersConnected(ctx context.Context, userAID, userBID string) (bool, error)
}

// ConnectionWriter defines write operations for user connections
type ConnectionWriter interface {
	// SaveConnection persists a new connection. The pair must already be in
	// canonical order; a duplicate pair yields apperrors.ErrConflict.
	SaveConnection(ctx context.Context, connection domain.UserConnection) error

	// DeleteConnection removes a connection by its ID.
	DeleteConnection(ctx context.Context, connectionID string) error
}

// ConnectionRepository combines all connection-related repository interfaces
type ConnectionRepository interface {
	ConnectionReader
	ConnectionWriter
}
