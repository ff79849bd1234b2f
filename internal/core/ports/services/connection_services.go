package services

import (
	"context"

	"github.com/FurkanErogluu/shopping-cart/internal/dto"
)

// ConnectionVerifierSvc is the predicate other services consult before
// letting two users share a resource.
type ConnectionVerifierSvc interface {
	// AreConnected reports whether a connection exists between the two users,
	// regardless of argument order.
	AreConnected(ctx context.Context, userAID, userBID string) (bool, error)
}

// ConnectionSvcFacade maintains symmetric user-to-user links keyed by the
// public follow id.
type ConnectionSvcFacade interface {
	ConnectionVerifierSvc

	// GetFollowID returns the user's own public follow id.
	GetFollowID(ctx context.Context, userID string) (string, error)

	// Connect links the requester with the user owning targetFollowID.
	// Fails USER_NOT_FOUND, SELF_CONNECTION or ALREADY_CONNECTED.
	Connect(ctx context.Context, userID, targetFollowID string) (*dto.ConnectionResponse, error)

	// ListConnections returns the other party's view for every connection
	// touching the user.
	ListConnections(ctx context.Context, userID string) ([]dto.ConnectionResponse, error)

	// Disconnect removes a connection the user is a party of. Fails
	// CONNECTION_NOT_FOUND when absent or when the user is not a party, so
	// existence is not leaked.
	Disconnect(ctx context.Context, userID, connectionID string) error
}
