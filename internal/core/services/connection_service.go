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
	"github.com/google/uuid"
)

// connectionService implements the ConnectionSvcFacade interface
type connectionService struct {
	BaseService
	connectionRepo portsrepo.ConnectionRepository
	userRepo       portsrepo.UserReader
}

// NewConnectionService creates a new connection service with the provided dependencies
func NewConnectionService(connectionRepo portsrepo.ConnectionRepository, userRepo portsrepo.UserReader) portssvc.ConnectionSvcFacade {
	return &connectionService{
		connectionRepo: connectionRepo,
		userRepo:       userRepo,
	}
}

var _ portssvc.ConnectionSvcFacade = (*connectionService)(nil)

// GetFollowID returns the user's own public follow id.
func (s *connectionService) GetFollowID(ctx context.Context, userID string) (string, error) {
	user, err := s.userRepo.FindUserByID(ctx, userID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return "", apperrors.NewBusiness("USER_NOT_FOUND", "User not found", apperrors.ErrNotFound)
		}
		s.LogError(ctx, err, "Failed to find user", slog.String("user_id", userID))
		return "", fmt.Errorf("failed to find user: %w", err)
	}
	return user.FollowID, nil
}

// Connect links the requester with the user owning targetFollowID. The pair
// is stored in canonical order so the link is symmetric and unique.
func (s *connectionService) Connect(ctx context.Context, userID, targetFollowID string) (*dto.ConnectionResponse, error) {
	target, err := s.userRepo.FindUserByFollowID(ctx, targetFollowID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, apperrors.NewBusiness("USER_NOT_FOUND", "User not found", apperrors.ErrNotFound)
		}
		s.LogError(ctx, err, "Failed to resolve follow id", slog.String("follow_id", targetFollowID))
		return nil, fmt.Errorf("failed to resolve follow id: %w", err)
	}

	if target.UserID == userID {
		return nil, apperrors.NewBusiness("SELF_CONNECTION", "Cannot connect to yourself", apperrors.ErrInvalidOperation)
	}

	user1ID, user2ID := domain.CanonicalPair(userID, target.UserID)
	connection := domain.UserConnection{
		ConnectionID: uuid.NewString(),
		User1ID:      user1ID,
		User2ID:      user2ID,
		CreatedAt:    time.Now(),
	}

	if err := s.connectionRepo.SaveConnection(ctx, connection); err != nil {
		if errors.Is(err, apperrors.ErrConflict) {
			return nil, apperrors.NewBusiness("ALREADY_CONNECTED", "Users are already connected", apperrors.ErrConflict)
		}
		s.LogError(ctx, err, "Failed to save connection",
			slog.String("user1_id", user1ID), slog.String("user2_id", user2ID))
		return nil, fmt.Errorf("failed to save connection: %w", err)
	}

	s.LogInfo(ctx, "Users connected",
		slog.String("connection_id", connection.ConnectionID),
		slog.String("user1_id", user1ID), slog.String("user2_id", user2ID))

	resp := dto.ToConnectionResponse(&connection, target)
	return &resp, nil
}

// ListConnections returns the other party's view for every connection
// touching the user.
func (s *connectionService) ListConnections(ctx context.Context, userID string) ([]dto.ConnectionResponse, error) {
	connections, err := s.connectionRepo.ListConnectionsByUserID(ctx, userID)
	if err != nil {
		s.LogError(ctx, err, "Failed to list connections", slog.String("user_id", userID))
		return nil, fmt.Errorf("failed to list connections: %w", err)
	}

	responses := make([]dto.ConnectionResponse, 0, len(connections))
	for i := range connections {
		otherID := connections[i].OtherUser(userID)
		other, err := s.userRepo.FindUserByID(ctx, otherID)
		if err != nil {
			s.LogError(ctx, err, "Failed to resolve connected user", slog.String("user_id", otherID))
			return nil, fmt.Errorf("failed to resolve connected user: %w", err)
		}
		responses = append(responses, dto.ToConnectionResponse(&connections[i], other))
	}
	return responses, nil
}

// Disconnect removes a connection the user is a party of. An existing
// connection the user is not part of reads as absent.
func (s *connectionService) Disconnect(ctx context.Context, userID, connectionID string) error {
	connection, err := s.connectionRepo.FindConnectionByID(ctx, connectionID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return apperrors.NewBusiness("CONNECTION_NOT_FOUND", "Connection not found", apperrors.ErrNotFound)
		}
		s.LogError(ctx, err, "Failed to find connection", slog.String("connection_id", connectionID))
		return fmt.Errorf("failed to find connection: %w", err)
	}

	if !connection.Involves(userID) {
		return apperrors.NewBusiness("CONNECTION_NOT_FOUND", "Connection not found", apperrors.ErrNotFound)
	}

	if err := s.connectionRepo.DeleteConnection(ctx, connectionID); err != nil {
		s.LogError(ctx, err, "Failed to delete connection", slog.String("connection_id", connectionID))
		return fmt.Errorf("failed to delete connection: %w", err)
	}

	s.LogInfo(ctx, "Connection removed", slog.String("connection_id", connectionID))
	return nil
}

// AreConnected reports whether a connection exists between the two users,
// regardless of argument order.
func (s *connectionService) AreConnected(ctx context.Context, userAID, userBID string) (bool, error) {
	connected, err := s.connectionRepo.AreUsersConnected(ctx, userAID, userBID)
	if err != nil {
		s.LogError(ctx, err, "Failed to check connection",
			slog.String("user_a_id", userAID), slog.String("user_b_id", userBID))
		return false, fmt.Errorf("failed to check connection: %w", err)
	}
	return connected, nil
}
