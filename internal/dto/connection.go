package dto

import (
	"time"

	"github.com/FurkanErogluu/shopping-cart/internal/core/domain"
)

// ConnectUserRequest carries the public follow id of the user to connect with.
type ConnectUserRequest struct {
	FollowID string `json:"followId" binding:"required,len=8"`
}

// ConnectionResponse is the view of a connection from one party's side: the
// other party's user view plus the connection timestamp.
type ConnectionResponse struct {
	ConnectionID  string       `json:"connectionId"`
	ConnectedUser UserResponse `json:"connectedUser"`
	ConnectedAt   time.Time    `json:"connectedAt"`
}

// ToConnectionResponse builds the view of a connection as seen by one party,
// resolving the other user into their public view.
func ToConnectionResponse(connection *domain.UserConnection, otherUser *domain.User) ConnectionResponse {
	return ConnectionResponse{
		ConnectionID:  connection.ConnectionID,
		ConnectedUser: ToUserResponse(otherUser),
		ConnectedAt:   connection.CreatedAt,
	}
}

// FollowIDResponse wraps a user's own follow id.
type FollowIDResponse struct {
	FollowID string `json:"followId"`
}
