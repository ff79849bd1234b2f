package utils

import (
	"strings"

	"github.com/google/uuid"
)

// FollowIDLength is the fixed length of a public follow id.
const FollowIDLength = 8

// NewFollowID generates a short opaque identifier a user shares with others
// to let them initiate a connection. Uniqueness is enforced by the store;
// callers retry on collision.
func NewFollowID() string {
	return strings.ReplaceAll(uuid.NewString(), "-", "")[:FollowIDLength]
}
