package domain

import "time"

// UserConnection is a symmetric, undirected link between two distinct users.
// It is always stored in canonical order (User1ID < User2ID) so the unique
// pair index also rejects the mirrored duplicate.
type UserConnection struct {
	ConnectionID string    `json:"connectionID" db:"connection_id"`
	User1ID      string    `json:"user1ID" db:"user1_id"`
	User2ID      string    `json:"user2ID" db:"user2_id"`
	CreatedAt    time.Time `json:"createdAt" db:"created_at"`
}

// CanonicalPair orders two user ids so the smaller one comes first.
func CanonicalPair(a, b string) (string, string) {
	if a < b {
		return a, b
	}
	return b, a
}

// Involves reports whether the given user is one of the two parties.
func (c UserConnection) Involves(userID string) bool {
	return c.User1ID == userID || c.User2ID == userID
}

// OtherUser returns the party that is not the given user. The caller must
// ensure the user is actually a party of the connection.
func (c UserConnection) OtherUser(userID string) string {
	if c.User1ID == userID {
		return c.User2ID
	}
	return c.User1ID
}
