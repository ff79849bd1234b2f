package domain

import "time"

// RefreshToken is a long-lived opaque credential bound to a single user.
// A token is issued on every successful authentication and revoked on its
// first (and only) use.
type RefreshToken struct {
	TokenID   string     `json:"tokenID" db:"token_id"`
	UserID    string     `json:"userID" db:"user_id"`
	Token     string     `json:"-" db:"token"`
	ExpiresAt time.Time  `json:"expiresAt" db:"expires_at"`
	RevokedAt *time.Time `json:"revokedAt,omitempty" db:"revoked_at"`
}

// IsExpired reports whether the token's expiry lies before the given instant.
func (t RefreshToken) IsExpired(now time.Time) bool {
	return t.ExpiresAt.Before(now)
}

// IsRevoked reports whether the token has been used or explicitly revoked.
func (t RefreshToken) IsRevoked() bool {
	return t.RevokedAt != nil
}
