package domain

import "time"

// User represents a registered account in the domain.
type User struct {
	UserID       string    `json:"userID" db:"user_id"`
	Email        string    `json:"email" db:"email"`
	PasswordHash string    `json:"-" db:"password_hash"`
	FollowID     string    `json:"followID" db:"follow_id"`
	CreatedAt    time.Time `json:"createdAt" db:"created_at"`
}
