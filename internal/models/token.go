package models

import (
	"time"
)

// AccessToken is a revocable bearer credential. Only the SHA-256 hash of
// the token is stored; the plaintext is returned to the client exactly once
// at issuance. Logout deletes the single row matching the presented token.
type AccessToken struct {
	ID         string     `json:"id" db:"id"`
	UserID     string     `json:"user_id" db:"user_id"`
	TokenHash  string     `json:"-" db:"token_hash"`
	Name       string     `json:"name" db:"name"`
	LastUsedAt *time.Time `json:"last_used_at,omitempty" db:"last_used_at"`
	CreatedAt  time.Time  `json:"created_at" db:"created_at"`
}
