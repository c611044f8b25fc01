package models

import (
	"time"
)

// User represents an account in the system
type User struct {
	ID           string     `json:"id" db:"id"`
	Name         string     `json:"name" db:"name"`
	Email        string     `json:"email" db:"email"`
	PasswordHash string     `json:"-" db:"password_hash"`
	Role         string     `json:"role" db:"role"`
	Status       string     `json:"status" db:"status"`
	Designation  string     `json:"designation,omitempty" db:"designation"`
	Image        string     `json:"image,omitempty" db:"image"`
	LastLoginAt  *time.Time `json:"last_login_at,omitempty" db:"last_login_at"`
	CreatedAt    time.Time  `json:"created_at" db:"created_at"`
	UpdatedAt    time.Time  `json:"updated_at" db:"updated_at"`
}

// User roles
const (
	RoleUser  = "User"
	RoleAdmin = "Admin"
)

// User account statuses
const (
	UserStatusActive   = "Active"
	UserStatusInactive = "Inactive"
)

// ValidRoles defines allowed user roles
var ValidRoles = map[string]bool{
	RoleUser:  true,
	RoleAdmin: true,
}

// ValidUserStatuses defines allowed account statuses
var ValidUserStatuses = map[string]bool{
	UserStatusActive:   true,
	UserStatusInactive: true,
}

// IsAdmin reports whether the user holds the elevated privilege role.
// Safe on a nil receiver so anonymous callers can share the same checks.
func (u *User) IsAdmin() bool {
	return u != nil && u.Role == RoleAdmin
}

// UserFilter narrows the admin user listing
type UserFilter struct {
	Status  string
	Search  string
	Page    int
	PerPage int
}

// UserStats are the global counters shown alongside the user listing
type UserStats struct {
	Total    int `json:"total_users"`
	Active   int `json:"active_users"`
	Inactive int `json:"inactive_users"`
}
