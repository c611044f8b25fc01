package models

import (
	"time"
)

// Comment represents a comment on an article
type Comment struct {
	ID         string    `json:"id" db:"id"`
	ArticleID  string    `json:"article_id" db:"article_id"`
	UserID     string    `json:"user_id" db:"user_id"`
	Content    string    `json:"content" db:"content"`
	Status     string    `json:"status" db:"status"`
	IsReported bool      `json:"is_reported" db:"is_reported"`
	CreatedAt  time.Time `json:"created_at" db:"created_at"`
	UpdatedAt  time.Time `json:"updated_at" db:"updated_at"`

	// Populated on reads that join users/articles.
	UserName     string `json:"user_name,omitempty" db:"-"`
	UserRole     string `json:"user_role,omitempty" db:"-"`
	ArticleTitle string `json:"article_title,omitempty" db:"-"`
}

// Comment moderation statuses. The is_reported flag is orthogonal:
// a comment can be Approved and reported at the same time.
const (
	CommentStatusPending  = "Pending"
	CommentStatusApproved = "Approved"
	CommentStatusRejected = "Rejected"
)

// ValidCommentStatuses defines allowed comment statuses
var ValidCommentStatuses = map[string]bool{
	CommentStatusPending:  true,
	CommentStatusApproved: true,
	CommentStatusRejected: true,
}

// ModerationStatusReported is the pseudo-status accepted by the moderation
// dashboard filter. It selects on is_reported instead of status.
const ModerationStatusReported = "Reported"

// MaxCommentLength is the maximum allowed characters in a comment
const MaxCommentLength = 1000

// CommentFilter narrows the moderation dashboard listing
type CommentFilter struct {
	Status    string // Pending, Approved, Rejected, or Reported
	ArticleID string
	Search    string
}

// CommentStats are the global comment counters for the moderation dashboard
type CommentStats struct {
	Total    int `json:"total"`
	Pending  int `json:"pending"`
	Reported int `json:"reported"`
}

// ModerationDashboard is the admin comment listing plus global counters
type ModerationDashboard struct {
	Comments []*Comment   `json:"comments"`
	Stats    CommentStats `json:"stats"`
}
