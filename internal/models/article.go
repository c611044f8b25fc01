package models

import (
	"time"
)

// Article represents a blog article
type Article struct {
	ID          string     `json:"id" db:"id"`
	AuthorID    string     `json:"author_id" db:"author_id"`
	Title       string     `json:"title" db:"title"`
	Paragraph   string     `json:"paragraph" db:"paragraph"`
	Image       string     `json:"image,omitempty" db:"image"`
	Tags        []string   `json:"tags" db:"-"` // stored as JSON string in DB
	Status      string     `json:"status" db:"status"`
	PublishDate *time.Time `json:"publish_date,omitempty" db:"publish_date"`
	CreatedAt   time.Time  `json:"created_at" db:"created_at"`
	UpdatedAt   time.Time  `json:"updated_at" db:"updated_at"`

	// Author is populated on reads that join the users table.
	Author *AuthorInfo `json:"author,omitempty" db:"-"`
}

// AuthorInfo is the author summary embedded in article responses
type AuthorInfo struct {
	Name        string `json:"name"`
	Image       string `json:"image"`
	Designation string `json:"designation"`
}

// Article lifecycle statuses. There is no draft or review state.
const (
	ArticleStatusPublished = "Published"
	ArticleStatusArchived  = "Archived"
)

// ValidArticleStatuses defines allowed article statuses
var ValidArticleStatuses = map[string]bool{
	ArticleStatusPublished: true,
	ArticleStatusArchived:  true,
}

// ArticleStats are the global article counters for the admin dashboard
type ArticleStats struct {
	Total     int `json:"total"`
	Published int `json:"published"`
	Archived  int `json:"archived"`
}

// AdminStats aggregates every dashboard counter. All counts are computed
// over the full tables, never a filtered subset.
type AdminStats struct {
	Users    UserStatsSummary `json:"userStats"`
	Articles ArticleStats     `json:"articleStats"`
	Comments CommentStats     `json:"commentStats"`
}

// UserStatsSummary is the user slice of AdminStats
type UserStatsSummary struct {
	Total  int `json:"total"`
	Active int `json:"active"`
}
