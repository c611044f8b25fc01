package repository

import (
	"context"

	"github.com/cloudblog-api/internal/database"
	"github.com/cloudblog-api/internal/models"
)

// UserRepository defines the interface for user data operations
type UserRepository interface {
	Create(ctx context.Context, user *models.User) error
	GetByID(ctx context.Context, id string) (*models.User, error)
	GetByEmail(ctx context.Context, email string) (*models.User, error)
	Update(ctx context.Context, user *models.User) error
	Delete(ctx context.Context, id string) error
	List(ctx context.Context, filter *models.UserFilter) ([]*models.User, int, error)
	EmailExists(ctx context.Context, email, excludeID string) (bool, error)
	SetStatus(ctx context.Context, id, status string) error
	SetLastLogin(ctx context.Context, id string) error
	Count(ctx context.Context) (int, error)
	CountByStatus(ctx context.Context, status string) (int, error)
}

// ArticleRepository defines the interface for article data operations
type ArticleRepository interface {
	Create(ctx context.Context, article *models.Article) error
	GetByID(ctx context.Context, id string) (*models.Article, error)
	Update(ctx context.Context, article *models.Article) error
	UpdateStatus(ctx context.Context, article *models.Article) error
	Delete(ctx context.Context, id string) error
	ListPublished(ctx context.Context, page, perPage int) ([]*models.Article, int, error)
	ListAll(ctx context.Context) ([]*models.Article, error)
	ListByAuthor(ctx context.Context, authorID string) ([]*models.Article, error)
	Count(ctx context.Context) (int, error)
	CountByStatus(ctx context.Context, status string) (int, error)
}

// CommentRepository defines the interface for comment data operations
type CommentRepository interface {
	Create(ctx context.Context, comment *models.Comment) error
	GetByID(ctx context.Context, id string) (*models.Comment, error)
	UpdateContent(ctx context.Context, comment *models.Comment) error
	SetStatus(ctx context.Context, id, status string) error
	SetReported(ctx context.Context, id string, reported bool) error
	Delete(ctx context.Context, id string) error
	ListForArticle(ctx context.Context, articleID string, viewer *models.User) ([]*models.Comment, error)
	ListModeration(ctx context.Context, filter *models.CommentFilter) ([]*models.Comment, error)
	Count(ctx context.Context) (int, error)
	CountByStatus(ctx context.Context, status string) (int, error)
	CountReported(ctx context.Context) (int, error)
}

// TokenRepository defines the interface for access token operations
type TokenRepository interface {
	Create(ctx context.Context, token *models.AccessToken) error
	GetByHash(ctx context.Context, hash string) (*models.AccessToken, error)
	Delete(ctx context.Context, id string) error
	DeleteForUser(ctx context.Context, userID string) error
	TouchLastUsed(ctx context.Context, id string) error
}

// Repositories holds all repository interfaces
type Repositories struct {
	User    UserRepository
	Article ArticleRepository
	Comment CommentRepository
	Token   TokenRepository
}

// New creates all repositories with the given database connection
func New(db *database.DB) *Repositories {
	return &Repositories{
		User:    NewUserRepo(db),
		Article: NewArticleRepo(db),
		Comment: NewCommentRepo(db),
		Token:   NewTokenRepo(db),
	}
}
