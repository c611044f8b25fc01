package service

import (
	"context"

	"github.com/cloudblog-api/internal/config"
	"github.com/cloudblog-api/internal/models"
	"github.com/cloudblog-api/internal/repository"
	"github.com/cloudblog-api/internal/storage"
	"github.com/rs/zerolog"
)

// AuthService defines the interface for credential and token operations
type AuthService interface {
	Register(ctx context.Context, req *models.RegisterRequest) (*models.AuthResponse, error)
	Login(ctx context.Context, req *models.LoginRequest) (*models.AuthResponse, error)
	Logout(ctx context.Context, token *models.AccessToken) error
	Authenticate(ctx context.Context, plaintext string) (*models.User, *models.AccessToken, error)
}

// ArticleService defines the interface for article operations
type ArticleService interface {
	List(ctx context.Context, page int) (*models.Paginated, error)
	Get(ctx context.Context, viewer *models.User, id string) (*models.Article, error)
	Create(ctx context.Context, author *models.User, in *models.ArticleInput) (*models.Article, error)
	Update(ctx context.Context, actor *models.User, id string, in *models.ArticleInput) (*models.Article, error)
	Delete(ctx context.Context, actor *models.User, id string) error
	Archive(ctx context.Context, actor *models.User, id string) (*models.Article, bool, error)
	Publish(ctx context.Context, actor *models.User, id string) (*models.Article, bool, error)
	ListAdmin(ctx context.Context, actor *models.User) ([]*models.Article, error)
	ListMine(ctx context.Context, actor *models.User) ([]*models.Article, error)
	AdminStats(ctx context.Context, actor *models.User) (*models.AdminStats, error)
}

// CommentService defines the interface for comment operations
type CommentService interface {
	ListForArticle(ctx context.Context, viewer *models.User, articleID string) ([]*models.Comment, error)
	Create(ctx context.Context, author *models.User, articleID string, in *models.CommentInput) (*models.Comment, error)
	Update(ctx context.Context, actor *models.User, id string, in *models.CommentInput) (*models.Comment, error)
	Delete(ctx context.Context, actor *models.User, id string) error
	Report(ctx context.Context, actor *models.User, id string) (*models.Comment, bool, error)
	Moderate(ctx context.Context, actor *models.User, id string, req *models.ModerateRequest) (*models.Comment, error)
	ResolveReport(ctx context.Context, actor *models.User, id string) (*models.Comment, error)
	Dashboard(ctx context.Context, actor *models.User, filter *models.CommentFilter) (*models.ModerationDashboard, error)
}

// UserService defines the interface for user administration
type UserService interface {
	List(ctx context.Context, actor *models.User, filter *models.UserFilter) (*models.Paginated, *models.UserStats, error)
	Get(ctx context.Context, actor *models.User, id string) (*models.User, error)
	Create(ctx context.Context, actor *models.User, in *models.UserInput) (*models.User, error)
	Update(ctx context.Context, actor *models.User, id string, in *models.UserInput) (*models.User, error)
	Delete(ctx context.Context, actor *models.User, id string) error
	ToggleStatus(ctx context.Context, actor *models.User, id string) (*models.User, error)
	UpdateProfile(ctx context.Context, actor *models.User, in *models.ProfileInput) (*models.User, error)
}

// Services holds all service interfaces
type Services struct {
	Auth    AuthService
	Article ArticleService
	Comment CommentService
	User    UserService
}

// NewServices creates all services
func NewServices(repos *repository.Repositories, blobs storage.BlobStore, cfg *config.Config, log zerolog.Logger) *Services {
	return &Services{
		Auth:    newAuthService(repos, log),
		Article: newArticleService(repos, blobs, cfg, log),
		Comment: newCommentService(repos, log),
		User:    newUserService(repos, log),
	}
}
