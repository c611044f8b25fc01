package mocks

import (
	"context"

	"github.com/cloudblog-api/internal/models"
	"github.com/cloudblog-api/internal/service"
)

// Verify interface compliance
var _ service.AuthService = (*MockAuthService)(nil)
var _ service.ArticleService = (*MockArticleService)(nil)
var _ service.CommentService = (*MockCommentService)(nil)
var _ service.UserService = (*MockUserService)(nil)

// MockAuthService is a mock implementation of AuthService
type MockAuthService struct {
	RegisterFunc     func(ctx context.Context, req *models.RegisterRequest) (*models.AuthResponse, error)
	LoginFunc        func(ctx context.Context, req *models.LoginRequest) (*models.AuthResponse, error)
	LogoutFunc       func(ctx context.Context, token *models.AccessToken) error
	AuthenticateFunc func(ctx context.Context, plaintext string) (*models.User, *models.AccessToken, error)
}

func (m *MockAuthService) Register(ctx context.Context, req *models.RegisterRequest) (*models.AuthResponse, error) {
	return m.RegisterFunc(ctx, req)
}

func (m *MockAuthService) Login(ctx context.Context, req *models.LoginRequest) (*models.AuthResponse, error) {
	return m.LoginFunc(ctx, req)
}

func (m *MockAuthService) Logout(ctx context.Context, token *models.AccessToken) error {
	if m.LogoutFunc != nil {
		return m.LogoutFunc(ctx, token)
	}
	return nil
}

func (m *MockAuthService) Authenticate(ctx context.Context, plaintext string) (*models.User, *models.AccessToken, error) {
	if m.AuthenticateFunc != nil {
		return m.AuthenticateFunc(ctx, plaintext)
	}
	return nil, nil, nil
}

// MockArticleService is a mock implementation of ArticleService
type MockArticleService struct {
	ListFunc       func(ctx context.Context, page int) (*models.Paginated, error)
	GetFunc        func(ctx context.Context, viewer *models.User, id string) (*models.Article, error)
	CreateFunc     func(ctx context.Context, author *models.User, in *models.ArticleInput) (*models.Article, error)
	UpdateFunc     func(ctx context.Context, actor *models.User, id string, in *models.ArticleInput) (*models.Article, error)
	DeleteFunc     func(ctx context.Context, actor *models.User, id string) error
	ArchiveFunc    func(ctx context.Context, actor *models.User, id string) (*models.Article, bool, error)
	PublishFunc    func(ctx context.Context, actor *models.User, id string) (*models.Article, bool, error)
	ListAdminFunc  func(ctx context.Context, actor *models.User) ([]*models.Article, error)
	ListMineFunc   func(ctx context.Context, actor *models.User) ([]*models.Article, error)
	AdminStatsFunc func(ctx context.Context, actor *models.User) (*models.AdminStats, error)
}

func (m *MockArticleService) List(ctx context.Context, page int) (*models.Paginated, error) {
	return m.ListFunc(ctx, page)
}

func (m *MockArticleService) Get(ctx context.Context, viewer *models.User, id string) (*models.Article, error) {
	return m.GetFunc(ctx, viewer, id)
}

func (m *MockArticleService) Create(ctx context.Context, author *models.User, in *models.ArticleInput) (*models.Article, error) {
	return m.CreateFunc(ctx, author, in)
}

func (m *MockArticleService) Update(ctx context.Context, actor *models.User, id string, in *models.ArticleInput) (*models.Article, error) {
	return m.UpdateFunc(ctx, actor, id, in)
}

func (m *MockArticleService) Delete(ctx context.Context, actor *models.User, id string) error {
	return m.DeleteFunc(ctx, actor, id)
}

func (m *MockArticleService) Archive(ctx context.Context, actor *models.User, id string) (*models.Article, bool, error) {
	return m.ArchiveFunc(ctx, actor, id)
}

func (m *MockArticleService) Publish(ctx context.Context, actor *models.User, id string) (*models.Article, bool, error) {
	return m.PublishFunc(ctx, actor, id)
}

func (m *MockArticleService) ListAdmin(ctx context.Context, actor *models.User) ([]*models.Article, error) {
	return m.ListAdminFunc(ctx, actor)
}

func (m *MockArticleService) ListMine(ctx context.Context, actor *models.User) ([]*models.Article, error) {
	return m.ListMineFunc(ctx, actor)
}

func (m *MockArticleService) AdminStats(ctx context.Context, actor *models.User) (*models.AdminStats, error) {
	return m.AdminStatsFunc(ctx, actor)
}

// MockCommentService is a mock implementation of CommentService
type MockCommentService struct {
	ListForArticleFunc func(ctx context.Context, viewer *models.User, articleID string) ([]*models.Comment, error)
	CreateFunc         func(ctx context.Context, author *models.User, articleID string, in *models.CommentInput) (*models.Comment, error)
	UpdateFunc         func(ctx context.Context, actor *models.User, id string, in *models.CommentInput) (*models.Comment, error)
	DeleteFunc         func(ctx context.Context, actor *models.User, id string) error
	ReportFunc         func(ctx context.Context, actor *models.User, id string) (*models.Comment, bool, error)
	ModerateFunc       func(ctx context.Context, actor *models.User, id string, req *models.ModerateRequest) (*models.Comment, error)
	ResolveReportFunc  func(ctx context.Context, actor *models.User, id string) (*models.Comment, error)
	DashboardFunc      func(ctx context.Context, actor *models.User, filter *models.CommentFilter) (*models.ModerationDashboard, error)
}

func (m *MockCommentService) ListForArticle(ctx context.Context, viewer *models.User, articleID string) ([]*models.Comment, error) {
	return m.ListForArticleFunc(ctx, viewer, articleID)
}

func (m *MockCommentService) Create(ctx context.Context, author *models.User, articleID string, in *models.CommentInput) (*models.Comment, error) {
	return m.CreateFunc(ctx, author, articleID, in)
}

func (m *MockCommentService) Update(ctx context.Context, actor *models.User, id string, in *models.CommentInput) (*models.Comment, error) {
	return m.UpdateFunc(ctx, actor, id, in)
}

func (m *MockCommentService) Delete(ctx context.Context, actor *models.User, id string) error {
	return m.DeleteFunc(ctx, actor, id)
}

func (m *MockCommentService) Report(ctx context.Context, actor *models.User, id string) (*models.Comment, bool, error) {
	return m.ReportFunc(ctx, actor, id)
}

func (m *MockCommentService) Moderate(ctx context.Context, actor *models.User, id string, req *models.ModerateRequest) (*models.Comment, error) {
	return m.ModerateFunc(ctx, actor, id, req)
}

func (m *MockCommentService) ResolveReport(ctx context.Context, actor *models.User, id string) (*models.Comment, error) {
	return m.ResolveReportFunc(ctx, actor, id)
}

func (m *MockCommentService) Dashboard(ctx context.Context, actor *models.User, filter *models.CommentFilter) (*models.ModerationDashboard, error) {
	return m.DashboardFunc(ctx, actor, filter)
}

// MockUserService is a mock implementation of UserService
type MockUserService struct {
	ListFunc          func(ctx context.Context, actor *models.User, filter *models.UserFilter) (*models.Paginated, *models.UserStats, error)
	GetFunc           func(ctx context.Context, actor *models.User, id string) (*models.User, error)
	CreateFunc        func(ctx context.Context, actor *models.User, in *models.UserInput) (*models.User, error)
	UpdateFunc        func(ctx context.Context, actor *models.User, id string, in *models.UserInput) (*models.User, error)
	DeleteFunc        func(ctx context.Context, actor *models.User, id string) error
	ToggleStatusFunc  func(ctx context.Context, actor *models.User, id string) (*models.User, error)
	UpdateProfileFunc func(ctx context.Context, actor *models.User, in *models.ProfileInput) (*models.User, error)
}

func (m *MockUserService) List(ctx context.Context, actor *models.User, filter *models.UserFilter) (*models.Paginated, *models.UserStats, error) {
	return m.ListFunc(ctx, actor, filter)
}

func (m *MockUserService) Get(ctx context.Context, actor *models.User, id string) (*models.User, error) {
	return m.GetFunc(ctx, actor, id)
}

func (m *MockUserService) Create(ctx context.Context, actor *models.User, in *models.UserInput) (*models.User, error) {
	return m.CreateFunc(ctx, actor, in)
}

func (m *MockUserService) Update(ctx context.Context, actor *models.User, id string, in *models.UserInput) (*models.User, error) {
	return m.UpdateFunc(ctx, actor, id, in)
}

func (m *MockUserService) Delete(ctx context.Context, actor *models.User, id string) error {
	return m.DeleteFunc(ctx, actor, id)
}

func (m *MockUserService) ToggleStatus(ctx context.Context, actor *models.User, id string) (*models.User, error) {
	return m.ToggleStatusFunc(ctx, actor, id)
}

func (m *MockUserService) UpdateProfile(ctx context.Context, actor *models.User, in *models.ProfileInput) (*models.User, error) {
	return m.UpdateProfileFunc(ctx, actor, in)
}
