package mocks

import (
	"context"
	"sort"
	"strings"

	"github.com/cloudblog-api/internal/models"
	"github.com/cloudblog-api/internal/repository"
)

// Verify interface compliance
var _ repository.UserRepository = (*MockUserRepository)(nil)
var _ repository.ArticleRepository = (*MockArticleRepository)(nil)
var _ repository.CommentRepository = (*MockCommentRepository)(nil)
var _ repository.TokenRepository = (*MockTokenRepository)(nil)

// MockUserRepository is a mock implementation of UserRepository
type MockUserRepository struct {
	Users       map[string]*models.User
	CreateError error
	UpdateError error
}

func NewMockUserRepository() *MockUserRepository {
	return &MockUserRepository{Users: make(map[string]*models.User)}
}

func (m *MockUserRepository) Create(ctx context.Context, user *models.User) error {
	if m.CreateError != nil {
		return m.CreateError
	}
	m.Users[user.ID] = user
	return nil
}

func (m *MockUserRepository) GetByID(ctx context.Context, id string) (*models.User, error) {
	return m.Users[id], nil
}

func (m *MockUserRepository) GetByEmail(ctx context.Context, email string) (*models.User, error) {
	for _, u := range m.Users {
		if u.Email == email {
			return u, nil
		}
	}
	return nil, nil
}

func (m *MockUserRepository) Update(ctx context.Context, user *models.User) error {
	if m.UpdateError != nil {
		return m.UpdateError
	}
	m.Users[user.ID] = user
	return nil
}

func (m *MockUserRepository) Delete(ctx context.Context, id string) error {
	delete(m.Users, id)
	return nil
}

func (m *MockUserRepository) List(ctx context.Context, filter *models.UserFilter) ([]*models.User, int, error) {
	matched := make([]*models.User, 0)
	for _, u := range m.Users {
		if filter.Status != "" && filter.Status != "all" && u.Status != filter.Status {
			continue
		}
		if filter.Search != "" {
			needle := strings.ToLower(filter.Search)
			if !strings.Contains(strings.ToLower(u.Name), needle) &&
				!strings.Contains(strings.ToLower(u.Email), needle) &&
				!strings.Contains(strings.ToLower(u.Designation), needle) {
				continue
			}
		}
		matched = append(matched, u)
	}
	sort.Slice(matched, func(i, j int) bool { return matched[i].ID < matched[j].ID })

	total := len(matched)
	start := (filter.Page - 1) * filter.PerPage
	if start > total {
		start = total
	}
	end := start + filter.PerPage
	if end > total {
		end = total
	}
	return matched[start:end], total, nil
}

func (m *MockUserRepository) EmailExists(ctx context.Context, email, excludeID string) (bool, error) {
	for _, u := range m.Users {
		if u.Email == email && u.ID != excludeID {
			return true, nil
		}
	}
	return false, nil
}

func (m *MockUserRepository) SetStatus(ctx context.Context, id, status string) error {
	if u, ok := m.Users[id]; ok {
		u.Status = status
	}
	return nil
}

func (m *MockUserRepository) SetLastLogin(ctx context.Context, id string) error {
	return nil
}

func (m *MockUserRepository) Count(ctx context.Context) (int, error) {
	return len(m.Users), nil
}

func (m *MockUserRepository) CountByStatus(ctx context.Context, status string) (int, error) {
	n := 0
	for _, u := range m.Users {
		if u.Status == status {
			n++
		}
	}
	return n, nil
}

// MockArticleRepository is a mock implementation of ArticleRepository
type MockArticleRepository struct {
	Articles    map[string]*models.Article
	CreateError error
	UpdateError error
	DeleteError error
}

func NewMockArticleRepository() *MockArticleRepository {
	return &MockArticleRepository{Articles: make(map[string]*models.Article)}
}

func (m *MockArticleRepository) Create(ctx context.Context, article *models.Article) error {
	if m.CreateError != nil {
		return m.CreateError
	}
	m.Articles[article.ID] = article
	return nil
}

func (m *MockArticleRepository) GetByID(ctx context.Context, id string) (*models.Article, error) {
	return m.Articles[id], nil
}

func (m *MockArticleRepository) Update(ctx context.Context, article *models.Article) error {
	if m.UpdateError != nil {
		return m.UpdateError
	}
	m.Articles[article.ID] = article
	return nil
}

func (m *MockArticleRepository) UpdateStatus(ctx context.Context, article *models.Article) error {
	if m.UpdateError != nil {
		return m.UpdateError
	}
	m.Articles[article.ID] = article
	return nil
}

func (m *MockArticleRepository) Delete(ctx context.Context, id string) error {
	if m.DeleteError != nil {
		return m.DeleteError
	}
	delete(m.Articles, id)
	return nil
}

func (m *MockArticleRepository) ListPublished(ctx context.Context, page, perPage int) ([]*models.Article, int, error) {
	matched := make([]*models.Article, 0)
	for _, a := range m.Articles {
		if a.Status == models.ArticleStatusPublished {
			matched = append(matched, a)
		}
	}
	sort.Slice(matched, func(i, j int) bool { return matched[i].ID < matched[j].ID })

	total := len(matched)
	start := (page - 1) * perPage
	if start > total {
		start = total
	}
	end := start + perPage
	if end > total {
		end = total
	}
	return matched[start:end], total, nil
}

func (m *MockArticleRepository) ListAll(ctx context.Context) ([]*models.Article, error) {
	all := make([]*models.Article, 0, len(m.Articles))
	for _, a := range m.Articles {
		all = append(all, a)
	}
	sort.Slice(all, func(i, j int) bool { return all[i].ID < all[j].ID })
	return all, nil
}

func (m *MockArticleRepository) ListByAuthor(ctx context.Context, authorID string) ([]*models.Article, error) {
	matched := make([]*models.Article, 0)
	for _, a := range m.Articles {
		if a.AuthorID == authorID {
			matched = append(matched, a)
		}
	}
	sort.Slice(matched, func(i, j int) bool { return matched[i].ID < matched[j].ID })
	return matched, nil
}

func (m *MockArticleRepository) Count(ctx context.Context) (int, error) {
	return len(m.Articles), nil
}

func (m *MockArticleRepository) CountByStatus(ctx context.Context, status string) (int, error) {
	n := 0
	for _, a := range m.Articles {
		if a.Status == status {
			n++
		}
	}
	return n, nil
}

// MockCommentRepository is a mock implementation of CommentRepository
type MockCommentRepository struct {
	Comments    map[string]*models.Comment
	CreateError error
}

func NewMockCommentRepository() *MockCommentRepository {
	return &MockCommentRepository{Comments: make(map[string]*models.Comment)}
}

func (m *MockCommentRepository) Create(ctx context.Context, comment *models.Comment) error {
	if m.CreateError != nil {
		return m.CreateError
	}
	m.Comments[comment.ID] = comment
	return nil
}

func (m *MockCommentRepository) GetByID(ctx context.Context, id string) (*models.Comment, error) {
	return m.Comments[id], nil
}

func (m *MockCommentRepository) UpdateContent(ctx context.Context, comment *models.Comment) error {
	m.Comments[comment.ID] = comment
	return nil
}

func (m *MockCommentRepository) SetStatus(ctx context.Context, id, status string) error {
	if c, ok := m.Comments[id]; ok {
		c.Status = status
	}
	return nil
}

func (m *MockCommentRepository) SetReported(ctx context.Context, id string, reported bool) error {
	if c, ok := m.Comments[id]; ok {
		c.IsReported = reported
	}
	return nil
}

func (m *MockCommentRepository) Delete(ctx context.Context, id string) error {
	delete(m.Comments, id)
	return nil
}

func (m *MockCommentRepository) ListForArticle(ctx context.Context, articleID string, viewer *models.User) ([]*models.Comment, error) {
	matched := make([]*models.Comment, 0)
	for _, c := range m.Comments {
		if c.ArticleID != articleID {
			continue
		}
		if !commentVisible(viewer, c) {
			continue
		}
		matched = append(matched, c)
	}
	sort.Slice(matched, func(i, j int) bool { return matched[i].ID < matched[j].ID })
	return matched, nil
}

func commentVisible(viewer *models.User, c *models.Comment) bool {
	if c.Status == models.CommentStatusApproved || c.Status == models.CommentStatusPending {
		return true
	}
	if viewer == nil {
		return false
	}
	if viewer.IsAdmin() {
		return true
	}
	return c.UserID == viewer.ID
}

func (m *MockCommentRepository) ListModeration(ctx context.Context, filter *models.CommentFilter) ([]*models.Comment, error) {
	matched := make([]*models.Comment, 0)
	for _, c := range m.Comments {
		if filter.Status == models.ModerationStatusReported {
			if !c.IsReported {
				continue
			}
		} else if filter.Status != "" && filter.Status != "all" && c.Status != filter.Status {
			continue
		}
		if filter.ArticleID != "" && filter.ArticleID != "all" && c.ArticleID != filter.ArticleID {
			continue
		}
		if filter.Search != "" && !strings.Contains(strings.ToLower(c.Content), strings.ToLower(filter.Search)) {
			continue
		}
		matched = append(matched, c)
	}
	sort.Slice(matched, func(i, j int) bool { return matched[i].ID < matched[j].ID })
	return matched, nil
}

func (m *MockCommentRepository) Count(ctx context.Context) (int, error) {
	return len(m.Comments), nil
}

func (m *MockCommentRepository) CountByStatus(ctx context.Context, status string) (int, error) {
	n := 0
	for _, c := range m.Comments {
		if c.Status == status {
			n++
		}
	}
	return n, nil
}

func (m *MockCommentRepository) CountReported(ctx context.Context) (int, error) {
	n := 0
	for _, c := range m.Comments {
		if c.IsReported {
			n++
		}
	}
	return n, nil
}

// MockTokenRepository is a mock implementation of TokenRepository
type MockTokenRepository struct {
	Tokens      map[string]*models.AccessToken // keyed by hash
	CreateError error
}

func NewMockTokenRepository() *MockTokenRepository {
	return &MockTokenRepository{Tokens: make(map[string]*models.AccessToken)}
}

func (m *MockTokenRepository) Create(ctx context.Context, token *models.AccessToken) error {
	if m.CreateError != nil {
		return m.CreateError
	}
	m.Tokens[token.TokenHash] = token
	return nil
}

func (m *MockTokenRepository) GetByHash(ctx context.Context, hash string) (*models.AccessToken, error) {
	return m.Tokens[hash], nil
}

func (m *MockTokenRepository) Delete(ctx context.Context, id string) error {
	for hash, t := range m.Tokens {
		if t.ID == id {
			delete(m.Tokens, hash)
		}
	}
	return nil
}

func (m *MockTokenRepository) DeleteForUser(ctx context.Context, userID string) error {
	for hash, t := range m.Tokens {
		if t.UserID == userID {
			delete(m.Tokens, hash)
		}
	}
	return nil
}

func (m *MockTokenRepository) TouchLastUsed(ctx context.Context, id string) error {
	return nil
}
