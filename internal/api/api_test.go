package api_test

import (
	"bytes"
	"context"
	"encoding/json"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/cloudblog-api/internal/api"
	"github.com/cloudblog-api/internal/config"
	"github.com/cloudblog-api/internal/mocks"
	"github.com/cloudblog-api/internal/models"
	"github.com/cloudblog-api/internal/moderation"
	"github.com/cloudblog-api/internal/service"
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
)

type testEnv struct {
	router   *gin.Engine
	auth     *mocks.MockAuthService
	articles *mocks.MockArticleService
	comments *mocks.MockCommentService
	users    *mocks.MockUserService
	blobs    *mocks.MockBlobStore
}

func setupTestRouter() *testEnv {
	gin.SetMode(gin.TestMode)

	env := &testEnv{
		auth:     &mocks.MockAuthService{},
		articles: &mocks.MockArticleService{},
		comments: &mocks.MockCommentService{},
		users:    &mocks.MockUserService{},
		blobs:    mocks.NewMockBlobStore(),
	}

	services := &service.Services{
		Auth:    env.auth,
		Article: env.articles,
		Comment: env.comments,
		User:    env.users,
	}

	cfg := &config.Config{
		Server: config.ServerConfig{Port: "8080"},
		Storage: config.StorageConfig{
			UploadDir:     "/tmp/test-uploads",
			BaseURL:       "/uploads",
			MaxUploadSize: 2 * 1024 * 1024,
		},
	}

	env.router = api.NewRouter(services, env.blobs, cfg, zerolog.Nop())
	return env
}

// asUser wires the mock authenticator to accept the token "valid-token" as
// the given user.
func (e *testEnv) asUser(user *models.User) {
	e.auth.AuthenticateFunc = func(ctx context.Context, plaintext string) (*models.User, *models.AccessToken, error) {
		if plaintext == "valid-token" {
			return user, &models.AccessToken{ID: "tok-1", UserID: user.ID}, nil
		}
		return nil, nil, nil
	}
}

func doJSON(router *gin.Engine, method, path, token string, body interface{}) *httptest.ResponseRecorder {
	var buf bytes.Buffer
	if body != nil {
		json.NewEncoder(&buf).Encode(body)
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func TestHealthEndpoint(t *testing.T) {
	env := setupTestRouter()

	w := doJSON(env.router, "GET", "/health", "", nil)
	if w.Code != http.StatusOK {
		t.Errorf("Expected status 200, got %d", w.Code)
	}

	var response map[string]interface{}
	json.Unmarshal(w.Body.Bytes(), &response)
	if response["status"] != "healthy" {
		t.Errorf("Expected status 'healthy', got %v", response["status"])
	}
}

func TestProtectedRoutesRequireToken(t *testing.T) {
	env := setupTestRouter()
	env.auth.AuthenticateFunc = func(ctx context.Context, plaintext string) (*models.User, *models.AccessToken, error) {
		return nil, nil, nil
	}

	paths := []struct {
		method string
		path   string
	}{
		{"POST", "/logout"},
		{"GET", "/user"},
		{"POST", "/articles"},
		{"PUT", "/comments/c1/moderate"},
		{"GET", "/admin/comments"},
		{"GET", "/users"},
	}
	for _, p := range paths {
		w := doJSON(env.router, p.method, p.path, "", nil)
		if w.Code != http.StatusUnauthorized {
			t.Errorf("%s %s: expected 401 without token, got %d", p.method, p.path, w.Code)
		}
		w = doJSON(env.router, p.method, p.path, "garbage", nil)
		if w.Code != http.StatusUnauthorized {
			t.Errorf("%s %s: expected 401 with bad token, got %d", p.method, p.path, w.Code)
		}
	}
}

func TestInactiveUserRejected(t *testing.T) {
	env := setupTestRouter()
	env.asUser(&models.User{ID: "u1", Role: models.RoleUser, Status: models.UserStatusInactive})

	w := doJSON(env.router, "GET", "/user", "valid-token", nil)
	if w.Code != http.StatusForbidden {
		t.Errorf("Expected 403 for inactive account, got %d", w.Code)
	}
}

func TestRegisterEndpoint(t *testing.T) {
	env := setupTestRouter()
	env.auth.RegisterFunc = func(ctx context.Context, req *models.RegisterRequest) (*models.AuthResponse, error) {
		return &models.AuthResponse{
			Token: "new-token",
			User:  &models.User{ID: "u1", Name: req.Name, Email: req.Email, Role: models.RoleUser},
		}, nil
	}

	w := doJSON(env.router, "POST", "/register", "", map[string]string{
		"name": "Alice", "email": "alice@example.com", "password": "password123",
	})
	if w.Code != http.StatusCreated {
		t.Fatalf("Expected 201, got %d: %s", w.Code, w.Body.String())
	}

	var resp models.AuthResponse
	json.Unmarshal(w.Body.Bytes(), &resp)
	if resp.Token != "new-token" {
		t.Errorf("Expected token in response, got %q", resp.Token)
	}
}

func TestValidationErrorsRenderAs422(t *testing.T) {
	env := setupTestRouter()
	env.auth.RegisterFunc = func(ctx context.Context, req *models.RegisterRequest) (*models.AuthResponse, error) {
		return nil, service.Invalid(map[string]string{"email": "The email field is required."})
	}

	w := doJSON(env.router, "POST", "/register", "", map[string]string{"name": "x"})
	if w.Code != http.StatusUnprocessableEntity {
		t.Fatalf("Expected 422, got %d", w.Code)
	}

	var resp struct {
		Errors map[string]string `json:"errors"`
	}
	json.Unmarshal(w.Body.Bytes(), &resp)
	if resp.Errors["email"] == "" {
		t.Errorf("Expected email field error, got %v", resp.Errors)
	}
}

func TestArchiveForbiddenMapsTo403(t *testing.T) {
	env := setupTestRouter()
	env.asUser(&models.User{ID: "u1", Role: models.RoleUser, Status: models.UserStatusActive})
	env.articles.ArchiveFunc = func(ctx context.Context, actor *models.User, id string) (*models.Article, bool, error) {
		return nil, false, service.Forbidden(moderation.ReasonNotAdmin)
	}

	w := doJSON(env.router, "PUT", "/articles/a1/archive", "valid-token", nil)
	if w.Code != http.StatusForbidden {
		t.Errorf("Expected 403, got %d", w.Code)
	}
	if !strings.Contains(w.Body.String(), "unauthorized") {
		t.Errorf("Expected generic denial body, got %s", w.Body.String())
	}
}

func TestArchiveAlreadyArchivedMessage(t *testing.T) {
	env := setupTestRouter()
	env.asUser(&models.User{ID: "admin", Role: models.RoleAdmin, Status: models.UserStatusActive})
	env.articles.ArchiveFunc = func(ctx context.Context, actor *models.User, id string) (*models.Article, bool, error) {
		return &models.Article{ID: id, Status: models.ArticleStatusArchived}, false, nil
	}

	w := doJSON(env.router, "PUT", "/articles/a1/archive", "valid-token", nil)
	if w.Code != http.StatusOK {
		t.Fatalf("Expected 200, got %d", w.Code)
	}

	var resp map[string]interface{}
	json.Unmarshal(w.Body.Bytes(), &resp)
	if resp["message"] != "Article is already archived." {
		t.Errorf("Expected already-archived message, got %v", resp["message"])
	}
}

func TestGetMissingArticleMapsTo404(t *testing.T) {
	env := setupTestRouter()
	env.articles.GetFunc = func(ctx context.Context, viewer *models.User, id string) (*models.Article, error) {
		return nil, service.ErrNotFound
	}

	w := doJSON(env.router, "GET", "/articles/nope", "", nil)
	if w.Code != http.StatusNotFound {
		t.Errorf("Expected 404, got %d", w.Code)
	}
}

func TestCreateArticleMultipartWithImage(t *testing.T) {
	env := setupTestRouter()
	env.asUser(&models.User{ID: "u1", Role: models.RoleUser, Status: models.UserStatusActive})

	var captured *models.ArticleInput
	env.articles.CreateFunc = func(ctx context.Context, author *models.User, in *models.ArticleInput) (*models.Article, error) {
		captured = in
		return &models.Article{ID: "a1", Title: in.Title, Image: in.ImageURL, Tags: in.Tags}, nil
	}

	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)
	mw.WriteField("title", "Hello")
	mw.WriteField("paragraph", "Body text")
	mw.WriteField("tags", "go, web")
	part, _ := mw.CreateFormFile("image", "cover.png")
	part.Write([]byte("fake-png-bytes"))
	mw.Close()

	req := httptest.NewRequest("POST", "/articles", &buf)
	req.Header.Set("Content-Type", mw.FormDataContentType())
	req.Header.Set("Authorization", "Bearer valid-token")
	w := httptest.NewRecorder()
	env.router.ServeHTTP(w, req)

	if w.Code != http.StatusCreated {
		t.Fatalf("Expected 201, got %d: %s", w.Code, w.Body.String())
	}
	if captured == nil {
		t.Fatal("Expected the service to be called")
	}
	if !captured.HasImage || captured.ImageURL == "" {
		t.Error("Expected the uploaded image to reach the service as a URL")
	}
	if len(captured.Tags) != 2 || captured.Tags[0] != "go" || captured.Tags[1] != "web" {
		t.Errorf("Expected normalized tags [go web], got %v", captured.Tags)
	}
	if !env.blobs.Exists(context.Background(), captured.ImageURL) {
		t.Error("Expected the blob to be stored")
	}
}

func TestCreateArticleRejectsBadExtension(t *testing.T) {
	env := setupTestRouter()
	env.asUser(&models.User{ID: "u1", Role: models.RoleUser, Status: models.UserStatusActive})
	env.articles.CreateFunc = func(ctx context.Context, author *models.User, in *models.ArticleInput) (*models.Article, error) {
		t.Fatal("Service should not be called for a rejected upload")
		return nil, nil
	}

	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)
	mw.WriteField("title", "Hello")
	part, _ := mw.CreateFormFile("image", "payload.exe")
	part.Write([]byte("not-an-image"))
	mw.Close()

	req := httptest.NewRequest("POST", "/articles", &buf)
	req.Header.Set("Content-Type", mw.FormDataContentType())
	req.Header.Set("Authorization", "Bearer valid-token")
	w := httptest.NewRecorder()
	env.router.ServeHTTP(w, req)

	if w.Code != http.StatusUnprocessableEntity {
		t.Errorf("Expected 422 for bad extension, got %d", w.Code)
	}
}

func TestCreateArticleJSONTagShapes(t *testing.T) {
	env := setupTestRouter()
	env.asUser(&models.User{ID: "u1", Role: models.RoleUser, Status: models.UserStatusActive})

	var captured *models.ArticleInput
	env.articles.CreateFunc = func(ctx context.Context, author *models.User, in *models.ArticleInput) (*models.Article, error) {
		captured = in
		return &models.Article{ID: "a1"}, nil
	}

	bodies := []string{
		`{"title":"T","paragraph":"P","tags":["go","web"]}`,
		`{"title":"T","paragraph":"P","tags":"[\"go\",\"web\"]"}`,
		`{"title":"T","paragraph":"P","tags":"go, web"}`,
	}
	for _, body := range bodies {
		captured = nil
		req := httptest.NewRequest("POST", "/articles", strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
		req.Header.Set("Authorization", "Bearer valid-token")
		w := httptest.NewRecorder()
		env.router.ServeHTTP(w, req)

		if w.Code != http.StatusCreated {
			t.Fatalf("body %s: expected 201, got %d", body, w.Code)
		}
		if len(captured.Tags) != 2 || captured.Tags[0] != "go" || captured.Tags[1] != "web" {
			t.Errorf("body %s: expected [go web], got %v", body, captured.Tags)
		}
	}
}

func TestReportAlreadyReportedMessage(t *testing.T) {
	env := setupTestRouter()
	env.asUser(&models.User{ID: "u1", Role: models.RoleUser, Status: models.UserStatusActive})
	env.comments.ReportFunc = func(ctx context.Context, actor *models.User, id string) (*models.Comment, bool, error) {
		return &models.Comment{ID: id, IsReported: true}, false, nil
	}

	w := doJSON(env.router, "PUT", "/comments/c1/report", "valid-token", nil)
	if w.Code != http.StatusOK {
		t.Fatalf("Expected 200 for repeat report, got %d", w.Code)
	}

	var resp map[string]interface{}
	json.Unmarshal(w.Body.Bytes(), &resp)
	if resp["message"] != "Comment was already reported." {
		t.Errorf("Expected already-reported message, got %v", resp["message"])
	}
}

func TestDashboardPassesFilters(t *testing.T) {
	env := setupTestRouter()
	env.asUser(&models.User{ID: "admin", Role: models.RoleAdmin, Status: models.UserStatusActive})

	var captured *models.CommentFilter
	env.comments.DashboardFunc = func(ctx context.Context, actor *models.User, filter *models.CommentFilter) (*models.ModerationDashboard, error) {
		captured = filter
		return &models.ModerationDashboard{
			Comments: []*models.Comment{},
			Stats:    models.CommentStats{Total: 5, Pending: 2, Reported: 1},
		}, nil
	}

	w := doJSON(env.router, "GET", "/admin/comments?status=Reported&article_id=a1&search=spam", "valid-token", nil)
	if w.Code != http.StatusOK {
		t.Fatalf("Expected 200, got %d", w.Code)
	}
	if captured.Status != "Reported" || captured.ArticleID != "a1" || captured.Search != "spam" {
		t.Errorf("Expected query filters to reach the service, got %+v", captured)
	}
}

func TestLogoutRevokesPresentedToken(t *testing.T) {
	env := setupTestRouter()
	env.asUser(&models.User{ID: "u1", Role: models.RoleUser, Status: models.UserStatusActive})

	var revoked string
	env.auth.LogoutFunc = func(ctx context.Context, token *models.AccessToken) error {
		revoked = token.ID
		return nil
	}

	w := doJSON(env.router, "POST", "/logout", "valid-token", nil)
	if w.Code != http.StatusOK {
		t.Fatalf("Expected 200, got %d", w.Code)
	}
	if revoked != "tok-1" {
		t.Errorf("Expected the presented token to be revoked, got %q", revoked)
	}
}

func TestUserListPassesFilters(t *testing.T) {
	env := setupTestRouter()
	env.asUser(&models.User{ID: "admin", Role: models.RoleAdmin, Status: models.UserStatusActive})

	var captured *models.UserFilter
	env.users.ListFunc = func(ctx context.Context, actor *models.User, filter *models.UserFilter) (*models.Paginated, *models.UserStats, error) {
		captured = filter
		return models.NewPaginated([]*models.User{}, filter.Page, 8, 0), &models.UserStats{}, nil
	}

	w := doJSON(env.router, "GET", "/users?status=Active&search=ali&page=2", "valid-token", nil)
	if w.Code != http.StatusOK {
		t.Fatalf("Expected 200, got %d", w.Code)
	}
	if captured.Status != "Active" || captured.Search != "ali" || captured.Page != 2 {
		t.Errorf("Expected query filters to reach the service, got %+v", captured)
	}
}
