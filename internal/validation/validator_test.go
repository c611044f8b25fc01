package validation

import (
	"reflect"
	"strings"
	"testing"

	"github.com/cloudblog-api/internal/models"
)

func TestValidEmail(t *testing.T) {
	valid := []string{"user@example.com", "a.b+c@sub.domain.org", "x_1@test.io"}
	for _, e := range valid {
		if !ValidEmail(e) {
			t.Errorf("Expected %q to be valid", e)
		}
	}

	invalid := []string{"", "plainaddress", "@no-local.com", "user@", "user@nodot"}
	for _, e := range invalid {
		if ValidEmail(e) {
			t.Errorf("Expected %q to be invalid", e)
		}
	}
}

func TestRegisterValidation(t *testing.T) {
	errs := Register(&models.RegisterRequest{})
	for _, field := range []string{"name", "email", "password"} {
		if errs[field] == "" {
			t.Errorf("Expected error for missing %s", field)
		}
	}

	errs = Register(&models.RegisterRequest{
		Name:     "Alice",
		Email:    "alice@example.com",
		Password: "short",
	})
	if errs["password"] == "" {
		t.Error("Expected error for short password")
	}

	errs = Register(&models.RegisterRequest{
		Name:     "Alice",
		Email:    "alice@example.com",
		Password: "long-enough",
	})
	if !errs.Ok() {
		t.Errorf("Expected valid registration, got %v", errs)
	}
}

func TestArticleValidation(t *testing.T) {
	errs := Article(&models.ArticleInput{})
	if errs["title"] == "" || errs["paragraph"] == "" {
		t.Errorf("Expected title and paragraph errors, got %v", errs)
	}

	errs = Article(&models.ArticleInput{Title: "T", Paragraph: "P", Status: "Draft"})
	if errs["status"] == "" {
		t.Error("Expected error for unknown status")
	}

	// Empty status is fine; the service falls back to the configured default
	errs = Article(&models.ArticleInput{Title: "T", Paragraph: "P"})
	if !errs.Ok() {
		t.Errorf("Expected valid article, got %v", errs)
	}
}

func TestCommentValidation(t *testing.T) {
	if errs := Comment(&models.CommentInput{Content: "  "}); errs["content"] == "" {
		t.Error("Expected error for blank content")
	}

	long := strings.Repeat("x", models.MaxCommentLength+1)
	if errs := Comment(&models.CommentInput{Content: long}); errs["content"] == "" {
		t.Error("Expected error for oversized content")
	}

	if errs := Comment(&models.CommentInput{Content: "fine"}); !errs.Ok() {
		t.Errorf("Expected valid comment, got %v", errs)
	}
}

func TestModerateValidation(t *testing.T) {
	for _, status := range []string{models.CommentStatusApproved, models.CommentStatusRejected} {
		if errs := Moderate(&models.ModerateRequest{Status: status}); !errs.Ok() {
			t.Errorf("Expected %s to be accepted, got %v", status, errs)
		}
	}

	// Pending is a starting state, not a moderation outcome
	for _, status := range []string{"", models.CommentStatusPending, "Deleted"} {
		if errs := Moderate(&models.ModerateRequest{Status: status}); errs.Ok() {
			t.Errorf("Expected %q to be rejected", status)
		}
	}
}

func TestUserValidationPasswordOptionalOnUpdate(t *testing.T) {
	in := &models.UserInput{
		Name:   "Bob",
		Email:  "bob@example.com",
		Role:   models.RoleUser,
		Status: models.UserStatusActive,
	}

	if errs := User(in, false); errs["password"] == "" {
		t.Error("Expected password to be required on create")
	}
	if errs := User(in, true); !errs.Ok() {
		t.Errorf("Expected password to be optional on update, got %v", errs)
	}

	in.Password = "short"
	if errs := User(in, true); errs["password"] == "" {
		t.Error("Expected short password to be rejected even on update")
	}
}

func TestNormalizeTags(t *testing.T) {
	cases := []struct {
		name string
		raw  string
		want []string
	}{
		{"json array", `["go","web"]`, []string{"go", "web"}},
		{"comma separated", "go, web", []string{"go", "web"}},
		{"single tag", "go", []string{"go"}},
		{"empty", "", []string{}},
		{"whitespace", "   ", []string{}},
		{"blank entries dropped", "go,,  ,web", []string{"go", "web"}},
		{"json array with padding", `[" go ", "web"]`, []string{"go", "web"}},
		{"malformed json falls back", `[go, web`, []string{"[go", "web"}},
	}
	for _, tc := range cases {
		got := NormalizeTags(tc.raw)
		if !reflect.DeepEqual(got, tc.want) {
			t.Errorf("%s: NormalizeTags(%q) = %v, want %v", tc.name, tc.raw, got, tc.want)
		}
	}
}
