package moderation_test

import (
	"testing"
	"time"

	"github.com/cloudblog-api/internal/models"
	"github.com/cloudblog-api/internal/moderation"
)

var (
	owner    = &models.User{ID: "user-owner", Role: models.RoleUser}
	stranger = &models.User{ID: "user-stranger", Role: models.RoleUser}
	admin    = &models.User{ID: "user-admin", Role: models.RoleAdmin}
)

func publishedArticle() *models.Article {
	return &models.Article{ID: "article-1", AuthorID: owner.ID, Status: models.ArticleStatusPublished}
}

func archivedArticle() *models.Article {
	return &models.Article{ID: "article-2", AuthorID: owner.ID, Status: models.ArticleStatusArchived}
}

func TestCanViewArticle(t *testing.T) {
	tests := []struct {
		name       string
		viewer     *models.User
		article    *models.Article
		want       bool
		wantReason moderation.Reason
	}{
		{"anonymous sees published", nil, publishedArticle(), true, moderation.ReasonNone},
		{"stranger sees published", stranger, publishedArticle(), true, moderation.ReasonNone},
		{"anonymous denied archived", nil, archivedArticle(), false, moderation.ReasonNotPublished},
		{"stranger denied archived", stranger, archivedArticle(), false, moderation.ReasonNotOwner},
		{"owner sees archived", owner, archivedArticle(), true, moderation.ReasonNone},
		{"admin sees archived", admin, archivedArticle(), true, moderation.ReasonNone},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := moderation.CanViewArticle(tt.viewer, tt.article)
			if got.Allowed != tt.want {
				t.Errorf("CanViewArticle allowed = %v, want %v", got.Allowed, tt.want)
			}
			if got.Reason != tt.wantReason {
				t.Errorf("denial reason = %q, want %q", got.Reason, tt.wantReason)
			}
		})
	}
}

func TestCanEditArticle_OwnerOnly(t *testing.T) {
	article := archivedArticle()

	if d := moderation.CanEditArticle(owner, article); !d.Allowed {
		t.Error("owner should be allowed to edit regardless of status")
	}
	if d := moderation.CanEditArticle(admin, article); d.Allowed {
		t.Error("admin should not edit someone else's content")
	}
	if d := moderation.CanEditArticle(stranger, article); d.Allowed || d.Reason != moderation.ReasonNotOwner {
		t.Errorf("stranger edit: allowed=%v reason=%q", d.Allowed, d.Reason)
	}
	if d := moderation.CanEditArticle(nil, article); d.Allowed {
		t.Error("anonymous should not edit")
	}
}

func TestCanDeleteArticle(t *testing.T) {
	article := publishedArticle()

	if d := moderation.CanDeleteArticle(owner, article); !d.Allowed {
		t.Error("owner should be allowed to delete")
	}
	if d := moderation.CanDeleteArticle(admin, article); !d.Allowed {
		t.Error("admin should be allowed to delete")
	}
	if d := moderation.CanDeleteArticle(stranger, article); d.Allowed {
		t.Error("stranger should not delete")
	}
}

func TestCanTransitionArticle_AdminOnly(t *testing.T) {
	if d := moderation.CanTransitionArticle(admin); !d.Allowed {
		t.Error("admin should be allowed to transition")
	}
	if d := moderation.CanTransitionArticle(owner); d.Allowed || d.Reason != moderation.ReasonNotAdmin {
		t.Errorf("owner transition: allowed=%v reason=%q", d.Allowed, d.Reason)
	}
	if d := moderation.CanTransitionArticle(nil); d.Allowed {
		t.Error("anonymous should not transition")
	}
}

func TestApplyArticleStatus_PublishRefreshesDate(t *testing.T) {
	article := archivedArticle()
	previous := time.Now().Add(-24 * time.Hour)
	article.PublishDate = &previous

	now := time.Now()
	changed := moderation.ApplyArticleStatus(article, models.ArticleStatusPublished, now)

	if !changed {
		t.Fatal("transition into Published should report a change")
	}
	if article.PublishDate == nil {
		t.Fatal("publish date should be set")
	}
	if article.PublishDate.Before(previous) {
		t.Errorf("publish date %v should be >= previous %v", article.PublishDate, previous)
	}
	if !article.PublishDate.Equal(now) {
		t.Errorf("publish date = %v, want refreshed to %v", article.PublishDate, now)
	}
}

func TestApplyArticleStatus_ArchiveIdempotent(t *testing.T) {
	article := archivedArticle()
	if changed := moderation.ApplyArticleStatus(article, models.ArticleStatusArchived, time.Now()); changed {
		t.Error("archiving an archived article should be a no-op")
	}
	if article.Status != models.ArticleStatusArchived {
		t.Errorf("status = %q, want Archived", article.Status)
	}
}

func TestApplyArticleStatus_ArchiveKeepsPublishDate(t *testing.T) {
	article := publishedArticle()
	previous := time.Now().Add(-time.Hour)
	article.PublishDate = &previous

	moderation.ApplyArticleStatus(article, models.ArticleStatusArchived, time.Now())

	if article.Status != models.ArticleStatusArchived {
		t.Errorf("status = %q, want Archived", article.Status)
	}
	if article.PublishDate == nil || !article.PublishDate.Equal(previous) {
		t.Error("archiving should not touch the publish date")
	}
}
