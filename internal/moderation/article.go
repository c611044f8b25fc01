package moderation

import (
	"time"

	"github.com/cloudblog-api/internal/models"
)

// CanViewArticle decides read visibility for one article. Published articles
// are visible to anyone, authenticated or not. Archived articles are visible
// only to their owner or an admin. The viewer may be nil (anonymous). The
// denial reason separates the anonymous case from the authenticated
// stranger, even though both surface as the same 403.
func CanViewArticle(viewer *models.User, article *models.Article) Decision {
	if article.Status == models.ArticleStatusPublished {
		return allow()
	}
	if viewer == nil {
		return deny(ReasonNotPublished)
	}
	if viewer.ID == article.AuthorID || viewer.IsAdmin() {
		return allow()
	}
	return deny(ReasonNotOwner)
}

// CanEditArticle permits content mutation (title/paragraph/tags/image) to the
// owner only, independent of status.
func CanEditArticle(actor *models.User, article *models.Article) Decision {
	if actor == nil {
		return deny(ReasonNotOwner)
	}
	if actor.ID != article.AuthorID {
		return deny(ReasonNotOwner)
	}
	return allow()
}

// CanDeleteArticle permits deletion to the owner or an admin.
func CanDeleteArticle(actor *models.User, article *models.Article) Decision {
	if actor == nil {
		return deny(ReasonNotOwner)
	}
	if actor.ID == article.AuthorID || actor.IsAdmin() {
		return allow()
	}
	return deny(ReasonNotOwner)
}

// CanTransitionArticle permits status transitions (archive/publish) to
// admins only. Owners cannot transition their own articles.
func CanTransitionArticle(actor *models.User) Decision {
	if actor == nil || !actor.IsAdmin() {
		return deny(ReasonNotAdmin)
	}
	return allow()
}

// ApplyArticleStatus writes a status transition onto the article and reports
// whether anything changed. A transition into Published always refreshes the
// publish date; archiving an already-archived article is a no-op.
func ApplyArticleStatus(article *models.Article, status string, now time.Time) bool {
	if article.Status == status {
		return false
	}
	article.Status = status
	if status == models.ArticleStatusPublished {
		article.PublishDate = &now
	}
	return true
}
