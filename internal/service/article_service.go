package service

import (
	"context"
	"time"

	"github.com/cloudblog-api/internal/config"
	"github.com/cloudblog-api/internal/models"
	"github.com/cloudblog-api/internal/moderation"
	"github.com/cloudblog-api/internal/repository"
	"github.com/cloudblog-api/internal/storage"
	"github.com/cloudblog-api/internal/validation"
	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

// articlesPerPage matches the public feed page size
const articlesPerPage = 10

type articleService struct {
	articles repository.ArticleRepository
	comments repository.CommentRepository
	users    repository.UserRepository
	blobs    storage.BlobStore
	cfg      *config.Config
	log      zerolog.Logger
}

func newArticleService(repos *repository.Repositories, blobs storage.BlobStore, cfg *config.Config, log zerolog.Logger) ArticleService {
	return &articleService{
		articles: repos.Article,
		comments: repos.Comment,
		users:    repos.User,
		blobs:    blobs,
		cfg:      cfg,
		log:      log.With().Str("service", "article").Logger(),
	}
}

// List returns the public paginated feed of published articles
func (s *articleService) List(ctx context.Context, page int) (*models.Paginated, error) {
	if page < 1 {
		page = 1
	}
	articles, total, err := s.articles.ListPublished(ctx, page, articlesPerPage)
	if err != nil {
		return nil, err
	}
	if articles == nil {
		articles = []*models.Article{}
	}
	return models.NewPaginated(articles, page, articlesPerPage, total), nil
}

// Get returns one article subject to the visibility rules: Published for
// anyone, Archived only for the owner or an admin.
func (s *articleService) Get(ctx context.Context, viewer *models.User, id string) (*models.Article, error) {
	article, err := s.articles.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if article == nil {
		return nil, ErrNotFound
	}
	if d := moderation.CanViewArticle(viewer, article); !d.Allowed {
		s.log.Debug().Str("article_id", id).Str("reason", string(d.Reason)).Msg("Article view denied")
		return nil, Forbidden(d.Reason)
	}
	return article, nil
}

// Create stores a new article owned by the caller. Status defaults from
// configuration when the request does not pick one.
func (s *articleService) Create(ctx context.Context, author *models.User, in *models.ArticleInput) (*models.Article, error) {
	if errs := validation.Article(in); !errs.Ok() {
		return nil, Invalid(errs)
	}

	status := in.Status
	if status == "" {
		status = s.cfg.Articles.DefaultStatus
	}

	now := time.Now()
	article := &models.Article{
		ID:        uuid.New().String(),
		AuthorID:  author.ID,
		Title:     in.Title,
		Paragraph: in.Paragraph,
		Image:     in.ImageURL,
		Tags:      in.Tags,
		Status:    status,
	}
	if status == models.ArticleStatusPublished {
		article.PublishDate = &now
	}

	if err := s.articles.Create(ctx, article); err != nil {
		return nil, err
	}

	s.log.Info().Str("article_id", article.ID).Str("author_id", author.ID).Msg("Article created")
	return article, nil
}

// Update mutates content fields. Only the owner may do this, independent of
// status. A replaced image has its old blob removed best-effort.
func (s *articleService) Update(ctx context.Context, actor *models.User, id string, in *models.ArticleInput) (*models.Article, error) {
	article, err := s.articles.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if article == nil {
		return nil, ErrNotFound
	}
	if d := moderation.CanEditArticle(actor, article); !d.Allowed {
		return nil, Forbidden(d.Reason)
	}
	if errs := validation.Article(in); !errs.Ok() {
		return nil, Invalid(errs)
	}

	if in.HasImage && article.Image != "" && article.Image != in.ImageURL {
		s.deleteBlob(ctx, article.Image, article.ID)
	}

	article.Title = in.Title
	article.Paragraph = in.Paragraph
	article.Tags = in.Tags
	if in.HasImage {
		article.Image = in.ImageURL
	}
	// Status transitions stay admin-only even through the general update
	// path; an owner echoing the current status is not a transition.
	if in.Status != "" && in.Status != article.Status {
		if d := moderation.CanTransitionArticle(actor); !d.Allowed {
			return nil, Forbidden(d.Reason)
		}
		moderation.ApplyArticleStatus(article, in.Status, time.Now())
	}

	if err := s.articles.Update(ctx, article); err != nil {
		return nil, err
	}

	s.log.Info().Str("article_id", article.ID).Str("user_id", actor.ID).Msg("Article updated")
	return article, nil
}

// Delete removes an article. The blob removal comes first and is
// best-effort: a storage failure is logged and swallowed so the row delete
// always proceeds. Comments disappear with the row via the FK cascade.
func (s *articleService) Delete(ctx context.Context, actor *models.User, id string) error {
	article, err := s.articles.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if article == nil {
		return ErrNotFound
	}
	if d := moderation.CanDeleteArticle(actor, article); !d.Allowed {
		return Forbidden(d.Reason)
	}

	if article.Image != "" && s.blobs.Exists(ctx, article.Image) {
		s.deleteBlob(ctx, article.Image, article.ID)
	}

	if err := s.articles.Delete(ctx, id); err != nil {
		return err
	}

	s.log.Info().Str("article_id", id).Str("user_id", actor.ID).Msg("Article deleted")
	return nil
}

// Archive transitions an article to Archived. Admin only. Archiving an
// archived article reports changed=false and the caller answers success.
func (s *articleService) Archive(ctx context.Context, actor *models.User, id string) (*models.Article, bool, error) {
	return s.transition(ctx, actor, id, models.ArticleStatusArchived)
}

// Publish transitions an article to Published, refreshing its publish date.
func (s *articleService) Publish(ctx context.Context, actor *models.User, id string) (*models.Article, bool, error) {
	return s.transition(ctx, actor, id, models.ArticleStatusPublished)
}

func (s *articleService) transition(ctx context.Context, actor *models.User, id, status string) (*models.Article, bool, error) {
	if d := moderation.CanTransitionArticle(actor); !d.Allowed {
		return nil, false, Forbidden(d.Reason)
	}

	article, err := s.articles.GetByID(ctx, id)
	if err != nil {
		return nil, false, err
	}
	if article == nil {
		return nil, false, ErrNotFound
	}

	if !moderation.ApplyArticleStatus(article, status, time.Now()) {
		return article, false, nil
	}
	if err := s.articles.UpdateStatus(ctx, article); err != nil {
		return nil, false, err
	}

	s.log.Info().
		Str("article_id", article.ID).
		Str("admin_id", actor.ID).
		Str("status", status).
		Msg("Article status changed")
	return article, true, nil
}

// ListAdmin returns every article regardless of status. Admin only.
func (s *articleService) ListAdmin(ctx context.Context, actor *models.User) ([]*models.Article, error) {
	if !actor.IsAdmin() {
		return nil, Forbidden(moderation.ReasonNotAdmin)
	}
	articles, err := s.articles.ListAll(ctx)
	if err != nil {
		return nil, err
	}
	if articles == nil {
		articles = []*models.Article{}
	}
	return articles, nil
}

// ListMine returns the caller's own articles in both statuses
func (s *articleService) ListMine(ctx context.Context, actor *models.User) ([]*models.Article, error) {
	articles, err := s.articles.ListByAuthor(ctx, actor.ID)
	if err != nil {
		return nil, err
	}
	if articles == nil {
		articles = []*models.Article{}
	}
	return articles, nil
}

// AdminStats computes the dashboard counters over the full tables
func (s *articleService) AdminStats(ctx context.Context, actor *models.User) (*models.AdminStats, error) {
	if !actor.IsAdmin() {
		return nil, Forbidden(moderation.ReasonNotAdmin)
	}

	stats := &models.AdminStats{}
	var err error

	if stats.Users.Total, err = s.users.Count(ctx); err != nil {
		return nil, err
	}
	if stats.Users.Active, err = s.users.CountByStatus(ctx, models.UserStatusActive); err != nil {
		return nil, err
	}
	if stats.Articles.Total, err = s.articles.Count(ctx); err != nil {
		return nil, err
	}
	if stats.Articles.Published, err = s.articles.CountByStatus(ctx, models.ArticleStatusPublished); err != nil {
		return nil, err
	}
	if stats.Articles.Archived, err = s.articles.CountByStatus(ctx, models.ArticleStatusArchived); err != nil {
		return nil, err
	}
	if stats.Comments.Total, err = s.comments.Count(ctx); err != nil {
		return nil, err
	}
	if stats.Comments.Pending, err = s.comments.CountByStatus(ctx, models.CommentStatusPending); err != nil {
		return nil, err
	}
	if stats.Comments.Reported, err = s.comments.CountReported(ctx); err != nil {
		return nil, err
	}
	return stats, nil
}

// deleteBlob removes an image best-effort. Failures never propagate: the
// design accepts orphaned blobs over blocked entity writes.
func (s *articleService) deleteBlob(ctx context.Context, url, articleID string) {
	if err := s.blobs.Delete(ctx, url); err != nil {
		s.log.Error().Err(err).
			Str("article_id", articleID).
			Str("url", url).
			Msg("Failed to delete article image")
	}
}
