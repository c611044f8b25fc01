package service

import (
	"context"

	"github.com/cloudblog-api/internal/models"
	"github.com/cloudblog-api/internal/moderation"
	"github.com/cloudblog-api/internal/repository"
	"github.com/cloudblog-api/internal/validation"
	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

type commentService struct {
	comments repository.CommentRepository
	articles repository.ArticleRepository
	log      zerolog.Logger
}

func newCommentService(repos *repository.Repositories, log zerolog.Logger) CommentService {
	return &commentService{
		comments: repos.Comment,
		articles: repos.Article,
		log:      log.With().Str("service", "comment").Logger(),
	}
}

// ListForArticle returns the comment thread visible to the viewer. The
// repository applies the visibility union; this layer only checks the
// article exists.
func (s *commentService) ListForArticle(ctx context.Context, viewer *models.User, articleID string) ([]*models.Comment, error) {
	article, err := s.articles.GetByID(ctx, articleID)
	if err != nil {
		return nil, err
	}
	if article == nil {
		return nil, ErrNotFound
	}

	comments, err := s.comments.ListForArticle(ctx, articleID, viewer)
	if err != nil {
		return nil, err
	}
	if comments == nil {
		comments = []*models.Comment{}
	}
	return comments, nil
}

// Create posts a new comment. Every comment enters moderation Pending and
// unreported, whoever the author is.
func (s *commentService) Create(ctx context.Context, author *models.User, articleID string, in *models.CommentInput) (*models.Comment, error) {
	if errs := validation.Comment(in); !errs.Ok() {
		return nil, Invalid(errs)
	}

	article, err := s.articles.GetByID(ctx, articleID)
	if err != nil {
		return nil, err
	}
	if article == nil {
		return nil, ErrNotFound
	}

	comment := &models.Comment{
		ID:        uuid.New().String(),
		ArticleID: articleID,
		UserID:    author.ID,
		Content:   in.Content,
	}
	moderation.InitComment(comment)

	if err := s.comments.Create(ctx, comment); err != nil {
		return nil, err
	}

	comment.UserName = author.Name
	comment.UserRole = author.Role

	s.log.Info().
		Str("comment_id", comment.ID).
		Str("article_id", articleID).
		Str("user_id", author.ID).
		Msg("Comment created")
	return comment, nil
}

// Update replaces the content. Author only. The edit sends the comment back
// through the queue as Pending.
func (s *commentService) Update(ctx context.Context, actor *models.User, id string, in *models.CommentInput) (*models.Comment, error) {
	if errs := validation.Comment(in); !errs.Ok() {
		return nil, Invalid(errs)
	}

	comment, err := s.comments.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if comment == nil {
		return nil, ErrNotFound
	}
	if d := moderation.CanEditComment(actor, comment); !d.Allowed {
		return nil, Forbidden(d.Reason)
	}

	moderation.ApplyCommentEdit(comment, in.Content)
	if err := s.comments.UpdateContent(ctx, comment); err != nil {
		return nil, err
	}

	s.log.Info().Str("comment_id", id).Str("user_id", actor.ID).Msg("Comment updated")
	return comment, nil
}

// Delete removes a comment. Author or admin.
func (s *commentService) Delete(ctx context.Context, actor *models.User, id string) error {
	comment, err := s.comments.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if comment == nil {
		return ErrNotFound
	}
	if d := moderation.CanDeleteComment(actor, comment); !d.Allowed {
		return Forbidden(d.Reason)
	}

	if err := s.comments.Delete(ctx, id); err != nil {
		return err
	}

	s.log.Info().Str("comment_id", id).Str("user_id", actor.ID).Msg("Comment deleted")
	return nil
}

// Report flags a comment for moderator attention. Authors cannot report
// their own comments. Re-reporting is idempotent; the second return value
// says whether the flag was newly set.
func (s *commentService) Report(ctx context.Context, actor *models.User, id string) (*models.Comment, bool, error) {
	comment, err := s.comments.GetByID(ctx, id)
	if err != nil {
		return nil, false, err
	}
	if comment == nil {
		return nil, false, ErrNotFound
	}
	if d := moderation.CanReportComment(actor, comment); !d.Allowed {
		return nil, false, Forbidden(d.Reason)
	}

	if !moderation.ApplyReport(comment) {
		return comment, false, nil
	}
	if err := s.comments.SetReported(ctx, id, true); err != nil {
		return nil, false, err
	}

	s.log.Info().Str("comment_id", id).Str("user_id", actor.ID).Msg("Comment reported")
	return comment, true, nil
}

// Moderate sets the comment's status to Approved or Rejected. Admin only.
// The reported flag is untouched: approving a reported comment leaves it
// flagged until the report is resolved separately.
func (s *commentService) Moderate(ctx context.Context, actor *models.User, id string, req *models.ModerateRequest) (*models.Comment, error) {
	if d := moderation.CanModerateComment(actor); !d.Allowed {
		return nil, Forbidden(d.Reason)
	}
	if errs := validation.Moderate(req); !errs.Ok() {
		return nil, Invalid(errs)
	}

	comment, err := s.comments.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if comment == nil {
		return nil, ErrNotFound
	}

	comment.Status = req.Status
	if err := s.comments.SetStatus(ctx, id, req.Status); err != nil {
		return nil, err
	}

	s.log.Info().
		Str("comment_id", id).
		Str("admin_id", actor.ID).
		Str("status", req.Status).
		Msg("Comment moderated")
	return comment, nil
}

// ResolveReport clears the reported flag without changing the moderation
// status. Admin only.
func (s *commentService) ResolveReport(ctx context.Context, actor *models.User, id string) (*models.Comment, error) {
	if d := moderation.CanModerateComment(actor); !d.Allowed {
		return nil, Forbidden(d.Reason)
	}

	comment, err := s.comments.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if comment == nil {
		return nil, ErrNotFound
	}

	moderation.ResolveReport(comment)
	if err := s.comments.SetReported(ctx, id, false); err != nil {
		return nil, err
	}

	s.log.Info().Str("comment_id", id).Str("admin_id", actor.ID).Msg("Comment report resolved")
	return comment, nil
}

// Dashboard returns the moderation queue filtered by status, article and
// search term, alongside counters that always cover the full tables no
// matter what filters are active.
func (s *commentService) Dashboard(ctx context.Context, actor *models.User, filter *models.CommentFilter) (*models.ModerationDashboard, error) {
	if d := moderation.CanModerateComment(actor); !d.Allowed {
		return nil, Forbidden(d.Reason)
	}

	comments, err := s.comments.ListModeration(ctx, filter)
	if err != nil {
		return nil, err
	}
	if comments == nil {
		comments = []*models.Comment{}
	}

	stats := models.CommentStats{}
	if stats.Total, err = s.comments.Count(ctx); err != nil {
		return nil, err
	}
	if stats.Pending, err = s.comments.CountByStatus(ctx, models.CommentStatusPending); err != nil {
		return nil, err
	}
	if stats.Reported, err = s.comments.CountReported(ctx); err != nil {
		return nil, err
	}

	return &models.ModerationDashboard{Comments: comments, Stats: stats}, nil
}
