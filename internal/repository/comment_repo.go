package repository

import (
	"context"
	"database/sql"
	"fmt"
	"strings"
	"time"

	"github.com/cloudblog-api/internal/database"
	"github.com/cloudblog-api/internal/models"
)

// commentRepo is the concrete implementation of CommentRepository
type commentRepo struct {
	db *database.DB
}

// NewCommentRepo creates a new comment repository
func NewCommentRepo(db *database.DB) CommentRepository {
	return &commentRepo{db: db}
}

// Create inserts a new comment
func (r *commentRepo) Create(ctx context.Context, comment *models.Comment) error {
	query := `
		INSERT INTO comments (id, article_id, user_id, content, status, is_reported, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
	`
	now := time.Now()
	comment.CreatedAt = now
	comment.UpdatedAt = now
	_, err := r.db.ExecContext(ctx, query,
		comment.ID, comment.ArticleID, comment.UserID, comment.Content,
		comment.Status, comment.IsReported, comment.CreatedAt, comment.UpdatedAt,
	)
	return err
}

// GetByID retrieves a comment by ID
func (r *commentRepo) GetByID(ctx context.Context, id string) (*models.Comment, error) {
	query := `
		SELECT id, article_id, user_id, content, status, is_reported, created_at, updated_at
		FROM comments WHERE id = $1
	`
	var comment models.Comment
	err := r.db.QueryRowContext(ctx, query, id).Scan(
		&comment.ID, &comment.ArticleID, &comment.UserID, &comment.Content,
		&comment.Status, &comment.IsReported, &comment.CreatedAt, &comment.UpdatedAt,
	)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &comment, nil
}

// UpdateContent writes edited content along with its reset status
func (r *commentRepo) UpdateContent(ctx context.Context, comment *models.Comment) error {
	query := `UPDATE comments SET content = $2, status = $3, updated_at = $4 WHERE id = $1`
	comment.UpdatedAt = time.Now()
	_, err := r.db.ExecContext(ctx, query,
		comment.ID, comment.Content, comment.Status, comment.UpdatedAt)
	return err
}

// SetStatus writes the moderation status
func (r *commentRepo) SetStatus(ctx context.Context, id, status string) error {
	_, err := r.db.ExecContext(ctx,
		`UPDATE comments SET status = $2, updated_at = $3 WHERE id = $1`, id, status, time.Now())
	return err
}

// SetReported writes the reported flag, never touching status
func (r *commentRepo) SetReported(ctx context.Context, id string, reported bool) error {
	_, err := r.db.ExecContext(ctx,
		`UPDATE comments SET is_reported = $2, updated_at = $3 WHERE id = $1`, id, reported, time.Now())
	return err
}

// Delete removes a comment
func (r *commentRepo) Delete(ctx context.Context, id string) error {
	_, err := r.db.ExecContext(ctx, `DELETE FROM comments WHERE id = $1`, id)
	return err
}

// ListForArticle retrieves the comments visible to the given viewer for one
// article, newest first. The selection is an inclusive union: Approved and
// Pending always, the viewer's own Rejected comments when authenticated,
// and everything when the viewer is an admin.
func (r *commentRepo) ListForArticle(ctx context.Context, articleID string, viewer *models.User) ([]*models.Comment, error) {
	args := []interface{}{articleID}
	visibility := `c.status IN ('Approved', 'Pending')`

	if viewer != nil {
		if viewer.IsAdmin() {
			visibility = `c.status IS NOT NULL`
		} else {
			args = append(args, viewer.ID)
			visibility = fmt.Sprintf(
				`(c.status IN ('Approved', 'Pending') OR (c.user_id = $%d AND c.status = 'Rejected'))`, len(args))
		}
	}

	query := fmt.Sprintf(`
		SELECT c.id, c.article_id, c.user_id, c.content, c.status, c.is_reported,
		       c.created_at, c.updated_at, u.name, u.role
		FROM comments c
		JOIN users u ON u.id = c.user_id
		WHERE c.article_id = $1 AND %s
		ORDER BY c.created_at DESC
	`, visibility)

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var comments []*models.Comment
	for rows.Next() {
		var c models.Comment
		err := rows.Scan(
			&c.ID, &c.ArticleID, &c.UserID, &c.Content, &c.Status, &c.IsReported,
			&c.CreatedAt, &c.UpdatedAt, &c.UserName, &c.UserRole,
		)
		if err != nil {
			return nil, err
		}
		comments = append(comments, &c)
	}
	return comments, rows.Err()
}

// ListModeration retrieves comments for the admin dashboard. The inner joins
// silently exclude rows whose author or article no longer resolves. A
// Reported status filter selects on is_reported regardless of status; the
// search term matches content, author name, and article title.
func (r *commentRepo) ListModeration(ctx context.Context, filter *models.CommentFilter) ([]*models.Comment, error) {
	where := []string{}
	args := []interface{}{}

	switch {
	case filter.Status == models.ModerationStatusReported:
		where = append(where, "c.is_reported = TRUE")
	case models.ValidCommentStatuses[filter.Status]:
		args = append(args, filter.Status)
		where = append(where, fmt.Sprintf("c.status = $%d", len(args)))
	}

	if filter.ArticleID != "" && filter.ArticleID != "all" {
		args = append(args, filter.ArticleID)
		where = append(where, fmt.Sprintf("c.article_id = $%d", len(args)))
	}

	if filter.Search != "" {
		args = append(args, "%"+strings.ToLower(filter.Search)+"%")
		n := len(args)
		where = append(where, fmt.Sprintf(
			"(LOWER(c.content) LIKE $%d OR LOWER(u.name) LIKE $%d OR LOWER(a.title) LIKE $%d)", n, n, n))
	}

	whereClause := ""
	if len(where) > 0 {
		whereClause = " AND " + strings.Join(where, " AND ")
	}

	query := fmt.Sprintf(`
		SELECT c.id, c.article_id, c.user_id, c.content, c.status, c.is_reported,
		       c.created_at, c.updated_at, u.name, u.role, a.title
		FROM comments c
		JOIN users u ON u.id = c.user_id
		JOIN articles a ON a.id = c.article_id
		WHERE TRUE%s
		ORDER BY c.created_at DESC
	`, whereClause)

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var comments []*models.Comment
	for rows.Next() {
		var c models.Comment
		err := rows.Scan(
			&c.ID, &c.ArticleID, &c.UserID, &c.Content, &c.Status, &c.IsReported,
			&c.CreatedAt, &c.UpdatedAt, &c.UserName, &c.UserRole, &c.ArticleTitle,
		)
		if err != nil {
			return nil, err
		}
		comments = append(comments, &c)
	}
	return comments, rows.Err()
}

// Count returns the total number of comments
func (r *commentRepo) Count(ctx context.Context) (int, error) {
	var count int
	err := r.db.QueryRowContext(ctx, "SELECT COUNT(*) FROM comments").Scan(&count)
	return count, err
}

// CountByStatus returns comments with the given moderation status
func (r *commentRepo) CountByStatus(ctx context.Context, status string) (int, error) {
	var count int
	err := r.db.QueryRowContext(ctx, "SELECT COUNT(*) FROM comments WHERE status = $1", status).Scan(&count)
	return count, err
}

// CountReported returns reported comments of any status
func (r *commentRepo) CountReported(ctx context.Context) (int, error) {
	var count int
	err := r.db.QueryRowContext(ctx, "SELECT COUNT(*) FROM comments WHERE is_reported = TRUE").Scan(&count)
	return count, err
}
