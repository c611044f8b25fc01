package repository

import (
	"context"
	"database/sql"
	"encoding/json"
	"time"

	"github.com/cloudblog-api/internal/database"
	"github.com/cloudblog-api/internal/models"
)

// articleRepo is the concrete implementation of ArticleRepository
type articleRepo struct {
	db *database.DB
}

// NewArticleRepo creates a new article repository
func NewArticleRepo(db *database.DB) ArticleRepository {
	return &articleRepo{db: db}
}

// Create inserts a new article
func (r *articleRepo) Create(ctx context.Context, article *models.Article) error {
	tagsJSON, _ := json.Marshal(article.Tags)
	if article.Tags == nil {
		tagsJSON = []byte("[]")
	}

	query := `
		INSERT INTO articles (id, author_id, title, paragraph, image, tags, status, publish_date, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
	`
	now := time.Now()
	article.CreatedAt = now
	article.UpdatedAt = now
	_, err := r.db.ExecContext(ctx, query,
		article.ID, article.AuthorID, article.Title, article.Paragraph, article.Image,
		tagsJSON, article.Status, article.PublishDate,
		article.CreatedAt, article.UpdatedAt,
	)
	return err
}

const articleSelect = `
	SELECT a.id, a.author_id, a.title, a.paragraph, a.image, a.tags, a.status,
	       a.publish_date, a.created_at, a.updated_at,
	       u.name, u.image, u.designation
	FROM articles a
	LEFT JOIN users u ON u.id = a.author_id
`

func scanArticle(row interface{ Scan(...interface{}) error }) (*models.Article, error) {
	var article models.Article
	var tagsJSON []byte
	var publishDate sql.NullTime
	var authorName, authorImage, authorDesignation sql.NullString

	err := row.Scan(
		&article.ID, &article.AuthorID, &article.Title, &article.Paragraph, &article.Image,
		&tagsJSON, &article.Status, &publishDate, &article.CreatedAt, &article.UpdatedAt,
		&authorName, &authorImage, &authorDesignation,
	)
	if err != nil {
		return nil, err
	}

	json.Unmarshal(tagsJSON, &article.Tags)
	if article.Tags == nil {
		article.Tags = []string{}
	}
	if publishDate.Valid {
		article.PublishDate = &publishDate.Time
	}
	if authorName.Valid {
		article.Author = &models.AuthorInfo{
			Name:        authorName.String,
			Image:       authorImage.String,
			Designation: authorDesignation.String,
		}
	}
	return &article, nil
}

// GetByID retrieves an article by ID with its author summary
func (r *articleRepo) GetByID(ctx context.Context, id string) (*models.Article, error) {
	article, err := scanArticle(r.db.QueryRowContext(ctx, articleSelect+` WHERE a.id = $1`, id))
	if err == sql.ErrNoRows {
		return nil, nil
	}
	return article, err
}

// Update persists the mutable content fields and status
func (r *articleRepo) Update(ctx context.Context, article *models.Article) error {
	tagsJSON, _ := json.Marshal(article.Tags)
	if article.Tags == nil {
		tagsJSON = []byte("[]")
	}

	query := `
		UPDATE articles
		SET title = $2, paragraph = $3, image = $4, tags = $5, status = $6,
		    publish_date = $7, updated_at = $8
		WHERE id = $1
	`
	article.UpdatedAt = time.Now()
	_, err := r.db.ExecContext(ctx, query,
		article.ID, article.Title, article.Paragraph, article.Image, tagsJSON,
		article.Status, article.PublishDate, article.UpdatedAt,
	)
	return err
}

// UpdateStatus writes only the lifecycle fields, leaving content untouched
func (r *articleRepo) UpdateStatus(ctx context.Context, article *models.Article) error {
	query := `UPDATE articles SET status = $2, publish_date = $3, updated_at = $4 WHERE id = $1`
	article.UpdatedAt = time.Now()
	_, err := r.db.ExecContext(ctx, query,
		article.ID, article.Status, article.PublishDate, article.UpdatedAt)
	return err
}

// Delete removes an article. Comments go with it via the FK cascade; no
// application-level loop over children.
func (r *articleRepo) Delete(ctx context.Context, id string) error {
	_, err := r.db.ExecContext(ctx, `DELETE FROM articles WHERE id = $1`, id)
	return err
}

// ListPublished retrieves published articles newest first with pagination
func (r *articleRepo) ListPublished(ctx context.Context, page, perPage int) ([]*models.Article, int, error) {
	var total int
	err := r.db.QueryRowContext(ctx,
		"SELECT COUNT(*) FROM articles WHERE status = $1", models.ArticleStatusPublished).Scan(&total)
	if err != nil {
		return nil, 0, err
	}

	query := articleSelect + ` WHERE a.status = $1 ORDER BY a.publish_date DESC NULLS LAST LIMIT $2 OFFSET $3`
	rows, err := r.db.QueryContext(ctx, query, models.ArticleStatusPublished, perPage, (page-1)*perPage)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	articles, err := collectArticles(rows)
	return articles, total, err
}

// ListAll retrieves every article for the admin view, newest first
func (r *articleRepo) ListAll(ctx context.Context) ([]*models.Article, error) {
	rows, err := r.db.QueryContext(ctx, articleSelect+` ORDER BY a.publish_date DESC NULLS LAST`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return collectArticles(rows)
}

// ListByAuthor retrieves one user's articles in both statuses
func (r *articleRepo) ListByAuthor(ctx context.Context, authorID string) ([]*models.Article, error) {
	rows, err := r.db.QueryContext(ctx, articleSelect+` WHERE a.author_id = $1 ORDER BY a.created_at DESC`, authorID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return collectArticles(rows)
}

func collectArticles(rows *sql.Rows) ([]*models.Article, error) {
	var articles []*models.Article
	for rows.Next() {
		article, err := scanArticle(rows)
		if err != nil {
			return nil, err
		}
		articles = append(articles, article)
	}
	return articles, rows.Err()
}

// Count returns the total number of articles
func (r *articleRepo) Count(ctx context.Context) (int, error) {
	var count int
	err := r.db.QueryRowContext(ctx, "SELECT COUNT(*) FROM articles").Scan(&count)
	return count, err
}

// CountByStatus returns articles with the given lifecycle status
func (r *articleRepo) CountByStatus(ctx context.Context, status string) (int, error) {
	var count int
	err := r.db.QueryRowContext(ctx, "SELECT COUNT(*) FROM articles WHERE status = $1", status).Scan(&count)
	return count, err
}
