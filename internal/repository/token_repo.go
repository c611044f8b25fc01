package repository

import (
	"context"
	"database/sql"
	"time"

	"github.com/cloudblog-api/internal/database"
	"github.com/cloudblog-api/internal/models"
)

// tokenRepo is the concrete implementation of TokenRepository
type tokenRepo struct {
	db *database.DB
}

// NewTokenRepo creates a new access token repository
func NewTokenRepo(db *database.DB) TokenRepository {
	return &tokenRepo{db: db}
}

// Create inserts a new access token row
func (r *tokenRepo) Create(ctx context.Context, token *models.AccessToken) error {
	query := `
		INSERT INTO access_tokens (id, user_id, token_hash, name, created_at)
		VALUES ($1, $2, $3, $4, $5)
	`
	token.CreatedAt = time.Now()
	_, err := r.db.ExecContext(ctx, query,
		token.ID, token.UserID, token.TokenHash, token.Name, token.CreatedAt)
	return err
}

// GetByHash resolves a presented bearer token by its stored hash
func (r *tokenRepo) GetByHash(ctx context.Context, hash string) (*models.AccessToken, error) {
	query := `
		SELECT id, user_id, token_hash, name, last_used_at, created_at
		FROM access_tokens WHERE token_hash = $1
	`
	var token models.AccessToken
	var lastUsed sql.NullTime
	err := r.db.QueryRowContext(ctx, query, hash).Scan(
		&token.ID, &token.UserID, &token.TokenHash, &token.Name, &lastUsed, &token.CreatedAt)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	if lastUsed.Valid {
		token.LastUsedAt = &lastUsed.Time
	}
	return &token, nil
}

// Delete revokes a single token. Logout uses this so other sessions of the
// same user stay valid.
func (r *tokenRepo) Delete(ctx context.Context, id string) error {
	_, err := r.db.ExecContext(ctx, `DELETE FROM access_tokens WHERE id = $1`, id)
	return err
}

// DeleteForUser revokes every token of one user
func (r *tokenRepo) DeleteForUser(ctx context.Context, userID string) error {
	_, err := r.db.ExecContext(ctx, `DELETE FROM access_tokens WHERE user_id = $1`, userID)
	return err
}

// TouchLastUsed stamps the token's last use
func (r *tokenRepo) TouchLastUsed(ctx context.Context, id string) error {
	_, err := r.db.ExecContext(ctx,
		`UPDATE access_tokens SET last_used_at = $2 WHERE id = $1`, id, time.Now())
	return err
}
