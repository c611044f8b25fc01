package service

import (
	"context"
	"crypto/rand"
	"crypto/sha256"
	"encoding/base64"
	"encoding/hex"
	"fmt"

	"github.com/cloudblog-api/internal/models"
	"github.com/cloudblog-api/internal/repository"
	"github.com/cloudblog-api/internal/validation"
	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"golang.org/x/crypto/bcrypt"
)

const bcryptCost = 14

// authService implements AuthService with opaque, individually revocable
// bearer tokens. Only the SHA-256 of a token is stored, so a leaked database
// does not leak usable credentials.
type authService struct {
	users  repository.UserRepository
	tokens repository.TokenRepository
	log    zerolog.Logger
}

func newAuthService(repos *repository.Repositories, log zerolog.Logger) AuthService {
	return &authService{
		users:  repos.User,
		tokens: repos.Token,
		log:    log.With().Str("service", "auth").Logger(),
	}
}

// Register creates an account with the User role and issues a first token
func (s *authService) Register(ctx context.Context, req *models.RegisterRequest) (*models.AuthResponse, error) {
	if errs := validation.Register(req); !errs.Ok() {
		return nil, Invalid(errs)
	}

	taken, err := s.users.EmailExists(ctx, req.Email, "")
	if err != nil {
		return nil, err
	}
	if taken {
		return nil, Invalid(validation.Errors{"email": "email is already registered"})
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcryptCost)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	user := &models.User{
		ID:           uuid.New().String(),
		Name:         req.Name,
		Email:        req.Email,
		PasswordHash: string(hash),
		Role:         models.RoleUser,
		Status:       models.UserStatusActive,
	}
	if err := s.users.Create(ctx, user); err != nil {
		return nil, err
	}

	token, err := s.issueToken(ctx, user.ID)
	if err != nil {
		return nil, err
	}

	s.log.Info().Str("user_id", user.ID).Msg("User registered")
	return &models.AuthResponse{
		Token:   token,
		User:    user,
		Message: "User registered successfully",
	}, nil
}

// Login verifies credentials, stamps the last login and issues a new token.
// Deactivated accounts cannot log in; their prior content stays untouched.
func (s *authService) Login(ctx context.Context, req *models.LoginRequest) (*models.AuthResponse, error) {
	if errs := validation.Login(req); !errs.Ok() {
		return nil, Invalid(errs)
	}

	user, err := s.users.GetByEmail(ctx, req.Email)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, ErrInvalidCredentials
	}
	if bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(req.Password)) != nil {
		return nil, ErrInvalidCredentials
	}
	if user.Status == models.UserStatusInactive {
		return nil, ErrAccountInactive
	}

	if err := s.users.SetLastLogin(ctx, user.ID); err != nil {
		s.log.Error().Err(err).Str("user_id", user.ID).Msg("Failed to record last login")
	}

	token, err := s.issueToken(ctx, user.ID)
	if err != nil {
		return nil, err
	}

	s.log.Info().Str("user_id", user.ID).Msg("User logged in")
	return &models.AuthResponse{Token: token, User: user}, nil
}

// Logout revokes exactly the token presented on the current request
func (s *authService) Logout(ctx context.Context, token *models.AccessToken) error {
	if err := s.tokens.Delete(ctx, token.ID); err != nil {
		return err
	}
	s.log.Info().Str("user_id", token.UserID).Msg("Token revoked")
	return nil
}

// Authenticate resolves a presented bearer token to its user
func (s *authService) Authenticate(ctx context.Context, plaintext string) (*models.User, *models.AccessToken, error) {
	token, err := s.tokens.GetByHash(ctx, hashToken(plaintext))
	if err != nil {
		return nil, nil, err
	}
	if token == nil {
		return nil, nil, nil
	}

	user, err := s.users.GetByID(ctx, token.UserID)
	if err != nil {
		return nil, nil, err
	}
	if user == nil {
		// Orphaned token; treat as unauthenticated.
		return nil, nil, nil
	}

	if err := s.tokens.TouchLastUsed(ctx, token.ID); err != nil {
		s.log.Error().Err(err).Str("token_id", token.ID).Msg("Failed to stamp token use")
	}
	return user, token, nil
}

func (s *authService) issueToken(ctx context.Context, userID string) (string, error) {
	b := make([]byte, 32)
	if _, err := rand.Read(b); err != nil {
		return "", fmt.Errorf("failed to generate token: %w", err)
	}
	plaintext := base64.URLEncoding.EncodeToString(b)

	token := &models.AccessToken{
		ID:        uuid.New().String(),
		UserID:    userID,
		TokenHash: hashToken(plaintext),
		Name:      "auth_token",
	}
	if err := s.tokens.Create(ctx, token); err != nil {
		return "", err
	}
	return plaintext, nil
}

func hashToken(plaintext string) string {
	sum := sha256.Sum256([]byte(plaintext))
	return hex.EncodeToString(sum[:])
}
