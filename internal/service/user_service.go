package service

import (
	"context"

	"github.com/cloudblog-api/internal/models"
	"github.com/cloudblog-api/internal/moderation"
	"github.com/cloudblog-api/internal/repository"
	"github.com/cloudblog-api/internal/validation"
	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"golang.org/x/crypto/bcrypt"
)

// usersPerPage matches the admin user table page size
const usersPerPage = 8

type userService struct {
	users repository.UserRepository
	log   zerolog.Logger
}

func newUserService(repos *repository.Repositories, log zerolog.Logger) UserService {
	return &userService{
		users: repos.User,
		log:   log.With().Str("service", "user").Logger(),
	}
}

// List returns the paginated, filterable user table plus counters over the
// full table. Admin only.
func (s *userService) List(ctx context.Context, actor *models.User, filter *models.UserFilter) (*models.Paginated, *models.UserStats, error) {
	if !actor.IsAdmin() {
		return nil, nil, Forbidden(moderation.ReasonNotAdmin)
	}

	if filter.Page < 1 {
		filter.Page = 1
	}
	if filter.PerPage < 1 {
		filter.PerPage = usersPerPage
	}

	users, total, err := s.users.List(ctx, filter)
	if err != nil {
		return nil, nil, err
	}
	if users == nil {
		users = []*models.User{}
	}

	stats := &models.UserStats{}
	if stats.Total, err = s.users.Count(ctx); err != nil {
		return nil, nil, err
	}
	if stats.Active, err = s.users.CountByStatus(ctx, models.UserStatusActive); err != nil {
		return nil, nil, err
	}
	stats.Inactive = stats.Total - stats.Active

	return models.NewPaginated(users, filter.Page, filter.PerPage, total), stats, nil
}

// Get returns one user by id. Admin only.
func (s *userService) Get(ctx context.Context, actor *models.User, id string) (*models.User, error) {
	if !actor.IsAdmin() {
		return nil, Forbidden(moderation.ReasonNotAdmin)
	}
	user, err := s.users.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, ErrNotFound
	}
	return user, nil
}

// Create adds a user with an admin-chosen role and status. Admin only.
func (s *userService) Create(ctx context.Context, actor *models.User, in *models.UserInput) (*models.User, error) {
	if !actor.IsAdmin() {
		return nil, Forbidden(moderation.ReasonNotAdmin)
	}
	if errs := validation.User(in, false); !errs.Ok() {
		return nil, Invalid(errs)
	}

	taken, err := s.users.EmailExists(ctx, in.Email, "")
	if err != nil {
		return nil, err
	}
	if taken {
		return nil, Invalid(validation.Errors{"email": "The email has already been taken."})
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcryptCost)
	if err != nil {
		return nil, err
	}

	user := &models.User{
		ID:           uuid.New().String(),
		Name:         in.Name,
		Email:        in.Email,
		PasswordHash: string(hash),
		Role:         in.Role,
		Status:       in.Status,
		Designation:  in.Designation,
		Image:        in.Image,
	}

	if err := s.users.Create(ctx, user); err != nil {
		return nil, err
	}

	s.log.Info().Str("user_id", user.ID).Str("admin_id", actor.ID).Msg("User created")
	return user, nil
}

// Update mutates a user's fields. Password is rehashed only when a new one
// is supplied. Admin only.
func (s *userService) Update(ctx context.Context, actor *models.User, id string, in *models.UserInput) (*models.User, error) {
	if !actor.IsAdmin() {
		return nil, Forbidden(moderation.ReasonNotAdmin)
	}
	if errs := validation.User(in, true); !errs.Ok() {
		return nil, Invalid(errs)
	}

	user, err := s.users.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, ErrNotFound
	}

	if in.Email != user.Email {
		taken, err := s.users.EmailExists(ctx, in.Email, id)
		if err != nil {
			return nil, err
		}
		if taken {
			return nil, Invalid(validation.Errors{"email": "The email has already been taken."})
		}
	}

	user.Name = in.Name
	user.Email = in.Email
	user.Designation = in.Designation
	user.Image = in.Image
	user.Role = in.Role
	user.Status = in.Status
	if in.Password != "" {
		hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcryptCost)
		if err != nil {
			return nil, err
		}
		user.PasswordHash = string(hash)
	}

	if err := s.users.Update(ctx, user); err != nil {
		return nil, err
	}

	s.log.Info().Str("user_id", id).Str("admin_id", actor.ID).Msg("User updated")
	return user, nil
}

// Delete removes a user. Their articles, comments and tokens go with the
// row via the FK cascades. Admin only.
func (s *userService) Delete(ctx context.Context, actor *models.User, id string) error {
	if !actor.IsAdmin() {
		return Forbidden(moderation.ReasonNotAdmin)
	}

	user, err := s.users.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if user == nil {
		return ErrNotFound
	}

	if err := s.users.Delete(ctx, id); err != nil {
		return err
	}

	s.log.Info().Str("user_id", id).Str("admin_id", actor.ID).Msg("User deleted")
	return nil
}

// ToggleStatus flips a user between Active and Inactive. An inactive user
// keeps their tokens but every authenticated request answers 403 until
// reactivated. Admin only.
func (s *userService) ToggleStatus(ctx context.Context, actor *models.User, id string) (*models.User, error) {
	if !actor.IsAdmin() {
		return nil, Forbidden(moderation.ReasonNotAdmin)
	}

	user, err := s.users.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, ErrNotFound
	}

	if user.Status == models.UserStatusActive {
		user.Status = models.UserStatusInactive
	} else {
		user.Status = models.UserStatusActive
	}
	if err := s.users.SetStatus(ctx, id, user.Status); err != nil {
		return nil, err
	}

	s.log.Info().
		Str("user_id", id).
		Str("admin_id", actor.ID).
		Str("status", user.Status).
		Msg("User status toggled")
	return user, nil
}

// UpdateProfile lets the caller change their own display fields and,
// optionally, their password.
func (s *userService) UpdateProfile(ctx context.Context, actor *models.User, in *models.ProfileInput) (*models.User, error) {
	if errs := validation.Profile(in); !errs.Ok() {
		return nil, Invalid(errs)
	}

	user, err := s.users.GetByID(ctx, actor.ID)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, ErrNotFound
	}

	user.Name = in.Name
	user.Designation = in.Designation
	if in.Image != "" {
		user.Image = in.Image
	}
	if in.Password != "" {
		hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcryptCost)
		if err != nil {
			return nil, err
		}
		user.PasswordHash = string(hash)
	}

	if err := s.users.Update(ctx, user); err != nil {
		return nil, err
	}

	s.log.Info().Str("user_id", user.ID).Msg("Profile updated")
	return user, nil
}
