// Package service contains application services orchestrating validation,
// reference checks, and repository access for each entity.
package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/jmoreau/timemanager/internal/constants"
	"github.com/jmoreau/timemanager/internal/errs"
	"github.com/jmoreau/timemanager/internal/model"
	"github.com/jmoreau/timemanager/internal/repository"
	"github.com/jmoreau/timemanager/internal/validate"
)

// UserService defines user CRUD operations.
type UserService interface {
	// Create validates input, rejects username/email collisions, and inserts.
	Create(ctx context.Context, in model.UserInput) (model.User, error)
	// List returns all users, most recent first.
	List(ctx context.Context) ([]model.User, error)
	// GetByID loads a single user.
	GetByID(ctx context.Context, id int64) (model.User, error)
	// Update merges provided fields onto the stored record and persists.
	Update(ctx context.Context, id int64, in model.UserInput) (model.User, error)
	// Delete removes a user by id.
	Delete(ctx context.Context, id int64) error
}

type UserServiceImpl struct {
	users repository.UserRepository
}

// NewUserService constructs UserService.
func NewUserService(users repository.UserRepository) *UserServiceImpl {
	return &UserServiceImpl{users: users}
}

// Create inserts a new user after duplicate pre-checks.
func (s *UserServiceImpl) Create(ctx context.Context, in model.UserInput) (model.User, error) {
	if in.Username == nil || in.Email == nil {
		return model.User{}, fmt.Errorf("%w: username and email are required", errs.ErrMissingFields)
	}

	u := model.User{
		Username: *in.Username,
		Email:    *in.Email,
		Role:     constants.RoleUser,
	}
	if in.Role != nil {
		u.Role = *in.Role
	}
	if err := validate.User(u); err != nil {
		return model.User{}, err
	}

	// Collision pre-checks keep the error message specific; the unique
	// constraint remains the backstop under concurrent creates.
	if _, err := s.users.GetByUsername(ctx, u.Username); err == nil {
		return model.User{}, fmt.Errorf("%w: username is already taken", errs.ErrAlreadyExists)
	} else if !errors.Is(err, errs.ErrNotFound) {
		return model.User{}, err
	}
	if _, err := s.users.GetByEmail(ctx, u.Email); err == nil {
		return model.User{}, fmt.Errorf("%w: email is already in use", errs.ErrAlreadyExists)
	} else if !errors.Is(err, errs.ErrNotFound) {
		return model.User{}, err
	}

	return s.users.Create(ctx, u)
}

// List returns all users.
func (s *UserServiceImpl) List(ctx context.Context) ([]model.User, error) {
	return s.users.List(ctx)
}

// GetByID loads a single user.
func (s *UserServiceImpl) GetByID(ctx context.Context, id int64) (model.User, error) {
	u, err := s.users.GetByID(ctx, id)
	if err != nil {
		return model.User{}, err
	}
	return *u, nil
}

// Update merges provided fields onto the existing user, validates the merged
// record, and persists it.
func (s *UserServiceImpl) Update(ctx context.Context, id int64, in model.UserInput) (model.User, error) {
	existing, err := s.users.GetByID(ctx, id)
	if err != nil {
		return model.User{}, err
	}

	u := *existing
	if in.Username != nil {
		u.Username = *in.Username
	}
	if in.Email != nil {
		u.Email = *in.Email
	}
	if in.Role != nil {
		u.Role = *in.Role
	}
	if err := validate.User(u); err != nil {
		return model.User{}, err
	}

	ok, err := s.users.Update(ctx, id, u)
	if err != nil {
		return model.User{}, err
	}
	if !ok {
		return model.User{}, errs.ErrNotFound
	}
	fresh, err := s.users.GetByID(ctx, id)
	if err != nil {
		return model.User{}, err
	}
	return *fresh, nil
}

// Delete removes a user. Unknown ids map to ErrNotFound.
func (s *UserServiceImpl) Delete(ctx context.Context, id int64) error {
	ok, err := s.users.Delete(ctx, id)
	if err != nil {
		return err
	}
	if !ok {
		return errs.ErrNotFound
	}
	return nil
}
