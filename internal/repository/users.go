// Package repository defines storage interfaces implemented by concrete backends.
package repository

import (
	"context"

	"github.com/jmoreau/timemanager/internal/model"
)

// UserRepository provides CRUD access for users.
type UserRepository interface {
	// Create inserts a new user and returns it with id and timestamps set.
	Create(ctx context.Context, u model.User) (model.User, error)
	// List returns all users, most recently created first.
	List(ctx context.Context) ([]model.User, error)
	// GetByID loads a user by ID.
	GetByID(ctx context.Context, id int64) (*model.User, error)
	// GetByUsername loads a user by username.
	GetByUsername(ctx context.Context, username string) (*model.User, error)
	// GetByEmail loads a user by email.
	GetByEmail(ctx context.Context, email string) (*model.User, error)
	// Update replaces all mutable fields and reports whether a row changed.
	Update(ctx context.Context, id int64, u model.User) (bool, error)
	// Delete removes a user and reports whether a row was removed.
	Delete(ctx context.Context, id int64) (bool, error)
}
