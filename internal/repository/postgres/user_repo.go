package postgres

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"

	"github.com/jmoreau/timemanager/internal/errs"
	"github.com/jmoreau/timemanager/internal/model"
)

// UserRepo implements UserRepository using PostgreSQL.
type UserRepo struct{ db *DB }

// NewUserRepo constructs a user repository.
func NewUserRepo(db *DB) *UserRepo { return &UserRepo{db: db} }

// Create inserts a new user row and returns it with generated fields.
func (r *UserRepo) Create(ctx context.Context, u model.User) (model.User, error) {
	const q = `
INSERT INTO users (username, email, role)
VALUES ($1, $2, $3)
RETURNING id, created_at, updated_at`
	row := r.db.Pool.QueryRow(ctx, q, u.Username, u.Email, u.Role)
	if err := row.Scan(&u.ID, &u.CreatedAt, &u.UpdatedAt); err != nil {
		if isUniqueViolation(err) {
			return model.User{}, errs.ErrAlreadyExists
		}
		return model.User{}, err
	}
	return u, nil
}

// List returns all users ordered most recently created first.
func (r *UserRepo) List(ctx context.Context) ([]model.User, error) {
	const q = `
SELECT id, username, email, role, created_at, updated_at
FROM users
ORDER BY created_at DESC, id DESC`
	rows, err := r.db.Pool.Query(ctx, q)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []model.User{}
	for rows.Next() {
		var u model.User
		if err = rows.Scan(&u.ID, &u.Username, &u.Email, &u.Role, &u.CreatedAt, &u.UpdatedAt); err != nil {
			return nil, err
		}
		out = append(out, u)
	}
	return out, rows.Err()
}

// GetByID selects a user by ID.
func (r *UserRepo) GetByID(ctx context.Context, id int64) (*model.User, error) {
	const q = `
SELECT id, username, email, role, created_at, updated_at
FROM users WHERE id=$1`
	return r.scanOne(r.db.Pool.QueryRow(ctx, q, id))
}

// GetByUsername selects a user by username.
func (r *UserRepo) GetByUsername(ctx context.Context, username string) (*model.User, error) {
	const q = `
SELECT id, username, email, role, created_at, updated_at
FROM users WHERE username=$1`
	return r.scanOne(r.db.Pool.QueryRow(ctx, q, username))
}

// GetByEmail selects a user by email.
func (r *UserRepo) GetByEmail(ctx context.Context, email string) (*model.User, error) {
	const q = `
SELECT id, username, email, role, created_at, updated_at
FROM users WHERE email=$1`
	return r.scanOne(r.db.Pool.QueryRow(ctx, q, email))
}

func (r *UserRepo) scanOne(row pgx.Row) (*model.User, error) {
	var u model.User
	if err := row.Scan(&u.ID, &u.Username, &u.Email, &u.Role, &u.CreatedAt, &u.UpdatedAt); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, errs.ErrNotFound
		}
		return nil, err
	}
	return &u, nil
}

// Update replaces all mutable fields of a user.
func (r *UserRepo) Update(ctx context.Context, id int64, u model.User) (bool, error) {
	const q = `
UPDATE users
SET username=$2, email=$3, role=$4, updated_at=now()
WHERE id=$1`
	tag, err := r.db.Pool.Exec(ctx, q, id, u.Username, u.Email, u.Role)
	if err != nil {
		if isUniqueViolation(err) {
			return false, errs.ErrAlreadyExists
		}
		return false, err
	}
	return tag.RowsAffected() > 0, nil
}

// Delete removes a user by id.
func (r *UserRepo) Delete(ctx context.Context, id int64) (bool, error) {
	const q = `DELETE FROM users WHERE id=$1`
	tag, err := r.db.Pool.Exec(ctx, q, id)
	if err != nil {
		if isForeignKeyViolation(err) {
			return false, errs.ErrHasDependents
		}
		return false, err
	}
	return tag.RowsAffected() > 0, nil
}
