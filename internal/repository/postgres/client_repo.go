package postgres

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"

	"github.com/jmoreau/timemanager/internal/errs"
	"github.com/jmoreau/timemanager/internal/model"
)

// ClientRepo implements ClientRepository using PostgreSQL.
type ClientRepo struct{ db *DB }

// NewClientRepo constructs a client repository.
func NewClientRepo(db *DB) *ClientRepo { return &ClientRepo{db: db} }

// Create inserts a new client row and returns it with generated fields.
func (r *ClientRepo) Create(ctx context.Context, c model.Client) (model.Client, error) {
	const q = `
INSERT INTO clients (name, email, phone, company)
VALUES ($1, $2, $3, $4)
RETURNING id, created_at, updated_at`
	row := r.db.Pool.QueryRow(ctx, q, c.Name, c.Email, c.Phone, c.Company)
	if err := row.Scan(&c.ID, &c.CreatedAt, &c.UpdatedAt); err != nil {
		return model.Client{}, err
	}
	return c, nil
}

// List returns all clients ordered most recently created first.
func (r *ClientRepo) List(ctx context.Context) ([]model.Client, error) {
	const q = `
SELECT id, name, email, phone, company, created_at, updated_at
FROM clients
ORDER BY created_at DESC, id DESC`
	rows, err := r.db.Pool.Query(ctx, q)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []model.Client{}
	for rows.Next() {
		var c model.Client
		if err = rows.Scan(&c.ID, &c.Name, &c.Email, &c.Phone, &c.Company, &c.CreatedAt, &c.UpdatedAt); err != nil {
			return nil, err
		}
		out = append(out, c)
	}
	return out, rows.Err()
}

// GetByID selects a client by ID.
func (r *ClientRepo) GetByID(ctx context.Context, id int64) (*model.Client, error) {
	const q = `
SELECT id, name, email, phone, company, created_at, updated_at
FROM clients WHERE id=$1`
	var c model.Client
	err := r.db.Pool.QueryRow(ctx, q, id).
		Scan(&c.ID, &c.Name, &c.Email, &c.Phone, &c.Company, &c.CreatedAt, &c.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, errs.ErrNotFound
		}
		return nil, err
	}
	return &c, nil
}

// Update replaces all mutable fields of a client.
func (r *ClientRepo) Update(ctx context.Context, id int64, c model.Client) (bool, error) {
	const q = `
UPDATE clients
SET name=$2, email=$3, phone=$4, company=$5, updated_at=now()
WHERE id=$1`
	tag, err := r.db.Pool.Exec(ctx, q, id, c.Name, c.Email, c.Phone, c.Company)
	if err != nil {
		return false, err
	}
	return tag.RowsAffected() > 0, nil
}

// Delete removes a client by id. The FK mapping is a backstop: the service
// rejects deletion via an explicit dependents query first.
func (r *ClientRepo) Delete(ctx context.Context, id int64) (bool, error) {
	const q = `DELETE FROM clients WHERE id=$1`
	tag, err := r.db.Pool.Exec(ctx, q, id)
	if err != nil {
		if isForeignKeyViolation(err) {
			return false, errs.ErrHasDependents
		}
		return false, err
	}
	return tag.RowsAffected() > 0, nil
}
