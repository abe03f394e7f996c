package postgres

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"

	"github.com/jmoreau/timemanager/internal/errs"
	"github.com/jmoreau/timemanager/internal/model"
)

// ProjectRepo implements ProjectRepository using PostgreSQL.
type ProjectRepo struct{ db *DB }

// NewProjectRepo constructs a project repository.
func NewProjectRepo(db *DB) *ProjectRepo { return &ProjectRepo{db: db} }

// projectCols is the joined read shape: LEFT JOIN so a missing client
// degrades to an empty name instead of dropping the row.
const projectCols = `
SELECT p.id, p.name, p.client_id, p.description, p.status,
       p.created_at, p.updated_at, COALESCE(c.name, '') AS client_name
FROM projects p
LEFT JOIN clients c ON p.client_id = c.id`

// Create inserts a new project row and returns it with generated fields.
func (r *ProjectRepo) Create(ctx context.Context, p model.Project) (model.Project, error) {
	const q = `
INSERT INTO projects (name, client_id, description, status)
VALUES ($1, $2, $3, $4)
RETURNING id, created_at, updated_at`
	row := r.db.Pool.QueryRow(ctx, q, p.Name, p.ClientID, p.Description, p.Status)
	if err := row.Scan(&p.ID, &p.CreatedAt, &p.UpdatedAt); err != nil {
		if isForeignKeyViolation(err) {
			return model.Project{}, errs.ErrBadReference
		}
		return model.Project{}, err
	}
	return p, nil
}

// List returns all projects ordered most recently created first.
func (r *ProjectRepo) List(ctx context.Context) ([]model.Project, error) {
	const q = projectCols + `
ORDER BY p.created_at DESC, p.id DESC`
	return r.queryMany(ctx, q)
}

// GetByID selects a project by ID, including its client's name.
func (r *ProjectRepo) GetByID(ctx context.Context, id int64) (*model.Project, error) {
	const q = projectCols + `
WHERE p.id=$1`
	var p model.Project
	err := r.db.Pool.QueryRow(ctx, q, id).Scan(
		&p.ID, &p.Name, &p.ClientID, &p.Description, &p.Status,
		&p.CreatedAt, &p.UpdatedAt, &p.ClientName)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, errs.ErrNotFound
		}
		return nil, err
	}
	return &p, nil
}

// ListByClient returns the client's projects, most recent first.
func (r *ProjectRepo) ListByClient(ctx context.Context, clientID int64) ([]model.Project, error) {
	const q = projectCols + `
WHERE p.client_id=$1
ORDER BY p.created_at DESC, p.id DESC`
	return r.queryMany(ctx, q, clientID)
}

// CountByClient reports how many projects reference the client.
func (r *ProjectRepo) CountByClient(ctx context.Context, clientID int64) (int64, error) {
	const q = `SELECT COUNT(*) FROM projects WHERE client_id=$1`
	var n int64
	if err := r.db.Pool.QueryRow(ctx, q, clientID).Scan(&n); err != nil {
		return 0, err
	}
	return n, nil
}

// Update replaces all mutable fields of a project.
func (r *ProjectRepo) Update(ctx context.Context, id int64, p model.Project) (bool, error) {
	const q = `
UPDATE projects
SET name=$2, client_id=$3, description=$4, status=$5, updated_at=now()
WHERE id=$1`
	tag, err := r.db.Pool.Exec(ctx, q, id, p.Name, p.ClientID, p.Description, p.Status)
	if err != nil {
		if isForeignKeyViolation(err) {
			return false, errs.ErrBadReference
		}
		return false, err
	}
	return tag.RowsAffected() > 0, nil
}

// Delete removes a project by id.
func (r *ProjectRepo) Delete(ctx context.Context, id int64) (bool, error) {
	const q = `DELETE FROM projects WHERE id=$1`
	tag, err := r.db.Pool.Exec(ctx, q, id)
	if err != nil {
		if isForeignKeyViolation(err) {
			return false, errs.ErrHasDependents
		}
		return false, err
	}
	return tag.RowsAffected() > 0, nil
}

func (r *ProjectRepo) queryMany(ctx context.Context, q string, args ...any) ([]model.Project, error) {
	rows, err := r.db.Pool.Query(ctx, q, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []model.Project{}
	for rows.Next() {
		var p model.Project
		if err = rows.Scan(&p.ID, &p.Name, &p.ClientID, &p.Description, &p.Status,
			&p.CreatedAt, &p.UpdatedAt, &p.ClientName); err != nil {
			return nil, err
		}
		out = append(out, p)
	}
	return out, rows.Err()
}
