package postgres

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"

	"github.com/jmoreau/timemanager/internal/errs"
	"github.com/jmoreau/timemanager/internal/model"
)

// TaskRepo implements TaskRepository using PostgreSQL.
type TaskRepo struct{ db *DB }

// NewTaskRepo constructs a task repository.
func NewTaskRepo(db *DB) *TaskRepo { return &TaskRepo{db: db} }

// taskCols joins the owning project and the assignee for display names.
const taskCols = `
SELECT t.id, t.project_id, t.name, t.description, t.assigned_to, t.time_spent,
       t.status, t.created_at, t.updated_at,
       COALESCE(p.name, '') AS project_name,
       COALESCE(u.username, '') AS assigned_to_name
FROM tasks t
LEFT JOIN projects p ON t.project_id = p.id
LEFT JOIN users u ON t.assigned_to = u.id`

// Create inserts a new task row and returns it with generated fields.
func (r *TaskRepo) Create(ctx context.Context, t model.Task) (model.Task, error) {
	const q = `
INSERT INTO tasks (project_id, name, description, assigned_to, time_spent, status)
VALUES ($1, $2, $3, $4, $5, $6)
RETURNING id, created_at, updated_at`
	row := r.db.Pool.QueryRow(ctx, q, t.ProjectID, t.Name, t.Description, t.AssignedTo, t.TimeSpent, t.Status)
	if err := row.Scan(&t.ID, &t.CreatedAt, &t.UpdatedAt); err != nil {
		if isForeignKeyViolation(err) {
			return model.Task{}, errs.ErrBadReference
		}
		return model.Task{}, err
	}
	return t, nil
}

// List returns all tasks ordered most recently created first.
func (r *TaskRepo) List(ctx context.Context) ([]model.Task, error) {
	const q = taskCols + `
ORDER BY t.created_at DESC, t.id DESC`
	return r.queryMany(ctx, q)
}

// GetByID selects a task by ID, including project and assignee names.
func (r *TaskRepo) GetByID(ctx context.Context, id int64) (*model.Task, error) {
	const q = taskCols + `
WHERE t.id=$1`
	var t model.Task
	err := r.db.Pool.QueryRow(ctx, q, id).Scan(
		&t.ID, &t.ProjectID, &t.Name, &t.Description, &t.AssignedTo, &t.TimeSpent,
		&t.Status, &t.CreatedAt, &t.UpdatedAt, &t.ProjectName, &t.AssignedToName)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, errs.ErrNotFound
		}
		return nil, err
	}
	return &t, nil
}

// ListByProject returns the project's tasks, most recent first.
func (r *TaskRepo) ListByProject(ctx context.Context, projectID int64) ([]model.Task, error) {
	const q = taskCols + `
WHERE t.project_id=$1
ORDER BY t.created_at DESC, t.id DESC`
	return r.queryMany(ctx, q, projectID)
}

// ListByUser returns tasks assigned to the user, most recent first.
func (r *TaskRepo) ListByUser(ctx context.Context, userID int64) ([]model.Task, error) {
	const q = taskCols + `
WHERE t.assigned_to=$1
ORDER BY t.created_at DESC, t.id DESC`
	return r.queryMany(ctx, q, userID)
}

// Update replaces all mutable fields of a task.
func (r *TaskRepo) Update(ctx context.Context, id int64, t model.Task) (bool, error) {
	const q = `
UPDATE tasks
SET project_id=$2, name=$3, description=$4, assigned_to=$5, time_spent=$6, status=$7, updated_at=now()
WHERE id=$1`
	tag, err := r.db.Pool.Exec(ctx, q, id, t.ProjectID, t.Name, t.Description, t.AssignedTo, t.TimeSpent, t.Status)
	if err != nil {
		if isForeignKeyViolation(err) {
			return false, errs.ErrBadReference
		}
		return false, err
	}
	return tag.RowsAffected() > 0, nil
}

// Delete removes a task by id.
func (r *TaskRepo) Delete(ctx context.Context, id int64) (bool, error) {
	const q = `DELETE FROM tasks WHERE id=$1`
	tag, err := r.db.Pool.Exec(ctx, q, id)
	if err != nil {
		return false, err
	}
	return tag.RowsAffected() > 0, nil
}

func (r *TaskRepo) queryMany(ctx context.Context, q string, args ...any) ([]model.Task, error) {
	rows, err := r.db.Pool.Query(ctx, q, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []model.Task{}
	for rows.Next() {
		var t model.Task
		if err = rows.Scan(&t.ID, &t.ProjectID, &t.Name, &t.Description, &t.AssignedTo, &t.TimeSpent,
			&t.Status, &t.CreatedAt, &t.UpdatedAt, &t.ProjectName, &t.AssignedToName); err != nil {
			return nil, err
		}
		out = append(out, t)
	}
	return out, rows.Err()
}
