package repository

import (
	"context"

	"github.com/jmoreau/timemanager/internal/model"
)

// TaskRepository provides CRUD access for tasks. Read paths carry the
// denormalized project name and assignee username.
type TaskRepository interface {
	Create(ctx context.Context, t model.Task) (model.Task, error)
	List(ctx context.Context) ([]model.Task, error)
	GetByID(ctx context.Context, id int64) (*model.Task, error)
	// ListByProject returns the project's tasks, most recent first.
	ListByProject(ctx context.Context, projectID int64) ([]model.Task, error)
	// ListByUser returns tasks assigned to the user, most recent first.
	ListByUser(ctx context.Context, userID int64) ([]model.Task, error)
	Update(ctx context.Context, id int64, t model.Task) (bool, error)
	Delete(ctx context.Context, id int64) (bool, error)
}
