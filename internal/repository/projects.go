package repository

import (
	"context"

	"github.com/jmoreau/timemanager/internal/model"
)

// ProjectRepository provides CRUD access for projects. Read paths carry the
// denormalized client name.
type ProjectRepository interface {
	Create(ctx context.Context, p model.Project) (model.Project, error)
	List(ctx context.Context) ([]model.Project, error)
	GetByID(ctx context.Context, id int64) (*model.Project, error)
	// ListByClient returns the client's projects, most recent first.
	ListByClient(ctx context.Context, clientID int64) ([]model.Project, error)
	// CountByClient reports how many projects reference the client. Used as
	// the explicit pre-delete dependents check.
	CountByClient(ctx context.Context, clientID int64) (int64, error)
	Update(ctx context.Context, id int64, p model.Project) (bool, error)
	Delete(ctx context.Context, id int64) (bool, error)
}
