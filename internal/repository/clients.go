package repository

import (
	"context"

	"github.com/jmoreau/timemanager/internal/model"
)

// ClientRepository provides CRUD access for clients.
type ClientRepository interface {
	Create(ctx context.Context, c model.Client) (model.Client, error)
	List(ctx context.Context) ([]model.Client, error)
	GetByID(ctx context.Context, id int64) (*model.Client, error)
	Update(ctx context.Context, id int64, c model.Client) (bool, error)
	Delete(ctx context.Context, id int64) (bool, error)
}
