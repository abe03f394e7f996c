package service

import (
	"context"
	"fmt"

	"github.com/jmoreau/timemanager/internal/errs"
	"github.com/jmoreau/timemanager/internal/model"
	"github.com/jmoreau/timemanager/internal/repository"
	"github.com/jmoreau/timemanager/internal/validate"
)

// ClientService defines client CRUD operations.
type ClientService interface {
	Create(ctx context.Context, in model.ClientInput) (model.Client, error)
	List(ctx context.Context) ([]model.Client, error)
	GetByID(ctx context.Context, id int64) (model.Client, error)
	Update(ctx context.Context, id int64, in model.ClientInput) (model.Client, error)
	// Delete removes a client unless projects still reference it.
	Delete(ctx context.Context, id int64) error
}

type ClientServiceImpl struct {
	clients  repository.ClientRepository
	projects repository.ProjectRepository
}

// NewClientService constructs ClientService. The project repository backs the
// pre-delete dependents check.
func NewClientService(clients repository.ClientRepository, projects repository.ProjectRepository) *ClientServiceImpl {
	return &ClientServiceImpl{clients: clients, projects: projects}
}

// Create validates input and inserts a new client.
func (s *ClientServiceImpl) Create(ctx context.Context, in model.ClientInput) (model.Client, error) {
	if in.Name == nil || in.Email == nil {
		return model.Client{}, fmt.Errorf("%w: name and email are required", errs.ErrMissingFields)
	}

	c := model.Client{
		Name:    *in.Name,
		Email:   *in.Email,
		Phone:   in.Phone,
		Company: in.Company,
	}
	if err := validate.Client(c); err != nil {
		return model.Client{}, err
	}
	return s.clients.Create(ctx, c)
}

// List returns all clients.
func (s *ClientServiceImpl) List(ctx context.Context) ([]model.Client, error) {
	return s.clients.List(ctx)
}

// GetByID loads a single client.
func (s *ClientServiceImpl) GetByID(ctx context.Context, id int64) (model.Client, error) {
	c, err := s.clients.GetByID(ctx, id)
	if err != nil {
		return model.Client{}, err
	}
	return *c, nil
}

// Update merges provided fields onto the existing client and persists.
func (s *ClientServiceImpl) Update(ctx context.Context, id int64, in model.ClientInput) (model.Client, error) {
	existing, err := s.clients.GetByID(ctx, id)
	if err != nil {
		return model.Client{}, err
	}

	c := *existing
	if in.Name != nil {
		c.Name = *in.Name
	}
	if in.Email != nil {
		c.Email = *in.Email
	}
	if in.Phone != nil {
		c.Phone = in.Phone
	}
	if in.Company != nil {
		c.Company = in.Company
	}
	if err := validate.Client(c); err != nil {
		return model.Client{}, err
	}

	ok, err := s.clients.Update(ctx, id, c)
	if err != nil {
		return model.Client{}, err
	}
	if !ok {
		return model.Client{}, errs.ErrNotFound
	}
	fresh, err := s.clients.GetByID(ctx, id)
	if err != nil {
		return model.Client{}, err
	}
	return *fresh, nil
}

// Delete removes a client. Deletion is blocked while projects reference it,
// checked explicitly before the statement runs.
func (s *ClientServiceImpl) Delete(ctx context.Context, id int64) error {
	if _, err := s.clients.GetByID(ctx, id); err != nil {
		return err
	}
	n, err := s.projects.CountByClient(ctx, id)
	if err != nil {
		return err
	}
	if n > 0 {
		return fmt.Errorf("%w: %d projects still reference this client", errs.ErrHasDependents, n)
	}

	ok, err := s.clients.Delete(ctx, id)
	if err != nil {
		return err
	}
	if !ok {
		return errs.ErrNotFound
	}
	return nil
}
