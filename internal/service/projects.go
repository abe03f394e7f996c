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

// ProjectService defines project CRUD operations.
type ProjectService interface {
	Create(ctx context.Context, in model.ProjectInput) (model.Project, error)
	List(ctx context.Context) ([]model.Project, error)
	GetByID(ctx context.Context, id int64) (model.Project, error)
	// ListByClient returns the client's projects, or ErrNotFound for an
	// unknown client.
	ListByClient(ctx context.Context, clientID int64) ([]model.Project, error)
	Update(ctx context.Context, id int64, in model.ProjectInput) (model.Project, error)
	Delete(ctx context.Context, id int64) error
}

type ProjectServiceImpl struct {
	projects repository.ProjectRepository
	clients  repository.ClientRepository
}

// NewProjectService constructs ProjectService.
func NewProjectService(projects repository.ProjectRepository, clients repository.ClientRepository) *ProjectServiceImpl {
	return &ProjectServiceImpl{projects: projects, clients: clients}
}

// checkClientRef verifies a referenced client exists. Absence is the
// caller's mistake, so it maps to ErrBadReference rather than ErrNotFound.
func (s *ProjectServiceImpl) checkClientRef(ctx context.Context, clientID *int64) error {
	if clientID == nil {
		return nil
	}
	if _, err := s.clients.GetByID(ctx, *clientID); err != nil {
		if errors.Is(err, errs.ErrNotFound) {
			return fmt.Errorf("%w: client does not exist", errs.ErrBadReference)
		}
		return err
	}
	return nil
}

// Create validates input, checks the client reference, and inserts. The
// response is re-fetched so the joined client name is present.
func (s *ProjectServiceImpl) Create(ctx context.Context, in model.ProjectInput) (model.Project, error) {
	if in.Name == nil {
		return model.Project{}, fmt.Errorf("%w: name is required", errs.ErrMissingFields)
	}

	p := model.Project{
		Name:        *in.Name,
		ClientID:    in.ClientID,
		Description: in.Description,
		Status:      constants.ProjectActive,
	}
	if in.Status != nil {
		p.Status = *in.Status
	}
	if err := validate.Project(p); err != nil {
		return model.Project{}, err
	}
	if err := s.checkClientRef(ctx, p.ClientID); err != nil {
		return model.Project{}, err
	}

	created, err := s.projects.Create(ctx, p)
	if err != nil {
		return model.Project{}, err
	}
	fresh, err := s.projects.GetByID(ctx, created.ID)
	if err != nil {
		return model.Project{}, err
	}
	return *fresh, nil
}

// List returns all projects.
func (s *ProjectServiceImpl) List(ctx context.Context) ([]model.Project, error) {
	return s.projects.List(ctx)
}

// GetByID loads a single project.
func (s *ProjectServiceImpl) GetByID(ctx context.Context, id int64) (model.Project, error) {
	p, err := s.projects.GetByID(ctx, id)
	if err != nil {
		return model.Project{}, err
	}
	return *p, nil
}

// ListByClient returns the client's projects after confirming the client exists.
func (s *ProjectServiceImpl) ListByClient(ctx context.Context, clientID int64) ([]model.Project, error) {
	if _, err := s.clients.GetByID(ctx, clientID); err != nil {
		return nil, err
	}
	return s.projects.ListByClient(ctx, clientID)
}

// Update merges provided fields onto the existing project and persists.
func (s *ProjectServiceImpl) Update(ctx context.Context, id int64, in model.ProjectInput) (model.Project, error) {
	existing, err := s.projects.GetByID(ctx, id)
	if err != nil {
		return model.Project{}, err
	}

	p := *existing
	if in.Name != nil {
		p.Name = *in.Name
	}
	if in.ClientID != nil {
		p.ClientID = in.ClientID
	}
	if in.Description != nil {
		p.Description = in.Description
	}
	if in.Status != nil {
		p.Status = *in.Status
	}
	if err := validate.Project(p); err != nil {
		return model.Project{}, err
	}
	if err := s.checkClientRef(ctx, in.ClientID); err != nil {
		return model.Project{}, err
	}

	ok, err := s.projects.Update(ctx, id, p)
	if err != nil {
		return model.Project{}, err
	}
	if !ok {
		return model.Project{}, errs.ErrNotFound
	}
	fresh, err := s.projects.GetByID(ctx, id)
	if err != nil {
		return model.Project{}, err
	}
	return *fresh, nil
}

// Delete removes a project. Unknown ids map to ErrNotFound.
func (s *ProjectServiceImpl) Delete(ctx context.Context, id int64) error {
	ok, err := s.projects.Delete(ctx, id)
	if err != nil {
		return err
	}
	if !ok {
		return errs.ErrNotFound
	}
	return nil
}
