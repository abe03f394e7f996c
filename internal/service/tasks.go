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

// TaskService defines task CRUD operations.
type TaskService interface {
	Create(ctx context.Context, in model.TaskInput) (model.Task, error)
	List(ctx context.Context) ([]model.Task, error)
	GetByID(ctx context.Context, id int64) (model.Task, error)
	// ListByProject returns the project's tasks, or ErrNotFound for an
	// unknown project.
	ListByProject(ctx context.Context, projectID int64) ([]model.Task, error)
	// ListByUser returns tasks assigned to the user, or ErrNotFound for an
	// unknown user.
	ListByUser(ctx context.Context, userID int64) ([]model.Task, error)
	Update(ctx context.Context, id int64, in model.TaskInput) (model.Task, error)
	Delete(ctx context.Context, id int64) error
}

type TaskServiceImpl struct {
	tasks    repository.TaskRepository
	projects repository.ProjectRepository
	users    repository.UserRepository
}

// NewTaskService constructs TaskService. Project and user repositories back
// the reference existence checks.
func NewTaskService(tasks repository.TaskRepository, projects repository.ProjectRepository, users repository.UserRepository) *TaskServiceImpl {
	return &TaskServiceImpl{tasks: tasks, projects: projects, users: users}
}

// checkRefs verifies the owning project first, then the assignee.
func (s *TaskServiceImpl) checkRefs(ctx context.Context, projectID int64, assignedTo *int64) error {
	if _, err := s.projects.GetByID(ctx, projectID); err != nil {
		if errors.Is(err, errs.ErrNotFound) {
			return fmt.Errorf("%w: project does not exist", errs.ErrBadReference)
		}
		return err
	}
	if assignedTo != nil {
		if _, err := s.users.GetByID(ctx, *assignedTo); err != nil {
			if errors.Is(err, errs.ErrNotFound) {
				return fmt.Errorf("%w: assigned user does not exist", errs.ErrBadReference)
			}
			return err
		}
	}
	return nil
}

// Create validates input, checks references, inserts, and re-fetches the
// joined record so project and assignee names are present.
func (s *TaskServiceImpl) Create(ctx context.Context, in model.TaskInput) (model.Task, error) {
	if in.ProjectID == nil || in.Name == nil {
		return model.Task{}, fmt.Errorf("%w: project_id and name are required", errs.ErrMissingFields)
	}

	t := model.Task{
		ProjectID:   *in.ProjectID,
		Name:        *in.Name,
		Description: in.Description,
		AssignedTo:  in.AssignedTo,
		Status:      constants.TaskTodo,
	}
	if in.TimeSpent != nil {
		t.TimeSpent = *in.TimeSpent
	}
	if in.Status != nil {
		t.Status = *in.Status
	}
	if err := validate.Task(t); err != nil {
		return model.Task{}, err
	}
	if err := s.checkRefs(ctx, t.ProjectID, t.AssignedTo); err != nil {
		return model.Task{}, err
	}

	created, err := s.tasks.Create(ctx, t)
	if err != nil {
		return model.Task{}, err
	}
	fresh, err := s.tasks.GetByID(ctx, created.ID)
	if err != nil {
		return model.Task{}, err
	}
	return *fresh, nil
}

// List returns all tasks.
func (s *TaskServiceImpl) List(ctx context.Context) ([]model.Task, error) {
	return s.tasks.List(ctx)
}

// GetByID loads a single task.
func (s *TaskServiceImpl) GetByID(ctx context.Context, id int64) (model.Task, error) {
	t, err := s.tasks.GetByID(ctx, id)
	if err != nil {
		return model.Task{}, err
	}
	return *t, nil
}

// ListByProject returns the project's tasks after confirming the project exists.
func (s *TaskServiceImpl) ListByProject(ctx context.Context, projectID int64) ([]model.Task, error) {
	if _, err := s.projects.GetByID(ctx, projectID); err != nil {
		return nil, err
	}
	return s.tasks.ListByProject(ctx, projectID)
}

// ListByUser returns the user's tasks after confirming the user exists.
func (s *TaskServiceImpl) ListByUser(ctx context.Context, userID int64) ([]model.Task, error) {
	if _, err := s.users.GetByID(ctx, userID); err != nil {
		return nil, err
	}
	return s.tasks.ListByUser(ctx, userID)
}

// Update merges provided fields onto the existing task and persists.
func (s *TaskServiceImpl) Update(ctx context.Context, id int64, in model.TaskInput) (model.Task, error) {
	existing, err := s.tasks.GetByID(ctx, id)
	if err != nil {
		return model.Task{}, err
	}

	t := *existing
	if in.ProjectID != nil {
		t.ProjectID = *in.ProjectID
	}
	if in.Name != nil {
		t.Name = *in.Name
	}
	if in.Description != nil {
		t.Description = in.Description
	}
	if in.AssignedTo != nil {
		t.AssignedTo = in.AssignedTo
	}
	if in.TimeSpent != nil {
		t.TimeSpent = *in.TimeSpent
	}
	if in.Status != nil {
		t.Status = *in.Status
	}
	if err := validate.Task(t); err != nil {
		return model.Task{}, err
	}
	if err := s.checkRefs(ctx, t.ProjectID, t.AssignedTo); err != nil {
		return model.Task{}, err
	}

	ok, err := s.tasks.Update(ctx, id, t)
	if err != nil {
		return model.Task{}, err
	}
	if !ok {
		return model.Task{}, errs.ErrNotFound
	}
	fresh, err := s.tasks.GetByID(ctx, id)
	if err != nil {
		return model.Task{}, err
	}
	return *fresh, nil
}

// Delete removes a task. Unknown ids map to ErrNotFound.
func (s *TaskServiceImpl) Delete(ctx context.Context, id int64) error {
	ok, err := s.tasks.Delete(ctx, id)
	if err != nil {
		return err
	}
	if !ok {
		return errs.ErrNotFound
	}
	return nil
}
