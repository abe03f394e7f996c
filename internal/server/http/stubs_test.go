package httpserver

import (
	"context"

	"github.com/jmoreau/timemanager/internal/model"
	"github.com/jmoreau/timemanager/internal/service"
)

// Function-field stubs so each test controls exactly the call it exercises.
// Unset functions return zero values.

type stubUsers struct {
	create func(model.UserInput) (model.User, error)
	list   func() ([]model.User, error)
	get    func(int64) (model.User, error)
	update func(int64, model.UserInput) (model.User, error)
	delete func(int64) error
}

var _ service.UserService = (*stubUsers)(nil)

func (s *stubUsers) Create(_ context.Context, in model.UserInput) (model.User, error) {
	if s.create == nil {
		return model.User{}, nil
	}
	return s.create(in)
}

func (s *stubUsers) List(context.Context) ([]model.User, error) {
	if s.list == nil {
		return nil, nil
	}
	return s.list()
}

func (s *stubUsers) GetByID(_ context.Context, id int64) (model.User, error) {
	if s.get == nil {
		return model.User{}, nil
	}
	return s.get(id)
}

func (s *stubUsers) Update(_ context.Context, id int64, in model.UserInput) (model.User, error) {
	if s.update == nil {
		return model.User{}, nil
	}
	return s.update(id, in)
}

func (s *stubUsers) Delete(_ context.Context, id int64) error {
	if s.delete == nil {
		return nil
	}
	return s.delete(id)
}

type stubClients struct {
	create func(model.ClientInput) (model.Client, error)
	list   func() ([]model.Client, error)
	get    func(int64) (model.Client, error)
	update func(int64, model.ClientInput) (model.Client, error)
	delete func(int64) error
}

var _ service.ClientService = (*stubClients)(nil)

func (s *stubClients) Create(_ context.Context, in model.ClientInput) (model.Client, error) {
	if s.create == nil {
		return model.Client{}, nil
	}
	return s.create(in)
}

func (s *stubClients) List(context.Context) ([]model.Client, error) {
	if s.list == nil {
		return nil, nil
	}
	return s.list()
}

func (s *stubClients) GetByID(_ context.Context, id int64) (model.Client, error) {
	if s.get == nil {
		return model.Client{}, nil
	}
	return s.get(id)
}

func (s *stubClients) Update(_ context.Context, id int64, in model.ClientInput) (model.Client, error) {
	if s.update == nil {
		return model.Client{}, nil
	}
	return s.update(id, in)
}

func (s *stubClients) Delete(_ context.Context, id int64) error {
	if s.delete == nil {
		return nil
	}
	return s.delete(id)
}

type stubProjects struct {
	create       func(model.ProjectInput) (model.Project, error)
	list         func() ([]model.Project, error)
	get          func(int64) (model.Project, error)
	listByClient func(int64) ([]model.Project, error)
	update       func(int64, model.ProjectInput) (model.Project, error)
	delete       func(int64) error
}

var _ service.ProjectService = (*stubProjects)(nil)

func (s *stubProjects) Create(_ context.Context, in model.ProjectInput) (model.Project, error) {
	if s.create == nil {
		return model.Project{}, nil
	}
	return s.create(in)
}

func (s *stubProjects) List(context.Context) ([]model.Project, error) {
	if s.list == nil {
		return nil, nil
	}
	return s.list()
}

func (s *stubProjects) GetByID(_ context.Context, id int64) (model.Project, error) {
	if s.get == nil {
		return model.Project{}, nil
	}
	return s.get(id)
}

func (s *stubProjects) ListByClient(_ context.Context, clientID int64) ([]model.Project, error) {
	if s.listByClient == nil {
		return nil, nil
	}
	return s.listByClient(clientID)
}

func (s *stubProjects) Update(_ context.Context, id int64, in model.ProjectInput) (model.Project, error) {
	if s.update == nil {
		return model.Project{}, nil
	}
	return s.update(id, in)
}

func (s *stubProjects) Delete(_ context.Context, id int64) error {
	if s.delete == nil {
		return nil
	}
	return s.delete(id)
}

type stubTasks struct {
	create        func(model.TaskInput) (model.Task, error)
	list          func() ([]model.Task, error)
	get           func(int64) (model.Task, error)
	listByProject func(int64) ([]model.Task, error)
	listByUser    func(int64) ([]model.Task, error)
	update        func(int64, model.TaskInput) (model.Task, error)
	delete        func(int64) error
}

var _ service.TaskService = (*stubTasks)(nil)

func (s *stubTasks) Create(_ context.Context, in model.TaskInput) (model.Task, error) {
	if s.create == nil {
		return model.Task{}, nil
	}
	return s.create(in)
}

func (s *stubTasks) List(context.Context) ([]model.Task, error) {
	if s.list == nil {
		return nil, nil
	}
	return s.list()
}

func (s *stubTasks) GetByID(_ context.Context, id int64) (model.Task, error) {
	if s.get == nil {
		return model.Task{}, nil
	}
	return s.get(id)
}

func (s *stubTasks) ListByProject(_ context.Context, projectID int64) ([]model.Task, error) {
	if s.listByProject == nil {
		return nil, nil
	}
	return s.listByProject(projectID)
}

func (s *stubTasks) ListByUser(_ context.Context, userID int64) ([]model.Task, error) {
	if s.listByUser == nil {
		return nil, nil
	}
	return s.listByUser(userID)
}

func (s *stubTasks) Update(_ context.Context, id int64, in model.TaskInput) (model.Task, error) {
	if s.update == nil {
		return model.Task{}, nil
	}
	return s.update(id, in)
}

func (s *stubTasks) Delete(_ context.Context, id int64) error {
	if s.delete == nil {
		return nil
	}
	return s.delete(id)
}
