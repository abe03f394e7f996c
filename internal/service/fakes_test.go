package service

import (
	"context"
	"time"

	"github.com/jmoreau/timemanager/internal/errs"
	"github.com/jmoreau/timemanager/internal/model"
	"github.com/jmoreau/timemanager/internal/repository"
)

// In-memory fakes implementing the repository interfaces. Records are kept
// in insertion order; List returns them newest first like the SQL ORDER BY.

type fakeUsers struct {
	rows    []model.User
	nextID  int64
	creates int

	createErr error
}

var _ repository.UserRepository = (*fakeUsers)(nil)

func (f *fakeUsers) Create(_ context.Context, u model.User) (model.User, error) {
	f.creates++
	if f.createErr != nil {
		return model.User{}, f.createErr
	}
	for _, e := range f.rows {
		if e.Username == u.Username || e.Email == u.Email {
			return model.User{}, errs.ErrAlreadyExists
		}
	}
	f.nextID++
	u.ID = f.nextID
	u.CreatedAt = time.Now()
	u.UpdatedAt = u.CreatedAt
	f.rows = append(f.rows, u)
	return u, nil
}

func (f *fakeUsers) List(_ context.Context) ([]model.User, error) {
	out := make([]model.User, 0, len(f.rows))
	for i := len(f.rows) - 1; i >= 0; i-- {
		out = append(out, f.rows[i])
	}
	return out, nil
}

func (f *fakeUsers) GetByID(_ context.Context, id int64) (*model.User, error) {
	for i := range f.rows {
		if f.rows[i].ID == id {
			c := f.rows[i]
			return &c, nil
		}
	}
	return nil, errs.ErrNotFound
}

func (f *fakeUsers) GetByUsername(_ context.Context, username string) (*model.User, error) {
	for i := range f.rows {
		if f.rows[i].Username == username {
			c := f.rows[i]
			return &c, nil
		}
	}
	return nil, errs.ErrNotFound
}

func (f *fakeUsers) GetByEmail(_ context.Context, email string) (*model.User, error) {
	for i := range f.rows {
		if f.rows[i].Email == email {
			c := f.rows[i]
			return &c, nil
		}
	}
	return nil, errs.ErrNotFound
}

func (f *fakeUsers) Update(_ context.Context, id int64, u model.User) (bool, error) {
	for i := range f.rows {
		if f.rows[i].ID == id {
			u.ID = id
			u.CreatedAt = f.rows[i].CreatedAt
			u.UpdatedAt = time.Now()
			f.rows[i] = u
			return true, nil
		}
	}
	return false, nil
}

func (f *fakeUsers) Delete(_ context.Context, id int64) (bool, error) {
	for i := range f.rows {
		if f.rows[i].ID == id {
			f.rows = append(f.rows[:i], f.rows[i+1:]...)
			return true, nil
		}
	}
	return false, nil
}

type fakeClients struct {
	rows   []model.Client
	nextID int64
}

var _ repository.ClientRepository = (*fakeClients)(nil)

func (f *fakeClients) Create(_ context.Context, c model.Client) (model.Client, error) {
	f.nextID++
	c.ID = f.nextID
	c.CreatedAt = time.Now()
	c.UpdatedAt = c.CreatedAt
	f.rows = append(f.rows, c)
	return c, nil
}

func (f *fakeClients) List(_ context.Context) ([]model.Client, error) {
	out := make([]model.Client, 0, len(f.rows))
	for i := len(f.rows) - 1; i >= 0; i-- {
		out = append(out, f.rows[i])
	}
	return out, nil
}

func (f *fakeClients) GetByID(_ context.Context, id int64) (*model.Client, error) {
	for i := range f.rows {
		if f.rows[i].ID == id {
			c := f.rows[i]
			return &c, nil
		}
	}
	return nil, errs.ErrNotFound
}

func (f *fakeClients) Update(_ context.Context, id int64, c model.Client) (bool, error) {
	for i := range f.rows {
		if f.rows[i].ID == id {
			c.ID = id
			f.rows[i] = c
			return true, nil
		}
	}
	return false, nil
}

func (f *fakeClients) Delete(_ context.Context, id int64) (bool, error) {
	for i := range f.rows {
		if f.rows[i].ID == id {
			f.rows = append(f.rows[:i], f.rows[i+1:]...)
			return true, nil
		}
	}
	return false, nil
}

type fakeProjects struct {
	rows    []model.Project
	nextID  int64
	creates int
}

var _ repository.ProjectRepository = (*fakeProjects)(nil)

func (f *fakeProjects) Create(_ context.Context, p model.Project) (model.Project, error) {
	f.creates++
	f.nextID++
	p.ID = f.nextID
	p.CreatedAt = time.Now()
	p.UpdatedAt = p.CreatedAt
	f.rows = append(f.rows, p)
	return p, nil
}

func (f *fakeProjects) List(_ context.Context) ([]model.Project, error) {
	out := make([]model.Project, 0, len(f.rows))
	for i := len(f.rows) - 1; i >= 0; i-- {
		out = append(out, f.rows[i])
	}
	return out, nil
}

func (f *fakeProjects) GetByID(_ context.Context, id int64) (*model.Project, error) {
	for i := range f.rows {
		if f.rows[i].ID == id {
			c := f.rows[i]
			return &c, nil
		}
	}
	return nil, errs.ErrNotFound
}

func (f *fakeProjects) ListByClient(_ context.Context, clientID int64) ([]model.Project, error) {
	out := []model.Project{}
	for i := len(f.rows) - 1; i >= 0; i-- {
		if f.rows[i].ClientID != nil && *f.rows[i].ClientID == clientID {
			out = append(out, f.rows[i])
		}
	}
	return out, nil
}

func (f *fakeProjects) CountByClient(_ context.Context, clientID int64) (int64, error) {
	var n int64
	for i := range f.rows {
		if f.rows[i].ClientID != nil && *f.rows[i].ClientID == clientID {
			n++
		}
	}
	return n, nil
}

func (f *fakeProjects) Update(_ context.Context, id int64, p model.Project) (bool, error) {
	for i := range f.rows {
		if f.rows[i].ID == id {
			p.ID = id
			f.rows[i] = p
			return true, nil
		}
	}
	return false, nil
}

func (f *fakeProjects) Delete(_ context.Context, id int64) (bool, error) {
	for i := range f.rows {
		if f.rows[i].ID == id {
			f.rows = append(f.rows[:i], f.rows[i+1:]...)
			return true, nil
		}
	}
	return false, nil
}

type fakeTasks struct {
	rows    []model.Task
	nextID  int64
	creates int
}

var _ repository.TaskRepository = (*fakeTasks)(nil)

func (f *fakeTasks) Create(_ context.Context, t model.Task) (model.Task, error) {
	f.creates++
	f.nextID++
	t.ID = f.nextID
	t.CreatedAt = time.Now()
	t.UpdatedAt = t.CreatedAt
	f.rows = append(f.rows, t)
	return t, nil
}

func (f *fakeTasks) List(_ context.Context) ([]model.Task, error) {
	out := make([]model.Task, 0, len(f.rows))
	for i := len(f.rows) - 1; i >= 0; i-- {
		out = append(out, f.rows[i])
	}
	return out, nil
}

func (f *fakeTasks) GetByID(_ context.Context, id int64) (*model.Task, error) {
	for i := range f.rows {
		if f.rows[i].ID == id {
			c := f.rows[i]
			return &c, nil
		}
	}
	return nil, errs.ErrNotFound
}

func (f *fakeTasks) ListByProject(_ context.Context, projectID int64) ([]model.Task, error) {
	out := []model.Task{}
	for i := len(f.rows) - 1; i >= 0; i-- {
		if f.rows[i].ProjectID == projectID {
			out = append(out, f.rows[i])
		}
	}
	return out, nil
}

func (f *fakeTasks) ListByUser(_ context.Context, userID int64) ([]model.Task, error) {
	out := []model.Task{}
	for i := len(f.rows) - 1; i >= 0; i-- {
		if f.rows[i].AssignedTo != nil && *f.rows[i].AssignedTo == userID {
			out = append(out, f.rows[i])
		}
	}
	return out, nil
}

func (f *fakeTasks) Update(_ context.Context, id int64, t model.Task) (bool, error) {
	for i := range f.rows {
		if f.rows[i].ID == id {
			t.ID = id
			f.rows[i] = t
			return true, nil
		}
	}
	return false, nil
}

func (f *fakeTasks) Delete(_ context.Context, id int64) (bool, error) {
	for i := range f.rows {
		if f.rows[i].ID == id {
			f.rows = append(f.rows[:i], f.rows[i+1:]...)
			return true, nil
		}
	}
	return false, nil
}

func strPtr(s string) *string   { return &s }
func i64Ptr(v int64) *int64     { return &v }
func f64Ptr(v float64) *float64 { return &v }
