package local

import (
	"time"

	"github.com/jmoreau/timemanager/internal/constants"
	"github.com/jmoreau/timemanager/internal/errs"
)

// TaskUpdate carries the fields a partial update may change.
type TaskUpdate struct {
	Name        *string
	Description *string
	AssignedTo  *int64
	TimeSpent   *float64
	Status      *string
}

// AllTasks flattens every project's nested tasks, tagging each with its
// owning project's id and name.
func (s *Store) AllTasks() ([]Task, error) {
	projects, err := s.Projects()
	if err != nil {
		return nil, err
	}
	out := []Task{}
	for _, p := range projects {
		for _, t := range p.Tasks {
			t.ProjectID = p.ID
			t.ProjectName = p.Name
			out = append(out, t)
		}
	}
	return out, nil
}

// TasksByProject returns the nested task list of one project.
func (s *Store) TasksByProject(projectID int64) ([]Task, error) {
	p, err := s.Project(projectID)
	if err != nil {
		return nil, err
	}
	return append([]Task{}, p.Tasks...), nil
}

// TasksByStatus filters the flattened task list by status.
func (s *Store) TasksByStatus(status string) ([]Task, error) {
	all, err := s.AllTasks()
	if err != nil {
		return nil, err
	}
	out := []Task{}
	for _, t := range all {
		if t.Status == status {
			out = append(out, t)
		}
	}
	return out, nil
}

// TasksByUser filters the flattened task list by assignee.
func (s *Store) TasksByUser(userID int64) ([]Task, error) {
	all, err := s.AllTasks()
	if err != nil {
		return nil, err
	}
	out := []Task{}
	for _, t := range all {
		if t.AssignedTo != nil && *t.AssignedTo == userID {
			out = append(out, t)
		}
	}
	return out, nil
}

// CreateTask appends a task to its owning project. Task ids are max-plus-one
// within that project only, and time_spent always starts at zero.
func (s *Store) CreateTask(projectID int64, name, description string, assignedTo *int64, status string) (Task, error) {
	projects, err := s.Projects()
	if err != nil {
		return Task{}, err
	}
	for i := range projects {
		if projects[i].ID != projectID {
			continue
		}
		if status == "" {
			status = constants.TaskTodo
		}
		t := Task{
			ID:          nextID(projects[i].Tasks, func(t Task) int64 { return t.ID }),
			Name:        name,
			Description: description,
			AssignedTo:  assignedTo,
			TimeSpent:   0,
			Status:      status,
			CreatedAt:   time.Now().UTC(),
		}
		projects[i].Tasks = append(projects[i].Tasks, t)
		if err := save(s, keyProjects, projects); err != nil {
			return Task{}, err
		}
		return t, nil
	}
	return Task{}, errs.ErrNotFound
}

// UpdateTask merges provided fields onto a nested task and persists the
// whole project collection back.
func (s *Store) UpdateTask(projectID, taskID int64, upd TaskUpdate) (*Task, error) {
	projects, err := s.Projects()
	if err != nil {
		return nil, err
	}
	for i := range projects {
		if projects[i].ID != projectID {
			continue
		}
		for j := range projects[i].Tasks {
			if projects[i].Tasks[j].ID != taskID {
				continue
			}
			t := &projects[i].Tasks[j]
			if upd.Name != nil {
				t.Name = *upd.Name
			}
			if upd.Description != nil {
				t.Description = *upd.Description
			}
			if upd.AssignedTo != nil {
				t.AssignedTo = upd.AssignedTo
			}
			if upd.TimeSpent != nil {
				t.TimeSpent = *upd.TimeSpent
			}
			if upd.Status != nil {
				t.Status = *upd.Status
			}
			if err := save(s, keyProjects, projects); err != nil {
				return nil, err
			}
			return t, nil
		}
		return nil, errs.ErrNotFound
	}
	return nil, errs.ErrNotFound
}

// DeleteTask removes a nested task; success means the task list shrank.
func (s *Store) DeleteTask(projectID, taskID int64) (bool, error) {
	projects, err := s.Projects()
	if err != nil {
		return false, err
	}
	for i := range projects {
		if projects[i].ID != projectID {
			continue
		}
		tasks := projects[i].Tasks
		kept := tasks[:0]
		for _, t := range tasks {
			if t.ID != taskID {
				kept = append(kept, t)
			}
		}
		if len(kept) == len(tasks) {
			return false, nil
		}
		projects[i].Tasks = kept
		if err := save(s, keyProjects, projects); err != nil {
			return false, err
		}
		return true, nil
	}
	return false, nil
}

// AddTime accumulates hours against a nested task's time_spent counter.
func (s *Store) AddTime(projectID, taskID int64, hours float64) (*Task, error) {
	projects, err := s.Projects()
	if err != nil {
		return nil, err
	}
	for i := range projects {
		if projects[i].ID != projectID {
			continue
		}
		for j := range projects[i].Tasks {
			if projects[i].Tasks[j].ID != taskID {
				continue
			}
			projects[i].Tasks[j].TimeSpent += hours
			if err := save(s, keyProjects, projects); err != nil {
				return nil, err
			}
			return &projects[i].Tasks[j], nil
		}
		return nil, errs.ErrNotFound
	}
	return nil, errs.ErrNotFound
}
