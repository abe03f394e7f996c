package local

import (
	"time"

	"github.com/jmoreau/timemanager/internal/constants"
	"github.com/jmoreau/timemanager/internal/errs"
)

// ProjectUpdate carries the fields a partial update may change. Task lists
// are managed through the task operations, never replaced wholesale here.
type ProjectUpdate struct {
	Name        *string
	ClientID    *int64
	Description *string
	Status      *string
}

// Projects returns all stored projects with their nested tasks.
func (s *Store) Projects() ([]Project, error) {
	return load[Project](s, keyProjects)
}

// Project returns a stored project by id.
func (s *Store) Project(id int64) (*Project, error) {
	projects, err := s.Projects()
	if err != nil {
		return nil, err
	}
	for i := range projects {
		if projects[i].ID == id {
			return &projects[i], nil
		}
	}
	return nil, errs.ErrNotFound
}

// CreateProject appends a project with an empty task list.
func (s *Store) CreateProject(name string, clientID *int64, description, status string) (Project, error) {
	projects, err := s.Projects()
	if err != nil {
		return Project{}, err
	}
	if status == "" {
		status = constants.ProjectActive
	}
	p := Project{
		ID:          nextID(projects, func(p Project) int64 { return p.ID }),
		Name:        name,
		ClientID:    clientID,
		Description: description,
		Status:      status,
		CreatedAt:   time.Now().UTC(),
		Tasks:       []Task{},
	}
	projects = append(projects, p)
	if err := save(s, keyProjects, projects); err != nil {
		return Project{}, err
	}
	return p, nil
}

// UpdateProject merges provided fields onto the stored record.
func (s *Store) UpdateProject(id int64, upd ProjectUpdate) (*Project, error) {
	projects, err := s.Projects()
	if err != nil {
		return nil, err
	}
	for i := range projects {
		if projects[i].ID != id {
			continue
		}
		if upd.Name != nil {
			projects[i].Name = *upd.Name
		}
		if upd.ClientID != nil {
			projects[i].ClientID = upd.ClientID
		}
		if upd.Description != nil {
			projects[i].Description = *upd.Description
		}
		if upd.Status != nil {
			projects[i].Status = *upd.Status
		}
		if err := save(s, keyProjects, projects); err != nil {
			return nil, err
		}
		return &projects[i], nil
	}
	return nil, errs.ErrNotFound
}

// DeleteProject removes a project and, implicitly, its nested tasks.
func (s *Store) DeleteProject(id int64) (bool, error) {
	projects, err := s.Projects()
	if err != nil {
		return false, err
	}
	kept := projects[:0]
	for _, p := range projects {
		if p.ID != id {
			kept = append(kept, p)
		}
	}
	if len(kept) == len(projects) {
		return false, nil
	}
	if err := save(s, keyProjects, kept); err != nil {
		return false, err
	}
	return true, nil
}

// ProjectsByClient filters projects by their client reference.
func (s *Store) ProjectsByClient(clientID int64) ([]Project, error) {
	projects, err := s.Projects()
	if err != nil {
		return nil, err
	}
	out := []Project{}
	for _, p := range projects {
		if p.ClientID != nil && *p.ClientID == clientID {
			out = append(out, p)
		}
	}
	return out, nil
}

// ProjectsByStatus filters projects by status.
func (s *Store) ProjectsByStatus(status string) ([]Project, error) {
	projects, err := s.Projects()
	if err != nil {
		return nil, err
	}
	out := []Project{}
	for _, p := range projects {
		if p.Status == status {
			out = append(out, p)
		}
	}
	return out, nil
}
