// Package local is the offline mirror of the TimeManager CRUD model. It
// keeps each collection as a named JSON blob on disk, the way the browser
// demo keeps them in localStorage: whole-collection reads and whole-collection
// writes, ids assigned max-plus-one, single-writer assumption.
package local

import (
	"encoding/json"
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"time"
)

// Collection keys.
const (
	keyUsers    = "users"
	keyClients  = "clients"
	keyProjects = "projects"
	keyTheme    = "theme"
)

// User mirrors the server entity without the updated_at column the demo
// never tracked.
type User struct {
	ID        int64     `json:"id"`
	Username  string    `json:"username"`
	Email     string    `json:"email"`
	Role      string    `json:"role"`
	CreatedAt time.Time `json:"created_at"`
}

// Client mirrors the server entity.
type Client struct {
	ID        int64     `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Phone     string    `json:"phone,omitempty"`
	Company   string    `json:"company,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}

// Task lives nested inside its owning project's record. ProjectID and
// ProjectName are filled in when tasks are flattened for cross-project reads.
type Task struct {
	ID          int64     `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description,omitempty"`
	AssignedTo  *int64    `json:"assigned_to,omitempty"`
	TimeSpent   float64   `json:"time_spent"`
	Status      string    `json:"status"`
	CreatedAt   time.Time `json:"created_at"`

	ProjectID   int64  `json:"project_id,omitempty"`
	ProjectName string `json:"project_name,omitempty"`
}

// Project carries its tasks inline.
type Project struct {
	ID          int64     `json:"id"`
	Name        string    `json:"name"`
	ClientID    *int64    `json:"client_id,omitempty"`
	Description string    `json:"description,omitempty"`
	Status      string    `json:"status"`
	CreatedAt   time.Time `json:"created_at"`
	Tasks       []Task    `json:"tasks"`
}

// Store persists collections under a single directory.
type Store struct{ dir string }

// DefaultDir returns the per-user data directory.
func DefaultDir() string {
	if v := os.Getenv("XDG_CONFIG_HOME"); v != "" {
		return filepath.Join(v, "timemanager")
	}
	home, _ := os.UserHomeDir()
	return filepath.Join(home, ".config", "timemanager")
}

// Open prepares a store rooted at dir, creating it if needed.
func Open(dir string) (*Store, error) {
	if dir == "" {
		dir = DefaultDir()
	}
	if err := os.MkdirAll(dir, 0o700); err != nil {
		return nil, err
	}
	return &Store{dir: dir}, nil
}

func (s *Store) path(key string) string { return filepath.Join(s.dir, key+".json") }

// load reads a collection blob; a missing file is an empty collection.
func load[T any](s *Store, key string) ([]T, error) {
	b, err := os.ReadFile(s.path(key))
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return []T{}, nil
		}
		return nil, err
	}
	var items []T
	if err := json.Unmarshal(b, &items); err != nil {
		return nil, err
	}
	return items, nil
}

// save replaces a collection blob atomically enough for a single writer.
func save[T any](s *Store, key string, items []T) error {
	b, err := json.MarshalIndent(items, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(s.path(key), b, 0o600)
}

// nextID assigns max-plus-one, or 1 for an empty collection.
func nextID[T any](items []T, id func(T) int64) int64 {
	var max int64
	for _, it := range items {
		if v := id(it); v > max {
			max = v
		}
	}
	return max + 1
}

// Reset drops every collection, including the theme preference.
func (s *Store) Reset() error {
	for _, key := range []string{keyUsers, keyClients, keyProjects, keyTheme} {
		if err := os.Remove(s.path(key)); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return err
		}
	}
	return nil
}

// Theme returns the stored theme preference, or def when unset.
func (s *Store) Theme(def string) string {
	b, err := os.ReadFile(s.path(keyTheme))
	if err != nil {
		return def
	}
	var v string
	if json.Unmarshal(b, &v) != nil || v == "" {
		return def
	}
	return v
}

// SetTheme persists the theme preference.
func (s *Store) SetTheme(name string) error {
	b, err := json.Marshal(name)
	if err != nil {
		return err
	}
	return os.WriteFile(s.path(keyTheme), b, 0o600)
}
