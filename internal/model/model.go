// Package model defines domain entities used by services and repositories.
package model

import "time"

// User is an account that tasks can be assigned to.
type User struct {
	ID        int64     `json:"id"`
	Username  string    `json:"username"` // unique
	Email     string    `json:"email"`    // unique
	Role      string    `json:"role"`     // constants.UserRoles
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// Client is a customer that projects are billed to.
type Client struct {
	ID        int64     `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Phone     *string   `json:"phone"`   // optional
	Company   *string   `json:"company"` // optional
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// Project groups tasks, optionally for a client.
type Project struct {
	ID          int64     `json:"id"`
	Name        string    `json:"name"`
	ClientID    *int64    `json:"client_id"` // FK -> clients.id, nullable
	Description *string   `json:"description"`
	Status      string    `json:"status"` // constants.ProjectStatuses
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`

	// ClientName is denormalized on read paths via LEFT JOIN; empty when
	// the project has no client.
	ClientName string `json:"client_name,omitempty"`
}

// Task is a unit of work inside a project.
type Task struct {
	ID          int64     `json:"id"`
	ProjectID   int64     `json:"project_id"` // FK -> projects.id, required
	Name        string    `json:"name"`
	Description *string   `json:"description"`
	AssignedTo  *int64    `json:"assigned_to"` // FK -> users.id, nullable
	TimeSpent   float64   `json:"time_spent"`  // hours, >= 0
	Status      string    `json:"status"`      // constants.TaskStatuses
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`

	// Denormalized on read paths via LEFT JOIN.
	ProjectName    string `json:"project_name,omitempty"`
	AssignedToName string `json:"assigned_to_name,omitempty"`
}

// UserInput carries user fields from the API. Nil means "not provided",
// which update treats as "keep the current value".
type UserInput struct {
	Username *string `json:"username"`
	Email    *string `json:"email"`
	Role     *string `json:"role"`
}

// ClientInput carries client fields from the API.
type ClientInput struct {
	Name    *string `json:"name"`
	Email   *string `json:"email"`
	Phone   *string `json:"phone"`
	Company *string `json:"company"`
}

// ProjectInput carries project fields from the API.
type ProjectInput struct {
	Name        *string `json:"name"`
	ClientID    *int64  `json:"client_id"`
	Description *string `json:"description"`
	Status      *string `json:"status"`
}

// TaskInput carries task fields from the API.
type TaskInput struct {
	ProjectID   *int64   `json:"project_id"`
	Name        *string  `json:"name"`
	Description *string  `json:"description"`
	AssignedTo  *int64   `json:"assigned_to"`
	TimeSpent   *float64 `json:"time_spent"`
	Status      *string  `json:"status"`
}
