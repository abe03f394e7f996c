// Package constants holds the fixed vocabularies shared by the API and the
// local mirror: user roles, project/task statuses, and the message catalog.
package constants

import "strings"

// User roles.
const (
	RoleAdmin = "admin"
	RoleUser  = "user"
)

// Project statuses.
const (
	ProjectActive    = "active"
	ProjectCompleted = "completed"
	ProjectOnHold    = "on-hold"
)

// Task statuses.
const (
	TaskTodo       = "todo"
	TaskInProgress = "in-progress"
	TaskDone       = "done"
)

// UserRoles lists the accepted user roles.
var UserRoles = []string{RoleAdmin, RoleUser}

// ProjectStatuses lists the accepted project statuses.
var ProjectStatuses = []string{ProjectActive, ProjectCompleted, ProjectOnHold}

// TaskStatuses lists the accepted task statuses.
var TaskStatuses = []string{TaskTodo, TaskInProgress, TaskDone}

// IsUserRole reports whether s is an accepted user role.
func IsUserRole(s string) bool { return contains(UserRoles, s) }

// IsProjectStatus reports whether s is an accepted project status.
func IsProjectStatus(s string) bool { return contains(ProjectStatuses, s) }

// IsTaskStatus reports whether s is an accepted task status.
func IsTaskStatus(s string) bool { return contains(TaskStatuses, s) }

func contains(set []string, s string) bool {
	for _, v := range set {
		if v == s {
			return true
		}
	}
	return false
}

// Join renders a value set for "accepted values" messages.
func Join(set []string) string { return strings.Join(set, ", ") }

// Error messages.
const (
	MsgUserNotFound    = "User not found"
	MsgClientNotFound  = "Client not found"
	MsgProjectNotFound = "Project not found"
	MsgTaskNotFound    = "Task not found"
	MsgRequiredMissing = "Required fields missing"
	MsgInvalidData     = "Invalid data"
	MsgServerError     = "Internal server error"
	MsgDuplicateEntry  = "This entry already exists"
	MsgHasDependents   = "Resource is referenced by other records"
	MsgRouteNotFound   = "Route not found"
)

// Success messages.
const (
	MsgUserCreated    = "User created successfully"
	MsgUserUpdated    = "User updated successfully"
	MsgClientCreated  = "Client created successfully"
	MsgClientUpdated  = "Client updated successfully"
	MsgProjectCreated = "Project created successfully"
	MsgProjectUpdated = "Project updated successfully"
	MsgTaskCreated    = "Task created successfully"
	MsgTaskUpdated    = "Task updated successfully"
	MsgHealthy        = "TimeManager API is up"
)
