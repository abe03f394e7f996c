// Package validate holds pure field-level validation rules applied before
// any existence check or persistence call.
package validate

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/jmoreau/timemanager/internal/constants"
	"github.com/jmoreau/timemanager/internal/errs"
	"github.com/jmoreau/timemanager/internal/model"
)

var (
	emailRe = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)
	phoneRe = regexp.MustCompile(`^[+]?[\d\s-]{8,20}$`)
)

// Email reports whether s looks like localpart@domain.tld.
func Email(s string) bool { return emailRe.MatchString(s) }

// Phone reports whether s is an acceptable phone number. Empty is fine:
// the field is optional.
func Phone(s string) bool {
	if s == "" {
		return true
	}
	return phoneRe.MatchString(s)
}

// MinLen reports whether s has at least n characters after trimming.
func MinLen(s string, n int) bool { return len(strings.TrimSpace(s)) >= n }

func invalid(detail string) error {
	return fmt.Errorf("%w: %s", errs.ErrInvalidInput, detail)
}

// User checks user fields. Rules short-circuit on the first failure.
func User(u model.User) error {
	if !MinLen(u.Username, 2) {
		return invalid("username must be at least 2 characters")
	}
	if !Email(u.Email) {
		return invalid("email format is invalid")
	}
	if !constants.IsUserRole(u.Role) {
		return invalid("invalid role, accepted values: " + constants.Join(constants.UserRoles))
	}
	return nil
}

// Client checks client fields.
func Client(c model.Client) error {
	if !MinLen(c.Name, 2) {
		return invalid("name must be at least 2 characters")
	}
	if !Email(c.Email) {
		return invalid("email format is invalid")
	}
	if c.Phone != nil && !Phone(*c.Phone) {
		return invalid("phone number format is invalid")
	}
	return nil
}

// Project checks project fields.
func Project(p model.Project) error {
	if !MinLen(p.Name, 2) {
		return invalid("project name must be at least 2 characters")
	}
	if !constants.IsProjectStatus(p.Status) {
		return invalid("invalid status, accepted values: " + constants.Join(constants.ProjectStatuses))
	}
	return nil
}

// Task checks task fields.
func Task(t model.Task) error {
	if !MinLen(t.Name, 2) {
		return invalid("task name must be at least 2 characters")
	}
	if t.TimeSpent < 0 {
		return invalid("time spent must be a non-negative number")
	}
	if !constants.IsTaskStatus(t.Status) {
		return invalid("invalid status, accepted values: " + constants.Join(constants.TaskStatuses))
	}
	return nil
}
