package local

import (
	"time"

	"github.com/jmoreau/timemanager/internal/constants"
	"github.com/jmoreau/timemanager/internal/errs"
)

// UserUpdate carries the fields a partial update may change.
type UserUpdate struct {
	Username *string
	Email    *string
	Role     *string
}

// Users returns all stored users.
func (s *Store) Users() ([]User, error) {
	return load[User](s, keyUsers)
}

// User returns a stored user by id.
func (s *Store) User(id int64) (*User, error) {
	users, err := s.Users()
	if err != nil {
		return nil, err
	}
	for i := range users {
		if users[i].ID == id {
			return &users[i], nil
		}
	}
	return nil, errs.ErrNotFound
}

// CreateUser appends a user with a max-plus-one id and a creation stamp.
func (s *Store) CreateUser(username, email, role string) (User, error) {
	users, err := s.Users()
	if err != nil {
		return User{}, err
	}
	if role == "" {
		role = constants.RoleUser
	}
	u := User{
		ID:        nextID(users, func(u User) int64 { return u.ID }),
		Username:  username,
		Email:     email,
		Role:      role,
		CreatedAt: time.Now().UTC(),
	}
	users = append(users, u)
	if err := save(s, keyUsers, users); err != nil {
		return User{}, err
	}
	return u, nil
}

// UpdateUser merges provided fields onto the stored record.
func (s *Store) UpdateUser(id int64, upd UserUpdate) (*User, error) {
	users, err := s.Users()
	if err != nil {
		return nil, err
	}
	for i := range users {
		if users[i].ID != id {
			continue
		}
		if upd.Username != nil {
			users[i].Username = *upd.Username
		}
		if upd.Email != nil {
			users[i].Email = *upd.Email
		}
		if upd.Role != nil {
			users[i].Role = *upd.Role
		}
		if err := save(s, keyUsers, users); err != nil {
			return nil, err
		}
		return &users[i], nil
	}
	return nil, errs.ErrNotFound
}

// DeleteUser removes a user; success means the collection shrank.
func (s *Store) DeleteUser(id int64) (bool, error) {
	users, err := s.Users()
	if err != nil {
		return false, err
	}
	kept := users[:0]
	for _, u := range users {
		if u.ID != id {
			kept = append(kept, u)
		}
	}
	if len(kept) == len(users) {
		return false, nil
	}
	if err := save(s, keyUsers, kept); err != nil {
		return false, err
	}
	return true, nil
}
