package local

import (
	"fmt"
	"time"

	"github.com/jmoreau/timemanager/internal/errs"
)

// ClientUpdate carries the fields a partial update may change.
type ClientUpdate struct {
	Name    *string
	Email   *string
	Phone   *string
	Company *string
}

// Clients returns all stored clients.
func (s *Store) Clients() ([]Client, error) {
	return load[Client](s, keyClients)
}

// Client returns a stored client by id.
func (s *Store) Client(id int64) (*Client, error) {
	clients, err := s.Clients()
	if err != nil {
		return nil, err
	}
	for i := range clients {
		if clients[i].ID == id {
			return &clients[i], nil
		}
	}
	return nil, errs.ErrNotFound
}

// CreateClient appends a client with a max-plus-one id.
func (s *Store) CreateClient(name, email, phone, company string) (Client, error) {
	clients, err := s.Clients()
	if err != nil {
		return Client{}, err
	}
	c := Client{
		ID:        nextID(clients, func(c Client) int64 { return c.ID }),
		Name:      name,
		Email:     email,
		Phone:     phone,
		Company:   company,
		CreatedAt: time.Now().UTC(),
	}
	clients = append(clients, c)
	if err := save(s, keyClients, clients); err != nil {
		return Client{}, err
	}
	return c, nil
}

// UpdateClient merges provided fields onto the stored record.
func (s *Store) UpdateClient(id int64, upd ClientUpdate) (*Client, error) {
	clients, err := s.Clients()
	if err != nil {
		return nil, err
	}
	for i := range clients {
		if clients[i].ID != id {
			continue
		}
		if upd.Name != nil {
			clients[i].Name = *upd.Name
		}
		if upd.Email != nil {
			clients[i].Email = *upd.Email
		}
		if upd.Phone != nil {
			clients[i].Phone = *upd.Phone
		}
		if upd.Company != nil {
			clients[i].Company = *upd.Company
		}
		if err := save(s, keyClients, clients); err != nil {
			return nil, err
		}
		return &clients[i], nil
	}
	return nil, errs.ErrNotFound
}

// ClientProjectCount reports how many projects reference the client.
func (s *Store) ClientProjectCount(clientID int64) (int, error) {
	projects, err := s.Projects()
	if err != nil {
		return 0, err
	}
	n := 0
	for _, p := range projects {
		if p.ClientID != nil && *p.ClientID == clientID {
			n++
		}
	}
	return n, nil
}

// DeleteClient removes a client. Deletion is refused while projects still
// reference it; the mirror enforces this in the application layer since no
// store constraint exists.
func (s *Store) DeleteClient(id int64) (bool, error) {
	n, err := s.ClientProjectCount(id)
	if err != nil {
		return false, err
	}
	if n > 0 {
		return false, fmt.Errorf("%w: %d projects still reference this client", errs.ErrHasDependents, n)
	}

	clients, err := s.Clients()
	if err != nil {
		return false, err
	}
	kept := clients[:0]
	for _, c := range clients {
		if c.ID != id {
			kept = append(kept, c)
		}
	}
	if len(kept) == len(clients) {
		return false, nil
	}
	if err := save(s, keyClients, kept); err != nil {
		return false, err
	}
	return true, nil
}
