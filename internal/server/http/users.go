package httpserver

import (
	"net/http"

	"github.com/jmoreau/timemanager/internal/constants"
	"github.com/jmoreau/timemanager/internal/model"
)

// CreateUser handles POST /api/users.
func (s *Server) CreateUser(w http.ResponseWriter, r *http.Request) {
	var in model.UserInput
	if err := decodeBody(r, &in); err != nil {
		respondBadJSON(w)
		return
	}
	u, err := s.users.Create(r.Context(), in)
	if err != nil {
		respondServiceError(w, err, constants.MsgUserNotFound)
		return
	}
	respondData(w, http.StatusCreated, constants.MsgUserCreated, u)
}

// ListUsers handles GET /api/users.
func (s *Server) ListUsers(w http.ResponseWriter, r *http.Request) {
	users, err := s.users.List(r.Context())
	if err != nil {
		respondServiceError(w, err, constants.MsgUserNotFound)
		return
	}
	respondList(w, users, len(users))
}

// GetUser handles GET /api/users/{id}.
func (s *Server) GetUser(w http.ResponseWriter, r *http.Request) {
	id, err := idParam(r, "id")
	if err != nil {
		respondBadID(w, err)
		return
	}
	u, err := s.users.GetByID(r.Context(), id)
	if err != nil {
		respondServiceError(w, err, constants.MsgUserNotFound)
		return
	}
	respondData(w, http.StatusOK, "", u)
}

// UpdateUser handles PUT /api/users/{id}.
func (s *Server) UpdateUser(w http.ResponseWriter, r *http.Request) {
	id, err := idParam(r, "id")
	if err != nil {
		respondBadID(w, err)
		return
	}
	var in model.UserInput
	if err := decodeBody(r, &in); err != nil {
		respondBadJSON(w)
		return
	}
	u, err := s.users.Update(r.Context(), id, in)
	if err != nil {
		respondServiceError(w, err, constants.MsgUserNotFound)
		return
	}
	respondData(w, http.StatusOK, constants.MsgUserUpdated, u)
}

// DeleteUser handles DELETE /api/users/{id}.
func (s *Server) DeleteUser(w http.ResponseWriter, r *http.Request) {
	id, err := idParam(r, "id")
	if err != nil {
		respondBadID(w, err)
		return
	}
	if err := s.users.Delete(r.Context(), id); err != nil {
		respondServiceError(w, err, constants.MsgUserNotFound)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
