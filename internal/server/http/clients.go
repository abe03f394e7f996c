package httpserver

import (
	"net/http"

	"github.com/jmoreau/timemanager/internal/constants"
	"github.com/jmoreau/timemanager/internal/model"
)

// CreateClient handles POST /api/clients.
func (s *Server) CreateClient(w http.ResponseWriter, r *http.Request) {
	var in model.ClientInput
	if err := decodeBody(r, &in); err != nil {
		respondBadJSON(w)
		return
	}
	c, err := s.clients.Create(r.Context(), in)
	if err != nil {
		respondServiceError(w, err, constants.MsgClientNotFound)
		return
	}
	respondData(w, http.StatusCreated, constants.MsgClientCreated, c)
}

// ListClients handles GET /api/clients.
func (s *Server) ListClients(w http.ResponseWriter, r *http.Request) {
	clients, err := s.clients.List(r.Context())
	if err != nil {
		respondServiceError(w, err, constants.MsgClientNotFound)
		return
	}
	respondList(w, clients, len(clients))
}

// GetClient handles GET /api/clients/{id}.
func (s *Server) GetClient(w http.ResponseWriter, r *http.Request) {
	id, err := idParam(r, "id")
	if err != nil {
		respondBadID(w, err)
		return
	}
	c, err := s.clients.GetByID(r.Context(), id)
	if err != nil {
		respondServiceError(w, err, constants.MsgClientNotFound)
		return
	}
	respondData(w, http.StatusOK, "", c)
}

// UpdateClient handles PUT /api/clients/{id}.
func (s *Server) UpdateClient(w http.ResponseWriter, r *http.Request) {
	id, err := idParam(r, "id")
	if err != nil {
		respondBadID(w, err)
		return
	}
	var in model.ClientInput
	if err := decodeBody(r, &in); err != nil {
		respondBadJSON(w)
		return
	}
	c, err := s.clients.Update(r.Context(), id, in)
	if err != nil {
		respondServiceError(w, err, constants.MsgClientNotFound)
		return
	}
	respondData(w, http.StatusOK, constants.MsgClientUpdated, c)
}

// DeleteClient handles DELETE /api/clients/{id}. Deletion is refused while
// projects still reference the client.
func (s *Server) DeleteClient(w http.ResponseWriter, r *http.Request) {
	id, err := idParam(r, "id")
	if err != nil {
		respondBadID(w, err)
		return
	}
	if err := s.clients.Delete(r.Context(), id); err != nil {
		respondServiceError(w, err, constants.MsgClientNotFound)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
