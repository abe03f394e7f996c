package httpserver

import (
	"net/http"

	"github.com/jmoreau/timemanager/internal/constants"
	"github.com/jmoreau/timemanager/internal/model"
)

// CreateProject handles POST /api/projects.
func (s *Server) CreateProject(w http.ResponseWriter, r *http.Request) {
	var in model.ProjectInput
	if err := decodeBody(r, &in); err != nil {
		respondBadJSON(w)
		return
	}
	p, err := s.projects.Create(r.Context(), in)
	if err != nil {
		respondServiceError(w, err, constants.MsgProjectNotFound)
		return
	}
	respondData(w, http.StatusCreated, constants.MsgProjectCreated, p)
}

// ListProjects handles GET /api/projects.
func (s *Server) ListProjects(w http.ResponseWriter, r *http.Request) {
	projects, err := s.projects.List(r.Context())
	if err != nil {
		respondServiceError(w, err, constants.MsgProjectNotFound)
		return
	}
	respondList(w, projects, len(projects))
}

// GetProject handles GET /api/projects/{id}.
func (s *Server) GetProject(w http.ResponseWriter, r *http.Request) {
	id, err := idParam(r, "id")
	if err != nil {
		respondBadID(w, err)
		return
	}
	p, err := s.projects.GetByID(r.Context(), id)
	if err != nil {
		respondServiceError(w, err, constants.MsgProjectNotFound)
		return
	}
	respondData(w, http.StatusOK, "", p)
}

// ListProjectsByClient handles GET /api/projects/client/{clientId}.
func (s *Server) ListProjectsByClient(w http.ResponseWriter, r *http.Request) {
	clientID, err := idParam(r, "clientId")
	if err != nil {
		respondBadID(w, err)
		return
	}
	projects, err := s.projects.ListByClient(r.Context(), clientID)
	if err != nil {
		respondServiceError(w, err, constants.MsgClientNotFound)
		return
	}
	respondList(w, projects, len(projects))
}

// UpdateProject handles PUT /api/projects/{id}.
func (s *Server) UpdateProject(w http.ResponseWriter, r *http.Request) {
	id, err := idParam(r, "id")
	if err != nil {
		respondBadID(w, err)
		return
	}
	var in model.ProjectInput
	if err := decodeBody(r, &in); err != nil {
		respondBadJSON(w)
		return
	}
	p, err := s.projects.Update(r.Context(), id, in)
	if err != nil {
		respondServiceError(w, err, constants.MsgProjectNotFound)
		return
	}
	respondData(w, http.StatusOK, constants.MsgProjectUpdated, p)
}

// DeleteProject handles DELETE /api/projects/{id}.
func (s *Server) DeleteProject(w http.ResponseWriter, r *http.Request) {
	id, err := idParam(r, "id")
	if err != nil {
		respondBadID(w, err)
		return
	}
	if err := s.projects.Delete(r.Context(), id); err != nil {
		respondServiceError(w, err, constants.MsgProjectNotFound)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
