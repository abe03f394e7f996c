package httpserver

import (
	"net/http"

	"github.com/jmoreau/timemanager/internal/constants"
	"github.com/jmoreau/timemanager/internal/model"
)

// CreateTask handles POST /api/tasks.
func (s *Server) CreateTask(w http.ResponseWriter, r *http.Request) {
	var in model.TaskInput
	if err := decodeBody(r, &in); err != nil {
		respondBadJSON(w)
		return
	}
	t, err := s.tasks.Create(r.Context(), in)
	if err != nil {
		respondServiceError(w, err, constants.MsgTaskNotFound)
		return
	}
	respondData(w, http.StatusCreated, constants.MsgTaskCreated, t)
}

// ListTasks handles GET /api/tasks.
func (s *Server) ListTasks(w http.ResponseWriter, r *http.Request) {
	tasks, err := s.tasks.List(r.Context())
	if err != nil {
		respondServiceError(w, err, constants.MsgTaskNotFound)
		return
	}
	respondList(w, tasks, len(tasks))
}

// GetTask handles GET /api/tasks/{id}.
func (s *Server) GetTask(w http.ResponseWriter, r *http.Request) {
	id, err := idParam(r, "id")
	if err != nil {
		respondBadID(w, err)
		return
	}
	t, err := s.tasks.GetByID(r.Context(), id)
	if err != nil {
		respondServiceError(w, err, constants.MsgTaskNotFound)
		return
	}
	respondData(w, http.StatusOK, "", t)
}

// ListTasksByProject handles GET /api/tasks/project/{projectId}.
func (s *Server) ListTasksByProject(w http.ResponseWriter, r *http.Request) {
	projectID, err := idParam(r, "projectId")
	if err != nil {
		respondBadID(w, err)
		return
	}
	tasks, err := s.tasks.ListByProject(r.Context(), projectID)
	if err != nil {
		respondServiceError(w, err, constants.MsgProjectNotFound)
		return
	}
	respondList(w, tasks, len(tasks))
}

// ListTasksByUser handles GET /api/tasks/user/{userId}.
func (s *Server) ListTasksByUser(w http.ResponseWriter, r *http.Request) {
	userID, err := idParam(r, "userId")
	if err != nil {
		respondBadID(w, err)
		return
	}
	tasks, err := s.tasks.ListByUser(r.Context(), userID)
	if err != nil {
		respondServiceError(w, err, constants.MsgUserNotFound)
		return
	}
	respondList(w, tasks, len(tasks))
}

// UpdateTask handles PUT /api/tasks/{id}.
func (s *Server) UpdateTask(w http.ResponseWriter, r *http.Request) {
	id, err := idParam(r, "id")
	if err != nil {
		respondBadID(w, err)
		return
	}
	var in model.TaskInput
	if err := decodeBody(r, &in); err != nil {
		respondBadJSON(w)
		return
	}
	t, err := s.tasks.Update(r.Context(), id, in)
	if err != nil {
		respondServiceError(w, err, constants.MsgTaskNotFound)
		return
	}
	respondData(w, http.StatusOK, constants.MsgTaskUpdated, t)
}

// DeleteTask handles DELETE /api/tasks/{id}.
func (s *Server) DeleteTask(w http.ResponseWriter, r *http.Request) {
	id, err := idParam(r, "id")
	if err != nil {
		respondBadID(w, err)
		return
	}
	if err := s.tasks.Delete(r.Context(), id); err != nil {
		respondServiceError(w, err, constants.MsgTaskNotFound)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
