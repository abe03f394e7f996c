// Package httpserver exposes the TimeManager REST API over chi.
package httpserver

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/jmoreau/timemanager/internal/constants"
	"github.com/jmoreau/timemanager/internal/service"
)

// Server wires entity services into HTTP handlers.
type Server struct {
	users    service.UserService
	clients  service.ClientService
	projects service.ProjectService
	tasks    service.TaskService
}

// New constructs a Server with injected services.
func New(users service.UserService, clients service.ClientService, projects service.ProjectService, tasks service.TaskService) *Server {
	return &Server{users: users, clients: clients, projects: projects, tasks: tasks}
}

// Health reports service liveness.
func (s *Server) Health(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, Envelope{
		Success:   true,
		Message:   constants.MsgHealthy,
		Timestamp: time.Now().UTC().Format(time.RFC3339),
	})
}

// idParam parses a positive integer URL parameter.
func idParam(r *http.Request, name string) (int64, error) {
	raw := chi.URLParam(r, name)
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || id < 1 {
		return 0, fmt.Errorf("the %s parameter must be a positive integer", name)
	}
	return id, nil
}

// decodeBody parses a JSON request body into dst.
func decodeBody(r *http.Request, dst any) error {
	return json.NewDecoder(r.Body).Decode(dst)
}

func respondBadID(w http.ResponseWriter, err error) {
	respondError(w, http.StatusBadRequest, constants.MsgInvalidData, err.Error())
}

func respondBadJSON(w http.ResponseWriter) {
	respondError(w, http.StatusBadRequest, constants.MsgInvalidData, "the request body is not valid JSON")
}
