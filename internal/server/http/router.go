package httpserver

import (
	"fmt"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"
	"go.uber.org/zap"

	"github.com/jmoreau/timemanager/internal/constants"
)

// NewRouter mounts the API under /api with logging, recovery, and CORS.
func NewRouter(s *Server, log *zap.Logger) *chi.Mux {
	r := chi.NewRouter()
	r.Use(Recover(log))
	r.Use(Logging(log))
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders: []string{"Accept", "Content-Type"},
	}))

	r.Route("/api", func(api chi.Router) {
		api.Get("/health", s.Health)

		api.Route("/users", func(u chi.Router) {
			u.Post("/", s.CreateUser)
			u.Get("/", s.ListUsers)
			u.Get("/{id}", s.GetUser)
			u.Put("/{id}", s.UpdateUser)
			u.Delete("/{id}", s.DeleteUser)
		})

		api.Route("/clients", func(c chi.Router) {
			c.Post("/", s.CreateClient)
			c.Get("/", s.ListClients)
			c.Get("/{id}", s.GetClient)
			c.Put("/{id}", s.UpdateClient)
			c.Delete("/{id}", s.DeleteClient)
		})

		api.Route("/projects", func(p chi.Router) {
			p.Post("/", s.CreateProject)
			p.Get("/", s.ListProjects)
			p.Get("/client/{clientId}", s.ListProjectsByClient)
			p.Get("/{id}", s.GetProject)
			p.Put("/{id}", s.UpdateProject)
			p.Delete("/{id}", s.DeleteProject)
		})

		api.Route("/tasks", func(t chi.Router) {
			t.Post("/", s.CreateTask)
			t.Get("/", s.ListTasks)
			t.Get("/project/{projectId}", s.ListTasksByProject)
			t.Get("/user/{userId}", s.ListTasksByUser)
			t.Get("/{id}", s.GetTask)
			t.Put("/{id}", s.UpdateTask)
			t.Delete("/{id}", s.DeleteTask)
		})
	})

	r.NotFound(func(w http.ResponseWriter, req *http.Request) {
		respondError(w, http.StatusNotFound, constants.MsgRouteNotFound,
			fmt.Sprintf("the route %s %s does not exist", req.Method, req.URL.Path))
	})
	r.MethodNotAllowed(func(w http.ResponseWriter, req *http.Request) {
		respondError(w, http.StatusNotFound, constants.MsgRouteNotFound,
			fmt.Sprintf("the route %s %s does not exist", req.Method, req.URL.Path))
	})

	return r
}
