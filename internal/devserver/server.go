// Package devserver is a local in-memory implementation of the task
// service wire protocol, for development and integration tests.
package devserver

import (
	"encoding/json"
	"net/http"
	"strings"
	"sync"

	"github.com/google/uuid"
	"github.com/gorilla/mux"

	"syncdo/internal/service"
)

// maxTitleLen matches the remote service's title cap.
const maxTitleLen = 140

// Server holds the in-memory task store and routes.
type Server struct {
	mu     sync.RWMutex
	tasks  []service.Task // insertion order, oldest first
	router *mux.Router
}

// New creates a Server with an empty store.
func New() *Server {
	s := &Server{}

	r := mux.NewRouter()
	r.HandleFunc("/tasks", s.handleList).Methods(http.MethodGet)
	r.HandleFunc("/tasks", s.handleCreate).Methods(http.MethodPost)
	r.HandleFunc("/tasks/{id}", s.handleUpdate).Methods(http.MethodPatch)
	s.router = r

	return s
}

// ServeHTTP implements http.Handler.
func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.router.ServeHTTP(w, r)
}

// handleList returns all tasks, newest first.
func (s *Server) handleList(w http.ResponseWriter, r *http.Request) {
	s.mu.RLock()
	tasks := make([]service.Task, 0, len(s.tasks))
	for i := len(s.tasks) - 1; i >= 0; i-- {
		tasks = append(tasks, s.tasks[i])
	}
	s.mu.RUnlock()

	writeJSON(w, http.StatusOK, tasks)
}

func (s *Server) handleCreate(w http.ResponseWriter, r *http.Request) {
	var payload struct {
		Title string `json:"title"`
	}
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		writeError(w, http.StatusBadRequest, "invalid_input", "invalid request body")
		return
	}
	if strings.TrimSpace(payload.Title) == "" {
		writeError(w, http.StatusBadRequest, "invalid_input", "title required")
		return
	}
	if len(payload.Title) > maxTitleLen {
		writeError(w, http.StatusBadRequest, "invalid_input", "title too long")
		return
	}

	task := service.Task{
		ID:    uuid.NewString(),
		Title: payload.Title,
	}

	s.mu.Lock()
	s.tasks = append(s.tasks, task)
	s.mu.Unlock()

	writeJSON(w, http.StatusCreated, task)
}

func (s *Server) handleUpdate(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]

	var patch service.TaskPatch
	if err := json.NewDecoder(r.Body).Decode(&patch); err != nil {
		writeError(w, http.StatusBadRequest, "invalid_input", "invalid request body")
		return
	}
	if patch.Title != nil && len(*patch.Title) > maxTitleLen {
		writeError(w, http.StatusBadRequest, "invalid_input", "title too long")
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	for i, t := range s.tasks {
		if t.ID != id {
			continue
		}
		if patch.Title != nil {
			t.Title = *patch.Title
		}
		if patch.Completed != nil {
			t.Completed = *patch.Completed
		}
		s.tasks[i] = t
		writeJSON(w, http.StatusOK, t)
		return
	}

	writeError(w, http.StatusNotFound, "not_found", "Task not found")
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, code, message string) {
	writeJSON(w, status, map[string]string{
		"code":    code,
		"message": message,
	})
}
