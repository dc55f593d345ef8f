// Package service defines the backend-agnostic interface for task operations.
package service

import "context"

// Service defines the interface for remote task operations.
// All wire calls go through this interface; commands and the UI never
// import the HTTP backend directly.
type Service interface {
	// ListTasks returns the full task collection in service order
	// (no pagination, no client-side sorting).
	ListTasks(ctx context.Context) ([]Task, error)

	// CreateTask creates a task with the given title and returns the
	// server-assigned Task. Callers are responsible for ensuring the
	// title is non-empty.
	CreateTask(ctx context.Context, title string) (Task, error)

	// UpdateTask applies a partial update to the task with the given id
	// and returns the task as the server reports it afterwards.
	UpdateTask(ctx context.Context, id string, patch TaskPatch) (Task, error)
}
