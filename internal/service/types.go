// Package service defines the backend-agnostic interface for task operations.
package service

import "sort"

// Task is the sole domain entity: an identified, titled, completable
// unit of work. IDs are assigned by the remote service and opaque to
// this client.
type Task struct {
	ID        string `json:"id"`
	Title     string `json:"title"`
	Completed bool   `json:"completed"`
}

// TaskPatch describes a partial update. Nil fields are left untouched
// by the remote service.
type TaskPatch struct {
	Title     *string `json:"title,omitempty"`
	Completed *bool   `json:"completed,omitempty"`
}

// SortNewestFirst orders tasks by descending ID. IDs are opaque
// strings, so the comparison is lexicographic.
func SortNewestFirst(tasks []Task) {
	sort.Slice(tasks, func(i, j int) bool {
		return tasks[i].ID > tasks[j].ID
	})
}
