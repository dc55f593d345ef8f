package devserver_test

import (
	"context"
	"errors"
	"net/http/httptest"
	"strings"
	"testing"

	"syncdo/internal/backend/resttasks"
	"syncdo/internal/devserver"
	"syncdo/internal/service"
)

// The dev server is exercised through the real wire client, so these
// double as round-trip tests for the protocol.

func newClient(t *testing.T) *resttasks.Client {
	t.Helper()
	srv := httptest.NewServer(devserver.New())
	t.Cleanup(srv.Close)
	return resttasks.New(srv.URL)
}

func TestRoundTrip_CreateAndList(t *testing.T) {
	client := newClient(t)
	ctx := context.Background()

	first, err := client.CreateTask(ctx, "first")
	if err != nil {
		t.Fatalf("create failed: %v", err)
	}
	if first.ID == "" {
		t.Error("expected server-assigned id")
	}
	if first.Completed {
		t.Error("expected new task to start uncompleted")
	}

	second, err := client.CreateTask(ctx, "second")
	if err != nil {
		t.Fatalf("create failed: %v", err)
	}

	tasks, err := client.ListTasks(ctx)
	if err != nil {
		t.Fatalf("list failed: %v", err)
	}
	if len(tasks) != 2 {
		t.Fatalf("expected 2 tasks, got %d", len(tasks))
	}
	// Newest first.
	if tasks[0].ID != second.ID || tasks[1].ID != first.ID {
		t.Errorf("expected newest-first order, got %v", tasks)
	}
}

func TestRoundTrip_PatchMergesPartialFields(t *testing.T) {
	client := newClient(t)
	ctx := context.Background()

	task, err := client.CreateTask(ctx, "original")
	if err != nil {
		t.Fatalf("create failed: %v", err)
	}

	completed := true
	updated, err := client.UpdateTask(ctx, task.ID, service.TaskPatch{Completed: &completed})
	if err != nil {
		t.Fatalf("update failed: %v", err)
	}
	if !updated.Completed {
		t.Error("expected completed=true after patch")
	}
	if updated.Title != "original" {
		t.Errorf("expected title untouched, got %q", updated.Title)
	}

	title := "renamed"
	updated, err = client.UpdateTask(ctx, task.ID, service.TaskPatch{Title: &title})
	if err != nil {
		t.Fatalf("update failed: %v", err)
	}
	if updated.Title != "renamed" {
		t.Errorf("expected renamed title, got %q", updated.Title)
	}
	if !updated.Completed {
		t.Error("expected completed untouched by title-only patch")
	}
}

func TestRoundTrip_UnknownIDIs404(t *testing.T) {
	client := newClient(t)

	completed := true
	_, err := client.UpdateTask(context.Background(), "nope", service.TaskPatch{Completed: &completed})

	var remoteErr *resttasks.RemoteError
	if !errors.As(err, &remoteErr) {
		t.Fatalf("expected RemoteError, got %T", err)
	}
	if remoteErr.StatusCode != 404 {
		t.Errorf("expected 404, got %d", remoteErr.StatusCode)
	}
	if remoteErr.Message != "Task not found" {
		t.Errorf("expected 'Task not found', got %q", remoteErr.Message)
	}
}

func TestRoundTrip_TitleValidation(t *testing.T) {
	client := newClient(t)
	ctx := context.Background()

	if _, err := client.CreateTask(ctx, "   "); err == nil {
		t.Error("expected error for blank title")
	}

	_, err := client.CreateTask(ctx, strings.Repeat("x", 141))
	var remoteErr *resttasks.RemoteError
	if !errors.As(err, &remoteErr) {
		t.Fatalf("expected RemoteError, got %T", err)
	}
	if remoteErr.Message != "title too long" {
		t.Errorf("expected 'title too long', got %q", remoteErr.Message)
	}

	if _, err := client.CreateTask(ctx, strings.Repeat("x", 140)); err != nil {
		t.Errorf("expected 140-char title to be accepted, got %v", err)
	}
}
