package commands_test

import (
	"bytes"
	"context"
	"errors"
	"testing"

	"syncdo/internal/commands"
	"syncdo/internal/config"
	"syncdo/internal/exitcode"
	"syncdo/internal/service"
	"syncdo/internal/testutil"
)

// runCommand is a helper to run a command with FakeService.
func runCommand(t *testing.T, cmd commands.Command, svc *testutil.FakeService, args []string, quiet bool) (stdout, stderr string, code int) {
	t.Helper()

	var outBuf, errBuf bytes.Buffer

	cfg := &config.Config{
		Dir:   t.TempDir(),
		Quiet: quiet,
	}

	ctx := context.Background()
	code = cmd.Run(ctx, cfg, svc, args, &outBuf, &errBuf)
	return outBuf.String(), errBuf.String(), code
}

func TestVersionCommand(t *testing.T) {
	cmd := &commands.VersionCmd{}

	stdout, stderr, code := runCommand(t, cmd, nil, nil, false)

	if code != exitcode.Success {
		t.Errorf("expected exit code %d, got %d", exitcode.Success, code)
	}
	if stderr != "" {
		t.Errorf("expected no stderr, got %q", stderr)
	}
	if stdout != "syncdo 0.1.0\n" {
		t.Errorf("expected version output, got %q", stdout)
	}
}

func TestHelpCommand(t *testing.T) {
	cmd := &commands.HelpCmd{}

	stdout, stderr, code := runCommand(t, cmd, nil, nil, false)

	if code != exitcode.Success {
		t.Errorf("expected exit code %d, got %d", exitcode.Success, code)
	}
	if stderr != "" {
		t.Errorf("expected no stderr, got %q", stderr)
	}
	if !bytes.Contains([]byte(stdout), []byte("Usage:")) {
		t.Error("help output should contain 'Usage:'")
	}
}

func TestListCommand_SortsNewestFirst(t *testing.T) {
	svc := testutil.NewFakeService()
	svc.SetTasks(
		service.Task{ID: "1", Title: "Call mom", Completed: false},
		service.Task{ID: "3", Title: "Buy milk", Completed: false},
		service.Task{ID: "2", Title: "Write report", Completed: true},
	)

	cmd := &commands.ListCmd{}
	stdout, stderr, code := runCommand(t, cmd, svc, nil, false)

	if code != exitcode.Success {
		t.Errorf("expected exit code %d, got %d", exitcode.Success, code)
	}
	if stderr != "" {
		t.Errorf("expected no stderr, got %q", stderr)
	}

	testutil.GoldenString(t, "list_sorted", stdout)
}

func TestListCommand_Empty(t *testing.T) {
	svc := testutil.NewFakeService()

	cmd := &commands.ListCmd{}
	stdout, _, code := runCommand(t, cmd, svc, nil, false)

	if code != exitcode.Success {
		t.Errorf("expected exit code %d, got %d", exitcode.Success, code)
	}
	if stdout != "no tasks found\n" {
		t.Errorf("expected 'no tasks found', got %q", stdout)
	}
}

func TestListCommand_BackendError(t *testing.T) {
	svc := testutil.NewFakeService()
	svc.ListTasksErr = errors.New("Internal Server Error")

	cmd := &commands.ListCmd{}
	stdout, stderr, code := runCommand(t, cmd, svc, nil, false)

	if code != exitcode.BackendError {
		t.Errorf("expected exit code %d, got %d", exitcode.BackendError, code)
	}
	if stdout != "" {
		t.Errorf("expected no stdout, got %q", stdout)
	}
	if stderr != "error: backend error: Internal Server Error\n" {
		t.Errorf("unexpected stderr: %q", stderr)
	}
}

func TestAddCommand(t *testing.T) {
	svc := testutil.NewFakeService()

	cmd := &commands.AddCmd{}
	stdout, _, code := runCommand(t, cmd, svc, []string{"Buy", "milk"}, false)

	if code != exitcode.Success {
		t.Errorf("expected exit code %d, got %d", exitcode.Success, code)
	}
	if stdout != "created task-1\n" {
		t.Errorf("expected created output, got %q", stdout)
	}

	tasks := svc.Tasks()
	if len(tasks) != 1 || tasks[0].Title != "Buy milk" {
		t.Errorf("expected one task titled 'Buy milk', got %v", tasks)
	}
}

func TestAddCommand_WhitespaceTitle(t *testing.T) {
	svc := testutil.NewFakeService()

	cmd := &commands.AddCmd{}
	_, stderr, code := runCommand(t, cmd, svc, []string{"  ", " "}, false)

	if code != exitcode.UserError {
		t.Errorf("expected exit code %d, got %d", exitcode.UserError, code)
	}
	if stderr != "error: title required\n" {
		t.Errorf("unexpected stderr: %q", stderr)
	}
	if svc.CreateCalls != 0 {
		t.Errorf("expected no create call, got %d", svc.CreateCalls)
	}
}

func TestAddCommand_BackendError(t *testing.T) {
	svc := testutil.NewFakeService()
	svc.CreateTaskErr = errors.New("boom")

	cmd := &commands.AddCmd{}
	_, stderr, code := runCommand(t, cmd, svc, []string{"Buy milk"}, false)

	if code != exitcode.BackendError {
		t.Errorf("expected exit code %d, got %d", exitcode.BackendError, code)
	}
	if stderr != "error: backend error: boom\n" {
		t.Errorf("unexpected stderr: %q", stderr)
	}
}

func TestToggleCommand_ByRowNumber(t *testing.T) {
	svc := testutil.NewFakeService()
	svc.SetTasks(
		service.Task{ID: "2", Title: "B", Completed: false},
		service.Task{ID: "1", Title: "A", Completed: false},
	)

	// Row 2 in newest-first order is id "1".
	cmd := &commands.ToggleCmd{}
	stdout, _, code := runCommand(t, cmd, svc, []string{"2"}, false)

	if code != exitcode.Success {
		t.Errorf("expected exit code %d, got %d", exitcode.Success, code)
	}
	if stdout != "done 1\n" {
		t.Errorf("expected 'done 1', got %q", stdout)
	}

	tasks := svc.Tasks()
	if !tasks[1].Completed {
		t.Error("expected task 1 completed")
	}
	if tasks[0].Completed {
		t.Error("expected task 2 untouched")
	}
}

func TestToggleCommand_ByID(t *testing.T) {
	svc := testutil.NewFakeService()
	svc.SetTasks(service.Task{ID: "abc", Title: "A", Completed: true})

	cmd := &commands.ToggleCmd{}
	stdout, _, code := runCommand(t, cmd, svc, []string{"abc"}, false)

	if code != exitcode.Success {
		t.Errorf("expected exit code %d, got %d", exitcode.Success, code)
	}
	// Toggling a completed task reopens it.
	if stdout != "open abc\n" {
		t.Errorf("expected 'open abc', got %q", stdout)
	}
	if svc.LastPatch.Completed == nil || *svc.LastPatch.Completed {
		t.Error("expected patch with completed=false")
	}
}

func TestToggleCommand_OutOfRange(t *testing.T) {
	svc := testutil.NewFakeService()
	svc.SetTasks(service.Task{ID: "1", Title: "A"})

	cmd := &commands.ToggleCmd{}
	_, stderr, code := runCommand(t, cmd, svc, []string{"5"}, false)

	if code != exitcode.UserError {
		t.Errorf("expected exit code %d, got %d", exitcode.UserError, code)
	}
	if stderr != "error: task number out of range: 5\n" {
		t.Errorf("unexpected stderr: %q", stderr)
	}
	if svc.UpdateCalls != 0 {
		t.Errorf("expected no update call, got %d", svc.UpdateCalls)
	}
}

func TestToggleCommand_MissingRef(t *testing.T) {
	svc := testutil.NewFakeService()

	cmd := &commands.ToggleCmd{}
	_, stderr, code := runCommand(t, cmd, svc, nil, false)

	if code != exitcode.UserError {
		t.Errorf("expected exit code %d, got %d", exitcode.UserError, code)
	}
	if stderr != "error: task reference required\n" {
		t.Errorf("unexpected stderr: %q", stderr)
	}
}
