package commands

import (
	"context"
	"flag"
	"fmt"
	"io"
	"strconv"
	"unicode"

	"syncdo/internal/config"
	"syncdo/internal/exitcode"
	"syncdo/internal/service"
)

func init() {
	Register(&ToggleCmd{})
}

// ToggleCmd implements the toggle command. It flips a task's completed
// state via a partial update, trusting the server's response.
type ToggleCmd struct{}

func (c *ToggleCmd) Name() string      { return "toggle" }
func (c *ToggleCmd) Aliases() []string { return []string{"done"} }
func (c *ToggleCmd) Synopsis() string  { return "Toggle a task's completion state" }
func (c *ToggleCmd) Usage() string     { return "syncdo toggle <ref>" }
func (c *ToggleCmd) NeedsService() bool { return true }

func (c *ToggleCmd) RegisterFlags(fs *flag.FlagSet) {}

func (c *ToggleCmd) Run(ctx context.Context, cfg *config.Config, svc service.Service, args []string, out, errOut io.Writer) int {
	if len(args) == 0 {
		fmt.Fprintln(errOut, "error: task reference required")
		return exitcode.UserError
	}
	ref := args[0]

	tasks, err := svc.ListTasks(ctx)
	if err != nil {
		fmt.Fprintf(errOut, "error: backend error: %v\n", err)
		return exitcode.BackendError
	}
	service.SortNewestFirst(tasks)

	task, ok := resolveTaskRef(tasks, ref)
	if !ok {
		if isAllDigits(ref) {
			fmt.Fprintf(errOut, "error: task number out of range: %s\n", ref)
		} else {
			fmt.Fprintf(errOut, "error: task not found: %s\n", ref)
		}
		return exitcode.UserError
	}

	completed := !task.Completed
	updated, err := svc.UpdateTask(ctx, task.ID, service.TaskPatch{Completed: &completed})
	if err != nil {
		fmt.Fprintf(errOut, "error: backend error: %v\n", err)
		return exitcode.BackendError
	}

	if !cfg.Quiet {
		state := "open"
		if updated.Completed {
			state = "done"
		}
		fmt.Fprintf(out, "%s %s\n", state, updated.ID)
	}
	return exitcode.Success
}

// resolveTaskRef resolves a task reference against the sorted
// collection. All-digit refs are 1-based row numbers from list output;
// anything else is matched as an exact task id.
func resolveTaskRef(tasks []service.Task, ref string) (service.Task, bool) {
	if isAllDigits(ref) {
		num, err := strconv.Atoi(ref)
		if err != nil || num < 1 || num > len(tasks) {
			return service.Task{}, false
		}
		return tasks[num-1], true
	}

	for _, t := range tasks {
		if t.ID == ref {
			return t, true
		}
	}
	return service.Task{}, false
}

func isAllDigits(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		if !unicode.IsDigit(r) {
			return false
		}
	}
	return true
}
