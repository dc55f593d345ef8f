// Package output provides formatters for CLI output.
package output

import (
	"fmt"
	"io"
	"strings"

	"syncdo/internal/service"
)

// FormatTask formats one task line.
// Format: "{N:>4}  {BOX} {TITLE}\n" where BOX is "[x]" for completed
// tasks and "[ ]" otherwise.
func FormatTask(w io.Writer, num int, task service.Task) {
	box := "[ ]"
	if task.Completed {
		box = "[x]"
	}
	fmt.Fprintf(w, "%4d  %s %s\n", num, box, normalizeTitle(task.Title))
}

// normalizeTitle normalizes a task title for display.
// - Empty or whitespace-only titles become "(untitled)"
// - Newlines are replaced with spaces
func normalizeTitle(title string) string {
	title = strings.ReplaceAll(title, "\r", " ")
	title = strings.ReplaceAll(title, "\n", " ")

	if strings.TrimSpace(title) == "" {
		return "(untitled)"
	}
	return title
}
