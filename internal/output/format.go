// Package output provides formatters for CLI output.
package output

import (
	"fmt"
	"io"
	"strings"

	"todo/internal/service"
)

// FormatTask writes one task line: "{id}. {description}\n".
func FormatTask(w io.Writer, task service.Task) {
	fmt.Fprintf(w, "%d. %s\n", task.ID, normalizeDescription(task.Description))
}

// FormatTasks writes one line per task.
func FormatTasks(w io.Writer, tasks []service.Task) {
	for _, task := range tasks {
		FormatTask(w, task)
	}
}

// normalizeDescription keeps every task on a single line.
func normalizeDescription(description string) string {
	description = strings.ReplaceAll(description, "\r", " ")
	return strings.ReplaceAll(description, "\n", " ")
}
