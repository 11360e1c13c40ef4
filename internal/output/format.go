// Package output provides formatters for CLI output.
package output

import (
	"fmt"
	"io"
	"strings"

	"todopad/internal/export"
	"todopad/internal/service"
)

// FormatTask formats a task line for the list command.
// Format: "{N:>4}  {MARKER} {TEXT}\n" (4-wide right-aligned number, two spaces,
// the export marker, text).
func FormatTask(w io.Writer, num int, task service.Task) {
	fmt.Fprintf(w, "%4d  %s\n", num, normalizeLine(export.Line(task)))
}

// FormatTasks formats a whole snapshot, numbering from 1.
func FormatTasks(w io.Writer, tasks []service.Task) {
	for i, task := range tasks {
		FormatTask(w, i+1, task)
	}
}

// normalizeLine keeps a task on one output line.
func normalizeLine(s string) string {
	s = strings.ReplaceAll(s, "\r", " ")
	return strings.ReplaceAll(s, "\n", " ")
}
