// Package output provides formatters for CLI output.
package output

import (
	"fmt"
	"io"
	"strings"

	"tasksync/internal/store"
)

const (
	// ListSeparator is the separator line between tasks and the summary.
	ListSeparator = "------------"
)

// FormatTask formats a numbered task line.
// Format: "{N:>4}  {NAME}  [{STATUS}]\n" (4-wide right-aligned number,
// two spaces, name, two spaces, bracketed status)
func FormatTask(w io.Writer, num int, task store.Task) {
	name := normalizeName(task.Name)
	fmt.Fprintf(w, "%4d  %s  [%s]\n", num, name, task.Status)
}

// FormatSummary formats the status breakdown under an unfiltered listing.
func FormatSummary(w io.Writer, tasks []store.Task) {
	var notStarted, inProgress, done int
	for _, t := range tasks {
		switch t.Status {
		case store.StatusNotStarted:
			notStarted++
		case store.StatusInProgress:
			inProgress++
		case store.StatusDone:
			done++
		}
	}
	fmt.Fprintln(w, ListSeparator)
	fmt.Fprintf(w, "%d total: %d not started, %d in progress, %d done\n",
		len(tasks), notStarted, inProgress, done)
}

// FormatBackend formats a backend line for the backends command.
func FormatBackend(w io.Writer, name string, active, configured bool) {
	line := name
	if active {
		line += " [active]"
	}
	if !configured {
		line += " (not configured)"
	}
	fmt.Fprintln(w, line)
}

// normalizeName normalizes a task name for display.
// - Empty or whitespace-only names become "(unnamed)"
// - Newlines are replaced with spaces
func normalizeName(name string) string {
	// Replace newlines with spaces
	name = strings.ReplaceAll(name, "\r", " ")
	name = strings.ReplaceAll(name, "\n", " ")

	// Trim and check for empty
	if strings.TrimSpace(name) == "" {
		return "(unnamed)"
	}
	return name
}
