// Package output provides formatters for CLI output.
package output

import (
	"fmt"
	"io"
	"strings"

	"taskdeck/internal/service"
)

// FormatTask formats a task line for the task list.
// Format: "{N:>4}  {TITLE} - {STATUS} [{PRIORITY}]  ({ID})\n"
// The priority and id parts are left out when empty.
func FormatTask(w io.Writer, num int, task service.Task) {
	fmt.Fprintf(w, "%4d  %s\n", num, taskLine(task))
}

// FormatFeedTask formats a task received from the live feed.
// Format: "+ {TITLE} - {STATUS} [{PRIORITY}]  ({ID})\n"
func FormatFeedTask(w io.Writer, task service.Task) {
	fmt.Fprintf(w, "+ %s\n", taskLine(task))
}

// FormatSuggestion formats one subtask suggestion. Multi-line suggestions
// are indented under their number.
func FormatSuggestion(w io.Writer, num int, text string) {
	lines := strings.Split(strings.TrimSpace(text), "\n")
	fmt.Fprintf(w, "%4d. %s\n", num, strings.TrimRight(lines[0], " \r"))
	for _, line := range lines[1:] {
		line = strings.TrimRight(line, " \r")
		if line == "" {
			fmt.Fprintln(w)
			continue
		}
		fmt.Fprintf(w, "      %s\n", line)
	}
}

func taskLine(task service.Task) string {
	line := normalizeTitle(task.Title) + " - " + normalizeStatus(task.Status)
	if p := task.ShortPriority(); p != "" {
		line += " [" + p + "]"
	}
	if task.ID != "" {
		line += "  (" + task.ID.String() + ")"
	}
	return line
}

// normalizeTitle normalizes a task title for display.
// - Empty or whitespace-only titles become "(untitled)"
// - Newlines are replaced with spaces
func normalizeTitle(title string) string {
	// Replace newlines with spaces
	title = strings.ReplaceAll(title, "\r", " ")
	title = strings.ReplaceAll(title, "\n", " ")

	// Trim and check for empty
	if strings.TrimSpace(title) == "" {
		return "(untitled)"
	}
	return title
}

// normalizeStatus renders a missing status as "(none)".
func normalizeStatus(status string) string {
	if strings.TrimSpace(status) == "" {
		return "(none)"
	}
	return status
}
