package main

import (
	"fmt"
	"strings"
	"time"

	"github.com/taskflowhq/taskflow/internal/ui"
	"github.com/taskflowhq/taskflow/tracker"
)

// printProjectTable prints projects in a table format.
func printProjectTable(projects []tracker.Project, prefixLengths map[string]int) {
	if len(projects) == 0 {
		fmt.Println("No projects found.")
		return
	}

	fmt.Print(formatProjectTable(projects, prefixLengths, ui.HighlightID))
}

func formatProjectTable(projects []tracker.Project, prefixLengths map[string]int, highlight func(string, int) string) string {
	builder := ui.NewTableBuilder([]string{"ID", "NAME", "STATUS", "PRI", "PROGRESS", "UPDATED"}, len(projects))

	for _, p := range projects {
		builder.AddRow(
			highlight(p.ID, ui.PrefixLength(prefixLengths, p.ID)),
			ui.Truncate(p.Name),
			ui.FormatProjectStatus(p.Status),
			string(p.Priority),
			fmt.Sprintf("%d%%", p.Progress),
			ui.FormatTimeAgo(p.UpdatedAt),
		)
	}

	return builder.String()
}

// printTaskTable prints tasks in a table format.
func printTaskTable(tasks []tracker.Task, prefixLengths map[string]int) {
	if len(tasks) == 0 {
		fmt.Println("No tasks found.")
		return
	}

	fmt.Print(formatTaskTable(tasks, prefixLengths, ui.HighlightID))
}

func formatTaskTable(tasks []tracker.Task, prefixLengths map[string]int, highlight func(string, int) string) string {
	builder := ui.NewTableBuilder([]string{"ID", "STATUS", "PRI", "DUE", "TAGS", "TITLE"}, len(tasks))

	for _, t := range tasks {
		builder.AddRow(
			highlight(t.ID, ui.PrefixLength(prefixLengths, t.ID)),
			ui.FormatTaskStatus(t.Status),
			ui.FormatPriority(t.Priority),
			ui.FormatDueDate(t.DueDate, time.Now()),
			strings.Join(t.Tags, ","),
			ui.Truncate(t.Title),
		)
	}

	return builder.String()
}
