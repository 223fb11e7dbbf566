package main

import (
	"fmt"
	"strings"

	"github.com/dustin/go-humanize"

	"github.com/taskflowhq/taskflow/internal/markdown"
	"github.com/taskflowhq/taskflow/internal/ui"
	"github.com/taskflowhq/taskflow/tracker"
)

const detailLineWidth = 80

// printProjectDetail prints detailed information about a project and its
// task counts per column.
func printProjectDetail(p tracker.Project, tasks []tracker.Task, highlight func(string) string) {
	fmt.Printf("ID:       %s\n", highlight(p.ID))
	fmt.Printf("Name:     %s\n", p.Name)
	fmt.Printf("Status:   %s\n", ui.FormatProjectStatus(p.Status))
	fmt.Printf("Priority: %s\n", ui.FormatPriority(p.Priority))
	fmt.Printf("Progress: %d%%\n", p.Progress)
	fmt.Printf("Start:    %s\n", p.StartDate.Format("2006-01-02"))
	if p.EndDate != nil {
		fmt.Printf("End:      %s\n", p.EndDate.Format("2006-01-02"))
	}
	if p.OwnerID != "" {
		fmt.Printf("Owner:    %s\n", p.OwnerID)
	}
	if len(p.TeamMembers) > 0 {
		fmt.Printf("Team:     %s\n", strings.Join(p.TeamMembers, ", "))
	}
	fmt.Printf("Updated:  %s\n", humanize.Time(p.UpdatedAt))

	if p.Description != "" {
		fmt.Printf("\nDescription:\n%s\n", markdown.Render(p.Description, detailLineWidth))
	}

	if len(tasks) > 0 {
		counts := make(map[tracker.TaskStatus]int)
		for _, t := range tasks {
			counts[t.Status]++
		}
		fmt.Printf("\nTasks (%d):", len(tasks))
		for _, status := range tracker.ColumnOrder() {
			if counts[status] > 0 {
				fmt.Printf(" %s=%d", status, counts[status])
			}
		}
		fmt.Println()
	}
}

// printTaskDetail prints detailed information about a task, including its
// comments and attachments.
func printTaskDetail(t tracker.Task, highlight func(string) string) {
	fmt.Printf("ID:       %s\n", highlight(t.ID))
	fmt.Printf("Title:    %s\n", t.Title)
	fmt.Printf("Status:   %s\n", ui.FormatTaskStatus(t.Status))
	fmt.Printf("Priority: %s\n", ui.FormatPriority(t.Priority))
	fmt.Printf("Project:  %s\n", highlight(t.ProjectID))
	if t.AssigneeID != "" {
		fmt.Printf("Assignee: %s\n", t.AssigneeID)
	}
	if t.DueDate != nil {
		fmt.Printf("Due:      %s\n", t.DueDate.Format("2006-01-02"))
	}
	if len(t.Tags) > 0 {
		fmt.Printf("Tags:     %s\n", strings.Join(t.Tags, ", "))
	}
	fmt.Printf("Created:  %s\n", humanize.Time(t.CreatedAt))
	fmt.Printf("Updated:  %s\n", humanize.Time(t.UpdatedAt))

	if t.Description != "" {
		fmt.Printf("\nDescription:\n%s\n", markdown.Render(t.Description, detailLineWidth))
	}

	if len(t.Comments) > 0 {
		fmt.Printf("\nComments (%d):\n", len(t.Comments))
		for _, c := range t.Comments {
			fmt.Printf("  %s, %s:\n    %s\n", c.AuthorID, humanize.Time(c.CreatedAt), c.Content)
		}
	}

	if len(t.Attachments) > 0 {
		fmt.Printf("\nAttachments (%d):\n", len(t.Attachments))
		for _, att := range t.Attachments {
			size := ""
			if att.Size > 0 {
				size = ", " + humanize.Bytes(uint64(att.Size))
			}
			fmt.Printf("  %s (%s%s)\n", att.Name, att.URL, size)
		}
	}
}
