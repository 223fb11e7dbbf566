package ui

import "github.com/taskflowhq/taskflow/tracker"

// FormatTaskStatus colors a kanban column name for terminal output.
func FormatTaskStatus(status tracker.TaskStatus) string {
	switch status {
	case tracker.StatusTodo:
		return colorize(ansiDim, string(status))
	case tracker.StatusInProgress:
		return colorize(ansiYellow, string(status))
	case tracker.StatusReview:
		return colorize(ansiMagenta, string(status))
	case tracker.StatusCompleted:
		return colorize(ansiGreen, string(status))
	default:
		return string(status)
	}
}

// FormatProjectStatus colors a project status for terminal output.
func FormatProjectStatus(status tracker.ProjectStatus) string {
	switch status {
	case tracker.ProjectActive:
		return colorize(ansiGreen, string(status))
	case tracker.ProjectCompleted:
		return colorize(ansiCyan, string(status))
	case tracker.ProjectOnHold:
		return colorize(ansiYellow, string(status))
	case tracker.ProjectCancelled:
		return colorize(ansiDim, string(status))
	default:
		return string(status)
	}
}

// FormatPriority colors a priority, escalating with urgency.
func FormatPriority(priority tracker.Priority) string {
	switch priority {
	case tracker.PriorityLow:
		return colorize(ansiDim, string(priority))
	case tracker.PriorityMedium:
		return string(priority)
	case tracker.PriorityHigh:
		return colorize(ansiYellow, string(priority))
	case tracker.PriorityUrgent:
		return colorize(ansiBold+ansiRed, string(priority))
	default:
		return string(priority)
	}
}
