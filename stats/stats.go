// Package stats derives dashboard aggregates from the entity collections.
//
// Everything here is a pure function of its inputs: the caller passes the
// snapshots and the evaluation time, so identical inputs always produce
// identical results.
package stats

import (
	"time"

	"github.com/taskflowhq/taskflow/tracker"
)

// Dashboard summarizes the tracked collections. Derived only; never stored
// or mutated directly.
type Dashboard struct {
	// TotalProjects counts every project.
	TotalProjects int `json:"total_projects"`

	// ActiveProjects counts projects with status active.
	ActiveProjects int `json:"active_projects"`

	// CompletedTasks counts tasks with status completed.
	CompletedTasks int `json:"completed_tasks"`

	// PendingTasks counts tasks with any status other than completed.
	PendingTasks int `json:"pending_tasks"`

	// OverdueTasks counts tasks past their due date and not completed.
	OverdueTasks int `json:"overdue_tasks"`

	// TeamMembers counts distinct user ids across all project teams.
	// Task assignees do not contribute.
	TeamMembers int `json:"team_members"`
}

// Compute builds the dashboard from the given snapshots. now is the
// evaluation time for the overdue predicate. Runs in O(projects + tasks).
func Compute(projects []tracker.Project, tasks []tracker.Task, now time.Time) Dashboard {
	var dashboard Dashboard

	members := make(map[string]struct{})
	for i := range projects {
		dashboard.TotalProjects++
		if projects[i].Status == tracker.ProjectActive {
			dashboard.ActiveProjects++
		}
		for _, member := range projects[i].TeamMembers {
			members[member] = struct{}{}
		}
	}
	dashboard.TeamMembers = len(members)

	for i := range tasks {
		if tasks[i].Status == tracker.StatusCompleted {
			dashboard.CompletedTasks++
		} else {
			dashboard.PendingTasks++
		}
		if tasks[i].Overdue(now) {
			dashboard.OverdueTasks++
		}
	}

	return dashboard
}

// ProgressRow is one project's entry in the dashboard progress listing.
type ProgressRow struct {
	Name     string                `json:"name"`
	Progress int                   `json:"progress"`
	Status   tracker.ProjectStatus `json:"status"`
}

// ProjectProgress returns one row per project, in snapshot order.
func ProjectProgress(projects []tracker.Project) []ProgressRow {
	rows := make([]ProgressRow, 0, len(projects))
	for i := range projects {
		rows = append(rows, ProgressRow{
			Name:     projects[i].Name,
			Progress: projects[i].Progress,
			Status:   projects[i].Status,
		})
	}
	return rows
}
