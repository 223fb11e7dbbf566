package stats

import (
	"context"
	"testing"
	"time"

	"github.com/taskflowhq/taskflow/kanban"
	"github.com/taskflowhq/taskflow/tracker"
)

// Moving an overdue task to the completed column flips it from overdue to
// completed in the dashboard.
func TestDashboardFollowsBoardMove(t *testing.T) {
	store := tracker.NewStore(tracker.Options{})
	ctx := context.Background()

	project, err := store.CreateProject(ctx, tracker.ProjectDraft{Name: "Launch"})
	if err != nil {
		t.Fatalf("create project: %v", err)
	}

	due := time.Now().Add(-48 * time.Hour)
	task, err := store.CreateTask(ctx, tracker.TaskDraft{
		Title:     "Ship it",
		ProjectID: project.ID,
		DueDate:   &due,
	})
	if err != nil {
		t.Fatalf("create task: %v", err)
	}

	snapshot := func() Dashboard {
		projects, err := store.Projects(ctx)
		if err != nil {
			t.Fatalf("list projects: %v", err)
		}
		tasks, err := store.Tasks(ctx, tracker.TaskFilter{})
		if err != nil {
			t.Fatalf("list tasks: %v", err)
		}
		return Compute(projects, tasks, time.Now())
	}

	before := snapshot()
	if before.OverdueTasks != 1 || before.CompletedTasks != 0 {
		t.Fatalf("expected 1 overdue, 0 completed, got %+v", before)
	}

	controller := kanban.NewController(store)
	if err := controller.BeginDrag(ctx, task.ID); err != nil {
		t.Fatalf("begin drag: %v", err)
	}
	if err := controller.Drop(ctx, tracker.StatusCompleted); err != nil {
		t.Fatalf("drop: %v", err)
	}

	after := snapshot()
	if after.OverdueTasks != 0 || after.CompletedTasks != 1 {
		t.Fatalf("expected 0 overdue, 1 completed, got %+v", after)
	}
}
