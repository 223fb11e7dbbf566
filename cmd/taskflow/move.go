package main

import (
	"context"

	"github.com/taskflowhq/taskflow/kanban"
	"github.com/taskflowhq/taskflow/tracker"
)

// moveTask runs a full drag gesture for one task: begin, then drop on the
// target column. Dropping on the current column is a successful no-op.
func moveTask(ctx context.Context, store *tracker.Store, id string, target tracker.TaskStatus) error {
	controller := kanban.NewController(store)
	if err := controller.BeginDrag(ctx, id); err != nil {
		return err
	}
	return controller.Drop(ctx, target)
}
