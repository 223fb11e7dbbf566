package kanban

import "github.com/taskflowhq/taskflow/tracker"

// Column is one board column: a status bucket and the tasks in it.
// Ordering among tasks sharing a status is presentational and not part of
// the persisted model; callers may re-sort.
type Column struct {
	Status tracker.TaskStatus
	Tasks  []tracker.Task
}

// Columns buckets tasks into board columns in board order. Every column is
// present even when empty. This is the single per-column filter shared by
// presentation and tests.
func Columns(tasks []tracker.Task) []Column {
	order := tracker.ColumnOrder()
	columns := make([]Column, len(order))
	index := make(map[tracker.TaskStatus]int, len(order))
	for i, status := range order {
		columns[i] = Column{Status: status}
		index[status] = i
	}

	for _, task := range tasks {
		i, ok := index[task.Status]
		if !ok {
			continue
		}
		columns[i].Tasks = append(columns[i].Tasks, task)
	}

	return columns
}
