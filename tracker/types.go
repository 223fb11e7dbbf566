package tracker

// ProjectStatus represents the state of a project.
type ProjectStatus string

const (
	// ProjectActive indicates work on the project is ongoing.
	ProjectActive ProjectStatus = "active"

	// ProjectCompleted indicates the project is finished.
	ProjectCompleted ProjectStatus = "completed"

	// ProjectOnHold indicates the project is paused.
	ProjectOnHold ProjectStatus = "on-hold"

	// ProjectCancelled indicates the project was abandoned.
	ProjectCancelled ProjectStatus = "cancelled"
)

// ValidProjectStatuses returns all valid project status values.
func ValidProjectStatuses() []ProjectStatus {
	return []ProjectStatus{ProjectActive, ProjectCompleted, ProjectOnHold, ProjectCancelled}
}

// IsValid returns true if the status is a known valid value.
func (s ProjectStatus) IsValid() bool {
	for _, valid := range ValidProjectStatuses() {
		if s == valid {
			return true
		}
	}
	return false
}

// TaskStatus represents the kanban column a task sits in.
type TaskStatus string

const (
	// StatusTodo indicates the task has not been started.
	StatusTodo TaskStatus = "todo"

	// StatusInProgress indicates the task is being worked on.
	StatusInProgress TaskStatus = "in-progress"

	// StatusReview indicates the task is awaiting review.
	StatusReview TaskStatus = "review"

	// StatusCompleted indicates the task is done.
	StatusCompleted TaskStatus = "completed"
)

// ColumnOrder returns the task statuses in board order. Any status is
// reachable from any other; the order is presentational.
func ColumnOrder() []TaskStatus {
	return []TaskStatus{StatusTodo, StatusInProgress, StatusReview, StatusCompleted}
}

// IsValid returns true if the status is a known valid value.
func (s TaskStatus) IsValid() bool {
	for _, valid := range ColumnOrder() {
		if s == valid {
			return true
		}
	}
	return false
}

// Priority represents the importance of a project or task.
type Priority string

const (
	// PriorityLow is the least important level.
	PriorityLow Priority = "low"

	// PriorityMedium is the default level.
	PriorityMedium Priority = "medium"

	// PriorityHigh marks important work.
	PriorityHigh Priority = "high"

	// PriorityUrgent marks work that preempts everything else.
	PriorityUrgent Priority = "urgent"
)

// ValidPriorities returns all valid priority values.
func ValidPriorities() []Priority {
	return []Priority{PriorityLow, PriorityMedium, PriorityHigh, PriorityUrgent}
}

// IsValid returns true if the priority is a known valid value.
func (p Priority) IsValid() bool {
	for _, valid := range ValidPriorities() {
		if p == valid {
			return true
		}
	}
	return false
}

// PriorityRank returns the sort rank for a priority (0 = most urgent).
func PriorityRank(p Priority) int {
	switch p {
	case PriorityUrgent:
		return 0
	case PriorityHigh:
		return 1
	case PriorityMedium:
		return 2
	case PriorityLow:
		return 3
	default:
		return 4
	}
}

// MaxTitleLength is the maximum allowed length for project names and task
// titles.
const MaxTitleLength = 500

// MinProgress and MaxProgress bound the project progress percentage.
const (
	MinProgress = 0
	MaxProgress = 100
)
