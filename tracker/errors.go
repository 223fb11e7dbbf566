package tracker

import (
	"errors"
	"fmt"
)

// Error kinds. Every operation failure wraps exactly one of these, so
// callers can classify with errors.Is without matching message text.
var (
	// ErrValidation marks malformed input. Never retryable; surfaced for
	// user-facing correction.
	ErrValidation = errors.New("validation failed")

	// ErrNotFound marks an operation referencing an id absent from the
	// collection.
	ErrNotFound = errors.New("not found")

	// ErrConflict marks an operation blocked by the current state of
	// other entities; resolved only by caller action.
	ErrConflict = errors.New("conflict")

	// ErrTransient marks a failed round trip to the backing service.
	// The store does not retry internally; retry policy belongs to the
	// caller.
	ErrTransient = errors.New("transient backend failure")
)

// Specific failures. Each wraps its kind so errors.Is matches both.
var (
	// ErrEmptyProjectName is returned when a project name is empty.
	ErrEmptyProjectName = fmt.Errorf("%w: project name cannot be empty", ErrValidation)

	// ErrEmptyTaskTitle is returned when a task title is empty.
	ErrEmptyTaskTitle = fmt.Errorf("%w: task title cannot be empty", ErrValidation)

	// ErrTitleTooLong is returned when a name or title exceeds MaxTitleLength.
	ErrTitleTooLong = fmt.Errorf("%w: title exceeds maximum length", ErrValidation)

	// ErrInvalidDateRange is returned when a project end date precedes its
	// start date.
	ErrInvalidDateRange = fmt.Errorf("%w: end date precedes start date", ErrValidation)

	// ErrInvalidProgress is returned when progress is outside 0-100.
	ErrInvalidProgress = fmt.Errorf("%w: progress must be between 0 and 100", ErrValidation)

	// ErrInvalidProjectStatus is returned for an unknown project status.
	ErrInvalidProjectStatus = fmt.Errorf("%w: invalid project status", ErrValidation)

	// ErrInvalidTaskStatus is returned for an unknown task status.
	ErrInvalidTaskStatus = fmt.Errorf("%w: invalid task status", ErrValidation)

	// ErrInvalidPriority is returned for an unknown priority.
	ErrInvalidPriority = fmt.Errorf("%w: invalid priority", ErrValidation)

	// ErrEmptyComment is returned when a comment body is empty.
	ErrEmptyComment = fmt.Errorf("%w: comment cannot be empty", ErrValidation)

	// ErrProjectNotFound is returned when a project id doesn't resolve.
	ErrProjectNotFound = fmt.Errorf("%w: project", ErrNotFound)

	// ErrTaskNotFound is returned when a task id doesn't resolve.
	ErrTaskNotFound = fmt.Errorf("%w: task", ErrNotFound)

	// ErrProjectHasTasks is returned when deleting a project that tasks
	// still reference. Delete or reassign the tasks first.
	ErrProjectHasTasks = fmt.Errorf("%w: project still has tasks", ErrConflict)

	// ErrAmbiguousIDPrefix is returned when an id prefix matches more than
	// one entity.
	ErrAmbiguousIDPrefix = errors.New("ambiguous id prefix")
)
