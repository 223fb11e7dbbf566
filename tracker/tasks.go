package tracker

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// TaskDraft configures a new task. ID and timestamps are assigned by the
// store.
type TaskDraft struct {
	// Title is the task title. Required.
	Title string

	// Description provides additional context.
	Description string

	// Status defaults to StatusTodo when empty.
	Status TaskStatus

	// Priority defaults to PriorityMedium when empty.
	Priority Priority

	// AssigneeID identifies the assigned user (empty if unassigned).
	AssigneeID string

	// ProjectID references the owning project. Required, must exist.
	ProjectID string

	// DueDate is the optional deadline.
	DueDate *time.Time

	// Tags label the task for filtering.
	Tags []string
}

// CreateTask creates a new task with the given draft.
func (s *Store) CreateTask(ctx context.Context, draft TaskDraft) (*Task, error) {
	if err := ValidateTaskTitle(draft.Title); err != nil {
		return nil, err
	}
	if draft.Status == "" {
		draft.Status = StatusTodo
	}
	if draft.Priority == "" {
		draft.Priority = PriorityMedium
	}

	now := s.now()
	task := Task{
		ID:          GenerateID(draft.Title, now),
		Title:       draft.Title,
		Description: draft.Description,
		Status:      draft.Status,
		Priority:    draft.Priority,
		AssigneeID:  draft.AssigneeID,
		ProjectID:   draft.ProjectID,
		DueDate:     draft.DueDate,
		Tags:        append([]string(nil), draft.Tags...),
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if err := ValidateTask(&task); err != nil {
		return nil, err
	}

	err := s.mutate(ctx, "createTask", func() (Change, error) {
		if s.projectIndex(task.ProjectID) < 0 {
			return Change{}, ErrProjectNotFound
		}
		s.tasks = append(s.tasks, cloneTask(task))
		return s.taskChange(), nil
	})
	if err != nil {
		return nil, err
	}

	return &task, nil
}

// TaskPatch configures fields to update on a task.
// Nil pointers mean "don't update this field".
type TaskPatch struct {
	Title       *string
	Description *string
	Status      *TaskStatus
	Priority    *Priority
	AssigneeID  *string
	ProjectID   *string
	DueDate     *time.Time
	Tags        *[]string
}

// UpdateTask merges the patch over an existing task and refreshes its
// UpdatedAt. Status patches are the mutation path used by the kanban
// controller. Returns the updated snapshot.
func (s *Store) UpdateTask(ctx context.Context, id string, patch TaskPatch) (*Task, error) {
	if patch.Title != nil {
		if err := ValidateTaskTitle(*patch.Title); err != nil {
			return nil, err
		}
	}

	var updated Task
	err := s.mutate(ctx, "updateTask", func() (Change, error) {
		index := s.taskIndex(id)
		if index < 0 {
			return Change{}, ErrTaskNotFound
		}

		merged := cloneTask(s.tasks[index])
		if patch.Title != nil {
			merged.Title = *patch.Title
		}
		if patch.Description != nil {
			merged.Description = *patch.Description
		}
		if patch.Status != nil {
			merged.Status = *patch.Status
		}
		if patch.Priority != nil {
			merged.Priority = *patch.Priority
		}
		if patch.AssigneeID != nil {
			merged.AssigneeID = *patch.AssigneeID
		}
		if patch.ProjectID != nil {
			if s.projectIndex(*patch.ProjectID) < 0 {
				return Change{}, ErrProjectNotFound
			}
			merged.ProjectID = *patch.ProjectID
		}
		if patch.DueDate != nil {
			merged.DueDate = patch.DueDate
		}
		if patch.Tags != nil {
			merged.Tags = append([]string(nil), (*patch.Tags)...)
		}
		merged.UpdatedAt = s.now()

		if err := ValidateTask(&merged); err != nil {
			return Change{}, err
		}

		s.tasks[index] = merged
		updated = cloneTask(merged)
		return s.taskChange(), nil
	})
	if err != nil {
		return nil, err
	}

	return &updated, nil
}

// DeleteTask removes a task together with its comments and attachments.
func (s *Store) DeleteTask(ctx context.Context, id string) error {
	return s.mutate(ctx, "deleteTask", func() (Change, error) {
		index := s.taskIndex(id)
		if index < 0 {
			return Change{}, ErrTaskNotFound
		}

		s.tasks = append(s.tasks[:index], s.tasks[index+1:]...)
		return s.taskChange(), nil
	})
}

// AddComment appends a comment to a task. Comments exist only through this
// path; they are removed with the task.
func (s *Store) AddComment(ctx context.Context, taskID, authorID, content string) (*Comment, error) {
	if content == "" {
		return nil, ErrEmptyComment
	}

	now := s.now()
	comment := Comment{
		ID:        uuid.NewString(),
		Content:   content,
		AuthorID:  authorID,
		CreatedAt: now,
		UpdatedAt: now,
	}

	err := s.mutate(ctx, "addComment", func() (Change, error) {
		index := s.taskIndex(taskID)
		if index < 0 {
			return Change{}, ErrTaskNotFound
		}

		s.tasks[index].Comments = append(s.tasks[index].Comments, comment)
		s.tasks[index].UpdatedAt = now
		return s.taskChange(), nil
	})
	if err != nil {
		return nil, err
	}

	return &comment, nil
}

// AttachmentDraft configures a new attachment.
type AttachmentDraft struct {
	Name        string
	Size        int64
	ContentType string
	URL         string
	UploadedBy  string
}

// AddAttachment appends an attachment to a task.
func (s *Store) AddAttachment(ctx context.Context, taskID string, draft AttachmentDraft) (*Attachment, error) {
	attachment := Attachment{
		ID:          uuid.NewString(),
		Name:        draft.Name,
		Size:        draft.Size,
		ContentType: draft.ContentType,
		URL:         draft.URL,
		UploadedBy:  draft.UploadedBy,
		UploadedAt:  s.now(),
	}

	err := s.mutate(ctx, "addAttachment", func() (Change, error) {
		index := s.taskIndex(taskID)
		if index < 0 {
			return Change{}, ErrTaskNotFound
		}

		s.tasks[index].Attachments = append(s.tasks[index].Attachments, attachment)
		s.tasks[index].UpdatedAt = attachment.UploadedAt
		return s.taskChange(), nil
	})
	if err != nil {
		return nil, err
	}

	return &attachment, nil
}

// taskIndex returns the position of a task id, or -1. Callers must hold the
// state lock.
func (s *Store) taskIndex(id string) int {
	for i := range s.tasks {
		if s.tasks[i].ID == id {
			return i
		}
	}
	return -1
}
