// Package tracker implements the domain state store for projects and tasks.
//
// The Store owns the canonical in-memory collections. Every mutation goes
// through one of its operations, which model a round trip to a backing
// service (see Remote), apply atomically, and notify subscribers with a
// fresh snapshot before returning. Callers never receive live references:
// all reads return deep copies, so the only way to change an entity is
// through the operation set.
//
// The public API mirrors the CLI commands:
//   - CreateProject, UpdateProject, DeleteProject for project lifecycle
//   - CreateTask, UpdateTask, DeleteTask for task lifecycle
//   - AddComment, AddAttachment for task-owned records
//   - Projects, Tasks, Project, Task for querying
//   - Subscribe for change notifications
package tracker

import "time"

// Project represents a tracked project.
type Project struct {
	// ID is a unique identifier (8-char alphanumeric, never reused).
	ID string `json:"id"`

	// Name is the short summary of the project (max 500 chars).
	Name string `json:"name"`

	// Description provides additional context about the project.
	Description string `json:"description"`

	// Status is the current state of the project.
	Status ProjectStatus `json:"status"`

	// Priority is the importance level.
	Priority Priority `json:"priority"`

	// StartDate is when work on the project begins.
	StartDate time.Time `json:"start_date"`

	// EndDate is the planned end of the project (nil if open-ended).
	// Never precedes StartDate.
	EndDate *time.Time `json:"end_date,omitempty"`

	// Progress is the completion percentage, 0-100.
	Progress int `json:"progress"`

	// OwnerID identifies the user responsible for the project.
	OwnerID string `json:"owner_id"`

	// TeamMembers lists the user ids working on the project.
	TeamMembers []string `json:"team_members,omitempty"`

	// CreatedAt is when the project was created.
	CreatedAt time.Time `json:"created_at"`

	// UpdatedAt is when the project was last modified.
	UpdatedAt time.Time `json:"updated_at"`
}

// Task represents a single unit of work within a project.
type Task struct {
	// ID is a unique identifier (8-char alphanumeric, never reused).
	ID string `json:"id"`

	// Title is the short summary of the task (max 500 chars).
	Title string `json:"title"`

	// Description provides additional context about the task.
	Description string `json:"description"`

	// Status is the kanban column the task sits in.
	Status TaskStatus `json:"status"`

	// Priority is the importance level.
	Priority Priority `json:"priority"`

	// AssigneeID identifies the assigned user (empty if unassigned).
	AssigneeID string `json:"assignee_id,omitempty"`

	// ProjectID references the owning project. Always resolvable.
	ProjectID string `json:"project_id"`

	// DueDate is the deadline (nil if none).
	DueDate *time.Time `json:"due_date,omitempty"`

	// Tags label the task for filtering.
	Tags []string `json:"tags,omitempty"`

	// Attachments are files attached to the task, in upload order.
	Attachments []Attachment `json:"attachments,omitempty"`

	// Comments are discussion entries on the task, in creation order.
	Comments []Comment `json:"comments,omitempty"`

	// CreatedAt is when the task was created.
	CreatedAt time.Time `json:"created_at"`

	// UpdatedAt is when the task was last modified.
	UpdatedAt time.Time `json:"updated_at"`
}

// Overdue reports whether the task is past its due date and not completed.
// This is the single overdue predicate shared by stats and presentation.
func (t Task) Overdue(now time.Time) bool {
	return t.DueDate != nil && t.DueDate.Before(now) && t.Status != StatusCompleted
}

// Comment is a discussion entry owned by exactly one task.
// Comments are created only through Store.AddComment and are removed with
// their task.
type Comment struct {
	// ID is a unique identifier (uuid).
	ID string `json:"id"`

	// Content is the comment body.
	Content string `json:"content"`

	// AuthorID identifies the commenting user.
	AuthorID string `json:"author_id"`

	// CreatedAt is when the comment was created.
	CreatedAt time.Time `json:"created_at"`

	// UpdatedAt is when the comment was last modified.
	UpdatedAt time.Time `json:"updated_at"`
}

// Attachment is a file reference owned by exactly one task.
type Attachment struct {
	// ID is a unique identifier (uuid).
	ID string `json:"id"`

	// Name is the file name.
	Name string `json:"name"`

	// Size is the file size in bytes.
	Size int64 `json:"size"`

	// ContentType is the MIME type of the file.
	ContentType string `json:"content_type"`

	// URL locates the file contents.
	URL string `json:"url"`

	// UploadedBy identifies the uploading user.
	UploadedBy string `json:"uploaded_by"`

	// UploadedAt is when the file was attached.
	UploadedAt time.Time `json:"uploaded_at"`
}
