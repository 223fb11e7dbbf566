package tracker

import (
	"context"
	"errors"
	"testing"
	"time"
)

func TestCreateTaskDefaults(t *testing.T) {
	store := newTickingStore(t, nil)
	ctx := context.Background()

	project := mustCreateProject(t, store, "Alpha")

	task, err := store.CreateTask(ctx, TaskDraft{Title: "Implement login", ProjectID: project.ID})
	if err != nil {
		t.Fatalf("create task: %v", err)
	}

	if task.ID == "" {
		t.Error("expected generated id")
	}
	if task.Status != StatusTodo {
		t.Errorf("expected default status todo, got %q", task.Status)
	}
	if task.Priority != PriorityMedium {
		t.Errorf("expected default priority medium, got %q", task.Priority)
	}
	if !task.UpdatedAt.Equal(task.CreatedAt) {
		t.Error("expected UpdatedAt == CreatedAt on create")
	}
}

func TestCreateTaskRequiresExistingProject(t *testing.T) {
	store := newTestStore(t)

	_, err := store.CreateTask(context.Background(), TaskDraft{Title: "Orphan", ProjectID: "nope"})
	if !errors.Is(err, ErrProjectNotFound) {
		t.Fatalf("expected ErrProjectNotFound, got %v", err)
	}
}

func TestCreateTaskEmptyTitleFailsBeforeRemote(t *testing.T) {
	store := NewStore(Options{Remote: FailingRemote{}})

	_, err := store.CreateTask(context.Background(), TaskDraft{Title: "", ProjectID: "p1"})
	if !errors.Is(err, ErrEmptyTaskTitle) {
		t.Fatalf("expected ErrEmptyTaskTitle, got %v", err)
	}
	if errors.Is(err, ErrTransient) {
		t.Fatalf("validation should run before the remote round trip, got %v", err)
	}
}

func TestUpdateTaskStatus(t *testing.T) {
	store := newTickingStore(t, nil)
	ctx := context.Background()

	project := mustCreateProject(t, store, "Alpha")
	task := mustCreateTask(t, store, project.ID, "Implement login")

	done := StatusCompleted
	updated, err := store.UpdateTask(ctx, task.ID, TaskPatch{Status: &done})
	if err != nil {
		t.Fatalf("update task: %v", err)
	}
	if updated.Status != StatusCompleted {
		t.Fatalf("expected status completed, got %q", updated.Status)
	}
	if !updated.UpdatedAt.After(task.UpdatedAt) {
		t.Error("expected UpdatedAt to advance on status change")
	}

	bad := TaskStatus("shipping")
	if _, err := store.UpdateTask(ctx, task.ID, TaskPatch{Status: &bad}); !errors.Is(err, ErrInvalidTaskStatus) {
		t.Fatalf("expected ErrInvalidTaskStatus, got %v", err)
	}
}

func TestUpdateTaskReassignmentChecksProject(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	alpha := mustCreateProject(t, store, "Alpha")
	beta := mustCreateProject(t, store, "Beta")
	task := mustCreateTask(t, store, alpha.ID, "Movable")

	if _, err := store.UpdateTask(ctx, task.ID, TaskPatch{ProjectID: &beta.ID}); err != nil {
		t.Fatalf("reassign task: %v", err)
	}

	missing := "nope"
	if _, err := store.UpdateTask(ctx, task.ID, TaskPatch{ProjectID: &missing}); !errors.Is(err, ErrProjectNotFound) {
		t.Fatalf("expected ErrProjectNotFound, got %v", err)
	}

	reread, err := store.Task(ctx, task.ID)
	if err != nil {
		t.Fatalf("reread task: %v", err)
	}
	if reread.ProjectID != beta.ID {
		t.Fatalf("failed reassignment changed the project: %q", reread.ProjectID)
	}
}

func TestAddComment(t *testing.T) {
	store := newTickingStore(t, nil)
	ctx := context.Background()

	project := mustCreateProject(t, store, "Alpha")
	task := mustCreateTask(t, store, project.ID, "Commented")

	comment, err := store.AddComment(ctx, task.ID, "u1", "Looks good")
	if err != nil {
		t.Fatalf("add comment: %v", err)
	}
	if comment.ID == "" || comment.AuthorID != "u1" || comment.Content != "Looks good" {
		t.Fatalf("unexpected comment: %+v", comment)
	}

	reread, err := store.Task(ctx, task.ID)
	if err != nil {
		t.Fatalf("reread task: %v", err)
	}
	if len(reread.Comments) != 1 || reread.Comments[0].ID != comment.ID {
		t.Fatalf("comment not attached: %+v", reread.Comments)
	}
	if !reread.UpdatedAt.After(task.UpdatedAt) {
		t.Error("expected comment to bump the task's UpdatedAt")
	}

	if _, err := store.AddComment(ctx, task.ID, "u1", ""); !errors.Is(err, ErrEmptyComment) {
		t.Fatalf("expected ErrEmptyComment, got %v", err)
	}
	if _, err := store.AddComment(ctx, "nope", "u1", "hi"); !errors.Is(err, ErrTaskNotFound) {
		t.Fatalf("expected ErrTaskNotFound, got %v", err)
	}
}

func TestAddAttachment(t *testing.T) {
	store := newTickingStore(t, nil)
	ctx := context.Background()

	project := mustCreateProject(t, store, "Alpha")
	task := mustCreateTask(t, store, project.ID, "With files")

	attachment, err := store.AddAttachment(ctx, task.ID, AttachmentDraft{
		Name:        "spec.pdf",
		Size:        2048,
		ContentType: "application/pdf",
		URL:         "https://files.example.com/spec.pdf",
		UploadedBy:  "u1",
	})
	if err != nil {
		t.Fatalf("add attachment: %v", err)
	}
	if attachment.ID == "" || attachment.UploadedAt.IsZero() {
		t.Fatalf("unexpected attachment: %+v", attachment)
	}

	reread, err := store.Task(ctx, task.ID)
	if err != nil {
		t.Fatalf("reread task: %v", err)
	}
	if len(reread.Attachments) != 1 || reread.Attachments[0].Name != "spec.pdf" {
		t.Fatalf("attachment not attached: %+v", reread.Attachments)
	}
	if !reread.UpdatedAt.Equal(attachment.UploadedAt) {
		t.Error("expected attachment to bump the task's UpdatedAt")
	}
}

func TestDeleteTask(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	project := mustCreateProject(t, store, "Alpha")
	task := mustCreateTask(t, store, project.ID, "Short lived")

	if err := store.DeleteTask(ctx, task.ID); err != nil {
		t.Fatalf("delete task: %v", err)
	}
	if _, err := store.Task(ctx, task.ID); !errors.Is(err, ErrTaskNotFound) {
		t.Fatalf("expected ErrTaskNotFound after delete, got %v", err)
	}
	if err := store.DeleteTask(ctx, task.ID); !errors.Is(err, ErrTaskNotFound) {
		t.Fatalf("expected ErrTaskNotFound on repeat delete, got %v", err)
	}
}

func TestRapidCreatesGetDistinctIDs(t *testing.T) {
	// Fixed clock: every id comes from the same timestamp.
	fixed := time.Date(2026, 3, 1, 9, 0, 0, 0, time.UTC)
	store := NewStore(Options{Now: func() time.Time { return fixed }})
	ctx := context.Background()

	project, err := store.CreateProject(ctx, ProjectDraft{Name: "Burst"})
	if err != nil {
		t.Fatalf("create project: %v", err)
	}

	// Identical titles and a frozen clock force the counter path.
	seen := make(map[string]bool)
	for i := 0; i < 100; i++ {
		task, err := store.CreateTask(ctx, TaskDraft{
			Title:     "task",
			ProjectID: project.ID,
		})
		if err != nil {
			t.Fatalf("create task %d: %v", i, err)
		}
		if seen[task.ID] {
			t.Fatalf("duplicate id %q at iteration %d", task.ID, i)
		}
		seen[task.ID] = true
	}
}
