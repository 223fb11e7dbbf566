package tracker

import (
	"context"
	"errors"
	"testing"
	"time"
)

func newTestStore(t *testing.T) *Store {
	t.Helper()
	return NewStore(Options{})
}

// newTickingStore returns a store whose clock advances one second per call,
// so CreatedAt and UpdatedAt are distinguishable in tests.
func newTickingStore(t *testing.T, remote Remote) *Store {
	t.Helper()

	clock := time.Date(2026, 3, 1, 9, 0, 0, 0, time.UTC)
	return NewStore(Options{
		Remote: remote,
		Now: func() time.Time {
			clock = clock.Add(time.Second)
			return clock
		},
	})
}

func mustCreateProject(t *testing.T, s *Store, name string) *Project {
	t.Helper()

	project, err := s.CreateProject(context.Background(), ProjectDraft{Name: name})
	if err != nil {
		t.Fatalf("create project %q: %v", name, err)
	}
	return project
}

func mustCreateTask(t *testing.T, s *Store, projectID, title string) *Task {
	t.Helper()

	task, err := s.CreateTask(context.Background(), TaskDraft{Title: title, ProjectID: projectID})
	if err != nil {
		t.Fatalf("create task %q: %v", title, err)
	}
	return task
}

func TestSubscribersRunInOrderBeforeReturn(t *testing.T) {
	store := newTestStore(t)

	var calls []string
	store.Subscribe(func(change Change) {
		calls = append(calls, "first:"+string(change.Collection))
	})
	store.Subscribe(func(change Change) {
		calls = append(calls, "second:"+string(change.Collection))
	})

	mustCreateProject(t, store, "Alpha")

	if len(calls) != 2 {
		t.Fatalf("expected 2 notifications, got %d: %v", len(calls), calls)
	}
	if calls[0] != "first:projects" || calls[1] != "second:projects" {
		t.Fatalf("expected registration order, got %v", calls)
	}
}

func TestUnsubscribeStopsNotifications(t *testing.T) {
	store := newTestStore(t)

	count := 0
	unsubscribe := store.Subscribe(func(Change) { count++ })

	mustCreateProject(t, store, "Alpha")
	unsubscribe()
	mustCreateProject(t, store, "Beta")

	if count != 1 {
		t.Fatalf("expected 1 notification after unsubscribe, got %d", count)
	}
}

func TestChangeCarriesCommittedSnapshot(t *testing.T) {
	store := newTestStore(t)

	var seen []Project
	store.Subscribe(func(change Change) {
		seen = change.Projects
	})

	created := mustCreateProject(t, store, "Alpha")

	if len(seen) != 1 || seen[0].ID != created.ID {
		t.Fatalf("expected change snapshot with created project, got %+v", seen)
	}
}

func TestSnapshotsAreIsolated(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	created, err := store.CreateProject(ctx, ProjectDraft{
		Name:        "Alpha",
		TeamMembers: []string{"u1", "u2"},
	})
	if err != nil {
		t.Fatalf("create project: %v", err)
	}

	snapshot, err := store.Projects(ctx)
	if err != nil {
		t.Fatalf("list projects: %v", err)
	}
	snapshot[0].Name = "mutated"
	snapshot[0].TeamMembers[0] = "mutated"

	reread, err := store.Project(ctx, created.ID)
	if err != nil {
		t.Fatalf("reread project: %v", err)
	}
	if reread.Name != "Alpha" || reread.TeamMembers[0] != "u1" {
		t.Fatalf("store state changed through a snapshot: %+v", reread)
	}
}

func TestReadsWorkWhileRemoteFails(t *testing.T) {
	store := NewStore(Options{Remote: FailingRemote{}})
	ctx := context.Background()

	if _, err := store.CreateProject(ctx, ProjectDraft{Name: "Alpha"}); !errors.Is(err, ErrTransient) {
		t.Fatalf("expected ErrTransient from mutation, got %v", err)
	}

	projects, err := store.Projects(ctx)
	if err != nil {
		t.Fatalf("read failed: %v", err)
	}
	if len(projects) != 0 {
		t.Fatalf("failed mutation left state behind: %+v", projects)
	}
}

func TestSeedBypassesRemoteAndSubscribers(t *testing.T) {
	store := NewStore(Options{Remote: FailingRemote{}})

	notified := false
	store.Subscribe(func(Change) { notified = true })

	store.Seed(
		[]Project{{ID: "p1", Name: "Seeded", Status: ProjectActive, Priority: PriorityMedium}},
		[]Task{{ID: "t1", Title: "Seeded task", Status: StatusTodo, Priority: PriorityMedium, ProjectID: "p1"}},
	)

	if notified {
		t.Fatal("seed should not notify subscribers")
	}

	projects, err := store.Projects(context.Background())
	if err != nil {
		t.Fatalf("list projects: %v", err)
	}
	if len(projects) != 1 || projects[0].ID != "p1" {
		t.Fatalf("unexpected seeded projects: %+v", projects)
	}
}

func TestTaskFilter(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	alpha := mustCreateProject(t, store, "Alpha")
	beta := mustCreateProject(t, store, "Beta")

	login := mustCreateTask(t, store, alpha.ID, "Implement Login")
	mustCreateTask(t, store, alpha.ID, "Write docs")
	mustCreateTask(t, store, beta.ID, "Billing export")

	inProgress := StatusInProgress
	if _, err := store.UpdateTask(ctx, login.ID, TaskPatch{Status: &inProgress}); err != nil {
		t.Fatalf("update task: %v", err)
	}

	byProject, err := store.Tasks(ctx, TaskFilter{ProjectID: alpha.ID})
	if err != nil {
		t.Fatalf("filter by project: %v", err)
	}
	if len(byProject) != 2 {
		t.Fatalf("expected 2 tasks in alpha, got %d", len(byProject))
	}

	byStatus, err := store.Tasks(ctx, TaskFilter{Status: &inProgress})
	if err != nil {
		t.Fatalf("filter by status: %v", err)
	}
	if len(byStatus) != 1 || byStatus[0].ID != login.ID {
		t.Fatalf("expected only the in-progress task, got %+v", byStatus)
	}

	bySearch, err := store.Tasks(ctx, TaskFilter{Search: "LOGIN"})
	if err != nil {
		t.Fatalf("filter by search: %v", err)
	}
	if len(bySearch) != 1 || bySearch[0].ID != login.ID {
		t.Fatalf("expected case-insensitive title match, got %+v", bySearch)
	}

	bad := TaskStatus("shipping")
	if _, err := store.Tasks(ctx, TaskFilter{Status: &bad}); !errors.Is(err, ErrValidation) {
		t.Fatalf("expected validation error for unknown status, got %v", err)
	}
}

func TestReadsHonorCanceledContext(t *testing.T) {
	store := newTestStore(t)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	if _, err := store.Projects(ctx); !errors.Is(err, context.Canceled) {
		t.Fatalf("expected context.Canceled, got %v", err)
	}
	if _, err := store.Tasks(ctx, TaskFilter{}); !errors.Is(err, context.Canceled) {
		t.Fatalf("expected context.Canceled, got %v", err)
	}
}

func TestIDIndexCoversBothCollections(t *testing.T) {
	store := newTestStore(t)

	project := mustCreateProject(t, store, "Alpha")
	task := mustCreateTask(t, store, project.ID, "First task")

	index := store.IDIndex()

	resolved, err := index.Resolve(project.ID)
	if err != nil || resolved != project.ID {
		t.Fatalf("resolve project id: %q, %v", resolved, err)
	}
	resolved, err = index.Resolve(task.ID)
	if err != nil || resolved != task.ID {
		t.Fatalf("resolve task id: %q, %v", resolved, err)
	}
}
