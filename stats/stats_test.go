package stats

import (
	"reflect"
	"testing"
	"time"

	"github.com/taskflowhq/taskflow/tracker"
)

var statsNow = time.Date(2026, 3, 15, 12, 0, 0, 0, time.UTC)

func sampleProjects() []tracker.Project {
	return []tracker.Project{
		{ID: "p1", Name: "Alpha", Status: tracker.ProjectActive, Progress: 40,
			TeamMembers: []string{"u1", "u2"}},
		{ID: "p2", Name: "Beta", Status: tracker.ProjectCompleted, Progress: 100,
			TeamMembers: []string{"u2", "u3"}},
		{ID: "p3", Name: "Gamma", Status: tracker.ProjectOnHold, Progress: 10},
	}
}

func sampleTasks() []tracker.Task {
	past := statsNow.Add(-24 * time.Hour)
	future := statsNow.Add(24 * time.Hour)
	return []tracker.Task{
		{ID: "t1", Status: tracker.StatusTodo, DueDate: &past},
		{ID: "t2", Status: tracker.StatusInProgress, DueDate: &future},
		{ID: "t3", Status: tracker.StatusCompleted, DueDate: &past},
		{ID: "t4", Status: tracker.StatusReview},
	}
}

func TestComputeCounts(t *testing.T) {
	dashboard := Compute(sampleProjects(), sampleTasks(), statsNow)

	want := Dashboard{
		TotalProjects:  3,
		ActiveProjects: 1,
		CompletedTasks: 1,
		PendingTasks:   3,
		OverdueTasks:   1,
		TeamMembers:    3,
	}
	if dashboard != want {
		t.Fatalf("got %+v, want %+v", dashboard, want)
	}
}

func TestComputeOverdueExcludesCompleted(t *testing.T) {
	past := statsNow.Add(-time.Hour)
	tasks := []tracker.Task{
		{ID: "t1", Status: tracker.StatusCompleted, DueDate: &past},
	}

	dashboard := Compute(nil, tasks, statsNow)
	if dashboard.OverdueTasks != 0 {
		t.Fatalf("completed task counted as overdue: %+v", dashboard)
	}
}

func TestComputeTeamMembersAreDistinct(t *testing.T) {
	projects := []tracker.Project{
		{ID: "p1", Name: "Alpha", TeamMembers: []string{"u1", "u1", "u2"}},
		{ID: "p2", Name: "Beta", TeamMembers: []string{"u2"}},
	}

	dashboard := Compute(projects, nil, statsNow)
	if dashboard.TeamMembers != 2 {
		t.Fatalf("expected 2 distinct members, got %d", dashboard.TeamMembers)
	}
}

func TestComputeEmptyInputs(t *testing.T) {
	if dashboard := Compute(nil, nil, statsNow); dashboard != (Dashboard{}) {
		t.Fatalf("expected zero dashboard, got %+v", dashboard)
	}
}

func TestComputeIsDeterministic(t *testing.T) {
	projects := sampleProjects()
	tasks := sampleTasks()

	first := Compute(projects, tasks, statsNow)
	second := Compute(projects, tasks, statsNow)
	if first != second {
		t.Fatalf("identical inputs produced different dashboards: %+v vs %+v", first, second)
	}
}

func TestProjectProgressPreservesOrder(t *testing.T) {
	rows := ProjectProgress(sampleProjects())

	want := []ProgressRow{
		{Name: "Alpha", Progress: 40, Status: tracker.ProjectActive},
		{Name: "Beta", Progress: 100, Status: tracker.ProjectCompleted},
		{Name: "Gamma", Progress: 10, Status: tracker.ProjectOnHold},
	}
	if !reflect.DeepEqual(rows, want) {
		t.Fatalf("got %+v, want %+v", rows, want)
	}
}
