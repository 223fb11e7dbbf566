package ui

import (
	"testing"

	"github.com/taskflowhq/taskflow/tracker"
)

func TestStatusFormattersWithoutTerminal(t *testing.T) {
	t.Setenv("NO_COLOR", "1")

	if got := FormatTaskStatus(tracker.StatusInProgress); got != "in-progress" {
		t.Errorf("FormatTaskStatus() = %q, want in-progress", got)
	}
	if got := FormatProjectStatus(tracker.ProjectOnHold); got != "on-hold" {
		t.Errorf("FormatProjectStatus() = %q, want on-hold", got)
	}
	if got := FormatPriority(tracker.PriorityUrgent); got != "urgent" {
		t.Errorf("FormatPriority() = %q, want urgent", got)
	}
}
