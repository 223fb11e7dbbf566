package tracker

import "fmt"

// ValidateProjectName checks if a project name is valid.
func ValidateProjectName(name string) error {
	if name == "" {
		return ErrEmptyProjectName
	}
	if len(name) > MaxTitleLength {
		return fmt.Errorf("%w: %d > %d", ErrTitleTooLong, len(name), MaxTitleLength)
	}
	return nil
}

// ValidateTaskTitle checks if a task title is valid.
func ValidateTaskTitle(title string) error {
	if title == "" {
		return ErrEmptyTaskTitle
	}
	if len(title) > MaxTitleLength {
		return fmt.Errorf("%w: %d > %d", ErrTitleTooLong, len(title), MaxTitleLength)
	}
	return nil
}

// ValidateProgress checks if a progress percentage is valid.
func ValidateProgress(progress int) error {
	if progress < MinProgress || progress > MaxProgress {
		return fmt.Errorf("%w: got %d", ErrInvalidProgress, progress)
	}
	return nil
}

// ValidateProject checks if a project record is valid.
func ValidateProject(p *Project) error {
	if err := ValidateProjectName(p.Name); err != nil {
		return err
	}
	if !p.Status.IsValid() {
		return fmt.Errorf("%w: %q", ErrInvalidProjectStatus, p.Status)
	}
	if !p.Priority.IsValid() {
		return fmt.Errorf("%w: %q", ErrInvalidPriority, p.Priority)
	}
	if err := ValidateProgress(p.Progress); err != nil {
		return err
	}
	if p.EndDate != nil && p.EndDate.Before(p.StartDate) {
		return fmt.Errorf("%w: %s < %s", ErrInvalidDateRange,
			p.EndDate.Format("2006-01-02"), p.StartDate.Format("2006-01-02"))
	}
	return nil
}

// ValidateTask checks if a task record is valid. Project reference
// existence is the store's job, not the record's.
func ValidateTask(t *Task) error {
	if err := ValidateTaskTitle(t.Title); err != nil {
		return err
	}
	if !t.Status.IsValid() {
		return fmt.Errorf("%w: %q", ErrInvalidTaskStatus, t.Status)
	}
	if !t.Priority.IsValid() {
		return fmt.Errorf("%w: %q", ErrInvalidPriority, t.Priority)
	}
	return nil
}
