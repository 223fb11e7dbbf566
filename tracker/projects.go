package tracker

import (
	"context"
	"time"
)

// ProjectDraft configures a new project. ID and timestamps are assigned by
// the store.
type ProjectDraft struct {
	// Name is the project name. Required.
	Name string

	// Description provides additional context.
	Description string

	// Status defaults to ProjectActive when empty.
	Status ProjectStatus

	// Priority defaults to PriorityMedium when empty.
	Priority Priority

	// StartDate defaults to the creation time when zero.
	StartDate time.Time

	// EndDate is optional; when set it must not precede StartDate.
	EndDate *time.Time

	// Progress is the completion percentage, 0-100.
	Progress int

	// OwnerID identifies the responsible user.
	OwnerID string

	// TeamMembers lists the user ids working on the project.
	TeamMembers []string
}

// CreateProject creates a new project with the given draft.
func (s *Store) CreateProject(ctx context.Context, draft ProjectDraft) (*Project, error) {
	if draft.Status == "" {
		draft.Status = ProjectActive
	}
	if draft.Priority == "" {
		draft.Priority = PriorityMedium
	}

	now := s.now()
	if draft.StartDate.IsZero() {
		draft.StartDate = now
	}

	project := Project{
		ID:          GenerateID(draft.Name, now),
		Name:        draft.Name,
		Description: draft.Description,
		Status:      draft.Status,
		Priority:    draft.Priority,
		StartDate:   draft.StartDate,
		EndDate:     draft.EndDate,
		Progress:    draft.Progress,
		OwnerID:     draft.OwnerID,
		TeamMembers: append([]string(nil), draft.TeamMembers...),
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if err := ValidateProject(&project); err != nil {
		return nil, err
	}

	err := s.mutate(ctx, "createProject", func() (Change, error) {
		s.projects = append(s.projects, cloneProject(project))
		return s.projectChange(), nil
	})
	if err != nil {
		return nil, err
	}

	return &project, nil
}

// ProjectPatch configures fields to update on a project.
// Nil pointers mean "don't update this field".
type ProjectPatch struct {
	Name        *string
	Description *string
	Status      *ProjectStatus
	Priority    *Priority
	StartDate   *time.Time
	EndDate     *time.Time
	Progress    *int
	OwnerID     *string
	TeamMembers *[]string
}

// UpdateProject merges the patch over an existing project and refreshes its
// UpdatedAt. Returns the updated snapshot.
func (s *Store) UpdateProject(ctx context.Context, id string, patch ProjectPatch) (*Project, error) {
	if patch.Name != nil {
		if err := ValidateProjectName(*patch.Name); err != nil {
			return nil, err
		}
	}

	var updated Project
	err := s.mutate(ctx, "updateProject", func() (Change, error) {
		index := s.projectIndex(id)
		if index < 0 {
			return Change{}, ErrProjectNotFound
		}

		merged := cloneProject(s.projects[index])
		if patch.Name != nil {
			merged.Name = *patch.Name
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
		if patch.StartDate != nil {
			merged.StartDate = *patch.StartDate
		}
		if patch.EndDate != nil {
			merged.EndDate = patch.EndDate
		}
		if patch.Progress != nil {
			merged.Progress = *patch.Progress
		}
		if patch.OwnerID != nil {
			merged.OwnerID = *patch.OwnerID
		}
		if patch.TeamMembers != nil {
			merged.TeamMembers = append([]string(nil), (*patch.TeamMembers)...)
		}
		merged.UpdatedAt = s.now()

		if err := ValidateProject(&merged); err != nil {
			return Change{}, err
		}

		s.projects[index] = merged
		updated = cloneProject(merged)
		return s.projectChange(), nil
	})
	if err != nil {
		return nil, err
	}

	return &updated, nil
}

// DeleteProject removes a project. Deletion is blocked with
// ErrProjectHasTasks while tasks still reference the project, so tasks are
// never silently orphaned.
func (s *Store) DeleteProject(ctx context.Context, id string) error {
	return s.mutate(ctx, "deleteProject", func() (Change, error) {
		index := s.projectIndex(id)
		if index < 0 {
			return Change{}, ErrProjectNotFound
		}

		for i := range s.tasks {
			if s.tasks[i].ProjectID == id {
				return Change{}, ErrProjectHasTasks
			}
		}

		s.projects = append(s.projects[:index], s.projects[index+1:]...)
		return s.projectChange(), nil
	})
}

// projectIndex returns the position of a project id, or -1. Callers must
// hold the state lock.
func (s *Store) projectIndex(id string) int {
	for i := range s.projects {
		if s.projects[i].ID == id {
			return i
		}
	}
	return -1
}
