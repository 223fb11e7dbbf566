package main

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/taskflowhq/taskflow/tracker"
)

var projectCmd = &cobra.Command{
	Use:   "project",
	Short: "Manage projects",
}

// project create
var projectCreateCmd = &cobra.Command{
	Use:   "create <name>",
	Short: "Create a new project",
	Args:  cobra.ExactArgs(1),
	RunE:  runProjectCreate,
}

var (
	projectCreateDescription string
	projectCreateStatus      string
	projectCreatePriority    string
	projectCreateStart       string
	projectCreateEnd         string
	projectCreateProgress    int
	projectCreateTeam        []string
)

// project update
var projectUpdateCmd = &cobra.Command{
	Use:   "update <id>",
	Short: "Update a project",
	Args:  cobra.ExactArgs(1),
	RunE:  runProjectUpdate,
}

var (
	projectUpdateName        string
	projectUpdateDescription string
	projectUpdateStatus      string
	projectUpdatePriority    string
	projectUpdateStart       string
	projectUpdateEnd         string
	projectUpdateProgress    int
	projectUpdateOwner       string
	projectUpdateTeam        []string
)

// project delete
var projectDeleteCmd = &cobra.Command{
	Use:   "delete <id>...",
	Short: "Delete one or more projects",
	Long: `Delete one or more projects.

A project that still has tasks cannot be deleted; delete or reassign its
tasks first.`,
	Args: cobra.MinimumNArgs(1),
	RunE: runProjectDelete,
}

// project show
var projectShowCmd = &cobra.Command{
	Use:   "show <id>",
	Short: "Show detailed information about a project",
	Args:  cobra.ExactArgs(1),
	RunE:  runProjectShow,
}

var projectShowJSON bool

// project list
var projectListCmd = &cobra.Command{
	Use:   "list",
	Short: "List projects",
	RunE:  runProjectList,
}

var (
	projectListStatus string
	projectListJSON   bool
)

func init() {
	rootCmd.AddCommand(projectCmd)
	projectCmd.AddCommand(projectCreateCmd, projectUpdateCmd, projectDeleteCmd, projectShowCmd, projectListCmd)

	// project create flags
	projectCreateCmd.Flags().StringVarP(&projectCreateDescription, "description", "d", "", "Description")
	projectCreateCmd.Flags().StringVar(&projectCreateStatus, "status", "", "Status (active, completed, on-hold, cancelled)")
	projectCreateCmd.Flags().StringVarP(&projectCreatePriority, "priority", "p", "", "Priority (low, medium, high, urgent)")
	projectCreateCmd.Flags().StringVar(&projectCreateStart, "start", "", "Start date (YYYY-MM-DD)")
	projectCreateCmd.Flags().StringVar(&projectCreateEnd, "end", "", "End date (YYYY-MM-DD)")
	projectCreateCmd.Flags().IntVar(&projectCreateProgress, "progress", 0, "Progress percentage (0-100)")
	projectCreateCmd.Flags().StringArrayVar(&projectCreateTeam, "member", nil, "Team member user id (repeatable)")

	// project update flags
	projectUpdateCmd.Flags().StringVar(&projectUpdateName, "name", "", "New name")
	projectUpdateCmd.Flags().StringVarP(&projectUpdateDescription, "description", "d", "", "New description")
	projectUpdateCmd.Flags().StringVar(&projectUpdateStatus, "status", "", "New status (active, completed, on-hold, cancelled)")
	projectUpdateCmd.Flags().StringVarP(&projectUpdatePriority, "priority", "p", "", "New priority (low, medium, high, urgent)")
	projectUpdateCmd.Flags().StringVar(&projectUpdateStart, "start", "", "New start date (YYYY-MM-DD)")
	projectUpdateCmd.Flags().StringVar(&projectUpdateEnd, "end", "", "New end date (YYYY-MM-DD)")
	projectUpdateCmd.Flags().IntVar(&projectUpdateProgress, "progress", 0, "New progress percentage (0-100)")
	projectUpdateCmd.Flags().StringVar(&projectUpdateOwner, "owner", "", "New owner user id")
	projectUpdateCmd.Flags().StringArrayVar(&projectUpdateTeam, "member", nil, "Replacement team member list (repeatable)")

	// project show flags
	projectShowCmd.Flags().BoolVar(&projectShowJSON, "json", false, "Output as JSON")

	// project list flags
	projectListCmd.Flags().StringVar(&projectListStatus, "status", "", "Filter by status")
	projectListCmd.Flags().BoolVar(&projectListJSON, "json", false, "Output as JSON")

	aliasFlags(map[string]string{"desc": "description"}, projectCreateCmd, projectUpdateCmd)
}

func runProjectCreate(cmd *cobra.Command, args []string) error {
	a, err := openApp()
	if err != nil {
		return err
	}
	defer a.Close()

	draft := tracker.ProjectDraft{
		Name:        args[0],
		Description: projectCreateDescription,
		Status:      tracker.ProjectStatus(projectCreateStatus),
		Priority:    tracker.Priority(projectCreatePriority),
		Progress:    projectCreateProgress,
		OwnerID:     a.user.ID,
		TeamMembers: projectCreateTeam,
	}

	if projectCreateStart != "" {
		start, err := parseDate(projectCreateStart)
		if err != nil {
			return err
		}
		draft.StartDate = start
	}
	if projectCreateEnd != "" {
		end, err := parseDate(projectCreateEnd)
		if err != nil {
			return err
		}
		draft.EndDate = &end
	}

	created, err := a.store.CreateProject(cmd.Context(), draft)
	if err != nil {
		return err
	}

	fmt.Printf("Created project %s: %s\n", a.highlight(created.ID), created.Name)
	return nil
}

func runProjectUpdate(cmd *cobra.Command, args []string) error {
	a, err := openApp()
	if err != nil {
		return err
	}
	defer a.Close()

	id, err := a.resolveID(args[0])
	if err != nil {
		return err
	}

	patch := tracker.ProjectPatch{}
	if cmd.Flags().Changed("name") {
		patch.Name = &projectUpdateName
	}
	if cmd.Flags().Changed("description") {
		patch.Description = &projectUpdateDescription
	}
	if cmd.Flags().Changed("status") {
		status := tracker.ProjectStatus(projectUpdateStatus)
		patch.Status = &status
	}
	if cmd.Flags().Changed("priority") {
		priority := tracker.Priority(projectUpdatePriority)
		patch.Priority = &priority
	}
	if cmd.Flags().Changed("start") {
		start, err := parseDate(projectUpdateStart)
		if err != nil {
			return err
		}
		patch.StartDate = &start
	}
	if cmd.Flags().Changed("end") {
		end, err := parseDate(projectUpdateEnd)
		if err != nil {
			return err
		}
		patch.EndDate = &end
	}
	if cmd.Flags().Changed("progress") {
		patch.Progress = &projectUpdateProgress
	}
	if cmd.Flags().Changed("owner") {
		patch.OwnerID = &projectUpdateOwner
	}
	if cmd.Flags().Changed("member") {
		patch.TeamMembers = &projectUpdateTeam
	}

	updated, err := a.store.UpdateProject(cmd.Context(), id, patch)
	if err != nil {
		return err
	}

	fmt.Printf("Updated project %s: %s\n", a.highlight(updated.ID), updated.Name)
	return nil
}

func runProjectDelete(cmd *cobra.Command, args []string) error {
	a, err := openApp()
	if err != nil {
		return err
	}
	defer a.Close()

	for _, prefix := range args {
		id, err := a.resolveID(prefix)
		if err != nil {
			return err
		}
		if err := a.store.DeleteProject(cmd.Context(), id); err != nil {
			return err
		}
		fmt.Printf("Deleted project %s\n", id)
	}
	return nil
}

func runProjectShow(cmd *cobra.Command, args []string) error {
	a, err := openApp()
	if err != nil {
		return err
	}
	defer a.Close()

	id, err := a.resolveID(args[0])
	if err != nil {
		return err
	}

	project, err := a.store.Project(cmd.Context(), id)
	if err != nil {
		return err
	}

	if projectShowJSON {
		return encodeJSONToStdout(project)
	}

	tasks, err := a.store.Tasks(cmd.Context(), tracker.TaskFilter{ProjectID: id})
	if err != nil {
		return err
	}

	printProjectDetail(project, tasks, a.highlight)
	return nil
}

func runProjectList(cmd *cobra.Command, args []string) error {
	a, err := openApp()
	if err != nil {
		return err
	}
	defer a.Close()

	projects, err := a.store.Projects(cmd.Context())
	if err != nil {
		return err
	}

	if projectListStatus != "" {
		status := tracker.ProjectStatus(projectListStatus)
		if !status.IsValid() {
			return tracker.ErrInvalidProjectStatus
		}
		filtered := projects[:0]
		for _, project := range projects {
			if project.Status == status {
				filtered = append(filtered, project)
			}
		}
		projects = filtered
	}

	if projectListJSON {
		return encodeJSONToStdout(projects)
	}

	printProjectTable(projects, a.store.IDIndex().PrefixLengths())
	return nil
}

func parseDate(value string) (time.Time, error) {
	parsed, err := time.Parse("2006-01-02", value)
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: date must be YYYY-MM-DD", tracker.ErrValidation)
	}
	return parsed, nil
}
