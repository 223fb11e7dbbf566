package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/taskflowhq/taskflow/tracker"
)

var taskCmd = &cobra.Command{
	Use:   "task",
	Short: "Manage tasks",
}

// task create
var taskCreateCmd = &cobra.Command{
	Use:   "create <title>",
	Short: "Create a new task",
	Args:  cobra.ExactArgs(1),
	RunE:  runTaskCreate,
}

var (
	taskCreateDescription string
	taskCreateStatus      string
	taskCreatePriority    string
	taskCreateProject     string
	taskCreateAssignee    string
	taskCreateDue         string
	taskCreateTags        []string
)

// task update
var taskUpdateCmd = &cobra.Command{
	Use:   "update <id>",
	Short: "Update a task",
	Args:  cobra.ExactArgs(1),
	RunE:  runTaskUpdate,
}

var (
	taskUpdateTitle       string
	taskUpdateDescription string
	taskUpdateStatus      string
	taskUpdatePriority    string
	taskUpdateProject     string
	taskUpdateAssignee    string
	taskUpdateDue         string
	taskUpdateTags        []string
)

// task move
var taskMoveCmd = &cobra.Command{
	Use:   "move <id> <status>",
	Short: "Move a task to another board column",
	Long: `Move a task to another board column.

The move commits through the same transition path as dragging a card on the
board: a failed round trip leaves the task exactly where it was.`,
	Args: cobra.ExactArgs(2),
	RunE: runTaskMove,
}

// task delete
var taskDeleteCmd = &cobra.Command{
	Use:   "delete <id>...",
	Short: "Delete one or more tasks",
	Args:  cobra.MinimumNArgs(1),
	RunE:  runTaskDelete,
}

// task comment
var taskCommentCmd = &cobra.Command{
	Use:   "comment <id> <text>",
	Short: "Add a comment to a task",
	Args:  cobra.ExactArgs(2),
	RunE:  runTaskComment,
}

// task attach
var taskAttachCmd = &cobra.Command{
	Use:   "attach <id> <url>",
	Short: "Attach a link to a task",
	Args:  cobra.ExactArgs(2),
	RunE:  runTaskAttach,
}

var (
	taskAttachName string
	taskAttachType string
	taskAttachSize int64
)

// task show
var taskShowCmd = &cobra.Command{
	Use:   "show <id>",
	Short: "Show detailed information about a task",
	Args:  cobra.ExactArgs(1),
	RunE:  runTaskShow,
}

var taskShowJSON bool

// task list
var taskListCmd = &cobra.Command{
	Use:   "list",
	Short: "List tasks",
	RunE:  runTaskList,
}

var (
	taskListProject string
	taskListStatus  string
	taskListSearch  string
	taskListJSON    bool
)

func init() {
	rootCmd.AddCommand(taskCmd)
	taskCmd.AddCommand(taskCreateCmd, taskUpdateCmd, taskMoveCmd, taskDeleteCmd,
		taskCommentCmd, taskAttachCmd, taskShowCmd, taskListCmd)

	// task create flags
	taskCreateCmd.Flags().StringVarP(&taskCreateDescription, "description", "d", "", "Description")
	taskCreateCmd.Flags().StringVar(&taskCreateStatus, "status", "", "Status (todo, in-progress, review, completed)")
	taskCreateCmd.Flags().StringVarP(&taskCreatePriority, "priority", "p", "", "Priority (low, medium, high, urgent)")
	taskCreateCmd.Flags().StringVar(&taskCreateProject, "project", "", "Project id (required)")
	taskCreateCmd.Flags().StringVar(&taskCreateAssignee, "assignee", "", "Assignee user id")
	taskCreateCmd.Flags().StringVar(&taskCreateDue, "due", "", "Due date (YYYY-MM-DD)")
	taskCreateCmd.Flags().StringArrayVar(&taskCreateTags, "tag", nil, "Tag (repeatable)")
	taskCreateCmd.MarkFlagRequired("project")

	// task update flags
	taskUpdateCmd.Flags().StringVar(&taskUpdateTitle, "title", "", "New title")
	taskUpdateCmd.Flags().StringVarP(&taskUpdateDescription, "description", "d", "", "New description")
	taskUpdateCmd.Flags().StringVar(&taskUpdateStatus, "status", "", "New status (todo, in-progress, review, completed)")
	taskUpdateCmd.Flags().StringVarP(&taskUpdatePriority, "priority", "p", "", "New priority (low, medium, high, urgent)")
	taskUpdateCmd.Flags().StringVar(&taskUpdateProject, "project", "", "New project id")
	taskUpdateCmd.Flags().StringVar(&taskUpdateAssignee, "assignee", "", "New assignee user id")
	taskUpdateCmd.Flags().StringVar(&taskUpdateDue, "due", "", "New due date (YYYY-MM-DD)")
	taskUpdateCmd.Flags().StringArrayVar(&taskUpdateTags, "tag", nil, "Replacement tag list (repeatable)")

	// task attach flags
	taskAttachCmd.Flags().StringVar(&taskAttachName, "name", "", "Attachment display name (defaults to the URL)")
	taskAttachCmd.Flags().StringVar(&taskAttachType, "type", "", "Content type")
	taskAttachCmd.Flags().Int64Var(&taskAttachSize, "size", 0, "Size in bytes")

	// task show flags
	taskShowCmd.Flags().BoolVar(&taskShowJSON, "json", false, "Output as JSON")

	// task list flags
	taskListCmd.Flags().StringVar(&taskListProject, "project", "", "Filter by project id")
	taskListCmd.Flags().StringVar(&taskListStatus, "status", "", "Filter by status")
	taskListCmd.Flags().StringVar(&taskListSearch, "search", "", "Filter by title/description substring")
	taskListCmd.Flags().BoolVar(&taskListJSON, "json", false, "Output as JSON")

	aliasFlags(map[string]string{"desc": "description"}, taskCreateCmd, taskUpdateCmd)
}

func runTaskCreate(cmd *cobra.Command, args []string) error {
	a, err := openApp()
	if err != nil {
		return err
	}
	defer a.Close()

	projectID, err := a.resolveID(taskCreateProject)
	if err != nil {
		return err
	}

	draft := tracker.TaskDraft{
		Title:       args[0],
		Description: taskCreateDescription,
		Status:      tracker.TaskStatus(taskCreateStatus),
		Priority:    tracker.Priority(taskCreatePriority),
		AssigneeID:  taskCreateAssignee,
		ProjectID:   projectID,
		Tags:        taskCreateTags,
	}

	if taskCreateDue != "" {
		due, err := parseDate(taskCreateDue)
		if err != nil {
			return err
		}
		draft.DueDate = &due
	}

	created, err := a.store.CreateTask(cmd.Context(), draft)
	if err != nil {
		return err
	}

	fmt.Printf("Created task %s: %s\n", a.highlight(created.ID), created.Title)
	return nil
}

func runTaskUpdate(cmd *cobra.Command, args []string) error {
	a, err := openApp()
	if err != nil {
		return err
	}
	defer a.Close()

	id, err := a.resolveID(args[0])
	if err != nil {
		return err
	}

	patch := tracker.TaskPatch{}
	if cmd.Flags().Changed("title") {
		patch.Title = &taskUpdateTitle
	}
	if cmd.Flags().Changed("description") {
		patch.Description = &taskUpdateDescription
	}
	if cmd.Flags().Changed("status") {
		status := tracker.TaskStatus(taskUpdateStatus)
		patch.Status = &status
	}
	if cmd.Flags().Changed("priority") {
		priority := tracker.Priority(taskUpdatePriority)
		patch.Priority = &priority
	}
	if cmd.Flags().Changed("project") {
		projectID, err := a.resolveID(taskUpdateProject)
		if err != nil {
			return err
		}
		patch.ProjectID = &projectID
	}
	if cmd.Flags().Changed("assignee") {
		patch.AssigneeID = &taskUpdateAssignee
	}
	if cmd.Flags().Changed("due") {
		due, err := parseDate(taskUpdateDue)
		if err != nil {
			return err
		}
		patch.DueDate = &due
	}
	if cmd.Flags().Changed("tag") {
		patch.Tags = &taskUpdateTags
	}

	updated, err := a.store.UpdateTask(cmd.Context(), id, patch)
	if err != nil {
		return err
	}

	fmt.Printf("Updated task %s: %s\n", a.highlight(updated.ID), updated.Title)
	return nil
}

func runTaskMove(cmd *cobra.Command, args []string) error {
	a, err := openApp()
	if err != nil {
		return err
	}
	defer a.Close()

	id, err := a.resolveID(args[0])
	if err != nil {
		return err
	}

	target := tracker.TaskStatus(args[1])
	if err := moveTask(cmd.Context(), a.store, id, target); err != nil {
		return err
	}

	fmt.Printf("Moved task %s to %s\n", a.highlight(id), target)
	return nil
}

func runTaskDelete(cmd *cobra.Command, args []string) error {
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
		if err := a.store.DeleteTask(cmd.Context(), id); err != nil {
			return err
		}
		fmt.Printf("Deleted task %s\n", id)
	}
	return nil
}

func runTaskComment(cmd *cobra.Command, args []string) error {
	a, err := openApp()
	if err != nil {
		return err
	}
	defer a.Close()

	id, err := a.resolveID(args[0])
	if err != nil {
		return err
	}

	if _, err := a.store.AddComment(cmd.Context(), id, a.user.ID, args[1]); err != nil {
		return err
	}

	fmt.Printf("Commented on task %s\n", a.highlight(id))
	return nil
}

func runTaskAttach(cmd *cobra.Command, args []string) error {
	a, err := openApp()
	if err != nil {
		return err
	}
	defer a.Close()

	id, err := a.resolveID(args[0])
	if err != nil {
		return err
	}

	name := taskAttachName
	if name == "" {
		name = args[1]
	}

	attachment, err := a.store.AddAttachment(cmd.Context(), id, tracker.AttachmentDraft{
		Name:        name,
		Size:        taskAttachSize,
		ContentType: taskAttachType,
		URL:         args[1],
		UploadedBy:  a.user.ID,
	})
	if err != nil {
		return err
	}

	fmt.Printf("Attached %s to task %s\n", attachment.Name, a.highlight(id))
	return nil
}

func runTaskShow(cmd *cobra.Command, args []string) error {
	a, err := openApp()
	if err != nil {
		return err
	}
	defer a.Close()

	id, err := a.resolveID(args[0])
	if err != nil {
		return err
	}

	task, err := a.store.Task(cmd.Context(), id)
	if err != nil {
		return err
	}

	if taskShowJSON {
		return encodeJSONToStdout(task)
	}

	printTaskDetail(task, a.highlight)
	return nil
}

func runTaskList(cmd *cobra.Command, args []string) error {
	a, err := openApp()
	if err != nil {
		return err
	}
	defer a.Close()

	filter := tracker.TaskFilter{Search: taskListSearch}
	if taskListProject != "" {
		projectID, err := a.resolveID(taskListProject)
		if err != nil {
			return err
		}
		filter.ProjectID = projectID
	}
	if taskListStatus != "" {
		status := tracker.TaskStatus(taskListStatus)
		filter.Status = &status
	}

	tasks, err := a.store.Tasks(cmd.Context(), filter)
	if err != nil {
		return err
	}

	if taskListJSON {
		return encodeJSONToStdout(tasks)
	}

	printTaskTable(tasks, a.store.IDIndex().PrefixLengths())
	return nil
}
