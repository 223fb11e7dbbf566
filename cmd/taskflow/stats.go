package main

import (
	"fmt"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/spf13/cobra"

	"github.com/taskflowhq/taskflow/internal/ui"
	"github.com/taskflowhq/taskflow/stats"
	"github.com/taskflowhq/taskflow/tracker"
)

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show the dashboard summary",
	RunE:  runStats,
}

var statsJSON bool

func init() {
	rootCmd.AddCommand(statsCmd)
	statsCmd.Flags().BoolVar(&statsJSON, "json", false, "Output as JSON")
}

func runStats(cmd *cobra.Command, args []string) error {
	a, err := openApp()
	if err != nil {
		return err
	}
	defer a.Close()

	projects, err := a.store.Projects(cmd.Context())
	if err != nil {
		return err
	}
	tasks, err := a.store.Tasks(cmd.Context(), tracker.TaskFilter{})
	if err != nil {
		return err
	}

	dashboard := stats.Compute(projects, tasks, time.Now())

	if statsJSON {
		return encodeJSONToStdout(struct {
			stats.Dashboard
			Progress []stats.ProgressRow `json:"progress"`
		}{dashboard, stats.ProjectProgress(projects)})
	}

	fmt.Printf("Projects:     %s total, %s active\n",
		humanize.Comma(int64(dashboard.TotalProjects)), humanize.Comma(int64(dashboard.ActiveProjects)))
	fmt.Printf("Tasks:        %s completed, %s pending\n",
		humanize.Comma(int64(dashboard.CompletedTasks)), humanize.Comma(int64(dashboard.PendingTasks)))
	fmt.Printf("Overdue:      %s\n", humanize.Comma(int64(dashboard.OverdueTasks)))
	fmt.Printf("Team members: %s\n", humanize.Comma(int64(dashboard.TeamMembers)))

	rows := stats.ProjectProgress(projects)
	if len(rows) == 0 {
		return nil
	}

	fmt.Println()
	builder := ui.NewTableBuilder([]string{"PROJECT", "STATUS", "PROGRESS"}, len(rows))
	for _, row := range rows {
		builder.AddRow(ui.Truncate(row.Name), string(row.Status), progressBar(row.Progress))
	}
	fmt.Print(builder.String())
	return nil
}

func progressBar(progress int) string {
	const width = 10
	filled := progress * width / 100
	bar := ""
	for i := 0; i < width; i++ {
		if i < filled {
			bar += "#"
		} else {
			bar += "-"
		}
	}
	return fmt.Sprintf("[%s] %3d%%", bar, progress)
}
