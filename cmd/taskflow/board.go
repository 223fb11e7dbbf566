package main

import (
	"github.com/spf13/cobra"

	"github.com/taskflowhq/taskflow/internal/boardtui"
)

var boardCmd = &cobra.Command{
	Use:   "board",
	Short: "Open the interactive kanban board",
	Long: `Open the interactive kanban board.

Cards are grabbed with space, carried between columns with the movement
keys, and dropped with space. Esc cancels a move without touching anything.`,
	RunE: runBoard,
}

var boardProject string

func init() {
	rootCmd.AddCommand(boardCmd)
	boardCmd.Flags().StringVar(&boardProject, "project", "", "Show only one project's tasks")
}

func runBoard(cmd *cobra.Command, args []string) error {
	a, err := openApp()
	if err != nil {
		return err
	}
	defer a.Close()

	projectID := ""
	if boardProject != "" {
		projectID, err = a.resolveID(boardProject)
		if err != nil {
			return err
		}
	}

	return boardtui.Run(cmd.Context(), a.store, projectID)
}
