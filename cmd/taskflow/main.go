// Package main implements the taskflow CLI tool.
package main

import (
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

func main() {
	// A .env in the working directory supplies TASKFLOW_* overrides.
	// Missing files are fine.
	_ = godotenv.Load()

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "taskflow",
	Short: "Taskflow - project and task tracking from the terminal",
}
