package cmd

import (
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "coursecraft",
	Short: "Course authoring backend",
	Long:  "coursecraft runs the instructor-facing course authoring service.",
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}
