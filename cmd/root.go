package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "renamr",
	Short: "renamr is an interactive, journal-backed bulk file renamer",
	Long:  "renamr previews and applies regex-based renames under a directory, journaling every batch so it can be rolled back",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Println("renamr: run 'renamr --help' to see available commands")
	},
}

// Execute executes the root command
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
