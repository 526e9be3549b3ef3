package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/VoxDroid/renamr/internal/db"
	"github.com/VoxDroid/renamr/internal/importer"
)

var importCmd = &cobra.Command{
	Use:   "import",
	Short: "Import an exported journal database into the active environment",
}

var importDbCmd = &cobra.Command{
	Use:   "db <file> [--overwrite]",
	Short: "Replace the active journal database with an exported file (dangerous)",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		src := args[0]
		overwrite, _ := cmd.Flags().GetBool("overwrite")
		if _, err := os.Stat(src); err != nil {
			return fmt.Errorf("source DB not found: %w", err)
		}
		if err := importer.ImportDatabase(src, overwrite); err != nil {
			return err
		}
		cmd.Printf("imported database from %s\n", src)
		return nil
	},
}

var importMergeCmd = &cobra.Command{
	Use:   "merge <file>",
	Short: "Merge batches from an exported file into the active journal (fresh IDs)",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		src := args[0]
		if _, err := os.Stat(src); err != nil {
			return fmt.Errorf("source file not found: %w", err)
		}
		// Ensure destination DB exists and close the connection immediately to avoid file locks
		dbConn, err := db.InitDB()
		if err != nil {
			return err
		}
		_ = dbConn.Close()
		if err := importer.ImportBatches(src); err != nil {
			return err
		}
		cmd.Printf("merged batches from %s\n", src)
		return nil
	},
}

func init() {
	importDbCmd.Flags().Bool("overwrite", false, "Overwrite the active database file if it exists")
	importCmd.AddCommand(importDbCmd)
	importCmd.AddCommand(importMergeCmd)
	rootCmd.AddCommand(importCmd)
}
