package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/VoxDroid/renamr/internal/db"
	"github.com/VoxDroid/renamr/internal/journal"
)

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "List journaled rename batches, newest first",
	RunE: func(cmd *cobra.Command, _ []string) error {
		dbConn, err := db.InitDB()
		if err != nil {
			return err
		}
		defer func() { _ = dbConn.Close() }()

		r := journal.NewRepository(dbConn)
		textFilter, _ := cmd.Flags().GetString("filter")
		fuzzyFlag, _ := cmd.Flags().GetBool("fuzzy")
		var batches []journal.Batch
		if textFilter != "" {
			if fuzzyFlag {
				batches, err = r.FuzzySearchBatches(textFilter)
			} else {
				batches, err = r.SearchBatches(textFilter)
			}
			if err != nil {
				return err
			}
		} else {
			batches, err = r.ListBatches()
			if err != nil {
				return err
			}
		}

		out := cmd.OutOrStdout()
		if len(batches) == 0 {
			fmt.Fprintln(out, "no batches recorded")
			return nil
		}
		for _, b := range batches {
			state := ""
			if b.RolledBackAt.Valid {
				state = "\t(rolled back)"
			}
			fmt.Fprintf(out, "#%d\t%s\t%s\t%s -> %s%s\n", b.ID, b.CreatedAt, b.BasePath, b.Renamer, b.Replacement, state)
		}
		return nil
	},
}

func init() {
	historyCmd.Flags().String("filter", "", "Filter by text search over path and patterns")
	historyCmd.Flags().Bool("fuzzy", false, "Enable fuzzy matching for text filter")
	rootCmd.AddCommand(historyCmd)
}
