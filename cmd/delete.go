package cmd

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/VoxDroid/renamr/internal/db"
	"github.com/VoxDroid/renamr/internal/journal"
)

var deleteCmd = &cobra.Command{
	Use:   "delete <batch-id>",
	Short: "Delete a batch from the journal",
	Long:  "Delete a batch and its entries from the journal. The files themselves are untouched; a deleted batch can no longer be rolled back.",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		id, err := strconv.ParseInt(args[0], 10, 64)
		if err != nil {
			return fmt.Errorf("invalid batch id: %s", args[0])
		}
		dbConn, err := db.InitDB()
		if err != nil {
			return err
		}
		defer func() { _ = dbConn.Close() }()

		r := journal.NewRepository(dbConn)
		b, err := r.GetBatch(id)
		if err != nil {
			return err
		}
		if b == nil {
			return fmt.Errorf("batch not found: %d", id)
		}
		if err := r.DeleteBatch(id); err != nil {
			return err
		}
		cmd.Printf("deleted batch %d (%d entries)\n", id, len(b.Entries))
		return nil
	},
}

func init() {
	rootCmd.AddCommand(deleteCmd)
}
