package cmd

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/VoxDroid/renamr/internal/db"
	"github.com/VoxDroid/renamr/internal/journal"
	"github.com/VoxDroid/renamr/internal/renamer"
)

var rollbackCmd = &cobra.Command{
	Use:   "rollback <batch-id>",
	Short: "Restore a journaled batch by renaming its files back",
	Long:  "Restore a journaled batch in reverse order. Entries whose original path re-exists are skipped so rollback never overwrites.",
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
		var mv journal.Mover = renamer.OSMover{}
		if useGit, _ := cmd.Flags().GetBool("git"); useGit {
			b, err := r.GetBatch(id)
			if err != nil {
				return err
			}
			if b == nil {
				return fmt.Errorf("batch not found: %d", id)
			}
			gm, err := renamer.NewGitMover(b.BasePath)
			if err != nil {
				return err
			}
			mv = gm
		}

		res, err := r.Rollback(id, mv)
		if err != nil {
			return err
		}
		cmd.Printf("batch %d rolled back: %d restored, %d skipped\n", id, res.Restored, res.Skipped)
		return nil
	},
}

func init() {
	rollbackCmd.Flags().Bool("git", false, "Move files through the enclosing git worktree")
	rootCmd.AddCommand(rollbackCmd)
}
