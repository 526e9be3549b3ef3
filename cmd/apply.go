package cmd

import (
	"bufio"
	"strings"

	"github.com/spf13/cobra"

	"github.com/VoxDroid/renamr/internal/db"
	"github.com/VoxDroid/renamr/internal/journal"
	"github.com/VoxDroid/renamr/internal/renamer"
	"github.com/VoxDroid/renamr/internal/user"
)

var applyCmd = &cobra.Command{
	Use:   "apply [dir]",
	Short: "Apply a rename rule and journal the batch",
	Long:  "Apply a rename rule under a directory. Every batch is journaled so it can be rolled back with `renamr rollback`.",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		rule, _, err := ruleFromFlags(cmd)
		if err != nil {
			return err
		}
		plan, err := renamer.Preview(baseFromArgs(args), rule)
		if err != nil {
			return err
		}
		if len(plan.Changes) == 0 {
			cmd.Println("no files match")
			return nil
		}

		yes, _ := cmd.Flags().GetBool("yes")
		if !yes {
			cmd.Printf("rename %d of %d files under %s? [y/N]: ", plan.ChangedCount(), len(plan.Changes), plan.Base)
			rdr := bufio.NewReader(cmd.InOrStdin())
			ansRaw, err := rdr.ReadString('\n')
			if err != nil {
				return err
			}
			ans := strings.ToLower(strings.TrimSpace(ansRaw))
			if ans != "y" && ans != "yes" {
				cmd.Println("aborted")
				return nil
			}
		}

		opts := renamer.Options{}
		if useGit, _ := cmd.Flags().GetBool("git"); useGit {
			mv, err := renamer.NewGitMover(plan.Base)
			if err != nil {
				return err
			}
			opts.Mover = mv
		}
		opts.Hook, _ = cmd.Flags().GetString("exec")
		if p, ok, err := user.GetProfile(); err != nil {
			return err
		} else if ok {
			opts.AuthorName = p.Name
			opts.AuthorEmail = p.Email
		}

		dbConn, err := db.InitDB()
		if err != nil {
			return err
		}
		defer func() { _ = dbConn.Close() }()

		repo := journal.NewRepository(dbConn)
		sum, err := renamer.Apply(cmd.Context(), repo, plan, opts)
		if err != nil {
			return err
		}
		cmd.Printf("batch %d: %d renamed, %d skipped, %d failed, %d unchanged\n",
			sum.BatchID, sum.Renamed, sum.Skipped, sum.Failed, sum.Unchanged)
		return nil
	},
}

func init() {
	addRuleFlags(applyCmd)
	applyCmd.Flags().BoolP("yes", "y", false, "Apply without the confirmation prompt")
	applyCmd.Flags().Bool("git", false, "Move files through the enclosing git worktree (stages the renames)")
	applyCmd.Flags().String("exec", "", "Command to run in the base directory after the batch")
	rootCmd.AddCommand(applyCmd)
}
