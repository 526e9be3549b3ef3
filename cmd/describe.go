package cmd

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/VoxDroid/renamr/internal/db"
	"github.com/VoxDroid/renamr/internal/journal"
)

var describeCmd = &cobra.Command{
	Use:   "describe <batch-id>",
	Short: "Show a journaled batch with every recorded rename",
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

		out := cmd.OutOrStdout()
		fmt.Fprintf(out, "batch #%d\n", b.ID)
		fmt.Fprintf(out, "base:    %s\n", b.BasePath)
		fmt.Fprintf(out, "match:   %s\n", b.Matcher)
		fmt.Fprintf(out, "rename:  %s -> %s\n", b.Renamer, b.Replacement)
		fmt.Fprintf(out, "created: %s\n", b.CreatedAt)
		if b.AuthorName.Valid {
			fmt.Fprintf(out, "author:  %s <%s>\n", b.AuthorName.String, b.AuthorEmail.String)
		}
		if b.RolledBackAt.Valid {
			fmt.Fprintf(out, "rolled back at %s\n", b.RolledBackAt.String)
		}
		for _, e := range b.Entries {
			fmt.Fprintf(out, "  %s\t->\t%s\t[%s]\n", e.Src, e.Dst, e.Status)
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(describeCmd)
}
