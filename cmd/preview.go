package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/VoxDroid/renamr/internal/renamer"
)

var previewCmd = &cobra.Command{
	Use:   "preview [dir]",
	Short: "Show what a rename rule would do without touching any files",
	Long:  "Show what a rename rule would do without touching any files. Example:\n  renamr preview ./photos -m '.*\\.jpeg$' -r '(jpeg)' -s jpg",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		rule, settings, err := ruleFromFlags(cmd)
		if err != nil {
			return err
		}
		plan, err := renamer.Preview(baseFromArgs(args), rule)
		if err != nil {
			return err
		}

		showAll, _ := cmd.Flags().GetBool("all")
		limit, _ := cmd.Flags().GetInt("limit")
		showUnchanged := settings.ShowUnchanged || showAll
		out := cmd.OutOrStdout()
		shown := 0
		skipped := 0
		for _, c := range plan.Changes {
			if !c.Changed && !showUnchanged {
				continue
			}
			if limit > 0 && shown >= limit {
				skipped++
				continue
			}
			marker := " "
			switch {
			case c.Conflict != "":
				marker = "!"
			case c.Changed:
				marker = ">"
			}
			if c.Changed {
				fmt.Fprintf(out, "%s %s\t->\t%s", marker, c.Src, c.Dst)
			} else {
				fmt.Fprintf(out, "%s %s", marker, c.Src)
			}
			if c.Conflict != "" {
				fmt.Fprintf(out, "\t(%s)", c.Conflict)
			}
			fmt.Fprintln(out)
			shown++
		}
		if shown == 0 && skipped == 0 {
			fmt.Fprintln(out, "no files match")
			return nil
		}
		if skipped > 0 {
			fmt.Fprintf(out, "… and %d more\n", skipped)
		}
		fmt.Fprintf(out, "%d of %d would be renamed\n", plan.ChangedCount(), len(plan.Changes))
		return nil
	},
}

func init() {
	addRuleFlags(previewCmd)
	previewCmd.Flags().Bool("all", false, "Show unchanged files even when configured off")
	previewCmd.Flags().Int("limit", 0, "Print at most N rows (0 = all)")
	rootCmd.AddCommand(previewCmd)
}
