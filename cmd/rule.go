package cmd

import (
	"github.com/spf13/cobra"

	"github.com/VoxDroid/renamr/internal/config"
	"github.com/VoxDroid/renamr/internal/renamer"
)

// addRuleFlags registers the shared pattern flags on a command.
func addRuleFlags(c *cobra.Command) {
	c.Flags().StringP("match", "m", "", "Matcher regex selecting candidate paths (anchored at the end)")
	c.Flags().StringP("rename", "r", "", "Renamer regex with exactly one capture group")
	c.Flags().StringP("replace", "s", "", "Replacement for the captured group")
}

// ruleFromFlags builds the rename rule from flags, falling back to the
// configured defaults for anything not given.
func ruleFromFlags(cmd *cobra.Command) (renamer.Rule, config.Settings, error) {
	settings, err := config.LoadSettings()
	if err != nil {
		return renamer.Rule{}, config.Settings{}, err
	}
	rule := renamer.Rule{Match: settings.Match, Rename: settings.Rename, Replace: settings.Replace}
	if v, _ := cmd.Flags().GetString("match"); v != "" {
		rule.Match = v
	}
	if v, _ := cmd.Flags().GetString("rename"); v != "" {
		rule.Rename = v
	}
	if cmd.Flags().Changed("replace") {
		rule.Replace, _ = cmd.Flags().GetString("replace")
	}
	return rule, settings, nil
}

// baseFromArgs returns the base directory argument, defaulting to ".".
func baseFromArgs(args []string) string {
	if len(args) > 0 {
		return args[0]
	}
	return "."
}
