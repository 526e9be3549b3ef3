package cmd

import (
	"testing"

	"github.com/spf13/cobra"
)

func freshRuleCmd() *cobra.Command {
	c := &cobra.Command{Use: "x"}
	addRuleFlags(c)
	return c
}

func TestRuleFromFlagsDefaults(t *testing.T) {
	tmp := t.TempDir()
	t.Setenv("HOME", tmp)
	t.Setenv("USERPROFILE", tmp)

	rule, settings, err := ruleFromFlags(freshRuleCmd())
	if err != nil {
		t.Fatalf("ruleFromFlags: %v", err)
	}
	if rule.Match != settings.Match || rule.Match != `.*\.jpeg$` {
		t.Fatalf("expected configured match, got %q", rule.Match)
	}
	if rule.Rename != `(jpeg)` || rule.Replace != "jpg" {
		t.Fatalf("expected configured rename/replace, got %q %q", rule.Rename, rule.Replace)
	}
}

func TestRuleFromFlagsOverrides(t *testing.T) {
	tmp := t.TempDir()
	t.Setenv("HOME", tmp)
	t.Setenv("USERPROFILE", tmp)

	c := freshRuleCmd()
	if err := c.Flags().Set("match", `.*\.png$`); err != nil {
		t.Fatalf("set match: %v", err)
	}
	if err := c.Flags().Set("rename", `(png)`); err != nil {
		t.Fatalf("set rename: %v", err)
	}

	rule, _, err := ruleFromFlags(c)
	if err != nil {
		t.Fatalf("ruleFromFlags: %v", err)
	}
	if rule.Match != `.*\.png$` || rule.Rename != `(png)` {
		t.Fatalf("flags should override settings, got %q %q", rule.Match, rule.Rename)
	}
	// replace was not given, keeps the configured default
	if rule.Replace != "jpg" {
		t.Fatalf("expected configured replace, got %q", rule.Replace)
	}
}

func TestRuleFromFlagsExplicitEmptyReplace(t *testing.T) {
	tmp := t.TempDir()
	t.Setenv("HOME", tmp)
	t.Setenv("USERPROFILE", tmp)

	c := freshRuleCmd()
	if err := c.Flags().Set("replace", ""); err != nil {
		t.Fatalf("set replace: %v", err)
	}

	rule, _, err := ruleFromFlags(c)
	if err != nil {
		t.Fatalf("ruleFromFlags: %v", err)
	}
	// -s "" strips the captured group instead of falling back to config
	if rule.Replace != "" {
		t.Fatalf("explicit empty replace lost, got %q", rule.Replace)
	}
}
