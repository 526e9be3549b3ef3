// Package security screens post-apply hook commands. The hook runs inside
// the directory a batch just renamed, so the screen targets commands that
// would destroy that tree, the journal under ~/.renamr, or the machine.
package security

import (
	"errors"
	"fmt"
	"regexp"
	"strings"
)

type rule struct {
	re     *regexp.Regexp
	reason string
}

var blockedRules = []rule{
	// recursive force deletes would take the renamed tree with them
	{regexp.MustCompile(`(?i)\brm\s+-(?:[a-z]*r[a-z]*f|[a-z]*f[a-z]*r)[a-z]*\b`), "recursive force delete"},
	// the hook runs in the base directory; rm on absolute or home paths
	// reaches outside it
	{regexp.MustCompile(`(?i)\brm\s+(?:-[a-z]+\s+)*[~/]`), "delete outside the base directory"},
	// touching the journal defeats rollback
	{regexp.MustCompile(`(?i)(?:\brm\b|>)[^|;&]*\.renamr\b`), "journal removal or overwrite"},
	// a forced git clean or hard reset discards the renames just applied
	{regexp.MustCompile(`(?i)\bgit\s+clean\b[^|;&]*-[a-z]*f`), "git clean removes renamed files"},
	{regexp.MustCompile(`(?i)\bgit\s+reset\s+--hard\b`), "git reset --hard discards staged renames"},
	// disk and device destruction
	{regexp.MustCompile(`(?i)\bmkfs(\.[a-z0-9]+)?\b`), "filesystem format"},
	{regexp.MustCompile(`(?i)\bdd\b.*\bof=/dev/`), "raw device write"},
	{regexp.MustCompile(`(?i)\b(wipefs|shred)\b`), "disk wipe"},
	// fork bombs (e.g. :(){ :|:& };:)
	{regexp.MustCompile(`:\(\)\s*\{`), "fork bomb"},
	{regexp.MustCompile(`(?i)\b(shutdown|reboot|poweroff|halt)\b`), "system power command"},
}

// CheckAllowed returns nil when the hook command passes the screen, or an
// error naming the rule it tripped. The screen is conservative and not
// exhaustive; it is a guard against pasted accidents, not a sandbox.
func CheckAllowed(command string) error {
	cmd := strings.TrimSpace(command)
	if cmd == "" {
		return errors.New("empty hook command")
	}
	for _, r := range blockedRules {
		if r.re.MatchString(cmd) {
			return fmt.Errorf("hook command blocked: %s", r.reason)
		}
	}
	return nil
}
