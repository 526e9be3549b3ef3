package renamer

import (
	"context"
	"fmt"
	"os"
	"os/exec"
	"strings"

	"github.com/kballard/go-shellquote"

	"github.com/VoxDroid/renamr/internal/security"
)

// sanitizeHook normalizes unicode punctuation editors insert into pasted
// command lines (smart quotes, NBSP, zero-width runes) and drops NULs.
func sanitizeHook(s string) string {
	r := strings.NewReplacer(
		"‘", "'",
		"’", "'",
		"“", "\"",
		"”", "\"",
		" ", " ",
		"​", "",
	)
	rp := r.Replace(s)
	return strings.Map(func(r rune) rune {
		if r == 0 {
			return -1
		}
		return r
	}, rp)
}

func validateHook(command string) (string, error) {
	command = strings.TrimSpace(sanitizeHook(command))
	if command == "" {
		return "", fmt.Errorf("invalid hook: command cannot be empty")
	}
	if strings.Contains(command, "\n") {
		return "", fmt.Errorf("invalid hook: contains newline characters; the hook must be a single line")
	}
	if strings.IndexFunc(command, func(r rune) bool { return r == 0 || (r < 32 && r != '\t') || r == 0x7f }) != -1 {
		return "", fmt.Errorf("invalid hook: contains control characters; remove non-printable characters")
	}
	return command, nil
}

// splitHookArgs splits a command string into tokens respecting single and
// double quotes.
func splitHookArgs(s string) []string {
	if toks, err := shellquote.Split(s); err == nil {
		return toks
	}
	// Fall back to simple whitespace splitting if the splitter fails.
	return strings.Fields(s)
}

// RunHook runs the post-apply command once, in the base directory, with the
// batch metadata exposed through RENAMR_BATCH, RENAMR_RENAMED and
// RENAMR_BASE. The command is checked against destructive patterns first.
func RunHook(ctx context.Context, base, command string, batchID int64, renamed int) error {
	command, err := validateHook(command)
	if err != nil {
		return err
	}
	if err := security.CheckAllowed(command); err != nil {
		return err
	}

	toks := splitHookArgs(command)
	if len(toks) == 0 {
		return fmt.Errorf("invalid hook: no command tokens")
	}
	cmd := exec.CommandContext(ctx, toks[0], toks[1:]...)
	cmd.Dir = base
	cmd.Env = append(os.Environ(),
		fmt.Sprintf("RENAMR_BATCH=%d", batchID),
		fmt.Sprintf("RENAMR_RENAMED=%d", renamed),
		fmt.Sprintf("RENAMR_BASE=%s", base),
	)
	out, err := cmd.CombinedOutput()
	if err != nil {
		trimmed := strings.TrimSpace(string(out))
		if trimmed != "" {
			return fmt.Errorf("hook failed: %w (output=%q)", err, trimmed)
		}
		return fmt.Errorf("hook failed: %w", err)
	}
	return nil
}
