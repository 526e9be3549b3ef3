// Package rex compiles and validates the user-supplied rename patterns.
package rex

import (
	"fmt"
	"regexp"
	"strings"
)

// CompileMatcher compiles the file-matching pattern. Patterns that do not end
// with `$` get one appended so a bare extension pattern anchors to the end of
// the path.
func CompileMatcher(expr string) (*regexp.Regexp, error) {
	expr = strings.TrimSpace(SanitizePattern(expr))
	if expr == "" {
		return nil, fmt.Errorf("invalid matcher: pattern cannot be empty")
	}
	if !strings.HasSuffix(expr, "$") {
		expr += "$"
	}
	re, err := regexp.Compile(expr)
	if err != nil {
		return nil, fmt.Errorf("compile matcher %q: %w", expr, err)
	}
	return re, nil
}

// CompileRenamer compiles the pattern that selects the fragment to rewrite.
// Exactly one capture group is required: the group marks what the replacement
// string substitutes.
func CompileRenamer(expr string) (*regexp.Regexp, error) {
	expr = strings.TrimSpace(SanitizePattern(expr))
	if expr == "" {
		return nil, fmt.Errorf("invalid renamer: pattern cannot be empty")
	}
	re, err := regexp.Compile(expr)
	if err != nil {
		return nil, fmt.Errorf("compile renamer %q: %w", expr, err)
	}
	switch n := re.NumSubexp(); {
	case n == 0:
		return nil, fmt.Errorf("invalid renamer %q: needs a capture group marking the part to rename", expr)
	case n > 1:
		return nil, fmt.Errorf("invalid renamer %q: only a single capture group is supported", expr)
	}
	return re, nil
}

// SanitizePattern normalizes common unicode characters that editors insert
// into pasted patterns (smart quotes, NBSP) and removes zero-width and
// control runes.
func SanitizePattern(s string) string {
	r := strings.NewReplacer(
		"‘", "'", // left single quote
		"’", "'", // right single quote
		"“", "\"", // left double quote
		"”", "\"", // right double quote
		" ", " ", // NO-BREAK SPACE
		"​", "", // zero width space
		"‌", "", // zero width non-joiner
		"‍", "", // zero width joiner
		"\uFEFF", "", // BOM
	)
	rp := r.Replace(s)
	return strings.Map(func(r rune) rune {
		if r == 0 || (r < 32 && r != '\t') || r == 0x7f {
			return -1
		}
		return r
	}, rp)
}
