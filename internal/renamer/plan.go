// Package renamer builds and applies rename plans.
package renamer

import (
	"os"
	"path/filepath"

	"github.com/VoxDroid/renamr/internal/rex"
	"github.com/VoxDroid/renamr/internal/scanner"
)

// Conflict kinds set on a Change at plan time.
const (
	ConflictExists    = "exists"    // destination already on disk
	ConflictDuplicate = "duplicate" // an earlier change claims the same destination
)

// Rule is the pattern triple driving a rename run.
type Rule struct {
	Match   string
	Rename  string
	Replace string
}

// Change is one planned rename. Src and Dst are base-relative slash paths.
// Changed is false when the renamer leaves the path untouched.
type Change struct {
	Src      string
	Dst      string
	Changed  bool
	Conflict string
}

// Plan holds the changes computed for a base directory along with the rule
// that produced them, so applying can journal the rule verbatim.
type Plan struct {
	Base    string
	Rule    Rule
	Changes []Change
}

// ChangedCount returns the number of changes that would actually rename and
// are free of conflicts.
func (p *Plan) ChangedCount() int {
	n := 0
	for _, c := range p.Changes {
		if c.Changed && c.Conflict == "" {
			n++
		}
	}
	return n
}

// Preview scans base with the rule's matcher and computes the change for
// every candidate. The renamer's replacement applies to the base-relative
// path, so directory components may be rewritten too.
func Preview(base string, rule Rule) (*Plan, error) {
	abs, err := filepath.Abs(base)
	if err != nil {
		return nil, err
	}
	matcher, err := rex.CompileMatcher(rule.Match)
	if err != nil {
		return nil, err
	}
	ren, err := rex.CompileRenamer(rule.Rename)
	if err != nil {
		return nil, err
	}
	ignore, err := scanner.LoadIgnore(abs)
	if err != nil {
		return nil, err
	}
	paths, err := scanner.Scan(abs, matcher, ignore)
	if err != nil {
		return nil, err
	}

	plan := &Plan{Base: abs, Rule: rule}
	claimed := map[string]bool{}
	for _, rel := range paths {
		dst := ren.ReplaceAllString(rel, rule.Replace)
		c := Change{Src: rel, Dst: dst, Changed: dst != rel}
		if c.Changed {
			switch {
			case pathExists(filepath.Join(abs, filepath.FromSlash(dst))):
				c.Conflict = ConflictExists
			case claimed[dst]:
				c.Conflict = ConflictDuplicate
			default:
				claimed[dst] = true
			}
		}
		plan.Changes = append(plan.Changes, c)
	}
	return plan, nil
}

func pathExists(p string) bool {
	_, err := os.Stat(p)
	return err == nil
}
