// Package scanner discovers rename candidates under a base directory.
package scanner

import (
	"fmt"
	"io/fs"
	"os"
	"path"
	"path/filepath"
	"regexp"
)

// Scan walks base recursively and returns the base-relative slash paths of
// regular files whose full path matches matcher and none of the ignore
// patterns. Results come back in walk order (lexical).
func Scan(base string, matcher *regexp.Regexp, ignore []*regexp.Regexp) ([]string, error) {
	info, err := os.Stat(base)
	if err != nil {
		return nil, fmt.Errorf("stat base: %w", err)
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("base is not a directory: %s", base)
	}

	baseSlash := filepath.ToSlash(base)
	var out []string
	err = fs.WalkDir(os.DirFS(base), ".", func(rel string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if rel == "." || d.IsDir() {
			return nil
		}
		if rel == IgnoreFile {
			return nil
		}
		for _, re := range ignore {
			if re.MatchString(rel) {
				return nil
			}
		}
		// Match against the full path so matchers may anchor on the base
		// directory, as well as on the relative part.
		full := path.Join(baseSlash, rel)
		if matcher.MatchString(full) {
			out = append(out, rel)
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("walk %s: %w", base, err)
	}
	return out, nil
}
