package scanner

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"regexp"
	"strings"
)

// IgnoreFile is the per-directory exclusion file read from the base directory.
const IgnoreFile = ".renamrignore"

// ReadIgnore reads exclusion patterns from r until EOF. Non-empty,
// non-comment lines are compiled as regular expressions matched against
// base-relative paths. Lines starting with '#' are comments.
func ReadIgnore(r io.Reader) ([]*regexp.Regexp, error) {
	s := bufio.NewScanner(r)
	var out []*regexp.Regexp
	for s.Scan() {
		line := strings.TrimSpace(s.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		re, err := regexp.Compile(line)
		if err != nil {
			return nil, fmt.Errorf("ignore pattern %q: %w", line, err)
		}
		out = append(out, re)
	}
	if err := s.Err(); err != nil {
		return nil, fmt.Errorf("read ignore file: %w", err)
	}
	return out, nil
}

// LoadIgnore reads the base directory's ignore file when present. A missing
// file yields no patterns.
func LoadIgnore(base string) ([]*regexp.Regexp, error) {
	f, err := os.Open(filepath.Join(base, IgnoreFile))
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, err
	}
	defer func() { _ = f.Close() }()
	return ReadIgnore(f)
}
