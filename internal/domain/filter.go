package domain

import (
	"strings"

	ignore "github.com/sabhiram/go-gitignore"

	m "github.com/commitkind/commitkind/internal/model"
)

// PathFilter drops changed paths matching gitignore-style exclude patterns.
// A nil *PathFilter excludes nothing.
type PathFilter struct {
	patterns []string
	matcher  *ignore.GitIgnore
}

// NewPathFilter compiles patterns ("tests/", "*_pb2.py", "!keep.py").
// Blank patterns are ignored.
func NewPathFilter(patterns ...string) *PathFilter {
	var lines []string

	for _, pattern := range patterns {
		if strings.TrimSpace(pattern) != "" {
			lines = append(lines, pattern)
		}
	}

	if len(lines) == 0 {
		return nil
	}

	return &PathFilter{
		patterns: lines,
		matcher:  ignore.CompileIgnoreLines(lines...),
	}
}

// Excluded reports whether path matches the exclude patterns.
func (f *PathFilter) Excluded(path m.Path) bool {
	if f == nil {
		return false
	}

	return f.matcher.MatchesPath(string(path))
}

// ExcludedRecord reports whether every path a record touches is excluded.
// A rename out of an excluded directory still counts.
func (f *PathFilter) ExcludedRecord(record m.ChangeRecord) bool {
	if f == nil {
		return false
	}

	if after, ok := record.AfterPath(); ok && !f.Excluded(after) {
		return false
	}

	if before, ok := record.BeforePath(); ok && !f.Excluded(before) {
		return false
	}

	return true
}

// Patterns returns the compiled patterns.
func (f *PathFilter) Patterns() []string {
	if f == nil {
		return nil
	}

	return append([]string(nil), f.patterns...)
}
