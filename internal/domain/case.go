package domain

import (
	"path/filepath"
	"strings"
)

// TestCase represents one input file to be run against the external command
type TestCase struct {
	Path     string // Full path to the input file
	Dir      string // Directory containing the input file
	FileName string // Just the filename
}

// NewTestCase builds a TestCase from an input file path
func NewTestCase(path string) TestCase {
	return TestCase{
		Path:     path,
		Dir:      filepath.Dir(path),
		FileName: filepath.Base(path),
	}
}

// ShortPath returns a truncated display form of a full path: the last
// two segments prefixed with "...". Paths with fewer than two
// separators are returned unchanged.
func ShortPath(fullPath string) string {
	sep := string(filepath.Separator)
	if strings.Count(fullPath, sep) >= 2 {
		parts := strings.Split(fullPath, sep)
		return "..." + sep + strings.Join(parts[len(parts)-2:], sep)
	}
	return fullPath
}

// DisplayPath returns the path form used in failure reports: the full
// path when verbose is set, the shortened form otherwise.
func (tc TestCase) DisplayPath(verbose bool) string {
	if verbose {
		return tc.Path
	}
	return ShortPath(tc.Path)
}
