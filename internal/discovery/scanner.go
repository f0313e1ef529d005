package discovery

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// Scanner walks an input tree top-down, one directory at a time,
// handing each directory's candidate files to a callback.
type Scanner struct {
	filter        *Filter
	excludeHidden bool
	hiddenPrefix  string
}

// NewScanner creates a Scanner. When excludeHidden is set, directories
// whose name starts with hiddenPrefix are pruned from the walk.
func NewScanner(filter *Filter, excludeHidden bool, hiddenPrefix string) *Scanner {
	return &Scanner{
		filter:        filter,
		excludeHidden: excludeHidden,
		hiddenPrefix:  hiddenPrefix,
	}
}

// WalkFunc receives one visited directory and its filtered filenames
// (base names, lexical order). Returning an error aborts the walk.
type WalkFunc func(dir string, files []string) error

// Walk traverses root top-down and invokes fn for every directory,
// including directories with no candidate files.
func (s *Scanner) Walk(root string, fn WalkFunc) error {
	root = filepath.Clean(root)
	info, err := os.Stat(root)
	if err != nil {
		return fmt.Errorf("input path does not exist: %s", root)
	}
	if !info.IsDir() {
		return fmt.Errorf("input path is not a directory: %s", root)
	}
	return s.walk(root, fn)
}

func (s *Scanner) walk(dir string, fn WalkFunc) error {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return fmt.Errorf("read dir %s: %w", dir, err)
	}

	var files []string
	var subdirs []string
	for _, entry := range entries {
		name := entry.Name()
		if entry.IsDir() {
			if s.excludeHidden && strings.HasPrefix(name, s.hiddenPrefix) {
				continue
			}
			subdirs = append(subdirs, name)
			continue
		}
		if s.filter.Allowed(name) {
			files = append(files, name)
		}
	}

	if err := fn(dir, files); err != nil {
		return err
	}
	for _, sub := range subdirs {
		if err := s.walk(filepath.Join(dir, sub), fn); err != nil {
			return err
		}
	}
	return nil
}

// Count returns the number of candidate files under root, used to size
// the progress bar before a run.
func (s *Scanner) Count(root string) (int, error) {
	total := 0
	err := s.Walk(root, func(dir string, files []string) error {
		total += len(files)
		return nil
	})
	return total, err
}
