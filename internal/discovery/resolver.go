package discovery

import (
	"io/fs"
	"path/filepath"
)

// Resolver locates the expected-output fixture for an input file.
type Resolver struct {
	expectedRoot string
	prefix       string
}

// NewResolver creates a Resolver searching expectedRoot for files named
// prefix + <input base name>.
func NewResolver(expectedRoot, prefix string) *Resolver {
	return &Resolver{expectedRoot: expectedRoot, prefix: prefix}
}

// FindExpected searches the expected-results tree recursively for the
// fixture matching inputPath, first match wins. A missing fixture is
// not an error: found is false and path empty.
func (r *Resolver) FindExpected(inputPath string) (path string, found bool) {
	want := r.prefix + filepath.Base(inputPath)

	// SkipAll stops the walk on the first hit.
	_ = filepath.WalkDir(r.expectedRoot, func(p string, d fs.DirEntry, err error) error {
		if err != nil {
			// Unreadable subtrees are skipped, not fatal: absence of a
			// fixture is a per-case failure, never a run abort.
			if d != nil && d.IsDir() {
				return fs.SkipDir
			}
			return nil
		}
		if !d.IsDir() && d.Name() == want {
			path = p
			found = true
			return fs.SkipAll
		}
		return nil
	})
	return path, found
}
