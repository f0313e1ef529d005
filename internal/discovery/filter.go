package discovery

import "strings"

// Filter decides which filenames are test case candidates, by an
// allow-list of extensions.
type Filter struct {
	extensions []string
}

// NewFilter builds a Filter from a comma-separated extension list.
// Entries are trimmed and normalized to ".ext" form, so "txt, .json"
// yields [".txt" ".json"]. Empty entries are dropped.
func NewFilter(allowed string) *Filter {
	var exts []string
	for _, ext := range strings.Split(allowed, ",") {
		ext = strings.TrimSpace(ext)
		ext = strings.TrimPrefix(ext, ".")
		if ext == "" {
			continue
		}
		exts = append(exts, "."+ext)
	}
	return &Filter{extensions: exts}
}

// Extensions returns the normalized allow-list
func (f *Filter) Extensions() []string {
	return f.extensions
}

// Allowed reports whether a filename carries one of the allowed
// extensions. Matching is a case-sensitive suffix check.
func (f *Filter) Allowed(name string) bool {
	for _, ext := range f.extensions {
		if strings.HasSuffix(name, ext) {
			return true
		}
	}
	return false
}
