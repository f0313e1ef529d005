package execution

import (
	"fmt"
	"strings"
)

// CommandTemplate is a shell command line with a single placeholder
// token that gets replaced with a test input's file path.
type CommandTemplate struct {
	raw         string
	placeholder string
}

// NewCommandTemplate validates that raw contains the placeholder
// exactly once. Zero occurrences would run the same command for every
// case and more than one is almost certainly a typo, so both are
// rejected up front instead of silently misbehaving per case.
func NewCommandTemplate(raw, placeholder string) (*CommandTemplate, error) {
	switch n := strings.Count(raw, placeholder); {
	case n == 0:
		return nil, fmt.Errorf("run command %q contains no %q placeholder", raw, placeholder)
	case n > 1:
		return nil, fmt.Errorf("run command %q contains %d %q placeholders, want exactly one", raw, n, placeholder)
	}
	return &CommandTemplate{raw: raw, placeholder: placeholder}, nil
}

// Render substitutes the input path into the template verbatim
func (t *CommandTemplate) Render(inputPath string) string {
	return strings.Replace(t.raw, t.placeholder, inputPath, 1)
}
