package domain

import "testing"

func TestShortPath(t *testing.T) {
	tests := []struct {
		name     string
		path     string
		expected string
	}{
		{
			name:     "deep path keeps last two segments",
			path:     "/home/user/tests/cases/a.txt",
			expected: ".../cases/a.txt",
		},
		{
			name:     "exactly two separators",
			path:     "/tests/a.txt",
			expected: ".../tests/a.txt",
		},
		{
			name:     "single separator stays full",
			path:     "tests/a.txt",
			expected: "tests/a.txt",
		},
		{
			name:     "bare filename stays full",
			path:     "a.txt",
			expected: "a.txt",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ShortPath(tt.path); got != tt.expected {
				t.Errorf("expected %q, got %q", tt.expected, got)
			}
		})
	}
}

func TestTestCase_DisplayPath(t *testing.T) {
	tc := NewTestCase("/home/user/tests/cases/a.txt")

	if got := tc.DisplayPath(true); got != "/home/user/tests/cases/a.txt" {
		t.Errorf("verbose display should be the full path, got %q", got)
	}
	if got := tc.DisplayPath(false); got != ".../cases/a.txt" {
		t.Errorf("short display should keep the last two segments, got %q", got)
	}
}

func TestNewTestCase(t *testing.T) {
	tc := NewTestCase("/tests/sub/a.txt")

	if tc.Dir != "/tests/sub" {
		t.Errorf("expected dir /tests/sub, got %s", tc.Dir)
	}
	if tc.FileName != "a.txt" {
		t.Errorf("expected filename a.txt, got %s", tc.FileName)
	}
}
