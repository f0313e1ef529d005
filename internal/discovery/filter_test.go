package discovery

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestNewFilter_Normalization(t *testing.T) {
	tests := []struct {
		name     string
		allowed  string
		expected []string
	}{
		{
			name:     "bare extensions get a dot",
			allowed:  "txt,json",
			expected: []string{".txt", ".json"},
		},
		{
			name:     "leading dots and spaces normalized",
			allowed:  " .txt , json ",
			expected: []string{".txt", ".json"},
		},
		{
			name:     "empty entries dropped",
			allowed:  "txt,,json,",
			expected: []string{".txt", ".json"},
		},
		{
			name:     "empty list",
			allowed:  "",
			expected: nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := NewFilter(tt.allowed)
			if diff := cmp.Diff(tt.expected, f.Extensions()); diff != "" {
				t.Errorf("extensions mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestFilter_Allowed(t *testing.T) {
	f := NewFilter("txt,json")

	tests := []struct {
		name    string
		file    string
		allowed bool
	}{
		{"txt allowed", "a.txt", true},
		{"json allowed", "data.json", true},
		{"other extension rejected", "a.md", false},
		{"case sensitive", "a.TXT", false},
		{"suffix match only", "txt", false},
		{"double extension", "a.txt.bak", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := f.Allowed(tt.file); got != tt.allowed {
				t.Errorf("Allowed(%q) = %v, want %v", tt.file, got, tt.allowed)
			}
		})
	}
}

func TestFilter_Allowed_EmptyList(t *testing.T) {
	f := NewFilter("")
	if f.Allowed("a.txt") {
		t.Error("empty allow-list should reject everything")
	}
}
