package discovery

import (
	"os"
	"path/filepath"
	"testing"
)

func TestResolver_FindExpected(t *testing.T) {
	root := buildTree(t, []string{
		"expected_a.txt",
		"nested/deep/expected_b.txt",
		"unrelated.txt",
	})
	resolver := NewResolver(root, "expected_")

	t.Run("match at root", func(t *testing.T) {
		path, found := resolver.FindExpected("/inputs/a.txt")
		if !found {
			t.Fatal("expected fixture to be found")
		}
		if path != filepath.Join(root, "expected_a.txt") {
			t.Errorf("unexpected fixture path %s", path)
		}
	})

	t.Run("match in nested directory", func(t *testing.T) {
		path, found := resolver.FindExpected("/inputs/sub/b.txt")
		if !found {
			t.Fatal("expected fixture to be found")
		}
		if path != filepath.Join(root, "nested", "deep", "expected_b.txt") {
			t.Errorf("unexpected fixture path %s", path)
		}
	})

	t.Run("not found is not an error", func(t *testing.T) {
		path, found := resolver.FindExpected("/inputs/missing.txt")
		if found || path != "" {
			t.Errorf("expected no fixture, got %q", path)
		}
	})

	t.Run("prefix must match exactly", func(t *testing.T) {
		// unrelated.txt must not resolve as a fixture for related.txt
		_, found := resolver.FindExpected("/inputs/related.txt")
		if found {
			t.Error("fixture name must be the prefix plus the full base name")
		}
	})
}

func TestResolver_FindExpected_MissingRoot(t *testing.T) {
	resolver := NewResolver("/non/existent/expected", "expected_")
	if _, found := resolver.FindExpected("/inputs/a.txt"); found {
		t.Error("missing expected root should report not-found")
	}
}

func TestResolver_FindExpected_FirstMatchWins(t *testing.T) {
	root := buildTree(t, []string{
		"a/expected_x.txt",
		"b/expected_x.txt",
	})
	resolver := NewResolver(root, "expected_")

	path, found := resolver.FindExpected("/inputs/x.txt")
	if !found {
		t.Fatal("expected fixture to be found")
	}
	// Lexical walk order: a/ before b/.
	if path != filepath.Join(root, "a", "expected_x.txt") {
		t.Errorf("expected first match in walk order, got %s", path)
	}
}

func TestResolver_SkipsUnreadableSubtrees(t *testing.T) {
	if os.Getuid() == 0 {
		t.Skip("permission checks do not apply to root")
	}
	root := buildTree(t, []string{
		"locked/expected_y.txt",
		"open/expected_z.txt",
	})
	if err := os.Chmod(filepath.Join(root, "locked"), 0000); err != nil {
		t.Fatal(err)
	}
	defer os.Chmod(filepath.Join(root, "locked"), 0755)

	resolver := NewResolver(root, "expected_")
	if _, found := resolver.FindExpected("/inputs/z.txt"); !found {
		t.Error("unreadable sibling directory should not break the search")
	}
}
