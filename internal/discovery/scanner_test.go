package discovery

import (
	"os"
	"path/filepath"
	"testing"
)

func buildTree(t *testing.T, files []string) string {
	t.Helper()
	root := t.TempDir()
	for _, file := range files {
		full := filepath.Join(root, file)
		if err := os.MkdirAll(filepath.Dir(full), 0755); err != nil {
			t.Fatalf("failed to create dir for %s: %v", file, err)
		}
		if err := os.WriteFile(full, []byte("x"), 0644); err != nil {
			t.Fatalf("failed to create file %s: %v", file, err)
		}
	}
	return root
}

func TestScanner_Walk(t *testing.T) {
	root := buildTree(t, []string{
		"a.txt",
		"b.md",
		"sub/c.txt",
		"sub/deep/d.txt",
		".hidden/e.txt",
		"sub/.cache/f.txt",
	})

	t.Run("filters by extension and prunes hidden dirs", func(t *testing.T) {
		scanner := NewScanner(NewFilter("txt"), true, ".")

		seen := map[string][]string{}
		err := scanner.Walk(root, func(dir string, files []string) error {
			rel, _ := filepath.Rel(root, dir)
			seen[rel] = files
			return nil
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		if len(seen["."]) != 1 || seen["."][0] != "a.txt" {
			t.Errorf("expected [a.txt] at root, got %v", seen["."])
		}
		if len(seen["sub"]) != 1 || seen["sub"][0] != "c.txt" {
			t.Errorf("expected [c.txt] in sub, got %v", seen["sub"])
		}
		if _, visited := seen[".hidden"]; visited {
			t.Error("hidden directory should have been pruned")
		}
		if _, visited := seen[filepath.Join("sub", ".cache")]; visited {
			t.Error("nested hidden directory should have been pruned")
		}
		if _, visited := seen[filepath.Join("sub", "deep")]; !visited {
			t.Error("non-hidden subdirectory should have been visited")
		}
	})

	t.Run("hidden dirs visited when exclusion disabled", func(t *testing.T) {
		scanner := NewScanner(NewFilter("txt"), false, ".")

		count, err := scanner.Count(root)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		// a.txt, sub/c.txt, sub/deep/d.txt, .hidden/e.txt, sub/.cache/f.txt
		if count != 5 {
			t.Errorf("expected 5 candidates, got %d", count)
		}
	})

	t.Run("count with pruning", func(t *testing.T) {
		scanner := NewScanner(NewFilter("txt"), true, ".")

		count, err := scanner.Count(root)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if count != 3 {
			t.Errorf("expected 3 candidates, got %d", count)
		}
	})
}

func TestScanner_Walk_TopDown(t *testing.T) {
	root := buildTree(t, []string{"a.txt", "sub/b.txt"})
	scanner := NewScanner(NewFilter("txt"), true, ".")

	var order []string
	err := scanner.Walk(root, func(dir string, files []string) error {
		rel, _ := filepath.Rel(root, dir)
		order = append(order, rel)
		return nil
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(order) != 2 || order[0] != "." || order[1] != "sub" {
		t.Errorf("expected top-down order [. sub], got %v", order)
	}
}

func TestScanner_Walk_BadRoot(t *testing.T) {
	scanner := NewScanner(NewFilter("txt"), true, ".")

	t.Run("missing directory", func(t *testing.T) {
		if err := scanner.Walk("/non/existent/path", func(string, []string) error { return nil }); err == nil {
			t.Error("expected error for non-existent root")
		}
	})

	t.Run("file as root", func(t *testing.T) {
		file := filepath.Join(t.TempDir(), "f.txt")
		if err := os.WriteFile(file, []byte("x"), 0644); err != nil {
			t.Fatal(err)
		}
		if err := scanner.Walk(file, func(string, []string) error { return nil }); err == nil {
			t.Error("expected error for file root")
		}
	})
}
