package storage

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"

	"dtr/internal/config"
	"dtr/internal/domain"
)

func tempStorage(t *testing.T) *JSONStorage {
	t.Helper()
	cfg := config.New()
	cfg.Paths.ResultsFile = filepath.Join(t.TempDir(), "storage", "test-results.json")
	return NewJSONStorage(cfg)
}

func TestJSONStorage_SaveLoad(t *testing.T) {
	st := tempStorage(t)

	stats := domain.GlobalStats{
		Total:       3,
		Passed:      1,
		Failed:      2,
		FailedCases: []string{".../cases/a.txt", ".../cases/b.txt"},
	}
	failures := []domain.CaseFailure{
		{
			Path:        "/inputs/cases/a.txt",
			DisplayPath: ".../cases/a.txt",
			Kind:        "mismatch",
			Stdout:      "5\n",
			Expected:    "6\n",
		},
		{
			Path:        "/inputs/cases/b.txt",
			DisplayPath: ".../cases/b.txt",
			Kind:        "process_error",
			ExitCode:    2,
			Stderr:      "boom\n",
		},
	}

	if err := st.Save(stats, failures, 1500*time.Millisecond); err != nil {
		t.Fatalf("save failed: %v", err)
	}

	loaded, err := st.Load()
	if err != nil {
		t.Fatalf("load failed: %v", err)
	}

	if diff := cmp.Diff(failures, loaded.Details); diff != "" {
		t.Errorf("details mismatch (-want +got):\n%s", diff)
	}
	if loaded.Meta.TotalCases != 3 || loaded.Meta.PassedCases != 1 || loaded.Meta.FailedCases != 2 {
		t.Errorf("unexpected meta counts: %+v", loaded.Meta)
	}
	if loaded.Meta.DurationSeconds != 1.5 {
		t.Errorf("expected duration 1.5s, got %f", loaded.Meta.DurationSeconds)
	}
}

func TestJSONStorage_SaveOutput_RoundTrip(t *testing.T) {
	st := tempStorage(t)

	output := &domain.RunOutput{
		Meta: domain.RunMeta{TotalCases: 1, FailedCases: 1, Timestamp: "2026-01-02T15:04:05Z"},
		Details: []domain.CaseFailure{
			{Path: "/inputs/a.txt", DisplayPath: "a.txt", Kind: "no_expected_file", Resolved: true},
		},
	}

	if err := st.SaveOutput(output); err != nil {
		t.Fatalf("save failed: %v", err)
	}
	loaded, err := st.Load()
	if err != nil {
		t.Fatalf("load failed: %v", err)
	}

	if diff := cmp.Diff(output, loaded); diff != "" {
		t.Errorf("round trip mismatch (-want +got):\n%s", diff)
	}
}

func TestJSONStorage_Load_MissingFile(t *testing.T) {
	st := tempStorage(t)
	if _, err := st.Load(); err == nil {
		t.Error("expected error when no results file exists")
	}
}
