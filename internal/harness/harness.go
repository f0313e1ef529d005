// Package harness runs the directory-driven test loop: it walks the
// input tree, executes the configured command once per candidate file
// and, in test mode, compares captured stdout against the expected
// fixture, aggregating per-directory and global statistics.
package harness

import (
	"context"
	"errors"
	"path/filepath"

	"dtr/internal/config"
	"dtr/internal/discovery"
	"dtr/internal/domain"
	"dtr/internal/execution"
	"dtr/internal/ui"
)

// Harness wires the scanner, runner, resolver and reporter into the
// two run operations. Execution is strictly sequential: one child
// process at a time, fully evaluated before the next case starts.
type Harness struct {
	cfg      *config.Config
	runner   *execution.Runner
	template *execution.CommandTemplate
	scanner  *discovery.Scanner
	resolver *discovery.Resolver
	reporter *ui.Reporter
	progress *ui.ProgressBar
}

// New creates a Harness
func New(
	cfg *config.Config,
	runner *execution.Runner,
	template *execution.CommandTemplate,
	scanner *discovery.Scanner,
	resolver *discovery.Resolver,
	reporter *ui.Reporter,
) *Harness {
	return &Harness{
		cfg:      cfg,
		runner:   runner,
		template: template,
		scanner:  scanner,
		resolver: resolver,
		reporter: reporter,
	}
}

// SetProgress attaches a progress bar updated after every case
func (h *Harness) SetProgress(progress *ui.ProgressBar) {
	h.progress = progress
}

// RunAndCompare evaluates every candidate file against its fixture and
// returns the aggregated stats plus one failure record per failed
// case. Cancelling ctx aborts the walk with execution.ErrInterrupted;
// no final summary is printed in that case.
func (h *Harness) RunAndCompare(ctx context.Context) (domain.GlobalStats, []domain.CaseFailure, error) {
	var stats domain.GlobalStats
	var failures []domain.CaseFailure

	err := h.scanner.Walk(h.cfg.Paths.InputDir, func(dir string, files []string) error {
		h.reporter.Debugf("visiting %s (%d candidate files)", dir, len(files))

		var dirStats domain.DirectoryStats
		for _, name := range files {
			tc := domain.NewTestCase(filepath.Join(dir, name))
			result, err := h.evaluate(ctx, tc, &stats)
			if err != nil {
				return err
			}

			if h.cfg.Testing.ShowIndividual {
				h.reporter.CaseLine(result.Ordinal, domain.ShortPath(tc.Path), result.Outcome.Passed())
			}
			dirStats.Record(result.Outcome)
			stats.Record(result)
			if !result.Outcome.Passed() {
				failures = append(failures, domain.NewCaseFailure(result))
			}
			if h.progress != nil {
				h.progress.Update(stats.Passed, stats.Failed)
			}
		}

		// All-pass and all-fail directories stay quiet to reduce noise.
		if dirStats.Mixed() {
			h.reporter.DirectorySummary(dir, dirStats)
		}
		return nil
	})
	if err != nil {
		return stats, failures, err
	}

	if h.progress != nil {
		h.progress.Finish()
	}
	h.reporter.FinalSummary(stats)
	return stats, failures, nil
}

// RunOnly executes the command for every candidate file and prints its
// output, preferring stdout and falling back to stderr. No pass/fail
// judgement is made and no statistics are kept.
func (h *Harness) RunOnly(ctx context.Context) error {
	return h.scanner.Walk(h.cfg.Paths.InputDir, func(dir string, files []string) error {
		for _, name := range files {
			path := filepath.Join(dir, name)
			h.reporter.RunningFile(path)

			stdout, stderr, err := h.runner.Execute(ctx, h.template.Render(path))
			if err != nil {
				if errors.Is(err, execution.ErrInterrupted) {
					return err
				}
				h.reporter.StderrBlock(err.Error())
				continue
			}
			if stdout != "" {
				h.reporter.StdoutBlock(stdout)
			} else if stderr != "" {
				h.reporter.StderrBlock(stderr)
			}
		}
		return nil
	})
}
