package harness

import (
	"context"
	"errors"
	"os"

	"dtr/internal/domain"
	"dtr/internal/execution"
)

// evaluate runs one test case end-to-end: execute, resolve fixture,
// compare. The case is counted before anything else, so early failure
// paths still hold the Total == Passed+Failed invariant once the
// result is recorded. Only ErrInterrupted is returned as an error;
// every per-case failure is contained in the outcome.
func (h *Harness) evaluate(ctx context.Context, tc domain.TestCase, stats *domain.GlobalStats) (domain.CaseResult, error) {
	result := domain.CaseResult{
		Case:        tc,
		Ordinal:     stats.NextOrdinal(),
		DisplayPath: tc.DisplayPath(h.cfg.Testing.VerboseNames),
	}

	commandLine := h.template.Render(tc.Path)
	h.reporter.Debugf("testing file: %s", tc.Path)
	h.reporter.Debugf("command: %s", commandLine)

	stdout, stderr, err := h.runner.Execute(ctx, commandLine)
	if err != nil {
		if errors.Is(err, execution.ErrInterrupted) {
			return result, err
		}
		h.reporter.Errorf("%v", err)
		result.Outcome = domain.OutcomeProcessError
		var procErr *execution.ProcessError
		if errors.As(err, &procErr) {
			result.ExitCode = procErr.ExitCode
			result.Stderr = procErr.Stderr
		}
		return result, nil
	}

	result.Stdout = stdout
	result.Stderr = stderr

	if stdout == "" {
		if stderr != "" {
			h.reporter.Errorf("%s", stderr)
		} else {
			h.reporter.Debugf("stderr and stdout blank!")
		}
		result.Outcome = domain.OutcomeBlank
		return result, nil
	}

	expectedPath, found := h.resolver.FindExpected(tc.Path)
	if !found {
		h.reporter.Errorf("expected result file for %s not found", tc.Path)
		result.Outcome = domain.OutcomeNoFixture
		return result, nil
	}

	expected, err := os.ReadFile(expectedPath)
	if err != nil {
		h.reporter.Errorf("read expected file %s: %v", expectedPath, err)
		result.Outcome = domain.OutcomeNoFixture
		return result, nil
	}
	result.Expected = string(expected)

	// Comparison is byte-exact: no trimming, no line-ending
	// normalization.
	if stdout == result.Expected {
		result.Outcome = domain.OutcomePassed
	} else {
		result.Outcome = domain.OutcomeMismatch
	}
	return result, nil
}
