package ui

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/fatih/color"

	"dtr/internal/domain"
)

// Reporter prints human-readable progress and summary lines. Normal
// progress goes to out, [ERROR] and [DEBUG] lines to errOut.
type Reporter struct {
	out    io.Writer
	errOut io.Writer
	debug  bool
}

// NewReporter creates a Reporter writing to stdout/stderr
func NewReporter(debug bool) *Reporter {
	return &Reporter{out: os.Stdout, errOut: os.Stderr, debug: debug}
}

// NewReporterTo creates a Reporter with explicit writers
func NewReporterTo(out, errOut io.Writer, debug bool) *Reporter {
	return &Reporter{out: out, errOut: errOut, debug: debug}
}

// CaseLine prints the per-case result line:
// CASE <ordinal> <path> PASSED|FAILED
func (r *Reporter) CaseLine(ordinal int, displayPath string, passed bool) {
	verdict := color.RedString("FAILED")
	if passed {
		verdict = color.GreenString("PASSED")
	}
	fmt.Fprintf(r.out, "CASE %d %s %s\n", ordinal, color.HiBlueString("%s", displayPath), verdict)
}

// DirectorySummary prints the pass/fail line for one finished directory
func (r *Reporter) DirectorySummary(dir string, ds domain.DirectoryStats) {
	rate := ds.PassRate()
	rateStr := color.RedString("%.2f%%", rate)
	if ds.Passed > ds.Failed {
		rateStr = color.GreenString("%.2f%%", rate)
	}
	fmt.Fprintf(r.out, "%s, %s (%s) FROM %s\n\n",
		color.New(color.Bold, color.FgGreen).Sprintf("PASS %d", ds.Passed),
		color.New(color.Bold, color.FgRed).Sprintf("FAIL %d", ds.Failed),
		rateStr,
		color.HiBlueString("%s", dir))
}

// FinalSummary prints the global pass rate and the failed case list
func (r *Reporter) FinalSummary(gs domain.GlobalStats) {
	if gs.Total == 0 {
		fmt.Fprintln(r.out, color.YellowString("No test cases found"))
		return
	}
	rate := gs.PassRate()
	rateStr := color.RedString("%.2f%%", rate)
	if rate > 50 {
		rateStr = color.GreenString("%.2f%%", rate)
	}
	fmt.Fprintf(r.out, "%s %s\n",
		color.New(color.Bold).Sprintf("Passed %d of %d cases:", gs.Passed, gs.Total),
		rateStr)
	if len(gs.FailedCases) > 0 {
		fmt.Fprintf(r.out, "Failed Test Cases:\n%s\n", strings.Join(gs.FailedCases, "\n"))
	}
}

// RunningFile announces the file about to be executed (execute-only mode)
func (r *Reporter) RunningFile(path string) {
	fmt.Fprintln(r.out, color.HiBlueString("Running: %s", path))
}

// StdoutBlock prints captured stdout under a highlighted header
func (r *Reporter) StdoutBlock(text string) {
	fmt.Fprintf(r.out, "%s\n%s\n", color.New(color.BgYellow, color.FgBlack).Sprint("StdOut:"), text)
}

// StderrBlock prints captured stderr under a plain header
func (r *Reporter) StderrBlock(text string) {
	fmt.Fprintf(r.out, "StdErr:\n%s\n", text)
}

// Interrupted announces that the in-flight child is being terminated
func (r *Reporter) Interrupted() {
	fmt.Fprintln(r.out, "Terminating Subprocess")
}

// Errorf reports a per-case error on the error channel; the run continues
func (r *Reporter) Errorf(format string, args ...interface{}) {
	fmt.Fprintf(r.errOut, "%s %s\n",
		color.New(color.Bold, color.FgRed).Sprint("[ERROR]"),
		fmt.Sprintf(format, args...))
}

// Debugf prints internal tracing when running.debug is enabled
func (r *Reporter) Debugf(format string, args ...interface{}) {
	if !r.debug {
		return
	}
	fmt.Fprintf(r.errOut, "%s %s\n",
		color.New(color.Bold, color.FgMagenta).Sprint("[DEBUG]"),
		fmt.Sprintf(format, args...))
}
