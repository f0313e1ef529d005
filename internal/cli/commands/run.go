package commands

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"dtr/internal/cli"
	"dtr/internal/config"
	"dtr/internal/discovery"
	"dtr/internal/execution"
	"dtr/internal/harness"
	"dtr/internal/storage"
	"dtr/internal/ui"
)

// RunCommand handles the run command
type RunCommand struct {
	flags *cli.Flags
}

// NewRunCommand creates a new RunCommand
func NewRunCommand(flags *cli.Flags) *RunCommand {
	return &RunCommand{flags: flags}
}

// Execute runs the command. The mode (execute-only vs test/compare) is
// selected here, once, from the config.
func (rc *RunCommand) Execute(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load(rc.flags.ToConfigFlags())
	if err != nil {
		return err
	}

	reporter := ui.NewReporter(cfg.Running.Debug)
	filter := discovery.NewFilter(cfg.Paths.AllowedFileExtensions)
	reporter.Debugf("extensions: %v", filter.Extensions())
	reporter.Debugf("input dir: %s", cfg.Paths.InputDir)

	template, err := execution.NewCommandTemplate(cfg.Running.RunCommand, config.Placeholder)
	if err != nil {
		return err
	}

	scanner := discovery.NewScanner(filter, cfg.General.ExcludeHiddenDirectories, config.HiddenPrefix)
	resolver := discovery.NewResolver(cfg.Paths.ExpectedDir, config.ExpectedPrefix)
	runner := execution.NewRunner(cfg.Running.Shell)
	h := harness.New(cfg, runner, template, scanner, resolver, reporter)

	// Ctrl-C terminates the in-flight child's process group, aborts
	// the run without a final summary, and still exits 0.
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if !cfg.Testing.Testing {
		if err := h.RunOnly(ctx); err != nil {
			if errors.Is(err, execution.ErrInterrupted) {
				reporter.Interrupted()
				return nil
			}
			return err
		}
		return nil
	}

	if !cfg.Testing.ShowIndividual {
		if count, err := scanner.Count(cfg.Paths.InputDir); err == nil && count > 0 {
			h.SetProgress(ui.NewProgressBar(count))
		}
	}

	start := time.Now()
	stats, failures, err := h.RunAndCompare(ctx)
	if err != nil {
		if errors.Is(err, execution.ErrInterrupted) {
			reporter.Interrupted()
			return nil
		}
		return err
	}

	st := storage.NewJSONStorage(cfg)
	if err := st.Save(stats, failures, time.Since(start)); err != nil {
		return fmt.Errorf("save results: %w", err)
	}
	return nil
}
