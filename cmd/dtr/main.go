package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"dtr/internal/cli"
	"dtr/internal/cli/commands"
)

var version = "dev"

func main() {
	rootCmd := &cobra.Command{
		Use:     "dtr",
		Short:   "Directory-driven test runner",
		Long:    `A directory-driven test harness: walks a tree of input files, runs an external command against each one and, in test mode, compares captured output against expected-result fixtures, reporting pass/fail statistics.`,
		Version: version,
	}

	var flags cli.Flags
	cmds := commands.NewCommands(&flags)
	cmds.Register(rootCmd, &flags)

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
