package commands

import (
	"github.com/spf13/cobra"

	"dtr/internal/cli"
)

// Commands holds all CLI commands
type Commands struct {
	Run      *RunCommand
	List     *ListCommand
	Failures *FailuresCommand
}

// NewCommands creates all commands. Configuration is loaded inside
// each command, after cobra has parsed the --config flag.
func NewCommands(flags *cli.Flags) *Commands {
	return &Commands{
		Run:      NewRunCommand(flags),
		List:     NewListCommand(flags),
		Failures: NewFailuresCommand(flags),
	}
}

// Register registers all commands with cobra
func (c *Commands) Register(rootCmd *cobra.Command, flags *cli.Flags) {
	rootCmd.PersistentFlags().StringVarP(&flags.ConfigFile, "config", "c", "", "Path to the config file (default config.ini)")
	rootCmd.PersistentFlags().BoolVar(&flags.Debug, "debug", false, "Enable verbose internal tracing")

	runCmd := &cobra.Command{
		Use:   "run",
		Short: "Run the external command over the input tree",
		Long:  "Walk the input tree and run the configured command per candidate file; in test mode, compare captured stdout against the expected fixtures and report pass/fail statistics.",
		RunE:  c.Run.Execute,
	}
	runCmd.Flags().StringVarP(&flags.InputDir, "input-dir", "i", "", "Override paths.input_dir from the config")
	runCmd.Flags().BoolVar(&flags.VerboseNames, "verbose-names", false, "Report failures with full paths instead of shortened ones")
	rootCmd.AddCommand(runCmd)

	listCmd := &cobra.Command{
		Use:   "list",
		Short: "List discovered test cases",
		Long:  "Walk the input tree and list candidate files without executing them, marking whether an expected fixture resolves for each.",
		RunE:  c.List.Execute,
	}
	listCmd.Flags().StringVarP(&flags.InputDir, "input-dir", "i", "", "Override paths.input_dir from the config")
	rootCmd.AddCommand(listCmd)

	failuresCmd := &cobra.Command{
		Use:   "failures",
		Short: "View failed cases interactively",
		Long:  "Display the failed cases of the last test run in an interactive viewer.",
		RunE:  c.Failures.Execute,
	}
	rootCmd.AddCommand(failuresCmd)
}
